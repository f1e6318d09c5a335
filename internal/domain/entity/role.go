package entity

// Role rol de un usuario de Laika.
type Role string

// Roles válidos para UserProfile.
const (
	RoleOwner   Role = "owner"
	RoleVet     Role = "vet"
	RoleShelter Role = "shelter"
)

// Valid indica si el rol es uno de los conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleVet, RoleShelter:
		return true
	}
	return false
}

// HasRoleProfile indica si el rol requiere un registro adicional (Vets o Shelters).
func (r Role) HasRoleProfile() bool {
	return r == RoleVet || r == RoleShelter
}

// Valores de los atributos indexables tipo bandera (los GSI de DynamoDB no aceptan BOOL como clave).
const (
	FlagYes = "YES"
	FlagNo  = "NO"
)
