package entity

// RoleProfile perfil específico del rol (*VetProfile o *ShelterProfile).
type RoleProfile interface {
	ProfileRole() Role
	ProfileUserID() string
}

var (
	_ RoleProfile = (*VetProfile)(nil)
	_ RoleProfile = (*ShelterProfile)(nil)
)
