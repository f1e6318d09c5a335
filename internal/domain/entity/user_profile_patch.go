package entity

import "time"

// UserProfilePatch actualización parcial (merge patch) de un UserProfile.
// Solo se tocan los campos no nil; el rol y el email no se modifican por esta vía.
type UserProfilePatch struct {
	FirstName      *string  `json:"firstName,omitempty"`
	LastName       *string  `json:"lastName,omitempty"`
	PhoneNumber    *string  `json:"phoneNumber,omitempty"`
	ProfilePicture *string  `json:"profilePicture,omitempty"`
	Bio            *string  `json:"bio,omitempty"`
	Address        *Address `json:"address,omitempty"`
	IsVerified     *bool    `json:"isVerified,omitempty"`
}

// FieldUpdatedAt atributo que toda actualización estampa.
const FieldUpdatedAt = "updatedAt"

// Empty indica si el patch no trae ningún campo.
func (p UserProfilePatch) Empty() bool {
	return len(p.fields()) == 0
}

// Fields devuelve los atributos a escribir (nombre de atributo -> valor), incluido
// updatedAt con la fecha indicada.
func (p UserProfilePatch) Fields(now time.Time) map[string]any {
	out := p.fields()
	out[FieldUpdatedAt] = now
	return out
}

func (p UserProfilePatch) fields() map[string]any {
	out := make(map[string]any)
	if p.FirstName != nil {
		out["firstName"] = *p.FirstName
	}
	if p.LastName != nil {
		out["lastName"] = *p.LastName
	}
	if p.PhoneNumber != nil {
		out["phoneNumber"] = *p.PhoneNumber
	}
	if p.ProfilePicture != nil {
		out["profilePicture"] = *p.ProfilePicture
	}
	if p.Bio != nil {
		out["bio"] = *p.Bio
	}
	if p.Address != nil {
		out["address"] = *p.Address
	}
	if p.IsVerified != nil {
		out["isVerified"] = *p.IsVerified
	}
	return out
}

// ApplyTo aplica el patch sobre una copia del perfil y la devuelve.
func (p UserProfilePatch) ApplyTo(u UserProfile, now time.Time) UserProfile {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.PhoneNumber != nil {
		u.PhoneNumber = *p.PhoneNumber
	}
	if p.ProfilePicture != nil {
		u.ProfilePicture = *p.ProfilePicture
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.IsVerified != nil {
		u.IsVerified = *p.IsVerified
	}
	u.UpdatedAt = now
	return u
}
