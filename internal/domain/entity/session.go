package entity

// SessionOutcome resultado de un bootstrap exitoso. Lo aplica el llamador al store de sesión.
type SessionOutcome struct {
	IsAuthenticated   bool         `json:"isAuthenticated"`
	UserID            string       `json:"userId"`
	Email             string       `json:"email"`
	Role              Role         `json:"role,omitempty"`
	NeedsProfileSetup bool         `json:"needsProfileSetup"`
	UserProfile       *UserProfile `json:"userProfile"`
	RoleProfile       RoleProfile  `json:"roleProfile"`
}
