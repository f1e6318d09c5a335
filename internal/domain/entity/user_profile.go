package entity

import "time"

// UserProfile registro base de un usuario (tabla Users, clave userId = sub de Cognito).
// Se crea una sola vez, en el primer bootstrap tras el registro; después solo se actualiza.
type UserProfile struct {
	UserID         string    `json:"userId" dynamodbav:"userId"`
	Email          string    `json:"email" dynamodbav:"email"`
	Role           Role      `json:"role" dynamodbav:"role"`
	FirstName      string    `json:"firstName" dynamodbav:"firstName"`
	LastName       string    `json:"lastName" dynamodbav:"lastName"`
	PhoneNumber    string    `json:"phoneNumber,omitempty" dynamodbav:"phoneNumber,omitempty"`
	ProfilePicture string    `json:"profilePicture,omitempty" dynamodbav:"profilePicture,omitempty"`
	Bio            string    `json:"bio,omitempty" dynamodbav:"bio,omitempty"`
	Address        Address   `json:"address" dynamodbav:"address"`
	IsVerified     bool      `json:"isVerified" dynamodbav:"isVerified"`
	IsActive       bool      `json:"isActive" dynamodbav:"isActive"`
	CreatedAt      time.Time `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" dynamodbav:"updatedAt"`
}

// StampCreated marca el registro como recién creado. La escritura es un overwrite
// completo, por eso repetirla es idempotente salvo por las fechas.
func (u *UserProfile) StampCreated(now time.Time) {
	u.CreatedAt = now
	u.UpdatedAt = now
	u.IsActive = true
}
