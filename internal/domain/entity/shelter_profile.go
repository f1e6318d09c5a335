package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShelterProfile perfil de refugio (tabla Shelters, clave shelterId, índice UserIndex por userId).
type ShelterProfile struct {
	ShelterID            string            `json:"shelterId" dynamodbav:"shelterId"`
	UserID               string            `json:"userId" dynamodbav:"userId"`
	ShelterName          string            `json:"shelterName" dynamodbav:"shelterName"`
	Description          string            `json:"description" dynamodbav:"description"`
	PhoneNumber          string            `json:"phoneNumber" dynamodbav:"phoneNumber"`
	Email                string            `json:"email" dynamodbav:"email"`
	Website              string            `json:"website" dynamodbav:"website"`
	Address              Address           `json:"address" dynamodbav:"address"`
	Capacity             int               `json:"capacity" dynamodbav:"capacity"`
	CurrentOccupancy     int               `json:"currentOccupancy" dynamodbav:"currentOccupancy"`
	HasAvailableCapacity string            `json:"hasAvailableCapacity" dynamodbav:"hasAvailableCapacity"`
	AnimalTypes          []string          `json:"animalTypes" dynamodbav:"animalTypes"`
	Services             []string          `json:"services" dynamodbav:"services"`
	OperatingHours       map[string]string `json:"operatingHours" dynamodbav:"operatingHours"`
	RegistrationNumber   string            `json:"registrationNumber" dynamodbav:"registrationNumber"`
	Photos               []string          `json:"photos" dynamodbav:"photos"`
	IsAcceptingDonations bool              `json:"isAcceptingDonations" dynamodbav:"isAcceptingDonations"`
	IsVerified           bool              `json:"isVerified" dynamodbav:"isVerified"`
	City                 string            `json:"city" dynamodbav:"city"`
	State                string            `json:"state" dynamodbav:"state"`
	Rating               decimal.Decimal   `json:"rating" dynamodbav:"rating"`
	ReviewCount          int               `json:"reviewCount" dynamodbav:"reviewCount"`
	CreatedAt            time.Time         `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt            time.Time         `json:"updatedAt" dynamodbav:"updatedAt"`
}

// ProfileRole implementa RoleProfile.
func (s *ShelterProfile) ProfileRole() Role { return RoleShelter }

// ProfileUserID implementa RoleProfile.
func (s *ShelterProfile) ProfileUserID() string { return s.UserID }

// StampCreated fija fechas; un refugio nuevo nunca nace verificado.
func (s *ShelterProfile) StampCreated(now time.Time) {
	s.Rating = decimal.Zero
	s.ReviewCount = 0
	s.IsVerified = false
	s.CreatedAt = now
	s.UpdatedAt = now
}
