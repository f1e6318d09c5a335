package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Especies admitidas.
const (
	SpeciesDog    = "dog"
	SpeciesCat    = "cat"
	SpeciesBird   = "bird"
	SpeciesRabbit = "rabbit"
	SpeciesOther  = "other"
)

// Pet mascota (tabla Pets, clave petId, índices OwnerIndex y ShelterIndex).
type Pet struct {
	PetID                  string          `json:"petId" dynamodbav:"petId"`
	OwnerID                string          `json:"ownerId" dynamodbav:"ownerId"`
	ShelterID              string          `json:"shelterId,omitempty" dynamodbav:"shelterId,omitempty"`
	Name                   string          `json:"name" dynamodbav:"name"`
	Species                string          `json:"species" dynamodbav:"species"`
	Breed                  string          `json:"breed,omitempty" dynamodbav:"breed,omitempty"`
	Age                    int             `json:"age,omitempty" dynamodbav:"age,omitempty"`
	Weight                 decimal.Decimal `json:"weight" dynamodbav:"weight"`
	Gender                 string          `json:"gender,omitempty" dynamodbav:"gender,omitempty"`
	Color                  string          `json:"color,omitempty" dynamodbav:"color,omitempty"`
	Photos                 []string        `json:"photos" dynamodbav:"photos"`
	MicrochipID            string          `json:"microchipId,omitempty" dynamodbav:"microchipId,omitempty"`
	IsAdopted              bool            `json:"isAdopted" dynamodbav:"isAdopted"`
	IsAvailableForAdoption string          `json:"isAvailableForAdoption,omitempty" dynamodbav:"isAvailableForAdoption,omitempty"`
	CreatedAt              time.Time       `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt              time.Time       `json:"updatedAt" dynamodbav:"updatedAt"`
}

// ValidSpecies indica si la especie es una de las admitidas.
func ValidSpecies(s string) bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesBird, SpeciesRabbit, SpeciesOther:
		return true
	}
	return false
}

// StampCreated fija las fechas de creación.
func (p *Pet) StampCreated(now time.Time) {
	p.CreatedAt = now
	p.UpdatedAt = now
}
