package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// VetFees tarifas de consulta de un veterinario.
type VetFees struct {
	Consultation decimal.Decimal `json:"consultation" dynamodbav:"consultation"`
	Emergency    decimal.Decimal `json:"emergency" dynamodbav:"emergency"`
	Video        decimal.Decimal `json:"video" dynamodbav:"video"`
}

// VetProfile perfil de veterinario (tabla Vets, clave vetId, índice UserIndex por userId).
type VetProfile struct {
	VetID                  string            `json:"vetId" dynamodbav:"vetId"`
	UserID                 string            `json:"userId" dynamodbav:"userId"`
	ClinicName             string            `json:"clinicName" dynamodbav:"clinicName"`
	DoctorName             string            `json:"doctorName" dynamodbav:"doctorName"`
	LicenseNumber          string            `json:"licenseNumber" dynamodbav:"licenseNumber"`
	Credentials            []string          `json:"credentials" dynamodbav:"credentials"`
	Specializations        []string          `json:"specializations" dynamodbav:"specializations"`
	PrimarySpecialization  string            `json:"primarySpecialization" dynamodbav:"primarySpecialization"`
	YearsOfExperience      int               `json:"yearsOfExperience" dynamodbav:"yearsOfExperience"`
	Bio                    string            `json:"bio" dynamodbav:"bio"`
	PhoneNumber            string            `json:"phoneNumber" dynamodbav:"phoneNumber"`
	Email                  string            `json:"email" dynamodbav:"email"`
	Address                Address           `json:"address" dynamodbav:"address"`
	City                   string            `json:"city,omitempty" dynamodbav:"city,omitempty"`
	State                  string            `json:"state,omitempty" dynamodbav:"state,omitempty"`
	ConsultationTypes      []string          `json:"consultationTypes" dynamodbav:"consultationTypes"`
	OperatingHours         map[string]string `json:"operatingHours" dynamodbav:"operatingHours"`
	EmergencyAvailable     bool              `json:"emergencyAvailable" dynamodbav:"emergencyAvailable"`
	Languages              []string          `json:"languages" dynamodbav:"languages"`
	AcceptedInsurance      []string          `json:"acceptedInsurance" dynamodbav:"acceptedInsurance"`
	Fees                   VetFees           `json:"fees" dynamodbav:"fees"`
	IsAcceptingNewPatients string            `json:"isAcceptingNewPatients" dynamodbav:"isAcceptingNewPatients"`
	Photos                 []string          `json:"photos" dynamodbav:"photos"`
	Certifications         []string          `json:"certifications" dynamodbav:"certifications"`
	Rating                 decimal.Decimal   `json:"rating" dynamodbav:"rating"`
	ReviewCount            int               `json:"reviewCount" dynamodbav:"reviewCount"`
	CreatedAt              time.Time         `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt              time.Time         `json:"updatedAt" dynamodbav:"updatedAt"`
}

// ProfileRole implementa RoleProfile.
func (v *VetProfile) ProfileRole() Role { return RoleVet }

// ProfileUserID implementa RoleProfile.
func (v *VetProfile) ProfileUserID() string { return v.UserID }

// StampCreated fija fechas y reinicia la reputación de un perfil nuevo.
func (v *VetProfile) StampCreated(now time.Time) {
	v.Rating = decimal.Zero
	v.ReviewCount = 0
	v.CreatedAt = now
	v.UpdatedAt = now
}
