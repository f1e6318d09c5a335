package entity

// Address dirección postal compartida por usuarios, veterinarios y refugios.
type Address struct {
	Street  string `json:"street,omitempty" dynamodbav:"street,omitempty"`
	City    string `json:"city" dynamodbav:"city"`
	State   string `json:"state" dynamodbav:"state"`
	ZipCode string `json:"zipCode,omitempty" dynamodbav:"zipCode,omitempty"`
	Country string `json:"country,omitempty" dynamodbav:"country,omitempty"`
}
