package dto

// ErrorResponse cuerpo de error HTTP. Message es el texto que el cliente propaga tal cual.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PetsQuery filtros de GET /pets.
type PetsQuery struct {
	OwnerID string `url:"ownerId,omitempty" query:"ownerId"`
}
