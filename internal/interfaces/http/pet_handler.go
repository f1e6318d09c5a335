package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rutujaMandapmalvi3/Laika/internal/application/dto"
	"github.com/rutujaMandapmalvi3/Laika/internal/application/profile"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain/entity"
)

// PetHandler mascotas.
type PetHandler struct {
	svc *profile.Service
}

// NewPetHandler construye el handler de mascotas.
func NewPetHandler(svc *profile.Service) *PetHandler {
	return &PetHandler{svc: svc}
}

// List godoc
// @Summary      Mascotas de un dueño
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Param        ownerId  query     string  false  "por defecto el usuario autenticado"
// @Success      200      {array}   entity.Pet
// @Router       /pets [get]
func (h *PetHandler) List(c *fiber.Ctx) error {
	var q dto.PetsQuery
	if err := c.QueryParser(&q); err != nil {
		return badBody(c)
	}
	pets, err := h.svc.ListPets(c.UserContext(), GetUserID(c), q.OwnerID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(pets)
}

// Create godoc
// @Summary      Registrar mascota
// @Tags         pets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      entity.Pet  true  "name, species..."
// @Success      201   {object}  entity.Pet
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /pets [post]
func (h *PetHandler) Create(c *fiber.Ctx) error {
	var in entity.Pet
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.svc.CreatePet(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
