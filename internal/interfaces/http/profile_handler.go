package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rutujaMandapmalvi3/Laika/internal/application/profile"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain/entity"
)

// ProfileHandler perfiles base, de vet y de refugio.
type ProfileHandler struct {
	svc *profile.Service
}

// NewProfileHandler construye el handler de perfiles.
func NewProfileHandler(svc *profile.Service) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// GetProfile godoc
// @Summary      Perfil del usuario autenticado
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.UserProfile
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /users/profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	out, err := h.svc.GetProfile(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateProfile godoc
// @Summary      Crear (o sobrescribir) el perfil del usuario autenticado
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      entity.UserProfile  true  "role, firstName, lastName, address..."
// @Success      201   {object}  entity.UserProfile
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /users/profile [post]
func (h *ProfileHandler) CreateProfile(c *fiber.Ctx) error {
	var in entity.UserProfile
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.svc.CreateProfile(c.UserContext(), GetUserID(c), GetEmail(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateProfile godoc
// @Summary      Actualizar campos del perfil (merge patch)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      entity.UserProfilePatch  true  "solo los campos a cambiar"
// @Success      200   {object}  entity.UserProfile
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /users/profile [put]
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	var patch entity.UserProfilePatch
	if err := c.BodyParser(&patch); err != nil {
		return badBody(c)
	}
	out, err := h.svc.UpdateProfile(c.UserContext(), GetUserID(c), patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetVetProfile godoc
// @Summary      Perfil de vet por userId
// @Tags         vets
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "sub del usuario"
// @Success      200     {object}  entity.VetProfile
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /users/vet/{userId} [get]
func (h *ProfileHandler) GetVetProfile(c *fiber.Ctx) error {
	out, err := h.svc.GetVetProfile(c.UserContext(), c.Params("userId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateVetProfile godoc
// @Summary      Crear el perfil de vet del usuario autenticado
// @Tags         vets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      entity.VetProfile  true  "clinicName, licenseNumber..."
// @Success      201   {object}  entity.VetProfile
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /users/vet [post]
func (h *ProfileHandler) CreateVetProfile(c *fiber.Ctx) error {
	var in entity.VetProfile
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.svc.CreateVetProfile(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetShelterProfile godoc
// @Summary      Perfil de refugio por userId
// @Tags         shelters
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "sub del usuario"
// @Success      200     {object}  entity.ShelterProfile
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /users/shelter/{userId} [get]
func (h *ProfileHandler) GetShelterProfile(c *fiber.Ctx) error {
	out, err := h.svc.GetShelterProfile(c.UserContext(), c.Params("userId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateShelterProfile godoc
// @Summary      Crear el perfil de refugio del usuario autenticado
// @Tags         shelters
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      entity.ShelterProfile  true  "shelterName, capacity..."
// @Success      201   {object}  entity.ShelterProfile
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /users/shelter [post]
func (h *ProfileHandler) CreateShelterProfile(c *fiber.Ctx) error {
	var in entity.ShelterProfile
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.svc.CreateShelterProfile(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
