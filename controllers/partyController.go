package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Milaston7/ARRENDAKI-sub001/database"
	"github.com/Milaston7/ARRENDAKI-sub001/middlewares"
	"github.com/Milaston7/ARRENDAKI-sub001/models"
	"github.com/Milaston7/ARRENDAKI-sub001/utils"
)

type PartyCreateDTO struct {
	Name         string `json:"name" validate:"required,min=1"`
	NIF          string `json:"nif" validate:"required,min=1"`
	Address      string `json:"address" validate:"required,min=1"`
	Municipality string `json:"municipality" validate:"required,min=1"`
	Province     string `json:"province" validate:"required,min=1"`
	Email        string `json:"email" validate:"omitempty,email"`
	PhoneNumber  string `json:"phone_number" validate:"omitempty"`
}

type PartyUpdateDTO struct {
	Name         *string `json:"name" validate:"omitempty,min=1"`
	Address      *string `json:"address" validate:"omitempty,min=1"`
	Municipality *string `json:"municipality" validate:"omitempty,min=1"`
	Province     *string `json:"province" validate:"omitempty,min=1"`
	Email        *string `json:"email" validate:"omitempty,email"`
	PhoneNumber  *string `json:"phone_number" validate:"omitempty"`
}

// POST /api/party
func CreateParty(c *fiber.Ctx) error {
	var in PartyCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "agency db unavailable")
	}

	party := models.Party{
		Name:         in.Name,
		NIF:          in.NIF,
		Address:      in.Address,
		Municipality: in.Municipality,
		Province:     in.Province,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		Active:       true,
	}
	if err := db.Create(&party).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create party")
	}
	return c.JSON(party)
}

// GET /api/parties
func GetParties(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "agency db unavailable")
	}

	var parties []models.Party
	if err := db.Find(&parties).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(fiber.Map{"parties": parties, "message": "success"})
}

// GET /api/party/:id
func GetParty(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing party id in path")
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "agency db unavailable")
	}

	var party models.Party
	if err := db.First(&party, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "party not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(party)
}

// PUT /api/party/:id
func UpdateParty(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing party id in path")
	}

	var in PartyUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&in)

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "agency db unavailable")
	}

	var existing models.Party
	if err := db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "party not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	updates := utils.UpdatesFromPtrDTO(&in, nil)
	if len(updates) > 0 {
		if err := db.Model(&models.Party{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update party")
		}
	}

	var out models.Party
	if err := db.First(&out, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to reload party")
	}
	return c.JSON(out)
}
