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

type PropertyCreateDTO struct {
	Title        string  `json:"title" validate:"required,min=1"`
	ListingType  string  `json:"listing_type" validate:"required,oneof=Arrendar Vender"`
	Address      string  `json:"address" validate:"required,min=1"`
	Municipality string  `json:"municipality" validate:"required,min=1"`
	Province     string  `json:"province" validate:"required,min=1"`
	Amount       float64 `json:"amount" validate:"gte=0"`
	Currency     string  `json:"currency" validate:"omitempty,iso4217"`
	OwnerID      uint    `json:"owner_id" validate:"required"`
}

type PropertyUpdateDTO struct {
	Title        *string  `json:"title" validate:"omitempty,min=1"`
	ListingType  *string  `json:"listing_type" validate:"omitempty,oneof=Arrendar Vender"`
	Address      *string  `json:"address" validate:"omitempty,min=1"`
	Municipality *string  `json:"municipality" validate:"omitempty,min=1"`
	Province     *string  `json:"province" validate:"omitempty,min=1"`
	Amount       *float64 `json:"amount" validate:"omitempty,gte=0"`
	Currency     *string  `json:"currency" validate:"omitempty,iso4217"`
	Active       *bool    `json:"active"`
}

// POST /api/property
func CreateProperty(c *fiber.Ctx) error {
	var in PropertyCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "agency db unavailable")
	}

	// Owner must exist; properties never reference dangling parties.
	var owner models.Party
	if err := db.First(&owner, "id = ?", in.OwnerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "owner party not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	property := models.Property{
		Title:        in.Title,
		ListingType:  in.ListingType,
		Address:      in.Address,
		Municipality: in.Municipality,
		Province:     in.Province,
		Amount:       in.Amount,
		Currency:     strings.ToUpper(in.Currency),
		OwnerID:      in.OwnerID,
		Active:       true,
	}
	if err := db.Create(&property).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create property")
	}

	db.Preload("Owner").First(&property, "id = ?", property.Id)
	return c.JSON(property)
}

// GET /api/properties
func GetProperties(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "agency db unavailable")
	}

	var properties []models.Property
	if err := db.Preload("Owner").Find(&properties).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(fiber.Map{"properties": properties, "message": "success"})
}

// GET /api/property/:id
func GetProperty(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing property id in path")
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "agency db unavailable")
	}

	var property models.Property
	if err := db.Preload("Owner").First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "property not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(property)
}

// PUT /api/property/:id
func UpdateProperty(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing property id in path")
	}

	var in PropertyUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&in)
	if in.Currency != nil {
		upper := strings.ToUpper(*in.Currency)
		in.Currency = &upper
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "agency db unavailable")
	}

	var existing models.Property
	if err := db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "property not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	updates := utils.UpdatesFromPtrDTO(&in, nil)
	if len(updates) > 0 {
		if err := db.Model(&models.Property{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update property")
		}
	}

	var out models.Property
	if err := db.Preload("Owner").First(&out, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to reload property")
	}
	return c.JSON(out)
}
