package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Milaston7/ARRENDAKI-sub001/database"
	"github.com/Milaston7/ARRENDAKI-sub001/middlewares"
	"github.com/Milaston7/ARRENDAKI-sub001/models"
	"github.com/Milaston7/ARRENDAKI-sub001/utils"
)

type TransactionCreateDTO struct {
	PropertyID  *string    `json:"property_id" validate:"omitempty,uuid4"`
	Amount      float64    `json:"amount" validate:"gte=0"`
	Currency    string     `json:"currency" validate:"omitempty,iso4217"`
	Description string     `json:"description" validate:"omitempty"`
	Reference   string     `json:"reference" validate:"omitempty"`
	Method      string     `json:"method" validate:"omitempty"`
	PaidAt      *time.Time `json:"paid_at"`
}

// POST /api/transaction
func CreateTransaction(c *fiber.Ctx) error {
	var in TransactionCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "agency db unavailable")
	}

	paidAt := time.Now()
	if in.PaidAt != nil {
		paidAt = *in.PaidAt
	}

	transaction := models.Transaction{
		PropertyID:  in.PropertyID,
		Amount:      in.Amount,
		Currency:    in.Currency,
		Description: in.Description,
		Reference:   in.Reference,
		Method:      in.Method,
		PaidAt:      paidAt,
	}
	if err := db.Create(&transaction).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create transaction")
	}
	return c.JSON(transaction)
}

// GET /api/transactions
func GetTransactions(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "agency db unavailable")
	}

	var transactions []models.Transaction
	if err := db.Order("paid_at DESC").Find(&transactions).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(fiber.Map{"transactions": transactions, "message": "success"})
}
