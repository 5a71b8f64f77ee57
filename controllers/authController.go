package controllers

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Milaston7/ARRENDAKI-sub001/database"
	"github.com/Milaston7/ARRENDAKI-sub001/middlewares"
	"github.com/Milaston7/ARRENDAKI-sub001/models"
)

type RegisterDTO struct {
	FirstName       string `json:"first_name" validate:"required,min=1"`
	LastName        string `json:"last_name" validate:"required,min=1"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
	Role            string `json:"role" validate:"omitempty,oneof=owner broker legal_rep tenant"`

	AgencyName   string `json:"agency_name" validate:"required,min=1"`
	AgencyNIF    string `json:"agency_nif" validate:"omitempty"`
	Address      string `json:"address" validate:"required"`
	Municipality string `json:"municipality" validate:"required"`
	Province     string `json:"province" validate:"required"`
}

// POST /api/registration
func Register(c *fiber.Ctx) error {
	var in RegisterDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	if in.Password != in.PasswordConfirm {
		return fiber.NewError(fiber.StatusBadRequest, "passwords do not match")
	}

	var mailExist models.User
	database.DB.Where("email = ?", in.Email).First(&mailExist)
	if mailExist.Email != "" {
		return fiber.NewError(fiber.StatusBadRequest, "email already exists")
	}

	role := in.Role
	if role == "" {
		role = models.RoleTenant
	}

	tx := database.DB.Begin()

	user := models.User{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.TrimSpace(in.Email),
		Role:      role,
		Group:     models.GroupPublic,
	}
	user.SetPassword(in.Password)

	schemaName, err := createSchema(in.AgencyName)
	if err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "registration failed due to internal error")
	}
	user.SchemaName = schemaName

	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusBadRequest, "could not create user")
	}

	agency := models.Agency{
		Name:         strings.TrimSpace(in.AgencyName),
		NIF:          strings.TrimSpace(in.AgencyNIF),
		Address:      strings.TrimSpace(in.Address),
		Municipality: strings.TrimSpace(in.Municipality),
		Province:     strings.TrimSpace(in.Province),
		UserId:       user.Id,
		SchemaName:   schemaName,
	}
	if err := tx.Create(&agency).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusBadRequest, "could not create agency")
	}

	if err := database.MigrateTenantSchema(schemaName); err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "could not migrate agency schema")
	}

	tx.Commit()

	database.DB.Preload("User").First(&agency, "id = ?", agency.Id)
	return c.JSON(agency)
}

func createSchema(agency string) (string, error) {
	safeName := strings.ToLower(strings.TrimSpace(agency))
	safeName = strings.ReplaceAll(safeName, " ", "_")
	// Validate schema name (only letters, numbers, underscores; must start with letter/underscore)
	valid := regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)
	if !valid.MatchString(safeName) {
		return "", fmt.Errorf("invalid schema name after sanitization: %s", safeName)
	}

	if err := database.DB.Exec("CREATE SCHEMA IF NOT EXISTS " + safeName).Error; err != nil {
		return "", err
	}
	return safeName, nil
}

// POST /api/login
func Login(c *fiber.Ctx) error {
	var data map[string]string
	if err := c.BodyParser(&data); err != nil {
		return err
	}

	if _, err := mail.ParseAddress(data["email"]); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid email format")
	}

	var user models.User
	database.DB.Table("public.users").Where("email = ?", data["email"]).First(&user)

	if _, err := uuid.Parse(user.Id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid credentials")
	}
	if err := user.ComparePassword(data["password"]); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid credentials")
	}

	token, err := middlewares.GenerateJWT(user.Id, user.SchemaName, user.Role, user.Group)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not sign token")
	}

	if err := database.MigrateTenantSchema(user.SchemaName); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not migrate agency schema")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.Id,
			"name":  user.FirstName + " " + user.LastName,
			"email": user.Email,
			"role":  user.Role,
			"group": user.Group,
		},
	})
}

// POST /api/logout
func Logout(c *fiber.Ctx) error {
	cookie := fiber.Cookie{
		Name:     "jwt",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	}
	c.Cookie(&cookie)
	return c.JSON(fiber.Map{
		"message": "success",
	})
}
