package middlewares

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Milaston7/ARRENDAKI-sub001/database"
	"github.com/Milaston7/ARRENDAKI-sub001/models"
)

// idempotencyStore isolates idempotency-record persistence from the handler
// flow, so the replay decision can be exercised without a live Postgres.
type idempotencyStore interface {
	// lookupOrCreate returns the record for rec.Key, creating a pending one
	// when none exists yet.
	lookupOrCreate(schema string, rec models.IdempotencyKey) (models.IdempotencyKey, error)
	// complete stores the handler's response against key, best-effort.
	complete(schema, key string, status int, body []byte)
}

// gormIdempotencyStore runs each phase in its own short transaction with
// SET LOCAL search_path, to avoid leaking search_path on pooled connections.
type gormIdempotencyStore struct{}

func (gormIdempotencyStore) lookupOrCreate(schema string, rec models.IdempotencyKey) (models.IdempotencyKey, error) {
	var existing models.IdempotencyKey
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`SET LOCAL search_path = "` + schema + `", public`).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "idempotency schema pin failed")
		}

		if err := tx.Where("key = ?", rec.Key).First(&existing).Error; err != nil {
			if err != gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusInternalServerError, "idempotency lookup failed")
			}
			if e2 := tx.Create(&rec).Error; e2 != nil {
				// Could be unique race: another request created it first, read again
				if e3 := tx.Where("key = ?", rec.Key).First(&existing).Error; e3 != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "idempotency create failed")
				}
				return nil
			}
			existing = rec
		}
		return nil
	})
	return existing, err
}

func (gormIdempotencyStore) complete(schema, key string, status int, body []byte) {
	_ = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`SET LOCAL search_path = "` + schema + `", public`).Error; err != nil {
			return nil // best-effort: don't break the successful response
		}
		now := time.Now().UTC()
		blob := make([]byte, len(body))
		copy(blob, body)

		return tx.Model(&models.IdempotencyKey{}).
			Where("key = ?", key).
			Updates(map[string]any{
				"response_status": status,
				"response_body":   blob,
				"completed_at":    &now,
			}).Error
	})
}

// Idempotency processes Idempotency-Key for mutating HTTP methods in a
// schema-safe way, so a retried document issuance never yields two documents.
// A completed response is replayed verbatim without running the handler.
func Idempotency() fiber.Handler {
	return idempotencyWith(gormIdempotencyStore{})
}

func idempotencyWith(store idempotencyStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		method := strings.ToUpper(c.Method())
		if method != fiber.MethodPost && method != fiber.MethodPut && method != fiber.MethodPatch && method != fiber.MethodDelete {
			return c.Next()
		}

		key := strings.TrimSpace(c.Get("Idempotency-Key"))
		if key == "" {
			return c.Next()
		}
		if len(key) > 128 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Idempotency-Key too long"})
		}

		schema, _ := c.Locals("schema").(string)
		userID, _ := c.Locals("userID").(string)
		if schema == "" || userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "auth context missing"})
		}

		path := c.OriginalURL() // includes query string
		body := c.Body()

		// Build deterministic request hash: method|path|body|schema|user
		h := sha256.New()
		h.Write([]byte(method))
		h.Write([]byte{'\n'})
		h.Write([]byte(path))
		h.Write([]byte{'\n'})
		h.Write(body)
		h.Write([]byte{'\n'})
		h.Write([]byte(schema))
		h.Write([]byte{'\n'})
		h.Write([]byte(userID))
		reqHash := hex.EncodeToString(h.Sum(nil))

		existing, err := store.lookupOrCreate(schema, models.IdempotencyKey{
			Key:            key,
			RequestHash:    reqHash,
			Method:         method,
			Path:           path,
			TenantSchema:   schema,
			UserID:         userID,
			ResponseStatus: 0,
		})
		if err != nil {
			return err
		}

		if existing.RequestHash != reqHash {
			return fiber.NewError(fiber.StatusConflict, "Idempotency-Key reuse with different request")
		}
		if existing.ResponseStatus != 0 && existing.ResponseBody != nil {
			// Completed response stored: replay it, never re-run the handler.
			c.Status(existing.ResponseStatus)
			return c.Send(existing.ResponseBody)
		}

		// Pending/in-progress: run the handler once.
		if err := c.Next(); err != nil {
			return err
		}

		store.complete(schema, key, c.Response().StatusCode(), c.Response().Body())
		return nil
	}
}
