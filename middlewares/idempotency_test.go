package middlewares

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Milaston7/ARRENDAKI-sub001/models"
)

type completedCall struct {
	key    string
	status int
	body   string
}

// stubIdempotencyStore serves a canned record so the middleware's replay
// decision can be observed without Postgres.
type stubIdempotencyStore struct {
	record    models.IdempotencyKey
	hasRecord bool
	matchHash bool // copy the incoming request hash onto the served record
	completed []completedCall
}

func (s *stubIdempotencyStore) lookupOrCreate(_ string, rec models.IdempotencyKey) (models.IdempotencyKey, error) {
	if !s.hasRecord {
		return rec, nil // fresh key, created pending
	}
	out := s.record
	if s.matchHash {
		out.RequestHash = rec.RequestHash
	}
	return out, nil
}

func (s *stubIdempotencyStore) complete(_ string, key string, status int, body []byte) {
	s.completed = append(s.completed, completedCall{key: key, status: status, body: string(body)})
}

func newIdempotencyApp(store idempotencyStore, hits *int) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("schema", "agency_test")
		c.Locals("userID", "user-1")
		return c.Next()
	})
	app.Use(idempotencyWith(store))
	app.Post("/api/documents", func(c *fiber.Ctx) error {
		*hits = *hits + 1
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"run": *hits})
	})
	return app
}

func TestIdempotencyReplaysStoredResponseWithoutHandler(t *testing.T) {
	store := &stubIdempotencyStore{
		hasRecord: true,
		matchHash: true,
		record: models.IdempotencyKey{
			Key:            "key-1",
			ResponseStatus: fiber.StatusCreated,
			ResponseBody:   []byte(`{"document":{"number":"ARD-2026-00001"}}`),
		},
	}
	hits := 0
	app := newIdempotencyApp(store, &hits)

	req := httptest.NewRequest(fiber.MethodPost, "/api/documents", strings.NewReader(`{"document_type":"invoice"}`))
	req.Header.Set("Idempotency-Key", "key-1")
	resp, err := app.Test(req)
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, `{"document":{"number":"ARD-2026-00001"}}`, string(body))
	assert.Equal(t, 0, hits, "stored response must be replayed, not re-issued")
	assert.Empty(t, store.completed, "a replay must not overwrite the stored response")
}

func TestIdempotencyRunsHandlerOnceForFreshKey(t *testing.T) {
	store := &stubIdempotencyStore{}
	hits := 0
	app := newIdempotencyApp(store, &hits)

	req := httptest.NewRequest(fiber.MethodPost, "/api/documents", strings.NewReader(`{"document_type":"invoice"}`))
	req.Header.Set("Idempotency-Key", "key-2")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, 1, hits)
	require.Len(t, store.completed, 1)
	assert.Equal(t, "key-2", store.completed[0].key)
	assert.Equal(t, fiber.StatusCreated, store.completed[0].status)
	assert.Contains(t, store.completed[0].body, `"run":1`)
}

func TestIdempotencyRejectsKeyReuseWithDifferentRequest(t *testing.T) {
	store := &stubIdempotencyStore{
		hasRecord: true,
		record: models.IdempotencyKey{
			Key:         "key-3",
			RequestHash: "some-other-request-hash",
		},
	}
	hits := 0
	app := newIdempotencyApp(store, &hits)

	req := httptest.NewRequest(fiber.MethodPost, "/api/documents", strings.NewReader(`{"document_type":"receipt"}`))
	req.Header.Set("Idempotency-Key", "key-3")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, 0, hits)
}

func TestIdempotencySkipsWithoutKeyOrOnReads(t *testing.T) {
	store := &stubIdempotencyStore{}
	hits := 0
	app := newIdempotencyApp(store, &hits)
	app.Get("/api/documents-list", func(c *fiber.Ctx) error {
		hits++
		return c.SendString("ok")
	})

	// No header: handler runs, nothing stored.
	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/api/documents", strings.NewReader(`{}`)))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, 1, hits)
	assert.Empty(t, store.completed)

	// GET with a key: middleware stays out of the way.
	req := httptest.NewRequest(fiber.MethodGet, "/api/documents-list", nil)
	req.Header.Set("Idempotency-Key", "key-4")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, hits)
	assert.Empty(t, store.completed)
}
