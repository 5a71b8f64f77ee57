package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Milaston7/ARRENDAKI-sub001/database"
	"github.com/Milaston7/ARRENDAKI-sub001/middlewares"
	"github.com/Milaston7/ARRENDAKI-sub001/models"
	"github.com/Milaston7/ARRENDAKI-sub001/render"
)

// The renderer and PDF exporter are process-wide, configured once at startup.
var (
	docRenderer *render.Renderer
	pdfExporter render.PDFExporter
)

// UseRenderer wires the configured renderer into the document handlers.
func UseRenderer(r *render.Renderer, e render.PDFExporter) {
	docRenderer = r
	pdfExporter = e
}

func rendererReady() error {
	if docRenderer == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "renderer not configured")
	}
	if !docRenderer.Ready() {
		return fiber.NewError(fiber.StatusServiceUnavailable, "renderer warming up")
	}
	return nil
}

// POST /api/documents/render — ephemeral render, nothing persisted.
func RenderDocument(c *fiber.Ctx) error {
	if err := rendererReady(); err != nil {
		return err
	}

	var req render.DocumentRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	doc, err := docRenderer.Render(req)
	if err != nil {
		return err
	}
	return c.JSON(doc)
}

// POST /api/documents — render and persist an immutable issued document.
func IssueDocument(c *fiber.Ctx) error {
	if err := rendererReady(); err != nil {
		return err
	}

	var req render.DocumentRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	doc, err := docRenderer.Render(req)
	if err != nil {
		return err
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "agency db unavailable")
	}

	snapshot, err := json.Marshal(req)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not snapshot request")
	}

	number, err := nextDocumentNumber(db, doc.IssueDate.Year())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}

	userID, _ := c.Locals("userID").(string)
	rec := models.Document{
		Number:    number,
		Type:      string(doc.Type),
		Title:     doc.Title,
		IssueDate: doc.IssueDate,
		Request:   datatypes.JSON(snapshot),
		HTML:      doc.HTML,
		IssuedBy:  userID,
	}
	if t := doc.Totals; t != nil {
		rec.Subtotal, rec.TaxTotal, rec.Total = t.Base, t.Tax, t.Total
	} else if doc.Type == render.DocumentReceipt && req.Transaction != nil {
		// receipts carry the literal amount, no tax derivation
		rec.Subtotal, rec.Total = req.Transaction.Amount, req.Transaction.Amount
	}

	if err := db.Create(&rec).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not store document")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"document": rec,
		"rendered": doc,
	})
}

// nextDocumentNumber allocates the next ARD-<year>-<seq> number inside the
// request transaction. The advisory lock serialises concurrent issuances in
// the agency schema, and taking MAX of the existing suffix (rather than a row
// count) keeps deleted rows from ever freeing their numbers.
func nextDocumentNumber(db *gorm.DB, year int) (string, error) {
	if err := db.Exec(`SELECT pg_advisory_xact_lock(hashtext(current_schema() || '.documents_number'))`).Error; err != nil {
		return "", err
	}

	prefix := fmt.Sprintf("ARD-%d-", year)
	var maxSeq int64
	err := db.Model(&models.Document{}).
		Where("number LIKE ?", prefix+"%").
		Select(`COALESCE(MAX(substring(number from '\d+$')::int), 0)`).
		Scan(&maxSeq).Error
	if err != nil {
		return "", err
	}
	return formatDocumentNumber(year, maxSeq+1), nil
}

func formatDocumentNumber(year int, seq int64) string {
	return fmt.Sprintf("ARD-%d-%05d", year, seq)
}

// GET /api/documents
func GetDocuments(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "agency db unavailable")
	}

	var docs []models.Document
	if err := db.Select("id", "number", "type", "title", "issue_date", "subtotal", "tax_total", "total", "issued_by", "created_at").
		Order("created_at DESC").Find(&docs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return c.JSON(fiber.Map{"documents": docs, "message": "success"})
}

// GET /api/document/:id
func GetDocument(c *fiber.Ctx) error {
	doc, err := loadDocument(c)
	if err != nil {
		return err
	}
	return c.JSON(doc)
}

// GET /api/document/:id/print — the platform print flow: same PDF pipeline
// as export, served inline.
func PrintDocument(c *fiber.Ctx) error {
	return sendPDF(c, false)
}

// GET /api/document/:id/export — identical bytes to print; only the
// disposition differs, which is what makes it a file download.
func ExportDocument(c *fiber.Ctx) error {
	return sendPDF(c, true)
}

func sendPDF(c *fiber.Ctx, attachment bool) error {
	doc, err := loadDocument(c)
	if err != nil {
		return err
	}

	pdf, err := pdfExporter.Export(c.Context(), doc.HTML)
	if err != nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "pdf pipeline unavailable")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	if attachment {
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.Number+".pdf"))
	} else {
		c.Set(fiber.HeaderContentDisposition, "inline")
	}
	return c.Send(pdf)
}

func loadDocument(c *fiber.Ctx) (*models.Document, error) {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "missing document id in path")
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "agency db unavailable")
	}

	// Path accepts either the numeric row id or the document number.
	var doc models.Document
	var lookupErr error
	if n, convErr := strconv.Atoi(id); convErr == nil {
		lookupErr = db.First(&doc, "id = ?", n).Error
	} else {
		lookupErr = db.First(&doc, "number = ?", id).Error
	}
	if lookupErr != nil {
		if errors.Is(lookupErr, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "document not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "db error")
	}
	return &doc, nil
}
