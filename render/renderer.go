// Package render turns document requests into print-ready marketplace
// documents: rental/sale contracts, invoices with derived tax totals, and
// payment receipts.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Milaston7/ARRENDAKI-sub001/config"
	"github.com/Milaston7/ARRENDAKI-sub001/logger"
	"github.com/Milaston7/ARRENDAKI-sub001/money"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.gohtml"))

const (
	brandName    = "ARRENDAKI"
	brandTagline = "Imóveis em Angola"

	titleInvoice = "Factura"
	titleReceipt = "Recibo de Pagamento"

	genericDescription = "Serviços de intermediação imobiliária"
)

// Renderer renders documents under one immutable configuration.
type Renderer struct {
	cfg  config.Render
	gate *readiness
	log  zerolog.Logger
	now  func() time.Time
}

// New builds a renderer and starts its warm-up gate. Callers must Close it so
// a pending warm-up timer never fires past the renderer's lifetime.
func New(cfg config.Render) *Renderer {
	return &Renderer{
		cfg:  cfg,
		gate: newReadiness(cfg.WarmupDelay),
		log:  logger.WithComponent("render"),
		now:  time.Now,
	}
}

// Ready reports whether warm-up has completed.
func (r *Renderer) Ready() bool { return r.gate.Ready() }

// Close cancels the warm-up timer.
func (r *Renderer) Close() { r.gate.Stop() }

// RenderedDocument is one finished render. Body carries the contract clause
// text verbatim (the override, when given, replaces the synthesized clauses
// entirely); Totals is set on invoices only.
type RenderedDocument struct {
	Type      DocumentType   `json:"document_type"`
	ID        string         `json:"document_id"`
	Title     string         `json:"title"`
	IssueDate time.Time      `json:"issue_date"`
	Body      string         `json:"body,omitempty"`
	Totals    *InvoiceTotals `json:"totals,omitempty"`
	HTML      string         `json:"html"`
}

// Validate rejects a request before any template executes. Legal documents
// must never render partially blank, so the failure surfaces to the caller.
func (r *Renderer) Validate(req DocumentRequest) error {
	if strings.TrimSpace(string(req.Type)) == "" {
		return fieldErr("document_type", ErrMissingRequiredField)
	}
	if !req.Type.Valid() {
		return fieldErr("document_type", ErrUnsupportedDocumentType)
	}
	if strings.TrimSpace(req.ID) == "" {
		return fieldErr("document_id", ErrMissingRequiredField)
	}
	if req.Transaction != nil {
		if req.Transaction.Amount < 0 {
			return fieldErr("transaction.amount", ErrFormattingError)
		}
		if !money.ValidCurrency(req.Transaction.Currency) {
			return fieldErr("transaction.currency", ErrFormattingError)
		}
	}
	return nil
}

// Render validates the request, computes derived figures, and executes the
// template for its document type.
func (r *Renderer) Render(req DocumentRequest) (*RenderedDocument, error) {
	if err := r.Validate(req); err != nil {
		return nil, err
	}

	issued := resolveIssueDate(req.IssueDate, r.now)
	currency := resolveCurrency(req.Transaction, r.cfg.Currency)

	out := &RenderedDocument{
		Type:      req.Type,
		ID:        req.ID,
		IssueDate: issued,
	}

	var (
		name string
		data any
	)
	switch req.Type {
	case DocumentInvoice:
		totals := ComputeTotals(req.Transaction, r.cfg.TaxRate)
		out.Totals = &totals
		out.Title = titleInvoice
		name = "invoice"
		data = invoiceView{
			headerView:  r.header(titleInvoice, req, issued),
			Description: resolveDescription(req.Transaction, genericDescription),
			Reference:   transactionField(req.Transaction, func(t *TransactionInfo) string { return t.Reference }),
			Method:      transactionField(req.Transaction, func(t *TransactionInfo) string { return t.Method }),
			TaxRate:     fmt.Sprintf("%g%%", money.Round2(r.cfg.TaxRate*100)),
			Base:        money.Format(totals.Base, currency),
			Tax:         money.Format(totals.Tax, currency),
			Total:       money.Format(totals.Total, currency),
		}

	case DocumentReceipt:
		out.Title = titleReceipt
		name = "receipt"
		data = receiptView{
			headerView:  r.header(titleReceipt, req, issued),
			Amount:      money.Format(resolveAmount(req.Transaction), currency),
			Description: resolveDescription(req.Transaction, genericDescription),
			Reference:   transactionField(req.Transaction, func(t *TransactionInfo) string { return t.Reference }),
			Method:      transactionField(req.Transaction, func(t *TransactionInfo) string { return t.Method }),
		}

	case DocumentContract:
		ct := buildContract(req, currency, issued)
		view := contractView{
			headerView: r.header(ct.Heading, req, issued),
			Heading:    ct.Heading,
			Clauses:    ct.Clauses,
			OwnerKey:   ct.OwnerKey,
			ViewerKey:  ct.ViewerKey,
		}
		if strings.TrimSpace(req.ContractBodyOverride) != "" {
			view.Override = req.ContractBodyOverride
			out.Body = req.ContractBodyOverride
		} else {
			out.Body = strings.Join(ct.Clauses, "\n\n")
		}
		out.Title = ct.Heading
		name = "contract"
		data = view

	default:
		return nil, fieldErr("document_type", ErrUnsupportedDocumentType)
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		r.log.Error().Err(err).Str("document_id", req.ID).Str("type", string(req.Type)).Msg("template execution failed")
		return nil, fmt.Errorf("render %s: %w", req.Type, err)
	}
	out.HTML = buf.String()
	return out, nil
}

func (r *Renderer) header(title string, req DocumentRequest, issued time.Time) headerView {
	return headerView{
		Brand:     brandView{Name: brandName, Tagline: brandTagline},
		Title:     title,
		Number:    req.ID,
		IssueDate: money.FormatDate(issued),
		Viewer: partyView{
			Name:         resolveText(req.Viewer.Name, blankField),
			NIF:          resolveText(req.Viewer.NIF, blankField),
			Address:      resolveText(req.Viewer.Address, blankField),
			Municipality: resolveText(req.Viewer.Municipality, blankField),
			Province:     resolveText(req.Viewer.Province, blankField),
		},
	}
}

func transactionField(tx *TransactionInfo, get func(*TransactionInfo) string) string {
	if tx == nil {
		return blankField
	}
	return resolveText(get(tx), blankField)
}

// view data: everything is preformatted to strings before the template runs.

type brandView struct {
	Name    string
	Tagline string
}

type partyView struct {
	Name         string
	NIF          string
	Address      string
	Municipality string
	Province     string
}

type headerView struct {
	Brand     brandView
	Title     string
	Number    string
	IssueDate string
	Viewer    partyView
}

type invoiceView struct {
	headerView
	Description string
	Reference   string
	Method      string
	TaxRate     string
	Base        string
	Tax         string
	Total       string
}

type receiptView struct {
	headerView
	Amount      string
	Description string
	Reference   string
	Method      string
}

type contractView struct {
	headerView
	Heading   string
	Override  string
	Clauses   []string
	OwnerKey  string
	ViewerKey string
}
