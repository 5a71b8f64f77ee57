package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Milaston7/ARRENDAKI-sub001/config"
)

type RendererSuite struct {
	suite.Suite
	renderer *Renderer
}

func TestRendererSuite(t *testing.T) {
	suite.Run(t, new(RendererSuite))
}

func (s *RendererSuite) SetupTest() {
	cfg := config.DefaultRender()
	cfg.WarmupDelay = 0 // gate open immediately for unit tests
	s.renderer = New(cfg)
	s.renderer.now = func() time.Time {
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	}
}

func (s *RendererSuite) TearDownTest() {
	s.renderer.Close()
}

func (s *RendererSuite) TestValidate() {
	s.Run("missing document type", func() {
		_, err := s.renderer.Render(DocumentRequest{ID: "X-1"})
		s.ErrorIs(err, ErrMissingRequiredField)
	})

	s.Run("unknown document type", func() {
		_, err := s.renderer.Render(DocumentRequest{Type: "quotation", ID: "X-1"})
		s.ErrorIs(err, ErrUnsupportedDocumentType)
	})

	s.Run("missing document id", func() {
		_, err := s.renderer.Render(DocumentRequest{Type: DocumentInvoice})
		s.ErrorIs(err, ErrMissingRequiredField)
	})

	s.Run("negative amount is rejected before rendering", func() {
		_, err := s.renderer.Render(DocumentRequest{
			Type:        DocumentInvoice,
			ID:          "FT-1",
			Transaction: &TransactionInfo{Amount: -100000, Currency: "AOA"},
		})
		s.ErrorIs(err, ErrFormattingError)
		var re *RenderError
		s.ErrorAs(err, &re)
		s.Equal("transaction.amount", re.Field)
	})

	s.Run("invalid currency code", func() {
		_, err := s.renderer.Render(DocumentRequest{
			Type:        DocumentInvoice,
			ID:          "FT-1",
			Transaction: &TransactionInfo{Amount: 10, Currency: "KWANZA"},
		})
		s.ErrorIs(err, ErrFormattingError)
	})

	s.Run("render error names the failing field", func() {
		err := s.renderer.Validate(DocumentRequest{Type: "quotation", ID: "X-1"})
		var re *RenderError
		s.ErrorAs(err, &re)
		s.Equal("document_type", re.Field)
	})
}

func (s *RendererSuite) TestInvoice() {
	s.Run("computes and formats totals", func() {
		doc, err := s.renderer.Render(DocumentRequest{
			Type:      DocumentInvoice,
			ID:        "FT-2024-001",
			IssueDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			Viewer:    PartyInfo{Name: "João Baptista", NIF: "007654321LA031"},
			Transaction: &TransactionInfo{
				Amount:      100000,
				Currency:    "AOA",
				Description: "Renda de Março",
				Reference:   "REF-881",
				Method:      "Transferência",
			},
		})
		s.Require().NoError(err)
		s.Require().NotNil(doc.Totals)
		s.Equal(100000.0, doc.Totals.Base)
		s.Equal(14000.0, doc.Totals.Tax)
		s.Equal(114000.0, doc.Totals.Total)
		s.Contains(doc.HTML, "100 000,00 Kz")
		s.Contains(doc.HTML, "14 000,00 Kz")
		s.Contains(doc.HTML, "114 000,00 Kz")
		s.Contains(doc.HTML, "Renda de Março")
		s.Contains(doc.HTML, "REF-881")
		s.Equal("Factura", doc.Title)
	})

	s.Run("missing transaction renders a zero-value invoice", func() {
		doc, err := s.renderer.Render(DocumentRequest{Type: DocumentInvoice, ID: "FT-2024-002"})
		s.Require().NoError(err)
		s.Require().NotNil(doc.Totals)
		s.Zero(doc.Totals.Total)
		s.Contains(doc.HTML, "0,00 Kz")
		s.Contains(doc.HTML, genericDescription)
	})

	s.Run("transaction currency overrides the default", func() {
		doc, err := s.renderer.Render(DocumentRequest{
			Type:        DocumentInvoice,
			ID:          "FT-2024-003",
			Transaction: &TransactionInfo{Amount: 500, Currency: "USD"},
		})
		s.Require().NoError(err)
		s.Contains(doc.HTML, "570,00 US$")
	})
}

func (s *RendererSuite) TestReceipt() {
	s.Run("shows the literal amount without tax derivation", func() {
		doc, err := s.renderer.Render(DocumentRequest{
			Type:        DocumentReceipt,
			ID:          "RC-2024-001",
			Viewer:      PartyInfo{Name: "João Baptista"},
			Transaction: &TransactionInfo{Amount: 114000, Currency: "AOA", Method: "Multicaixa"},
		})
		s.Require().NoError(err)
		s.Nil(doc.Totals)
		s.Contains(doc.HTML, "114 000,00 Kz")
		s.NotContains(doc.HTML, "129 960,00") // no second tax application
		s.Contains(doc.HTML, "Multicaixa")
	})

	s.Run("absent transaction renders a zero-value receipt", func() {
		doc, err := s.renderer.Render(DocumentRequest{Type: DocumentReceipt, ID: "RC-2024-002"})
		s.Require().NoError(err)
		s.Contains(doc.HTML, "0,00 Kz")
	})
}

func (s *RendererSuite) TestContract() {
	base := DocumentRequest{
		Type:      DocumentContract,
		ID:        "CT-2024-001",
		IssueDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Viewer:    PartyInfo{Name: "Mariana dos Santos"},
		Property: &PropertyInfo{
			Title:       "Apartamento T2",
			ListingType: ListingRental,
			Province:    "Benguela",
			OwnerNIF:    "001234567LA018",
		},
	}

	s.Run("synthesized clauses carry the computed end date", func() {
		doc, err := s.renderer.Render(base)
		s.Require().NoError(err)
		s.Contains(doc.Body, "15/01/2025")
		s.Contains(doc.Title, "Arrendamento Urbano")
		s.Contains(doc.HTML, "Mariana")
	})

	s.Run("override replaces the clause body verbatim", func() {
		req := base
		req.ContractBodyOverride = "CUSTOM TEXT"
		doc, err := s.renderer.Render(req)
		s.Require().NoError(err)
		s.Equal("CUSTOM TEXT", doc.Body)
		s.Contains(doc.HTML, "CUSTOM TEXT")
		s.NotContains(doc.HTML, "CLÁUSULA")
	})

	s.Run("zero issue date falls back to the clock", func() {
		req := base
		req.IssueDate = time.Time{}
		doc, err := s.renderer.Render(req)
		s.Require().NoError(err)
		s.Equal(2024, doc.IssueDate.Year())
		s.Contains(doc.Body, "01/06/2024")
	})
}
