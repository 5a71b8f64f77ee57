package render

import (
	"time"
)

// DocumentType is the closed set of documents the renderer knows how to
// produce. Anything else is rejected before a template runs.
type DocumentType string

const (
	DocumentContract DocumentType = "contract"
	DocumentInvoice  DocumentType = "invoice"
	DocumentReceipt  DocumentType = "receipt"
)

func (t DocumentType) Valid() bool {
	switch t {
	case DocumentContract, DocumentInvoice, DocumentReceipt:
		return true
	}
	return false
}

// PartyInfo identifies a natural person or company appearing on a document.
type PartyInfo struct {
	Name         string `json:"name"`
	NIF          string `json:"nif"` // national id / tax number
	Address      string `json:"address"`
	Municipality string `json:"municipality"`
	Province     string `json:"province"`
}

// PropertyInfo describes the listing a contract is drawn up for.
type PropertyInfo struct {
	Title        string `json:"title"`
	ListingType  string `json:"listing_type"` // "Arrendar" | "Vender"
	Address      string `json:"address"`
	Municipality string `json:"municipality"`
	Province     string `json:"province"`
	OwnerNIF     string `json:"owner_nif"`
}

// TransactionInfo is the monetary event a financial document refers to.
type TransactionInfo struct {
	Amount      float64 `json:"amount" validate:"gte=0"`
	Currency    string  `json:"currency" validate:"omitempty,iso4217"`
	Description string  `json:"description"`
	Reference   string  `json:"reference"`
	Method      string  `json:"method"`
}

// DocumentRequest is the full input of one render. Only the type and id are
// required; every other field resolves to an explicit default.
type DocumentRequest struct {
	Type                 DocumentType     `json:"document_type" validate:"required"`
	ID                   string           `json:"document_id" validate:"required"`
	IssueDate            time.Time        `json:"issue_date"`
	Viewer               PartyInfo        `json:"viewer"`
	Counterparty         *PartyInfo       `json:"counterparty,omitempty"`
	Property             *PropertyInfo    `json:"property,omitempty"`
	Transaction          *TransactionInfo `json:"transaction,omitempty"`
	ContractBodyOverride string           `json:"contract_body_override,omitempty"`
}
