package render

import (
	"fmt"
	"time"

	"github.com/Milaston7/ARRENDAKI-sub001/money"
)

const (
	headingRental = "Contrato de Arrendamento Urbano"
	headingSale   = "Contrato-Promessa de Compra e Venda"

	// ListingRental is the listing type that selects the rental heading;
	// every other value falls through to the sale variant.
	ListingRental = "Arrendar"

	contractTermMonths = 12
)

// contractText is the assembled clause body of a contract before layout.
type contractText struct {
	Heading   string
	Clauses   []string
	StartDate time.Time
	EndDate   time.Time

	// signature block keys
	OwnerKey  string
	ViewerKey string
}

// buildContract synthesizes the ten numbered clauses for a contract request.
// The caller has already handled the override path; this is generation only.
func buildContract(req DocumentRequest, currency string, issued time.Time) contractText {
	var prop PropertyInfo
	if req.Property != nil {
		prop = *req.Property
	}

	heading := headingSale
	if prop.ListingType == ListingRental {
		heading = headingRental
	}

	title := resolveText(prop.Title, blankField)
	address := resolveText(prop.Address, blankField)
	municipality := resolveText(prop.Municipality, blankField)
	province := resolveText(prop.Province, blankField)
	ownerKey := resolveText(prop.OwnerNIF, blankField)

	viewerName := resolveText(req.Viewer.Name, blankField)
	viewerNIF := resolveText(req.Viewer.NIF, blankField)

	amount := money.Format(resolveAmount(req.Transaction), currency)

	start := issued
	end := money.AddMonthsClamped(start, contractTermMonths)

	clauses := []string{
		fmt.Sprintf("CLÁUSULA 1ª (Objecto) — O presente contrato tem por objecto o imóvel denominado %q, sito em %s, município de %s, província de %s.",
			title, address, municipality, province),
		fmt.Sprintf("CLÁUSULA 2ª (Partes) — Celebram o presente contrato o proprietário identificado pelo documento n.º %s e %s, portador do documento n.º %s.",
			ownerKey, viewerName, viewerNIF),
		fmt.Sprintf("CLÁUSULA 3ª (Prazo) — O contrato vigora pelo prazo de %d meses, com início em %s e termo em %s.",
			contractTermMonths, money.FormatDate(start), money.FormatDate(end)),
		fmt.Sprintf("CLÁUSULA 4ª (Valor) — O valor mensal acordado é de %s, a liquidar nos termos da cláusula seguinte.",
			amount),
		"CLÁUSULA 5ª (Pagamento) — O pagamento é efectuado até ao dia 8 (oito) de cada mês, por transferência bancária ou outro meio acordado por escrito entre as partes.",
		fmt.Sprintf("CLÁUSULA 6ª (Caução) — Na assinatura do presente contrato é prestada caução de valor igual a uma mensalidade (%s), restituível no termo do contrato, deduzidos eventuais danos.",
			amount),
		"CLÁUSULA 7ª (Obrigações do proprietário) — O proprietário obriga-se a entregar o imóvel em condições de habitabilidade e a assegurar as obras de conservação estrutural que se mostrem necessárias.",
		"CLÁUSULA 8ª (Obrigações da contraparte) — A contraparte obriga-se a conservar o imóvel, a não lhe dar uso diverso do acordado e a não o ceder a terceiros sem autorização escrita do proprietário.",
		fmt.Sprintf("CLÁUSULA 9ª (Incumprimento) — O incumprimento das obrigações previstas confere à parte lesada o direito de resolver o contrato, sem prejuízo da indemnização devida nos termos da lei angolana, mantendo-se devidas as prestações vencidas até %s.",
			money.FormatDate(end)),
		fmt.Sprintf("CLÁUSULA 10ª (Foro) — Para dirimir qualquer litígio emergente do presente contrato é competente o foro da província de %s, com renúncia expressa a qualquer outro.",
			province),
	}

	return contractText{
		Heading:   heading,
		Clauses:   clauses,
		StartDate: start,
		EndDate:   end,
		OwnerKey:  ownerKey,
		ViewerKey: firstNameToken(req.Viewer.Name),
	}
}
