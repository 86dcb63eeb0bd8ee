package dto

import "github.com/shopspring/decimal"

// TransactionTypeVendorBill tags every record this engine produces.
const TransactionTypeVendorBill = "vendorbill"

// CurrencyPHP is the single currency convention the engine understands.
const CurrencyPHP = "PHP"

// ExtractedDocument is the root record assembled from one bill text.
// It is built exactly once per input and never mutated afterwards,
// except for the reconciliation step which may fill absent optional
// fields on at most one line.
//
// Optional fields are pointers and serialize as JSON null when absent,
// never as an omitted key.
type ExtractedDocument struct {
	TransactionType string      `json:"transactionType"`
	Header          Header      `json:"header"`
	Lines           Lines       `json:"lines"`
	Totals          Totals      `json:"totals"`
	Diagnostics     Diagnostics `json:"diagnostics"`
}

// Header holds the document-level labeled scalars. A nil field means
// no pattern matched; dates are ISO YYYY-MM-DD when normalizable,
// otherwise the source text verbatim.
type Header struct {
	DocNumber   *string `json:"docNumber"`
	PrimaryDate *string `json:"primaryDate"`
	DueDate     *string `json:"dueDate"`
	PartyName   *string `json:"partyName"`
	SubUnitName *string `json:"subUnitName"`
	TermsName   *string `json:"termsName"`
}

// Lines groups the two line-item tables. Source row order is preserved.
type Lines struct {
	Items    []ItemLine    `json:"items"`
	Expenses []ExpenseLine `json:"expenses"`
}

// ItemLine is one fully-matched items-table row. All fields are
// populated by the strict row pattern; partial item rows never exist.
type ItemLine struct {
	Name           string          `json:"name"`
	Quantity       float64         `json:"quantity"`
	TaxRatePercent float64         `json:"taxRatePercent"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	UnitRate       decimal.Decimal `json:"unitRate"`
	Amount         decimal.Decimal `json:"amount"`
}

// ExpenseLine is one expense-table row. Trailing fields may be absent
// when the source row omitted them; reconciliation may back-fill
// Amount/TaxAmount from the document totals.
type ExpenseLine struct {
	AccountName    string           `json:"accountName"`
	TaxRatePercent *float64         `json:"taxRatePercent"`
	TaxAmount      *decimal.Decimal `json:"taxAmount"`
	Amount         *decimal.Decimal `json:"amount"`
}

// Totals holds the document-level figures scanned from the summary section.
type Totals struct {
	TaxTotal     *decimal.Decimal `json:"taxTotal"`
	AmountTotal  *decimal.Decimal `json:"amountTotal"`
	CurrencyCode string           `json:"currencyCode"`
}

// Diagnostics distinguishes a degraded parse from a clean one.
type Diagnostics struct {
	// FallbackLineSynthesized is true when no rows were recovered and a
	// single sentinel expense line was created from the totals.
	FallbackLineSynthesized bool `json:"fallbackLineSynthesized"`
	// RejectedRowCount is the number of logical rows that failed strict
	// shape validation and were dropped.
	RejectedRowCount int `json:"rejectedRowCount"`
}
