package billtext

import "regexp"

// SentinelAccountName marks the single expense line synthesized when no
// real rows could be recovered but a document total exists.
const SentinelAccountName = "AUTO-GENERATED EXPENSE"

// labelBoundary terminates free-text header values at the next known
// label or section token, so a vendor name never swallows the text that
// follows it in the flattened view.
const labelBoundary = `(?:Vendor|Payee|Subsidiary|Terms|Memo|Currency|Items?|Expenses?|Account|Summary|Tax|Amount|Total|Bill\s*#|Bill\s*Date|Due\s*Date|Date)\s*:?`

const dateToken = `(\d{1,2}[./-]\d{1,2}[./-]\d{4})`

// Ruleset is one named, explicit set of header/table conventions. New
// bill layouts get a new Ruleset, not extra fallback branches stacked
// onto this one.
type Ruleset struct {
	// Header rules, per field, tried in order; first match wins.
	DocNumber   []*regexp.Regexp
	PrimaryDate []*regexp.Regexp
	DueDate     []*regexp.Regexp
	PartyName   []*regexp.Regexp
	SubUnitName []*regexp.Regexp
	TermsName   []*regexp.Regexp

	// Table markers: a bare section title or the full column-header phrase.
	ItemsMarker    *regexp.Regexp
	ExpensesMarker *regexp.Regexp
	ItemsHeaderRow *regexp.Regexp
	ExpHeaderRow   *regexp.Regexp

	// TotalsMarker is the leading token of the totals section; it bounds
	// every table block from below.
	TotalsMarker *regexp.Regexp

	// Strict end-to-end row patterns. Expense rows are an ordered chain:
	// trailing money fields may be absent on the source row.
	ItemRow     *regexp.Regexp
	ExpenseRows []*regexp.Regexp

	TaxTotal    []*regexp.Regexp
	AmountTotal []*regexp.Regexp
}

// DefaultRuleset covers the known vendor-bill layout: PHP-prefixed
// amounts with comma grouping and two decimals, M/D/YYYY dates,
// "Items" and "Expenses" tables terminated by the summary section.
var DefaultRuleset = Ruleset{
	DocNumber: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bbill\s*#\s*:?\s*([A-Za-z0-9][A-Za-z0-9/-]*)`),
		regexp.MustCompile(`(?i)\b(?:bill|invoice)\s*(?:no|number)\.?\s*:?\s*([A-Za-z0-9][A-Za-z0-9/-]*)`),
	},
	PrimaryDate: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bbill\s*date\s*:?\s*` + dateToken),
		// Loose fallback: the date printed right after the bill number.
		// A bare "Date:" rule is deliberately not here; it would also
		// match "Due Date:".
		regexp.MustCompile(`(?i)\bbill\s*#\s*:?\s*[A-Za-z0-9/-]+\s+` + dateToken),
	},
	DueDate: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bdue\s*date\s*:?\s*` + dateToken),
		regexp.MustCompile(`(?i)\bdue\s*:?\s*` + dateToken),
	},
	PartyName: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bvendor\s*:\s*(.+?)(?:\s+` + labelBoundary + `|\s*$)`),
		regexp.MustCompile(`(?i)\bpayee\s*:\s*(.+?)(?:\s+` + labelBoundary + `|\s*$)`),
	},
	SubUnitName: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bsubsidiary\s*:\s*(.+?)(?:\s+` + labelBoundary + `|\s*$)`),
	},
	TermsName: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bterms\s*:\s*(.+?)(?:\s+` + labelBoundary + `|\s*$)`),
	},

	ItemsMarker:    regexp.MustCompile(`(?im)^\s*(?:items?|item\s+quantity\s+tax\s*rate\s+tax\s*amt\.?\s+rate\s+amount)\s*$`),
	ExpensesMarker: regexp.MustCompile(`(?im)^\s*(?:expenses?|account\s+tax\s*rate\s+tax\s*amt\.?\s+amount)\s*$`),
	ItemsHeaderRow: regexp.MustCompile(`(?i)^\s*item\s+quantity\s+tax\s*rate\s+tax\s*amt\.?\s+rate\s+amount\s*$`),
	ExpHeaderRow:   regexp.MustCompile(`(?i)^\s*account\s+tax\s*rate\s+tax\s*amt\.?\s+amount\s*$`),

	TotalsMarker: regexp.MustCompile(`(?im)^\s*(?:summary\b|tax(?:\s+total)?\s+PHP|amount(?:\s+(?:due|total))?\s+PHP|total\s+PHP)`),

	ItemRow: regexp.MustCompile(`^(.+?)\s+(\d+(?:\.\d+)?)\s+(\d{1,3}(?:\.\d+)?)%\s+PHP([0-9,]+\.\d{2})\s+PHP([0-9,]+\.\d{2})\s+PHP([0-9,]+\.\d{2})$`),
	ExpenseRows: []*regexp.Regexp{
		regexp.MustCompile(`^(.+?)\s+(\d{1,3}(?:\.\d+)?)%\s+PHP([0-9,]+\.\d{2})\s+PHP([0-9,]+\.\d{2})$`),
		regexp.MustCompile(`^(.+?)\s+(\d{1,3}(?:\.\d+)?)%\s+PHP([0-9,]+\.\d{2})$`),
		regexp.MustCompile(`^(.+?)\s+(\d{1,3}(?:\.\d+)?)%$`),
	},

	TaxTotal: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\btax\s*total\s*:?\s*PHP\s*([0-9,]+\.\d{2})`),
		regexp.MustCompile(`(?i)\btax\s*:?\s*PHP\s*([0-9,]+\.\d{2})`),
	},
	AmountTotal: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bamount\s*(?:due|total)?\s*:?\s*PHP\s*([0-9,]+\.\d{2})`),
		regexp.MustCompile(`(?im)^\s*total\s*:?\s*PHP\s*([0-9,]+\.\d{2})`),
	},
}
