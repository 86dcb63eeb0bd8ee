package billtext

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kmdeleon/vendorbill-extraction/dto"
)

// Parser turns the plain text of one vendor bill into a typed record.
// It is immutable and safe for concurrent use; each Parse call owns its
// own derived views and intermediate state.
type Parser struct {
	rules Ruleset
	log   zerolog.Logger
}

func NewParser(log zerolog.Logger) *Parser {
	return &Parser{rules: DefaultRuleset, log: log}
}

// NewParserWithRuleset builds a parser for a non-default bill layout.
func NewParserWithRuleset(log zerolog.Logger, rules Ruleset) *Parser {
	return &Parser{rules: rules, log: log}
}

// extraction is the per-document state of one Parse call.
type extraction struct {
	rules    Ruleset
	log      zerolog.Logger
	rejected int
}

// Parse runs the full pipeline: normalize, header extraction, table
// block isolation and row parsing, totals scan, then reconciliation.
// It never fails; a pattern that does not match only narrows the output.
func (p *Parser) Parse(text string) dto.ExtractedDocument {
	e := &extraction{rules: p.rules, log: p.log}
	raw, flattened := normalizeViews(text)

	doc := dto.ExtractedDocument{
		TransactionType: dto.TransactionTypeVendorBill,
		Header:          e.extractHeader(flattened),
		Totals:          e.extractTotals(raw),
	}

	itemsBlock := extractTableBlock(raw, e.rules.ItemsMarker, e.rules.ExpensesMarker, e.rules.TotalsMarker)
	expensesBlock := extractTableBlock(raw, e.rules.ExpensesMarker, e.rules.ItemsMarker, e.rules.TotalsMarker)
	doc.Lines.Items = e.parseItemRows(itemsBlock)
	doc.Lines.Expenses = e.parseExpenseRows(expensesBlock)

	// Line collections are "zero or more", not optional: empty tables
	// serialize as [] rather than null.
	if doc.Lines.Items == nil {
		doc.Lines.Items = []dto.ItemLine{}
	}
	if doc.Lines.Expenses == nil {
		doc.Lines.Expenses = []dto.ExpenseLine{}
	}

	e.reconcile(&doc)

	doc.Diagnostics.RejectedRowCount = e.rejected
	return doc
}

// extractHeader applies the ordered rule chain of each header field to
// the flattened view. Absence of a match is a normal outcome, not an
// error; missing fields stay nil.
func (e *extraction) extractHeader(flattened string) dto.Header {
	return dto.Header{
		DocNumber:   firstMatch(e.rules.DocNumber, flattened),
		PrimaryDate: normalizedDateMatch(e.rules.PrimaryDate, flattened),
		DueDate:     normalizedDateMatch(e.rules.DueDate, flattened),
		PartyName:   firstMatch(e.rules.PartyName, flattened),
		SubUnitName: firstMatch(e.rules.SubUnitName, flattened),
		TermsName:   firstMatch(e.rules.TermsName, flattened),
	}
}

// firstMatch evaluates candidate patterns in order and returns the
// trimmed capture of the first one that matches. An empty capture
// counts as no match: "present and empty" does not exist here.
func firstMatch(rules []*regexp.Regexp, text string) *string {
	for _, rule := range rules {
		if m := rule.FindStringSubmatch(text); len(m) > 1 {
			value := strings.TrimSpace(m[1])
			if value != "" {
				return &value
			}
		}
	}
	return nil
}

// normalizedDateMatch is firstMatch followed by date normalization;
// a date that cannot be normalized is kept verbatim, never dropped.
func normalizedDateMatch(rules []*regexp.Regexp, text string) *string {
	raw := firstMatch(rules, text)
	if raw == nil {
		return nil
	}
	normalized := NormalizeDate(*raw)
	return &normalized
}
