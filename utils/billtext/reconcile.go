package billtext

import (
	"github.com/shopspring/decimal"

	"github.com/kmdeleon/vendorbill-extraction/dto"
)

// extractTotals scans the raw view for the tax-total and amount-total
// markers, anywhere in the text and independent of table boundaries.
// Either or both may be absent.
func (e *extraction) extractTotals(raw string) dto.Totals {
	totals := dto.Totals{CurrencyCode: dto.CurrencyPHP}
	if m := firstMatch(e.rules.TaxTotal, raw); m != nil {
		totals.TaxTotal = ParseAmount(*m)
	}
	if m := firstMatch(e.rules.AmountTotal, raw); m != nil {
		totals.AmountTotal = ParseAmount(*m)
	}
	return totals
}

// reconcile applies the two fallback rules, in order, after every other
// stage has run. Rule 1 back-fills a single ambiguous expense row from
// the totals; rule 2 synthesizes one sentinel line when nothing was
// recovered at all. Rule 2 never fires when rule 1 found a row, and
// neither rule ever overwrites a successfully parsed field.
func (e *extraction) reconcile(doc *dto.ExtractedDocument) {
	if len(doc.Lines.Items) > 0 {
		return
	}

	if len(doc.Lines.Expenses) == 1 {
		line := &doc.Lines.Expenses[0]
		if line.Amount == nil && doc.Totals.AmountTotal != nil {
			line.Amount = copyDecimal(doc.Totals.AmountTotal)
			e.log.Info().Str("account", line.AccountName).Msg("expense amount back-filled from document total")
		}
		if line.TaxAmount == nil && doc.Totals.TaxTotal != nil {
			line.TaxAmount = copyDecimal(doc.Totals.TaxTotal)
		}
		return
	}

	if len(doc.Lines.Expenses) == 0 && doc.Totals.AmountTotal != nil {
		doc.Lines.Expenses = []dto.ExpenseLine{{
			AccountName: SentinelAccountName,
			TaxAmount:   copyDecimal(doc.Totals.TaxTotal),
			Amount:      copyDecimal(doc.Totals.AmountTotal),
		}}
		doc.Diagnostics.FallbackLineSynthesized = true
		e.log.Warn().Msg("no rows recovered, synthesized a single expense line from totals")
	}
}

func copyDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
