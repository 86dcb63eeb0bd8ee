package billtext

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kmdeleon/vendorbill-extraction/dto"
)

// valueTail recognizes a value-shaped line ending: a digit or a percent
// sign. Every complete table row ends in one (amounts end in digits),
// wrapped description fragments do not.
var valueTail = regexp.MustCompile(`[0-9%]$`)

// valueToken matches one whole value-shaped row field: a bare number, a
// percent rate, or a currency-prefixed amount.
var valueToken = regexp.MustCompile(`^(?:\d+(?:\.\d+)?%?|PHP[0-9,]+\.\d{2})$`)

// extractTableBlock isolates the substring of the raw view holding one
// table's rows: it starts after the table marker line and ends at the
// totals section, the other table's marker, or end of text, whichever
// comes first. An empty string means the table is not present.
func extractTableBlock(raw string, marker, otherMarker, totalsMarker *regexp.Regexp) string {
	loc := marker.FindStringIndex(raw)
	if loc == nil {
		return ""
	}
	block := raw[loc[1]:]

	end := len(block)
	if other := otherMarker.FindStringIndex(block); other != nil && other[0] < end {
		end = other[0]
	}
	if totals := totalsMarker.FindStringIndex(block); totals != nil && totals[0] < end {
		end = totals[0]
	}
	return block[:end]
}

// mergeWrappedLines turns physical lines into logical rows. A line that
// does not end in a value-shaped token is a description that
// soft-wrapped onto an extra physical line: it is glued back into the
// immediately preceding row, never into a later one. Running the merge
// over already-merged rows is a no-op, since every merged row keeps its
// value-shaped tail. A leading fragment with no preceding row stands
// alone; strict matching rejects it later.
func mergeWrappedLines(lines []string) []string {
	var rows []string
	for _, line := range lines {
		if len(rows) > 0 && !valueTail.MatchString(line) {
			rows[len(rows)-1] = spliceContinuation(rows[len(rows)-1], line)
			continue
		}
		rows = append(rows, line)
	}
	return rows
}

// spliceContinuation joins a wrapped fragment back into the description
// field of a row: it goes in front of the row's trailing run of value
// tokens, with a single separating space, so the row still ends in its
// numeric fields.
func spliceContinuation(row, fragment string) string {
	fields := strings.Fields(row)
	i := len(fields)
	for i > 0 && valueToken.MatchString(fields[i-1]) {
		i--
	}
	parts := make([]string, 0, len(fields)+1)
	parts = append(parts, fields[:i]...)
	parts = append(parts, fragment)
	parts = append(parts, fields[i:]...)
	return strings.Join(parts, " ")
}

// tableRows splits a block into trimmed, merged logical rows, dropping
// blanks and repeated column-header lines (the source layout reprints
// the header across page breaks).
func tableRows(block string, headerRow *regexp.Regexp) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || headerRow.MatchString(line) {
			continue
		}
		lines = append(lines, line)
	}
	return mergeWrappedLines(lines)
}

// parseItemRows matches each logical row of the items block against the
// strict item pattern. Rows that fail are dropped, never coerced: the
// parser trades recall for precision.
func (e *extraction) parseItemRows(block string) []dto.ItemLine {
	var items []dto.ItemLine
	for _, row := range tableRows(block, e.rules.ItemsHeaderRow) {
		m := e.rules.ItemRow.FindStringSubmatch(row)
		if m == nil {
			e.rejectRow("items", row)
			continue
		}
		quantity, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			e.rejectRow("items", row)
			continue
		}
		rate, err := strconv.ParseFloat(m[3], 64)
		if err != nil || rate > 100 {
			e.rejectRow("items", row)
			continue
		}
		taxAmount := ParseAmount(m[4])
		unitRate := ParseAmount(m[5])
		amount := ParseAmount(m[6])
		if taxAmount == nil || unitRate == nil || amount == nil {
			e.rejectRow("items", row)
			continue
		}
		items = append(items, dto.ItemLine{
			Name:           strings.TrimSpace(m[1]),
			Quantity:       quantity,
			TaxRatePercent: rate,
			TaxAmount:      *taxAmount,
			UnitRate:       *unitRate,
			Amount:         *amount,
		})
	}
	return items
}

// parseExpenseRows matches each logical row of the expense block
// against the ordered expense patterns, longest first. Later patterns
// accept rows whose trailing money fields were not printed; those
// fields stay absent for reconciliation to fill.
func (e *extraction) parseExpenseRows(block string) []dto.ExpenseLine {
	var expenses []dto.ExpenseLine
	for _, row := range tableRows(block, e.rules.ExpHeaderRow) {
		line, ok := e.matchExpenseRow(row)
		if !ok {
			e.rejectRow("expenses", row)
			continue
		}
		expenses = append(expenses, line)
	}
	return expenses
}

func (e *extraction) matchExpenseRow(row string) (dto.ExpenseLine, bool) {
	for _, pattern := range e.rules.ExpenseRows {
		m := pattern.FindStringSubmatch(row)
		if m == nil {
			continue
		}
		rate, err := strconv.ParseFloat(m[2], 64)
		if err != nil || rate > 100 {
			continue
		}
		line := dto.ExpenseLine{
			AccountName:    strings.TrimSpace(m[1]),
			TaxRatePercent: &rate,
		}
		if len(m) > 3 {
			line.TaxAmount = ParseAmount(m[3])
		}
		if len(m) > 4 {
			line.Amount = ParseAmount(m[4])
		}
		return line, true
	}
	return dto.ExpenseLine{}, false
}

func (e *extraction) rejectRow(table, row string) {
	e.rejected++
	e.log.Debug().Str("table", table).Str("row", row).Msg("row failed strict shape validation, skipped")
}
