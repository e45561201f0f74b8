// Package importer parses bank statement exports into client transactions.
// The expected layout is a semicolon-separated CSV with a Date, Description
// and Amount column somewhere below an arbitrary preamble; negative amounts
// become debits, positive amounts credits.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ricardomaia/credo/internal/client"
	"github.com/ricardomaia/credo/internal/encoding"
)

const (
	colDate   = "Date"
	colDesc   = "Description"
	colAmount = "Amount"
)

var dateLayouts = []string{"2006-01-02", "02-01-2006", "02/01/2006"}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Import decodes and parses a statement file. Rows before the header
// landmark are ignored; rows after it that fail to parse abort the import so
// a half-read statement never lands in the store.
func (s *Service) Import(r io.Reader) ([]client.Transaction, error) {
	utf8r, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detecting encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	idxDate, idxAmount := -1, -1
	headerFound := false

	var txs []client.Transaction

	for _, row := range rows {
		if !headerFound {
			idxDate, idxAmount = findHeader(row)
			headerFound = idxDate >= 0 && idxAmount >= 0

			continue
		}

		maxIdx := max(idxDate, idxAmount)
		if len(row) <= maxIdx {
			continue
		}

		dateStr := strings.TrimSpace(row[idxDate])
		amountStr := strings.TrimSpace(row[idxAmount])

		if dateStr == "" || amountStr == "" {
			continue
		}

		date, err := parseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing date %q: %w", dateStr, err)
		}

		amount, err := parseAmount(amountStr)
		if err != nil {
			return nil, fmt.Errorf("parsing amount %q: %w", amountStr, err)
		}

		kind := client.KindCredit
		if amount < 0 {
			kind = client.KindDebit
		}

		txs = append(txs, client.Transaction{
			Kind:   kind,
			Amount: math.Abs(amount),
			Date:   date,
		})
	}

	if !headerFound {
		return nil, fmt.Errorf("no header row with %q and %q columns found", colDate, colAmount)
	}

	return txs, nil
}

// findHeader reports the Date and Amount column indices if the row is the
// header, or (-1, -1) otherwise. The Description column is tolerated but not
// required; the transaction model does not carry it.
func findHeader(row []string) (idxDate, idxAmount int) {
	idxDate, idxAmount = -1, -1

	for i, col := range row {
		switch strings.TrimSpace(col) {
		case colDate:
			idxDate = i
		case colAmount:
			idxAmount = i
		case colDesc:
			// Known column, nothing to record.
		}
	}

	return idxDate, idxAmount
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported date format")
}

// parseAmount handles both decimal conventions: "1.234,56" and "1,234.56",
// plus the plain "1234.56".
func parseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(s, " ", "")

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	if lastComma > lastDot {
		// Comma is the decimal separator; dots are thousands.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	} else if lastComma >= 0 {
		// Dot is the decimal separator; commas are thousands.
		s = strings.ReplaceAll(s, ",", "")
	}

	return strconv.ParseFloat(s, 64)
}
