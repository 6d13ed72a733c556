package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/homeledger-dev/homeledger/internal/date"
	"github.com/homeledger-dev/homeledger/internal/model"
)

// Header is the CSV header for transactions.csv. One row per split;
// rows of the same transaction share everything but Account ID and Amount.
const Header = "Transaction ID,Date,Created At,Payee,Description,Account ID,Amount"

const (
	numFields    = 7
	colTxnID     = 0
	colDate      = 1
	colCreatedAt = 2
	colPayee     = 3
	colDesc      = 4
	colAcctID    = 5
	colAmount    = 6
)

// quote wraps a field in double quotes, doubling embedded quotes
// (RFC 4180). Payee and Description are always quoted in this format,
// whether or not they need it.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Serialize renders transactions as CSV text: the header, then one row
// per split in transaction order, splits in their per-transaction order.
// Written by hand rather than with csv.Writer because the format quotes
// Payee and Description unconditionally and nothing else.
func Serialize(txns []model.Transaction) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')

	for _, txn := range txns {
		for _, split := range txn.Splits {
			b.WriteString(txn.ID)
			b.WriteByte(',')
			b.WriteString(txn.Date.String())
			b.WriteByte(',')
			b.WriteString(strconv.FormatInt(txn.CreatedAt, 10))
			b.WriteByte(',')
			b.WriteString(quote(txn.Payee))
			b.WriteByte(',')
			b.WriteString(quote(txn.Description))
			b.WriteByte(',')
			b.WriteString(split.AccountID)
			b.WriteByte(',')
			b.WriteString(split.Amount.String())
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Parse reads CSV text back into transactions. Rows sharing a
// Transaction ID are grouped into one transaction, splits appended in
// row-encounter order; the result is sorted by CreatedAt descending.
//
// Damaged rows never abort the read: short rows are skipped as
// MalformedRow, rows with an unparseable Amount, date, or timestamp are
// skipped as ParseError, and every skip is reported in the second
// return value.
func Parse(text string) ([]model.Transaction, []RowError) {
	cr := csv.NewReader(strings.NewReader(text))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var (
		txns     []model.Transaction
		rowErrs  []RowError
		byID     = make(map[string]int)
		record   = 0
		sawFirst = false
	)

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if !sawFirst {
			// Header row.
			sawFirst = true
			if err == nil {
				continue
			}
		}
		record++
		if err != nil {
			rowErrs = append(rowErrs, RowError{Record: record, Kind: ParseError, Detail: err.Error()})
			continue
		}
		if len(rec) < numFields {
			rowErrs = append(rowErrs, RowError{
				Record: record,
				Kind:   MalformedRow,
				Detail: fmt.Sprintf("expected %d fields, got %d", numFields, len(rec)),
			})
			continue
		}

		d, err := date.Parse(rec[colDate])
		if err != nil {
			rowErrs = append(rowErrs, RowError{Record: record, Kind: ParseError, Detail: err.Error()})
			continue
		}
		createdAt, err := strconv.ParseInt(rec[colCreatedAt], 10, 64)
		if err != nil {
			rowErrs = append(rowErrs, RowError{
				Record: record,
				Kind:   ParseError,
				Detail: fmt.Sprintf("parsing created-at %q: %v", rec[colCreatedAt], err),
			})
			continue
		}
		amount, err := decimal.NewFromString(rec[colAmount])
		if err != nil {
			rowErrs = append(rowErrs, RowError{
				Record: record,
				Kind:   ParseError,
				Detail: fmt.Sprintf("parsing amount %q: %v", rec[colAmount], err),
			})
			continue
		}

		split := model.Split{AccountID: rec[colAcctID], Amount: amount}
		id := rec[colTxnID]
		if i, ok := byID[id]; ok {
			txns[i].Splits = append(txns[i].Splits, split)
			continue
		}
		byID[id] = len(txns)
		txns = append(txns, model.Transaction{
			ID:          id,
			Date:        d,
			Payee:       rec[colPayee],
			Description: rec[colDesc],
			CreatedAt:   createdAt,
			Splits:      []model.Split{split},
		})
	}

	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].CreatedAt > txns[j].CreatedAt
	})
	return txns, rowErrs
}
