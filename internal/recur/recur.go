package recur

import (
	"strings"
	"time"

	"github.com/homeledger-dev/homeledger/internal/date"
	"github.com/homeledger-dev/homeledger/internal/id"
	"github.com/homeledger-dev/homeledger/internal/model"
)

// Marker is appended to the description of every materialized transaction
// so they are recognizable in the register.
const Marker = "(recurring)"

// CatchUpPolicy controls how many transactions a rule emits when more
// than one period has elapsed since it was last advanced.
type CatchUpPolicy string

const (
	// CatchUpSingle emits at most one transaction per rule per
	// invocation, advancing the due date by one period, no matter how
	// long the rule sat overdue. This avoids surprise bulk generation
	// after a long absence and is the default.
	CatchUpSingle CatchUpPolicy = "single"
	// CatchUpAll emits one transaction per elapsed period until the rule
	// is no longer due.
	CatchUpAll CatchUpPolicy = "all"
)

// Options configures an Advance call. The zero value selects the single
// catch-up policy, random IDs, and the wall clock.
type Options struct {
	Policy CatchUpPolicy
	NewID  func() string // ID source for emitted transactions
	Now    func() int64  // creation timestamp source, Unix milliseconds
}

func (o Options) withDefaults() Options {
	if o.Policy == "" {
		o.Policy = CatchUpSingle
	}
	if o.NewID == nil {
		o.NewID = id.New
	}
	if o.Now == nil {
		o.Now = func() int64 { return time.Now().UnixMilli() }
	}
	return o
}

// Result is what one Advance invocation produced. Rules is the full rule
// set with due rules moved forward; Emitted holds only the newly
// materialized transactions, for the caller to merge into its store.
type Result struct {
	Rules   []model.RecurringTransaction
	Emitted []model.Transaction
}

// NextDueDate moves a due date forward by one period. Monthly and yearly
// advances use calendar normalization: day-of-month overflow rolls into
// the next month, so 2024-01-31 + monthly = 2024-03-02.
// Unknown frequencies return d unchanged.
func NextDueDate(d date.Date, freq model.Frequency) date.Date {
	switch freq {
	case model.FrequencyDaily:
		return d.AddDays(1)
	case model.FrequencyWeekly:
		return d.AddDays(7)
	case model.FrequencyMonthly:
		return d.AddMonths(1)
	case model.FrequencyYearly:
		return d.AddYears(1)
	default:
		return d
	}
}

// Advance runs every rule's state machine against an explicit today.
//
// Inactive rules and rules with an unknown frequency pass through
// untouched. A due rule (nextDueDate <= today) emits a transaction dated
// the day it was due — not today — with the rule's splits copied
// verbatim, then moves lastRun to the emitted date and nextDueDate one
// period forward. Under CatchUpSingle that happens at most once per rule
// per call, so a second call with the same today emits nothing.
//
// Existing transactions are consulted only to keep CreatedAt strictly
// increasing across the merged ledger; they are never modified.
func Advance(rules []model.RecurringTransaction, txns []model.Transaction, today date.Date, opts Options) Result {
	opts = opts.withDefaults()

	createdAt := opts.Now()
	for _, txn := range txns {
		if txn.CreatedAt >= createdAt {
			createdAt = txn.CreatedAt + 1
		}
	}

	out := Result{Rules: make([]model.RecurringTransaction, 0, len(rules))}
	for _, rule := range rules {
		if !rule.Active || !knownFrequency(rule.Frequency) {
			out.Rules = append(out.Rules, rule)
			continue
		}

		for !rule.NextDueDate.After(today) {
			out.Emitted = append(out.Emitted, materialize(rule, opts.NewID(), createdAt))
			createdAt++

			rule.LastRun = rule.NextDueDate
			rule.NextDueDate = NextDueDate(rule.NextDueDate, rule.Frequency)

			if opts.Policy == CatchUpSingle {
				break
			}
		}
		out.Rules = append(out.Rules, rule)
	}
	return out
}

func knownFrequency(f model.Frequency) bool {
	switch f {
	case model.FrequencyDaily, model.FrequencyWeekly, model.FrequencyMonthly, model.FrequencyYearly:
		return true
	}
	return false
}

func materialize(rule model.RecurringTransaction, newID string, createdAt int64) model.Transaction {
	splits := make([]model.Split, len(rule.Splits))
	copy(splits, rule.Splits)
	return model.Transaction{
		ID:          newID,
		Date:        rule.NextDueDate,
		Payee:       rule.Payee,
		Description: strings.TrimSpace(rule.Description + " " + Marker),
		CreatedAt:   createdAt,
		Splits:      splits,
	}
}
