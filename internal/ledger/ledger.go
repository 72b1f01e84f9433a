// Package ledger keeps the append-only log of daily verification events.
package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/amdora/dlccontrol/internal/domain"
	"github.com/amdora/dlccontrol/pkg/common"
)

// ReminderHour is the local hour from which a missing daily verification
// starts raising reminders.
const ReminderHour = 12

// Ledger holds verification entries newest-first. Entries are never mutated
// or removed except through a full reset, and order is maintained at
// insertion, never by re-sorting.
type Ledger struct {
	entries []domain.VerificationLog
}

// New wraps a persisted entry slice, assumed to already be newest-first.
func New(entries []domain.VerificationLog) *Ledger {
	return &Ledger{entries: entries}
}

// Record creates an immutable entry stamped with now and prepends it.
func (l *Ledger) Record(verifiedBy, observation string, productsCount int, now time.Time) domain.VerificationLog {
	entry := domain.VerificationLog{
		ID:            common.UUID(),
		Date:          now.Format(time.RFC3339),
		VerifiedBy:    strings.TrimSpace(verifiedBy),
		Observation:   strings.TrimSpace(observation),
		ProductsCount: productsCount,
	}
	l.entries = append([]domain.VerificationLog{entry}, l.entries...)
	return entry
}

// Last returns the most recent entry.
func (l *Ledger) Last() (domain.VerificationLog, bool) {
	if len(l.entries) == 0 {
		return domain.VerificationLog{}, false
	}
	return l.entries[0], true
}

// Entries returns the ledger newest-first.
func (l *Ledger) Entries() []domain.VerificationLog {
	return l.entries
}

func (l *Ledger) Len() int {
	return len(l.entries)
}

// IsVerifiedToday reports whether the most recent entry falls on the same
// local calendar date as now.
func (l *Ledger) IsVerifiedToday(now time.Time) bool {
	last, ok := l.Last()
	if !ok {
		return false
	}
	at, err := dateparse.ParseIn(last.Date, now.Location())
	if err != nil {
		return false
	}
	at = at.In(now.Location())
	return at.Year() == now.Year() && at.YearDay() == now.YearDay()
}

// ReminderDue reports whether the daily-verification reminder should fire:
// past the reminder hour with no verification recorded today.
func (l *Ledger) ReminderDue(now time.Time) bool {
	return now.Hour() >= ReminderHour && !l.IsVerifiedToday(now)
}

// ExportCSV renders the ledger in the fixed verification-history layout.
// Every data field is individually quoted, missing optionals render as "-",
// and rows keep ledger order: newest first, never re-sorted.
func (l *Ledger) ExportCSV() string {
	var b strings.Builder
	b.WriteString("Data e Hora,Responsável,Produtos Verificados,Observações\n")
	for _, entry := range l.entries {
		b.WriteString(csvRow(entry))
		b.WriteByte('\n')
	}
	return b.String()
}

func csvRow(entry domain.VerificationLog) string {
	when := entry.Date
	if at, err := dateparse.ParseLocal(entry.Date); err == nil {
		when = at.Local().Format("02/01/2006 15:04:05")
	}
	fields := []string{
		when,
		orDash(entry.VerifiedBy),
		fmt.Sprintf("%d", entry.ProductsCount),
		orDash(entry.Observation),
	}
	for i, f := range fields {
		fields[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(fields, ",")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// ExportFilename names the CSV download for the given day.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("verificacoes_dlc_secundaria_%s.csv", now.Format("2006-01-02"))
}
