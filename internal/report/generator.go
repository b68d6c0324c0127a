// Package report builds the aging summary: pending amounts bucketed by
// how close to due they are, per collection and combined.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"ledgerdesk/arap/internal/logging"
	"ledgerdesk/arap/internal/models"
)

// Band is an aging bucket boundary on days-until-due.
type Band string

const (
	BandOverdue     Band = "overdue"       // days < 0
	BandDueThisWeek Band = "due_this_week" // 0 <= days <= 7
	BandDueNextWeek Band = "due_next_week" // 8 <= days <= 14
	BandLater       Band = "later"         // days > 14, or no due date
)

var bandOrder = []Band{BandOverdue, BandDueThisWeek, BandDueNextWeek, BandLater}

// BandTotal is the rolled-up amount and count for one aging band.
type BandTotal struct {
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// KindSummary aggregates one collection's pending items across bands.
type KindSummary struct {
	Total decimal.Decimal    `json:"total"`
	Count int                `json:"count"`
	Bands map[Band]BandTotal `json:"bands"`
}

// Summary is the full aging report over the pending transaction feed.
type Summary struct {
	Receivable KindSummary     `json:"receivable"`
	Payable    KindSummary     `json:"payable"`
	Net        decimal.Decimal `json:"net"`
}

func newKindSummary() KindSummary {
	bands := make(map[Band]BandTotal, len(bandOrder))
	for _, b := range bandOrder {
		bands[b] = BandTotal{Amount: decimal.Zero}
	}
	return KindSummary{Total: decimal.Zero, Bands: bands}
}

func (s *KindSummary) add(band Band, amount decimal.Decimal) {
	total := s.Bands[band]
	total.Amount = total.Amount.Add(amount)
	total.Count++
	s.Bands[band] = total
	s.Total = s.Total.Add(amount)
	s.Count++
}

// bandFor places a feed entry by its day ceiling. Entries without a due
// date have no meaningful age and land in the last band.
func bandFor(tx models.Transaction) Band {
	if tx.DueDate.IsZero() {
		return BandLater
	}
	switch {
	case tx.DaysRemaining < 0:
		return BandOverdue
	case tx.DaysRemaining <= 7:
		return BandDueThisWeek
	case tx.DaysRemaining <= 14:
		return BandDueNextWeek
	default:
		return BandLater
	}
}

// Build aggregates the pending entries of a transaction feed into an
// aging summary. Completed entries are already settled and excluded.
func Build(transactions []models.Transaction) *Summary {
	summary := &Summary{
		Receivable: newKindSummary(),
		Payable:    newKindSummary(),
	}
	for _, tx := range transactions {
		if tx.Status != models.StatusPending {
			continue
		}
		switch tx.Kind {
		case models.KindReceivable:
			summary.Receivable.add(bandFor(tx), tx.Amount)
		case models.KindPayable:
			summary.Payable.add(bandFor(tx), tx.Amount)
		}
	}
	summary.Net = summary.Receivable.Total.Sub(summary.Payable.Total)
	return summary
}

// Generator renders a summary in one of the supported output formats.
type Generator struct {
	log logging.Logger
}

// NewGenerator creates a summary renderer.
func NewGenerator(log logging.Logger) *Generator {
	return &Generator{log: log}
}

// Generate renders the summary in the requested format (text or json).
func (g *Generator) Generate(summary *Summary, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.generateJSON(summary)
	case "text":
		return g.generateText(summary), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateJSON(summary *Summary) ([]byte, error) {
	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		g.log.WithError(err).Error("failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return out, nil
}

var bandLabels = map[Band]string{
	BandOverdue:     "Overdue",
	BandDueThisWeek: "Due this week",
	BandDueNextWeek: "Due next week",
	BandLater:       "Later",
}

func (g *Generator) generateText(summary *Summary) []byte {
	var b strings.Builder
	writeKind := func(title string, ks KindSummary) {
		fmt.Fprintf(&b, "%s (pending: %d, total: %s)\n", title, ks.Count, ks.Total.StringFixed(2))
		for _, band := range bandOrder {
			total := ks.Bands[band]
			fmt.Fprintf(&b, "  %-14s %10s  (%d)\n", bandLabels[band], total.Amount.StringFixed(2), total.Count)
		}
	}
	writeKind("Receivable", summary.Receivable)
	writeKind("Payable", summary.Payable)
	fmt.Fprintf(&b, "Net position: %s\n", summary.Net.StringFixed(2))
	return []byte(b.String())
}
