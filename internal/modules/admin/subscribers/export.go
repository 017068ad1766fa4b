package subscribers

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/mwanjeronie/mailinglist/internal/models"
)

// Status filter values for exports.
const (
	StatusAll      = "all"
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// ExportFilter narrows the exported set. Empty selections pass everything;
// non-empty ones require an intersection with the row's stored selections.
type ExportFilter struct {
	Status     string
	EventTypes []string
	Topics     []string
}

func (f ExportFilter) matches(sub *models.SubscriberModel) bool {
	if f.Status == StatusActive && !sub.IsActive {
		return false
	}
	if f.Status == StatusInactive && sub.IsActive {
		return false
	}
	if len(f.EventTypes) > 0 && !intersects(sub.EventTypes, f.EventTypes) {
		return false
	}
	if len(f.Topics) > 0 && !intersects(sub.Topics, f.Topics) {
		return false
	}
	return true
}

// Filter returns the subscribers passing f, preserving order.
func Filter(subs []models.SubscriberModel, f ExportFilter) []models.SubscriberModel {
	out := make([]models.SubscriberModel, 0, len(subs))
	for i := range subs {
		if f.matches(&subs[i]) {
			out = append(out, subs[i])
		}
	}
	return out
}

func intersects(have []string, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// WriteCSV serializes subscribers in the dashboard's export format: header
// row, semicolon-joined selections, date-only timestamp, Active/Inactive
// label.
func WriteCSV(w io.Writer, subs []models.SubscriberModel) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Email", "Event Types", "Topics", "Subscribed Date", "Status"}); err != nil {
		return err
	}
	for i := range subs {
		sub := &subs[i]
		status := "Inactive"
		if sub.IsActive {
			status = "Active"
		}
		record := []string{
			sub.Email,
			strings.Join(sub.EventTypes, ";"),
			strings.Join(sub.Topics, ";"),
			sub.CreatedAt.Format("2006-01-02"),
			status,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
