package plafond

import (
	"slices"
	"sort"
	"time"

	plafonderrors "go-dinas/internal/plafond/errors"
	"go-dinas/internal/store"

	"github.com/shopspring/decimal"
)

const (
	CollectionName = "plafond"
	DateLayout     = "2006-01-02"

	TypeHotel  = "hotel"
	TypeTicket = "ticket"
)

type HistoryEntry struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

type Plafond struct {
	ID            int64           `json:"id"`
	RoleID        int64           `json:"roleId"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	EffectiveDate string          `json:"effectiveDate"`
	IsActive      bool            `json:"isActive"`
	History       []HistoryEntry  `json:"history"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// sortHistory orders entries newest first; same-day entries keep their relative order.
func sortHistory(h []HistoryEntry) {
	sort.SliceStable(h, func(i, j int) bool {
		return h[i].Date > h[j].Date
	})
}

func validDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func validatePlafond(p *Plafond) error {
	switch {
	case p.Type != TypeHotel && p.Type != TypeTicket:
		return plafonderrors.ErrInvalidType
	case p.Amount.IsNegative():
		return plafonderrors.ErrNegativeAmount
	case !validDate(p.EffectiveDate):
		return plafonderrors.ErrInvalidEffectiveDate
	}
	return nil
}

var schema = store.Schema[Plafond]{
	Name:   CollectionName,
	ID:     func(p *Plafond) *int64 { return &p.ID },
	Active: func(p *Plafond) bool { return p.IsActive },
	Search: func(p *Plafond) []string { return []string{p.Type} },
	Refs: func(p *Plafond) []store.Ref {
		return []store.Ref{{Field: "roleId", Collection: "role", ID: p.RoleID}}
	},
	Attrs: func(p *Plafond) map[string]string {
		return map[string]string{"type": p.Type}
	},
	Validate: validatePlafond,
	Clone: func(p Plafond) Plafond {
		p.History = slices.Clone(p.History)
		return p
	},
	Touch: func(p *Plafond, now time.Time, created bool) {
		if created {
			p.CreatedAt = now
		}
		p.UpdatedAt = now
	},
}
