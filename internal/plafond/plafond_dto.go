package plafond

import "github.com/shopspring/decimal"

type CreatePlafondRequest struct {
	RoleID        int64           `json:"roleId" binding:"required,gt=0"`
	Type          string          `json:"type" binding:"required,oneof=hotel ticket"`
	Amount        decimal.Decimal `json:"amount"`
	EffectiveDate string          `json:"effectiveDate" binding:"required,datetime=2006-01-02"`
	IsActive      *bool           `json:"isActive"`
}

// UpdatePlafondRequest: amount and effectiveDate only travel together; they append a history entry.
type UpdatePlafondRequest struct {
	RoleID        *int64           `json:"roleId" binding:"omitempty,gt=0"`
	Type          *string          `json:"type" binding:"omitempty,oneof=hotel ticket"`
	Amount        *decimal.Decimal `json:"amount"`
	EffectiveDate *string          `json:"effectiveDate" binding:"omitempty,datetime=2006-01-02"`
	IsActive      *bool            `json:"isActive"`
}
