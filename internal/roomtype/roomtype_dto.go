package roomtype

import "github.com/shopspring/decimal"

type CreateRoomTypeRequest struct {
	Code     string          `json:"code" binding:"required,entitycode,max=10"`
	TypeName string          `json:"typeName" binding:"required,max=100"`
	HotelIDs []int64         `json:"hotelIds" binding:"required,min=1,dive,gt=0"`
	Price    decimal.Decimal `json:"price"`
	Capacity int             `json:"capacity" binding:"required,gt=0"`
	IsActive *bool           `json:"isActive"`
}

type UpdateRoomTypeRequest struct {
	Code     *string          `json:"code" binding:"omitempty,entitycode,max=10"`
	TypeName *string          `json:"typeName" binding:"omitempty,min=1,max=100"`
	HotelIDs []int64          `json:"hotelIds" binding:"omitempty,min=1,dive,gt=0"`
	Price    *decimal.Decimal `json:"price"`
	Capacity *int             `json:"capacity" binding:"omitempty,gt=0"`
	IsActive *bool            `json:"isActive"`
}
