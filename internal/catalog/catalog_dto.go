package catalog

type CreateItemRequest struct {
	Code     string `json:"code" binding:"required,entitycode,max=10"`
	Name     string `json:"name" binding:"required,max=150"`
	IsActive *bool  `json:"isActive"`
}

type UpdateItemRequest struct {
	Code     *string `json:"code" binding:"omitempty,entitycode,max=10"`
	Name     *string `json:"name" binding:"omitempty,min=1,max=150"`
	IsActive *bool   `json:"isActive"`
}
