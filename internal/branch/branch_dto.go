package branch

type CreateBranchRequest struct {
	Code     string `json:"code" binding:"required,entitycode,max=5"`
	Name     string `json:"name" binding:"required,max=100"`
	Address  string `json:"address" binding:"max=255"`
	IsActive *bool  `json:"isActive"`
}

// UpdateBranchRequest is a partial update; nil fields keep their current value.
type UpdateBranchRequest struct {
	Code     *string `json:"code" binding:"omitempty,entitycode,max=5"`
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Address  *string `json:"address" binding:"omitempty,max=255"`
	IsActive *bool   `json:"isActive"`
}
