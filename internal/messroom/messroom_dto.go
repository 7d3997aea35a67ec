package messroom

type CreateMessRoomRequest struct {
	BranchID   int64  `json:"branchId" binding:"required,gt=0"`
	RoomNumber string `json:"roomNumber" binding:"required,max=20"`
	Gender     string `json:"gender" binding:"required,oneof=male female"`
	Capacity   int    `json:"capacity" binding:"required,gt=0"`
	IsActive   *bool  `json:"isActive"`
}

type UpdateMessRoomRequest struct {
	BranchID   *int64  `json:"branchId" binding:"omitempty,gt=0"`
	RoomNumber *string `json:"roomNumber" binding:"omitempty,min=1,max=20"`
	Gender     *string `json:"gender" binding:"omitempty,oneof=male female"`
	Capacity   *int    `json:"capacity" binding:"omitempty,gt=0"`
	IsActive   *bool   `json:"isActive"`
}
