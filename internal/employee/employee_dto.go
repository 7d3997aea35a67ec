package employee

type CreateEmployeeRequest struct {
	Name           string  `json:"name" binding:"required,max=150"`
	Email          string  `json:"email" binding:"required,email"`
	Gender         string  `json:"gender" binding:"required,oneof=male female"`
	BranchID       int64   `json:"branchId" binding:"required,gt=0"`
	RoleID         int64   `json:"roleId" binding:"required,gt=0"`
	LoginAccess    bool    `json:"loginAccess"`
	IsDriver       bool    `json:"isDriver"`
	WhatsappNumber *string `json:"whatsappNumber" binding:"omitempty,max=20"`
	IsActive       *bool   `json:"isActive"`
}

// UpdateEmployeeRequest: an empty whatsappNumber clears the number.
type UpdateEmployeeRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=1,max=150"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Gender         *string `json:"gender" binding:"omitempty,oneof=male female"`
	BranchID       *int64  `json:"branchId" binding:"omitempty,gt=0"`
	RoleID         *int64  `json:"roleId" binding:"omitempty,gt=0"`
	LoginAccess    *bool   `json:"loginAccess"`
	IsDriver       *bool   `json:"isDriver"`
	WhatsappNumber *string `json:"whatsappNumber" binding:"omitempty,max=20"`
	IsActive       *bool   `json:"isActive"`
}

// DriverOption feeds the driver pickers of the schedule screens.
type DriverOption struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	BranchID       int64  `json:"branchId"`
	WhatsappNumber string `json:"whatsappNumber"`
}
