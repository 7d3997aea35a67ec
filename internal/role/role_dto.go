package role

import "go-dinas/internal/domain"

type CreateRoleRequest struct {
	Name        string                       `json:"name" binding:"required,max=100"`
	IsActive    *bool                        `json:"isActive"`
	Permissions map[string]domain.Permission `json:"permissions"`
}

// Permissions replaces the whole set when present.
type UpdateRoleRequest struct {
	Name        *string                      `json:"name" binding:"omitempty,min=1,max=100"`
	IsActive    *bool                        `json:"isActive"`
	Permissions map[string]domain.Permission `json:"permissions"`
}
