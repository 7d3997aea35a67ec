package auth

import (
	"time"

	"go-dinas/internal/branch"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateAccountRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	Name      string  `json:"name" binding:"required"`
	Password  string  `json:"password" binding:"required,min=6"`
	RoleID    int64   `json:"roleId" binding:"required"`
	BranchIDs []int64 `json:"branchIds" binding:"required,min=1"`
	IsActive  *bool   `json:"isActive"`
}

type RoleSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserProfile is the current-user view: identity, role and accessible branches.
type UserProfile struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Role     RoleSummary     `json:"role"`
	Branches []branch.Branch `json:"branches"`
}

type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	ExpiresAt   time.Time   `json:"expires_at"`
	User        UserProfile `json:"user"`
}
