package auth

import (
	"slices"
	"strings"
	"time"

	autherrors "go-dinas/internal/auth/errors"
	"go-dinas/internal/store"

	"github.com/go-playground/validator/v10"
)

const (
	CollectionName = "account"

	roleCollection   = "role"
	branchCollection = "branch"
)

// Account is a login identity. Branches listed here are the ones the account may act on.
type Account struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"passwordHash"`
	RoleID       int64     `json:"roleId"`
	BranchIDs    []int64   `json:"branchIds"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

var validate = validator.New()

func validateAccount(a *Account) error {
	switch {
	case validate.Var(a.Email, "required,email") != nil:
		return autherrors.ErrInvalidEmail
	case strings.TrimSpace(a.Name) == "":
		return autherrors.ErrMissingName
	case a.RoleID == 0:
		return autherrors.ErrMissingRole
	case len(a.BranchIDs) == 0:
		return autherrors.ErrMissingBranches
	}
	return nil
}

var schema = store.Schema[Account]{
	Name: CollectionName,
	ID:   func(a *Account) *int64 { return &a.ID },
	Uniques: []store.Unique[Account]{
		{Field: "email", Value: func(a *Account) string { return a.Email }},
	},
	Active: func(a *Account) bool { return a.IsActive },
	Search: func(a *Account) []string { return []string{a.Name, a.Email} },
	Refs: func(a *Account) []store.Ref {
		refs := make([]store.Ref, 0, len(a.BranchIDs)+1)
		refs = append(refs, store.Ref{Field: "roleId", Collection: roleCollection, ID: a.RoleID})
		for _, id := range a.BranchIDs {
			refs = append(refs, store.Ref{Field: "branchId", Collection: branchCollection, ID: id})
		}
		return refs
	},
	Attrs: func(a *Account) map[string]string {
		return map[string]string{"email": strings.ToLower(strings.TrimSpace(a.Email))}
	},
	Validate: validateAccount,
	Clone: func(a Account) Account {
		a.BranchIDs = slices.Clone(a.BranchIDs)
		return a
	},
	Touch: func(a *Account, now time.Time, created bool) {
		if created {
			a.CreatedAt = now
		}
		a.UpdatedAt = now
	},
}
