package employee

import (
	"strconv"
	"strings"
	"time"

	employeeerrors "go-dinas/internal/employee/errors"
	"go-dinas/internal/store"

	"github.com/go-playground/validator/v10"
)

const (
	CollectionName = "employee"

	// Collections referenced by employees.
	branchCollection = "branch"
	roleCollection   = "role"

	GenderMale   = "male"
	GenderFemale = "female"
)

type Employee struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Gender         string    `json:"gender"`
	BranchID       int64     `json:"branchId"`
	RoleID         int64     `json:"roleId"`
	LoginAccess    bool      `json:"loginAccess"`
	IsDriver       bool      `json:"isDriver"`
	WhatsappNumber *string   `json:"whatsappNumber"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

var validate = validator.New()

func validateEmployee(e *Employee) error {
	switch {
	case strings.TrimSpace(e.Name) == "":
		return employeeerrors.ErrMissingName
	case validate.Var(e.Email, "required,email") != nil:
		return employeeerrors.ErrInvalidEmail
	case e.Gender != GenderMale && e.Gender != GenderFemale:
		return employeeerrors.ErrInvalidGender
	case e.BranchID == 0:
		return employeeerrors.ErrMissingBranch
	case e.RoleID == 0:
		return employeeerrors.ErrMissingRole
	case e.IsDriver && (e.WhatsappNumber == nil || strings.TrimSpace(*e.WhatsappNumber) == ""):
		return employeeerrors.ErrWhatsappRequired
	}
	return nil
}

var schema = store.Schema[Employee]{
	Name: CollectionName,
	ID:   func(e *Employee) *int64 { return &e.ID },
	Uniques: []store.Unique[Employee]{
		{Field: "email", Value: func(e *Employee) string { return e.Email }},
	},
	Active: func(e *Employee) bool { return e.IsActive },
	Search: func(e *Employee) []string { return []string{e.Name, e.Email} },
	Refs: func(e *Employee) []store.Ref {
		return []store.Ref{
			{Field: "branchId", Collection: branchCollection, ID: e.BranchID},
			{Field: "roleId", Collection: roleCollection, ID: e.RoleID},
		}
	},
	Attrs: func(e *Employee) map[string]string {
		return map[string]string{
			"gender":   e.Gender,
			"isDriver": strconv.FormatBool(e.IsDriver),
		}
	},
	Validate: validateEmployee,
	Clone: func(e Employee) Employee {
		if e.WhatsappNumber != nil {
			v := *e.WhatsappNumber
			e.WhatsappNumber = &v
		}
		return e
	},
	Touch: func(e *Employee, now time.Time, created bool) {
		if created {
			e.CreatedAt = now
		}
		e.UpdatedAt = now
	},
}
