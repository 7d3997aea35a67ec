package role

import (
	"sort"

	"go-dinas/internal/domain"
	roleerrors "go-dinas/internal/role/errors"
	"go-dinas/internal/store"
)

const CollectionName = "role"

type Role struct {
	ID          int64                        `json:"id"`
	Name        string                       `json:"name"`
	IsActive    bool                         `json:"isActive"`
	Permissions map[string]domain.Permission `json:"permissions"`
}

func clonePermissions(in map[string]domain.Permission) map[string]domain.Permission {
	if in == nil {
		return nil
	}
	out := make(map[string]domain.Permission, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func validateRole(r *Role) error {
	if r.Name == "" {
		return store.Validationf("name is required")
	}
	unknown := make([]string, 0)
	for res := range r.Permissions {
		if !domain.IsKnownResource(res) {
			unknown = append(unknown, res)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return roleerrors.ErrUnknownResource.WithDetails(map[string][]string{"resources": unknown})
	}
	return nil
}

var schema = store.Schema[Role]{
	Name: CollectionName,
	ID:   func(r *Role) *int64 { return &r.ID },
	Uniques: []store.Unique[Role]{
		{Field: "name", Value: func(r *Role) string { return r.Name }},
	},
	Active:   func(r *Role) bool { return r.IsActive },
	Search:   func(r *Role) []string { return []string{r.Name} },
	Validate: validateRole,
	Clone: func(r Role) Role {
		r.Permissions = clonePermissions(r.Permissions)
		return r
	},
}

