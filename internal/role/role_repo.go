package role

import (
	"context"

	"go-dinas/internal/domain"
	"go-dinas/internal/store"
)

type Repository = store.Repository[Role]

func NewRepository(db *store.DB) *store.Collection[Role] {
	return store.NewCollection(db, schema)
}

type policySource struct {
	repo Repository
}

// NewPolicySource exposes role permission sets to the authorization layer.
func NewPolicySource(repo Repository) domain.RolePolicySource {
	return &policySource{repo: repo}
}

func (p *policySource) RolePolicies(ctx context.Context) ([]domain.RolePolicy, error) {
	roles, err := p.repo.List(ctx, store.Filter{})
	if err != nil {
		return nil, err
	}
	out := make([]domain.RolePolicy, 0, len(roles))
	for _, r := range roles {
		out = append(out, domain.RolePolicy{
			RoleID:      r.ID,
			Active:      r.IsActive,
			Permissions: r.Permissions,
		})
	}
	return out, nil
}
