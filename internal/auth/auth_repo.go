package auth

import (
	"context"
	"slices"

	"go-dinas/internal/domain"
	"go-dinas/internal/store"
)

type Repository = store.Repository[Account]

func NewRepository(db *store.DB) *store.Collection[Account] {
	return store.NewCollection(db, schema)
}

type grantSource struct {
	repo Repository
}

// NewGrantSource exposes account role and branch assignments to the authorization layer.
func NewGrantSource(repo Repository) domain.AccountGrantSource {
	return &grantSource{repo: repo}
}

func (g *grantSource) AccountGrants(ctx context.Context) ([]domain.AccountGrant, error) {
	accounts, err := g.repo.List(ctx, store.Filter{})
	if err != nil {
		return nil, err
	}
	out := make([]domain.AccountGrant, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, domain.AccountGrant{
			AccountID: a.ID,
			RoleID:    a.RoleID,
			BranchIDs: slices.Clone(a.BranchIDs),
			Active:    a.IsActive,
		})
	}
	return out, nil
}
