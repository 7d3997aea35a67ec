package rbac

import "go-dinas/internal/domain"

// Repository is where the policy is rebuilt from: role permission sets and account grants.
type Repository interface {
	domain.RolePolicySource
	domain.AccountGrantSource
}

type repository struct {
	domain.RolePolicySource
	domain.AccountGrantSource
}

func NewRepository(roles domain.RolePolicySource, accounts domain.AccountGrantSource) Repository {
	return &repository{RolePolicySource: roles, AccountGrantSource: accounts}
}
