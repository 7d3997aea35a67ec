package branch

import "go-dinas/internal/store"

const CollectionName = "branch"

type Branch struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	IsActive bool   `json:"isActive"`
}

var schema = store.Schema[Branch]{
	Name: CollectionName,
	ID:   func(b *Branch) *int64 { return &b.ID },
	Uniques: []store.Unique[Branch]{
		{Field: "code", Value: func(b *Branch) string { return b.Code }},
	},
	Active: func(b *Branch) bool { return b.IsActive },
	Search: func(b *Branch) []string { return []string{b.Code, b.Name, b.Address} },
	Validate: func(b *Branch) error {
		switch {
		case b.Code == "":
			return store.Validationf("code is required")
		case b.Name == "":
			return store.Validationf("name is required")
		}
		return nil
	},
}
