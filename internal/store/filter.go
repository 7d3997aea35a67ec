package store

import "strings"

// Filter is ANDed; zero-valued fields impose no constraint.
type Filter struct {
	IsActive *bool
	Search   string
	// Refs matches relationship fields by name, e.g. "branchId" or "hotelId".
	// A record with several references under the same name matches if any of them does.
	Refs  map[string]int64
	Attrs map[string]string
}

func (f Filter) WithRef(field string, id int64) Filter {
	refs := make(map[string]int64, len(f.Refs)+1)
	for k, v := range f.Refs {
		refs[k] = v
	}
	refs[field] = id
	f.Refs = refs
	return f
}

func (f Filter) WithAttr(key, value string) Filter {
	attrs := make(map[string]string, len(f.Attrs)+1)
	for k, v := range f.Attrs {
		attrs[k] = v
	}
	attrs[key] = value
	f.Attrs = attrs
	return f
}

func matches[T any](s *Schema[T], rec *T, f Filter) bool {
	if f.IsActive != nil {
		if s.Active == nil || s.Active(rec) != *f.IsActive {
			return false
		}
	}

	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if s.Search == nil {
			return false
		}
		found := false
		for _, field := range s.Search(rec) {
			if strings.Contains(strings.ToLower(field), q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(f.Refs) > 0 {
		var refs []Ref
		if s.Refs != nil {
			refs = s.Refs(rec)
		}
		for field, want := range f.Refs {
			hit := false
			for _, r := range refs {
				if r.Field == field && r.ID == want {
					hit = true
					break
				}
			}
			if !hit {
				return false
			}
		}
	}

	if len(f.Attrs) > 0 {
		var attrs map[string]string
		if s.Attrs != nil {
			attrs = s.Attrs(rec)
		}
		for k, want := range f.Attrs {
			if got, ok := attrs[k]; !ok || got != want {
				return false
			}
		}
	}

	return true
}
