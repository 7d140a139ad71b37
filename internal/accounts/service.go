package accounts

import (
	"fmt"
	"sort"

	"github.com/moneylens-dev/moneylens/internal/id"
	"github.com/moneylens-dev/moneylens/internal/model"
)

// Service provides in-memory lookup over the resolved account tree.
type Service struct {
	resolved []Resolved
	byID     map[string]Resolved
}

// NewService resolves qualified names and builds the lookup maps.
func NewService(accts []model.Account) (*Service, error) {
	resolved, err := Resolve(accts)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]Resolved, len(resolved))
	for _, r := range resolved {
		byID[r.ID] = r
	}
	return &Service{resolved: resolved, byID: byID}, nil
}

// All returns every account, sorted by qualified name.
func (s *Service) All() []Resolved {
	out := make([]Resolved, len(s.resolved))
	copy(out, s.resolved)
	sort.Slice(out, func(i, j int) bool {
		return out[i].QualifiedName < out[j].QualifiedName
	})
	return out
}

// Get returns an account by ID.
func (s *Service) Get(accountID string) (Resolved, bool) {
	r, ok := s.byID[accountID]
	return r, ok
}

// ByType returns all accounts of the given type, in file order.
func (s *Service) ByType(t model.AccountType) []Resolved {
	var out []Resolved
	for _, r := range s.resolved {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}

// ResolveFilter turns user-supplied account terms into a Filter. Each
// term may be an account ID ("A000001"), a qualified name, or a leaf
// name; leaf names matching several accounts select all of them. An
// empty term list yields the all-accounts filter.
func (s *Service) ResolveFilter(terms []string) (Filter, error) {
	if len(terms) == 0 {
		return Filter{}, nil
	}
	var ids []string
	for _, term := range terms {
		if id.IsAccountID(term) {
			if _, ok := s.byID[term]; !ok {
				return Filter{}, fmt.Errorf("%w: %s", ErrUnknownAccount, term)
			}
			ids = append(ids, term)
			continue
		}
		matched := false
		for _, r := range s.resolved {
			if r.QualifiedName == term || r.Name == term {
				ids = append(ids, r.ID)
				matched = true
			}
		}
		if !matched {
			return Filter{}, fmt.Errorf("%w: %s", ErrUnknownAccount, term)
		}
	}
	return FilterByIDs(ids...), nil
}
