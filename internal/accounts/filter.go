package accounts

import "sort"

// Filter selects a subset of accounts by ID. The zero value matches
// every account.
type Filter struct {
	ids map[string]bool
}

// FilterByIDs builds a filter matching exactly the given account IDs.
func FilterByIDs(ids ...string) Filter {
	if len(ids) == 0 {
		return Filter{}
	}
	set := make(map[string]bool, len(ids))
	for _, accountID := range ids {
		set[accountID] = true
	}
	return Filter{ids: set}
}

// Empty reports whether the filter matches all accounts.
func (f Filter) Empty() bool {
	return len(f.ids) == 0
}

// Match reports whether the filter admits the account.
func (f Filter) Match(accountID string) bool {
	return f.Empty() || f.ids[accountID]
}

// IDs returns the selected account IDs in stable order, or nil for
// the all-accounts filter. Stores use this to bind WHERE clauses.
func (f Filter) IDs() []string {
	if f.Empty() {
		return nil
	}
	ids := make([]string, 0, len(f.ids))
	for accountID := range f.ids {
		ids = append(ids, accountID)
	}
	sort.Strings(ids)
	return ids
}
