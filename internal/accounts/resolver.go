package accounts

import (
	"errors"
	"fmt"

	"github.com/moneylens-dev/moneylens/internal/model"
)

// ErrCycle reports a loop in the account parent graph. KMyMoney never
// writes one, but an unchecked walk over a corrupt file would never
// terminate, so the resolver refuses it outright.
var ErrCycle = errors.New("account parent cycle")

// ErrUnknownAccount reports a reference to an account that is not in
// the file.
var ErrUnknownAccount = errors.New("unknown account")

// Resolved pairs an account with its fully qualified name, the
// colon-joined path of account names from the root down to the leaf,
// e.g. "Assets:Bank:Checking".
type Resolved struct {
	model.Account
	QualifiedName string
}

// Resolve computes the qualified name of every account by walking the
// parent-linked tree. The walk is memoized and tracks in-progress
// nodes, so a cyclic or dangling parent reference returns an error
// instead of hanging.
func Resolve(accts []model.Account) ([]Resolved, error) {
	byID := make(map[string]model.Account, len(accts))
	for _, a := range accts {
		byID[a.ID] = a
	}

	names := make(map[string]string, len(accts))
	inProgress := make(map[string]bool)

	var walk func(accountID string) (string, error)
	walk = func(accountID string) (string, error) {
		if name, ok := names[accountID]; ok {
			return name, nil
		}
		a, ok := byID[accountID]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownAccount, accountID)
		}
		if inProgress[accountID] {
			return "", fmt.Errorf("%w: %s", ErrCycle, accountID)
		}

		name := a.Name
		if a.ParentID != "" {
			inProgress[accountID] = true
			parent, err := walk(a.ParentID)
			delete(inProgress, accountID)
			if err != nil {
				return "", err
			}
			name = parent + ":" + a.Name
		}
		names[accountID] = name
		return name, nil
	}

	resolved := make([]Resolved, 0, len(accts))
	for _, a := range accts {
		name, err := walk(a.ID)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, Resolved{Account: a, QualifiedName: name})
	}
	return resolved, nil
}
