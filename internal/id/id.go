// Package id handles KMyMoney object identifiers: a type letter
// followed by a zero-padded decimal sequence, e.g. "A000001" for
// accounts or "T000000000000000001" for transactions.
package id

import (
	"fmt"
	"strconv"
)

// Object type prefixes used in KMyMoney files.
const (
	PrefixAccount     = 'A'
	PrefixTransaction = 'T'
	PrefixPayee       = 'P'
	PrefixSecurity    = 'E'
)

const accountWidth = 6

// FormatAccountID returns an account ID like "A000001".
func FormatAccountID(seq int) string {
	return fmt.Sprintf("%c%0*d", PrefixAccount, accountWidth, seq)
}

// IsAccountID reports whether s has the shape of a KMyMoney account
// ID. Report commands use this to tell account IDs apart from
// account names given on the command line.
func IsAccountID(s string) bool {
	_, err := ParseAccountID(s)
	return err == nil
}

// ParseAccountID parses "A000001" into its sequence number.
func ParseAccountID(s string) (int, error) {
	if len(s) != accountWidth+1 || s[0] != PrefixAccount {
		return 0, fmt.Errorf("invalid account ID format: %q", s)
	}
	seq, err := strconv.Atoi(s[1:])
	if err != nil {
		return 0, fmt.Errorf("invalid sequence in account ID %q: %w", s, err)
	}
	return seq, nil
}
