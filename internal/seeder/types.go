package seeder

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind selects which generator a run uses.
type Kind string

const (
	KindProduct     Kind = "product"
	KindUser        Kind = "user"
	KindTransaction Kind = "transaction"
)

// Kinds lists the supported kinds in the order their prerequisites require.
var Kinds = []Kind{KindUser, KindProduct, KindTransaction}

var (
	ErrUnknownKind  = errors.New("unknown data type")
	ErrInvalidCount = errors.New("count must be a positive integer")
	ErrProductLimit = errors.New("too many products requested")
	ErrNoUsers      = errors.New("no users in the database, seed users first")
	ErrNoProducts   = errors.New("no products in the database, seed products first")
)

// ParseKind accepts a kind name case-insensitively, singular or plural.
func ParseKind(s string) (Kind, error) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	for _, k := range Kinds {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected product, user or transaction)", ErrUnknownKind, s)
}

// IsUsageError reports whether err stems from invalid arguments rather than
// from the database or the network.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrUnknownKind) || errors.Is(err, ErrInvalidCount) || errors.Is(err, ErrProductLimit)
}

// Summary describes a finished or aborted run.
type Summary struct {
	Kind      Kind
	Requested int
	Inserted  int
	Elapsed   time.Duration
}
