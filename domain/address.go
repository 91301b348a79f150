// Package domain contains core concepts of the archive.
// This file defines participant addresses and the canonical conversation key.
// No runtime, network, or storage logic should be added here.
package domain

import (
	"fmt"
	"strings"
)

const keySeparator = "_"

// Address is a chat address of the form local@domain/resource.
// Local and Resource are optional, Domain is not.
type Address struct {
	Local    string
	Domain   string
	Resource string
}

// ParseAddress splits a raw address into its parts.
// The domain part is lower-cased, the local part and resource are kept as is.
func ParseAddress(raw string) (Address, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Address{}, fmt.Errorf("empty address")
	}
	var a Address
	rest := raw
	if i := strings.Index(rest, "/"); i >= 0 {
		a.Resource = rest[i+1:]
		rest = rest[:i]
	}
	if i := strings.Index(rest, "@"); i >= 0 {
		a.Local = rest[:i]
		rest = rest[i+1:]
		if a.Local == "" {
			return Address{}, fmt.Errorf("address %q has an empty local part", raw)
		}
	}
	if rest == "" {
		return Address{}, fmt.Errorf("address %q has no domain", raw)
	}
	a.Domain = strings.ToLower(rest)
	return a, nil
}

// MustParseAddress is ParseAddress for literals known to be valid.
func MustParseAddress(raw string) Address {
	a, err := ParseAddress(raw)
	if err != nil {
		panic(err)
	}
	return a
}

// HasLocal reports whether the address names a user rather than a bare service domain.
func (a Address) HasLocal() bool { return a.Local != "" }

func (a Address) IsZero() bool { return a.Domain == "" }

// Bare returns local@domain without the resource.
func (a Address) Bare() string {
	if a.Local == "" {
		return a.Domain
	}
	return a.Local + "@" + a.Domain
}

func (a Address) String() string {
	if a.Resource == "" {
		return a.Bare()
	}
	return a.Bare() + "/" + a.Resource
}

// ConversationKey returns the order-independent key of the pair:
// the lexicographically smaller bare address, a separator, then the larger one.
func ConversationKey(a, b Address) string {
	return PairKey(a.Bare(), b.Bare())
}

// PairKey is ConversationKey for addresses already in bare form.
func PairKey(x, y string) string {
	if y < x {
		x, y = y, x
	}
	return x + keySeparator + y
}
