// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// dummyPassword is hashed once and used to burn one comparison on login
// attempts for unknown emails.
const dummyPassword = "wellness-dummy-password"

// bcryptHasher is the private implementation of [PasswordHasher].
type bcryptHasher struct {
	// cost is the bcrypt work factor used for new digests.
	cost int

	dummyOnce sync.Once
	dummyHash []byte
}

// NewPasswordHasher constructs a bcrypt based [PasswordHasher]. A zero cost
// selects bcrypt.DefaultCost; any other value must lie within
// [bcrypt.MinCost, bcrypt.MaxCost].
func NewPasswordHasher(cost int) (PasswordHasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCost, cost)
	}

	return &bcryptHasher{cost: cost}, nil
}

// Hash implements [PasswordHasher].
func (b *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}
	return string(hash), nil
}

// Compare implements [PasswordHasher].
func (b *bcryptHasher) Compare(hash, password string) error {
	digest := []byte(hash)
	if hash == "" {
		digest = b.dummy()
	}

	err := bcrypt.CompareHashAndPassword(digest, []byte(password))
	if hash == "" {
		return ErrPasswordMismatch
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPasswordMismatch, err)
	}

	return nil
}

func (b *bcryptHasher) dummy() []byte {
	b.dummyOnce.Do(func() {
		// cannot fail: the password is short and the cost was validated
		b.dummyHash, _ = bcrypt.GenerateFromPassword([]byte(dummyPassword), b.cost)
	})
	return b.dummyHash
}
