package service

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	PINHashingPlain  = "plain"
	PINHashingBcrypt = "bcrypt"
)

// PINHasher decides how PINs are stored and checked. Swapping it does not
// change what callers of Authenticate observe.
type PINHasher interface {
	Hash(pin string) (string, error)
	Compare(stored, pin string) bool
}

// PlainPIN stores the PIN as given.
type PlainPIN struct{}

func (PlainPIN) Hash(pin string) (string, error) {
	return pin, nil
}

func (PlainPIN) Compare(stored, pin string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(pin)) == 1
}

type BcryptPIN struct {
	Cost int
}

func (b BcryptPIN) Hash(pin string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptPIN) Compare(stored, pin string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(pin)) == nil
}

func NewPINHasher(kind string) (PINHasher, error) {
	switch kind {
	case "", PINHashingPlain:
		return PlainPIN{}, nil
	case PINHashingBcrypt:
		return BcryptPIN{}, nil
	default:
		return nil, fmt.Errorf("unknown pin hashing strategy %q", kind)
	}
}
