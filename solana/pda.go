package solana

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/gagliardetto/solana-go"
)

const (
	MaxSeeds      = 16
	MaxSeedLength = 32
)

var (
	ErrSeedTooLong      = errors.New("seed exceeds max seed length")
	ErrMaxSeedsExceeded = errors.New("too many seeds")
	ErrOnCurve          = errors.New("derived address is on-curve")
	ErrNoValidBumpFound = errors.New("unable to find a viable program address bump seed")

	pdaMarker = []byte("ProgramDerivedAddress")
)

// PDA is a program derived address together with the bump that took it off the curve.
type PDA struct {
	Address solana.PublicKey
	Bump    uint8
}

// ValidateSeeds checks seeds against the chain limits. The bump seed
// appended by FindProgramAddress counts towards MaxSeeds.
func ValidateSeeds(seeds [][]byte) error {
	if len(seeds) >= MaxSeeds {
		return fmt.Errorf("%w: %d", ErrMaxSeedsExceeded, len(seeds))
	}
	for i, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return fmt.Errorf("%w: seed %d is %d bytes", ErrSeedTooLong, i, len(seed))
		}
	}
	return nil
}

// CreateProgramAddress hashes seeds under programID. Seeds must already carry the bump.
func CreateProgramAddress(seeds [][]byte, programID solana.PublicKey) (solana.PublicKey, error) {
	if len(seeds) > MaxSeeds {
		return solana.PublicKey{}, ErrMaxSeedsExceeded
	}

	h := sha256.New()
	for _, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return solana.PublicKey{}, ErrSeedTooLong
		}
		h.Write(seed)
	}
	h.Write(programID[:])
	h.Write(pdaMarker)

	var out solana.PublicKey
	copy(out[:], h.Sum(nil))
	if IsOnCurve(out) {
		return solana.PublicKey{}, ErrOnCurve
	}
	return out, nil
}

// FindProgramAddress searches bumps from 255 down to 0 and returns the first off-curve address.
func FindProgramAddress(seeds [][]byte, programID solana.PublicKey) (PDA, error) {
	if err := ValidateSeeds(seeds); err != nil {
		return PDA{}, err
	}

	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)
	for bump := 255; bump >= 0; bump-- {
		withBump[len(seeds)] = []byte{uint8(bump)}
		address, err := CreateProgramAddress(withBump, programID)
		if err == nil {
			return PDA{Address: address, Bump: uint8(bump)}, nil
		}
		if !errors.Is(err, ErrOnCurve) {
			return PDA{}, err
		}
	}
	return PDA{}, ErrNoValidBumpFound
}

// IsOnCurve reports whether key decodes to a valid ed25519 point.
func IsOnCurve(key solana.PublicKey) bool {
	_, err := new(edwards25519.Point).SetBytes(key[:])
	return err == nil
}
