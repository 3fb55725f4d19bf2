package solana

import (
	"fmt"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
)

// TokenAccountSize is the byte length of an SPL token account.
const TokenAccountSize = 165

type Account struct {
	Address solana.PublicKey
	// Mint associated with the account
	Mint solana.PublicKey

	// Owner of the account
	Owner solana.PublicKey

	// Number of tokens the account holds
	Amount uint64

	// Authority that can transfer tokens from the account
	Delegate *solana.PublicKey

	IsInitialized bool
	IsFrozen      bool
}

type AccountLayout struct {
}

func (l *AccountLayout) Decode(data []byte) (*Account, error) {
	if len(data) < TokenAccountSize {
		return nil, fmt.Errorf("token account data too short: %d bytes", len(data))
	}
	raw := token.Account{}
	if err := raw.UnmarshalWithDecoder(binary.NewBinDecoder(data)); err != nil {
		return nil, err
	}
	return &Account{
		Mint:          raw.Mint,
		Owner:         raw.Owner,
		Amount:        raw.Amount,
		Delegate:      raw.Delegate,
		IsInitialized: raw.State != token.Uninitialized,
		IsFrozen:      raw.State == token.Frozen,
	}, nil
}
