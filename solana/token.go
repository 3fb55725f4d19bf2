package solana

import (
	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
)

// Token represents a Solana token with mint information and owner
type Token struct {
	token.Mint
	// Owner account of the token
	Owner solana.PublicKey
}

// IsNFT reports whether the mint has the supply shape of a master edition voucher.
func (t *Token) IsNFT() bool {
	return t.Decimals == 0 && t.Supply == 1
}

// TokenLayout provides methods for decoding token data
type TokenLayout struct {
}

func (l *TokenLayout) Decode(data []byte) (*Token, error) {
	mint := token.Mint{}

	if err := mint.UnmarshalWithDecoder(binary.NewBinDecoder(data)); err != nil {
		return nil, err
	}
	return &Token{Mint: mint}, nil
}
