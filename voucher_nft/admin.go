package voucher_nft

import (
	"context"

	solanago "github.com/gagliardetto/solana-go"
	vouchernftgen "github.com/krazyTry/voucher-nft-go/gen/voucher_nft"
	solanautil "github.com/krazyTry/voucher-nft-go/solana"
	"go.uber.org/zap"
)

// Initialize creates the program config with the client keypair as admin.
func (c *VoucherNftClient) Initialize(ctx context.Context) (string, error) {
	return run(c, "initialize", func() (string, error) {
		ix, err := c.InitializeInstruction(c.wallet.PublicKey())
		if err != nil {
			return "", err
		}
		return c.send(ctx, []solanago.Instruction{ix})
	})
}

// InitializeWithCollection creates the program config and the relend
// collection NFT. It returns the collection mint.
func (c *VoucherNftClient) InitializeWithCollection(ctx context.Context, params vouchernftgen.MetadataParams) (string, solanago.PublicKey, error) {
	collection := solanago.NewWallet()
	sig, err := run(c, "initialize with collection", func() (string, error) {
		ix, err := c.InitializeWithCollectionInstruction(c.wallet.PublicKey(), collection.PublicKey(), params)
		if err != nil {
			return "", err
		}
		return c.send(ctx, solanautil.WithComputeBudget(c.ComputeUnits, []solanago.Instruction{ix}), collection)
	})
	if err != nil {
		return "", solanago.PublicKey{}, err
	}
	return sig, collection.PublicKey(), nil
}

// AddVault registers a vault for operator. Only the config admin may add vaults.
func (c *VoucherNftClient) AddVault(ctx context.Context, seed string, operator solanago.PublicKey) (string, error) {
	return run(c, "add vault", func() (string, error) {
		ix, err := c.AddVaultInstruction(c.wallet.PublicKey(), seed, operator)
		if err != nil {
			return "", err
		}
		sig, err := c.send(ctx, []solanago.Instruction{ix})
		if err != nil {
			return "", err
		}
		c.log.Info("vault added", zap.String("seed", seed), zap.Stringer("operator", operator))
		return sig, nil
	})
}
