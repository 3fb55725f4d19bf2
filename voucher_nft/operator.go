package voucher_nft

import (
	"context"

	solanago "github.com/gagliardetto/solana-go"
	vouchernftgen "github.com/krazyTry/voucher-nft-go/gen/voucher_nft"
	"go.uber.org/zap"
)

// MintVoucher mints a new voucher NFT into the vault behind seed and returns
// the transaction signature and the fresh mint. A nil operator means the
// client keypair operates the vault.
func (c *VoucherNftClient) MintVoucher(
	ctx context.Context,
	seed string,
	operator *solanago.Wallet,
	params vouchernftgen.MetadataParams,
) (string, solanago.PublicKey, error) {
	operator = c.operatorWallet(operator)
	mint := solanago.NewWallet()

	sig, err := run(c, "mint voucher", func() (string, error) {
		instructions, err := c.MintVoucherInstructions(seed, operator.PublicKey(), mint.PublicKey(), params)
		if err != nil {
			return "", err
		}
		return c.send(ctx, instructions, operator, mint)
	})
	if err != nil {
		return "", solanago.PublicKey{}, err
	}
	c.log.Info("voucher minted", zap.String("seed", seed), zap.Stringer("mint", mint.PublicKey()))
	return sig, mint.PublicKey(), nil
}

// MintVoucherRepay mints a voucher carrying repay terms in one transaction.
func (c *VoucherNftClient) MintVoucherRepay(
	ctx context.Context,
	seed string,
	operator *solanago.Wallet,
	metadata vouchernftgen.MetadataParams,
	repay vouchernftgen.RepayVoucherInformationParams,
) (string, solanago.PublicKey, error) {
	operator = c.operatorWallet(operator)
	mint := solanago.NewWallet()

	sig, err := run(c, "mint repay voucher", func() (string, error) {
		instructions, err := c.MintVoucherRepayInstructions(seed, operator.PublicKey(), mint.PublicKey(), metadata, repay)
		if err != nil {
			return "", err
		}
		return c.send(ctx, instructions, operator, mint)
	})
	if err != nil {
		return "", solanago.PublicKey{}, err
	}
	c.log.Info("repay voucher minted",
		zap.String("seed", seed),
		zap.Stringer("mint", mint.PublicKey()),
		zap.Uint16("discount_bps", repay.DiscountPercentage),
	)
	return sig, mint.PublicKey(), nil
}

// OperatorAirdrop transfers the voucher for mint from the vault to user.
func (c *VoucherNftClient) OperatorAirdrop(
	ctx context.Context,
	seed string,
	operator *solanago.Wallet,
	mint solanago.PublicKey,
	user solanago.PublicKey,
) (string, error) {
	operator = c.operatorWallet(operator)

	return run(c, "operator airdrop", func() (string, error) {
		ix, err := c.OperatorAirdropInstruction(seed, operator.PublicKey(), mint, user)
		if err != nil {
			return "", err
		}
		return c.send(ctx, []solanago.Instruction{ix}, operator)
	})
}
