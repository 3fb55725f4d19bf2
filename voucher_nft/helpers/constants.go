package helpers

import (
	solanago "github.com/gagliardetto/solana-go"
	vouchernftgen "github.com/krazyTry/voucher-nft-go/gen/voucher_nft"
)

const (
	AccountKeyAuthorator   = "Authorator"
	AccountKeyConfig       = "Config"
	AccountKeyRepayVoucher = "RepayVoucher"
	AccountKeyVault        = "Vault"
)

var (
	// VoucherNftProgramID is the default deployment shared by every network.
	VoucherNftProgramID = vouchernftgen.ProgramID
	// TokenMetadataProgramID is the RENEC token metadata program.
	TokenMetadataProgramID = solanago.MustPublicKeyFromBase58("metaXfaoQatFJP9xiuYRsKkHYgS5NqqcfxFbLGS5LdN")
)

const (
	// MaxVaultSeedLength bounds the caller supplied vault seed.
	MaxVaultSeedLength = 32
	// MaxDiscountPercentage is a full discount, in basis points.
	MaxDiscountPercentage = 10_000
)
