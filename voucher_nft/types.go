package voucher_nft

import (
	"time"

	solanago "github.com/gagliardetto/solana-go"
	vouchernftgen "github.com/krazyTry/voucher-nft-go/gen/voucher_nft"
	"github.com/krazyTry/voucher-nft-go/voucher_nft/helpers"
	"github.com/shopspring/decimal"
)

type (
	Config         = vouchernftgen.Config
	Vault          = vouchernftgen.Vault
	Authorator     = vouchernftgen.Authorator
	RepayVoucher   = vouchernftgen.RepayVoucher
	MetadataParams = vouchernftgen.MetadataParams

	RepayVoucherInformationParams = vouchernftgen.RepayVoucherInformationParams
)

type ProgramAccount[T any] struct {
	Pubkey  solanago.PublicKey
	Account *T
}

// RepayVoucherView is a repay voucher with its terms in display units.
type RepayVoucherView struct {
	Address solanago.PublicKey `json:"address"`
	NftMint solanago.PublicKey `json:"nftMint"`
	// Discount is a percentage, 12.5 for 1250 basis points.
	Discount      decimal.Decimal `json:"discount"`
	MaximumAmount uint32          `json:"maximumAmount"`
	StartTime     time.Time       `json:"startTime"`
	EndTime       time.Time       `json:"endTime"`
}

func NewRepayVoucherView(address solanago.PublicKey, voucher *RepayVoucher) *RepayVoucherView {
	return &RepayVoucherView{
		Address:       address,
		NftMint:       voucher.NftMint,
		Discount:      helpers.DiscountPercent(voucher.DiscountPercentage),
		MaximumAmount: voucher.MaximumAmount,
		StartTime:     time.Unix(voucher.StartTime, 0).UTC(),
		EndTime:       time.Unix(voucher.EndTime, 0).UTC(),
	}
}

// Active reports whether now falls inside the voucher's validity window.
func (v *RepayVoucherView) Active(now time.Time) bool {
	return !now.Before(v.StartTime) && now.Before(v.EndTime)
}
