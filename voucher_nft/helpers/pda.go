package helpers

import (
	"errors"
	"fmt"

	solanago "github.com/gagliardetto/solana-go"
	solanautil "github.com/krazyTry/voucher-nft-go/solana"
)

var ErrEmptySeed = errors.New("vault seed is empty")

var seed = struct {
	Config        []byte
	Vault         []byte
	Authorator    []byte
	RepayVoucher  []byte
	Metadata      []byte
	MasterEdition []byte
}{
	Config:        []byte("CONFIG"),
	Vault:         []byte("VAULT"),
	Authorator:    []byte("AUTHORATOR"),
	RepayVoucher:  []byte("REPAY_VOUCHER"),
	Metadata:      []byte("metadata"),
	MasterEdition: []byte("edition"),
}

// ValidateVaultSeed rejects seeds the program could not derive a vault from.
func ValidateVaultSeed(vaultSeed string) error {
	if vaultSeed == "" {
		return ErrEmptySeed
	}
	if len(vaultSeed) > MaxVaultSeedLength {
		return fmt.Errorf("%w: %q is %d bytes, max %d", solanautil.ErrSeedTooLong, vaultSeed, len(vaultSeed), MaxVaultSeedLength)
	}
	return nil
}

func DeriveConfigPDA(programID solanago.PublicKey) (solanautil.PDA, error) {
	return solanautil.FindProgramAddress([][]byte{seed.Config}, programID)
}

func DeriveAuthoratorPDA(programID solanago.PublicKey) (solanautil.PDA, error) {
	return solanautil.FindProgramAddress([][]byte{seed.Authorator}, programID)
}

func DeriveVaultPDA(vaultSeed string, programID solanago.PublicKey) (solanautil.PDA, error) {
	if err := ValidateVaultSeed(vaultSeed); err != nil {
		return solanautil.PDA{}, err
	}
	return solanautil.FindProgramAddress([][]byte{seed.Vault, []byte(vaultSeed)}, programID)
}

func DeriveRepayVoucherPDA(mint solanago.PublicKey, programID solanago.PublicKey) (solanautil.PDA, error) {
	return solanautil.FindProgramAddress([][]byte{seed.RepayVoucher, mint.Bytes()}, programID)
}

// DeriveMetadataPDA follows the token metadata program layout ["metadata", program, mint].
func DeriveMetadataPDA(mint solanago.PublicKey) (solanautil.PDA, error) {
	return solanautil.FindProgramAddress([][]byte{
		seed.Metadata,
		TokenMetadataProgramID.Bytes(),
		mint.Bytes(),
	}, TokenMetadataProgramID)
}

func DeriveMasterEditionPDA(mint solanago.PublicKey) (solanautil.PDA, error) {
	return solanautil.FindProgramAddress([][]byte{
		seed.Metadata,
		TokenMetadataProgramID.Bytes(),
		mint.Bytes(),
		seed.MasterEdition,
	}, TokenMetadataProgramID)
}

// DeriveTokenAccount is the associated token account of owner for mint. Owners may be PDAs.
func DeriveTokenAccount(owner, mint solanago.PublicKey) (solanago.PublicKey, error) {
	pda, err := solanautil.FindProgramAddress([][]byte{
		owner.Bytes(),
		solanago.TokenProgramID.Bytes(),
		mint.Bytes(),
	}, solanago.SPLAssociatedTokenAccountProgramID)
	if err != nil {
		return solanago.PublicKey{}, err
	}
	return pda.Address, nil
}

// VoucherAccounts are the per-mint accounts shared by the mint, repay and airdrop instructions.
type VoucherAccounts struct {
	Vault             solanautil.PDA
	Authorator        solanautil.PDA
	Metadata          solanago.PublicKey
	MasterEdition     solanago.PublicKey
	VaultTokenAccount solanago.PublicKey
	RepayVoucher      solanago.PublicKey
}

// DeriveVoucherAccounts resolves every derived account of a voucher minted from vaultSeed.
func DeriveVoucherAccounts(vaultSeed string, mint, programID solanago.PublicKey) (*VoucherAccounts, error) {
	vault, err := DeriveVaultPDA(vaultSeed, programID)
	if err != nil {
		return nil, err
	}
	authorator, err := DeriveAuthoratorPDA(programID)
	if err != nil {
		return nil, err
	}
	metadata, err := DeriveMetadataPDA(mint)
	if err != nil {
		return nil, err
	}
	masterEdition, err := DeriveMasterEditionPDA(mint)
	if err != nil {
		return nil, err
	}
	vaultTokenAccount, err := DeriveTokenAccount(vault.Address, mint)
	if err != nil {
		return nil, err
	}
	repayVoucher, err := DeriveRepayVoucherPDA(mint, programID)
	if err != nil {
		return nil, err
	}
	return &VoucherAccounts{
		Vault:             vault,
		Authorator:        authorator,
		Metadata:          metadata.Address,
		MasterEdition:     masterEdition.Address,
		VaultTokenAccount: vaultTokenAccount,
		RepayVoucher:      repayVoucher.Address,
	}, nil
}
