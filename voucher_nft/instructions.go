package voucher_nft

import (
	solanago "github.com/gagliardetto/solana-go"
	vouchernftgen "github.com/krazyTry/voucher-nft-go/gen/voucher_nft"
	solanautil "github.com/krazyTry/voucher-nft-go/solana"
	"github.com/krazyTry/voucher-nft-go/voucher_nft/helpers"
)

// InitializeInstruction creates the config account with admin as its admin.
func (p *VoucherNftProgram) InitializeInstruction(admin solanago.PublicKey) (solanago.Instruction, error) {
	if err := requireKeys(namedKey{"admin", admin}); err != nil {
		return nil, err
	}
	config, err := helpers.DeriveConfigPDA(p.ProgramID)
	if err != nil {
		return nil, err
	}
	return p.bind(vouchernftgen.NewInitializeInstruction(
		config.Address,
		admin,
		solanago.SystemProgramID,
	))
}

// InitializeWithCollectionInstruction creates the config account together with
// the relend collection NFT minted to the authorator.
func (p *VoucherNftProgram) InitializeWithCollectionInstruction(
	admin solanago.PublicKey,
	collectionMint solanago.PublicKey,
	params vouchernftgen.MetadataParams,
) (solanago.Instruction, error) {
	if err := requireKeys(namedKey{"admin", admin}, namedKey{"collection mint", collectionMint}); err != nil {
		return nil, err
	}
	if err := validateMetadata(params); err != nil {
		return nil, err
	}
	config, err := helpers.DeriveConfigPDA(p.ProgramID)
	if err != nil {
		return nil, err
	}
	authorator, err := helpers.DeriveAuthoratorPDA(p.ProgramID)
	if err != nil {
		return nil, err
	}
	authoratorTokenAccount, err := helpers.DeriveTokenAccount(authorator.Address, collectionMint)
	if err != nil {
		return nil, err
	}
	metadata, err := helpers.DeriveMetadataPDA(collectionMint)
	if err != nil {
		return nil, err
	}
	masterEdition, err := helpers.DeriveMasterEditionPDA(collectionMint)
	if err != nil {
		return nil, err
	}
	return p.bind(vouchernftgen.NewInitializeWithCollectionInstruction(
		params,
		config.Address,
		authorator.Address,
		collectionMint,
		authoratorTokenAccount,
		metadata.Address,
		masterEdition.Address,
		admin,
		helpers.TokenMetadataProgramID,
		solanago.TokenProgramID,
		solanago.SPLAssociatedTokenAccountProgramID,
		solanago.SystemProgramID,
		solanago.SysVarRentPubkey,
	))
}

// AddVaultInstruction registers a vault under seed operated by operator.
func (p *VoucherNftProgram) AddVaultInstruction(admin solanago.PublicKey, seed string, operator solanago.PublicKey) (solanago.Instruction, error) {
	if err := requireKeys(namedKey{"admin", admin}, namedKey{"operator", operator}); err != nil {
		return nil, err
	}
	config, err := helpers.DeriveConfigPDA(p.ProgramID)
	if err != nil {
		return nil, err
	}
	vault, err := helpers.DeriveVaultPDA(seed, p.ProgramID)
	if err != nil {
		return nil, err
	}
	return p.bind(vouchernftgen.NewAddVaultInstruction(
		seed,
		operator,
		config.Address,
		vault.Address,
		admin,
		solanago.SystemProgramID,
	))
}

func (p *VoucherNftProgram) mintVoucherInstruction(
	accounts *helpers.VoucherAccounts,
	seed string,
	operator solanago.PublicKey,
	mint solanago.PublicKey,
	params vouchernftgen.MetadataParams,
) (solanago.Instruction, error) {
	return p.bind(vouchernftgen.NewMintVoucherInstruction(
		seed,
		params,
		accounts.Vault.Address,
		accounts.Authorator.Address,
		operator,
		mint,
		accounts.VaultTokenAccount,
		accounts.Metadata,
		accounts.MasterEdition,
		helpers.TokenMetadataProgramID,
		solanago.SystemProgramID,
		solanago.TokenProgramID,
		solanago.SPLAssociatedTokenAccountProgramID,
		solanago.SysVarRentPubkey,
	))
}

// MintVoucherInstructions mints one voucher NFT into the vault's token account,
// preceded by a compute unit limit.
func (p *VoucherNftProgram) MintVoucherInstructions(
	seed string,
	operator solanago.PublicKey,
	mint solanago.PublicKey,
	params vouchernftgen.MetadataParams,
) ([]solanago.Instruction, error) {
	if err := requireKeys(namedKey{"operator", operator}, namedKey{"mint", mint}); err != nil {
		return nil, err
	}
	if err := validateMetadata(params); err != nil {
		return nil, err
	}
	accounts, err := helpers.DeriveVoucherAccounts(seed, mint, p.ProgramID)
	if err != nil {
		return nil, err
	}
	mintIx, err := p.mintVoucherInstruction(accounts, seed, operator, mint, params)
	if err != nil {
		return nil, err
	}
	return solanautil.WithComputeBudget(p.ComputeUnits, []solanago.Instruction{mintIx}), nil
}

// MintVoucherRepayInstructions mints a voucher and attaches its repay terms in
// the same transaction. The mint instruction comes first since the repay
// instruction references the metadata it creates.
func (p *VoucherNftProgram) MintVoucherRepayInstructions(
	seed string,
	operator solanago.PublicKey,
	mint solanago.PublicKey,
	metadata vouchernftgen.MetadataParams,
	repay vouchernftgen.RepayVoucherInformationParams,
) ([]solanago.Instruction, error) {
	if err := requireKeys(namedKey{"operator", operator}, namedKey{"mint", mint}); err != nil {
		return nil, err
	}
	if err := validateMetadata(metadata); err != nil {
		return nil, err
	}
	accounts, err := helpers.DeriveVoucherAccounts(seed, mint, p.ProgramID)
	if err != nil {
		return nil, err
	}
	mintIx, err := p.mintVoucherInstruction(accounts, seed, operator, mint, metadata)
	if err != nil {
		return nil, err
	}
	repayIx, err := p.bind(vouchernftgen.NewAddVoucherRepayInformationInstruction(
		repay,
		accounts.Vault.Address,
		operator,
		mint,
		accounts.Metadata,
		accounts.MasterEdition,
		accounts.RepayVoucher,
		accounts.Authorator.Address,
		helpers.TokenMetadataProgramID,
		solanago.SystemProgramID,
	))
	if err != nil {
		return nil, err
	}
	return solanautil.WithComputeBudget(p.ComputeUnits, []solanago.Instruction{mintIx, repayIx}), nil
}

// OperatorAirdropInstruction moves the voucher held by the vault to user,
// creating the user's token account when needed.
func (p *VoucherNftProgram) OperatorAirdropInstruction(
	seed string,
	operator solanago.PublicKey,
	mint solanago.PublicKey,
	user solanago.PublicKey,
) (solanago.Instruction, error) {
	if err := requireKeys(namedKey{"operator", operator}, namedKey{"mint", mint}, namedKey{"user", user}); err != nil {
		return nil, err
	}
	accounts, err := helpers.DeriveVoucherAccounts(seed, mint, p.ProgramID)
	if err != nil {
		return nil, err
	}
	userTokenAccount, err := helpers.DeriveTokenAccount(user, mint)
	if err != nil {
		return nil, err
	}
	return p.bind(vouchernftgen.NewOperatorAirdropInstruction(
		accounts.Vault.Address,
		operator,
		user,
		mint,
		accounts.MasterEdition,
		accounts.VaultTokenAccount,
		userTokenAccount,
		solanago.SPLAssociatedTokenAccountProgramID,
		solanago.TokenProgramID,
		solanago.SystemProgramID,
		solanago.SysVarRentPubkey,
	))
}
