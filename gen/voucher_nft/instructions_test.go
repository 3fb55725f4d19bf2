package vouchernft

import (
	"crypto/sha256"
	"testing"

	binary "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sighash(namespace, name string) [8]byte {
	sum := sha256.Sum256([]byte(namespace + ":" + name))
	var out [8]byte
	copy(out[:], sum[:8])
	return out
}

func TestDiscriminators(t *testing.T) {
	assert.Equal(t, sighash("global", "initialize"), Instruction_Initialize)
	assert.Equal(t, sighash("global", "add_vault"), Instruction_AddVault)
	assert.Equal(t, sighash("global", "mint_voucher"), Instruction_MintVoucher)
	assert.Equal(t, sighash("global", "add_voucher_repay_information"), Instruction_AddVoucherRepayInformation)
	assert.Equal(t, sighash("global", "operator_airdrop"), Instruction_OperatorAirdrop)

	assert.Equal(t, sighash("account", "Config"), Account_Config)
	assert.Equal(t, sighash("account", "Vault"), Account_Vault)
	assert.Equal(t, sighash("account", "Authorator"), Account_Authorator)
	assert.Equal(t, sighash("account", "RepayVoucher"), Account_RepayVoucher)
}

func TestNewInitializeInstructionWritesDiscriminator(t *testing.T) {
	config := solanago.NewWallet().PublicKey()
	admin := solanago.NewWallet().PublicKey()

	ix, err := NewInitializeInstruction(config, admin, solanago.SystemProgramID)
	require.NoError(t, err)

	data, err := ix.Data()
	require.NoError(t, err)
	assert.Equal(t, Instruction_Initialize[:], data)

	accounts := ix.Accounts()
	require.Len(t, accounts, 3)
	assert.True(t, accounts[0].IsWritable)
	assert.False(t, accounts[0].IsSigner)
	assert.True(t, accounts[1].IsWritable)
	assert.True(t, accounts[1].IsSigner)
	assert.Equal(t, solanago.SystemProgramID, accounts[2].PublicKey)

	args, err := ParseInstruction(data)
	require.NoError(t, err)
	assert.Nil(t, args)
}

func TestNewAddVaultInstruction(t *testing.T) {
	config := solanago.NewWallet().PublicKey()
	vault := solanago.NewWallet().PublicKey()
	admin := solanago.NewWallet().PublicKey()
	operator := solanago.NewWallet().PublicKey()

	ix, err := NewAddVaultInstruction("Vault1", operator, config, vault, admin, solanago.SystemProgramID)
	require.NoError(t, err)
	assert.Equal(t, ProgramID, ix.ProgramID())

	accounts := ix.Accounts()
	require.Len(t, accounts, 4)
	assert.Equal(t, config, accounts[0].PublicKey)
	assert.False(t, accounts[0].IsWritable)
	assert.Equal(t, vault, accounts[1].PublicKey)
	assert.True(t, accounts[1].IsWritable)
	assert.Equal(t, admin, accounts[2].PublicKey)
	assert.True(t, accounts[2].IsSigner)

	data, err := ix.Data()
	require.NoError(t, err)
	// discriminator + u32 length + "Vault1" + pubkey
	assert.Len(t, data, 8+4+6+32)

	args, err := ParseInstruction(data)
	require.NoError(t, err)
	parsed, ok := args.(*AddVaultArgs)
	require.True(t, ok)
	assert.Equal(t, "Vault1", parsed.Seed)
	assert.Equal(t, operator, parsed.Operator)
}

func TestMintVoucherMetadataRoundTrip(t *testing.T) {
	params := MetadataParams{
		Name:   "Relend voucher",
		Symbol: "RVC",
		Uri:    "https://arweave.net/voucher.json",
	}
	keys := make([]solanago.PublicKey, 12)
	for i := range keys {
		keys[i] = solanago.NewWallet().PublicKey()
	}

	ix, err := NewMintVoucherInstruction("Vault1", params,
		keys[0], keys[1], keys[2], keys[3], keys[4], keys[5],
		keys[6], keys[7], keys[8], keys[9], keys[10], keys[11],
	)
	require.NoError(t, err)

	accounts := ix.Accounts()
	require.Len(t, accounts, 12)
	assert.True(t, accounts[2].IsSigner, "operator signs")
	assert.True(t, accounts[3].IsSigner, "mint signs")

	data, err := ix.Data()
	require.NoError(t, err)
	args, err := ParseInstruction(data)
	require.NoError(t, err)
	parsed, ok := args.(*MintVoucherArgs)
	require.True(t, ok)
	assert.Equal(t, "Vault1", parsed.Seed)
	assert.Equal(t, params, parsed.Params)
}

func TestAddVoucherRepayInformationPayload(t *testing.T) {
	params := RepayVoucherInformationParams{
		DiscountPercentage: 10001,
		MaximumAmount:      500,
		StartTime:          1700000000,
		EndTime:            1690000000,
	}
	keys := make([]solanago.PublicKey, 9)
	for i := range keys {
		keys[i] = solanago.NewWallet().PublicKey()
	}

	ix, err := NewAddVoucherRepayInformationInstruction(params,
		keys[0], keys[1], keys[2], keys[3], keys[4], keys[5], keys[6], keys[7], keys[8],
	)
	require.NoError(t, err)

	data, err := ix.Data()
	require.NoError(t, err)
	assert.Len(t, data, 8+2+4+8+8)

	args, err := ParseInstruction(data)
	require.NoError(t, err)
	parsed, ok := args.(*AddVoucherRepayInformationArgs)
	require.True(t, ok)
	assert.Equal(t, params, parsed.Params)
}

func TestParseInstructionUnknownDiscriminator(t *testing.T) {
	_, err := ParseInstruction([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	require.Error(t, err)
}

func TestParseVaultAccount(t *testing.T) {
	vault := Vault{
		Operator: solanago.NewWallet().PublicKey(),
		Bump:     254,
		Seed:     "Vault1",
	}
	vault.Reserve[5] = binary.Uint128{Lo: 7}

	data, err := MarshalAccount(vault)
	require.NoError(t, err)

	parsed, err := ParseAccount_Vault(data)
	require.NoError(t, err)
	assert.Equal(t, vault.Operator, parsed.Operator)
	assert.Equal(t, vault.Bump, parsed.Bump)
	assert.Equal(t, vault.Seed, parsed.Seed)
	assert.Equal(t, uint64(7), parsed.Reserve[5].Lo)

	_, err = ParseAccount_Config(data)
	require.Error(t, err, "vault data must not parse as config")

	decoded, err := ParseAnyAccount(data)
	require.NoError(t, err)
	_, ok := decoded.(*Vault)
	assert.True(t, ok)
}
