package voucher_nft

import (
	"strings"
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	computebudget "github.com/gagliardetto/solana-go/programs/compute-budget"
	"github.com/gagliardetto/solana-go/rpc"
	vouchernftgen "github.com/krazyTry/voucher-nft-go/gen/voucher_nft"
	solanautil "github.com/krazyTry/voucher-nft-go/solana"
	"github.com/krazyTry/voucher-nft-go/voucher_nft/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMetadata = MetadataParams{
	Name:   "Relend Voucher",
	Symbol: "RLV",
	Uri:    "https://example.com/voucher.json",
}

func testProgram(programID solanago.PublicKey) *VoucherNftProgram {
	return NewVoucherNftProgram(rpc.New("http://127.0.0.1:0"), "", programID)
}

func instructionData(t *testing.T, ix solanago.Instruction) []byte {
	t.Helper()
	data, err := ix.Data()
	require.NoError(t, err)
	return data
}

func TestAddVaultInstructionShape(t *testing.T) {
	p := testProgram(solanago.PublicKey{})
	admin := solanago.NewWallet().PublicKey()
	operator := solanago.NewWallet().PublicKey()

	ix, err := p.AddVaultInstruction(admin, "Vault1", operator)
	require.NoError(t, err)
	assert.True(t, ix.ProgramID().Equals(helpers.VoucherNftProgramID))

	config, err := helpers.DeriveConfigPDA(p.ProgramID)
	require.NoError(t, err)
	vault, err := helpers.DeriveVaultPDA("Vault1", p.ProgramID)
	require.NoError(t, err)

	accounts := ix.Accounts()
	require.Len(t, accounts, 4)
	assert.Equal(t, config.Address, accounts[0].PublicKey)
	assert.False(t, accounts[0].IsWritable)
	assert.Equal(t, vault.Address, accounts[1].PublicKey)
	assert.True(t, accounts[1].IsWritable)
	assert.Equal(t, admin, accounts[2].PublicKey)
	assert.True(t, accounts[2].IsSigner)
	assert.Equal(t, solanago.SystemProgramID, accounts[3].PublicKey)

	decoded, err := vouchernftgen.ParseInstruction(instructionData(t, ix))
	require.NoError(t, err)
	args, ok := decoded.(*vouchernftgen.AddVaultArgs)
	require.True(t, ok)
	assert.Equal(t, "Vault1", args.Seed)
	assert.Equal(t, operator, args.Operator)
}

func TestInstructionsFollowProgramID(t *testing.T) {
	programID := solanago.NewWallet().PublicKey()
	p := testProgram(programID)

	ix, err := p.InitializeInstruction(solanago.NewWallet().PublicKey())
	require.NoError(t, err)
	assert.True(t, ix.ProgramID().Equals(programID))

	config, err := helpers.DeriveConfigPDA(programID)
	require.NoError(t, err)
	assert.Equal(t, config.Address, ix.Accounts()[0].PublicKey)
	assert.Equal(t, vouchernftgen.Instruction_Initialize[:], instructionData(t, ix))
}

func TestInitializeWithCollectionInstruction(t *testing.T) {
	p := testProgram(solanago.PublicKey{})
	admin := solanago.NewWallet().PublicKey()
	collection := solanago.NewWallet().PublicKey()

	ix, err := p.InitializeWithCollectionInstruction(admin, collection, testMetadata)
	require.NoError(t, err)
	require.Len(t, ix.Accounts(), 12)
	assert.Equal(t, collection, ix.Accounts()[2].PublicKey)
	assert.True(t, ix.Accounts()[2].IsSigner)

	decoded, err := vouchernftgen.ParseInstruction(instructionData(t, ix))
	require.NoError(t, err)
	assert.Equal(t, &testMetadata, decoded)

	_, err = p.InitializeWithCollectionInstruction(admin, collection, MetadataParams{Name: "x", Symbol: "y"})
	require.ErrorIs(t, err, ErrInvalidMetadata)
}

func TestMintVoucherRepayInstructionsOrder(t *testing.T) {
	p := testProgram(solanago.PublicKey{})
	operator := solanago.NewWallet().PublicKey()
	mint := solanago.NewWallet().PublicKey()
	repay := RepayVoucherInformationParams{
		DiscountPercentage: 1000,
		MaximumAmount:      500,
		StartTime:          1_900_000_000,
		EndTime:            1_900_086_400,
	}

	instructions, err := p.MintVoucherRepayInstructions("Vault1", operator, mint, testMetadata, repay)
	require.NoError(t, err)
	require.Len(t, instructions, 3)

	assert.True(t, instructions[0].ProgramID().Equals(computebudget.ProgramID))
	assert.Equal(t, vouchernftgen.Instruction_MintVoucher[:], instructionData(t, instructions[1])[:8])
	assert.Equal(t, vouchernftgen.Instruction_AddVoucherRepayInformation[:], instructionData(t, instructions[2])[:8])

	decoded, err := vouchernftgen.ParseInstruction(instructionData(t, instructions[2]))
	require.NoError(t, err)
	assert.Equal(t, &vouchernftgen.AddVoucherRepayInformationArgs{Params: repay}, decoded)

	accounts, err := helpers.DeriveVoucherAccounts("Vault1", mint, p.ProgramID)
	require.NoError(t, err)
	assert.Equal(t, accounts.RepayVoucher, instructions[2].Accounts()[5].PublicKey)
	assert.Equal(t, []solanago.PublicKey{operator, mint}, solanautil.Signers(instructions))
}

func TestMintVoucherInstructions(t *testing.T) {
	p := testProgram(solanago.PublicKey{})
	p.ComputeUnits = 400_000
	operator := solanago.NewWallet().PublicKey()
	mint := solanago.NewWallet().PublicKey()

	instructions, err := p.MintVoucherInstructions("Vault1", operator, mint, testMetadata)
	require.NoError(t, err)
	require.Len(t, instructions, 2)
	assert.True(t, instructions[0].ProgramID().Equals(computebudget.ProgramID))

	decoded, err := vouchernftgen.ParseInstruction(instructionData(t, instructions[1]))
	require.NoError(t, err)
	assert.Equal(t, &vouchernftgen.MintVoucherArgs{Seed: "Vault1", Params: testMetadata}, decoded)
}

func TestOperatorAirdropInstruction(t *testing.T) {
	p := testProgram(solanago.PublicKey{})
	operator := solanago.NewWallet().PublicKey()
	mint := solanago.NewWallet().PublicKey()
	user := solanago.NewWallet().PublicKey()

	ix, err := p.OperatorAirdropInstruction("Vault1", operator, mint, user)
	require.NoError(t, err)

	userTokenAccount, _, err := solanago.FindAssociatedTokenAddress(user, mint)
	require.NoError(t, err)
	accounts := ix.Accounts()
	require.Len(t, accounts, 11)
	assert.Equal(t, userTokenAccount, accounts[6].PublicKey)
	assert.True(t, accounts[6].IsWritable)
	assert.Equal(t, vouchernftgen.Instruction_OperatorAirdrop[:], instructionData(t, ix))
}

func TestBuilderInputErrors(t *testing.T) {
	p := testProgram(solanago.PublicKey{})
	admin := solanago.NewWallet().PublicKey()
	operator := solanago.NewWallet().PublicKey()

	_, err := p.AddVaultInstruction(admin, strings.Repeat("s", 33), operator)
	require.ErrorIs(t, err, solanautil.ErrSeedTooLong)

	_, err = p.AddVaultInstruction(admin, "", operator)
	require.ErrorIs(t, err, helpers.ErrEmptySeed)

	_, err = p.AddVaultInstruction(admin, "Vault1", solanago.PublicKey{})
	require.ErrorIs(t, err, ErrZeroKey)

	for i := 0; i < 10; i++ {
		_, err = p.OperatorAirdropInstruction("Vault1", solanago.PublicKey{}, solanago.PublicKey{}, solanago.PublicKey{})
		require.ErrorIs(t, err, ErrZeroKey)
		assert.Equal(t, "public key is zero: operator", err.Error())
	}

	_, err = p.MintVoucherInstructions("Vault1", operator, solanago.NewWallet().PublicKey(), MetadataParams{Symbol: "RLV", Uri: "u"})
	require.ErrorIs(t, err, ErrInvalidMetadata)

	_, err = p.OperatorAirdropInstruction(strings.Repeat("s", 40), operator, solanago.NewWallet().PublicKey(), admin)
	require.ErrorIs(t, err, solanautil.ErrSeedTooLong)
}
