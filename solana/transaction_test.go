package solana

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	computebudget "github.com/gagliardetto/solana-go/programs/compute-budget"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/krazyTry/voucher-nft-go/internal/rpctest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func transferFixture(t *testing.T) (*solana.Wallet, []solana.Instruction, solana.Signature) {
	t.Helper()
	payer := solana.NewWallet()
	ix := system.NewTransferInstruction(1, payer.PublicKey(), solana.NewWallet().PublicKey()).Build()
	sig, err := payer.PrivateKey.Sign([]byte("voucher"))
	require.NoError(t, err)
	return payer, []solana.Instruction{ix}, sig
}

func statusValue(status string, txErr any) any {
	return rpctest.Context([]any{map[string]any{
		"slot":               1,
		"confirmations":      nil,
		"err":                txErr,
		"confirmationStatus": status,
	}})
}

func TestSendInstructionsMissingSigner(t *testing.T) {
	server := rpctest.NewServer(t).LatestBlockhash()
	payer, instructions, _ := transferFixture(t)

	_, err := SendInstructions(context.Background(), server.Client(), nil, instructions, payer.PublicKey(), SignerGetter(), SendOptions{})
	require.ErrorIs(t, err, ErrMissingSigner)
	assert.Zero(t, server.Calls("getLatestBlockhash"))
	assert.Zero(t, server.Calls("sendTransaction"))
}

func TestSendInstructionsConfirmed(t *testing.T) {
	payer, instructions, sig := transferFixture(t)
	server := rpctest.NewServer(t).LatestBlockhash().
		Result("sendTransaction", sig.String()).
		Result("getSignatureStatuses", statusValue("confirmed", nil))

	got, err := SendInstructions(context.Background(), server.Client(), nil, instructions, payer.PublicKey(), SignerGetter(payer), SendOptions{PollInterval: time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, sig, got)
}

func TestSendInstructionsPreflightRejection(t *testing.T) {
	payer, instructions, _ := transferFixture(t)
	server := rpctest.NewServer(t).LatestBlockhash().
		Handle("sendTransaction", func(gjson.Result) (any, any) {
			return nil, map[string]any{
				"code":    -32002,
				"message": "Transaction simulation failed: Error processing Instruction 0: custom program error: 0x1770",
				"data": map[string]any{
					"err":  map[string]any{"InstructionError": []any{0, map[string]any{"Custom": 6000}}},
					"logs": []any{"Program log: AnchorError occurred. Error Code: OnlyAdmin."},
				},
			}
		})

	_, err := SendInstructions(context.Background(), server.Client(), nil, instructions, payer.PublicKey(), SignerGetter(payer), SendOptions{})
	require.Error(t, err)

	var programErr *ProgramError
	require.True(t, errors.As(err, &programErr))
	assert.Equal(t, 6000, programErr.Code)
	assert.Equal(t, 0, programErr.InstructionIndex)
	assert.Zero(t, server.Calls("getSignatureStatuses"))
}

func TestSendInstructionsFailedOnChain(t *testing.T) {
	payer, instructions, sig := transferFixture(t)
	txErr := map[string]any{"InstructionError": []any{2, map[string]any{"Custom": 6007}}}
	server := rpctest.NewServer(t).LatestBlockhash().
		Result("sendTransaction", sig.String()).
		Result("getSignatureStatuses", statusValue("confirmed", txErr)).
		Result("getTransaction", map[string]any{
			"slot": 1,
			"meta": map[string]any{
				"err":          txErr,
				"fee":          5000,
				"preBalances":  []any{},
				"postBalances": []any{},
				"logMessages":  []any{"Program failed: custom program error: 0x1777"},
			},
		})

	_, err := SendInstructions(context.Background(), server.Client(), nil, instructions, payer.PublicKey(), SignerGetter(payer), SendOptions{PollInterval: time.Millisecond})
	require.Error(t, err)
	assert.True(t, HasCode(err, 6007))
}

func TestSendInstructionsContextCancelled(t *testing.T) {
	payer, instructions, sig := transferFixture(t)
	server := rpctest.NewServer(t).LatestBlockhash().
		Result("sendTransaction", sig.String()).
		Result("getSignatureStatuses", rpctest.Context([]any{nil})).
		Result("getBlockHeight", 50)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := SendInstructions(ctx, server.Client(), nil, instructions, payer.PublicKey(), SignerGetter(payer), SendOptions{PollInterval: 5 * time.Millisecond})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, ErrTransactionDropped)
}

func TestSendInstructionsBlockhashExpired(t *testing.T) {
	payer, instructions, sig := transferFixture(t)
	// LatestBlockhash is valid up to height 100
	server := rpctest.NewServer(t).LatestBlockhash().
		Result("sendTransaction", sig.String()).
		Result("getSignatureStatuses", rpctest.Context([]any{nil})).
		Result("getBlockHeight", 10_000)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := SendInstructions(ctx, server.Client(), nil, instructions, payer.PublicKey(), SignerGetter(payer), SendOptions{PollInterval: time.Millisecond})
	require.ErrorIs(t, err, ErrTransactionDropped)
	assert.NoError(t, ctx.Err())
	assert.Equal(t, 1, server.Calls("getBlockHeight"))
	assert.Equal(t, 2, server.Calls("getSignatureStatuses"))
}

func TestSendInstructionsLandsAtExpiry(t *testing.T) {
	payer, instructions, sig := transferFixture(t)
	var polls atomic.Int32
	server := rpctest.NewServer(t).LatestBlockhash().
		Result("sendTransaction", sig.String()).
		Handle("getSignatureStatuses", func(gjson.Result) (any, any) {
			if polls.Add(1) == 1 {
				return rpctest.Context([]any{nil}), nil
			}
			return statusValue("confirmed", nil), nil
		}).
		Result("getBlockHeight", 101)

	_, err := SendInstructions(context.Background(), server.Client(), nil, instructions, payer.PublicKey(), SignerGetter(payer), SendOptions{PollInterval: time.Millisecond})
	require.NoError(t, err)
}

func TestSendInstructionsFailedWithoutInstructionError(t *testing.T) {
	payer, instructions, sig := transferFixture(t)
	txErr := map[string]any{"InsufficientFundsForRent": map[string]any{"account_index": 1}}
	server := rpctest.NewServer(t).LatestBlockhash().
		Result("sendTransaction", sig.String()).
		Result("getSignatureStatuses", statusValue("confirmed", txErr)).
		Result("getTransaction", map[string]any{
			"slot": 1,
			"meta": map[string]any{
				"err":          txErr,
				"fee":          5000,
				"preBalances":  []any{},
				"postBalances": []any{},
				"logMessages":  []any{"Program 11111111111111111111111111111111 success"},
			},
		})

	_, err := SendInstructions(context.Background(), server.Client(), nil, instructions, payer.PublicKey(), SignerGetter(payer), SendOptions{PollInterval: time.Millisecond})
	var programErr *ProgramError
	require.True(t, errors.As(err, &programErr), err)
	assert.Equal(t, -1, programErr.Code)
	assert.Contains(t, programErr.Raw, "InsufficientFundsForRent")
	assert.Equal(t, []string{"Program 11111111111111111111111111111111 success"}, programErr.Logs)
	assert.Contains(t, err.Error(), "InsufficientFundsForRent")
}

func TestWithComputeBudgetIsFirst(t *testing.T) {
	_, instructions, _ := transferFixture(t)
	instructions = append(instructions, ComputeBudgetInstruction(200_000))

	out := WithComputeBudget(0, instructions)
	require.Len(t, out, 2)
	assert.True(t, out[0].ProgramID().Equals(computebudget.ProgramID))
	assert.True(t, out[1].ProgramID().Equals(solana.SystemProgramID))
}
