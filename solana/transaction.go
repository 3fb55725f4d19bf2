package solana

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	sendandconfirmtransaction "github.com/gagliardetto/solana-go/rpc/sendAndConfirmTransaction"
	"github.com/gagliardetto/solana-go/rpc/ws"
	"golang.org/x/time/rate"
)

var (
	ErrMissingSigner       = errors.New("missing signer")
	ErrTransactionDropped  = errors.New("transaction not found (maybe dropped)")
	ErrNoInstructions      = errors.New("no instructions to send")
	defaultStatusPollEvery = 500 * time.Millisecond
)

// SendOptions tunes SendInstructions. The zero value sends with preflight and
// waits for confirmed commitment.
type SendOptions struct {
	Commitment    rpc.CommitmentType
	SkipPreflight bool
	// PollInterval bounds GetSignatureStatuses calls when no websocket client is available.
	PollInterval time.Duration
}

// SignerGetter resolves keys from a fixed set of wallets.
func SignerGetter(wallets ...*solana.Wallet) func(key solana.PublicKey) *solana.PrivateKey {
	return func(key solana.PublicKey) *solana.PrivateKey {
		for _, w := range wallets {
			if w != nil && w.PublicKey().Equals(key) {
				return &w.PrivateKey
			}
		}
		return nil
	}
}

// BuildTransaction assembles and signs instructions with the latest blockhash.
func BuildTransaction(
	ctx context.Context,
	rpcClient *rpc.Client,
	instructions []solana.Instruction,
	payer solana.PublicKey,
	sign func(key solana.PublicKey) *solana.PrivateKey,
) (*solana.Transaction, error) {
	tx, _, err := buildTransaction(ctx, rpcClient, instructions, payer, sign)
	return tx, err
}

func buildTransaction(
	ctx context.Context,
	rpcClient *rpc.Client,
	instructions []solana.Instruction,
	payer solana.PublicKey,
	sign func(key solana.PublicKey) *solana.PrivateKey,
) (*solana.Transaction, uint64, error) {
	if len(instructions) == 0 {
		return nil, 0, ErrNoInstructions
	}
	for _, key := range append([]solana.PublicKey{payer}, Signers(instructions)...) {
		if sign(key) == nil {
			return nil, 0, fmt.Errorf("%w: %s", ErrMissingSigner, key)
		}
	}

	latestBlockhash, lastValidBlockHeight, err := GetLatestBlockhash(ctx, rpcClient)
	if err != nil {
		return nil, 0, err
	}

	tx, err := solana.NewTransaction(instructions, latestBlockhash, solana.TransactionPayer(payer))
	if err != nil {
		return nil, 0, err
	}

	if _, err = tx.Sign(sign); err != nil {
		return nil, 0, err
	}
	return tx, lastValidBlockHeight, nil
}

// SendInstructions signs, submits and waits for the transaction to be confirmed.
// On-chain rejections come back as *ProgramError.
func SendInstructions(
	ctx context.Context,
	rpcClient *rpc.Client,
	wsClient *ws.Client,
	instructions []solana.Instruction,
	payer solana.PublicKey,
	sign func(key solana.PublicKey) *solana.PrivateKey,
	opts SendOptions,
) (solana.Signature, error) {
	if opts.Commitment == "" {
		opts.Commitment = rpc.CommitmentConfirmed
	}

	tx, lastValidBlockHeight, err := buildTransaction(ctx, rpcClient, instructions, payer, sign)
	if err != nil {
		return solana.Signature{}, err
	}

	sig, err := rpcClient.SendTransactionWithOpts(
		ctx,
		tx,
		rpc.TransactionOpts{
			SkipPreflight:       opts.SkipPreflight,
			PreflightCommitment: opts.Commitment,
		},
	)
	if err != nil {
		if programErr, ok := ParseProgramError(err); ok {
			return solana.Signature{}, programErr
		}
		return solana.Signature{}, err
	}

	if wsClient != nil {
		confirmed, err := sendandconfirmtransaction.WaitForConfirmation(ctx, wsClient, sig, nil)
		if confirmed && err == nil {
			return sig, nil
		}
		if ctx.Err() != nil {
			return sig, ctx.Err()
		}
	}
	// polling also covers a timed-out or failed subscription
	if err := waitForStatus(ctx, rpcClient, sig, lastValidBlockHeight, opts); err != nil {
		return sig, err
	}

	return sig, checkTransaction(ctx, rpcClient, sig, opts.Commitment)
}

// SimulateInstructions runs the transaction through simulateTransaction and returns its logs.
func SimulateInstructions(
	ctx context.Context,
	rpcClient *rpc.Client,
	instructions []solana.Instruction,
	payer solana.PublicKey,
	sign func(key solana.PublicKey) *solana.PrivateKey,
) ([]string, error) {
	tx, err := BuildTransaction(ctx, rpcClient, instructions, payer, sign)
	if err != nil {
		return nil, err
	}

	resp, err := rpcClient.SimulateTransactionWithOpts(ctx, tx, &rpc.SimulateTransactionOpts{
		SigVerify:  true,
		Commitment: rpc.CommitmentConfirmed,
	})
	if err != nil {
		return nil, err
	}
	if resp == nil || resp.Value == nil {
		return nil, nil
	}
	if resp.Value.Err != nil {
		return resp.Value.Logs, NewProgramError(resp.Value.Err, resp.Value.Logs)
	}
	return resp.Value.Logs, nil
}

// waitForStatus polls until sig reaches confirmed commitment. A signature still
// unknown after the chain has passed lastValidBlockHeight is ErrTransactionDropped.
func waitForStatus(ctx context.Context, rpcClient *rpc.Client, sig solana.Signature, lastValidBlockHeight uint64, opts SendOptions) error {
	every := opts.PollInterval
	if every <= 0 {
		every = defaultStatusPollEvery
	}
	limiter := rate.NewLimiter(rate.Every(every), 1)

	expired := false
	for {
		if err := limiter.Wait(ctx); err != nil {
			// the next poll would land after the deadline
			<-ctx.Done()
			return ctx.Err()
		}
		statusResp, err := rpcClient.GetSignatureStatuses(ctx, true, sig)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("rpc GetSignatureStatuses error: %w", err)
		}
		if len(statusResp.Value) == 0 || statusResp.Value[0] == nil {
			if expired {
				return fmt.Errorf("%w: blockhash expired at height %d", ErrTransactionDropped, lastValidBlockHeight)
			}
			height, err := rpcClient.GetBlockHeight(ctx, opts.Commitment)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("rpc GetBlockHeight error: %w", err)
			}
			// one more status lookup after expiry in case it landed in between
			expired = height > lastValidBlockHeight
			continue
		}
		status := statusResp.Value[0]
		if status.Err != nil {
			return nil
		}
		switch status.ConfirmationStatus {
		case rpc.ConfirmationStatusConfirmed, rpc.ConfirmationStatusFinalized:
			return nil
		}
	}
}

func checkTransaction(ctx context.Context, rpcClient *rpc.Client, sig solana.Signature, commitment rpc.CommitmentType) error {
	statusResp, err := rpcClient.GetSignatureStatuses(ctx, true, sig)
	if err != nil {
		return fmt.Errorf("rpc GetSignatureStatuses error: %w", err)
	}
	if len(statusResp.Value) == 0 || statusResp.Value[0] == nil {
		return ErrTransactionDropped
	}
	status := statusResp.Value[0]
	if status.Err == nil {
		return nil
	}

	var logs []string
	txResp, err := rpcClient.GetTransaction(ctx, sig, &rpc.GetTransactionOpts{Commitment: commitment})
	if err == nil && txResp != nil && txResp.Meta != nil {
		logs = txResp.Meta.LogMessages
	}
	return NewProgramError(status.Err, logs)
}

// FormatLogs joins program logs for display.
func FormatLogs(logs []string) string {
	if len(logs) == 0 {
		return "No logs available"
	}
	return "  • " + strings.Join(logs, "\n  • ")
}
