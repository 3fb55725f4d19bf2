package voucher_nft

import (
	"context"
	"errors"
	"fmt"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/ws"
	"github.com/krazyTry/voucher-nft-go/config"
	solanautil "github.com/krazyTry/voucher-nft-go/solana"
	"go.uber.org/zap"
)

// ClientConfig configures NewVoucherNftClient. Network and Keypair are required.
type ClientConfig struct {
	Network config.Network
	// Keypair pays for and signs every transaction.
	Keypair solanago.PrivateKey
	// ProgramID overrides Network.ProgramID.
	ProgramID  *solanago.PublicKey
	Commitment rpc.CommitmentType
	Logger     *zap.Logger
	// Verbose logs every failed operation before returning it.
	Verbose bool
	// WSClient, when set, is used to wait for confirmations instead of polling.
	WSClient *ws.Client
	// RPCClient replaces the client dialed from Network.RPCURL.
	RPCClient    *rpc.Client
	ComputeUnits uint32
}

// VoucherNftClient sends voucher program transactions signed by one keypair
// and reads program state.
type VoucherNftClient struct {
	*VoucherNftProgram
	Network config.Network

	wallet  *solanago.Wallet
	log     *zap.Logger
	verbose bool
}

func NewVoucherNftClient(cfg ClientConfig) (*VoucherNftClient, error) {
	if cfg.Network.RPCURL == "" && cfg.RPCClient == nil {
		return nil, ErrMissingRPCURL
	}
	if len(cfg.Keypair) != 64 {
		return nil, ErrMissingKeypair
	}

	programID := cfg.Network.ProgramID
	if cfg.ProgramID != nil {
		programID = *cfg.ProgramID
	}

	rpcClient := cfg.RPCClient
	if rpcClient == nil {
		rpcClient = rpc.New(cfg.Network.RPCURL)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	program := NewVoucherNftProgram(rpcClient, cfg.Commitment, programID)
	program.WS = cfg.WSClient
	program.ComputeUnits = cfg.ComputeUnits

	return &VoucherNftClient{
		VoucherNftProgram: program,
		Network:           cfg.Network,
		wallet:            &solanago.Wallet{PrivateKey: cfg.Keypair},
		log: logger.With(
			zap.String("network", cfg.Network.Name),
			zap.Stringer("program", programID),
		),
		verbose: cfg.Verbose,
	}, nil
}

// PublicKey is the address of the client's keypair.
func (c *VoucherNftClient) PublicKey() solanago.PublicKey {
	return c.wallet.PublicKey()
}

// run executes one network operation, naming it in any returned error.
func run[T any](c *VoucherNftClient, op string, fn func() (T, error)) (T, error) {
	out, err := fn()
	if err == nil {
		return out, nil
	}
	err = decodeProgramError(err)
	if c.verbose {
		fields := []zap.Field{zap.String("op", op), zap.Error(err)}
		var programErr *solanautil.ProgramError
		if errors.As(err, &programErr) {
			fields = append(fields,
				zap.Int("code", programErr.Code),
				zap.Int("instruction", programErr.InstructionIndex),
				zap.Strings("logs", programErr.Logs),
			)
		}
		c.log.Error("voucher_nft operation failed", fields...)
	}
	return out, fmt.Errorf("voucher_nft: %s: %w", op, err)
}

// send signs with the client keypair plus signers and waits for confirmation.
func (c *VoucherNftClient) send(ctx context.Context, instructions []solanago.Instruction, signers ...*solanago.Wallet) (string, error) {
	wallets := append([]*solanago.Wallet{c.wallet}, signers...)
	sig, err := solanautil.SendInstructions(
		ctx,
		c.RPC,
		c.WS,
		instructions,
		c.wallet.PublicKey(),
		solanautil.SignerGetter(wallets...),
		solanautil.SendOptions{Commitment: c.Commitment},
	)
	if err != nil {
		return "", err
	}
	c.log.Debug("transaction confirmed", zap.Stringer("signature", sig))
	return sig.String(), nil
}

// Simulate runs instructions without submitting them and returns the program logs.
func (c *VoucherNftClient) Simulate(ctx context.Context, instructions []solanago.Instruction, signers ...*solanago.Wallet) ([]string, error) {
	return run(c, "simulate", func() ([]string, error) {
		wallets := append([]*solanago.Wallet{c.wallet}, signers...)
		return solanautil.SimulateInstructions(ctx, c.RPC, instructions, c.wallet.PublicKey(), solanautil.SignerGetter(wallets...))
	})
}

// operatorWallet defaults to the client keypair.
func (c *VoucherNftClient) operatorWallet(operator *solanago.Wallet) *solanago.Wallet {
	if operator == nil {
		return c.wallet
	}
	return operator
}
