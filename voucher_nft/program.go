package voucher_nft

import (
	"errors"
	"fmt"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/ws"
	vouchernftgen "github.com/krazyTry/voucher-nft-go/gen/voucher_nft"
	solanautil "github.com/krazyTry/voucher-nft-go/solana"
	"github.com/krazyTry/voucher-nft-go/voucher_nft/helpers"
)

var (
	ErrZeroKey          = errors.New("public key is zero")
	ErrInvalidMetadata  = errors.New("invalid voucher metadata")
	ErrMissingKeypair   = errors.New("keypair is required")
	ErrMissingRPCURL    = errors.New("network rpc url is required")
	ErrAirdropLocalOnly = errors.New("airdrop is only available on localnet")
)

// VoucherNftProgram carries the connection and program id shared by every service.
type VoucherNftProgram struct {
	RPC        *rpc.Client
	WS         *ws.Client
	Commitment rpc.CommitmentType
	ProgramID  solanago.PublicKey
	// ComputeUnits is the limit requested ahead of voucher mints, 0 for the default.
	ComputeUnits uint32
}

func NewVoucherNftProgram(rpcClient *rpc.Client, commitment rpc.CommitmentType, programID solanago.PublicKey) *VoucherNftProgram {
	if commitment == "" {
		commitment = rpc.CommitmentConfirmed
	}
	if programID.IsZero() {
		programID = helpers.VoucherNftProgramID
	}
	return &VoucherNftProgram{
		RPC:        rpcClient,
		Commitment: commitment,
		ProgramID:  programID,
	}
}

// bind points a generated instruction at p.ProgramID. The generated builders
// always target the default deployment.
func (p *VoucherNftProgram) bind(ix solanago.Instruction, err error) (solanago.Instruction, error) {
	if err != nil {
		return nil, err
	}
	if ix.ProgramID().Equals(p.ProgramID) {
		return ix, nil
	}
	data, err := ix.Data()
	if err != nil {
		return nil, err
	}
	return solanago.NewInstruction(p.ProgramID, ix.Accounts(), data), nil
}

type namedKey struct {
	name string
	key  solanago.PublicKey
}

// requireKeys reports the first zero key in argument order.
func requireKeys(keys ...namedKey) error {
	for _, k := range keys {
		if k.key.IsZero() {
			return fmt.Errorf("%w: %s", ErrZeroKey, k.name)
		}
	}
	return nil
}

func validateMetadata(params vouchernftgen.MetadataParams) error {
	switch {
	case params.Name == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidMetadata)
	case params.Symbol == "":
		return fmt.Errorf("%w: symbol is empty", ErrInvalidMetadata)
	case params.Uri == "":
		return fmt.Errorf("%w: uri is empty", ErrInvalidMetadata)
	}
	return nil
}

// decodeProgramError names custom program errors raised by the voucher program.
func decodeProgramError(err error) error {
	programErr, ok := solanautil.ParseProgramError(err)
	if !ok {
		return err
	}
	if programErr.Cause == nil {
		if known, ok := vouchernftgen.Errors[programErr.Code]; ok {
			programErr.Cause = known
		}
	}
	if errors.As(err, new(*solanautil.ProgramError)) {
		return err
	}
	return programErr
}
