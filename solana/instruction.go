package solana

import (
	"github.com/gagliardetto/solana-go"
	computebudget "github.com/gagliardetto/solana-go/programs/compute-budget"
)

// DefaultComputeUnits is the limit requested for voucher mints, well above the per-instruction default.
const DefaultComputeUnits uint32 = 1_000_000

func ComputeBudgetInstruction(units uint32) solana.Instruction {
	if units == 0 {
		units = DefaultComputeUnits
	}
	return computebudget.NewSetComputeUnitLimitInstructionBuilder().
		SetUnits(units).
		Build()
}

// WithComputeBudget returns instructions led by a single compute unit limit.
// Any compute budget instruction already present is dropped.
func WithComputeBudget(units uint32, instructions []solana.Instruction) []solana.Instruction {
	out := make([]solana.Instruction, 0, len(instructions)+1)
	out = append(out, ComputeBudgetInstruction(units))
	for _, ix := range instructions {
		if ix.ProgramID().Equals(computebudget.ProgramID) {
			continue
		}
		out = append(out, ix)
	}
	return out
}

// Signers collects the distinct signer keys referenced by instructions, in order of appearance.
func Signers(instructions []solana.Instruction) []solana.PublicKey {
	var (
		seen = make(map[solana.PublicKey]struct{})
		out  []solana.PublicKey
	)
	for _, ix := range instructions {
		for _, meta := range ix.Accounts() {
			if !meta.IsSigner {
				continue
			}
			if _, ok := seen[meta.PublicKey]; ok {
				continue
			}
			seen[meta.PublicKey] = struct{}{}
			out = append(out, meta.PublicKey)
		}
	}
	return out
}
