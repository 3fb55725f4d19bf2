package vouchernft

import solanago "github.com/gagliardetto/solana-go"

// ProgramID is the voucher NFT program address.
var ProgramID = solanago.MustPublicKeyFromBase58("83Y1RXET7F21aeyLaSSrGxwWrAP7jhXdDNwi1znMGU72")

// SetProgramID points the bindings at another deployment.
func SetProgramID(pubkey solanago.PublicKey) {
	ProgramID = pubkey
}
