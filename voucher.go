package voucher

import (
	"github.com/krazyTry/voucher-nft-go/config"
	solanautil "github.com/krazyTry/voucher-nft-go/solana"
	voucherNft "github.com/krazyTry/voucher-nft-go/voucher_nft"
)

// NewVoucherNftClient creates a client for the voucher program.
//
// Example:
//
// network, _ := ParseNetwork("localnet")
//
// keypair, _ := LoadKeypair(network.KeypairPath)
//
// client, _ := NewVoucherNftClient(voucher_nft.ClientConfig{Network: network, Keypair: keypair, Verbose: true})
//
// client.AddVault(ctx, "Vault1", operator.PublicKey())
//
// client.MintVoucherRepay(ctx, "Vault1", operator, metadata, repay)
var NewVoucherNftClient = voucherNft.NewVoucherNftClient

// NewVoucherNftProgram creates an instruction builder without a signing keypair.
//
// Example:
//
// program := NewVoucherNftProgram(rpcClient, rpc.CommitmentConfirmed, solana.PublicKey{})
//
// ix, _ := program.AddVaultInstruction(admin, "Vault1", operator)
var NewVoucherNftProgram = voucherNft.NewVoucherNftProgram

// ParseNetwork resolves mainnet, testnet or localnet.
var ParseNetwork = config.ParseNetwork

// LoadKeypair reads a solana-keygen file or a base58 secret key.
var LoadKeypair = config.LoadKeypair

// LoadVoucherMetadata reads a repay voucher metadata file.
var LoadVoucherMetadata = voucherNft.LoadVoucherMetadata

// ComputeBudgetInstruction sets the compute unit limit, 1_000_000 when units is 0.
var ComputeBudgetInstruction = solanautil.ComputeBudgetInstruction

// FindProgramAddress derives a program address and its bump.
var FindProgramAddress = solanautil.FindProgramAddress
