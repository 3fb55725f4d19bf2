package solana

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/tidwall/gjson"
)

var ErrAccountNotFound = errors.New("account not found")

// CurrentBlockTime returns the unix time of the latest finalized slot.
func CurrentBlockTime(ctx context.Context, rpcClient *rpc.Client) (int64, error) {
	currentSlot, err := rpcClient.GetSlot(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return 0, fmt.Errorf("failed to get slot: %w", err)
	}

	currentTime, err := rpcClient.GetBlockTime(ctx, currentSlot)
	if err != nil {
		return 0, fmt.Errorf("failed to get block time: %w", err)
	}
	if currentTime == nil {
		return 0, fmt.Errorf("block time unavailable for slot %d", currentSlot)
	}
	return currentTime.Time().Unix(), nil
}

// GetLatestBlockhash returns the latest blockhash and the last block height at
// which a transaction using it can still land.
func GetLatestBlockhash(ctx context.Context, rpcClient *rpc.Client) (solana.Hash, uint64, error) {

	recent, err := rpcClient.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Hash{}, 0, err
	}
	return recent.Value.Blockhash, recent.Value.LastValidBlockHeight, nil
}

// AccountDiscriminator is the anchor account discriminator for name.
func AccountDiscriminator(name string) []byte {
	hash := sha256.Sum256([]byte("account:" + name))
	var out [8]byte
	copy(out[:], hash[:8])
	return out[:]
}

// GetAccountData fetches the raw data of account, failing with ErrAccountNotFound when it does not exist.
func GetAccountData(ctx context.Context, rpcClient *rpc.Client, account solana.PublicKey, commitment rpc.CommitmentType) ([]byte, error) {
	out, err := rpcClient.GetAccountInfoWithOpts(ctx, account, &rpc.GetAccountInfoOpts{Commitment: commitment})
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, account)
		}
		return nil, err
	}
	if out == nil || out.Value == nil {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, account)
	}
	return out.Value.Data.GetBinary(), nil
}

func GetMultipleAccountInfo(ctx context.Context, rpcClient *rpc.Client, accounts []solana.PublicKey) (*rpc.GetMultipleAccountsResult, error) {
	return rpcClient.GetMultipleAccountsWithOpts(ctx, accounts, &rpc.GetMultipleAccountsOpts{Commitment: rpc.CommitmentFinalized, Encoding: solana.EncodingBase64})
}

// GetMultipleToken fetches mints; missing accounts come back as nil entries.
func GetMultipleToken(ctx context.Context, rpcClient *rpc.Client, tokens ...solana.PublicKey) ([]*Token, error) {
	outs, err := GetMultipleAccountInfo(ctx, rpcClient, tokens)
	if err != nil {
		return nil, err
	}
	list := make([]*Token, len(outs.Value))
	for i, out := range outs.Value {
		if out == nil {
			continue
		}

		token, err := new(TokenLayout).Decode(out.Data.GetBinary())
		if err != nil {
			return nil, err
		}
		token.Owner = out.Owner

		list[i] = token
	}
	return list, nil
}

// GetTokenAccount fetches and decodes an SPL token account.
func GetTokenAccount(ctx context.Context, rpcClient *rpc.Client, address solana.PublicKey, commitment rpc.CommitmentType) (*Account, error) {
	data, err := GetAccountData(ctx, rpcClient, address, commitment)
	if err != nil {
		return nil, err
	}
	account, err := new(AccountLayout).Decode(data)
	if err != nil {
		return nil, err
	}
	account.Address = address
	return account, nil
}

// GetTokenBalances returns the non-zero SPL token holdings of owner keyed by mint.
func GetTokenBalances(ctx context.Context, rpcClient *rpc.Client, owner solana.PublicKey, commitment rpc.CommitmentType) (map[solana.PublicKey]uint64, error) {
	resp, err := rpcClient.GetTokenAccountsByOwner(ctx, owner, &rpc.GetTokenAccountsConfig{
		ProgramId: &solana.TokenProgramID,
	}, &rpc.GetTokenAccountsOpts{
		Encoding:   solana.EncodingJSONParsed,
		Commitment: commitment,
	})
	if err != nil {
		return nil, err
	}
	/*
		{
			"parsed": {
				"info": {
					"mint": "...",
					"owner": "...",
					"state": "initialized",
					"tokenAmount": {"amount": "1", "decimals": 0, "uiAmountString": "1"}
				},
				"type": "account"
			},
			"program": "spl-token",
			"space": 165
		}
	*/
	balances := make(map[solana.PublicKey]uint64)
	for _, v := range resp.Value {
		raw := v.Account.Data.GetRawJSON()
		mint := gjson.GetBytes(raw, "parsed.info.mint").String()
		amount := gjson.GetBytes(raw, "parsed.info.tokenAmount.amount").Uint()
		if amount == 0 || mint == "" {
			continue
		}
		key, err := solana.PublicKeyFromBase58(mint)
		if err != nil {
			return nil, fmt.Errorf("invalid mint %q in token account %s: %w", mint, v.Pubkey, err)
		}
		balances[key] += amount
	}
	return balances, nil
}
