package voucher_nft

import (
	"context"
	"errors"
	"fmt"
	"time"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	vouchernftgen "github.com/krazyTry/voucher-nft-go/gen/voucher_nft"
	solanautil "github.com/krazyTry/voucher-nft-go/solana"
	"github.com/krazyTry/voucher-nft-go/voucher_nft/helpers"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var airdropPollInterval = 500 * time.Millisecond

func (c *VoucherNftClient) GetConfig(ctx context.Context) (*Config, error) {
	return run(c, "get config", func() (*Config, error) {
		config, err := helpers.DeriveConfigPDA(c.ProgramID)
		if err != nil {
			return nil, err
		}
		data, err := solanautil.GetAccountData(ctx, c.RPC, config.Address, c.Commitment)
		if err != nil {
			return nil, err
		}
		return vouchernftgen.ParseAccount_Config(data)
	})
}

func (c *VoucherNftClient) GetAuthorator(ctx context.Context) (*Authorator, error) {
	return run(c, "get authorator", func() (*Authorator, error) {
		authorator, err := helpers.DeriveAuthoratorPDA(c.ProgramID)
		if err != nil {
			return nil, err
		}
		data, err := solanautil.GetAccountData(ctx, c.RPC, authorator.Address, c.Commitment)
		if err != nil {
			return nil, err
		}
		return vouchernftgen.ParseAccount_Authorator(data)
	})
}

// GetVault fetches the vault derived from seed.
func (c *VoucherNftClient) GetVault(ctx context.Context, seed string) (*Vault, error) {
	return run(c, "get vault", func() (*Vault, error) {
		vault, err := helpers.DeriveVaultPDA(seed, c.ProgramID)
		if err != nil {
			return nil, err
		}
		data, err := solanautil.GetAccountData(ctx, c.RPC, vault.Address, c.Commitment)
		if err != nil {
			return nil, err
		}
		return vouchernftgen.ParseAccount_Vault(data)
	})
}

// GetVaults lists every vault of the program, or only those run by operator when it is not nil.
func (c *VoucherNftClient) GetVaults(ctx context.Context, operator *solanago.PublicKey) ([]ProgramAccount[Vault], error) {
	return run(c, "get vaults", func() ([]ProgramAccount[Vault], error) {
		var filter *helpers.Filter
		if operator != nil {
			filter = &helpers.Filter{
				Key:    *operator,
				Offset: helpers.ComputeStructOffset(new(Vault), "Operator"),
			}
		}
		return getProgramAccounts(ctx, c, helpers.AccountKeyVault, filter, vouchernftgen.ParseAccount_Vault)
	})
}

// GetRepayVoucher fetches the repay terms attached to the voucher minted as mint.
func (c *VoucherNftClient) GetRepayVoucher(ctx context.Context, mint solanago.PublicKey) (*RepayVoucherView, error) {
	return run(c, "get repay voucher", func() (*RepayVoucherView, error) {
		repayVoucher, err := helpers.DeriveRepayVoucherPDA(mint, c.ProgramID)
		if err != nil {
			return nil, err
		}
		data, err := solanautil.GetAccountData(ctx, c.RPC, repayVoucher.Address, c.Commitment)
		if err != nil {
			return nil, err
		}
		parsed, err := vouchernftgen.ParseAccount_RepayVoucher(data)
		if err != nil {
			return nil, err
		}
		return NewRepayVoucherView(repayVoucher.Address, parsed), nil
	})
}

// GetRepayVouchers lists every repay voucher of the program.
func (c *VoucherNftClient) GetRepayVouchers(ctx context.Context) ([]ProgramAccount[RepayVoucher], error) {
	return run(c, "get repay vouchers", func() ([]ProgramAccount[RepayVoucher], error) {
		return getProgramAccounts(ctx, c, helpers.AccountKeyRepayVoucher, nil, vouchernftgen.ParseAccount_RepayVoucher)
	})
}

func getProgramAccounts[T any](
	ctx context.Context,
	c *VoucherNftClient,
	key string,
	filter *helpers.Filter,
	parse func([]byte) (*T, error),
) ([]ProgramAccount[T], error) {
	accounts, err := c.RPC.GetProgramAccountsWithOpts(ctx, c.ProgramID, &rpc.GetProgramAccountsOpts{
		Commitment: c.Commitment,
		Encoding:   solanago.EncodingBase64,
		Filters:    helpers.CreateProgramAccountFilter(key, filter),
	})
	if err != nil {
		return nil, err
	}
	out := make([]ProgramAccount[T], 0, len(accounts))
	for _, acc := range accounts {
		parsed, err := parse(acc.Account.Data.GetBinary())
		if err != nil {
			c.log.Warn("skipping undecodable account", zap.String("type", key), zap.Stringer("address", acc.Pubkey), zap.Error(err))
			continue
		}
		out = append(out, ProgramAccount[T]{Pubkey: acc.Pubkey, Account: parsed})
	}
	return out, nil
}

// GetTokenBalance is owner's balance of mint in its associated token account,
// 0 when that account does not exist yet.
func (c *VoucherNftClient) GetTokenBalance(ctx context.Context, owner, mint solanago.PublicKey) (uint64, error) {
	return run(c, "get token balance", func() (uint64, error) {
		ata, err := helpers.DeriveTokenAccount(owner, mint)
		if err != nil {
			return 0, err
		}
		account, err := solanautil.GetTokenAccount(ctx, c.RPC, ata, c.Commitment)
		if errors.Is(err, solanautil.ErrAccountNotFound) {
			return 0, nil
		}
		if err != nil {
			return 0, err
		}
		return account.Amount, nil
	})
}

// GetVoucherHoldings lists the mints owner holds a non-zero balance of.
func (c *VoucherNftClient) GetVoucherHoldings(ctx context.Context, owner solanago.PublicKey) (map[solanago.PublicKey]uint64, error) {
	return run(c, "get voucher holdings", func() (map[solanago.PublicKey]uint64, error) {
		return solanautil.GetTokenBalances(ctx, c.RPC, owner, c.Commitment)
	})
}

func (c *VoucherNftClient) GetMint(ctx context.Context, mint solanago.PublicKey) (*solanautil.Token, error) {
	return run(c, "get mint", func() (*solanautil.Token, error) {
		tokens, err := solanautil.GetMultipleToken(ctx, c.RPC, mint)
		if err != nil {
			return nil, err
		}
		if len(tokens) == 0 || tokens[0] == nil {
			return nil, fmt.Errorf("%w: %s", solanautil.ErrAccountNotFound, mint)
		}
		return tokens[0], nil
	})
}

// RequestAirdrop funds to with lamports on a local validator and waits until the
// balance reflects it.
func (c *VoucherNftClient) RequestAirdrop(ctx context.Context, to solanago.PublicKey, lamports uint64) (string, error) {
	return run(c, "request airdrop", func() (string, error) {
		if !c.Network.IsLocal() {
			return "", ErrAirdropLocalOnly
		}
		before, err := c.RPC.GetBalance(ctx, to, c.Commitment)
		if err != nil {
			return "", err
		}
		sig, err := c.RPC.RequestAirdrop(ctx, to, lamports, c.Commitment)
		if err != nil {
			return "", err
		}
		limiter := rate.NewLimiter(rate.Every(airdropPollInterval), 1)
		for {
			if err := limiter.Wait(ctx); err != nil {
				return "", err
			}
			after, err := c.RPC.GetBalance(ctx, to, c.Commitment)
			if err != nil {
				return "", err
			}
			if after.Value >= before.Value+lamports {
				return sig.String(), nil
			}
		}
	})
}

func (c *VoucherNftClient) GetCurrentBlockTime(ctx context.Context) (int64, error) {
	return run(c, "get current block time", func() (int64, error) {
		return solanautil.CurrentBlockTime(ctx, c.RPC)
	})
}
