package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc/ws"
	jsoniter "github.com/json-iterator/go"
	"github.com/krazyTry/voucher-nft-go/config"
	solanautil "github.com/krazyTry/voucher-nft-go/solana"
	voucher "github.com/krazyTry/voucher-nft-go/voucher_nft"
	"go.uber.org/zap"
)

var errUsage = errors.New("usage")

type command struct {
	name        string
	description string
	run         func(ctx context.Context, args []string, stdout io.Writer) error
}

var commands = []command{
	{"initialize", "Initialize the program config with the source keypair as admin", runInitialize},
	{"add-vault", "Add a vault to the program", runAddVault},
	{"mint-voucher", "Mint a voucher NFT into a vault", runMintVoucher},
	{"mint-repay-voucher", "Mint a repay voucher described by a metadata file", runMintRepayVoucher},
	{"airdrop-voucher", "Send a voucher held by a vault to a user", runAirdropVoucher},
	{"fetch-vault", "Fetch one vault, or every vault when --seed is omitted", runFetchVault},
	{"fetch-repay-voucher", "Fetch the repay terms of a voucher mint", runFetchRepayVoucher},
	{"fetch-config", "Fetch the program config", runFetchConfig},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}
	for _, cmd := range commands {
		if cmd.name != args[0] {
			continue
		}
		err := cmd.run(ctx, args[1:], stdout)
		switch {
		case err == nil:
			return 0
		case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
			return 2
		default:
			printError(stderr, err)
			return 1
		}
	}
	usage(stderr)
	return 2
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: voucher-nft <command> [flags]")
	fmt.Fprintln(w, "\nCommands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-20s %s\n", cmd.name, cmd.description)
	}
	fmt.Fprintln(w, "\nRun 'voucher-nft <command> -h' for the flags of a command.")
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	var programErr *solanautil.ProgramError
	if errors.As(err, &programErr) {
		if programErr.Code >= 0 {
			fmt.Fprintf(w, "Program error code: %d (0x%x)\n", programErr.Code, programErr.Code)
		}
		fmt.Fprintf(w, "Program logs:\n%s\n", solanautil.FormatLogs(programErr.Logs))
	}
}

// commonFlags are shared by every subcommand.
type commonFlags struct {
	network   string
	source    string
	programID string
	config    string
	verbose   bool
}

func newFlagSet(name string, common *commonFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&common.network, "network", "", "Network type: mainnet, testnet, localnet (required)")
	fs.StringVar(&common.source, "source", "", "Keypair file path or base58 secret key (required)")
	fs.StringVar(&common.programID, "program_id", "", "Program id override")
	fs.StringVar(&common.config, "config", "", "TOML file with network overrides")
	fs.BoolVar(&common.verbose, "verbose", false, "Log failed operations with program logs")
	return fs
}

func parse(fs *flag.FlagSet, args []string, required ...string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	var missing []string
	for _, name := range append([]string{"network", "source"}, required...) {
		if !set[name] {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) > 0 {
		fmt.Fprintf(fs.Output(), "missing required flags: %s\n", strings.Join(missing, ", "))
		fs.Usage()
		return errUsage
	}
	return nil
}

// client connects to the selected network. The returned close func releases
// the websocket connection and flushes the logger.
func (f *commonFlags) client(ctx context.Context) (*voucher.VoucherNftClient, func(), error) {
	table := config.DefaultTable()
	if f.config != "" {
		var err error
		if table, err = config.LoadTable(f.config); err != nil {
			return nil, nil, err
		}
	}
	network, err := table.Lookup(f.network)
	if err != nil {
		return nil, nil, err
	}
	keypair, err := config.LoadKeypair(f.source)
	if err != nil {
		return nil, nil, err
	}

	cfg := voucher.ClientConfig{
		Network: network,
		Keypair: keypair,
		Verbose: f.verbose,
	}
	if f.programID != "" {
		programID, err := solana.PublicKeyFromBase58(f.programID)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --program_id: %w", err)
		}
		cfg.ProgramID = &programID
	}

	logger := zap.NewNop()
	if f.verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return nil, nil, err
		}
	}
	cfg.Logger = logger

	var wsClient *ws.Client
	if network.WSURL != "" {
		// without a subscription confirmations fall back to status polling
		if wsClient, err = ws.Connect(ctx, network.WSURL); err != nil {
			logger.Warn("websocket unavailable", zap.String("url", network.WSURL), zap.Error(err))
			wsClient = nil
		}
	}
	cfg.WSClient = wsClient

	closeFn := func() {
		if wsClient != nil {
			wsClient.Close()
		}
		_ = logger.Sync()
	}

	client, err := voucher.NewVoucherNftClient(cfg)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return client, closeFn, nil
}

func printJSON(w io.Writer, v any) error {
	out, err := jsoniter.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func publicKeyFlag(name, value string) (solana.PublicKey, error) {
	key, err := solana.PublicKeyFromBase58(value)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return key, nil
}

func runInitialize(ctx context.Context, args []string, stdout io.Writer) error {
	var common commonFlags
	fs := newFlagSet("initialize", &common)
	if err := parse(fs, args); err != nil {
		return err
	}
	client, closeClient, err := common.client(ctx)
	if err != nil {
		return err
	}
	defer closeClient()
	sig, err := client.Initialize(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Initialize program success at tx", sig)
	return nil
}

func runAddVault(ctx context.Context, args []string, stdout io.Writer) error {
	var common commonFlags
	fs := newFlagSet("add-vault", &common)
	seed := fs.String("seed", "", "Seed of the vault (required)")
	operatorAddress := fs.String("operator_address", "", "Address of the operator of the vault (required)")
	if err := parse(fs, args, "seed", "operator_address"); err != nil {
		return err
	}
	operator, err := publicKeyFlag("operator_address", *operatorAddress)
	if err != nil {
		return err
	}
	client, closeClient, err := common.client(ctx)
	if err != nil {
		return err
	}
	defer closeClient()
	sig, err := client.AddVault(ctx, *seed, operator)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Add vault success at tx", sig)
	return nil
}

func runMintVoucher(ctx context.Context, args []string, stdout io.Writer) error {
	var common commonFlags
	fs := newFlagSet("mint-voucher", &common)
	seed := fs.String("seed", "", "Seed of the vault (required)")
	name := fs.String("name", "", "Voucher name (required)")
	symbol := fs.String("symbol", "", "Voucher symbol (required)")
	uri := fs.String("uri", "", "Voucher metadata uri (required)")
	if err := parse(fs, args, "seed", "name", "symbol", "uri"); err != nil {
		return err
	}
	client, closeClient, err := common.client(ctx)
	if err != nil {
		return err
	}
	defer closeClient()
	sig, mint, err := client.MintVoucher(ctx, *seed, nil, voucher.MetadataParams{Name: *name, Symbol: *symbol, Uri: *uri})
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Mint voucher success at tx", sig)
	fmt.Fprintln(stdout, "Voucher mint", mint)
	return nil
}

func runMintRepayVoucher(ctx context.Context, args []string, stdout io.Writer) error {
	var common commonFlags
	fs := newFlagSet("mint-repay-voucher", &common)
	seed := fs.String("seed", "", "Seed of the vault (required)")
	metadataPath := fs.String("metadata", "", "JSON path of the repay voucher (required)")
	if err := parse(fs, args, "seed", "metadata"); err != nil {
		return err
	}
	metadata, err := voucher.LoadVoucherMetadata(*metadataPath)
	if err != nil {
		return err
	}
	client, closeClient, err := common.client(ctx)
	if err != nil {
		return err
	}
	defer closeClient()
	sig, mint, err := client.MintVoucherRepay(ctx, *seed, nil, metadata.MetadataParams(), metadata.RepayParams())
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Mint repay voucher success at tx", sig)
	fmt.Fprintln(stdout, "Voucher mint", mint)
	return nil
}

func runAirdropVoucher(ctx context.Context, args []string, stdout io.Writer) error {
	var common commonFlags
	fs := newFlagSet("airdrop-voucher", &common)
	seed := fs.String("seed", "", "Seed of the vault (required)")
	mintAddress := fs.String("mint", "", "Voucher mint (required)")
	userAddress := fs.String("user", "", "Receiver of the voucher (required)")
	if err := parse(fs, args, "seed", "mint", "user"); err != nil {
		return err
	}
	mint, err := publicKeyFlag("mint", *mintAddress)
	if err != nil {
		return err
	}
	user, err := publicKeyFlag("user", *userAddress)
	if err != nil {
		return err
	}
	client, closeClient, err := common.client(ctx)
	if err != nil {
		return err
	}
	defer closeClient()
	sig, err := client.OperatorAirdrop(ctx, *seed, nil, mint, user)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Airdrop voucher success at tx", sig)
	return nil
}

func runFetchVault(ctx context.Context, args []string, stdout io.Writer) error {
	var common commonFlags
	fs := newFlagSet("fetch-vault", &common)
	seed := fs.String("seed", "", "Seed of the vault, all vaults when empty")
	if err := parse(fs, args); err != nil {
		return err
	}
	client, closeClient, err := common.client(ctx)
	if err != nil {
		return err
	}
	defer closeClient()
	if *seed != "" {
		vault, err := client.GetVault(ctx, *seed)
		if err != nil {
			return err
		}
		return printJSON(stdout, vault)
	}
	vaults, err := client.GetVaults(ctx, nil)
	if err != nil {
		return err
	}
	return printJSON(stdout, vaults)
}

func runFetchRepayVoucher(ctx context.Context, args []string, stdout io.Writer) error {
	var common commonFlags
	fs := newFlagSet("fetch-repay-voucher", &common)
	mintAddress := fs.String("mint", "", "Voucher mint (required)")
	if err := parse(fs, args, "mint"); err != nil {
		return err
	}
	mint, err := publicKeyFlag("mint", *mintAddress)
	if err != nil {
		return err
	}
	client, closeClient, err := common.client(ctx)
	if err != nil {
		return err
	}
	defer closeClient()
	view, err := client.GetRepayVoucher(ctx, mint)
	if err != nil {
		return err
	}
	return printJSON(stdout, view)
}

func runFetchConfig(ctx context.Context, args []string, stdout io.Writer) error {
	var common commonFlags
	fs := newFlagSet("fetch-config", &common)
	if err := parse(fs, args); err != nil {
		return err
	}
	client, closeClient, err := common.client(ctx)
	if err != nil {
		return err
	}
	defer closeClient()
	cfg, err := client.GetConfig(ctx)
	if err != nil {
		return err
	}
	return printJSON(stdout, cfg)
}
