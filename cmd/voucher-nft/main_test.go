package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gagliardetto/solana-go"
	vouchernftgen "github.com/krazyTry/voucher-nft-go/gen/voucher_nft"
	"github.com/krazyTry/voucher-nft-go/internal/rpctest"
	"github.com/krazyTry/voucher-nft-go/voucher_nft/helpers"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunUsage(t *testing.T) {
	code, _, stderr := runCLI()
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "mint-repay-voucher")

	code, _, _ = runCLI("burn-voucher")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI("add-vault", "--network", "localnet", "--source", "x", "--seed", "Vault1")
	assert.Equal(t, 2, code)
}

func TestRunInputErrorsBeforeNetwork(t *testing.T) {
	source := base58.Encode(solana.NewWallet().PrivateKey)

	code, _, stderr := runCLI("fetch-config", "--network", "devnet", "--source", source)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown network")

	code, _, stderr = runCLI("add-vault", "--network", "localnet", "--source", source, "--seed", "Vault1", "--operator_address", "nope")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "--operator_address")

	metadata := filepath.Join(t.TempDir(), "voucher.json")
	require.NoError(t, os.WriteFile(metadata, []byte(`{"name": "n"}`), 0o600))
	code, _, stderr = runCLI("mint-repay-voucher", "--network", "localnet", "--source", source, "--seed", "Vault1", "--metadata", metadata)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid voucher metadata file")

	code, _, stderr = runCLI("fetch-vault", "--network", "localnet", "--source", filepath.Join(t.TempDir(), "id.json"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid keypair")
}

func TestRunDialsNetworkWebsocket(t *testing.T) {
	var dials atomic.Int32
	wsServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dials.Add(1)
		http.Error(w, "no upgrade", http.StatusBadRequest)
	}))
	t.Cleanup(wsServer.Close)

	admin := solana.NewWallet().PublicKey()
	data, err := vouchernftgen.MarshalAccount(vouchernftgen.Config{Admin: admin})
	require.NoError(t, err)
	rpcServer := rpctest.NewServer(t).
		Result("getAccountInfo", rpctest.Context(rpctest.AccountValue(helpers.VoucherNftProgramID.String(), data)))

	networks := filepath.Join(t.TempDir(), "networks.toml")
	toml := fmt.Sprintf("[networks.localnet]\nrpc_url = %q\nws_url = %q\n", rpcServer.URL, "ws"+strings.TrimPrefix(wsServer.URL, "http"))
	require.NoError(t, os.WriteFile(networks, []byte(toml), 0o600))

	source := base58.Encode(solana.NewWallet().PrivateKey)
	code, stdout, stderr := runCLI("fetch-config", "--network", "localnet", "--source", source, "--config", networks, "--verbose")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, admin.String())
	assert.Equal(t, int32(1), dials.Load())
}
