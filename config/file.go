package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

var ErrInvalidKeypair = errors.New("invalid keypair")

type fileNetwork struct {
	RPCURL      string `toml:"rpc_url"`
	WSURL       string `toml:"ws_url"`
	ProgramID   string `toml:"program_id"`
	KeypairPath string `toml:"keypair_path"`
}

type fileConfig struct {
	Networks map[string]fileNetwork `toml:"networks"`
}

// LoadTable reads network overrides from a TOML file on top of DefaultTable.
//
//	[networks.localnet]
//	rpc_url = "http://127.0.0.1:8899"
//	program_id = "83Y1RXET7F21aeyLaSSrGxwWrAP7jhXdDNwi1znMGU72"
//
// Unset fields keep their default value. Unknown keys are rejected.
func LoadTable(path string) (Table, error) {
	table := DefaultTable()

	var cfg fileConfig
	meta, err := toml.DecodeFile(ExpandPath(path), &cfg)
	if err != nil {
		return Table{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Table{}, fmt.Errorf("config %s: unknown key %s", path, undecoded[0])
	}

	for name, override := range cfg.Networks {
		name = strings.ToLower(strings.TrimSpace(name))
		network, err := table.Lookup(name)
		if err != nil {
			network = Network{Name: name, KeypairPath: DefaultKeypairPath}
		}
		if override.RPCURL != "" {
			network.RPCURL = override.RPCURL
		}
		if override.WSURL != "" {
			network.WSURL = override.WSURL
		}
		if override.KeypairPath != "" {
			network.KeypairPath = override.KeypairPath
		}
		if override.ProgramID != "" {
			programID, err := solana.PublicKeyFromBase58(override.ProgramID)
			if err != nil {
				return Table{}, fmt.Errorf("config %s: network %s: invalid program_id: %w", path, name, err)
			}
			network.ProgramID = programID
		}
		if network.RPCURL == "" {
			return Table{}, fmt.Errorf("config %s: network %s: rpc_url is required", path, name)
		}
		table = table.With(network)
	}
	return table, nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// LoadKeypair reads a solana-keygen JSON file. A value that is not an existing
// file is tried as a base58 encoded 64 byte secret key.
func LoadKeypair(source string) (solana.PrivateKey, error) {
	path := ExpandPath(source)
	if _, err := os.Stat(path); err == nil {
		key, err := solana.PrivateKeyFromSolanaKeygenFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidKeypair, path, err)
		}
		return key, nil
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	raw, err := base58.Decode(strings.TrimSpace(source))
	if err != nil || len(raw) != 64 {
		return nil, fmt.Errorf("%w: %s is neither a keypair file nor a base58 secret key", ErrInvalidKeypair, source)
	}
	return solana.PrivateKey(raw), nil
}
