// Package config holds the RENEC network table used by the voucher client and CLI.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gagliardetto/solana-go"
	vouchernftgen "github.com/krazyTry/voucher-nft-go/gen/voucher_nft"
)

const (
	Mainnet  = "mainnet"
	Testnet  = "testnet"
	Localnet = "localnet"

	DefaultKeypairPath = "~/.config/renec/id.json"
)

var ErrUnknownNetwork = errors.New("unknown network")

// Network is everything needed to reach one deployment of the voucher program.
type Network struct {
	Name        string
	RPCURL      string
	WSURL       string
	ProgramID   solana.PublicKey
	KeypairPath string
}

// IsLocal reports whether the network is a local validator, where airdrops are available.
func (n Network) IsLocal() bool {
	return n.Name == Localnet
}

// Table maps network names to their endpoints. A Table is never modified in
// place; With returns a copy.
type Table struct {
	networks map[string]Network
}

func DefaultTable() Table {
	return Table{networks: map[string]Network{
		Mainnet: {
			Name:        Mainnet,
			RPCURL:      "https://api-mainnet-beta.renec.foundation:8899/",
			WSURL:       "wss://api-mainnet-beta.renec.foundation:8900/",
			ProgramID:   vouchernftgen.ProgramID,
			KeypairPath: DefaultKeypairPath,
		},
		Testnet: {
			Name:        Testnet,
			RPCURL:      "https://api-testnet.renec.foundation:8899/",
			WSURL:       "wss://api-testnet.renec.foundation:8900/",
			ProgramID:   vouchernftgen.ProgramID,
			KeypairPath: DefaultKeypairPath,
		},
		Localnet: {
			Name:        Localnet,
			RPCURL:      "http://127.0.0.1:8899",
			WSURL:       "ws://127.0.0.1:8900",
			ProgramID:   vouchernftgen.ProgramID,
			KeypairPath: DefaultKeypairPath,
		},
	}}
}

// Lookup returns the named network, or ErrUnknownNetwork.
func (t Table) Lookup(name string) (Network, error) {
	n, ok := t.networks[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Network{}, fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownNetwork, name, strings.Join(t.Names(), ", "))
	}
	return n, nil
}

// With returns a copy of t with n added or replaced.
func (t Table) With(n Network) Table {
	networks := make(map[string]Network, len(t.networks)+1)
	for k, v := range t.networks {
		networks[k] = v
	}
	networks[n.Name] = n
	return Table{networks: networks}
}

func (t Table) Names() []string {
	names := make([]string, 0, len(t.networks))
	for name := range t.networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseNetwork resolves name against DefaultTable.
func ParseNetwork(name string) (Network, error) {
	return DefaultTable().Lookup(name)
}
