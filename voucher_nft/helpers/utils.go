package helpers

import (
	"bytes"
	"fmt"
	"reflect"

	binary "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	solanautil "github.com/krazyTry/voucher-nft-go/solana"
	"github.com/shopspring/decimal"
)

// Filter matches accounts holding Key at Offset.
type Filter struct {
	Key    solanago.PublicKey
	Offset uint64
}

// ComputeStructOffset gets the offset position of a field in an account struct,
// including the 8 byte account discriminator. Fields before o are encoded at
// their zero value, so offsets after a variable-length field (Vault.Seed) do
// not match real accounts. It panics when o is not a field of x.
func ComputeStructOffset(x any, o string) uint64 {
	t := reflect.TypeOf(x).Elem()
	fields := make([]reflect.StructField, 0)

	found := false
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Name == o {
			found = true
			break
		}
		fields = append(fields, f)
	}
	if !found {
		panic(fmt.Sprintf("%s has no field %q", t.Name(), o))
	}

	newType := reflect.StructOf(fields)
	newValue := reflect.New(newType).Elem()

	buf__ := new(bytes.Buffer)
	enc__ := binary.NewBorshEncoder(buf__)
	if err := enc__.Encode(newValue.Interface()); err != nil {
		panic(fmt.Sprintf("encode %s prefix before %q: %v", t.Name(), o, err))
	}

	return uint64(buf__.Len()) + 8
}

// CreateProgramAccountFilter selects accounts of type key, optionally narrowed by filter.
func CreateProgramAccountFilter(key string, filter *Filter) []rpc.RPCFilter {
	filters := []rpc.RPCFilter{
		{
			Memcmp: &rpc.RPCFilterMemcmp{
				Offset: 0,
				Bytes:  solanautil.AccountDiscriminator(key),
			},
		},
	}

	if filter != nil {
		filters = append(filters, rpc.RPCFilter{
			Memcmp: &rpc.RPCFilterMemcmp{
				Offset: filter.Offset,
				Bytes:  filter.Key[:],
			},
		})
	}
	return filters
}

// DiscountPercent converts basis points to a percentage, 1250 -> 12.5.
func DiscountPercent(bps uint16) decimal.Decimal {
	return decimal.New(int64(bps), -2)
}
