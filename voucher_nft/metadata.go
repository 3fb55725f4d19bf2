package voucher_nft

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/tidwall/gjson"
)

// MetadataTimeLayout is the DD/MM/YYYY hh:mm layout of voucher metadata files, read as UTC.
const MetadataTimeLayout = "02/01/2006 15:04"

var ErrInvalidMetadataFile = errors.New("invalid voucher metadata file")

// VoucherMetadata is the content of a repay voucher metadata file.
type VoucherMetadata struct {
	Name        string
	Symbol      string
	Description string
	Uri         string
	Images      string
	StartTime   time.Time
	EndTime     time.Time
	// DiscountPercentage is in basis points, 10000 for a full discount.
	DiscountPercentage uint16
	MaximumAmount      uint32
}

// LoadVoucherMetadata reads and parses a metadata file.
func LoadVoucherMetadata(path string) (*VoucherMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMetadataFile, err)
	}
	return ParseVoucherMetadata(data)
}

// ParseVoucherMetadata decodes
//
//	{"name", "symbol", "description", "uri", "images",
//	 "startTime": "01/02/2030 10:00", "endTime": "...",
//	 "discountPercentage": 1000, "maximumAmount": 500}
//
// Discount and maximum amount range checks are left to the program.
func ParseVoucherMetadata(data []byte) (*VoucherMetadata, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed json", ErrInvalidMetadataFile)
	}
	doc := gjson.ParseBytes(data)

	m := &VoucherMetadata{
		Description: doc.Get("description").String(),
		Images:      doc.Get("images").String(),
	}

	var err error
	if m.Name, err = requiredString(doc, "name"); err != nil {
		return nil, err
	}
	if m.Symbol, err = requiredString(doc, "symbol"); err != nil {
		return nil, err
	}
	if m.Uri, err = requiredString(doc, "uri"); err != nil {
		return nil, err
	}
	if m.StartTime, err = requiredTime(doc, "startTime"); err != nil {
		return nil, err
	}
	if m.EndTime, err = requiredTime(doc, "endTime"); err != nil {
		return nil, err
	}

	discount, err := requiredUint(doc, "discountPercentage", math.MaxUint16)
	if err != nil {
		return nil, err
	}
	m.DiscountPercentage = uint16(discount)

	maximum, err := requiredUint(doc, "maximumAmount", math.MaxUint32)
	if err != nil {
		return nil, err
	}
	m.MaximumAmount = uint32(maximum)
	return m, nil
}

func (m *VoucherMetadata) MetadataParams() MetadataParams {
	return MetadataParams{
		Name:   m.Name,
		Symbol: m.Symbol,
		Uri:    m.Uri,
	}
}

func (m *VoucherMetadata) RepayParams() RepayVoucherInformationParams {
	return RepayVoucherInformationParams{
		DiscountPercentage: m.DiscountPercentage,
		MaximumAmount:      m.MaximumAmount,
		StartTime:          m.StartTime.Unix(),
		EndTime:            m.EndTime.Unix(),
	}
}

func requiredString(doc gjson.Result, field string) (string, error) {
	value := doc.Get(field)
	if value.Type != gjson.String || value.String() == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidMetadataFile, field)
	}
	return value.String(), nil
}

func requiredTime(doc gjson.Result, field string) (time.Time, error) {
	raw, err := requiredString(doc, field)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.ParseInLocation(MetadataTimeLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q is not DD/MM/YYYY hh:mm", ErrInvalidMetadataFile, field, raw)
	}
	return t, nil
}

func requiredUint(doc gjson.Result, field string, limit uint64) (uint64, error) {
	value := doc.Get(field)
	if value.Type != gjson.Number {
		return 0, fmt.Errorf("%w: %s must be a number", ErrInvalidMetadataFile, field)
	}
	if value.Num < 0 || value.Num != math.Trunc(value.Num) || value.Num > float64(limit) {
		return 0, fmt.Errorf("%w: %s %s is not an integer in [0, %d]", ErrInvalidMetadataFile, field, value.Raw, limit)
	}
	return value.Uint(), nil
}
