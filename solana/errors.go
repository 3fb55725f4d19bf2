package solana

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"
)

var customErrorLog = regexp.MustCompile(`(?i)custom program error: 0x([0-9a-f]+)`)

// ProgramError is a transaction rejected by an on-chain program.
type ProgramError struct {
	// Code is the custom error code, -1 when the failure is not a custom program error.
	Code int
	// InstructionIndex is the failing instruction, -1 when unknown.
	InstructionIndex int
	Logs             []string
	// Raw is the JSON form of the transaction error.
	Raw string
	// Cause is the decoded program error, when the code is known to the caller.
	Cause error
}

func (e *ProgramError) Error() string {
	var b strings.Builder
	b.WriteString("program error")
	if e.InstructionIndex >= 0 {
		fmt.Fprintf(&b, " in instruction %d", e.InstructionIndex)
	}
	switch {
	case e.Cause != nil:
		fmt.Fprintf(&b, ": %v", e.Cause)
	case e.Code >= 0:
		fmt.Fprintf(&b, ": custom program error 0x%x", e.Code)
	case e.Raw != "":
		fmt.Fprintf(&b, ": %s", e.Raw)
	}
	return b.String()
}

func (e *ProgramError) Unwrap() error {
	return e.Cause
}

// HasCode reports whether err carries the custom program error code.
func HasCode(err error, code int) bool {
	var programErr *ProgramError
	return errors.As(err, &programErr) && programErr.Code == code
}

// ParseProgramError extracts a ProgramError from an RPC failure, typically a
// failed preflight simulation.
func ParseProgramError(err error) (*ProgramError, bool) {
	if err == nil {
		return nil, false
	}
	var programErr *ProgramError
	if errors.As(err, &programErr) {
		return programErr, true
	}

	var rpcErr *jsonrpc.RPCError
	if !errors.As(err, &rpcErr) || rpcErr.Data == nil {
		return programErrorFromText(err.Error())
	}

	raw, mErr := jsoniter.Marshal(rpcErr.Data)
	if mErr != nil {
		return programErrorFromText(err.Error())
	}
	var logs []string
	for _, line := range gjson.GetBytes(raw, "logs").Array() {
		logs = append(logs, line.String())
	}
	txErr := gjson.GetBytes(raw, "err")
	if !txErr.Exists() || txErr.Type == gjson.Null {
		if len(logs) == 0 {
			return programErrorFromText(rpcErr.Message)
		}
		return newProgramError(nil, logs), true
	}
	var value any
	if err := jsoniter.UnmarshalFromString(txErr.Raw, &value); err != nil {
		return nil, false
	}
	return newProgramError(value, logs), true
}

// NewProgramError builds a ProgramError from a transaction status error and its logs.
func NewProgramError(txErr any, logs []string) *ProgramError {
	return newProgramError(txErr, logs)
}

func newProgramError(txErr any, logs []string) *ProgramError {
	out := &ProgramError{
		Code:             -1,
		InstructionIndex: -1,
		Logs:             logs,
	}
	if txErr != nil {
		raw, err := jsoniter.MarshalToString(txErr)
		if err == nil {
			out.Raw = raw
			if index := gjson.Get(raw, "InstructionError.0"); index.Exists() {
				out.InstructionIndex = int(index.Int())
			}
			if custom := gjson.Get(raw, "InstructionError.1.Custom"); custom.Exists() {
				out.Code = int(custom.Int())
			}
		}
	}
	if out.Code < 0 {
		for _, line := range logs {
			if code, ok := customCodeFromText(line); ok {
				out.Code = code
				break
			}
		}
	}
	return out
}

func programErrorFromText(text string) (*ProgramError, bool) {
	code, ok := customCodeFromText(text)
	if !ok {
		return nil, false
	}
	return &ProgramError{Code: code, InstructionIndex: -1, Raw: text}, true
}

func customCodeFromText(text string) (int, bool) {
	match := customErrorLog.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	code, err := strconv.ParseInt(match[1], 16, 32)
	if err != nil {
		return 0, false
	}
	return int(code), true
}
