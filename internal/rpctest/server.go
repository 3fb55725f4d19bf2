// Package rpctest serves canned Solana JSON-RPC responses for offline tests.
package rpctest

import (
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gagliardetto/solana-go/rpc"
	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"
)

// Handler answers one JSON-RPC method. A non-nil rpcErr is returned as the
// response "error" member instead of result.
type Handler func(params gjson.Result) (result any, rpcErr any)

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	handlers map[string]Handler
	calls    map[string]int
}

func NewServer(t *testing.T) *Server {
	s := &Server{
		handlers: make(map[string]Handler),
		calls:    make(map[string]int),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Handle registers h for method, replacing any previous handler.
func (s *Server) Handle(method string, h Handler) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[method] = h
	return s
}

// Result registers a handler that always returns result.
func (s *Server) Result(method string, result any) *Server {
	return s.Handle(method, func(gjson.Result) (any, any) { return result, nil })
}

// Calls is the number of requests received for method.
func (s *Server) Calls(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

func (s *Server) Client() *rpc.Client {
	return rpc.New(s.URL)
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req := gjson.ParseBytes(body)
	method := req.Get("method").String()

	s.mu.Lock()
	s.calls[method]++
	h, ok := s.handlers[method]
	s.mu.Unlock()

	resp := map[string]any{
		"jsonrpc": "2.0",
		"id":      jsoniter.RawMessage(req.Get("id").Raw),
	}
	if !ok {
		resp["error"] = map[string]any{"code": -32601, "message": "Method not found: " + method}
	} else if result, rpcErr := h(req.Get("params")); rpcErr != nil {
		resp["error"] = rpcErr
	} else {
		resp["result"] = result
	}

	w.Header().Set("Content-Type", "application/json")
	out, _ := jsoniter.Marshal(resp)
	w.Write(out)
}

// Context wraps a value the way most Solana RPC methods do.
func Context(value any) map[string]any {
	return map[string]any{
		"context": map[string]any{"slot": 1},
		"value":   value,
	}
}

// LatestBlockhash answers getLatestBlockhash with a fixed hash.
func (s *Server) LatestBlockhash() *Server {
	return s.Result("getLatestBlockhash", Context(map[string]any{
		"blockhash":            "11111111111111111111111111111111",
		"lastValidBlockHeight": 100,
	}))
}

// AccountValue is a base64 encoded account as returned by getAccountInfo.
func AccountValue(owner string, data []byte) map[string]any {
	return map[string]any{
		"data":       []any{base64.StdEncoding.EncodeToString(data), "base64"},
		"executable": false,
		"lamports":   1_000_000,
		"owner":      owner,
		"rentEpoch":  0,
	}
}
