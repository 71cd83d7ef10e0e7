package rpcclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCall_Result(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var req struct {
			JSONRPC string        `json:"jsonrpc"`
			ID      int           `json:"id"`
			Method  string        `json:"method"`
			Params  []interface{} `json:"params"`
		}
		require.NoError(t, json.Unmarshal(body, &req))
		require.Equal(t, "2.0", req.JSONRPC)
		require.Equal(t, "wallet_list", req.Method)
		require.NotNil(t, req.Params)
		require.Empty(t, req.Params)

		fmt.Fprint(w, `{"jsonrpc":"2.0","id":1,"result":["Default"]}`)
	}))
	defer srv.Close()

	raw, err := New(srv.URL).Call(context.Background(), "wallet_list")
	require.NoError(t, err)
	require.JSONEq(t, `["Default"]`, string(raw))
}

func TestCall_PositionalParams(t *testing.T) {
	var gotParams []interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Params []interface{} `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotParams = req.Params
		fmt.Fprint(w, `{"jsonrpc":"2.0","id":1,"result":null}`)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Call(context.Background(), "blockchain", "1", "10")
	require.NoError(t, err)
	require.Equal(t, []interface{}{"1", "10"}, gotParams)

	// An explicit nil argument is transmitted as null, not dropped.
	_, err = New(srv.URL).Call(context.Background(), "validators", nil)
	require.NoError(t, err)
	require.Equal(t, []interface{}{nil}, gotParams)
}

func TestCall_RemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"jsonrpc":"2.0","id":1,"error":{"code":-32001,"message":"validator is jailed","data":"staking"}}`)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Call(context.Background(), "staking_unjail")
	require.Error(t, err)

	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	require.Equal(t, -32001, rpcErr.Code)
	require.Equal(t, "validator is jailed", rpcErr.Message)
	require.JSONEq(t, `"staking"`, string(rpcErr.Data))
}

func TestCall_ConnectionRefused(t *testing.T) {
	// Port 1 refuses connections.
	_, err := New("http://127.0.0.1:1").Call(context.Background(), "status")
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestCall_UndecodableResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "<html>gateway error</html>")
	}))
	defer srv.Close()

	_, err := New(srv.URL).Call(context.Background(), "status")
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestCall_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(srv.URL).Call(ctx, "status")
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	require.True(t, errors.Is(transportErr.Err, context.Canceled) ||
		errors.Is(err, context.Canceled))
}
