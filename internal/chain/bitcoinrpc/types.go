package bitcoinrpc

import (
	"encoding/json"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RawRequester issues one JSON-RPC call and returns the raw result.
	// Satisfied by rpcclient.Client, which owns the request envelope (method,
	// positional params, request id) and credential handling.
	RawRequester interface {
		RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
	}
)
