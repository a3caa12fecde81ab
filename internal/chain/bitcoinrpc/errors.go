package bitcoinrpc

import (
	"errors"

	"github.com/btcsuite/btcd/btcjson"

	"github.com/goodnatureofminers/pathfinder-backend/internal/chain"
)

// mapRPCError translates a btcjson RPC error into the shared taxonomy.
// Unmatched codes fall through to KindOther with the original code and
// message preserved. Anything that is not an RPC error object is a transport
// failure.
func mapRPCError(method string, err error) error {
	var rpcErr *btcjson.RPCError
	if !errors.As(err, &rpcErr) {
		return chain.NewError(chain.KindNetworkFailure, method+" request", err)
	}

	switch rpcErr.Code {
	case btcjson.ErrRPCInvalidAddressOrKey, btcjson.ErrRPCDatabase:
		return chain.NewError(chain.KindNotFound, rpcErr.Message, nil)
	case btcjson.ErrRPCInvalidParameter, btcjson.ErrRPCDeserialization:
		return chain.NewError(chain.KindInvalidInput, rpcErr.Message, nil)
	case btcjson.ErrRPCInternal.Code:
		return chain.NewError(chain.KindOther, rpcErr.Message, nil)
	default:
		return chain.NewErrorf(chain.KindOther, "rpc error %d: %s", rpcErr.Code, rpcErr.Message)
	}
}
