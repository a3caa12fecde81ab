package bitcoin

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math"
	"strings"

	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/pathfinder-backend/internal/model"
	"github.com/goodnatureofminers/pathfinder-backend/pkg/safe"
)

// Converter turns raw wire transactions into domain transactions, decoding
// output addresses for the configured network.
type Converter struct {
	decoder *ScriptDecoder
	network model.Network
}

// NewConverter constructs a Converter for the given network.
func NewConverter(network model.Network) (*Converter, error) {
	decoder, err := NewScriptDecoder(network)
	if err != nil {
		return nil, err
	}
	return &Converter{decoder: decoder, network: network}, nil
}

// FromHex decodes a raw transaction encoding into a domain transaction.
func (c *Converter) FromHex(rawHex string) (*model.Transaction, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(rawHex))
	if err != nil {
		return nil, fmt.Errorf("invalid transaction hex: %w", err)
	}
	var msgTx wire.MsgTx
	if err := msgTx.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("deserialize transaction: %w", err)
	}
	return c.FromMsgTx(&msgTx)
}

// FromMsgTx maps a wire transaction into the domain model.
func (c *Converter) FromMsgTx(msgTx *wire.MsgTx) (*model.Transaction, error) {
	txid := msgTx.TxHash()

	inputs := make([]model.TransactionInput, 0, len(msgTx.TxIn))
	for _, txIn := range msgTx.TxIn {
		witness := make([]string, 0, len(txIn.Witness))
		for _, item := range txIn.Witness {
			witness = append(witness, hex.EncodeToString(item))
		}
		inputs = append(inputs, model.TransactionInput{
			PreviousOutPoint: model.OutPoint{
				TxID:  txIn.PreviousOutPoint.Hash,
				Index: txIn.PreviousOutPoint.Index,
			},
			ScriptSigHex: hex.EncodeToString(txIn.SignatureScript),
			Witness:      witness,
			Sequence:     txIn.Sequence,
			IsCoinbase:   isCoinbaseInput(txIn),
		})
	}

	outputs := make([]model.TransactionOutput, 0, len(msgTx.TxOut))
	for idx, txOut := range msgTx.TxOut {
		index, err := safe.Uint32(idx)
		if err != nil {
			return nil, fmt.Errorf("tx %s output index overflow: %w", txid, err)
		}
		value, err := safe.Uint64(txOut.Value)
		if err != nil {
			return nil, fmt.Errorf("tx %s output %d value: %w", txid, idx, err)
		}
		scriptType, addresses, err := c.decoder.Decode(txOut.PkScript)
		if err != nil {
			return nil, fmt.Errorf("decode addresses for tx %s output %d: %w", txid, idx, err)
		}
		outputs = append(outputs, model.TransactionOutput{
			Index:      index,
			Value:      value,
			ScriptType: scriptType,
			ScriptHex:  hex.EncodeToString(txOut.PkScript),
			Addresses:  addresses,
		})
	}

	return &model.Transaction{
		Coin:     model.BTC,
		Network:  c.network,
		TxID:     txid,
		Version:  msgTx.Version,
		LockTime: msgTx.LockTime,
		Inputs:   inputs,
		Outputs:  outputs,
	}, nil
}

func isCoinbaseInput(txIn *wire.TxIn) bool {
	var zero [32]byte
	return txIn.PreviousOutPoint.Index == math.MaxUint32 &&
		bytes.Equal(txIn.PreviousOutPoint.Hash[:], zero[:])
}
