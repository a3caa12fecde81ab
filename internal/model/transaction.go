// Package model defines the domain types shared by every blockchain data source.
package model

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Transaction is a fully decoded Bitcoin transaction. Instances are treated as
// values: components that retain one (such as the caching layer) keep their own
// clone rather than sharing state with callers.
type Transaction struct {
	Coin     Coin
	Network  Network
	TxID     chainhash.Hash
	Version  int32
	LockTime uint32
	Inputs   []TransactionInput
	Outputs  []TransactionOutput
}

// TransactionInput references the output it consumes plus its unlock data.
type TransactionInput struct {
	PreviousOutPoint OutPoint
	ScriptSigHex     string
	Witness          []string
	Sequence         uint32
	IsCoinbase       bool
}

// TransactionOutput is a spendable value produced by a transaction.
type TransactionOutput struct {
	Index      uint32
	Value      uint64
	ScriptType string
	ScriptHex  string
	Addresses  []string
}

// Clone returns a deep copy of the transaction.
func (t *Transaction) Clone() *Transaction {
	if t == nil {
		return nil
	}
	out := *t
	out.Inputs = make([]TransactionInput, len(t.Inputs))
	for i, in := range t.Inputs {
		out.Inputs[i] = in
		out.Inputs[i].Witness = append([]string(nil), in.Witness...)
	}
	out.Outputs = make([]TransactionOutput, len(t.Outputs))
	for i, o := range t.Outputs {
		out.Outputs[i] = o
		out.Outputs[i].Addresses = append([]string(nil), o.Addresses...)
	}
	return &out
}

// TotalOutputValue sums all output values in satoshis.
func (t *Transaction) TotalOutputValue() uint64 {
	var total uint64
	for _, o := range t.Outputs {
		total += o.Value
	}
	return total
}
