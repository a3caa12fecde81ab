package model

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// OutPoint identifies a single output of a single transaction. The struct is
// comparable so it can key maps directly.
type OutPoint struct {
	TxID  chainhash.Hash
	Index uint32
}

// NewOutPoint builds an OutPoint from its parts.
func NewOutPoint(txid chainhash.Hash, index uint32) OutPoint {
	return OutPoint{TxID: txid, Index: index}
}

func (o OutPoint) String() string {
	return fmt.Sprintf("%s:%d", o.TxID, o.Index)
}
