package bitcoin

import (
	"bytes"
	"encoding/hex"
	"math"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/pathfinder-backend/internal/model"
)

func p2pkhScript(t *testing.T) ([]byte, string) {
	t.Helper()

	hash160 := bytes.Repeat([]byte{0x11}, 20)
	addr, err := btcutil.NewAddressPubKeyHash(hash160, &chaincfg.MainNetParams)
	if err != nil {
		t.Fatalf("NewAddressPubKeyHash: %v", err)
	}
	script, err := txscript.PayToAddrScript(addr)
	if err != nil {
		t.Fatalf("PayToAddrScript: %v", err)
	}
	return script, addr.EncodeAddress()
}

func serializeHex(t *testing.T, msgTx *wire.MsgTx) string {
	t.Helper()

	var buf bytes.Buffer
	if err := msgTx.Serialize(&buf); err != nil {
		t.Fatalf("serialize tx: %v", err)
	}
	return hex.EncodeToString(buf.Bytes())
}

func TestConverter_FromHex_Coinbase(t *testing.T) {
	t.Parallel()

	script, address := p2pkhScript(t)

	msgTx := wire.NewMsgTx(2)
	msgTx.AddTxIn(wire.NewTxIn(
		wire.NewOutPoint(&chainhash.Hash{}, math.MaxUint32),
		[]byte{0x51},
		nil,
	))
	msgTx.AddTxOut(wire.NewTxOut(5000000000, script))
	msgTx.LockTime = 101

	converter, err := NewConverter(model.Mainnet)
	if err != nil {
		t.Fatalf("NewConverter: %v", err)
	}

	tx, err := converter.FromHex(serializeHex(t, msgTx))
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}

	if tx.TxID != msgTx.TxHash() {
		t.Fatalf("txid mismatch: got %s, want %s", tx.TxID, msgTx.TxHash())
	}
	if tx.Coin != model.BTC || tx.Network != model.Mainnet {
		t.Fatalf("unexpected coin/network: %s/%s", tx.Coin, tx.Network)
	}
	if tx.Version != 2 || tx.LockTime != 101 {
		t.Fatalf("unexpected version/locktime: %d/%d", tx.Version, tx.LockTime)
	}

	if len(tx.Inputs) != 1 {
		t.Fatalf("expected one input, got %d", len(tx.Inputs))
	}
	if !tx.Inputs[0].IsCoinbase {
		t.Fatal("expected coinbase input to be flagged")
	}

	if len(tx.Outputs) != 1 {
		t.Fatalf("expected one output, got %d", len(tx.Outputs))
	}
	out := tx.Outputs[0]
	if out.Index != 0 || out.Value != 5000000000 {
		t.Fatalf("unexpected output index/value: %d/%d", out.Index, out.Value)
	}
	if out.ScriptType != txscript.PubKeyHashTy.String() {
		t.Fatalf("unexpected script type: %s", out.ScriptType)
	}
	if len(out.Addresses) != 1 || out.Addresses[0] != address {
		t.Fatalf("unexpected addresses: %v", out.Addresses)
	}
	if out.ScriptHex != hex.EncodeToString(script) {
		t.Fatalf("unexpected script hex: %s", out.ScriptHex)
	}
}

func TestConverter_FromMsgTx_WitnessInput(t *testing.T) {
	t.Parallel()

	script, _ := p2pkhScript(t)
	prevHash := chainhash.Hash{0xaa}

	msgTx := wire.NewMsgTx(2)
	txIn := wire.NewTxIn(wire.NewOutPoint(&prevHash, 1), nil, wire.TxWitness{
		{0x30, 0x44},
		{0x02, 0x21},
	})
	txIn.Sequence = 0xfffffffd
	msgTx.AddTxIn(txIn)
	msgTx.AddTxOut(wire.NewTxOut(1200, script))

	converter, err := NewConverter(model.Mainnet)
	if err != nil {
		t.Fatalf("NewConverter: %v", err)
	}

	tx, err := converter.FromMsgTx(msgTx)
	if err != nil {
		t.Fatalf("FromMsgTx: %v", err)
	}

	in := tx.Inputs[0]
	if in.IsCoinbase {
		t.Fatal("regular input flagged as coinbase")
	}
	if in.PreviousOutPoint.TxID != prevHash || in.PreviousOutPoint.Index != 1 {
		t.Fatalf("unexpected previous outpoint: %+v", in.PreviousOutPoint)
	}
	if in.Sequence != 0xfffffffd {
		t.Fatalf("unexpected sequence: %d", in.Sequence)
	}
	if len(in.Witness) != 2 || in.Witness[0] != "3044" || in.Witness[1] != "0221" {
		t.Fatalf("unexpected witness: %v", in.Witness)
	}
}

func TestConverter_FromHex_Invalid(t *testing.T) {
	t.Parallel()

	converter, err := NewConverter(model.Mainnet)
	if err != nil {
		t.Fatalf("NewConverter: %v", err)
	}

	tests := []struct {
		name   string
		rawHex string
	}{
		{"not hex", "zz00"},
		{"truncated tx", "0200"},
		{"empty", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := converter.FromHex(tt.rawHex); err == nil {
				t.Fatal("expected decode error")
			}
		})
	}
}

func TestNewConverter_UnsupportedNetwork(t *testing.T) {
	t.Parallel()

	if _, err := NewConverter("litecoin"); err == nil {
		t.Fatal("expected error for unsupported network")
	}
}
