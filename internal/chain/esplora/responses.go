package esplora

// outspendResponse is the payload of /tx/{txid}/outspend/{vout}. The spending
// txid is only present when spent is true.
type outspendResponse struct {
	Spent bool   `json:"spent"`
	TxID  string `json:"txid"`
	Vin   uint32 `json:"vin"`
}

// addressTxEntry is the slice element of /address/{addr}/txs. Only the txid is
// consumed; the full transaction is fetched through the hex endpoint so every
// backend shares one decode path.
type addressTxEntry struct {
	TxID string `json:"txid"`
}
