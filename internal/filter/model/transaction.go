// Package model defines the transaction and verdict types shared by the spam filter.
package model

// ScriptType classifies an output script. Values follow bitcoind's
// decoderawtransaction type names.
type ScriptType string

const (
	ScriptTypeUnknown           ScriptType = ""
	ScriptTypeNullData          ScriptType = "nulldata"
	ScriptTypePubKeyHash        ScriptType = "pubkeyhash"
	ScriptTypeScriptHash        ScriptType = "scripthash"
	ScriptTypeWitnessPubKeyHash ScriptType = "witness_v0_keyhash"
	ScriptTypeWitnessScriptHash ScriptType = "witness_v0_scripthash"
	ScriptTypeTaproot           ScriptType = "witness_v1_taproot"
	ScriptTypeMultisig          ScriptType = "multisig"
	ScriptTypeNonStandard       ScriptType = "nonstandard"
)

// Transaction is a decoded bitcoin transaction as delivered by an external
// decoder. The filter core only inspects inputs and outputs; the remaining
// fields are bookkeeping passed through to verdicts unchanged.
type Transaction struct {
	TxID     string   `json:"txid"`
	Version  int32    `json:"version"`
	LockTime uint32   `json:"locktime"`
	Size     uint32   `json:"size"`
	Weight   uint32   `json:"weight"`
	Inputs   []Input  `json:"inputs"`
	Outputs  []Output `json:"outputs"`
}

// Input references a previous output together with its segwit witness stack.
// Witness is nil for non-segwit inputs.
type Input struct {
	PrevTxID string   `json:"prev_txid"`
	PrevVout uint32   `json:"prev_vout"`
	Sequence uint32   `json:"sequence"`
	Witness  [][]byte `json:"witness,omitempty"`
}

// Output carries the satoshi value and raw script of a transaction output.
// ScriptType may be empty when the decoder did not classify the script.
type Output struct {
	Value        uint64     `json:"value"`
	ScriptPubKey []byte     `json:"script_pub_key"`
	ScriptType   ScriptType `json:"script_type,omitempty"`
}

// opReturn is the opcode marking an output as unspendable data carrier.
const opReturn = 0x6a

// IsOpReturn reports whether the output embeds data via OP_RETURN, using the
// decoder's classification when present and sniffing the script otherwise.
func (o Output) IsOpReturn() bool {
	if o.ScriptType == ScriptTypeNullData {
		return true
	}
	return len(o.ScriptPubKey) > 0 && o.ScriptPubKey[0] == opReturn
}
