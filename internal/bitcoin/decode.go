package bitcoin

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/spamguard7000-backend/internal/filter/model"
	"github.com/goodnatureofminers/spamguard7000-backend/pkg/safe"
)

// witnessScaleFactor relates base size to weight units.
const witnessScaleFactor = 3

// Decoder adapts the package-level decode functions for injection.
type Decoder struct{}

// FromHex implements the decoder contract of the transport layer.
func (Decoder) FromHex(rawHex string) (model.Transaction, error) {
	return FromHex(rawHex)
}

// FromHex deserializes a raw transaction from its wire hex encoding and maps
// it onto the filter model, classifying output scripts along the way.
func FromHex(rawHex string) (model.Transaction, error) {
	raw, err := hex.DecodeString(rawHex)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("decode tx hex: %w", err)
	}
	return FromWire(raw)
}

// FromWire deserializes raw transaction bytes and maps them onto the filter model.
func FromWire(raw []byte) (model.Transaction, error) {
	var msg wire.MsgTx
	if err := msg.Deserialize(bytes.NewReader(raw)); err != nil {
		return model.Transaction{}, fmt.Errorf("deserialize tx: %w", err)
	}

	inputs := make([]model.Input, 0, len(msg.TxIn))
	for _, in := range msg.TxIn {
		var witness [][]byte
		if len(in.Witness) > 0 {
			witness = make([][]byte, 0, len(in.Witness))
			for _, item := range in.Witness {
				witness = append(witness, item)
			}
		}
		inputs = append(inputs, model.Input{
			PrevTxID: in.PreviousOutPoint.Hash.String(),
			PrevVout: in.PreviousOutPoint.Index,
			Sequence: in.Sequence,
			Witness:  witness,
		})
	}

	outputs := make([]model.Output, 0, len(msg.TxOut))
	for idx, out := range msg.TxOut {
		value, err := safe.Uint64(out.Value)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("output %d value: %w", idx, err)
		}
		outputs = append(outputs, model.Output{
			Value:        value,
			ScriptPubKey: out.PkScript,
			ScriptType:   classifyScript(out.PkScript),
		})
	}

	size, err := safe.Uint32(msg.SerializeSize())
	if err != nil {
		return model.Transaction{}, fmt.Errorf("tx size: %w", err)
	}
	baseSize, err := safe.Uint32(msg.SerializeSizeStripped())
	if err != nil {
		return model.Transaction{}, fmt.Errorf("tx base size: %w", err)
	}

	return model.Transaction{
		TxID:     msg.TxHash().String(),
		Version:  msg.Version,
		LockTime: msg.LockTime,
		Size:     size,
		Weight:   baseSize*witnessScaleFactor + size,
		Inputs:   inputs,
		Outputs:  outputs,
	}, nil
}

// classifyScript maps txscript's classification to the decoderawtransaction
// type names used in the model.
func classifyScript(pkScript []byte) model.ScriptType {
	switch txscript.GetScriptClass(pkScript) {
	case txscript.NullDataTy:
		return model.ScriptTypeNullData
	case txscript.PubKeyHashTy:
		return model.ScriptTypePubKeyHash
	case txscript.ScriptHashTy:
		return model.ScriptTypeScriptHash
	case txscript.WitnessV0PubKeyHashTy:
		return model.ScriptTypeWitnessPubKeyHash
	case txscript.WitnessV0ScriptHashTy:
		return model.ScriptTypeWitnessScriptHash
	case txscript.WitnessV1TaprootTy:
		return model.ScriptTypeTaproot
	case txscript.MultiSigTy:
		return model.ScriptTypeMultisig
	default:
		return model.ScriptTypeNonStandard
	}
}
