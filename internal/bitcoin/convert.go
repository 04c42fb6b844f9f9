// Package bitcoin decodes raw and RPC-encoded transactions into the filter
// data model.
package bitcoin

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"

	"github.com/goodnatureofminers/spamguard7000-backend/internal/filter/model"
	"github.com/goodnatureofminers/spamguard7000-backend/pkg/safe"
)

// BtcToSatoshis converts a BTC amount to satoshis with overflow checks.
func BtcToSatoshis(value float64) (uint64, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	if amt < 0 {
		return 0, fmt.Errorf("negative amount: %d", amt)
	}
	return safe.Uint64(int64(amt))
}

// FromRawResult maps a verbose RPC transaction onto the filter model.
func FromRawResult(tx btcjson.TxRawResult) (model.Transaction, error) {
	inputs := make([]model.Input, 0, len(tx.Vin))
	for idx, vin := range tx.Vin {
		witness, err := decodeWitness(vin.Witness)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("tx %s input %d witness: %w", tx.Txid, idx, err)
		}
		inputs = append(inputs, model.Input{
			PrevTxID: vin.Txid,
			PrevVout: vin.Vout,
			Sequence: vin.Sequence,
			Witness:  witness,
		})
	}

	outputs := make([]model.Output, 0, len(tx.Vout))
	for idx, vout := range tx.Vout {
		if vout.Value < 0 {
			return model.Transaction{}, fmt.Errorf("tx %s output %d negative value: %f", tx.Txid, idx, vout.Value)
		}
		value, err := BtcToSatoshis(vout.Value)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("tx %s output %d value: %w", tx.Txid, idx, err)
		}
		scriptBytes, err := hex.DecodeString(vout.ScriptPubKey.Hex)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("tx %s output %d script hex: %w", tx.Txid, idx, err)
		}
		outputs = append(outputs, model.Output{
			Value:        value,
			ScriptPubKey: scriptBytes,
			ScriptType:   model.ScriptType(vout.ScriptPubKey.Type),
		})
	}

	return model.Transaction{
		TxID:     tx.Txid,
		Version:  int32(tx.Version),
		LockTime: tx.LockTime,
		Size:     uint32(tx.Size),
		Weight:   uint32(tx.Weight),
		Inputs:   inputs,
		Outputs:  outputs,
	}, nil
}

func decodeWitness(items []string) ([][]byte, error) {
	if len(items) == 0 {
		return nil, nil
	}
	witness := make([][]byte, 0, len(items))
	for i, item := range items {
		decoded, err := hex.DecodeString(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		witness = append(witness, decoded)
	}
	return witness, nil
}
