// Package luafilter adapts user-provided Lua scripts to the engine's custom
// filter contract. A script defines a global function
//
//	function filter(tx)
//	  return { accept = true, score = 0, message = "" }
//	end
//
// receiving a read-only transaction table. The engine only ever sees the
// CustomFilter interface; the interpreter stays isolated in this package.
package luafilter

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/goodnatureofminers/spamguard7000-backend/internal/filter/model"
)

const filterFunction = "filter"

// Filter runs one Lua scoring script. Each evaluation executes in a fresh
// interpreter state, so a single Filter is safe for concurrent use.
type Filter struct {
	name   string
	source string
}

// New compiles the script source and verifies it defines the filter function.
func New(name, source string) (*Filter, error) {
	if name == "" {
		return nil, errors.New("lua filter name is required")
	}

	state := lua.NewState()
	defer state.Close()

	if err := state.DoString(source); err != nil {
		return nil, fmt.Errorf("load lua filter %s: %w", name, err)
	}
	if state.GetGlobal(filterFunction).Type() != lua.LTFunction {
		return nil, fmt.Errorf("lua filter %s does not define function %q", name, filterFunction)
	}

	return &Filter{name: name, source: source}, nil
}

// NewFromFile loads a filter script from disk, naming it after the file.
func NewFromFile(path string) (*Filter, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lua filter: %w", err)
	}
	return New(filepath.Base(path), string(src))
}

// Name returns the script name.
func (f *Filter) Name() string {
	return f.name
}

// Evaluate runs the script's filter function over the transaction and maps
// the returned table onto the callback contract.
func (f *Filter) Evaluate(tx model.Transaction) (model.CallbackResult, error) {
	state := lua.NewState()
	defer state.Close()

	if err := state.DoString(f.source); err != nil {
		return model.CallbackResult{}, fmt.Errorf("load lua filter %s: %w", f.name, err)
	}

	fn := state.GetGlobal(filterFunction)
	if fn.Type() != lua.LTFunction {
		return model.CallbackResult{}, fmt.Errorf("lua filter %s does not define function %q", f.name, filterFunction)
	}

	if err := state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, transactionTable(state, tx)); err != nil {
		return model.CallbackResult{}, fmt.Errorf("run lua filter %s: %w", f.name, err)
	}

	ret := state.Get(-1)
	state.Pop(1)
	table, ok := ret.(*lua.LTable)
	if !ok {
		return model.CallbackResult{}, fmt.Errorf("lua filter %s returned %s, want table", f.name, ret.Type())
	}

	var res struct {
		Accept  bool
		Score   int
		Message string
	}
	if err := gluamapper.Map(table, &res); err != nil {
		return model.CallbackResult{}, fmt.Errorf("map lua filter %s result: %w", f.name, err)
	}

	return model.CallbackResult{
		Accept:  res.Accept,
		Score:   res.Score,
		Message: res.Message,
	}, nil
}

// transactionTable mirrors the decoded transaction into Lua values. Scripts
// see witness items and output scripts hex-encoded.
func transactionTable(state *lua.LState, tx model.Transaction) *lua.LTable {
	root := state.NewTable()
	state.SetField(root, "txid", lua.LString(tx.TxID))
	state.SetField(root, "version", lua.LNumber(tx.Version))
	state.SetField(root, "weight", lua.LNumber(tx.Weight))

	inputs := state.NewTable()
	for _, in := range tx.Inputs {
		item := state.NewTable()
		state.SetField(item, "prev_txid", lua.LString(in.PrevTxID))
		state.SetField(item, "prev_vout", lua.LNumber(in.PrevVout))

		witness := state.NewTable()
		for _, w := range in.Witness {
			witness.Append(lua.LString(hex.EncodeToString(w)))
		}
		state.SetField(item, "witness", witness)
		inputs.Append(item)
	}
	state.SetField(root, "inputs", inputs)

	outputs := state.NewTable()
	for _, out := range tx.Outputs {
		item := state.NewTable()
		state.SetField(item, "value", lua.LNumber(out.Value))
		state.SetField(item, "script_hex", lua.LString(hex.EncodeToString(out.ScriptPubKey)))
		state.SetField(item, "script_type", lua.LString(out.ScriptType))
		outputs.Append(item)
	}
	state.SetField(root, "outputs", outputs)

	return root
}
