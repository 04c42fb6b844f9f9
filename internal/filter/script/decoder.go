// Package script implements offset-correct decoding of raw bitcoin scripts.
// All functions are total over arbitrary byte input: malformed or truncated
// scripts yield empty results, never errors or out-of-bounds reads.
package script

// Script opcodes the decoder cares about.
const (
	OpReturn        = 0x6a
	OpPushData1     = 0x4c
	OpPushData2     = 0x4d
	OpPushData4     = 0x4e
	OpData33        = 0x21
	Op1             = 0x51
	Op16            = 0x60
	OpCheckMultisig = 0xae

	// maxDirectPush is the largest opcode that pushes its own value of bytes.
	maxDirectPush = 0x4b

	compressedPubkeySize = 33
)

// ExtractPushedData interprets the byte at offset as a push opcode and
// returns the pushed data together with the offset of the next instruction.
// Opcodes 0x01..0x4b push that many bytes directly; OP_PUSHDATA1/2/4 read a
// 1/2/4 byte little-endian length first. Any other opcode, an offset outside
// the script, or a declared length running past the end of the script yields
// (nil, offset).
func ExtractPushedData(scriptBytes []byte, offset int) ([]byte, int) {
	if offset < 0 || offset >= len(scriptBytes) {
		return nil, offset
	}

	op := scriptBytes[offset]
	var length, dataStart int

	switch {
	case op >= 1 && op <= maxDirectPush:
		length = int(op)
		dataStart = offset + 1
	case op == OpPushData1:
		if offset+2 > len(scriptBytes) {
			return nil, offset
		}
		length = int(scriptBytes[offset+1])
		dataStart = offset + 2
	case op == OpPushData2:
		if offset+3 > len(scriptBytes) {
			return nil, offset
		}
		length = int(scriptBytes[offset+1]) | int(scriptBytes[offset+2])<<8
		dataStart = offset + 3
	case op == OpPushData4:
		if offset+5 > len(scriptBytes) {
			return nil, offset
		}
		length = int(scriptBytes[offset+1]) |
			int(scriptBytes[offset+2])<<8 |
			int(scriptBytes[offset+3])<<16 |
			int(scriptBytes[offset+4])<<24
		dataStart = offset + 5
	default:
		return nil, offset
	}

	if length < 0 || dataStart+length > len(scriptBytes) {
		return nil, offset
	}
	return scriptBytes[dataStart : dataStart+length : dataStart+length], dataStart + length
}

// ExtractOpReturnPayload returns the data pushed after a leading OP_RETURN,
// or nil when the script does not start with OP_RETURN. A bare OP_RETURN or
// a truncated push yields an empty payload.
func ExtractOpReturnPayload(scriptPubKey []byte) []byte {
	if len(scriptPubKey) == 0 || scriptPubKey[0] != OpReturn {
		return nil
	}
	data, _ := ExtractPushedData(scriptPubKey, 1)
	if data == nil {
		return []byte{}
	}
	return data
}

// ExtractMultisigPubkeys walks a CHECKMULTISIG-style witness script and
// collects the 33-byte compressed pubkey candidates pushed in it. The walk
// starts past the leading m-of-n opcode and stops at OP_CHECKMULTISIG or the
// end of the script; small-number opcodes and unknown bytes are skipped.
// Truncated scripts simply yield fewer candidates.
func ExtractMultisigPubkeys(witnessScript []byte) [][]byte {
	var pubkeys [][]byte

	for i := 1; i < len(witnessScript); {
		op := witnessScript[i]
		switch {
		case op == OpCheckMultisig:
			return pubkeys
		case op == OpData33:
			if i+1+compressedPubkeySize > len(witnessScript) {
				return pubkeys
			}
			pubkeys = append(pubkeys, witnessScript[i+1:i+1+compressedPubkeySize])
			i += 1 + compressedPubkeySize
		case op >= Op1 && op <= Op16:
			i++
		default:
			i++
		}
	}
	return pubkeys
}
