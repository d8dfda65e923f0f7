package packet

import "github.com/gstoney/bedrockproto/protocol"

// IDAvailableCommands is AvailableCommands's stable network ID.
const IDAvailableCommands uint32 = 76

// Basic command-parameter type codes, in their canonical (newest-protocol)
// numbering. See basicTypeWireCode for the version-keyed remapping §4.4.3
// applies when encoding for an older protocol.
const (
	ArgTypeInt uint32 = iota
	ArgTypeFloat
	ArgTypeValue
	ArgTypeWildcardInt
	ArgTypeOperator
	ArgTypeCompareOperator
	ArgTypeTarget
	ArgTypeWildcardTarget
	ArgTypeFilepath
	ArgTypeFullIntegerRange
	ArgTypeEquipmentSlot
	ArgTypeString
	ArgTypeIntPosition
	ArgTypePosition
	ArgTypeMessage
	ArgTypeRawText
	ArgTypeJSON
	ArgTypeBlockStates
	ArgTypeCommand
)

// paramTypeValid/Enum/Postfix are the three mutually exclusive bits §4.4.2
// defines on the wire paramType bitfield. Exactly one is ever set.
const (
	paramTypeValid   uint32 = 0x00100000
	paramTypeEnum    uint32 = 0x00200000
	paramTypePostfix uint32 = 0x01000000
	paramIndexMask   uint32 = 0xFFFF
)

// basicTypeWireRemap is the fixed translation table §4.4.3 describes: a
// canonical (newest) basic-type code maps to the on-wire code an older
// protocol expects. Types absent from this table are identical across
// versions and pass through unchanged. Decoding never reverses this table —
// a decoded packet on an older protocol keeps the older numeric code as-is,
// per §4.3's one-way ID-remapping rule.
var basicTypeWireRemap = map[uint32]uint32{
	ArgTypeInt:             1,
	ArgTypeFloat:           2,
	ArgTypeValue:           3,
	ArgTypeWildcardInt:     4,
	ArgTypeOperator:        5,
	ArgTypeCompareOperator: 6,
	ArgTypeTarget:          7,
	ArgTypeWildcardTarget:  8,
	ArgTypeFilepath:        9,
	ArgTypeFullIntegerRange: 10,
	ArgTypeEquipmentSlot:   11,
	ArgTypeString:          12,
	ArgTypeIntPosition:     13,
	ArgTypePosition:        14,
	ArgTypeMessage:         15,
	ArgTypeRawText:         16,
	ArgTypeJSON:            17,
	ArgTypeBlockStates:     18,
	ArgTypeCommand:         19,
}

// basicTypeWireCode returns the on-wire basic type code for canonical under
// proto, applying §4.4.3's remapping only below Proto1_19_80 (the
// generation that introduced the canonical numbering used in memory).
func basicTypeWireCode(canonical uint32, proto uint32) uint32 {
	if proto >= protocol.Proto1_19_80 {
		return canonical
	}
	if wire, ok := basicTypeWireRemap[canonical]; ok {
		return wire
	}
	return canonical
}

// CommandEnum is (name, ordered list of string values). SoftEnum shares the
// same shape but is kept in a separate list (§3.3): it may be mutated at
// runtime without retransmitting the catalog, and is never interned against
// the shared value pool.
type CommandEnum struct {
	Name   string
	Values []string
}

// CommandParameter is one entry of a CommandOverload. ParamType carries the
// raw wire bitfield on decode; EnumRef/PostfixRef are populated from it so
// callers never have to mask the bitfield themselves (§9.2's tagged-union
// preference, realized as plain fields rather than a Go sum type so the
// struct stays a flat POD value like every other packet field).
type CommandParameter struct {
	Name       string
	ParamType  uint32
	Optional   bool
	Flags      uint8
	EnumRef    *CommandEnum
	PostfixRef *string
}

// CommandOverload is one alternative parameter list for a command.
type CommandOverload struct {
	Parameters []CommandParameter
}

// CommandData is one command's full definition.
type CommandData struct {
	Name        string
	Description string
	Flags       uint16
	Permission  uint8
	Aliases     *CommandEnum
	Overloads   []CommandOverload
}

// CommandEnumConstraint restricts which of an enum's values are valid in
// which contexts; ConstraintIDs are opaque per-value flag bytes understood
// by the client UI.
type CommandEnumConstraint struct {
	Enum               *CommandEnum
	AffectedValueIndex uint32
	ConstraintIDs      []uint8
}

// hardcodedEnumNames is the fixed allow-list §4.4.6 describes: non-soft
// enums whose name appears here are additionally bucketed into
// AvailableCommands.HardcodedEnums on decode, because they are populated by
// the server at runtime rather than baked into a command's static grammar.
var hardcodedEnumNames = map[string]bool{
	"CommandName": true,
}

// AvailableCommands is the command catalog codec: the hardest individual
// codec in the substrate (§4.4). On the wire it is three interned pools —
// enum values, postfixes, and enums — followed by the command list that
// indexes into them, an independent soft-enum list, and (on protocols >=
// 1.13.0) an enum-constraint list.
type AvailableCommands struct {
	Commands        []CommandData
	SoftEnums       []CommandEnum
	Constraints     []CommandEnumConstraint
	HardcodedEnums  []CommandEnum
}

func (pk *AvailableCommands) ID() uint32           { return IDAvailableCommands }
func (pk *AvailableCommands) Direction() Direction { return ClientBound }
func (pk *AvailableCommands) Handle(h Handler) bool {
	return h.HandleAvailableCommands(pk)
}

// enumIndexWidth returns the byte width §4.4.1 mandates for indices into a
// pool of poolSize distinct values: 1 byte below 256, 2 little-endian bytes
// below 65536, else 4 little-endian bytes. Both encode and decode compute
// this from the final pool count, never the running count.
func enumIndexWidth(poolSize int) int {
	switch {
	case poolSize < 256:
		return 1
	case poolSize < 65536:
		return 2
	default:
		return 4
	}
}

func readEnumIndex(r *protocol.Reader, width int) (uint32, error) {
	switch width {
	case 1:
		b, err := r.ReadByte()
		return uint32(b), err
	case 2:
		var v uint16
		err := r.ReadLUint16(&v)
		return uint32(v), err
	default:
		var v int32
		if err := r.ReadLInt32(&v); err != nil {
			return 0, err
		}
		return uint32(v), nil
	}
}

func writeEnumIndex(w *protocol.Writer, width int, v uint32) error {
	switch width {
	case 1:
		return w.WriteByte(byte(v))
	case 2:
		return w.WriteLUint16(uint16(v))
	default:
		return w.WriteLInt32(int32(v))
	}
}

// DecodePayload implements the four-table read §4.4 specifies, then
// resolves each parameter's ParamType/EnumRef/PostfixRef and each
// command's Aliases/overload-enum backreferences from the interned pools.
func (pk *AvailableCommands) DecodePayload(r *protocol.Reader) error {
	var valueCount uint32
	if err := r.ReadVarUint32(&valueCount); err != nil {
		return err
	}
	values := make([]string, valueCount)
	for i := range values {
		if err := r.ReadString(&values[i]); err != nil {
			return err
		}
	}

	var postfixCount uint32
	if err := r.ReadVarUint32(&postfixCount); err != nil {
		return err
	}
	postfixes := make([]string, postfixCount)
	for i := range postfixes {
		if err := r.ReadString(&postfixes[i]); err != nil {
			return err
		}
	}

	width := enumIndexWidth(len(values))

	var enumCount uint32
	if err := r.ReadVarUint32(&enumCount); err != nil {
		return err
	}
	enums := make([]CommandEnum, enumCount)
	for i := range enums {
		if err := r.ReadString(&enums[i].Name); err != nil {
			return err
		}
		var n uint32
		if err := r.ReadVarUint32(&n); err != nil {
			return err
		}
		enums[i].Values = make([]string, n)
		for j := range enums[i].Values {
			idx, err := readEnumIndex(r, width)
			if err != nil {
				return err
			}
			if idx >= valueCount {
				return &DecodeError{Packet: "AvailableCommands", Reason: "invalid enum value index"}
			}
			enums[i].Values[j] = values[idx]
		}
		if hardcodedEnumNames[enums[i].Name] {
			pk.HardcodedEnums = append(pk.HardcodedEnums, enums[i])
		}
	}

	var cmdCount uint32
	if err := r.ReadVarUint32(&cmdCount); err != nil {
		return err
	}
	pk.Commands = make([]CommandData, cmdCount)
	for i := range pk.Commands {
		cmd := &pk.Commands[i]
		if err := r.ReadString(&cmd.Name); err != nil {
			return err
		}
		if err := r.ReadString(&cmd.Description); err != nil {
			return err
		}
		if r.ProtocolID() >= protocol.Proto1_17_10 {
			var flags uint16
			if err := r.ReadLUint16(&flags); err != nil {
				return err
			}
			cmd.Flags = flags
		} else {
			b, err := r.ReadByte()
			if err != nil {
				return err
			}
			cmd.Flags = uint16(b)
		}
		permByte, err := r.ReadByte()
		if err != nil {
			return err
		}
		cmd.Permission = permByte

		var aliasIdx int32
		if err := r.ReadLInt32(&aliasIdx); err != nil {
			return err
		}
		if aliasIdx >= 0 {
			if int(aliasIdx) >= len(enums) {
				return &DecodeError{Packet: "AvailableCommands", Reason: "invalid alias enum index"}
			}
			cmd.Aliases = &enums[aliasIdx]
		}

		var overloadCount uint32
		if err := r.ReadVarUint32(&overloadCount); err != nil {
			return err
		}
		cmd.Overloads = make([]CommandOverload, overloadCount)
		for j := range cmd.Overloads {
			var paramCount uint32
			if err := r.ReadVarUint32(&paramCount); err != nil {
				return err
			}
			params := make([]CommandParameter, paramCount)
			for k := range params {
				p := &params[k]
				if err := r.ReadString(&p.Name); err != nil {
					return err
				}
				var rawSigned int32
				if err := r.ReadLInt32(&rawSigned); err != nil {
					return err
				}
				raw := uint32(rawSigned)
				p.ParamType = raw
				if err := r.ReadBool(&p.Optional); err != nil {
					return err
				}
				fb, err := r.ReadByte()
				if err != nil {
					return err
				}
				p.Flags = fb

				switch {
				case raw&paramTypeEnum != 0:
					idx := raw & paramIndexMask
					if int(idx) >= len(enums) {
						return &DecodeError{Packet: "AvailableCommands", Reason: "invalid parameter enum index"}
					}
					p.EnumRef = &enums[idx]
				case raw&paramTypePostfix != 0:
					idx := raw & paramIndexMask
					if int(idx) >= len(postfixes) {
						return &DecodeError{Packet: "AvailableCommands", Reason: "invalid postfix index"}
					}
					p.PostfixRef = &postfixes[idx]
				case raw&paramTypeValid != 0:
					// basic type, opaque numeric code; nothing further to resolve.
				default:
					return &DecodeError{Packet: "AvailableCommands", Reason: "parameter type missing ENUM/POSTFIX/VALID"}
				}
			}
			cmd.Overloads[j].Parameters = params
		}
	}

	var softCount uint32
	if err := r.ReadVarUint32(&softCount); err != nil {
		return err
	}
	pk.SoftEnums = make([]CommandEnum, softCount)
	for i := range pk.SoftEnums {
		if err := r.ReadString(&pk.SoftEnums[i].Name); err != nil {
			return err
		}
		var n uint32
		if err := r.ReadVarUint32(&n); err != nil {
			return err
		}
		pk.SoftEnums[i].Values = make([]string, n)
		for j := range pk.SoftEnums[i].Values {
			if err := r.ReadString(&pk.SoftEnums[i].Values[j]); err != nil {
				return err
			}
		}
	}

	if r.ProtocolID() >= protocol.Proto1_13_0 {
		var constraintCount uint32
		if err := r.ReadVarUint32(&constraintCount); err != nil {
			return err
		}
		pk.Constraints = make([]CommandEnumConstraint, constraintCount)
		for i := range pk.Constraints {
			var valueIdxSigned, enumIdxSigned int32
			if err := r.ReadLInt32(&valueIdxSigned); err != nil {
				return err
			}
			if err := r.ReadLInt32(&enumIdxSigned); err != nil {
				return err
			}
			valueIdx, enumIdx := uint32(valueIdxSigned), uint32(enumIdxSigned)
			if int(enumIdx) >= len(enums) {
				return &DecodeError{Packet: "AvailableCommands", Reason: "invalid constraint enum index"}
			}
			target := &enums[enumIdx]
			if int(valueIdx) >= len(target.Values) {
				return &DecodeError{Packet: "AvailableCommands", Reason: "constraint value index out of range for its enum"}
			}
			var cidCount uint32
			if err := r.ReadVarUint32(&cidCount); err != nil {
				return err
			}
			cids := make([]uint8, cidCount)
			for j := range cids {
				b, err := r.ReadByte()
				if err != nil {
					return err
				}
				cids[j] = b
			}
			pk.Constraints[i] = CommandEnumConstraint{
				Enum:               target,
				AffectedValueIndex: valueIdx,
				ConstraintIDs:      cids,
			}
		}
	}
	return nil
}

// EncodePayload builds the four intern pools deterministically from
// pk in first-occurrence order (Invariant V6: hardcoded enums, then
// command-alias enums, then parameter enums, walked commands/overloads/
// parameters in order) and then emits the tables and command list.
func (pk *AvailableCommands) EncodePayload(w *protocol.Writer) error {
	b := newCommandInterner()

	for _, e := range pk.HardcodedEnums {
		b.internEnum(&e)
	}
	for i := range pk.Commands {
		if pk.Commands[i].Aliases != nil {
			b.internEnum(pk.Commands[i].Aliases)
		}
	}
	for i := range pk.Commands {
		for j := range pk.Commands[i].Overloads {
			for k := range pk.Commands[i].Overloads[j].Parameters {
				p := &pk.Commands[i].Overloads[j].Parameters[k]
				if p.EnumRef != nil {
					b.internEnum(p.EnumRef)
				}
				if p.PostfixRef != nil {
					b.internPostfix(*p.PostfixRef)
				}
			}
		}
	}

	width := enumIndexWidth(len(b.values))

	if err := w.WriteVarUint32(uint32(len(b.values))); err != nil {
		return err
	}
	for _, v := range b.values {
		if err := w.WriteString(v); err != nil {
			return err
		}
	}

	if err := w.WriteVarUint32(uint32(len(b.postfixes))); err != nil {
		return err
	}
	for _, p := range b.postfixes {
		if err := w.WriteString(p); err != nil {
			return err
		}
	}

	if err := w.WriteVarUint32(uint32(len(b.enums))); err != nil {
		return err
	}
	for _, e := range b.enums {
		if err := w.WriteString(e.Name); err != nil {
			return err
		}
		if err := w.WriteVarUint32(uint32(len(e.Values))); err != nil {
			return err
		}
		for _, v := range e.Values {
			idx, ok := b.valueIndex[v]
			if !ok {
				return &EncodeError{Packet: "AvailableCommands", Reason: "enum value not found in intern table"}
			}
			if err := writeEnumIndex(w, width, idx); err != nil {
				return err
			}
		}
	}

	if err := w.WriteVarUint32(uint32(len(pk.Commands))); err != nil {
		return err
	}
	for i := range pk.Commands {
		cmd := &pk.Commands[i]
		if err := w.WriteString(cmd.Name); err != nil {
			return err
		}
		if err := w.WriteString(cmd.Description); err != nil {
			return err
		}
		if w.ProtocolID() >= protocol.Proto1_17_10 {
			if err := w.WriteLUint16(cmd.Flags); err != nil {
				return err
			}
		} else {
			if err := w.WriteByte(byte(cmd.Flags)); err != nil {
				return err
			}
		}
		if err := w.WriteByte(cmd.Permission); err != nil {
			return err
		}

		aliasIdx := int32(-1)
		if cmd.Aliases != nil {
			idx, ok := b.enumIndex[cmd.Aliases.Name]
			if !ok {
				return &EncodeError{Packet: "AvailableCommands", Reason: "alias enum not found in intern table"}
			}
			aliasIdx = int32(idx)
		}
		if err := w.WriteLInt32(aliasIdx); err != nil {
			return err
		}

		if err := w.WriteVarUint32(uint32(len(cmd.Overloads))); err != nil {
			return err
		}
		for _, ov := range cmd.Overloads {
			if err := w.WriteVarUint32(uint32(len(ov.Parameters))); err != nil {
				return err
			}
			for _, p := range ov.Parameters {
				if err := w.WriteString(p.Name); err != nil {
					return err
				}
				raw, err := b.paramTypeWire(p, w.ProtocolID())
				if err != nil {
					return err
				}
				if err := w.WriteLInt32(int32(raw)); err != nil {
					return err
				}
				if err := w.WriteBool(p.Optional); err != nil {
					return err
				}
				if err := w.WriteByte(p.Flags); err != nil {
					return err
				}
			}
		}
	}

	if err := w.WriteVarUint32(uint32(len(pk.SoftEnums))); err != nil {
		return err
	}
	for _, se := range pk.SoftEnums {
		if err := w.WriteString(se.Name); err != nil {
			return err
		}
		if err := w.WriteVarUint32(uint32(len(se.Values))); err != nil {
			return err
		}
		for _, v := range se.Values {
			if err := w.WriteString(v); err != nil {
				return err
			}
		}
	}

	if w.ProtocolID() >= protocol.Proto1_13_0 {
		if err := w.WriteVarUint32(uint32(len(pk.Constraints))); err != nil {
			return err
		}
		for _, c := range pk.Constraints {
			enumIdx, ok := b.enumIndex[c.Enum.Name]
			if !ok {
				return &EncodeError{Packet: "AvailableCommands", Reason: "constraint enum not found in intern table"}
			}
			if err := w.WriteLInt32(int32(c.AffectedValueIndex)); err != nil {
				return err
			}
			if err := w.WriteLInt32(int32(enumIdx)); err != nil {
				return err
			}
			if err := w.WriteVarUint32(uint32(len(c.ConstraintIDs))); err != nil {
				return err
			}
			for _, cid := range c.ConstraintIDs {
				if err := w.WriteByte(cid); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// commandInterner builds the insertion-ordered, de-duplicated pools §9.3
// calls for: a vector plus a side hash-index, never a bare hash set, so
// iteration order is deterministic (P6, Invariant V6).
type commandInterner struct {
	values     []string
	valueIndex map[string]uint32
	postfixes  []string
	postfixIdx map[string]uint32
	enums      []CommandEnum
	enumIndex  map[string]uint32
}

func newCommandInterner() *commandInterner {
	return &commandInterner{
		valueIndex: make(map[string]uint32),
		postfixIdx: make(map[string]uint32),
		enumIndex:  make(map[string]uint32),
	}
}

func (b *commandInterner) internValue(v string) uint32 {
	if idx, ok := b.valueIndex[v]; ok {
		return idx
	}
	idx := uint32(len(b.values))
	b.values = append(b.values, v)
	b.valueIndex[v] = idx
	return idx
}

func (b *commandInterner) internPostfix(v string) uint32 {
	if idx, ok := b.postfixIdx[v]; ok {
		return idx
	}
	idx := uint32(len(b.postfixes))
	b.postfixes = append(b.postfixes, v)
	b.postfixIdx[v] = idx
	return idx
}

func (b *commandInterner) internEnum(e *CommandEnum) uint32 {
	if idx, ok := b.enumIndex[e.Name]; ok {
		return idx
	}
	idx := uint32(len(b.enums))
	b.enums = append(b.enums, *e)
	b.enumIndex[e.Name] = idx
	for _, v := range e.Values {
		b.internValue(v)
	}
	return idx
}

// paramTypeWire derives the wire paramType bitfield for p under proto,
// eliminating Invariant V5 as a runtime check (§9.2): p already carries
// exactly one of EnumRef/PostfixRef/a basic code, so the encoder has
// nothing to validate, only to render.
func (b *commandInterner) paramTypeWire(p CommandParameter, proto uint32) (uint32, error) {
	switch {
	case p.EnumRef != nil:
		idx, ok := b.enumIndex[p.EnumRef.Name]
		if !ok {
			return 0, &EncodeError{Packet: "AvailableCommands", Reason: "parameter enum not found in intern table"}
		}
		return paramTypeEnum | (idx & paramIndexMask), nil
	case p.PostfixRef != nil:
		idx, ok := b.postfixIdx[*p.PostfixRef]
		if !ok {
			return 0, &EncodeError{Packet: "AvailableCommands", Reason: "parameter postfix not found in intern table"}
		}
		return paramTypePostfix | (idx & paramIndexMask), nil
	default:
		basic := p.ParamType &^ (paramTypeValid | paramTypeEnum | paramTypePostfix)
		return paramTypeValid | basicTypeWireCode(basic, proto), nil
	}
}
