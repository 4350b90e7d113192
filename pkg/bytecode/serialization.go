/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import (
	"fmt"
	"hash/crc32"
	"io"

	"github.com/vireo-lang/vireo/pkg/vutil"
)

const (
	// moduleVersion is the current version of the compiled module file
	// format.
	moduleVersion uint32 = 0
)

// moduleMagic is the "magic number" identifying a compiled Vireo module
// file. It is comprised of the "VireoMd" string followed by a SUB character
// (which in times long gone used to represent a "soft end-of-file").
var moduleMagic = []byte{0x56, 0x69, 0x72, 0x65, 0x6F, 0x4D, 0x64, 0x1A}

// These are the on-disk tags that identify the type of a serialized literal
// or value.
const (
	serializedUnit   byte = 0
	serializedFalse  byte = 1
	serializedTrue   byte = 2
	serializedInt    byte = 3
	serializedString byte = 4
	serializedStruct byte = 5
)

// Serialize serializes the CompiledModule to the given io.Writer. Only the
// stock literal and value shapes are serializable; a module whose literal
// pool or global table contains embedder-defined types cannot be written to
// disk.
func (m *CompiledModule) Serialize(w io.Writer) error {
	_, err := w.Write(moduleMagic)
	if err != nil {
		return err
	}
	err = vutil.SerializeU32(w, moduleVersion)
	if err != nil {
		return err
	}

	crc := crc32.NewIEEE()
	mw := io.MultiWriter(w, crc)
	err = m.serializePayload(mw)
	if err != nil {
		return err
	}

	return vutil.SerializeU32(w, crc.Sum32())
}

func (m *CompiledModule) serializePayload(w io.Writer) error {
	// Code
	err := vutil.SerializeBytes(w, m.Code)
	if err != nil {
		return err
	}

	// Literal pool
	err = vutil.SerializeU32(w, uint32(len(m.Literals)))
	if err != nil {
		return err
	}
	for _, lit := range m.Literals {
		err = serializeLiteral(w, lit)
		if err != nil {
			return err
		}
	}

	// Function table
	err = vutil.SerializeU32(w, uint32(len(m.Functions)))
	if err != nil {
		return err
	}
	for _, f := range m.Functions {
		err = vutil.SerializeU32(w, uint32(f.CodePos))
		if err != nil {
			return err
		}
		err = vutil.SerializeU32(w, uint32(f.StackSize))
		if err != nil {
			return err
		}
		err = vutil.SerializeU8(w, uint8(f.Arity))
		if err != nil {
			return err
		}
	}

	// Constructor table
	err = vutil.SerializeU32(w, uint32(len(m.Constructors)))
	if err != nil {
		return err
	}
	for _, c := range m.Constructors {
		err = serializeConstructor(w, c)
		if err != nil {
			return err
		}
	}

	// Global table
	err = vutil.SerializeU32(w, uint32(len(m.Globals)))
	if err != nil {
		return err
	}
	for _, g := range m.Globals {
		err = SerializeValue(w, g)
		if err != nil {
			return err
		}
	}

	// Function paths
	err = vutil.SerializeU32(w, uint32(len(m.FunsTbl)))
	if err != nil {
		return err
	}
	for path, id := range m.FunsTbl {
		err = vutil.SerializeString(w, path)
		if err != nil {
			return err
		}
		err = vutil.SerializeU32(w, uint32(id))
		if err != nil {
			return err
		}
	}

	return nil
}

// Deserialize deserializes a CompiledModule from the given io.Reader, and
// validates it.
func (m *CompiledModule) Deserialize(r io.Reader) error {
	readMagic := make([]byte, len(moduleMagic))
	_, err := io.ReadFull(r, readMagic)
	if err != nil {
		return fmt.Errorf("reading module magic: %w", err)
	}
	for i, b := range readMagic {
		if b != moduleMagic[i] {
			return fmt.Errorf("invalid module magic number")
		}
	}

	readVersion, err := vutil.DeserializeU32(r)
	if err != nil {
		return fmt.Errorf("reading module version: %w", err)
	}
	if readVersion != moduleVersion {
		return fmt.Errorf("unsupported module version: %v", readVersion)
	}

	crc := crc32.NewIEEE()
	tr := io.TeeReader(r, crc)
	err = m.deserializePayload(tr)
	if err != nil {
		return err
	}
	payloadCRC := crc.Sum32()

	readCRC, err := vutil.DeserializeU32(r)
	if err != nil {
		return err
	}
	if readCRC != payloadCRC {
		return fmt.Errorf("compiled module CRC32 mismatch")
	}

	return m.Validate()
}

func (m *CompiledModule) deserializePayload(r io.Reader) error {
	// Code
	code, err := vutil.DeserializeBytes(r)
	if err != nil {
		return err
	}
	m.Code = code

	// Literal pool
	count, err := vutil.DeserializeU32(r)
	if err != nil {
		return err
	}
	m.Literals = make([]Literal, count)
	for i := uint32(0); i < count; i++ {
		lit, err := deserializeLiteral(r)
		if err != nil {
			return err
		}
		m.Literals[i] = lit
	}

	// Function table
	count, err = vutil.DeserializeU32(r)
	if err != nil {
		return err
	}
	m.Functions = make([]FunctionDef, count)
	for i := uint32(0); i < count; i++ {
		codePos, err := vutil.DeserializeU32(r)
		if err != nil {
			return err
		}
		stackSize, err := vutil.DeserializeU32(r)
		if err != nil {
			return err
		}
		arity, err := vutil.DeserializeU8(r)
		if err != nil {
			return err
		}
		m.Functions[i] = FunctionDef{
			CodePos:   InstructionAddress(codePos),
			StackSize: LocalStackSize(stackSize),
			Arity:     CallArity(arity),
		}
	}

	// Constructor table
	count, err = vutil.DeserializeU32(r)
	if err != nil {
		return err
	}
	m.Constructors = make([]ConstructorDef, count)
	for i := uint32(0); i < count; i++ {
		c, err := deserializeConstructor(r)
		if err != nil {
			return err
		}
		m.Constructors[i] = c
	}

	// Global table
	count, err = vutil.DeserializeU32(r)
	if err != nil {
		return err
	}
	m.Globals = make([]Value, count)
	for i := uint32(0); i < count; i++ {
		v, err := DeserializeValue(r)
		if err != nil {
			return err
		}
		m.Globals[i] = v
	}

	// Function paths
	count, err = vutil.DeserializeU32(r)
	if err != nil {
		return err
	}
	m.FunsTbl = make(map[string]FunId, count)
	for i := uint32(0); i < count; i++ {
		path, err := vutil.DeserializeString(r)
		if err != nil {
			return err
		}
		id, err := vutil.DeserializeU32(r)
		if err != nil {
			return err
		}
		m.FunsTbl[path] = FunId(id)
	}

	return nil
}

// serializeLiteral writes one literal pool entry to w. Only the stock
// literal types (booleans, int64s, strings) are supported.
func serializeLiteral(w io.Writer, lit Literal) error {
	switch l := lit.(type) {
	case bool:
		if l {
			return vutil.SerializeU8(w, serializedTrue)
		}
		return vutil.SerializeU8(w, serializedFalse)

	case int64:
		err := vutil.SerializeU8(w, serializedInt)
		if err != nil {
			return err
		}
		return vutil.SerializeI64(w, l)

	case string:
		err := vutil.SerializeU8(w, serializedString)
		if err != nil {
			return err
		}
		return vutil.SerializeString(w, l)

	default:
		return fmt.Errorf("cannot serialize literals of type %T", l)
	}
}

// deserializeLiteral reads one literal pool entry from r.
func deserializeLiteral(r io.Reader) (Literal, error) {
	tag, err := vutil.DeserializeU8(r)
	if err != nil {
		return nil, err
	}

	switch tag {
	case serializedFalse:
		return false, nil
	case serializedTrue:
		return true, nil
	case serializedInt:
		return vutil.DeserializeI64(r)
	case serializedString:
		return vutil.DeserializeString(r)
	default:
		return nil, fmt.Errorf("unexpected literal tag: %v", tag)
	}
}

// SerializeValue serializes the Value to the given io.Writer. Function
// values and embedder-defined values cannot be serialized.
func SerializeValue(w io.Writer, v Value) error {
	switch vv := v.Value.(type) {
	case Unit:
		return vutil.SerializeU8(w, serializedUnit)

	case bool:
		if vv {
			return vutil.SerializeU8(w, serializedTrue)
		}
		return vutil.SerializeU8(w, serializedFalse)

	case int64:
		err := vutil.SerializeU8(w, serializedInt)
		if err != nil {
			return err
		}
		return vutil.SerializeI64(w, vv)

	case string:
		err := vutil.SerializeU8(w, serializedString)
		if err != nil {
			return err
		}
		return vutil.SerializeString(w, vv)

	case Struct:
		err := vutil.SerializeU8(w, serializedStruct)
		if err != nil {
			return err
		}
		err = vutil.SerializeU32(w, uint32(vv.Constr))
		if err != nil {
			return err
		}
		err = vutil.SerializeU32(w, uint32(len(vv.Fields)))
		if err != nil {
			return err
		}
		for _, f := range vv.Fields {
			err = SerializeValue(w, f)
			if err != nil {
				return err
			}
		}
		return nil

	case ValueFun:
		return fmt.Errorf("cannot serialize function values")

	default:
		return fmt.Errorf("cannot serialize values of type %T", vv)
	}
}

// DeserializeValue deserializes a Value from the given io.Reader.
func DeserializeValue(r io.Reader) (Value, error) {
	tag, err := vutil.DeserializeU8(r)
	if err != nil {
		return Value{}, err
	}

	switch tag {
	case serializedUnit:
		return NewValueUnit(), nil

	case serializedFalse:
		return NewValueBool(false), nil

	case serializedTrue:
		return NewValueBool(true), nil

	case serializedInt:
		i, err := vutil.DeserializeI64(r)
		if err != nil {
			return Value{}, err
		}
		return NewValueInt(i), nil

	case serializedString:
		s, err := vutil.DeserializeString(r)
		if err != nil {
			return Value{}, err
		}
		return NewValueString(s), nil

	case serializedStruct:
		constr, err := vutil.DeserializeU32(r)
		if err != nil {
			return Value{}, err
		}
		count, err := vutil.DeserializeU32(r)
		if err != nil {
			return Value{}, err
		}
		fields := make([]Value, count)
		for i := uint32(0); i < count; i++ {
			f, err := DeserializeValue(r)
			if err != nil {
				return Value{}, err
			}
			fields[i] = f
		}
		return NewValueStruct(ConstrId(constr), fields), nil

	default:
		return Value{}, fmt.Errorf("unexpected value tag: %v", tag)
	}
}

// serializeConstructor writes one constructor table entry to w.
func serializeConstructor(w io.Writer, c ConstructorDef) error {
	err := vutil.SerializeString(w, c.Name)
	if err != nil {
		return err
	}
	err = vutil.SerializeU32(w, uint32(c.FieldCount))
	if err != nil {
		return err
	}
	err = vutil.SerializeU32(w, uint32(len(c.FieldNames)))
	if err != nil {
		return err
	}
	for _, n := range c.FieldNames {
		err = vutil.SerializeString(w, n)
		if err != nil {
			return err
		}
	}
	return nil
}

// deserializeConstructor reads one constructor table entry from r.
func deserializeConstructor(r io.Reader) (ConstructorDef, error) {
	name, err := vutil.DeserializeString(r)
	if err != nil {
		return ConstructorDef{}, err
	}
	fieldCount, err := vutil.DeserializeU32(r)
	if err != nil {
		return ConstructorDef{}, err
	}
	nameCount, err := vutil.DeserializeU32(r)
	if err != nil {
		return ConstructorDef{}, err
	}
	var fieldNames []string
	if nameCount > 0 {
		fieldNames = make([]string, nameCount)
		for i := uint32(0); i < nameCount; i++ {
			fieldNames[i], err = vutil.DeserializeString(r)
			if err != nil {
				return ConstructorDef{}, err
			}
		}
	}
	return ConstructorDef{
		Name:       name,
		FieldCount: int(fieldCount),
		FieldNames: fieldNames,
	}, nil
}
