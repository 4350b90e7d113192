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

// DebugInfo contains debug information matching a CompiledModule. All
// information that is not strictly necessary to run a program but is useful
// for debugging, producing better error reporting, etc, belongs here.
type DebugInfo struct {
	// FunctionNames contains the names of the functions on a CompiledModule.
	// There is one entry for each entry in the corresponding
	// CompiledModule.Functions.
	FunctionNames []string
}

// FunctionName returns the name of the function with the given id, or its
// id rendered as a string if the name is unknown. di may be nil.
func (di *DebugInfo) FunctionName(id FunId) string {
	if di == nil || id.Index() >= len(di.FunctionNames) {
		return id.String()
	}
	return di.FunctionNames[id.Index()]
}

const (
	// debugInfoVersion is the current version of the debug info file format.
	debugInfoVersion uint32 = 0
)

// debugInfoMagic is the "magic number" identifying a Vireo debug info file:
// the "VireoDb" string followed by a SUB character.
var debugInfoMagic = []byte{0x56, 0x69, 0x72, 0x65, 0x6F, 0x44, 0x62, 0x1A}

// Serialize serializes the DebugInfo to the given io.Writer.
func (di *DebugInfo) Serialize(w io.Writer) error {
	_, err := w.Write(debugInfoMagic)
	if err != nil {
		return err
	}
	err = vutil.SerializeU32(w, debugInfoVersion)
	if err != nil {
		return err
	}

	crc := crc32.NewIEEE()
	mw := io.MultiWriter(w, crc)
	err = vutil.SerializeU32(mw, uint32(len(di.FunctionNames)))
	if err != nil {
		return err
	}
	for _, name := range di.FunctionNames {
		err = vutil.SerializeString(mw, name)
		if err != nil {
			return err
		}
	}

	return vutil.SerializeU32(w, crc.Sum32())
}

// Deserialize deserializes a DebugInfo from the given io.Reader.
func (di *DebugInfo) Deserialize(r io.Reader) error {
	readMagic := make([]byte, len(debugInfoMagic))
	_, err := io.ReadFull(r, readMagic)
	if err != nil {
		return fmt.Errorf("reading debug info magic: %w", err)
	}
	for i, b := range readMagic {
		if b != debugInfoMagic[i] {
			return fmt.Errorf("invalid debug info magic number")
		}
	}

	readVersion, err := vutil.DeserializeU32(r)
	if err != nil {
		return fmt.Errorf("reading debug info version: %w", err)
	}
	if readVersion != debugInfoVersion {
		return fmt.Errorf("unsupported debug info version: %v", readVersion)
	}

	crc := crc32.NewIEEE()
	tr := io.TeeReader(r, crc)
	count, err := vutil.DeserializeU32(tr)
	if err != nil {
		return err
	}
	di.FunctionNames = make([]string, count)
	for i := uint32(0); i < count; i++ {
		di.FunctionNames[i], err = vutil.DeserializeString(tr)
		if err != nil {
			return err
		}
	}
	payloadCRC := crc.Sum32()

	readCRC, err := vutil.DeserializeU32(r)
	if err != nil {
		return err
	}
	if readCRC != payloadCRC {
		return fmt.Errorf("debug info CRC32 mismatch")
	}

	return nil
}
