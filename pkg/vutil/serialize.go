/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package vutil

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Serializer is the interface implemented by objects that can serialize
// themselves.
type Serializer interface {
	// Serialize serializes the given object writing the serialized data to w.
	Serialize(w io.Writer) error
}

// Deserializer is the interface implemented by objects that can deserialize
// themselves.
type Deserializer interface {
	// Deserialize deserializes the given object reading the serialized data
	// from r.
	Deserialize(r io.Reader) error
}

// SerializeU8 writes a single byte to the given io.Writer.
func SerializeU8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

// DeserializeU8 reads a single byte from the given io.Reader.
func DeserializeU8(r io.Reader) (uint8, error) {
	var b [1]byte
	_, err := io.ReadFull(r, b[:])
	return b[0], err
}

// SerializeU32 writes a uint32 to the given io.Writer, in little endian
// format.
func SerializeU32(w io.Writer, v uint32) error {
	var u32 [4]byte
	binary.LittleEndian.PutUint32(u32[:], v)
	_, err := w.Write(u32[:])
	return err
}

// DeserializeU32 reads a little endian uint32 from the given io.Reader.
func DeserializeU32(r io.Reader) (uint32, error) {
	var u32 [4]byte
	_, err := io.ReadFull(r, u32[:])
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(u32[:]), nil
}

// SerializeI64 writes an int64 to the given io.Writer, in little endian
// format.
func SerializeI64(w io.Writer, v int64) error {
	var u64 [8]byte
	binary.LittleEndian.PutUint64(u64[:], uint64(v))
	_, err := w.Write(u64[:])
	return err
}

// DeserializeI64 reads a little endian int64 from the given io.Reader.
func DeserializeI64(r io.Reader) (int64, error) {
	var u64 [8]byte
	_, err := io.ReadFull(r, u64[:])
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(u64[:])), nil
}

// SerializeString writes a string to the given io.Writer: the length as a
// uint32, then the bytes themselves.
func SerializeString(w io.Writer, s string) error {
	if len(s) > math.MaxUint32 {
		return fmt.Errorf("string too long to serialize: %v bytes", len(s))
	}
	err := SerializeU32(w, uint32(len(s)))
	if err != nil {
		return err
	}
	_, err = w.Write([]byte(s))
	return err
}

// DeserializeString reads a string previously written by SerializeString from
// the given io.Reader.
func DeserializeString(r io.Reader) (string, error) {
	length, err := DeserializeU32(r)
	if err != nil {
		return "", err
	}
	bs := make([]byte, length)
	_, err = io.ReadFull(r, bs)
	if err != nil {
		return "", err
	}
	return string(bs), nil
}

// SerializeBytes writes a length-prefixed byte slice to the given io.Writer.
func SerializeBytes(w io.Writer, bs []byte) error {
	if len(bs) > math.MaxUint32 {
		return fmt.Errorf("byte slice too long to serialize: %v bytes", len(bs))
	}
	err := SerializeU32(w, uint32(len(bs)))
	if err != nil {
		return err
	}
	_, err = w.Write(bs)
	return err
}

// DeserializeBytes reads a length-prefixed byte slice from the given
// io.Reader.
func DeserializeBytes(r io.Reader) ([]byte, error) {
	length, err := DeserializeU32(r)
	if err != nil {
		return nil, err
	}
	bs := make([]byte, length)
	_, err = io.ReadFull(r, bs)
	if err != nil {
		return nil, err
	}
	return bs, nil
}
