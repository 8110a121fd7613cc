// Package codec implements the length-prefixed wire framing shared by every
// serialized CP-ABE artifact: uint32 big-endian lengths, and NUL-terminated
// strings for attribute labels.
package codec

import (
	"bytes"
	"encoding/binary"
	"errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrTruncated is returned when a buffer ends before a declared
	// length is satisfied.
	ErrTruncated = errors.New("codec: truncated input")
	// ErrNulInString is returned when a string to encode contains a NUL
	// byte, which would be ambiguous with the terminator.
	ErrNulInString = errors.New("codec: string contains NUL byte")
	// ErrTrailingData is returned by cpabe.DeserializeCiphertext when
	// bytes remain after the policy tree. The other artifact decoders
	// ignore trailing bytes.
	ErrTrailingData = errors.New("codec: trailing data after decode")
)

// WriteUint32 appends a big-endian uint32.
func WriteUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

// ReadUint32 consumes a big-endian uint32 from the front of b.
func ReadUint32(b []byte) (uint32, []byte, error) {
	if len(b) < 4 {
		return 0, nil, ErrTruncated
	}
	return binary.BigEndian.Uint32(b[:4]), b[4:], nil
}

// WriteBytes appends a length-prefixed byte string.
func WriteBytes(buf *bytes.Buffer, data []byte) {
	WriteUint32(buf, uint32(len(data)))
	buf.Write(data)
}

// ReadBytes consumes a length-prefixed byte string from the front of b.
func ReadBytes(b []byte) ([]byte, []byte, error) {
	n, rest, err := ReadUint32(b)
	if err != nil {
		return nil, nil, err
	}
	if uint64(len(rest)) < uint64(n) {
		return nil, nil, ErrTruncated
	}
	return rest[:n], rest[n:], nil
}

// WriteCString appends s followed by a single NUL terminator.
func WriteCString(buf *bytes.Buffer, s string) error {
	if bytes.IndexByte([]byte(s), 0) >= 0 {
		return ErrNulInString
	}
	buf.WriteString(s)
	buf.WriteByte(0)
	return nil
}

// ReadCString consumes a NUL-terminated string from the front of b.
func ReadCString(b []byte) (string, []byte, error) {
	i := bytes.IndexByte(b, 0)
	if i < 0 {
		return "", nil, ErrTruncated
	}
	return string(b[:i]), b[i+1:], nil
}

// Wrap annotates err with context using the teacher pack's error-wrapping
// convention (github.com/pkg/errors), preserving the original cause for
// errors.Cause/errors.Unwrap callers.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return pkgerrors.Wrap(err, context)
}
