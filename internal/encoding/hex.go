// Package encoding implements the assembler's object-image format: a raw byte stream in emission
// order, optionally preceded by a two-byte little-endian load address (the "-c64" style PRG
// header some 8-bit toolchains expect). Binary rather than text, so it implements
// encoding.BinaryMarshaler/BinaryUnmarshaler instead of the Text variants the format's simplicity
// gives it no real use for.
//
// # Bugs
//
// This is not a general-purpose binary container format; it supports exactly the one optional
// header field the assembler's "-c64" flag needs.
package encoding

import (
	"encoding/binary"
	"fmt"
)

// Image is an assembled object image: the linked byte stream and the address execution (or
// loading) should begin at.
type Image struct {
	Orig int
	Code []byte

	// Header selects whether MarshalBinary prepends Orig as a two-byte little-endian load
	// address.
	Header bool
}

// MarshalBinary renders the image as a raw byte stream, optionally prefixed with its two-byte
// little-endian load address.
func (img Image) MarshalBinary() ([]byte, error) {
	if img.Orig < 0 || img.Orig > 0xFFFF {
		return nil, fmt.Errorf("%w: origin %#x out of 16-bit range", ErrDecode, img.Orig)
	}

	if !img.Header {
		out := make([]byte, len(img.Code))
		copy(out, img.Code)

		return out, nil
	}

	out := make([]byte, 2+len(img.Code))
	binary.LittleEndian.PutUint16(out[:2], uint16(img.Orig))
	copy(out[2:], img.Code)

	return out, nil
}

// UnmarshalBinary reads an image previously written with a load-address header: the first two
// bytes are the little-endian origin, the remainder the code. Use DecodeHeaderless for the
// header-free form, which carries no origin to recover.
func (img *Image) UnmarshalBinary(bs []byte) error {
	if len(bs) < 2 {
		return fmt.Errorf("%w: image too short for a load-address header", errInvalidImage)
	}

	img.Orig = int(binary.LittleEndian.Uint16(bs[:2]))
	img.Code = append([]byte(nil), bs[2:]...)
	img.Header = true

	return nil
}

// DecodeHeaderless builds an Image from a header-free byte stream, using orig as the
// caller-supplied origin (the assembler's default, or a flag override).
func DecodeHeaderless(bs []byte, orig int) Image {
	return Image{Orig: orig, Code: append([]byte(nil), bs...)}
}

type decodingError struct{}

func (decodingError) Error() string {
	return "decoding error"
}

func (de *decodingError) Is(err error) bool {
	if de == err {
		return true
	}

	_, ok := err.(*decodingError)

	return ok
}

var (
	// ErrDecode is a wrapped error that is returned when encoding or decoding fails.
	ErrDecode = &decodingError{}

	errInvalidImage = fmt.Errorf("%w: invalid image", ErrDecode)
)
