package encoding

import (
	"encoding"
	"errors"
	"testing"
)

var (
	_ encoding.BinaryMarshaler   = Image{}
	_ encoding.BinaryUnmarshaler = (*Image)(nil)
)

func TestImage_MarshalBinary(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name      string
		img       Image
		want      []byte
		expectErr error
	}{
		{
			name: "headerless empty",
			img:  Image{Orig: 0x1000},
			want: []byte{},
		},
		{
			name: "headerless",
			img:  Image{Orig: 0x1000, Code: []byte{0xA9, 0x00, 0x60}},
			want: []byte{0xA9, 0x00, 0x60},
		},
		{
			name: "with header",
			img:  Image{Orig: 0x1000, Code: []byte{0xA9, 0x00, 0x60}, Header: true},
			want: []byte{0x00, 0x10, 0xA9, 0x00, 0x60},
		},
		{
			name:      "origin out of range",
			img:       Image{Orig: 0x10000},
			expectErr: ErrDecode,
		},
	}

	for _, tc := range tcs {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := tc.img.MarshalBinary()

			if tc.expectErr != nil {
				if !errors.Is(err, tc.expectErr) {
					t.Fatalf("got err: %v, want: %v", err, tc.expectErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if string(got) != string(tc.want) {
				t.Errorf("got: %x, want: %x", got, tc.want)
			}
		})
	}
}

func TestImage_UnmarshalBinary(t *testing.T) {
	t.Parallel()

	var img Image

	err := img.UnmarshalBinary([]byte{0x00, 0x10, 0xA9, 0x00, 0x60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if img.Orig != 0x1000 {
		t.Errorf("got orig: %#x, want: %#x", img.Orig, 0x1000)
	}

	if string(img.Code) != string([]byte{0xA9, 0x00, 0x60}) {
		t.Errorf("got code: %x, want: %x", img.Code, []byte{0xA9, 0x00, 0x60})
	}
}

func TestImage_UnmarshalBinary_tooShort(t *testing.T) {
	t.Parallel()

	var img Image

	if err := img.UnmarshalBinary([]byte{0x00}); !errors.Is(err, ErrDecode) {
		t.Errorf("got: %v, want: %v", err, ErrDecode)
	}
}

func TestDecodeHeaderless(t *testing.T) {
	t.Parallel()

	img := DecodeHeaderless([]byte{0xA9, 0x00, 0x60}, 0x1000)

	if img.Orig != 0x1000 {
		t.Errorf("got orig: %#x, want: %#x", img.Orig, 0x1000)
	}

	if string(img.Code) != string([]byte{0xA9, 0x00, 0x60}) {
		t.Errorf("got code: %x, want: %x", img.Code, []byte{0xA9, 0x00, 0x60})
	}
}
