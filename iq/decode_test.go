// SPDX-License-Identifier: EPL-2.0

package iq

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
)

func TestScalarDecoders(t *testing.T) {
	t.Parallel()

	le := binary.LittleEndian
	be := binary.BigEndian

	tests := []struct {
		name string
		dec  scalarDecoder
		in   []byte
		want float64
	}{
		{name: "u8 zero", dec: decodeU8, in: []byte{0x00}, want: 0},
		{name: "u8 max", dec: decodeU8, in: []byte{0xFF}, want: 255},
		{name: "i8 minus one", dec: decodeI8, in: []byte{0xFF}, want: -1},
		{name: "i8 min", dec: decodeI8, in: []byte{0x80}, want: -128},
		{name: "i8 max", dec: decodeI8, in: []byte{0x7F}, want: 127},
		{name: "u16 le", dec: decodeU16(le), in: []byte{0x34, 0x12}, want: 0x1234},
		{name: "u16 be", dec: decodeU16(be), in: []byte{0x12, 0x34}, want: 0x1234},
		{name: "u16 max", dec: decodeU16(le), in: []byte{0xFF, 0xFF}, want: 65535},
		{name: "i16 minus one", dec: decodeI16(binary.NativeEndian), in: []byte{0xFF, 0xFF}, want: -1},
		{name: "i16 min le", dec: decodeI16(le), in: []byte{0x00, 0x80}, want: math.MinInt16},
		{name: "i16 max be", dec: decodeI16(be), in: []byte{0x7F, 0xFF}, want: math.MaxInt16},
		{name: "f32 1.5", dec: decodeF32(le), in: le.AppendUint32(nil, math.Float32bits(1.5)), want: 1.5},
		{name: "f32 -0.25 be", dec: decodeF32(be), in: be.AppendUint32(nil, math.Float32bits(-0.25)), want: -0.25},
		{name: "f64 pi", dec: decodeF64(le), in: le.AppendUint64(nil, math.Float64bits(math.Pi)), want: math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.dec(tt.in); got != tt.want {
				t.Errorf("decode(% x) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeF32_WidensExactly(t *testing.T) {
	t.Parallel()

	v := float32(0.1)
	got := decodeF32(binary.LittleEndian)(binary.LittleEndian.AppendUint32(nil, math.Float32bits(v)))
	if got != float64(v) {
		t.Errorf("decodeF32 = %v, want %v", got, float64(v))
	}
}

func TestDecodeSample(t *testing.T) {
	t.Parallel()

	b := binary.BigEndian.AppendUint16(nil, 0xFFFE)
	b = binary.BigEndian.AppendUint16(b, 0x0003)

	got, err := DecodeSample(I16, binary.BigEndian, b)
	if err != nil {
		t.Fatalf("DecodeSample() error = %v", err)
	}
	if got != complex(-2, 3) {
		t.Errorf("DecodeSample() = %v, want (-2+3i)", got)
	}

	got, err = DecodeSample(U8, nil, []byte{7, 9})
	if err != nil {
		t.Fatalf("DecodeSample() error = %v", err)
	}
	if got != complex(7, 9) {
		t.Errorf("DecodeSample() = %v, want (7+9i)", got)
	}

	if _, err := DecodeSample(Unknown, nil, []byte{1, 2}); !errors.Is(err, ErrUnknownSampleType) {
		t.Errorf("DecodeSample(Unknown) error = %v, want ErrUnknownSampleType", err)
	}
}

func TestDecodeSample_ShortBuffer(t *testing.T) {
	t.Parallel()

	for _, st := range SampleTypes {
		t.Run(st.String(), func(t *testing.T) {
			t.Parallel()

			b := make([]byte, st.SampleWidth()-1)
			got, err := DecodeSample(st, binary.LittleEndian, b)
			if !errors.Is(err, io.ErrShortBuffer) {
				t.Errorf("DecodeSample(%d bytes) error = %v, want io.ErrShortBuffer", len(b), err)
			}
			if got != 0 {
				t.Errorf("DecodeSample(%d bytes) = %v, want 0", len(b), got)
			}
		})
	}

	if _, err := DecodeSample(U8, nil, nil); !errors.Is(err, io.ErrShortBuffer) {
		t.Errorf("DecodeSample(nil) error = %v, want io.ErrShortBuffer", err)
	}
}

func TestDecodeChunk64(t *testing.T) {
	t.Parallel()

	buf := []byte{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name string
		dst  int
		want int
	}{
		{name: "dst larger than buffer", dst: 8, want: 3},
		{name: "dst exact", dst: 3, want: 3},
		{name: "dst smaller", dst: 2, want: 2},
		{name: "empty dst", dst: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dst := make([]complex128, tt.dst)
			n := DecodeChunk64(dst, U8, nil, buf)
			if n != tt.want {
				t.Fatalf("DecodeChunk64() = %d, want %d", n, tt.want)
			}
			for i := range n {
				want := complex(float64(2*i+1), float64(2*i+2))
				if dst[i] != want {
					t.Errorf("dst[%d] = %v, want %v", i, dst[i], want)
				}
			}
		})
	}
}

func TestDecodeChunk_InvalidType(t *testing.T) {
	t.Parallel()

	if n := DecodeChunk64(make([]complex128, 4), Unknown, nil, make([]byte, 16)); n != 0 {
		t.Errorf("DecodeChunk64(Unknown) = %d, want 0", n)
	}
	if n := DecodeChunk32(make([]complex64, 4), SampleType(77), nil, make([]byte, 16)); n != 0 {
		t.Errorf("DecodeChunk32(77) = %d, want 0", n)
	}
}

func TestDecodeChunk32_NarrowsF64(t *testing.T) {
	t.Parallel()

	buf := binary.LittleEndian.AppendUint64(nil, math.Float64bits(0.1))
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(-1e300))

	dst := make([]complex64, 1)
	if n := DecodeChunk32(dst, F64, binary.LittleEndian, buf); n != 1 {
		t.Fatalf("DecodeChunk32() = %d, want 1", n)
	}
	if real(dst[0]) != float32(0.1) {
		t.Errorf("I = %v, want %v", real(dst[0]), float32(0.1))
	}
	if !math.IsInf(float64(imag(dst[0])), -1) {
		t.Errorf("Q = %v, want -Inf after narrowing", imag(dst[0]))
	}
}

func TestDecodeChunk64_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	buf := make([]byte, 4096)
	dst := make([]complex128, 2048)

	allocs := testing.AllocsPerRun(100, func() {
		DecodeChunk64(dst, U8, binary.LittleEndian, buf)
	})

	if allocs > 0 {
		t.Errorf("DecodeChunk64 allocated %v times, want 0", allocs)
	}
}

func BenchmarkDecodeChunk32_I16(b *testing.B) {
	buf := make([]byte, 4096*I16.SampleWidth())
	dst := make([]complex64, 4096)

	b.SetBytes(int64(len(buf)))
	b.ReportAllocs()

	for range b.N {
		DecodeChunk32(dst, I16, binary.LittleEndian, buf)
	}
}
