// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/sdriq/iq"
	"github.com/rs/zerolog"
)

var (
	ErrNoSampleType = errors.New("a sample type is required: pass --type or --tool")
	ErrUnknownTool  = errors.New("unknown capture tool")
)

// Globals are the flags shared by every command.
type Globals struct {
	Type      string `short:"t" help:"Sample type: u8, i8, u16, i16, f32, f64 (aliases such as cu8, cs16, cf32 work too)." env:"SDRIQ_TYPE"`
	Tool      string `help:"Use the default sample type of a capture tool, e.g. gqrx or rtl_sdr." env:"SDRIQ_TOOL"`
	Chunk     int    `short:"c" help:"Samples decoded per read." default:"1024" env:"SDRIQ_CHUNK"`
	ByteOrder string `help:"Byte order of multi-byte samples." enum:"native,little,big" default:"native" env:"SDRIQ_BYTE_ORDER"`
	LogLevel  string `help:"Log level." enum:"debug,info,warn,error" default:"info" env:"SDRIQ_LOG_LEVEL"`

	Out io.Writer      `kong:"-"`
	Log zerolog.Logger `kong:"-"`
}

// config resolves the flags into a reader configuration. --type wins over
// --tool when both are given.
func (g *Globals) config() (iq.Config, error) {
	var st iq.SampleType
	switch {
	case g.Type != "":
		t, err := iq.ParseSampleType(g.Type)
		if err != nil {
			return iq.Config{}, err
		}
		st = t
	case g.Tool != "":
		t, ok := iq.DefaultRegistry().Get(g.Tool)
		if !ok {
			return iq.Config{}, fmt.Errorf("%w: %q", ErrUnknownTool, g.Tool)
		}
		st = t
	default:
		return iq.Config{}, ErrNoSampleType
	}

	order, err := iq.ParseByteOrder(g.ByteOrder)
	if err != nil {
		return iq.Config{}, err
	}

	cfg := iq.Config{SamplesPerChunk: g.Chunk, SampleType: st, ByteOrder: order}
	if err := cfg.Validate(); err != nil {
		return iq.Config{}, err
	}
	return cfg, nil
}

// open builds a reader for path from the global flags.
func (g *Globals) open(path string) (*iq.Reader, error) {
	cfg, err := g.config()
	if err != nil {
		return nil, err
	}

	r, err := iq.Open(path, cfg)
	if err != nil {
		return nil, err
	}

	g.Log.Debug().
		Str("file", path).
		Stringer("type", cfg.SampleType).
		Int("chunk", cfg.SamplesPerChunk).
		Msg("opened capture")
	return r, nil
}
