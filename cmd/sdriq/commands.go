// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/sdriq/formats/wav"
	"github.com/ik5/sdriq/internal/cli"
	"github.com/ik5/sdriq/iq"
	"github.com/ik5/sdriq/stats"
)

// forEachChunk reads r to the end, calling fn for every chunk. A truncated
// tail is logged and, unless strict is set, treated as the end of the file.
func forEachChunk(g *Globals, r *iq.Reader, strict bool, fn func([]complex128) error) (int, error) {
	chunks := 0
	for {
		chunk, err := r.ReadChunk64()
		if errors.Is(err, io.EOF) {
			g.Log.Debug().Int("chunks", chunks).Msg("end of capture")
			return chunks, nil
		}
		if errors.Is(err, iq.ErrTruncatedChunk) {
			g.Log.Warn().Err(err).Int("chunks", chunks).Msg("capture ends with a partial chunk")
			if strict {
				return chunks, err
			}
			return chunks, nil
		}
		if err != nil {
			return chunks, fmt.Errorf("reading chunk %d: %w", chunks, err)
		}

		if err := fn(chunk); err != nil {
			return chunks, err
		}
		chunks++
	}
}

type InfoCmd struct {
	File   string `arg:"" type:"path" help:"Raw IQ file."`
	Strict bool   `help:"Fail when the file ends with a partial chunk."`
}

func (c *InfoCmd) Run(g *Globals) error {
	r, err := g.open(c.File)
	if err != nil {
		return err
	}
	defer r.Close()

	acc := stats.NewAccumulator(r.SampleType())
	chunks, err := forEachChunk(g, r, c.Strict, func(chunk []complex128) error {
		acc.Add(chunk)
		return nil
	})
	if err != nil {
		return err
	}

	s := acc.Summary()
	cli.PrintTitle(g.Out, c.File)
	cli.PrintKV(g.Out, "type", r.SampleType())
	cli.PrintKV(g.Out, "chunks", chunks)
	cli.PrintKV(g.Out, "samples", s.Samples)
	if s.Samples == 0 {
		return nil
	}
	cli.PrintKV(g.Out, "dc offset", fmt.Sprintf("I %.4f  Q %.4f", s.MeanI, s.MeanQ))
	cli.PrintKV(g.Out, "range I", fmt.Sprintf("%g .. %g", s.MinI, s.MaxI))
	cli.PrintKV(g.Out, "range Q", fmt.Sprintf("%g .. %g", s.MinQ, s.MaxQ))
	cli.PrintKV(g.Out, "power", fmt.Sprintf("%.2f dBFS", s.PowerDBFS))
	cli.PrintKV(g.Out, "peak", fmt.Sprintf("%.4f", s.Peak))
	if s.Clipped(r.SampleType()) {
		cli.PrintWarning(g.Out, "samples reach the limits of the sample type; the capture may be clipped")
	}
	return nil
}

type DumpCmd struct {
	File      string `arg:"" type:"path" help:"Raw IQ file."`
	Count     int    `short:"n" help:"Number of samples to print." default:"16"`
	Precision int    `help:"Output precision in bits." enum:"32,64" default:"64"`
}

func (c *DumpCmd) Run(g *Globals) error {
	r, err := g.open(c.File)
	if err != nil {
		return err
	}
	defer r.Close()

	cli.PrintHeader(g.Out, fmt.Sprintf("%-8s %-16s %-16s", "#", "I", "Q"))

	printed := 0
	for printed < c.Count {
		var row []complex128
		if c.Precision == 32 {
			chunk, err := r.ReadChunk32()
			if err != nil {
				return dumpEnd(g, err, printed)
			}
			row = make([]complex128, len(chunk))
			for i, s := range chunk {
				row[i] = complex128(s)
			}
		} else {
			chunk, err := r.ReadChunk64()
			if err != nil {
				return dumpEnd(g, err, printed)
			}
			row = chunk
		}

		for _, s := range row {
			if printed == c.Count {
				break
			}
			fmt.Fprintf(g.Out, "%-8d %-16g %-16g\n", printed, real(s), imag(s))
			printed++
		}
	}
	return nil
}

func dumpEnd(g *Globals, err error, printed int) error {
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case errors.Is(err, iq.ErrTruncatedChunk):
		g.Log.Warn().Err(err).Int("printed", printed).Msg("capture ends with a partial chunk")
		return nil
	default:
		return err
	}
}

type WavCmd struct {
	File   string `arg:"" type:"path" help:"Raw IQ file."`
	Output string `arg:"" type:"path" help:"WAV file to create."`
	Rate   int    `short:"r" required:"" help:"Sample rate of the capture in Hz."`
	Strict bool   `help:"Fail when the file ends with a partial chunk."`
}

func (c *WavCmd) Run(g *Globals) error {
	r, err := g.open(c.File)
	if err != nil {
		return err
	}
	defer r.Close()

	out, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("creating WAV file: %w", err)
	}
	defer out.Close()

	w, err := wav.NewIQWriter(out, c.Rate, r.SampleType())
	if err != nil {
		return err
	}

	if _, err := forEachChunk(g, r, c.Strict, w.WriteSamples); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	g.Log.Info().Str("output", c.Output).Int("frames", w.Frames()).Msg("wrote IQ WAV")
	cli.PrintKV(g.Out, "wrote", fmt.Sprintf("%d samples to %s", w.Frames(), c.Output))
	return nil
}

type TypesCmd struct{}

func (c *TypesCmd) Run(g *Globals) error {
	cli.PrintHeader(g.Out, fmt.Sprintf("%-6s %-8s %s", "type", "element", "sample"))
	for _, st := range iq.SampleTypes {
		fmt.Fprintf(g.Out, "%-6s %-8d %d\n", st, st.ElementWidth(), st.SampleWidth())
	}

	fmt.Fprintln(g.Out)
	cli.PrintHeader(g.Out, "tool presets")
	presets := iq.DefaultRegistry()
	for _, name := range presets.Names() {
		st, _ := presets.Get(name)
		cli.PrintKV(g.Out, name, st)
	}
	return nil
}
