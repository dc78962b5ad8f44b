// SPDX-License-Identifier: EPL-2.0

// Package stats summarizes decoded IQ captures chunk by chunk.
package stats

import (
	"math"

	"github.com/ik5/sdriq/iq"
	"github.com/ik5/sdriq/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a capture. Means and extremes are in raw units of the
// sample type; Power and Peak are relative to full scale.
type Summary struct {
	Samples int

	// MeanI and MeanQ are the DC offset of each component.
	MeanI float64
	MeanQ float64

	MinI, MaxI float64
	MinQ, MaxQ float64

	// Power is the mean of |x|² over full-scale normalized samples.
	Power float64
	// PowerDBFS is Power in decibels relative to full scale.
	PowerDBFS float64
	// Peak is the largest full-scale magnitude seen.
	Peak float64
}

// Accumulator folds chunks into a Summary without keeping the samples.
// It is not safe for concurrent use.
type Accumulator struct {
	sampleType iq.SampleType
	sum        Summary

	i, q, pow []float64
}

// NewAccumulator returns an Accumulator for samples decoded from t.
func NewAccumulator(t iq.SampleType) *Accumulator {
	return &Accumulator{sampleType: t}
}

func (a *Accumulator) grow(n int) {
	if cap(a.i) < n {
		a.i = make([]float64, n)
		a.q = make([]float64, n)
		a.pow = make([]float64, n)
	}
	a.i, a.q, a.pow = a.i[:n], a.q[:n], a.pow[:n]
}

// Add folds one chunk of samples into the running summary.
func (a *Accumulator) Add(chunk []complex128) {
	if len(chunk) == 0 {
		return
	}

	a.grow(len(chunk))
	for k, s := range chunk {
		a.i[k], a.q[k] = real(s), imag(s)
		n := utils.NormalizeSample(a.sampleType, s)
		a.pow[k] = real(n)*real(n) + imag(n)*imag(n)
	}
	a.fold()
}

// Add32 is Add for complex64 chunks.
func (a *Accumulator) Add32(chunk []complex64) {
	if len(chunk) == 0 {
		return
	}

	a.grow(len(chunk))
	for k, s := range chunk {
		c := complex128(s)
		a.i[k], a.q[k] = real(c), imag(c)
		n := utils.NormalizeSample(a.sampleType, c)
		a.pow[k] = real(n)*real(n) + imag(n)*imag(n)
	}
	a.fold()
}

func (a *Accumulator) fold() {
	s := &a.sum
	k := len(a.i)

	minI, maxI := floats.Min(a.i), floats.Max(a.i)
	minQ, maxQ := floats.Min(a.q), floats.Max(a.q)
	peak := math.Sqrt(floats.Max(a.pow))

	if s.Samples == 0 {
		s.MinI, s.MaxI, s.MinQ, s.MaxQ = minI, maxI, minQ, maxQ
	} else {
		s.MinI, s.MaxI = math.Min(s.MinI, minI), math.Max(s.MaxI, maxI)
		s.MinQ, s.MaxQ = math.Min(s.MinQ, minQ), math.Max(s.MaxQ, maxQ)
	}
	s.Peak = math.Max(s.Peak, peak)

	// Running means, weighted by chunk length.
	w := float64(k) / float64(s.Samples+k)
	s.MeanI += (stat.Mean(a.i, nil) - s.MeanI) * w
	s.MeanQ += (stat.Mean(a.q, nil) - s.MeanQ) * w
	s.Power += (stat.Mean(a.pow, nil) - s.Power) * w
	s.Samples += k
}

// Summary returns the summary of every sample added so far.
func (a *Accumulator) Summary() Summary {
	s := a.sum
	if s.Samples == 0 {
		s.PowerDBFS = math.Inf(-1)
		return s
	}
	s.PowerDBFS = 10 * math.Log10(s.Power)
	return s
}

// Clipped reports whether any component reached the limits of an integer
// sample type. Float types never report clipping.
func (s Summary) Clipped(t iq.SampleType) bool {
	if s.Samples == 0 {
		return false
	}

	var lo, hi float64
	switch t {
	case iq.U8:
		lo, hi = 0, math.MaxUint8
	case iq.I8:
		lo, hi = math.MinInt8, math.MaxInt8
	case iq.U16:
		lo, hi = 0, math.MaxUint16
	case iq.I16:
		lo, hi = math.MinInt16, math.MaxInt16
	default:
		return false
	}
	return s.MinI <= lo || s.MinQ <= lo || s.MaxI >= hi || s.MaxQ >= hi
}
