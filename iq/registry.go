// SPDX-License-Identifier: EPL-2.0

package iq

import (
	"slices"
	"strings"
	"sync"
)

// Registry maps capture tool names (e.g., "gqrx", "rtl_sdr") to the sample
// type they write by default.
type Registry struct {
	types map[string]SampleType

	mtx *sync.Mutex
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]SampleType),
		mtx:   &sync.Mutex{},
	}
}

// DefaultRegistry returns a new Registry holding the defaults of well-known
// capture tools.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("gqrx", F32)
	r.Register("gnuradio", F32)
	r.Register("uhd_rx_cfile", F32)
	r.Register("rtl_sdr", U8)
	r.Register("hackrf_transfer", I8)
	r.Register("bladerf", I16)
	r.Register("pluto", I16)
	return r
}

// Register sets the sample type for tool. Names are case-insensitive.
func (r *Registry) Register(tool string, t SampleType) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.types[strings.ToLower(tool)] = t
}

// Get returns the sample type registered for tool.
func (r *Registry) Get(tool string) (SampleType, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	t, ok := r.types[strings.ToLower(tool)]
	return t, ok
}

// Names returns the registered tool names in sorted order.
func (r *Registry) Names() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
