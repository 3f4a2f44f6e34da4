package model

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/mu-bwang/seaEchoTSCalculator/bubble"
	"github.com/mu-bwang/seaEchoTSCalculator/water"
)

// Errors returned by the model library.
var (
	ErrUnknownModel = errors.New("model: unknown model name")
	ErrNotFinite    = errors.New("model: computation produced a non-finite TS")
)

// Func is a bubble scattering model: it maps a sonar frequency (kHz) and
// sound speed (m/s) plus the derived environment and bubble states to a
// target strength in dB.
type Func func(fKHz, c float64, w water.SeawaterState, b bubble.State) (float64, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Func)
)

// Register adds a model under the given name. Registration happens in init
// functions of the model files; re-registering a name replaces the entry.
func Register(name string, fn Func) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// Lookup resolves a model name. Unknown names return an error wrapping
// ErrUnknownModel that identifies the offending name.
func Lookup(name string) (Func, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
	return fn, nil
}

// Names returns the registered model names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// finiteTS guards the 10*log10(sigma) step shared by all models: a
// non-finite cross-section (or one that is not positive) is a computation
// failure, not a TS value.
func finiteTS(name string, fKHz, sigma float64) (float64, error) {
	ts := 10 * math.Log10(sigma)
	if math.IsNaN(ts) || math.IsInf(ts, 0) {
		return 0, fmt.Errorf("%s at %g kHz: %w", name, fKHz, ErrNotFinite)
	}
	return ts, nil
}
