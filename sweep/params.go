package sweep

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/mu-bwang/seaEchoTSCalculator/bubble"
	"github.com/mu-bwang/seaEchoTSCalculator/model"
)

var (
	ErrNoFrequencies    = errors.New("sweep: frequency list is empty")
	ErrInvalidFrequency = errors.New("sweep: frequency must be positive")
	ErrInvalidDiameter  = errors.New("sweep: bubble diameter must be positive")
	ErrNoModels         = errors.New("sweep: model list is empty")
	ErrEnvironmentRange = errors.New("sweep: environment parameter out of range")
)

// Params describes one bubble target-strength sweep: a fixed bubble in a
// fixed seawater column, evaluated over a frequency grid by one or more
// scattering models.
type Params struct {
	// FrequenciesKHz is the acoustic frequency grid in kHz.
	FrequenciesKHz []float64

	// Diameter is the bubble diameter in m.
	Diameter float64

	// Models names the scattering models to evaluate, in output order.
	// Each name must be registered with the model package.
	Models []string

	// T, S and Z give the water temperature in degC, salinity in psu and
	// depth in m.
	T, S, Z float64

	// Gas selects the bubble gas. Nil means air.
	Gas bubble.Gas

	// Workers bounds the evaluation pool. Zero or negative means one
	// worker per CPU.
	Workers int

	// Logger receives diagnostic output. Nil means no logging.
	Logger *zap.Logger
}

// Validate checks p for structural errors. It resolves every model name
// against the registry, so a sweep with an unknown model fails here, before
// any evaluation starts.
func (p Params) Validate() error {
	if len(p.FrequenciesKHz) == 0 {
		return ErrNoFrequencies
	}
	for i, f := range p.FrequenciesKHz {
		if !(f > 0) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: frequencies[%d] = %g kHz", ErrInvalidFrequency, i, f)
		}
	}
	if !(p.Diameter > 0) || math.IsInf(p.Diameter, 0) {
		return fmt.Errorf("%w: got %g m", ErrInvalidDiameter, p.Diameter)
	}
	if len(p.Models) == 0 {
		return ErrNoModels
	}
	for _, name := range p.Models {
		if _, err := model.Lookup(name); err != nil {
			return err
		}
	}
	if math.IsNaN(p.T) || p.T < -4 || p.T > 45 {
		return fmt.Errorf("%w: temperature %g degC", ErrEnvironmentRange, p.T)
	}
	if math.IsNaN(p.S) || p.S < 0 || p.S > 45 {
		return fmt.Errorf("%w: salinity %g psu", ErrEnvironmentRange, p.S)
	}
	if math.IsNaN(p.Z) || p.Z < 0 || p.Z > 12000 {
		return fmt.Errorf("%w: depth %g m", ErrEnvironmentRange, p.Z)
	}
	return nil
}

func (p Params) gas() bubble.Gas {
	if p.Gas == nil {
		return bubble.Air{}
	}
	return p.Gas
}

func (p Params) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

// LogSpacedFrequencies returns n frequencies in kHz spaced logarithmically
// from loKHz to hiKHz inclusive.
func LogSpacedFrequencies(loKHz, hiKHz float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{loKHz}
	}
	return floats.LogSpan(make([]float64, n), loKHz, hiKHz)
}
