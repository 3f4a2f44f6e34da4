package sweep

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/mu-bwang/seaEchoTSCalculator/bubble"
	"github.com/mu-bwang/seaEchoTSCalculator/model"
	"github.com/mu-bwang/seaEchoTSCalculator/resonance"
	"github.com/mu-bwang/seaEchoTSCalculator/water"
)

var ErrNoDiameters = errors.New("sweep: diameter list is empty")

// DiameterParams describes the transposed sweep: a fixed sonar frequency
// evaluated against a grid of bubble diameters.
type DiameterParams struct {
	// FrequencyKHz is the fixed acoustic frequency in kHz.
	FrequencyKHz float64

	// Diameters is the bubble diameter grid in m.
	Diameters []float64

	// Models names the scattering models to evaluate.
	Models []string

	// T, S and Z give the water temperature in degC, salinity in psu and
	// depth in m.
	T, S, Z float64

	// Gas selects the bubble gas. Nil means air.
	Gas bubble.Gas

	// Workers bounds the evaluation pool. Zero or negative means one
	// worker per CPU.
	Workers int
}

// Validate checks p for structural errors before any evaluation.
func (p DiameterParams) Validate() error {
	if !(p.FrequencyKHz > 0) || math.IsInf(p.FrequencyKHz, 0) {
		return fmt.Errorf("%w: got %g kHz", ErrInvalidFrequency, p.FrequencyKHz)
	}
	if len(p.Diameters) == 0 {
		return ErrNoDiameters
	}
	for i, d := range p.Diameters {
		if !(d > 0) || math.IsInf(d, 0) {
			return fmt.Errorf("%w: diameters[%d] = %g m", ErrInvalidDiameter, i, d)
		}
	}
	fp := Params{
		FrequenciesKHz: []float64{p.FrequencyKHz},
		Diameter:       p.Diameters[0],
		Models:         p.Models,
		T:              p.T, S: p.S, Z: p.Z,
	}
	return fp.Validate()
}

// DiameterResultSet holds the output of a completed diameter sweep. Slices
// are index-aligned with DiameterParams.Diameters.
type DiameterResultSet struct {
	Params DiameterParams
	Water  water.SeawaterState

	// Ka is the dimensionless wavenumber-radius product per diameter.
	Ka []float64

	// TS maps model name to target strength in dB per diameter.
	TS map[string][]float64
}

// RunDiameters evaluates every model in p.Models for every bubble diameter
// in p.Diameters at the fixed frequency p.FrequencyKHz. The same worker
// pool, ordering and fail-fast rules as Run apply.
func RunDiameters(ctx context.Context, p DiameterParams) (*DiameterResultSet, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	w := water.New(p.T, p.Z, p.S)
	gas := p.Gas
	if gas == nil {
		gas = bubble.Air{}
	}

	fns := make([]model.Func, len(p.Models))
	for i, name := range p.Models {
		fns[i], _ = model.Lookup(name) // validated above
	}

	rs := &DiameterResultSet{
		Params: p,
		Water:  w,
		Ka:     make([]float64, len(p.Diameters)),
		TS:     make(map[string][]float64, len(p.Models)),
	}
	for _, name := range p.Models {
		rs.TS[name] = make([]float64, len(p.Diameters))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(Params{Workers: p.Workers}.workers())

	for i, d := range p.Diameters {
		i, d := i, d
		rs.Ka[i] = resonance.Ka(p.FrequencyKHz, w.C, d/2)

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b := bubble.New(w, d, gas)
			for m, fn := range fns {
				ts, err := fn(p.FrequencyKHz, w.C, w, b)
				if err != nil {
					return fmt.Errorf("sweep: %w", err)
				}
				rs.TS[p.Models[m]][i] = ts
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rs, nil
}
