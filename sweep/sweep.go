package sweep

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mu-bwang/seaEchoTSCalculator/bubble"
	"github.com/mu-bwang/seaEchoTSCalculator/model"
	"github.com/mu-bwang/seaEchoTSCalculator/resonance"
	"github.com/mu-bwang/seaEchoTSCalculator/water"
)

// ResultSet holds the output of a completed frequency sweep. Slices are
// index-aligned with Params.FrequenciesKHz; the TS map is keyed by model
// name. A ResultSet is never partial: Run returns either a fully populated
// set or an error.
type ResultSet struct {
	Params Params

	// Water and Bubble are the derived states the sweep evaluated against.
	Water  water.SeawaterState
	Bubble bubble.State

	// Ka is the dimensionless wavenumber-radius product per frequency.
	Ka []float64

	// TS maps model name to target strength in dB per frequency.
	TS map[string][]float64
}

// Run evaluates every model in p.Models at every frequency in
// p.FrequenciesKHz and assembles the results in input order.
//
// Evaluations are distributed over a bounded worker pool; each task writes
// to its own index, so the output is bit-identical for any worker count.
// The first evaluation error cancels the remaining work and is returned;
// ctx cancellation aborts the sweep the same way.
func Run(ctx context.Context, p Params) (*ResultSet, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	w := water.New(p.T, p.Z, p.S)
	b := bubble.New(w, p.Diameter, p.gas())

	fns := make([]model.Func, len(p.Models))
	for i, name := range p.Models {
		fns[i], _ = model.Lookup(name) // validated above
	}

	rs := &ResultSet{
		Params: p,
		Water:  w,
		Bubble: b,
		Ka:     make([]float64, len(p.FrequenciesKHz)),
		TS:     make(map[string][]float64, len(p.Models)),
	}
	for _, name := range p.Models {
		rs.TS[name] = make([]float64, len(p.FrequenciesKHz))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers())

	radius := p.Diameter / 2
	for i, f := range p.FrequenciesKHz {
		i, f := i, f
		rs.Ka[i] = resonance.Ka(f, w.C, radius)

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for m, fn := range fns {
				ts, err := fn(f, w.C, w, b)
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

	warnLargeKa(p.logger(), p.FrequenciesKHz, rs.Ka)
	return rs, nil
}

func (p Params) workers() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return runtime.NumCPU()
}

// warnLargeKa reports frequencies where the small-bubble assumption ka <= 1
// no longer holds. The results stand, but the resonance correction is
// outside its derivation regime there.
func warnLargeKa(log *zap.Logger, fKHz, ka []float64) {
	n := 0
	first := 0.0
	for i, k := range ka {
		if k > 1 {
			if n == 0 {
				first = fKHz[i]
			}
			n++
		}
	}
	if n > 0 {
		log.Warn("small-bubble assumption ka <= 1 violated",
			zap.Int("frequencies", n),
			zap.Float64("first_kHz", first))
	}
}
