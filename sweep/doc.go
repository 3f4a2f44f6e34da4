// Package sweep coordinates the evaluation of scattering models across a
// parameter sweep.
//
// A sweep derives the seawater and bubble states once, then evaluates every
// requested model at every frequency on a bounded worker pool. Results are
// tagged with their input index and written into preallocated slices, so the
// assembled ResultSet is index-aligned with the input sequence and identical
// across runs regardless of worker count or completion order.
//
// A sweep either completes fully or fails fully: the first evaluation error
// aborts the whole run and is returned to the caller; no partial result set
// is ever produced. Structural errors (empty frequency list, unknown model
// name, out-of-range environment) are rejected by Validate before any
// numeric evaluation begins.
//
//	p := sweep.Params{
//	    FrequenciesKHz: sweep.LogSpacedFrequencies(1, 1200, 2000),
//	    Diameter:       2e-3,
//	    Models:         []string{"Medwin_Clay", "Modal"},
//	    T:              20, S: 0, Z: 10,
//	}
//	rs, err := sweep.Run(context.Background(), p)
package sweep
