package sweep

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/mu-bwang/seaEchoTSCalculator/bubble"
	"github.com/mu-bwang/seaEchoTSCalculator/internal/testutil"
	"github.com/mu-bwang/seaEchoTSCalculator/model"
	"github.com/mu-bwang/seaEchoTSCalculator/water"
)

func testParams() Params {
	return Params{
		FrequenciesKHz: LogSpacedFrequencies(1, 1200, 64),
		Diameter:       2e-3,
		Models:         []string{"Medwin_Clay", "Breathing"},
		T:              20, S: 0, Z: 10,
	}
}

func TestRunMatchesSerialEvaluation(t *testing.T) {
	p := testParams()

	rs, err := Run(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}

	w := water.New(p.T, p.Z, p.S)
	b := bubble.NewAir(w, p.Diameter)
	for _, name := range p.Models {
		fn, err := model.Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		want := make([]float64, len(p.FrequenciesKHz))
		for i, f := range p.FrequenciesKHz {
			if want[i], err = fn(f, w.C, w, b); err != nil {
				t.Fatal(err)
			}
		}
		d, err := testutil.MaxAbsDiff(rs.TS[name], want)
		if err != nil {
			t.Fatal(err)
		}
		if d != 0 {
			t.Fatalf("%s deviates from serial evaluation by %g", name, d)
		}
	}
}

func TestRunDeterministicAcrossWorkerCounts(t *testing.T) {
	p := testParams()

	p.Workers = 1
	serial, err := Run(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}

	for _, workers := range []int{2, 4, 16} {
		p.Workers = workers
		rs, err := Run(context.Background(), p)
		if err != nil {
			t.Fatal(err)
		}
		// Bit-identical, not merely close: eps 0.
		for _, name := range p.Models {
			testutil.RequireSliceNearlyEqual(t, rs.TS[name], serial.TS[name], 0)
		}
		testutil.RequireSliceNearlyEqual(t, rs.Ka, serial.Ka, 0)
	}
}

func TestRunOrderPreserved(t *testing.T) {
	rs, err := Run(context.Background(), testParams())
	if err != nil {
		t.Fatal(err)
	}
	// The frequency grid is ascending, so ka must be too.
	for i := 1; i < len(rs.Ka); i++ {
		if rs.Ka[i] <= rs.Ka[i-1] {
			t.Fatalf("ka[%d] = %v <= ka[%d] = %v, output order broken",
				i, rs.Ka[i], i-1, rs.Ka[i-1])
		}
	}
}

func TestRunUnknownModelRejectedUpFront(t *testing.T) {
	p := testParams()
	p.Models = []string{"Medwin_Clay", "No_Such_Model"}

	rs, err := Run(context.Background(), p)
	if !errors.Is(err, model.ErrUnknownModel) {
		t.Fatalf("err = %v, want ErrUnknownModel", err)
	}
	if rs != nil {
		t.Fatal("got a result set alongside the error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Params)
		want   error
	}{
		{"empty frequencies", func(p *Params) { p.FrequenciesKHz = nil }, ErrNoFrequencies},
		{"zero frequency", func(p *Params) { p.FrequenciesKHz[3] = 0 }, ErrInvalidFrequency},
		{"negative frequency", func(p *Params) { p.FrequenciesKHz[0] = -5 }, ErrInvalidFrequency},
		{"NaN frequency", func(p *Params) { p.FrequenciesKHz[0] = math.NaN() }, ErrInvalidFrequency},
		{"zero diameter", func(p *Params) { p.Diameter = 0 }, ErrInvalidDiameter},
		{"no models", func(p *Params) { p.Models = nil }, ErrNoModels},
		{"temperature", func(p *Params) { p.T = 80 }, ErrEnvironmentRange},
		{"salinity", func(p *Params) { p.S = -1 }, ErrEnvironmentRange},
		{"depth", func(p *Params) { p.Z = 20000 }, ErrEnvironmentRange},
		{"NaN temperature", func(p *Params) { p.T = math.NaN() }, ErrEnvironmentRange},
		{"NaN salinity", func(p *Params) { p.S = math.NaN() }, ErrEnvironmentRange},
		{"NaN depth", func(p *Params) { p.Z = math.NaN() }, ErrEnvironmentRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := testParams()
			tc.mutate(&p)
			if err := p.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}

	if err := testParams().Validate(); err != nil {
		t.Errorf("valid params rejected: %v", err)
	}
}

func TestRunFailFast(t *testing.T) {
	sentinel := errors.New("deliberate model failure")
	model.Register("Always_Failing", func(fKHz, c float64, w water.SeawaterState, b bubble.State) (float64, error) {
		return 0, sentinel
	})

	p := testParams()
	p.Models = append(p.Models, "Always_Failing")

	rs, err := Run(context.Background(), p)
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want the model failure", err)
	}
	if rs != nil {
		t.Fatal("got a partial result set, want none")
	}
}

func TestRunContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rs, err := Run(ctx, testParams())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if rs != nil {
		t.Fatal("got a result set from a cancelled sweep")
	}
}

func TestLogSpacedFrequencies(t *testing.T) {
	got := LogSpacedFrequencies(1, 1000, 4)
	want := []float64{1, 10, 100, 1000}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i])/want[i] > 1e-12 {
			t.Errorf("freq[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if got := LogSpacedFrequencies(5, 50, 1); len(got) != 1 || got[0] != 5 {
		t.Errorf("single point: %v, want [5]", got)
	}
	if got := LogSpacedFrequencies(5, 50, 0); got != nil {
		t.Errorf("n=0: %v, want nil", got)
	}
}

func TestRunDiameters(t *testing.T) {
	p := DiameterParams{
		FrequencyKHz: 120,
		Diameters:    []float64{0.5e-3, 1e-3, 2e-3, 4e-3},
		Models:       []string{"Medwin_Clay"},
		T:            20, S: 0, Z: 10,
	}

	rs, err := RunDiameters(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}

	w := water.New(p.T, p.Z, p.S)
	for i, d := range p.Diameters {
		b := bubble.NewAir(w, d)
		want, err := model.MedwinClayTS(p.FrequencyKHz, w.C, w, b)
		if err != nil {
			t.Fatal(err)
		}
		if got := rs.TS["Medwin_Clay"][i]; got != want {
			t.Fatalf("TS[%d] = %v, want serial value %v", i, got, want)
		}
	}

	// Diameters ascend, so ka must too.
	for i := 1; i < len(rs.Ka); i++ {
		if rs.Ka[i] <= rs.Ka[i-1] {
			t.Fatalf("ka not aligned with the diameter grid at %d", i)
		}
	}
}

func TestRunDiametersValidate(t *testing.T) {
	p := DiameterParams{
		FrequencyKHz: 120,
		Models:       []string{"Medwin_Clay"},
		T:            20, S: 0, Z: 10,
	}
	if _, err := RunDiameters(context.Background(), p); !errors.Is(err, ErrNoDiameters) {
		t.Fatalf("err = %v, want ErrNoDiameters", err)
	}

	p.Diameters = []float64{1e-3, -2e-3}
	if _, err := RunDiameters(context.Background(), p); !errors.Is(err, ErrInvalidDiameter) {
		t.Fatalf("err = %v, want ErrInvalidDiameter", err)
	}
}

func TestRows(t *testing.T) {
	p := testParams()
	p.FrequenciesKHz = p.FrequenciesKHz[:8]

	rs, err := Run(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}

	rows := rs.Rows()
	if len(rows) != len(p.Models)*len(p.FrequenciesKHz) {
		t.Fatalf("len(rows) = %d, want %d", len(rows), len(p.Models)*len(p.FrequenciesKHz))
	}

	// Grouped by model in input order, frequencies in input order within.
	for m, name := range p.Models {
		for i, f := range p.FrequenciesKHz {
			row := rows[m*len(p.FrequenciesKHz)+i]
			if row.Model != name || row.FrequencyKHz != f {
				t.Fatalf("row %d = (%s, %g), want (%s, %g)",
					m*len(p.FrequenciesKHz)+i, row.Model, row.FrequencyKHz, name, f)
			}
			if row.TS != rs.TS[name][i] {
				t.Fatalf("row TS %v does not match result set %v", row.TS, rs.TS[name][i])
			}
			if row.Diameter != p.Diameter || row.T != p.T || row.S != p.S || row.Z != p.Z {
				t.Fatal("row does not echo the sweep inputs")
			}
		}
	}

	if got, want := len(rows[0].Record()), len(Header()); got != want {
		t.Fatalf("record has %d fields, header has %d", got, want)
	}
}
