package sweep

import "strconv"

// Row is one flat export record: a single (model, frequency) evaluation
// together with the inputs that produced it, so a dump of rows is
// self-describing without the originating Params.
type Row struct {
	FrequencyKHz float64
	TS           float64
	Model        string
	Diameter     float64
	T, S, Z      float64
}

// Header returns the column names matching Row.Record, suitable as the
// first record of a CSV dump.
func Header() []string {
	return []string{
		"frequency_kHz", "TS_dB", "model",
		"bubble_diameter_m", "temperature_C", "salinity_psu", "depth_m",
	}
}

// Record renders the row as CSV fields in Header order.
func (r Row) Record() []string {
	return []string{
		strconv.FormatFloat(r.FrequencyKHz, 'g', -1, 64),
		strconv.FormatFloat(r.TS, 'g', -1, 64),
		r.Model,
		strconv.FormatFloat(r.Diameter, 'g', -1, 64),
		strconv.FormatFloat(r.T, 'g', -1, 64),
		strconv.FormatFloat(r.S, 'g', -1, 64),
		strconv.FormatFloat(r.Z, 'g', -1, 64),
	}
}

// Rows flattens the result set into export rows, grouped by model in
// Params.Models order, frequencies in input order within each group.
func (rs *ResultSet) Rows() []Row {
	rows := make([]Row, 0, len(rs.Params.Models)*len(rs.Params.FrequenciesKHz))
	for _, name := range rs.Params.Models {
		ts := rs.TS[name]
		for i, f := range rs.Params.FrequenciesKHz {
			rows = append(rows, Row{
				FrequencyKHz: f,
				TS:           ts[i],
				Model:        name,
				Diameter:     rs.Params.Diameter,
				T:            rs.Params.T,
				S:            rs.Params.S,
				Z:            rs.Params.Z,
			})
		}
	}
	return rows
}

// Rows flattens the diameter sweep the same way, one row per
// (model, diameter) pair at the fixed frequency.
func (rs *DiameterResultSet) Rows() []Row {
	rows := make([]Row, 0, len(rs.Params.Models)*len(rs.Params.Diameters))
	for _, name := range rs.Params.Models {
		ts := rs.TS[name]
		for i, d := range rs.Params.Diameters {
			rows = append(rows, Row{
				FrequencyKHz: rs.Params.FrequencyKHz,
				TS:           ts[i],
				Model:        name,
				Diameter:     d,
				T:            rs.Params.T,
				S:            rs.Params.S,
				Z:            rs.Params.Z,
			})
		}
	}
	return rows
}
