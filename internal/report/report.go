// Package report turns an evaluated mixture profile into a flat, ordered
// key/value record and serializes it as CSV — the technical-report export
// a formulation tool attaches to a trial-batch request.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/talgya/solventmix/internal/engine"
)

// Row is one parameter/value pair of the flat record.
type Row struct {
	Parameter string `json:"parameter"`
	Value     string `json:"value"`
}

// Record is the exportable report: input echo first, results after,
// composition detail last. Order is stable.
type Record struct {
	RunID     string    `json:"run_id"`
	Generated time.Time `json:"generated"`
	Rows      []Row     `json:"rows"`
}

// Build assembles the record for one profile.
func Build(profile *engine.Profile) *Record {
	rec := &Record{
		RunID:     uuid.NewString(),
		Generated: time.Now().UTC(),
	}

	rec.add("Temperature (K)", "%.2f", profile.TempK)
	rec.add("Pressure (bar)", "%.5f", profile.PressureBar)

	rec.Rows = append(rec.Rows,
		Row{"Density Model", profile.Density.Model},
		Row{"Viscosity Model", profile.Viscosity.Model},
		Row{"Surface Tension Model", profile.Tension.Model},
		Row{"Result: Density (kg/m3)", formatValue(profile.Density)},
		Row{"Result: Viscosity (cP)", formatValue(profile.Viscosity)},
		Row{"Result: Surface Tension (mN/m)", formatValue(profile.Tension)},
	)

	rec.add("HSP dD", "%.2f", profile.Hansen.D)
	rec.add("HSP dP", "%.2f", profile.Hansen.P)
	rec.add("HSP dH", "%.2f", profile.Hansen.H)

	if profile.Score != nil {
		rec.Rows = append(rec.Rows, Row{"Screening Target", profile.Score.Target})
		rec.add("RED", "%.3f", profile.Score.RED)
		rec.Rows = append(rec.Rows, Row{"Compatible", fmt.Sprintf("%t", profile.Score.Compatible)})
	}

	for i, name := range profile.Components {
		rec.add(name+" molar (x)", "%.4f", profile.Composition.Molar[i])
		rec.add(name+" mass (w)", "%.4f", profile.Composition.Mass[i])
		rec.add(name+" volume (phi)", "%.4f", profile.Composition.Volume[i])
	}
	return rec
}

// WriteCSV serializes the record as a two-column CSV with a header and the
// run identity as leading rows.
func (r *Record) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Parameter", "Value"}); err != nil {
		return err
	}
	if err := cw.Write([]string{"Run ID", r.RunID}); err != nil {
		return err
	}
	if err := cw.Write([]string{"Generated", r.Generated.Format(time.RFC3339)}); err != nil {
		return err
	}
	for _, row := range r.Rows {
		if err := cw.Write([]string{row.Parameter, row.Value}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (r *Record) add(key, format string, value float64) {
	r.Rows = append(r.Rows, Row{key, fmt.Sprintf(format, value)})
}

// formatValue renders a property result, marking unavailable values with
// their cause instead of printing NaN.
func formatValue(p engine.PropertyResult) string {
	if !p.OK || math.IsNaN(p.Value) {
		if p.Cause != "" {
			return "N/A (" + p.Cause + ")"
		}
		return "N/A"
	}
	s := fmt.Sprintf("%.4f", p.Value)
	if p.Fallback {
		s += " (linear fallback)"
	}
	return s
}
