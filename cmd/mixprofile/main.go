// Command mixprofile evaluates one solvent blend from the command line:
// it resolves the composition against the constant store, runs the selected
// models, prints the mixture profile, and optionally writes the CSV report.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/talgya/solventmix/internal/composition"
	"github.com/talgya/solventmix/internal/engine"
	"github.com/talgya/solventmix/internal/hansen"
	"github.com/talgya/solventmix/internal/physconst"
	"github.com/talgya/solventmix/internal/report"
	"github.com/talgya/solventmix/internal/solvent"
	"github.com/talgya/solventmix/internal/store"
	"github.com/talgya/solventmix/internal/viscosity"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	var (
		componentsArg = flag.String("components", "Water,Ethanol", "comma-separated component names")
		fractionsArg  = flag.String("fractions", "0.5,0.5", "comma-separated fractions matching -components")
		basisArg      = flag.String("basis", "volume", "fraction basis: mass | molar | volume")
		tempC         = flag.Float64("temp", 25.0, "process temperature in °C")
		pressureBar   = flag.Float64("pressure", 0, "pressure in bar (0 = 1 atm; PR-Peneloux only)")
		densityArg    = flag.String("density", "rackett", "density model: rackett | costald | pr-peneloux | ideal")
		viscosityArg  = flag.String("viscosity", "arrhenius", "viscosity model: arrhenius | grunberg-nissan | kendall-monroe | linear")
		tensionArg    = flag.String("tension", "macleod-sugden", "surface tension model: macleod-sugden | sprow-prausnitz | linear-volumetric | linear-molar")
		gijArg        = flag.String("gij", "", "Grunberg-Nissan pairs, e.g. \"Water:Ethanol=0.1,Ethanol:Toluene=-0.2\"")
		targetArg     = flag.String("target", "", "Hansen target material to score against")
		dbPath        = flag.String("db", "", "constant store path (empty = builtin tables only)")
		reportPath    = flag.String("report", "", "write the CSV technical report to this path")
		listFlag      = flag.Bool("list", false, "list available components and targets, then exit")
	)
	flag.Parse()

	db, targets, closeStore := openTables(*dbPath)
	defer closeStore()

	if *listFlag {
		fmt.Println("Components:")
		for _, name := range db.Names() {
			c, _ := db.Lookup(name)
			fmt.Printf("  %-16s MW %7.3f g/mol  rho %7.1f kg/m3  mu %5.2f cP  sigma %5.1f mN/m\n",
				c.Name, c.MolarMass, c.RefDensity, c.RefVisc, c.RefTension)
		}
		fmt.Println("Targets:")
		for _, name := range targets.Names() {
			fmt.Printf("  %s\n", name)
		}
		return
	}

	names := splitList(*componentsArg)
	fractions, err := parseFractions(*fractionsArg)
	if err != nil {
		fatal("parse fractions", err)
	}

	interactions, err := parseInteractions(*gijArg)
	if err != nil {
		fatal("parse -gij", err)
	}

	req := engine.EvalRequest{
		Components:   names,
		Fractions:    fractions,
		Basis:        composition.Basis(*basisArg),
		TempK:        physconst.CelsiusToKelvin(*tempC),
		PressureBar:  *pressureBar,
		Density:      engine.DensityModel(*densityArg),
		Viscosity:    engine.ViscosityModel(*viscosityArg),
		Tension:      engine.TensionModel(*tensionArg),
		Interactions: interactions,
		Target:       *targetArg,
	}

	eng := engine.New(db, targets)
	profile, err := eng.Evaluate(req)
	if err != nil {
		fatal("evaluate", err)
	}

	printProfile(profile, *tempC)

	if *reportPath != "" {
		rec := report.Build(profile)
		f, err := os.Create(*reportPath)
		if err != nil {
			fatal("create report", err)
		}
		defer f.Close()
		if err := rec.WriteCSV(f); err != nil {
			fatal("write report", err)
		}
		fmt.Printf("\nReport %s written to %s\n", rec.RunID, *reportPath)
	}
}

// openTables loads the constant tables, from SQLite when a path is given
// (seeding the builtin tables on first open) or straight from the builtins.
func openTables(path string) (*solvent.Database, *hansen.TargetSet, func()) {
	if path == "" {
		return solvent.Builtin(), hansen.BuiltinTargets(), func() {}
	}

	st, err := store.Open(path)
	if err != nil {
		fatal("open store", err)
	}
	if err := st.SeedIfEmpty(); err != nil {
		fatal("seed store", err)
	}
	db, err := st.LoadComponents()
	if err != nil {
		fatal("load components", err)
	}
	targets, err := st.LoadTargets()
	if err != nil {
		fatal("load targets", err)
	}
	return db, targets, func() { st.Close() }
}

func printProfile(p *engine.Profile, tempC float64) {
	fmt.Printf("Mixture profile at %.1f °C (%.2f K), %.5f bar\n", tempC, p.TempK, p.PressureBar)
	fmt.Println()
	fmt.Printf("  %-16s %-18s %s\n", "PROPERTY", "MODEL", "RESULT")
	fmt.Printf("  %-16s %-18s %s\n", "Density", p.Density.Model, formatResult(p.Density, 2))
	fmt.Printf("  %-16s %-18s %s\n", "Viscosity", p.Viscosity.Model, formatResult(p.Viscosity, 3))
	fmt.Printf("  %-16s %-18s %s\n", "Surface tension", p.Tension.Model, formatResult(p.Tension, 2))
	fmt.Printf("  %-16s %-18s dD %.2f  dP %.2f  dH %.2f MPa^0.5\n",
		"Hansen", "volumetric", p.Hansen.D, p.Hansen.P, p.Hansen.H)

	if p.Score != nil {
		verdict := "compatible"
		if !p.Score.Compatible {
			verdict = "incompatible"
		}
		fmt.Printf("  %-16s %-18s RED %.3f (%s)\n", "Screening", p.Score.Target, p.Score.RED, verdict)
	}

	fmt.Println()
	fmt.Printf("  %-16s %10s %10s %10s\n", "COMPONENT", "molar x", "mass w", "vol phi")
	for i, name := range p.Components {
		fmt.Printf("  %-16s %10.4f %10.4f %10.4f\n",
			name, p.Composition.Molar[i], p.Composition.Mass[i], p.Composition.Volume[i])
	}
}

// formatResult renders a property value with its unit, or the failure cause
// when the model found no liquid state.
func formatResult(res engine.PropertyResult, digits int) string {
	if !res.OK {
		return "N/A (" + res.Cause + ")"
	}
	s := humanize.CommafWithDigits(res.Value, digits) + " " + res.Unit
	if res.Fallback {
		s += " (linear fallback)"
	}
	return s
}

func splitList(arg string) []string {
	parts := strings.Split(arg, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseFractions(arg string) ([]float64, error) {
	parts := splitList(arg)
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("fraction %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseInteractions parses "A:B=g,..." into an interaction table.
func parseInteractions(arg string) (*viscosity.InteractionTable, error) {
	if arg == "" {
		return nil, nil
	}
	table := viscosity.NewInteractionTable()
	for _, entry := range splitList(arg) {
		pair, gStr, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("entry %q: want A:B=g", entry)
		}
		a, b, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("entry %q: want A:B=g", entry)
		}
		g, err := strconv.ParseFloat(strings.TrimSpace(gStr), 64)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", entry, err)
		}
		table.Set(strings.TrimSpace(a), strings.TrimSpace(b), g)
	}
	return table, nil
}

func fatal(what string, err error) {
	slog.Error(what+" failed", "error", err)
	os.Exit(1)
}
