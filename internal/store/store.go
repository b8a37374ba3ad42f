// Package store provides the SQLite-backed constant store: pure-component
// records, Grunberg-Nissan interaction parameters, and Hansen target
// materials. The store is seeded from the builtin tables on first open and
// is read-only from the engine's point of view — evaluation results are
// never persisted.
package store

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/solventmix/internal/hansen"
	"github.com/talgya/solventmix/internal/solvent"
	"github.com/talgya/solventmix/internal/viscosity"
)

// DB wraps a SQLite connection holding the constant tables.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path. Use ":memory:"
// for an ephemeral store.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS components (
		name TEXT PRIMARY KEY,
		molar_mass REAL NOT NULL,
		tc REAL NOT NULL,
		pc REAL NOT NULL,
		omega REAL NOT NULL,
		zra REAL NOT NULL,
		rho_ref REAL NOT NULL,
		visc_ref REAL NOT NULL,
		sigma_ref REAL NOT NULL,
		parachor REAL NOT NULL,
		hsp_d REAL NOT NULL,
		hsp_p REAL NOT NULL,
		hsp_h REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS interaction_params (
		comp_a TEXT NOT NULL,
		comp_b TEXT NOT NULL,
		g REAL NOT NULL,
		PRIMARY KEY (comp_a, comp_b)
	);

	CREATE TABLE IF NOT EXISTS hansen_targets (
		name TEXT PRIMARY KEY,
		hsp_d REAL NOT NULL,
		hsp_p REAL NOT NULL,
		hsp_h REAL NOT NULL,
		radius REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SeedIfEmpty installs the builtin component and target tables when the
// store holds none, recording the seed source in meta.
func (db *DB) SeedIfEmpty() error {
	var count int
	if err := db.conn.Get(&count, "SELECT COUNT(*) FROM components"); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	builtin := solvent.Builtin()
	comps, err := builtin.Resolve(builtin.Names())
	if err != nil {
		return err
	}
	if err := db.SaveComponents(comps); err != nil {
		return fmt.Errorf("seed components: %w", err)
	}

	targets := hansen.BuiltinTargets()
	for _, name := range targets.Names() {
		t, err := targets.Lookup(name)
		if err != nil {
			return err
		}
		if err := db.SaveTarget(t); err != nil {
			return fmt.Errorf("seed targets: %w", err)
		}
	}

	if err := db.SetMeta("seed_source", "builtin"); err != nil {
		return err
	}
	slog.Info("constant store seeded", "components", len(comps), "targets", len(targets.Names()))
	return nil
}

// SaveComponents writes the component table (full replace).
func (db *DB) SaveComponents(comps []solvent.Component) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM components"); err != nil {
		return err
	}

	stmt, err := tx.PrepareNamed(`INSERT INTO components
		(name, molar_mass, tc, pc, omega, zra, rho_ref, visc_ref, sigma_ref, parachor, hsp_d, hsp_p, hsp_h)
		VALUES (:name, :molar_mass, :tc, :pc, :omega, :zra, :rho_ref, :visc_ref, :sigma_ref, :parachor, :hsp_d, :hsp_p, :hsp_h)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range comps {
		if err := c.Validate(); err != nil {
			return err
		}
		if _, err := stmt.Exec(c); err != nil {
			return fmt.Errorf("insert %s: %w", c.Name, err)
		}
	}
	return tx.Commit()
}

// LoadComponents reads the component table into a lookup database.
func (db *DB) LoadComponents() (*solvent.Database, error) {
	var comps []solvent.Component
	if err := db.conn.Select(&comps, "SELECT * FROM components ORDER BY name"); err != nil {
		return nil, fmt.Errorf("load components: %w", err)
	}
	return solvent.NewDatabase(comps)
}

// SaveInteractions writes the interaction-parameter table (full replace).
// Pairs are stored once, in normalized order, matching the engine's
// unordered-pair lookup.
func (db *DB) SaveInteractions(table *viscosity.InteractionTable) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM interaction_params"); err != nil {
		return err
	}
	for _, p := range table.Params() {
		if _, err := tx.Exec("INSERT INTO interaction_params (comp_a, comp_b, g) VALUES (?, ?, ?)",
			p.CompA, p.CompB, p.G); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadInteractions reads the interaction-parameter table.
func (db *DB) LoadInteractions() (*viscosity.InteractionTable, error) {
	var params []viscosity.Param
	if err := db.conn.Select(&params, "SELECT comp_a, comp_b, g FROM interaction_params"); err != nil {
		return nil, fmt.Errorf("load interactions: %w", err)
	}
	table := viscosity.NewInteractionTable()
	for _, p := range params {
		table.Set(p.CompA, p.CompB, p.G)
	}
	return table, nil
}

// SaveTarget upserts one Hansen target material.
func (db *DB) SaveTarget(t hansen.Target) error {
	_, err := db.conn.Exec(`INSERT INTO hansen_targets (name, hsp_d, hsp_p, hsp_h, radius)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET hsp_d=excluded.hsp_d, hsp_p=excluded.hsp_p,
			hsp_h=excluded.hsp_h, radius=excluded.radius`,
		t.Name, t.Center.D, t.Center.P, t.Center.H, t.Radius)
	return err
}

// LoadTargets reads the Hansen target table.
func (db *DB) LoadTargets() (*hansen.TargetSet, error) {
	rows, err := db.conn.Queryx("SELECT name, hsp_d, hsp_p, hsp_h, radius FROM hansen_targets ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("load targets: %w", err)
	}
	defer rows.Close()

	var targets []hansen.Target
	for rows.Next() {
		var t hansen.Target
		if err := rows.Scan(&t.Name, &t.Center.D, &t.Center.P, &t.Center.H, &t.Radius); err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return hansen.NewTargetSet(targets), nil
}

// SetMeta stores a key/value pair.
func (db *DB) SetMeta(key, value string) error {
	_, err := db.conn.Exec(`INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value=excluded.value`, key, value)
	return err
}

// GetMeta retrieves a value by key.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM meta WHERE key = ?", key)
	return value, err
}
