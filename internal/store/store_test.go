package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/solventmix/internal/hansen"
	"github.com/talgya/solventmix/internal/solvent"
	"github.com/talgya/solventmix/internal/store"
	"github.com/talgya/solventmix/internal/viscosity"
)

func openMemory(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// TestSeedAndLoad: a fresh store seeds itself from the builtin tables and
// loads them back unchanged.
func TestSeedAndLoad(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, db.SeedIfEmpty())

	loaded, err := db.LoadComponents()
	require.NoError(t, err)
	builtin := solvent.Builtin()
	assert.Equal(t, builtin.Len(), loaded.Len())
	assert.Equal(t, builtin.Names(), loaded.Names())

	want, err := builtin.Lookup("Ethanol")
	require.NoError(t, err)
	got, err := loaded.Lookup("ethanol")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	targets, err := db.LoadTargets()
	require.NoError(t, err)
	assert.Equal(t, hansen.BuiltinTargets().Names(), targets.Names())

	source, err := db.GetMeta("seed_source")
	require.NoError(t, err)
	assert.Equal(t, "builtin", source)
}

// TestSeedIfEmpty_Idempotent: seeding twice leaves the store unchanged.
func TestSeedIfEmpty_Idempotent(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, db.SeedIfEmpty())
	require.NoError(t, db.SeedIfEmpty())

	loaded, err := db.LoadComponents()
	require.NoError(t, err)
	assert.Equal(t, solvent.Builtin().Len(), loaded.Len())
}

// TestSaveComponents_Replaces: a save is a full replace, not an append.
func TestSaveComponents_Replaces(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, db.SeedIfEmpty())

	builtin := solvent.Builtin()
	water, err := builtin.Lookup("Water")
	require.NoError(t, err)
	require.NoError(t, db.SaveComponents([]solvent.Component{water}))

	loaded, err := db.LoadComponents()
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())
}

// TestSaveComponents_RejectsInvalid: a component with broken constants never
// reaches the table, and the transaction rolls back.
func TestSaveComponents_RejectsInvalid(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, db.SeedIfEmpty())

	bad := solvent.Component{Name: "Broken", MolarMass: -1}
	err := db.SaveComponents([]solvent.Component{bad})
	require.ErrorIs(t, err, solvent.ErrInvalidComponent)

	loaded, err := db.LoadComponents()
	require.NoError(t, err)
	assert.Equal(t, solvent.Builtin().Len(), loaded.Len(), "rolled back")
}

// TestInteractionRoundTrip persists a Grunberg-Nissan table and reads it
// back with symmetric lookup intact.
func TestInteractionRoundTrip(t *testing.T) {
	db := openMemory(t)

	table := viscosity.NewInteractionTable()
	table.Set("Water", "Ethanol", 0.35)
	table.Set("acetone", "Toluene", -0.12)
	require.NoError(t, db.SaveInteractions(table))

	loaded, err := db.LoadInteractions()
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Len())
	assert.InDelta(t, 0.35, loaded.Get("Ethanol", "Water"), 1e-12)
	assert.InDelta(t, -0.12, loaded.Get("TOLUENE", "Acetone"), 1e-12)
	assert.Zero(t, loaded.Get("Water", "Toluene"))
}

// TestSaveTarget_Upserts: saving an existing target overwrites it in place.
func TestSaveTarget_Upserts(t *testing.T) {
	db := openMemory(t)

	target := hansen.Target{
		Name:   "Test Resin",
		Center: hansen.Params{D: 17.0, P: 9.0, H: 7.0},
		Radius: 6.0,
	}
	require.NoError(t, db.SaveTarget(target))

	target.Radius = 8.5
	require.NoError(t, db.SaveTarget(target))

	targets, err := db.LoadTargets()
	require.NoError(t, err)
	got, err := targets.Lookup("Test Resin")
	require.NoError(t, err)
	assert.InDelta(t, 8.5, got.Radius, 1e-12)
}

// TestMeta round-trips a key and overwrites on conflict.
func TestMeta(t *testing.T) {
	db := openMemory(t)

	require.NoError(t, db.SetMeta("schema_note", "v1"))
	require.NoError(t, db.SetMeta("schema_note", "v2"))

	value, err := db.GetMeta("schema_note")
	require.NoError(t, err)
	assert.Equal(t, "v2", value)
}
