package generators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrik-rangel/hotel-data-generator/internal/domain/entities"
)

func TestBuildSnapshot_SeedReproducesContent(t *testing.T) {
	cfg := entities.DefaultHotelConfig()
	opts := Options{OperationDays: 7, Adjustments: 500, Seed: 99}

	a := BuildSnapshot(cfg, opts, fixedNow)
	b := BuildSnapshot(cfg, opts, fixedNow)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, int64(99), a.Seed)
	assert.Equal(t, a.Devices, b.Devices)
	assert.Equal(t, a.Rooms, b.Rooms)
	assert.Equal(t, a.Operations, b.Operations)
	assert.Equal(t, a.Adjustments, b.Adjustments)
}

func TestBuildSnapshot_ManifestCounts(t *testing.T) {
	snap := BuildSnapshot(entities.DefaultHotelConfig(), Options{OperationDays: 10, Adjustments: 300}, fixedNow)

	assert.NotZero(t, snap.Seed)
	m := snap.Manifest()
	require.Len(t, m.Counts, len(entities.AllCollections))
	assert.Equal(t, 1134, m.Counts[entities.CollectionDevices])
	assert.Equal(t, 400, m.Counts[entities.CollectionRooms])
	assert.Equal(t, 10, m.Counts[entities.CollectionOperations])
	assert.Equal(t, 300, m.Counts[entities.CollectionAdjustments])
	assert.Equal(t, len(snap.FaultWarnings), m.Counts[entities.CollectionFaultWarnings])
	assert.NotZero(t, m.Counts[entities.CollectionRectificationItems])
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 30, opts.OperationDays)
	assert.Equal(t, 20000, opts.Adjustments)
	assert.Zero(t, opts.Seed)
}
