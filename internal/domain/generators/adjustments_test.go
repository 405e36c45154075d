package generators

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrik-rangel/hotel-data-generator/internal/domain/entities"
)

func parseStamp(t *testing.T, ts string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation(entities.TimestampLayout, ts, time.UTC)
	require.NoError(t, err)
	return parsed
}

func TestGenerateDeviceAdjustments_ZeroCount(t *testing.T) {
	adjs := GenerateDeviceAdjustments(entities.DefaultHotelConfig(), 0, fixedNow, NewRand(1))
	assert.NotNil(t, adjs)
	assert.Empty(t, adjs)
}

func TestGenerateDeviceAdjustments_Invariants(t *testing.T) {
	const count = 3000
	adjs := GenerateDeviceAdjustments(entities.DefaultHotelConfig(), count, fixedNow, NewRand(2))

	require.Len(t, adjs, count)
	assert.True(t, sort.SliceIsSorted(adjs, func(i, j int) bool {
		return adjs[i].Timestamp > adjs[j].Timestamp
	}), "esperado ordenado do mais recente para o mais antigo")

	windowStart := fixedNow.Add(-AdjustmentWindow)
	ids := make(map[string]bool, count)
	for _, a := range adjs {
		ts := parseStamp(t, a.Timestamp)
		assert.False(t, ts.After(fixedNow), a.Timestamp)
		assert.False(t, ts.Before(windowStart), a.Timestamp)

		assert.Len(t, a.ID, 6)
		assert.False(t, ids[a.ID], "id duplicado %s", a.ID)
		ids[a.ID] = true

		switch a.AdjustmentType {
		case entities.AdjustTemperature:
			assert.Equal(t, "AC-"+a.RoomNumber, a.DeviceID)
			assert.GreaterOrEqual(t, a.NewValue, TemperatureMin)
			assert.LessOrEqual(t, a.NewValue, TemperatureMax)
			assert.LessOrEqual(t, math.Abs(a.NewValue-a.OldValue), 3.0+1e-9)
			assert.InDelta(t, round((a.OldValue-a.NewValue)*0.8, 2), a.EnergyImpact, 1e-9)
			assert.Contains(t, temperatureReasons, a.Reason)
		case entities.AdjustBrightness:
			assert.Equal(t, "LIGHT-"+a.RoomNumber, a.DeviceID)
			assert.GreaterOrEqual(t, a.NewValue, 0.0)
			assert.LessOrEqual(t, a.NewValue, 100.0)
			assert.LessOrEqual(t, math.Abs(a.NewValue-a.OldValue), 30.0)
			assert.InDelta(t, round((a.NewValue-a.OldValue)*0.02, 2), a.EnergyImpact, 1e-9)
			assert.Contains(t, brightnessReasons, a.Reason)
		default:
			t.Fatalf("tipo inesperado %s", a.AdjustmentType)
		}
		assert.Contains(t, []entities.Actor{entities.ActorGuest, entities.ActorStaff, entities.ActorAutoSystem}, a.AdjustedBy)
	}
}

func TestGenerateDeviceAdjustments_SortedForAnyCount(t *testing.T) {
	for _, n := range []int{1, 7, 30, 250, 5000} {
		adjs := GenerateDeviceAdjustments(entities.DefaultHotelConfig(), n, fixedNow, NewRand(int64(n)))
		assert.LessOrEqual(t, len(adjs), n)
		assert.True(t, sort.SliceIsSorted(adjs, func(i, j int) bool {
			return adjs[i].Timestamp > adjs[j].Timestamp
		}), "n=%d", n)
	}
}

func TestGenerateDeviceAdjustments_HighTierBias(t *testing.T) {
	cfg := entities.DefaultHotelConfig()
	adjs := GenerateDeviceAdjustments(cfg, 3000, fixedNow, NewRand(3))

	high := 0
	for _, a := range adjs {
		floor, err := strconv.Atoi(a.RoomNumber[:2])
		require.NoError(t, err)
		require.GreaterOrEqual(t, floor, 1)
		require.LessOrEqual(t, floor, cfg.Floors)
		if floor >= cfg.SuiteFromFloor {
			high++
		}
	}
	// 0.4 direto + 0.6 * 5/20 pelo sorteio uniforme
	assert.InDelta(t, 0.55, float64(high)/float64(len(adjs)), 0.07)
}

func TestGenerateDeviceAdjustments_NightFavoursAutoTemperature(t *testing.T) {
	adjs := GenerateDeviceAdjustments(entities.DefaultHotelConfig(), 3000, fixedNow, NewRand(4))

	var night, nightTemp, nightAuto int
	for _, a := range adjs {
		hour := parseStamp(t, a.Timestamp).Hour()
		if hour >= 23 || hour < 5 {
			night++
			if a.AdjustmentType == entities.AdjustTemperature {
				nightTemp++
			}
			if a.AdjustedBy == entities.ActorAutoSystem {
				nightAuto++
			}
		}
	}
	require.Greater(t, night, 50)
	assert.Greater(t, float64(nightTemp)/float64(night), 0.7)
	assert.Greater(t, float64(nightAuto)/float64(night), 0.5)
}

func TestGenerateDeviceAdjustments_DensityFollowsHourWeights(t *testing.T) {
	adjs := GenerateDeviceAdjustments(entities.DefaultHotelConfig(), 5000, fixedNow, NewRand(5))

	var byHour [24]int
	for _, a := range adjs {
		byHour[parseStamp(t, a.Timestamp).Hour()]++
	}
	assert.Greater(t, byHour[8], byHour[3])
	assert.Greater(t, byHour[18], byHour[2])
}

func TestGenerateDeviceAdjustments_SingleEvent(t *testing.T) {
	cfg := entities.DefaultHotelConfig()
	cfg.Floors = 1
	cfg.RoomsPerFloor = 1

	// passo de 30 dias: apenas os ticks de now e now-30d; meio-dia sempre gera
	adjs := GenerateDeviceAdjustments(cfg, 1, fixedNow, NewRand(6))
	require.Len(t, adjs, 1)
	assert.Equal(t, "000001", adjs[0].ID)
	assert.Equal(t, "0101", adjs[0].RoomNumber)
	assert.True(t, strings.HasSuffix(adjs[0].DeviceID, "-0101"))
}

func TestHourWeight(t *testing.T) {
	assert.Equal(t, 0.3, HourWeight(0))
	assert.Equal(t, 0.3, HourWeight(23))
	assert.Equal(t, 0.3, HourWeight(-1))
	assert.Equal(t, 2.5, HourWeight(7))
	assert.Equal(t, 2.5, HourWeight(8))
	assert.Equal(t, 2.2, HourWeight(17))
	assert.Equal(t, 2.2, HourWeight(18))
}

func TestTickAccepted_WeightAtLeastOneAlwaysTicks(t *testing.T) {
	rng := NewRand(7)
	for i := 0; i < 1000; i++ {
		require.True(t, tickAccepted(rng, 1.0))
		require.True(t, tickAccepted(rng, 2.5))
		require.False(t, tickAccepted(rng, 0))
	}
}

func TestGenerateDeviceAdjustments_JitterStaysInTickHour(t *testing.T) {
	// passo de um dia: todos os ticks caem às 03:30, período noturno
	now := time.Date(2024, 3, 15, 3, 30, 0, 0, time.UTC)
	windowStart := now.Add(-AdjustmentWindow)

	byActor := map[entities.Actor]int{}
	total, temperature := 0, 0
	for seed := int64(1); seed <= 40; seed++ {
		for _, a := range GenerateDeviceAdjustments(entities.DefaultHotelConfig(), 30, now, NewRand(seed)) {
			ts := parseStamp(t, a.Timestamp)
			require.Equal(t, 3, ts.Hour(), a.Timestamp)
			require.False(t, ts.Before(windowStart), a.Timestamp)
			require.False(t, ts.After(now), a.Timestamp)

			byActor[a.AdjustedBy]++
			total++
			if a.AdjustmentType == entities.AdjustTemperature {
				temperature++
			}
		}
	}

	require.Greater(t, total, 200)
	assert.Less(t, float64(byActor[entities.ActorStaff])/float64(total), 0.2)
	assert.Greater(t, float64(byActor[entities.ActorAutoSystem])/float64(total), 0.55)
	assert.Greater(t, float64(temperature)/float64(total), 0.7)
}

func TestGenerateDeviceAdjustments_WindowRunsOutBeforeCount(t *testing.T) {
	// 31 ticks às 03:00 com peso 0.3: em média ~28 eventos para um pedido de 30
	now := time.Date(2024, 3, 15, 3, 0, 0, 0, time.UTC)
	windowStart := now.Add(-AdjustmentWindow)
	const count = 30

	short := 0
	for seed := int64(1); seed <= 40; seed++ {
		adjs := GenerateDeviceAdjustments(entities.DefaultHotelConfig(), count, now, NewRand(seed))
		require.LessOrEqual(t, len(adjs), count)
		if len(adjs) < count {
			short++
		}

		assert.True(t, sort.SliceIsSorted(adjs, func(i, j int) bool {
			return adjs[i].Timestamp > adjs[j].Timestamp
		}), "seed=%d", seed)
		for _, a := range adjs {
			ts := parseStamp(t, a.Timestamp)
			assert.False(t, ts.Before(windowStart), a.Timestamp)
			assert.True(t, strings.HasSuffix(a.Timestamp, " 03:00:00"), a.Timestamp)
		}
	}
	assert.Greater(t, short, 0)
}
