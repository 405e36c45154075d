package generators

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/patrik-rangel/hotel-data-generator/internal/domain/entities"
)

const (
	AdjustmentWindow = 30 * 24 * time.Hour

	highTierProbability = 0.4
	maxEventsPerTick    = 5

	TemperatureMin   = 16.0
	TemperatureMax   = 30.0
	maxTempDelta     = 3.0
	BrightnessMin    = 0.0
	BrightnessMax    = 100.0
	maxBrightDelta   = 30
	kWhPerDegree     = 0.8
	kWhPerBrightness = 0.02
)

// hourWeights é a densidade relativa de ajustes por hora do dia.
var hourWeights = [24]float64{
	0.3, 0.3, 0.3, 0.3, 0.3, 0.3, // 00-05
	1.2, 2.5, 2.5, 1.8, 1.2, 1.2, // 06-11
	1.5, 1.5, 1.0, 1.0, 1.0, 2.2, // 12-17
	2.2, 1.8, 1.8, 1.2, 0.6, 0.3, // 18-23
}

var (
	temperatureReasons = []string{"客人感觉太热", "客人感觉太冷", "节能模式调整", "入住预设温度", "夜间睡眠模式"}
	brightnessReasons  = []string{"阅读需要", "休息模式", "清洁打扫", "节能模式调整", "入住欢迎模式"}
)

type dayPeriod int

const (
	periodNight dayPeriod = iota
	periodMorning
	periodBusiness
	periodEvening
)

func periodOf(hour int) dayPeriod {
	switch {
	case hour >= 22 || hour < 6:
		return periodNight
	case hour < 9:
		return periodMorning
	case hour < 18:
		return periodBusiness
	default:
		return periodEvening
	}
}

// HourWeight devolve o peso da hora; valores acima de 1 significam "sempre gera neste tick".
func HourWeight(hour int) float64 {
	return hourWeights[((hour%24)+24)%24]
}

// tickAccepted usa o peso como probabilidade de Bernoulli limitada a [0,1].
func tickAccepted(rng *rand.Rand, weight float64) bool {
	p := math.Min(1, math.Max(0, weight))
	return rng.Float64() < p
}

func temperatureProbability(p dayPeriod) float64 {
	switch p {
	case periodNight:
		return 0.85
	case periodMorning:
		return 0.5
	case periodBusiness:
		return 0.6
	default:
		return 0.45
	}
}

type actorWeight struct {
	actor  entities.Actor
	weight float64
}

var actorWeights = map[dayPeriod][]actorWeight{
	periodNight:    {{entities.ActorAutoSystem, 0.7}, {entities.ActorGuest, 0.2}, {entities.ActorStaff, 0.1}},
	periodMorning:  {{entities.ActorGuest, 0.5}, {entities.ActorAutoSystem, 0.3}, {entities.ActorStaff, 0.2}},
	periodBusiness: {{entities.ActorStaff, 0.5}, {entities.ActorGuest, 0.3}, {entities.ActorAutoSystem, 0.2}},
	periodEvening:  {{entities.ActorGuest, 0.65}, {entities.ActorAutoSystem, 0.2}, {entities.ActorStaff, 0.15}},
}

func pickActor(rng *rand.Rand, p dayPeriod) entities.Actor {
	weights := actorWeights[p]
	r := rng.Float64()
	acc := 0.0
	for _, w := range weights {
		acc += w.weight
		if r < acc {
			return w.actor
		}
	}
	return weights[len(weights)-1].actor
}

type roomPicker struct {
	cfg           entities.HotelConfig
	highTierFloor int
}

func (p roomPicker) pick(rng *rand.Rand) (int, string) {
	firstFloor := 1
	if p.highTierFloor >= 1 && p.highTierFloor <= p.cfg.Floors && rng.Float64() < highTierProbability {
		firstFloor = p.highTierFloor
	}
	floor := intBetween(rng, firstFloor, p.cfg.Floors)
	return floor, entities.RoomNumber(floor, intBetween(rng, 1, p.cfg.RoomSlots()))
}

// GenerateDeviceAdjustments caminha para trás a partir de `now` em passos calibrados para ~count/30 ticks por dia,
// gerando de 1 a 5 eventos por tick aceito. Para quando atinge `count` ou esgota a janela de 30 dias.
// O resultado sai ordenado do mais recente para o mais antigo.
func GenerateDeviceAdjustments(cfg entities.HotelConfig, count int, now time.Time, rng *rand.Rand) []entities.DeviceAdjustment {
	if count <= 0 || cfg.TotalRooms() == 0 {
		return []entities.DeviceAdjustment{}
	}

	now = now.Truncate(time.Second)
	windowStart := now.Add(-AdjustmentWindow)
	step := time.Duration(float64(AdjustmentWindow) / float64(count))
	if step < time.Second {
		step = time.Second
	}

	picker := roomPicker{cfg: cfg, highTierFloor: cfg.SuiteFromFloor}
	adjustments := make([]entities.DeviceAdjustment, 0, min(count, 1<<15))

	for tick := now; !tick.Before(windowStart) && len(adjustments) < count; tick = tick.Add(-step) {
		hour := tick.Hour()
		if !tickAccepted(rng, HourWeight(hour)) {
			continue
		}

		// o jitter não sai da hora do tick, que decide tipo e autor
		hourStart := time.Date(tick.Year(), tick.Month(), tick.Day(), hour, 0, 0, 0, tick.Location())
		jitter := min(int64(step/time.Second), int64(tick.Sub(hourStart)/time.Second)+1)

		events := intBetween(rng, 1, maxEventsPerTick)
		for e := 0; e < events && len(adjustments) < count; e++ {
			ts := tick.Add(-time.Duration(rng.Int63n(jitter)) * time.Second)
			if ts.Before(windowStart) {
				ts = windowStart
			}
			_, roomNumber := picker.pick(rng)
			adjustments = append(adjustments, newAdjustment(rng, len(adjustments)+1, roomNumber, ts, periodOf(hour)))
		}
	}

	sort.SliceStable(adjustments, func(i, j int) bool {
		return adjustments[i].Timestamp > adjustments[j].Timestamp
	})
	return adjustments
}

func newAdjustment(rng *rand.Rand, seq int, roomNumber string, ts time.Time, period dayPeriod) entities.DeviceAdjustment {
	a := entities.DeviceAdjustment{
		ID:         fmt.Sprintf("%06d", seq),
		RoomNumber: roomNumber,
		AdjustedBy: pickActor(rng, period),
		Timestamp:  ts.Format(entities.TimestampLayout),
	}

	if rng.Float64() < temperatureProbability(period) {
		oldValue := round(uniform(rng, 20, 26), 1)
		delta := round(uniform(rng, -maxTempDelta, maxTempDelta), 1)
		newValue := round(clamp(oldValue+delta, TemperatureMin, TemperatureMax), 1)

		a.AdjustmentType = entities.AdjustTemperature
		a.DeviceID = "AC-" + roomNumber
		a.DeviceName = roomNumber + "房间空调"
		a.OldValue = oldValue
		a.NewValue = newValue
		a.Reason = pick(rng, temperatureReasons)
		a.EnergyImpact = round((oldValue-newValue)*kWhPerDegree, 2)
		return a
	}

	oldValue := float64(intBetween(rng, 20, 100))
	delta := float64(intBetween(rng, -maxBrightDelta, maxBrightDelta))
	newValue := clamp(oldValue+delta, BrightnessMin, BrightnessMax)

	a.AdjustmentType = entities.AdjustBrightness
	a.DeviceID = "LIGHT-" + roomNumber
	a.DeviceName = roomNumber + "房间灯光"
	a.OldValue = oldValue
	a.NewValue = newValue
	a.Reason = pick(rng, brightnessReasons)
	a.EnergyImpact = round((newValue-oldValue)*kWhPerBrightness, 2)
	return a
}
