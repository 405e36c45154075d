package generators

import (
	"math"
	"math/rand"
	"time"

	"github.com/patrik-rangel/hotel-data-generator/internal/domain/entities"
)

const (
	EnergyCostRate  = 1.2 // custo por kWh
	CO2EmissionRate = 0.5 // kg por kWh

	weekendFactor    = 1.2
	seasonalFactor   = 1.15
	operationDateFmt = "2006-01-02"
)

// GenerateOperationData produz um registro por dia para os `days` dias terminando em `now` (inclusive),
// do mais antigo para o mais recente.
func GenerateOperationData(days int, now time.Time, rng *rand.Rand) []entities.OperationData {
	if days <= 0 {
		return []entities.OperationData{}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	data := make([]entities.OperationData, 0, days)

	for offset := days - 1; offset >= 0; offset-- {
		day := today.AddDate(0, 0, -offset)
		weekend := day.Weekday() == time.Saturday || day.Weekday() == time.Sunday

		factor := 1.0
		var peakHour int
		if weekend {
			factor = weekendFactor
			peakHour = intBetween(rng, 14, 17)
		} else {
			peakHour = intBetween(rng, 19, 21)
		}

		energy := math.Round(uniform(rng, 2800, 3200) * factor * seasonalFactor)

		data = append(data, entities.OperationData{
			Date:                   day.Format(operationDateFmt),
			RoomOccupancyRate:      round(math.Min(100, uniform(rng, 65, 85)*factor), 1),
			EnergyConsumption:      energy,
			EnergyCost:             EnergyCost(energy),
			MaintenanceCost:        math.Round(uniform(rng, 800, 1200)),
			DeviceUptime:           round(uniform(rng, 97, 99.5), 1),
			GuestSatisfaction:      round(uniform(rng, 4.2, 4.9), 1),
			AverageRoomTemperature: round(uniform(rng, 22, 24), 1),
			PeakEnergyHour:         peakHour,
			CO2Emission:            CO2Emission(energy),
		})
	}

	return data
}

func EnergyCost(energyKWh float64) float64 {
	return math.Round(energyKWh * EnergyCostRate)
}

func CO2Emission(energyKWh float64) float64 {
	return math.Round(energyKWh * CO2EmissionRate)
}
