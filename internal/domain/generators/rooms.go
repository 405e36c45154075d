package generators

import (
	"fmt"
	"math/rand"

	"github.com/patrik-rangel/hotel-data-generator/internal/domain/entities"
)

const (
	checkInStamp  = "2024-01-15 14:00:00"
	checkOutStamp = "2024-01-18 12:00:00"

	maintenanceProbability = 0.05
)

// GenerateHotelRooms cria um quarto por (andar, posição) na mesma ordem do gerador de dispositivos.
// A ocupação depende só do índice global: os primeiros cfg.OccupiedRooms quartos estão ocupados.
// Como na frota, o número de quartos por andar é limitado por cfg.RoomSlots().
func GenerateHotelRooms(cfg entities.HotelConfig, rng *rand.Rand) []entities.Room {
	rooms := make([]entities.Room, 0, cfg.TotalRooms())
	index := 0

	for floor := 1; floor <= cfg.Floors; floor++ {
		roomType := cfg.RoomTypeForFloor(floor)
		deviceCount := entities.DeviceCountFor(roomType)

		for slot := 1; slot <= cfg.RoomSlots(); slot++ {
			index++
			roomNumber := entities.RoomNumber(floor, slot)

			r := entities.Room{
				ID:                "room-" + roomNumber,
				RoomNumber:        roomNumber,
				Floor:             floor,
				Type:              roomType,
				DeviceCount:       deviceCount,
				OnlineDeviceCount: deviceCount - rng.Intn(2),
				Temperature:       round(uniform(rng, 20, 26), 1),
				Humidity:          intBetween(rng, 40, 60),
				LightLevel:        intBetween(rng, 0, 100),
				EnergyConsumption: round(uniform(rng, 10, 50), 2),
			}

			if index <= cfg.OccupiedRooms {
				r.Status = entities.RoomOccupied
				r.GuestName = fmt.Sprintf("客人%d", rng.Intn(1000))
				r.CheckInTime = checkInStamp
				r.CheckOutTime = checkOutStamp
			} else if rng.Float64() < 0.5 {
				r.Status = entities.RoomVacantClean
			} else {
				r.Status = entities.RoomVacantDirty
			}

			r.MaintenanceScheduled = rng.Float64() < maintenanceProbability
			rooms = append(rooms, r)
		}
	}

	return rooms
}
