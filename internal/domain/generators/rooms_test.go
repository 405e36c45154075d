package generators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrik-rangel/hotel-data-generator/internal/domain/entities"
)

func TestGenerateHotelRooms_FirstRoomsAreOccupied(t *testing.T) {
	cfg := entities.DefaultHotelConfig()
	rooms := GenerateHotelRooms(cfg, NewRand(1))
	require.Len(t, rooms, 400)

	occupied := 0
	for i, r := range rooms {
		if i < 160 {
			assert.Equal(t, entities.RoomOccupied, r.Status, r.RoomNumber)
		} else {
			assert.Contains(t, []entities.RoomStatus{entities.RoomVacantClean, entities.RoomVacantDirty}, r.Status, r.RoomNumber)
		}
		if r.Status == entities.RoomOccupied {
			occupied++
		}
	}
	assert.Equal(t, 160, occupied)
}

func TestGenerateHotelRooms_OccupancyIndependentOfFloorShape(t *testing.T) {
	layouts := []struct {
		name          string
		floors, rooms int
	}{
		{"16x10", 16, 10},
		{"4x50", 4, 50},
		{"20x20", 20, 20},
		{"9x99", 9, 99},
	}

	for _, tt := range layouts {
		t.Run(tt.name, func(t *testing.T) {
			cfg := entities.DefaultHotelConfig()
			cfg.Floors = tt.floors
			cfg.RoomsPerFloor = tt.rooms

			occupied := 0
			for _, r := range GenerateHotelRooms(cfg, NewRand(9)) {
				if r.Status == entities.RoomOccupied {
					occupied++
				}
			}
			assert.Equal(t, 160, occupied)
		})
	}
}

func TestGenerateHotelRooms_SmallBuildingFullyOccupied(t *testing.T) {
	cfg := entities.DefaultHotelConfig()
	cfg.Floors = 3
	cfg.RoomsPerFloor = 10

	rooms := GenerateHotelRooms(cfg, NewRand(2))
	require.Len(t, rooms, 30)
	for _, r := range rooms {
		assert.Equal(t, entities.RoomOccupied, r.Status)
	}
}

func TestGenerateHotelRooms_TypeFollowsFloor(t *testing.T) {
	for _, r := range GenerateHotelRooms(entities.DefaultHotelConfig(), NewRand(4)) {
		assert.Equal(t, r.Floor >= 19, r.Type == entities.RoomTypePresidential, r.RoomNumber)
		assert.Equal(t, r.Floor >= 16 && r.Floor <= 18, r.Type == entities.RoomTypeSuite, r.RoomNumber)
		assert.Equal(t, r.Floor >= 11 && r.Floor <= 15, r.Type == entities.RoomTypeDeluxe, r.RoomNumber)
		assert.Equal(t, r.Floor <= 10, r.Type == entities.RoomTypeStandard, r.RoomNumber)
	}
}

func TestGenerateHotelRooms_FieldInvariants(t *testing.T) {
	rooms := GenerateHotelRooms(entities.DefaultHotelConfig(), NewRand(6))

	assert.Equal(t, "0101", rooms[0].RoomNumber)
	assert.Equal(t, "room-0101", rooms[0].ID)
	assert.Equal(t, "2020", rooms[len(rooms)-1].RoomNumber)

	for _, r := range rooms {
		if r.Status == entities.RoomOccupied {
			assert.Regexp(t, `^客人\d{1,3}$`, r.GuestName)
			assert.Equal(t, checkInStamp, r.CheckInTime)
			assert.Equal(t, checkOutStamp, r.CheckOutTime)
		} else {
			assert.Empty(t, r.GuestName)
			assert.Empty(t, r.CheckInTime)
			assert.Empty(t, r.CheckOutTime)
		}

		assert.Equal(t, entities.DeviceCountFor(r.Type), r.DeviceCount)
		assert.LessOrEqual(t, r.OnlineDeviceCount, r.DeviceCount)
		assert.GreaterOrEqual(t, r.OnlineDeviceCount, r.DeviceCount-1)

		assert.GreaterOrEqual(t, r.Temperature, 20.0)
		assert.LessOrEqual(t, r.Temperature, 26.0)
		assert.GreaterOrEqual(t, r.LightLevel, 0)
		assert.LessOrEqual(t, r.LightLevel, 100)
	}
}

func TestGenerateHotelRooms_MaintenanceIsRare(t *testing.T) {
	cfg := entities.DefaultHotelConfig()
	cfg.Floors = 50
	cfg.RoomsPerFloor = 99

	scheduled := 0
	rooms := GenerateHotelRooms(cfg, NewRand(8))
	for _, r := range rooms {
		if r.MaintenanceScheduled {
			scheduled++
		}
	}
	ratio := float64(scheduled) / float64(len(rooms))
	assert.InDelta(t, 0.05, ratio, 0.02)
}

func TestGenerateHotelRooms_RoomsPerFloorCappedAt99(t *testing.T) {
	cfg := entities.DefaultHotelConfig()
	cfg.Floors = 2
	cfg.RoomsPerFloor = 150

	rooms := GenerateHotelRooms(cfg, NewRand(12))
	require.Len(t, rooms, 2*entities.MaxRoomsPerFloor)

	seen := make(map[string]bool, len(rooms))
	for _, r := range rooms {
		require.False(t, seen[r.RoomNumber], "quarto duplicado %s", r.RoomNumber)
		seen[r.RoomNumber] = true
	}
	assert.True(t, seen["0199"])
	assert.True(t, seen["0201"])
}
