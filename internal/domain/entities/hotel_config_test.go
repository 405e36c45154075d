package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomTypeForFloor(t *testing.T) {
	cfg := DefaultHotelConfig()
	tests := []struct {
		floor int
		want  RoomType
	}{
		{1, RoomTypeStandard},
		{10, RoomTypeStandard},
		{11, RoomTypeDeluxe},
		{15, RoomTypeDeluxe},
		{16, RoomTypeSuite},
		{18, RoomTypeSuite},
		{19, RoomTypePresidential},
		{20, RoomTypePresidential},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cfg.RoomTypeForFloor(tt.floor), "floor %d", tt.floor)
	}
}

func TestRoomNumber(t *testing.T) {
	assert.Equal(t, "0101", RoomNumber(1, 1))
	assert.Equal(t, "0512", RoomNumber(5, 12))
	assert.Equal(t, "2020", RoomNumber(20, 20))
}

func TestDeviceCountFor(t *testing.T) {
	assert.Equal(t, 5, DeviceCountFor(RoomTypeStandard))
	assert.Equal(t, 8, DeviceCountFor(RoomTypeDeluxe))
	assert.Equal(t, 12, DeviceCountFor(RoomTypeSuite))
	assert.Equal(t, 15, DeviceCountFor(RoomTypePresidential))
}

func TestHotelConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultHotelConfig().Validate())

	bad := DefaultHotelConfig()
	bad.RoomsPerFloor = 100
	assert.ErrorIs(t, bad.Validate(), ErrInvalidConfig)

	bad = DefaultHotelConfig()
	bad.Elevators = -1
	assert.ErrorIs(t, bad.Validate(), ErrInvalidConfig)

	bad = DefaultHotelConfig()
	bad.SuiteFromFloor = 25
	assert.ErrorIs(t, bad.Validate(), ErrInvalidConfig)
}

func TestParseCollection(t *testing.T) {
	c, ok := ParseCollection("device_adjustments")
	assert.True(t, ok)
	assert.Equal(t, CollectionAdjustments, c)

	_, ok = ParseCollection("manifest")
	assert.False(t, ok)
}

func TestHotelConfig_RoomSlots(t *testing.T) {
	cfg := DefaultHotelConfig()
	assert.Equal(t, 20, cfg.RoomSlots())
	assert.Equal(t, 400, cfg.TotalRooms())

	cfg.RoomsPerFloor = 150
	assert.Equal(t, MaxRoomsPerFloor, cfg.RoomSlots())
	assert.Equal(t, 20*MaxRoomsPerFloor, cfg.TotalRooms())

	cfg.RoomsPerFloor = -3
	assert.Equal(t, 0, cfg.RoomSlots())
	assert.Equal(t, 0, cfg.TotalRooms())
}
