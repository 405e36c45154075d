package entities

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("configuração do hotel inválida")

// MaxRoomsPerFloor é o limite do esquema floor*100+room.
const MaxRoomsPerFloor = 99

type RoomType string

const (
	RoomTypeStandard     RoomType = "standard"
	RoomTypeDeluxe       RoomType = "deluxe"
	RoomTypeSuite        RoomType = "suite"
	RoomTypePresidential RoomType = "presidential"
)

// HotelConfig descreve o prédio. É passado explicitamente para todos os geradores.
type HotelConfig struct {
	Floors                int `json:"floors" bson:"floors" mapstructure:"floors"`
	RoomsPerFloor         int `json:"roomsPerFloor" bson:"roomsPerFloor" mapstructure:"rooms_per_floor"`
	DeluxeFromFloor       int `json:"deluxeFromFloor" bson:"deluxeFromFloor" mapstructure:"deluxe_from_floor"`
	SuiteFromFloor        int `json:"suiteFromFloor" bson:"suiteFromFloor" mapstructure:"suite_from_floor"`
	PresidentialFromFloor int `json:"presidentialFromFloor" bson:"presidentialFromFloor" mapstructure:"presidential_from_floor"`
	CCTVPerFloor          int `json:"cctvPerFloor" bson:"cctvPerFloor" mapstructure:"cctv_per_floor"`
	AccessControls        int `json:"accessControls" bson:"accessControls" mapstructure:"access_controls"`
	Elevators             int `json:"elevators" bson:"elevators" mapstructure:"elevators"`
	DeliveryRobots        int `json:"deliveryRobots" bson:"deliveryRobots" mapstructure:"delivery_robots"`
	OccupiedRooms         int `json:"occupiedRooms" bson:"occupiedRooms" mapstructure:"occupied_rooms"`
}

func DefaultHotelConfig() HotelConfig {
	return HotelConfig{
		Floors:                20,
		RoomsPerFloor:         20,
		DeluxeFromFloor:       11,
		SuiteFromFloor:        16,
		PresidentialFromFloor: 19,
		CCTVPerFloor:          4,
		AccessControls:        2,
		Elevators:             6,
		DeliveryRobots:        8,
		OccupiedRooms:         160,
	}
}

func (c HotelConfig) RoomTypeForFloor(floor int) RoomType {
	switch {
	case floor >= c.PresidentialFromFloor:
		return RoomTypePresidential
	case floor >= c.SuiteFromFloor:
		return RoomTypeSuite
	case floor >= c.DeluxeFromFloor:
		return RoomTypeDeluxe
	default:
		return RoomTypeStandard
	}
}

// RoomSlots é RoomsPerFloor limitado a MaxRoomsPerFloor; acima disso os números de quarto colidiriam
// entre andares ("0201" seria o quarto 101 do 1º andar e o quarto 1 do 2º).
func (c HotelConfig) RoomSlots() int {
	return max(0, min(c.RoomsPerFloor, MaxRoomsPerFloor))
}

func (c HotelConfig) TotalRooms() int {
	return max(0, c.Floors) * c.RoomSlots()
}

// RoomNumber segue o esquema floor*100+room com 4 dígitos ("0512").
func RoomNumber(floor, room int) string {
	return fmt.Sprintf("%04d", floor*100+room)
}

// DeviceCountFor é a quantidade fixa de dispositivos por tipo de quarto.
func DeviceCountFor(t RoomType) int {
	switch t {
	case RoomTypeDeluxe:
		return 8
	case RoomTypeSuite:
		return 12
	case RoomTypePresidential:
		return 15
	default:
		return 5
	}
}

func (c HotelConfig) Validate() error {
	if c.Floors < 0 || c.RoomsPerFloor < 0 || c.CCTVPerFloor < 0 || c.AccessControls < 0 ||
		c.Elevators < 0 || c.DeliveryRobots < 0 || c.OccupiedRooms < 0 {
		return fmt.Errorf("%w: contagens não podem ser negativas", ErrInvalidConfig)
	}
	if c.RoomsPerFloor > MaxRoomsPerFloor {
		return fmt.Errorf("%w: rooms_per_floor deve ser no máximo %d, recebido %d", ErrInvalidConfig, MaxRoomsPerFloor, c.RoomsPerFloor)
	}
	if c.DeluxeFromFloor > c.SuiteFromFloor || c.SuiteFromFloor > c.PresidentialFromFloor {
		return fmt.Errorf("%w: limites de andar devem ser crescentes (deluxe=%d suite=%d presidential=%d)",
			ErrInvalidConfig, c.DeluxeFromFloor, c.SuiteFromFloor, c.PresidentialFromFloor)
	}
	return nil
}
