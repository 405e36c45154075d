package generators

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/patrik-rangel/hotel-data-generator/internal/domain/entities"
)

const (
	robotTaskDelivering = "送餐中"
	robotTaskIdle       = "空闲"
)

var (
	robotTasks   = []string{robotTaskDelivering, robotTaskIdle}
	accessLevels = []string{"guest", "staff", "admin"}
	directions   = []entities.ElevatorDirection{entities.DirectionUp, entities.DirectionDown, entities.DirectionIdle}
)

// GenerateHotelDevices monta a frota completa: por quarto (ar-condicionado, iluminação, minibar fora do padrão),
// por andar (CCTV, controle de acesso) e os equipamentos do prédio (elevadores, robôs de entrega).
// Todo dispositivo nasce online. Quartos por andar acima de entities.MaxRoomsPerFloor são ignorados.
func GenerateHotelDevices(cfg entities.HotelConfig, rng *rand.Rand, now time.Time) []entities.Device {
	stamp := now.Format(entities.TimestampLayout)
	devices := make([]entities.Device, 0, ExpectedDeviceCount(cfg))

	for floor := 1; floor <= cfg.Floors; floor++ {
		roomType := cfg.RoomTypeForFloor(floor)

		for room := 1; room <= cfg.RoomSlots(); room++ {
			roomNumber := entities.RoomNumber(floor, room)
			devices = append(devices,
				airConditioner(rng, floor, roomNumber, stamp),
				lighting(rng, floor, roomNumber, stamp),
			)
			if roomType != entities.RoomTypeStandard {
				devices = append(devices, miniBar(rng, floor, roomNumber, stamp))
			}
		}

		for i := 1; i <= cfg.CCTVPerFloor; i++ {
			devices = append(devices, cctvCamera(rng, floor, i, stamp))
		}
		for i := 1; i <= cfg.AccessControls; i++ {
			devices = append(devices, accessControl(rng, floor, i, stamp))
		}
	}

	for i := 1; i <= cfg.Elevators; i++ {
		devices = append(devices, elevator(rng, cfg, i, stamp))
	}
	for i := 1; i <= cfg.DeliveryRobots; i++ {
		devices = append(devices, deliveryRobot(rng, cfg, i, stamp))
	}

	return devices
}

// ExpectedDeviceCount é o tamanho exato da frota para uma configuração.
func ExpectedDeviceCount(cfg entities.HotelConfig) int {
	total := cfg.Elevators + cfg.DeliveryRobots
	for floor := 1; floor <= cfg.Floors; floor++ {
		total += 2*cfg.RoomSlots() + cfg.CCTVPerFloor + cfg.AccessControls
		if cfg.RoomTypeForFloor(floor) != entities.RoomTypeStandard {
			total += cfg.RoomSlots()
		}
	}
	return total
}

func baseDevice(id, name string, t entities.DeviceType, c entities.DeviceCategory, floor int, location, stamp string) entities.Device {
	return entities.Device{
		ID:         id,
		Name:       name,
		Type:       t,
		Category:   c,
		Status:     entities.DeviceOnline,
		IsOnline:   true,
		Floor:      floor,
		Location:   location,
		LastUpdate: stamp,
	}
}

func airConditioner(rng *rand.Rand, floor int, roomNumber, stamp string) entities.Device {
	d := baseDevice("AC-"+roomNumber, roomNumber+"房间空调", entities.DeviceTypeAirConditioner,
		entities.CategoryHVAC, floor, roomNumber+"房间", stamp)
	d.RoomNumber = roomNumber
	d.Temperature = ptr(round(uniform(rng, 20, 24), 1))
	d.Humidity = ptr(intBetween(rng, 40, 60))
	d.Power = ptr(intBetween(rng, 800, 1500))
	d.EnergyConsumption = ptr(round(uniform(rng, 5, 10), 2))
	return d
}

func lighting(rng *rand.Rand, floor int, roomNumber, stamp string) entities.Device {
	d := baseDevice("LIGHT-"+roomNumber, roomNumber+"房间灯光", entities.DeviceTypeLighting,
		entities.CategoryLighting, floor, roomNumber+"房间", stamp)
	d.RoomNumber = roomNumber
	d.Brightness = ptr(intBetween(rng, 30, 100))
	d.Power = ptr(intBetween(rng, 20, 60))
	d.EnergyConsumption = ptr(round(uniform(rng, 0.5, 2), 2))
	return d
}

func miniBar(rng *rand.Rand, floor int, roomNumber, stamp string) entities.Device {
	d := baseDevice("MINIBAR-"+roomNumber, roomNumber+"房间迷你吧", entities.DeviceTypeMiniBar,
		entities.CategoryComfort, floor, roomNumber+"房间", stamp)
	d.RoomNumber = roomNumber
	d.Temperature = ptr(round(uniform(rng, 2, 6), 1))
	d.Power = ptr(60)
	d.EnergyConsumption = ptr(round(uniform(rng, 0.3, 0.8), 2))
	return d
}

func cctvCamera(rng *rand.Rand, floor, index int, stamp string) entities.Device {
	d := baseDevice(fmt.Sprintf("CCTV-%02d-%d", floor, index), fmt.Sprintf("%d楼监控摄像头%d", floor, index),
		entities.DeviceTypeCCTVCamera, entities.CategorySecurity, floor, fmt.Sprintf("%d楼走廊", floor), stamp)
	d.Signal = ptr(intBetween(rng, 90, 100))
	d.Power = ptr(15)
	d.IsRecording = ptr(true)
	d.MotionDetected = ptr(rng.Float64() < 0.3)
	return d
}

func accessControl(rng *rand.Rand, floor, index int, stamp string) entities.Device {
	d := baseDevice(fmt.Sprintf("ACCESS-%02d-%d", floor, index), fmt.Sprintf("%d楼门禁%d", floor, index),
		entities.DeviceTypeAccessControl, entities.CategorySecurity, floor, fmt.Sprintf("%d楼电梯厅", floor), stamp)
	d.Signal = ptr(intBetween(rng, 90, 100))
	d.Power = ptr(10)
	d.AccessLevel = ptr(pick(rng, accessLevels))
	return d
}

func elevator(rng *rand.Rand, cfg entities.HotelConfig, index int, stamp string) entities.Device {
	floors := max(cfg.Floors, 1)
	d := baseDevice(fmt.Sprintf("ELEVATOR-%d", index), fmt.Sprintf("%d号电梯", index),
		entities.DeviceTypeElevator, entities.CategoryService, 1, "电梯井", stamp)
	d.CurrentFloor = ptr(intBetween(rng, 1, floors))
	d.TargetFloor = ptr(intBetween(rng, 1, floors))
	d.Direction = ptr(pick(rng, directions))
	d.Power = ptr(intBetween(rng, 10, 20))
	d.EnergyConsumption = ptr(round(uniform(rng, 50, 120), 2))
	return d
}

func deliveryRobot(rng *rand.Rand, cfg entities.HotelConfig, index int, stamp string) entities.Device {
	floors := max(cfg.Floors, 1)
	d := baseDevice(fmt.Sprintf("ROBOT-%d", index), fmt.Sprintf("送餐机器人%d", index),
		entities.DeviceTypeDeliveryRobot, entities.CategoryService, intBetween(rng, 1, floors), "服务中心", stamp)
	d.Battery = ptr(intBetween(rng, 20, 100))
	d.Signal = ptr(intBetween(rng, 80, 100))

	task := pick(rng, robotTasks)
	d.CurrentTask = ptr(task)
	if task == robotTaskDelivering && cfg.RoomSlots() > 0 {
		d.Destination = ptr(entities.RoomNumber(intBetween(rng, 1, floors), intBetween(rng, 1, cfg.RoomSlots())))
		d.EstimatedArrival = ptr(intBetween(rng, 3, 15))
	}
	return d
}
