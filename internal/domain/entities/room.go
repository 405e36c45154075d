package entities

type RoomStatus string

const (
	RoomOccupied    RoomStatus = "occupied"
	RoomVacantClean RoomStatus = "vacant_clean"
	RoomVacantDirty RoomStatus = "vacant_dirty"
	RoomOutOfOrder  RoomStatus = "out_of_order"
	RoomMaintenance RoomStatus = "maintenance"
)

// Room guarda o estado de ocupação. GuestName, CheckInTime e CheckOutTime existem somente quando ocupado.
type Room struct {
	ID                   string     `json:"id" bson:"_id"`
	RoomNumber           string     `json:"roomNumber" bson:"roomNumber"`
	Floor                int        `json:"floor" bson:"floor"`
	Type                 RoomType   `json:"type" bson:"type"`
	Status               RoomStatus `json:"status" bson:"status"`
	GuestName            string     `json:"guestName,omitempty" bson:"guestName,omitempty"`
	CheckInTime          string     `json:"checkInTime,omitempty" bson:"checkInTime,omitempty"`
	CheckOutTime         string     `json:"checkOutTime,omitempty" bson:"checkOutTime,omitempty"`
	DeviceCount          int        `json:"deviceCount" bson:"deviceCount"`
	OnlineDeviceCount    int        `json:"onlineDeviceCount" bson:"onlineDeviceCount"`
	Temperature          float64    `json:"temperature" bson:"temperature"`
	Humidity             int        `json:"humidity" bson:"humidity"`
	LightLevel           int        `json:"lightLevel" bson:"lightLevel"`
	EnergyConsumption    float64    `json:"energyConsumption" bson:"energyConsumption"`
	MaintenanceScheduled bool       `json:"maintenanceScheduled" bson:"maintenanceScheduled"`
}
