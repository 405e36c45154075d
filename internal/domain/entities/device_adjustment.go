package entities

type AdjustmentType string

const (
	AdjustTemperature AdjustmentType = "temperature"
	AdjustBrightness  AdjustmentType = "brightness"
)

type Actor string

const (
	ActorGuest      Actor = "guest"
	ActorStaff      Actor = "staff"
	ActorAutoSystem Actor = "auto_system"
)

// TimestampLayout é comparável lexicograficamente, então ordenar as strings ordena no tempo.
const TimestampLayout = "2006-01-02 15:04:05"

type DeviceAdjustment struct {
	ID             string         `json:"id" bson:"_id"`
	DeviceID       string         `json:"deviceId" bson:"deviceId"`
	DeviceName     string         `json:"deviceName" bson:"deviceName"`
	RoomNumber     string         `json:"roomNumber" bson:"roomNumber"`
	AdjustmentType AdjustmentType `json:"adjustmentType" bson:"adjustmentType"`
	OldValue       float64        `json:"oldValue" bson:"oldValue"`
	NewValue       float64        `json:"newValue" bson:"newValue"`
	AdjustedBy     Actor          `json:"adjustedBy" bson:"adjustedBy"`
	Timestamp      string         `json:"timestamp" bson:"timestamp"`
	Reason         string         `json:"reason" bson:"reason"`
	EnergyImpact   float64        `json:"energyImpact" bson:"energyImpact"`
}
