package entities

type DeviceType string

const (
	DeviceTypeAirConditioner DeviceType = "air_conditioner"
	DeviceTypeLighting       DeviceType = "lighting"
	DeviceTypeCurtain        DeviceType = "curtain"
	DeviceTypeTV             DeviceType = "tv"
	DeviceTypeSensor         DeviceType = "sensor"
	DeviceTypeDoorLock       DeviceType = "door_lock"
	DeviceTypeMiniBar        DeviceType = "mini_bar"
	DeviceTypeSafeBox        DeviceType = "safe_box"
	DeviceTypeDeliveryRobot  DeviceType = "delivery_robot"
	DeviceTypeAccessControl  DeviceType = "access_control"
	DeviceTypeElevator       DeviceType = "elevator"
	DeviceTypeFireAlarm      DeviceType = "fire_alarm"
	DeviceTypeCCTVCamera     DeviceType = "cctv_camera"
)

type DeviceCategory string

const (
	CategoryHVAC          DeviceCategory = "hvac"
	CategoryLighting      DeviceCategory = "lighting"
	CategorySecurity      DeviceCategory = "security"
	CategoryEntertainment DeviceCategory = "entertainment"
	CategoryComfort       DeviceCategory = "comfort"
	CategoryService       DeviceCategory = "service"
	CategorySafety        DeviceCategory = "safety"
)

type DeviceStatus string

const (
	DeviceOnline      DeviceStatus = "online"
	DeviceOffline     DeviceStatus = "offline"
	DeviceError       DeviceStatus = "error"
	DeviceWarning     DeviceStatus = "warning"
	DeviceMaintenance DeviceStatus = "maintenance"
)

type ElevatorDirection string

const (
	DirectionUp   ElevatorDirection = "up"
	DirectionDown ElevatorDirection = "down"
	DirectionIdle ElevatorDirection = "idle"
)

// Device é um membro da frota. Os campos opcionais preenchidos dependem apenas do Type.
type Device struct {
	ID         string         `json:"id" bson:"_id"`
	Name       string         `json:"name" bson:"name"`
	Type       DeviceType     `json:"type" bson:"type"`
	Category   DeviceCategory `json:"category" bson:"category"`
	Status     DeviceStatus   `json:"status" bson:"status"`
	IsOnline   bool           `json:"isOnline" bson:"isOnline"`
	Floor      int            `json:"floor" bson:"floor"`
	RoomNumber string         `json:"roomNumber,omitempty" bson:"roomNumber,omitempty"`
	Location   string         `json:"location" bson:"location"`
	LastUpdate string         `json:"lastUpdate" bson:"lastUpdate"`

	Temperature       *float64 `json:"temperature,omitempty" bson:"temperature,omitempty"`
	Humidity          *int     `json:"humidity,omitempty" bson:"humidity,omitempty"`
	Brightness        *int     `json:"brightness,omitempty" bson:"brightness,omitempty"`
	Power             *int     `json:"power,omitempty" bson:"power,omitempty"`
	EnergyConsumption *float64 `json:"energyConsumption,omitempty" bson:"energyConsumption,omitempty"`
	Signal            *int     `json:"signal,omitempty" bson:"signal,omitempty"`
	Battery           *int     `json:"battery,omitempty" bson:"battery,omitempty"`

	// robôs de entrega
	CurrentTask      *string `json:"currentTask,omitempty" bson:"currentTask,omitempty"`
	Destination      *string `json:"destination,omitempty" bson:"destination,omitempty"`
	EstimatedArrival *int    `json:"estimatedArrival,omitempty" bson:"estimatedArrival,omitempty"`

	AccessLevel *string `json:"accessLevel,omitempty" bson:"accessLevel,omitempty"`

	CurrentFloor *int               `json:"currentFloor,omitempty" bson:"currentFloor,omitempty"`
	TargetFloor  *int               `json:"targetFloor,omitempty" bson:"targetFloor,omitempty"`
	Direction    *ElevatorDirection `json:"direction,omitempty" bson:"direction,omitempty"`

	IsRecording    *bool `json:"isRecording,omitempty" bson:"isRecording,omitempty"`
	MotionDetected *bool `json:"motionDetected,omitempty" bson:"motionDetected,omitempty"`
}
