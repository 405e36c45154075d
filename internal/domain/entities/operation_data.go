package entities

// OperationData é o resumo diário de KPIs. EnergyCost e CO2Emission derivam de EnergyConsumption.
type OperationData struct {
	Date                   string  `json:"date" bson:"_id"`
	RoomOccupancyRate      float64 `json:"roomOccupancyRate" bson:"roomOccupancyRate"`
	EnergyConsumption      float64 `json:"energyConsumption" bson:"energyConsumption"`
	EnergyCost             float64 `json:"energyCost" bson:"energyCost"`
	MaintenanceCost        float64 `json:"maintenanceCost" bson:"maintenanceCost"`
	DeviceUptime           float64 `json:"deviceUptime" bson:"deviceUptime"`
	GuestSatisfaction      float64 `json:"guestSatisfaction" bson:"guestSatisfaction"`
	AverageRoomTemperature float64 `json:"averageRoomTemperature" bson:"averageRoomTemperature"`
	PeakEnergyHour         int     `json:"peakEnergyHour" bson:"peakEnergyHour"`
	CO2Emission            float64 `json:"co2Emission" bson:"co2Emission"`
}
