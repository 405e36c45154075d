package services

import (
	"math"

	"github.com/patrik-rangel/hotel-data-generator/internal/domain/entities"
)

type FleetSummary struct {
	Total             int                             `json:"total"`
	Online            int                             `json:"online"`
	ByCategory        map[entities.DeviceCategory]int `json:"byCategory"`
	ByType            map[entities.DeviceType]int     `json:"byType"`
	EnergyConsumption float64                         `json:"energyConsumption"`
}

type RoomSummary struct {
	Total                int                         `json:"total"`
	ByStatus             map[entities.RoomStatus]int `json:"byStatus"`
	ByType               map[entities.RoomType]int   `json:"byType"`
	OccupancyRate        float64                     `json:"occupancyRate"`
	MaintenanceScheduled int                         `json:"maintenanceScheduled"`
}

type OperationSummary struct {
	Days                     int     `json:"days"`
	AverageOccupancyRate     float64 `json:"averageOccupancyRate"`
	AverageDeviceUptime      float64 `json:"averageDeviceUptime"`
	AverageGuestSatisfaction float64 `json:"averageGuestSatisfaction"`
	TotalEnergyConsumption   float64 `json:"totalEnergyConsumption"`
	TotalEnergyCost          float64 `json:"totalEnergyCost"`
	TotalCO2Emission         float64 `json:"totalCo2Emission"`
}

type AdjustmentSummary struct {
	Total             int                             `json:"total"`
	ByActor           map[entities.Actor]int          `json:"byActor"`
	ByType            map[entities.AdjustmentType]int `json:"byType"`
	ByHour            [24]int                         `json:"byHour"`
	TotalEnergyImpact float64                         `json:"totalEnergyImpact"`
}

type Summary struct {
	Fleet       FleetSummary      `json:"fleet"`
	Rooms       RoomSummary       `json:"rooms"`
	Operations  OperationSummary  `json:"operations"`
	Adjustments AdjustmentSummary `json:"adjustments"`
}

func Summarize(snap *entities.Snapshot) Summary {
	return Summary{
		Fleet:       SummarizeFleet(snap.Devices),
		Rooms:       SummarizeRooms(snap.Rooms),
		Operations:  SummarizeOperations(snap.Operations),
		Adjustments: SummarizeAdjustments(snap.Adjustments),
	}
}

func SummarizeFleet(devices []entities.Device) FleetSummary {
	s := FleetSummary{
		Total:      len(devices),
		ByCategory: map[entities.DeviceCategory]int{},
		ByType:     map[entities.DeviceType]int{},
	}
	for _, d := range devices {
		if d.IsOnline {
			s.Online++
		}
		s.ByCategory[d.Category]++
		s.ByType[d.Type]++
		if d.EnergyConsumption != nil {
			s.EnergyConsumption += *d.EnergyConsumption
		}
	}
	s.EnergyConsumption = round2(s.EnergyConsumption)
	return s
}

func SummarizeRooms(rooms []entities.Room) RoomSummary {
	s := RoomSummary{
		Total:    len(rooms),
		ByStatus: map[entities.RoomStatus]int{},
		ByType:   map[entities.RoomType]int{},
	}
	for _, r := range rooms {
		s.ByStatus[r.Status]++
		s.ByType[r.Type]++
		if r.MaintenanceScheduled {
			s.MaintenanceScheduled++
		}
	}
	if s.Total > 0 {
		s.OccupancyRate = round2(float64(s.ByStatus[entities.RoomOccupied]) * 100 / float64(s.Total))
	}
	return s
}

func SummarizeOperations(ops []entities.OperationData) OperationSummary {
	s := OperationSummary{Days: len(ops)}
	if len(ops) == 0 {
		return s
	}
	var occupancy, uptime, satisfaction float64
	for _, o := range ops {
		occupancy += o.RoomOccupancyRate
		uptime += o.DeviceUptime
		satisfaction += o.GuestSatisfaction
		s.TotalEnergyConsumption += o.EnergyConsumption
		s.TotalEnergyCost += o.EnergyCost
		s.TotalCO2Emission += o.CO2Emission
	}
	n := float64(len(ops))
	s.AverageOccupancyRate = round2(occupancy / n)
	s.AverageDeviceUptime = round2(uptime / n)
	s.AverageGuestSatisfaction = round2(satisfaction / n)
	return s
}

func SummarizeAdjustments(adjs []entities.DeviceAdjustment) AdjustmentSummary {
	s := AdjustmentSummary{
		Total:   len(adjs),
		ByActor: map[entities.Actor]int{},
		ByType:  map[entities.AdjustmentType]int{},
	}
	for _, a := range adjs {
		s.ByActor[a.AdjustedBy]++
		s.ByType[a.AdjustmentType]++
		s.TotalEnergyImpact += a.EnergyImpact
		// "2006-01-02 15:04:05": a hora ocupa as posições 11-12
		if len(a.Timestamp) >= 13 {
			h := int(a.Timestamp[11]-'0')*10 + int(a.Timestamp[12]-'0')
			if h >= 0 && h < 24 {
				s.ByHour[h]++
			}
		}
	}
	s.TotalEnergyImpact = round2(s.TotalEnergyImpact)
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
