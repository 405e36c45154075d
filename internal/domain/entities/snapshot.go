package entities

import "time"

// Collection identifica cada coleção publicada (nome do arquivo JSON e da coleção no MongoDB).
type Collection string

const (
	CollectionDevices            Collection = "devices"
	CollectionRooms              Collection = "rooms"
	CollectionOperations         Collection = "operations"
	CollectionAdjustments        Collection = "device_adjustments"
	CollectionFaultWarnings      Collection = "fault_warnings"
	CollectionDeviceLinkages     Collection = "device_linkages"
	CollectionUsers              Collection = "users"
	CollectionOrganizationUnits  Collection = "organization_units"
	CollectionSafetyEvents       Collection = "safety_events"
	CollectionInspectionRecords  Collection = "inspection_records"
	CollectionRectificationItems Collection = "rectification_items"
)

var AllCollections = []Collection{
	CollectionDevices,
	CollectionRooms,
	CollectionOperations,
	CollectionAdjustments,
	CollectionFaultWarnings,
	CollectionDeviceLinkages,
	CollectionUsers,
	CollectionOrganizationUnits,
	CollectionSafetyEvents,
	CollectionInspectionRecords,
	CollectionRectificationItems,
}

func ParseCollection(name string) (Collection, bool) {
	for _, c := range AllCollections {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}

// Snapshot agrupa tudo que os painéis consomem. É gerado uma vez e tratado como somente leitura.
type Snapshot struct {
	ID                 string              `json:"id"`
	GeneratedAt        time.Time           `json:"generatedAt"`
	Seed               int64               `json:"seed"`
	Config             HotelConfig         `json:"config"`
	Devices            []Device            `json:"devices"`
	Rooms              []Room              `json:"rooms"`
	Operations         []OperationData     `json:"operations"`
	Adjustments        []DeviceAdjustment  `json:"adjustments"`
	FaultWarnings      []FaultWarning      `json:"faultWarnings"`
	DeviceLinkages     []DeviceLinkage     `json:"deviceLinkages"`
	Users              []User              `json:"users"`
	OrganizationUnits  []OrganizationUnit  `json:"organizationUnits"`
	SafetyEvents       []SafetyEvent       `json:"safetyEvents"`
	InspectionRecords  []InspectionRecord  `json:"inspectionRecords"`
	RectificationItems []RectificationItem `json:"rectificationItems"`
}

// Records devolve a coleção pedida como slice genérico, pronta para serialização.
func (s *Snapshot) Records(c Collection) []any {
	switch c {
	case CollectionDevices:
		return toAny(s.Devices)
	case CollectionRooms:
		return toAny(s.Rooms)
	case CollectionOperations:
		return toAny(s.Operations)
	case CollectionAdjustments:
		return toAny(s.Adjustments)
	case CollectionFaultWarnings:
		return toAny(s.FaultWarnings)
	case CollectionDeviceLinkages:
		return toAny(s.DeviceLinkages)
	case CollectionUsers:
		return toAny(s.Users)
	case CollectionOrganizationUnits:
		return toAny(s.OrganizationUnits)
	case CollectionSafetyEvents:
		return toAny(s.SafetyEvents)
	case CollectionInspectionRecords:
		return toAny(s.InspectionRecords)
	case CollectionRectificationItems:
		return toAny(s.RectificationItems)
	}
	return nil
}

func toAny[T any](items []T) []any {
	out := make([]any, len(items))
	for i := range items {
		out[i] = items[i]
	}
	return out
}

// Manifest resume um snapshot publicado.
type Manifest struct {
	ID          string             `json:"id"`
	GeneratedAt time.Time          `json:"generatedAt"`
	Seed        int64              `json:"seed"`
	Config      HotelConfig        `json:"config"`
	Counts      map[Collection]int `json:"counts"`
}

func (s *Snapshot) Manifest() Manifest {
	counts := make(map[Collection]int, len(AllCollections))
	for _, c := range AllCollections {
		counts[c] = len(s.Records(c))
	}
	return Manifest{
		ID:          s.ID,
		GeneratedAt: s.GeneratedAt,
		Seed:        s.Seed,
		Config:      s.Config,
		Counts:      counts,
	}
}
