package generators

import (
	"time"

	"github.com/google/uuid"

	"github.com/patrik-rangel/hotel-data-generator/internal/domain/entities"
	"github.com/patrik-rangel/hotel-data-generator/internal/domain/fixtures"
)

const (
	DefaultOperationDays = 30
	DefaultAdjustments   = 20000
)

type Options struct {
	OperationDays int
	Adjustments   int
	Seed          int64
}

func DefaultOptions() Options {
	return Options{OperationDays: DefaultOperationDays, Adjustments: DefaultAdjustments}
}

// BuildSnapshot executa todos os geradores uma vez e junta as fixtures estáticas.
// Com Seed diferente de zero o conteúdo é reproduzível (o ID continua único).
func BuildSnapshot(cfg entities.HotelConfig, opts Options, now time.Time) *entities.Snapshot {
	seed := opts.Seed
	if seed == 0 {
		seed = now.UnixNano()
	}
	rng := NewRand(seed)

	return &entities.Snapshot{
		ID:                 uuid.NewString(),
		GeneratedAt:        now,
		Seed:               seed,
		Config:             cfg,
		Devices:            GenerateHotelDevices(cfg, rng, now),
		Rooms:              GenerateHotelRooms(cfg, rng),
		Operations:         GenerateOperationData(opts.OperationDays, now, rng),
		Adjustments:        GenerateDeviceAdjustments(cfg, opts.Adjustments, now, rng),
		FaultWarnings:      fixtures.FaultWarnings(),
		DeviceLinkages:     fixtures.DeviceLinkages(),
		Users:              fixtures.Users(),
		OrganizationUnits:  fixtures.OrganizationUnits(),
		SafetyEvents:       fixtures.SafetyEvents(),
		InspectionRecords:  fixtures.InspectionRecords(),
		RectificationItems: fixtures.RectificationItems(),
	}
}
