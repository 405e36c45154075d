package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/patrik-rangel/hotel-data-generator/internal/domain/entities"
)

func TestAdjustmentsWorkbook(t *testing.T) {
	adjs := []entities.DeviceAdjustment{
		{ID: "000002", DeviceID: "AC-1601", DeviceName: "1601房间空调", RoomNumber: "1601", AdjustmentType: entities.AdjustTemperature,
			OldValue: 24, NewValue: 22.5, AdjustedBy: entities.ActorGuest, Timestamp: "2024-03-15 11:58:00", Reason: "客人感觉太热", EnergyImpact: 1.2},
		{ID: "000001", DeviceID: "LIGHT-0203", DeviceName: "0203房间灯光", RoomNumber: "0203", AdjustmentType: entities.AdjustBrightness,
			OldValue: 80, NewValue: 100, AdjustedBy: entities.ActorStaff, Timestamp: "2024-03-15 11:40:00", Reason: "清洁打扫", EnergyImpact: 0.4},
	}

	body, err := AdjustmentsWorkbook(adjs)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Device Adjustments")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, AdjustmentHeader, rows[0])
	assert.Equal(t, "000002", rows[1][0])
	assert.Equal(t, "1601", rows[1][3])
	assert.Equal(t, "guest", rows[1][7])
	assert.Equal(t, "LIGHT-0203", rows[2][1])
}

func TestOperationsWorkbook_EmptyHasHeaderOnly(t *testing.T) {
	body, err := OperationsWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Operations")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, OperationHeader, rows[0])
}
