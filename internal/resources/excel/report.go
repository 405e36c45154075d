package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/patrik-rangel/hotel-data-generator/internal/domain/entities"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var AdjustmentHeader = []string{
	"ID", "Device ID", "Device Name", "Room", "Type", "Old Value", "New Value",
	"Adjusted By", "Timestamp", "Reason", "Energy Impact (kWh)",
}

var OperationHeader = []string{
	"Date", "Occupancy (%)", "Energy (kWh)", "Energy Cost", "Maintenance Cost",
	"Device Uptime (%)", "Guest Satisfaction", "Avg Room Temp (°C)", "Peak Energy Hour", "CO2 (kg)",
}

func AdjustmentsWorkbook(adjs []entities.DeviceAdjustment) ([]byte, error) {
	rows := make([][]any, len(adjs))
	for i, a := range adjs {
		rows[i] = []any{
			a.ID, a.DeviceID, a.DeviceName, a.RoomNumber, string(a.AdjustmentType), a.OldValue, a.NewValue,
			string(a.AdjustedBy), a.Timestamp, a.Reason, a.EnergyImpact,
		}
	}
	return workbook("Device Adjustments", AdjustmentHeader, rows)
}

func OperationsWorkbook(ops []entities.OperationData) ([]byte, error) {
	rows := make([][]any, len(ops))
	for i, o := range ops {
		rows[i] = []any{
			o.Date, o.RoomOccupancyRate, o.EnergyConsumption, o.EnergyCost, o.MaintenanceCost,
			o.DeviceUptime, o.GuestSatisfaction, o.AverageRoomTemperature, o.PeakEnergyHour, o.CO2Emission,
		}
	}
	return workbook("Operations", OperationHeader, rows)
}

// workbook usa o StreamWriter, necessário para os ~20 mil ajustes.
func workbook(sheetName string, header []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create stream writer: %w", err)
	}
	if err := sw.SetColWidth(1, len(header), 18); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	headerCells := make([]any, len(header))
	for i, h := range header {
		headerCells[i] = excelize.Cell{StyleID: headerStyle, Value: h}
	}
	if err := sw.SetRow("A1", headerCells); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := sw.SetRow(cell, row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush sheet: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
