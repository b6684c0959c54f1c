package spreadsheet

import (
	"strconv"
	"strings"

	"github.com/ValenGrassi/cinerack/internal/domain/models"
)

// Header fact labels as they appear in column A of the rack sheets.
// Matching is case-insensitive but accent-sensitive.
const (
	labelCinemaName        = "nombre del cine"
	labelAddress           = "dirección"
	labelTotalKVA          = "kva totales del rack (suma ups)"
	labelTotalConsumption  = "consumo total de componentes (w)"
	labelEstimatedAutonomy = "autonomía estimada (hr)"
	labelLastBatteryChange = "fecha último cambio de baterías"
	labelNextBatteryChange = "fecha próxima de cambio (aprox +4 años)"
	labelHasGenerator      = "¿tiene generador?"
)

func norm(cell string) string {
	return strings.ToLower(strings.TrimSpace(cell))
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func cellFloat(row []string, i int) float64 {
	v, err := strconv.ParseFloat(cell(row, i), 64)
	if err != nil {
		return 0
	}
	return v
}

func cellInt(row []string, i int) int {
	return int(cellFloat(row, i))
}

// Extract interprets a rack spreadsheet grid. It runs six independent
// linear scans, one per section; a section that is absent simply leaves
// its part of the result empty. Extract never fails: malformed rows are
// skipped or end their section's scan.
func Extract(grid [][]string) *ExtractedRackData {
	data := &ExtractedRackData{}

	extractHeaderFacts(grid, data)
	data.UPSUnits = extractUPSTable(grid)
	data.Components = extractComponentsTable(grid)
	data.StatusPorts = extractStatusPortsTable(grid)
	data.PortDetailJSON = extractPortDetailColumn(grid)
	data.PatchPanelPorts = extractPatchPanelTable(grid)

	return data
}

// extractHeaderFacts scans every row for the known site-level labels.
// The header section is not contiguous, so the whole grid is visited.
func extractHeaderFacts(grid [][]string, data *ExtractedRackData) {
	for _, row := range grid {
		if len(row) < 2 {
			continue
		}
		value := cell(row, 1)

		switch norm(row[0]) {
		case labelCinemaName:
			data.CinemaName = value
			// the sheets carry no separate location column
			data.Location = value
		case labelAddress:
			data.Address = value
		case labelTotalKVA:
			data.TotalKVA = cellFloat(row, 1)
		case labelTotalConsumption:
			data.TotalConsumption = cellFloat(row, 1)
		case labelEstimatedAutonomy:
			data.EstimatedAutonomy = cellFloat(row, 1)
		case labelLastBatteryChange:
			data.LastBatteryChange = value
		case labelNextBatteryChange:
			data.NextBatteryChange = value
		case labelHasGenerator:
			data.HasGenerator = strings.Contains(strings.ToLower(value), "sí")
		}
	}
}

// extractUPSTable reads the rows following the "UPS ID" marker
func extractUPSTable(grid [][]string) []UPSEntry {
	start := -1
	for i, row := range grid {
		if len(row) > 0 && norm(row[0]) == "ups id" {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var units []UPSEntry
	for _, row := range grid[start:] {
		if len(row) < 4 || cell(row, 0) == "" || strings.Contains(norm(row[0]), "tipo") {
			break
		}
		entry := UPSEntry{
			ID:         cell(row, 0),
			Brand:      cell(row, 1),
			Model:      cell(row, 2),
			CapacityVA: cellFloat(row, 3),
		}
		if entry.ID != "" && entry.Brand != "" && entry.Model != "" && entry.CapacityVA > 0 {
			units = append(units, entry)
		}
	}
	return units
}

// extractComponentsTable reads the rows following the
// Tipo / Marca / Modelo / Consumo header
func extractComponentsTable(grid [][]string) []ComponentRow {
	start := -1
	for i, row := range grid {
		if len(row) >= 4 &&
			norm(row[0]) == "tipo" &&
			norm(row[1]) == "marca" &&
			norm(row[2]) == "modelo" &&
			strings.Contains(norm(row[3]), "consumo") {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var components []ComponentRow
	for _, row := range grid[start:] {
		if len(row) < 4 {
			continue
		}
		label := cell(row, 0)
		brand := cell(row, 1)
		model := cell(row, 2)
		lowerLabel := strings.ToLower(label)

		if label == "" || brand == "" || model == "" ||
			strings.Contains(lowerLabel, "patchpanel") ||
			strings.Contains(lowerLabel, "estado") ||
			strings.Contains(lowerLabel, "detalle") {
			break
		}

		components = append(components, ComponentRow{
			Label:        label,
			Kind:         models.ClassifyEquipmentLabel(label),
			Brand:        brand,
			Model:        model,
			ConsumptionW: cellFloat(row, 3),
		})
	}
	return components
}

// extractStatusPortsTable reads the rows following the
// Estado / Nº Puertos header. Rows that are neither "usado" nor
// "sin usar" are skipped, not fatal.
func extractStatusPortsTable(grid [][]string) []StatusPortsRow {
	start := -1
	for i, row := range grid {
		if len(row) >= 3 &&
			strings.Contains(norm(row[0]), "estado") &&
			strings.Contains(norm(row[1]), "nº puertos") {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var rows []StatusPortsRow
	for _, row := range grid[start:] {
		if len(row) < 3 {
			continue
		}
		estado := norm(row[0])
		if strings.Contains(estado, "detalle") || strings.Contains(estado, "ubicación") {
			break
		}
		if estado == "" || !(strings.Contains(estado, "usado") || strings.Contains(estado, "sin usar")) {
			continue
		}
		rows = append(rows, StatusPortsRow{
			Estado:     estado,
			TotalPorts: cellInt(row, 1),
			UsedPorts:  cellInt(row, 2),
		})
	}
	return rows
}

// extractPortDetailColumn reads the per-component JSON column following
// the "Detalle de puertos (JSON)" marker. An empty cell or a literal "{}"
// ends the column, after being recorded.
func extractPortDetailColumn(grid [][]string) []string {
	start := -1
	for i, row := range grid {
		if len(row) > 0 &&
			strings.Contains(norm(row[0]), "detalle de puertos") &&
			strings.Contains(norm(row[0]), "json") {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var details []string
	for _, row := range grid[start:] {
		if len(row) < 1 {
			continue
		}
		value := cell(row, 0)
		if value == "" {
			value = "{}"
		}
		details = append(details, value)
		if value == "{}" {
			break
		}
	}
	return details
}

// extractPatchPanelTable reads the rows following the "PatchPanel ID" marker
func extractPatchPanelTable(grid [][]string) []PatchPanelPortRow {
	start := -1
	for i, row := range grid {
		if len(row) > 0 && norm(row[0]) == "patchpanel id" {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var rows []PatchPanelPortRow
	for _, row := range grid[start:] {
		if len(row) < 4 || cell(row, 0) == "" {
			break
		}
		ppID := cell(row, 0)
		totalPorts := cellInt(row, 1)
		portNumber := cellInt(row, 2)
		status := norm(row[3])

		if ppID == "" || totalPorts == 0 || portNumber == 0 {
			continue
		}
		rows = append(rows, PatchPanelPortRow{
			PatchPanelID: ppID,
			TotalPorts:   totalPorts,
			PortNumber:   portNumber,
			IsConnected:  strings.Contains(status, "usado") || strings.Contains(status, "used"),
		})
	}
	return rows
}
