package spreadsheet

import (
	"testing"

	"github.com/ValenGrassi/cinerack/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleGrid mirrors the layout of the real rack sheets: scattered header
// facts, then UPS, components, status/ports, JSON detail and patch-panel
// sections.
func sampleGrid() [][]string {
	return [][]string{
		{"Nombre del cine", "Cine Palermo"},
		{"Dirección", "Av. Corrientes 1234"},
		{"KVA Totales del Rack (suma UPS)", "3"},
		{"Consumo total de componentes (W)", "900"},
		{"Autonomía estimada (hr)", "2.1"},
		{"Fecha último cambio de baterías", "2022-03-15"},
		{"Fecha próxima de cambio (aprox +4 años)", "2026-03-15"},
		{"¿Tiene generador?", "Sí"},
		{},
		{"UPS ID", "Marca", "Modelo", "Capacidad (VA)"},
		{"UPS-1", "APC", "Smart 1000", "1000"},
		{"UPS-2", "APC", "Smart 2000", "2000"},
		{"Tipo", "Marca", "Modelo", "Consumo (W)"},
		{"Servidor", "Dell", "R740", "300"},
		{"Switch", "Cisco", "C9200", "150"},
		{"UPS", "APC", "Smart 1000", "450"},
		{},
		{"Estado", "Nº Puertos", "Puertos usados"},
		{"Usado", "0", "0"},
		{"Usado", "24", "10"},
		{"Sin usar", "0", "0"},
		{"Detalle de Puertos (JSON)"},
		{"{}"},
		{},
		{"PatchPanel ID", "Nº Puertos", "Puerto", "Estado"},
		{"PP-A", "24", "1", "Usado"},
		{"PP-A", "24", "2", "Libre"},
		{"PP-B", "12", "1", "Usado"},
	}
}

func TestExtractHeaderFacts(t *testing.T) {
	data := Extract(sampleGrid())

	assert.Equal(t, "Cine Palermo", data.CinemaName)
	assert.Equal(t, "Cine Palermo", data.Location, "location falls back to the cinema name")
	assert.Equal(t, "Av. Corrientes 1234", data.Address)
	assert.Equal(t, 3.0, data.TotalKVA)
	assert.Equal(t, 900.0, data.TotalConsumption)
	assert.Equal(t, 2.1, data.EstimatedAutonomy)
	assert.Equal(t, "2022-03-15", data.LastBatteryChange)
	assert.Equal(t, "2026-03-15", data.NextBatteryChange)
	assert.True(t, data.HasGenerator)
}

func TestExtractGeneratorFlagRequiresSi(t *testing.T) {
	grid := [][]string{{"¿Tiene generador?", "No"}}
	data := Extract(grid)
	assert.False(t, data.HasGenerator)
}

func TestExtractUPSTable(t *testing.T) {
	data := Extract(sampleGrid())

	require.Len(t, data.UPSUnits, 2)
	assert.Equal(t, UPSEntry{ID: "UPS-1", Brand: "APC", Model: "Smart 1000", CapacityVA: 1000}, data.UPSUnits[0])
	assert.Equal(t, UPSEntry{ID: "UPS-2", Brand: "APC", Model: "Smart 2000", CapacityVA: 2000}, data.UPSUnits[1])
}

func TestExtractUPSTableStopsOnMissingID(t *testing.T) {
	grid := [][]string{
		{"UPS ID", "Marca", "Modelo", "Capacidad"},
		{"UPS-1", "APC", "Smart", "1000"},
		{"", "ghost", "row", "500"},
		{"UPS-2", "APC", "Smart", "2000"},
	}
	data := Extract(grid)
	require.Len(t, data.UPSUnits, 1)
	assert.Equal(t, "UPS-1", data.UPSUnits[0].ID)
}

func TestExtractComponentsTable(t *testing.T) {
	data := Extract(sampleGrid())

	require.Len(t, data.Components, 3)
	assert.Equal(t, models.KindServer, data.Components[0].Kind)
	assert.Equal(t, "Dell", data.Components[0].Brand)
	assert.Equal(t, 300.0, data.Components[0].ConsumptionW)
	assert.Equal(t, models.KindSwitch, data.Components[1].Kind)
	assert.Equal(t, models.KindUPS, data.Components[2].Kind)
}

func TestExtractComponentsTableStopConditions(t *testing.T) {
	tests := []struct {
		name     string
		stopRow  []string
		expected int
	}{
		{
			name:     "Missing brand stops the scan",
			stopRow:  []string{"Switch", "", "C9200", "150"},
			expected: 1,
		},
		{
			name:     "PatchPanel marker stops the scan",
			stopRow:  []string{"PatchPanel ID", "x", "y", "z"},
			expected: 1,
		},
		{
			name:     "Estado marker stops the scan",
			stopRow:  []string{"Estado", "Nº Puertos", "Puertos usados", "-"},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := [][]string{
				{"Tipo", "Marca", "Modelo", "Consumo (W)"},
				{"Servidor", "Dell", "R740", "300"},
				tt.stopRow,
				{"Router", "Cisco", "ISR", "80"},
			}
			data := Extract(grid)
			assert.Len(t, data.Components, tt.expected)
		})
	}
}

func TestExtractComponentsTableSkipsShortRows(t *testing.T) {
	grid := [][]string{
		{"Tipo", "Marca", "Modelo", "Consumo (W)"},
		{"Servidor", "Dell", "R740", "300"},
		{"stray"},
		{"Router", "Cisco", "ISR", "80"},
	}
	data := Extract(grid)
	require.Len(t, data.Components, 2)
	assert.Equal(t, models.KindRouter, data.Components[1].Kind)
}

func TestExtractStatusPortsTable(t *testing.T) {
	data := Extract(sampleGrid())

	require.Len(t, data.StatusPorts, 3)
	assert.Equal(t, StatusPortsRow{Estado: "usado", TotalPorts: 0, UsedPorts: 0}, data.StatusPorts[0])
	assert.Equal(t, StatusPortsRow{Estado: "usado", TotalPorts: 24, UsedPorts: 10}, data.StatusPorts[1])
	assert.Equal(t, "sin usar", data.StatusPorts[2].Estado)
}

func TestExtractStatusPortsSkipsUnrelatedRows(t *testing.T) {
	grid := [][]string{
		{"Estado", "Nº Puertos", "Puertos usados"},
		{"Usado", "8", "4"},
		{"otra cosa", "1", "1"},
		{"Sin usar", "0", "0"},
		{"Detalle de algo", "x", "y"},
		{"Usado", "16", "2"},
	}
	data := Extract(grid)
	require.Len(t, data.StatusPorts, 2, "non-matching rows skipped, detalle row ends the section")
}

func TestExtractPortDetailColumn(t *testing.T) {
	grid := [][]string{
		{"Detalle de Puertos (JSON)"},
		{`{"1-3":"Switch A"}`},
		{`{"5":"Switch B"}`},
		{"{}"},
		{`{"9":"ghost"}`},
	}
	data := Extract(grid)
	require.Len(t, data.PortDetailJSON, 3, "the terminating {} is recorded, later rows are not")
	assert.Equal(t, `{"1-3":"Switch A"}`, data.PortDetailJSON[0])
	assert.Equal(t, "{}", data.PortDetailJSON[2])
}

func TestExtractPatchPanelTable(t *testing.T) {
	data := Extract(sampleGrid())

	require.Len(t, data.PatchPanelPorts, 3)
	assert.Equal(t, PatchPanelPortRow{PatchPanelID: "PP-A", TotalPorts: 24, PortNumber: 1, IsConnected: true}, data.PatchPanelPorts[0])
	assert.False(t, data.PatchPanelPorts[1].IsConnected)
	assert.Equal(t, "PP-B", data.PatchPanelPorts[2].PatchPanelID)
}

func TestExtractMissingSectionsDegradeToEmpty(t *testing.T) {
	data := Extract([][]string{{"Nombre del cine", "Cine Solo"}})

	assert.Equal(t, "Cine Solo", data.CinemaName)
	assert.Empty(t, data.UPSUnits)
	assert.Empty(t, data.Components)
	assert.Empty(t, data.StatusPorts)
	assert.Empty(t, data.PortDetailJSON)
	assert.Empty(t, data.PatchPanelPorts)
}
