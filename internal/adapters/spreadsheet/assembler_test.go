package spreadsheet

import (
	"testing"

	"github.com/ValenGrassi/cinerack/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleEndToEnd(t *testing.T) {
	grid := [][]string{
		{"Nombre del cine", "Cine Test"},
		{"Tipo", "Marca", "Modelo", "Consumo (W)"},
		{"Servidor", "Dell", "R740", "300"},
		{"Estado", "Nº Puertos", "Puertos usados"},
		{"usado", "0", "0"},
	}

	data := Extract(grid)
	records := Assemble(data)

	require.Len(t, records, 1)
	server := records[0]
	assert.Equal(t, models.KindServer, server.Kind)
	assert.Equal(t, "server-1", server.ID)
	assert.Equal(t, models.StatusOnline, server.Status)
	assert.Equal(t, 300.0, server.PowerConsumptionWatts)
	assert.Equal(t, 1, server.Position)
	assert.Equal(t, "Dell R740", server.Name)
	assert.Equal(t, "Dell R740 - SERVER", server.Description)
}

func TestAssembleComponentStatusPairing(t *testing.T) {
	data := &ExtractedRackData{
		Components: []ComponentRow{
			{Label: "Switch", Kind: models.KindSwitch, Brand: "Cisco", Model: "C9200", ConsumptionW: 150},
			{Label: "Router", Kind: models.KindRouter, Brand: "Cisco", Model: "ISR", ConsumptionW: 80},
		},
		StatusPorts: []StatusPortsRow{
			{Estado: "usado", TotalPorts: 24, UsedPorts: 10},
			{Estado: "sin usar", TotalPorts: 8, UsedPorts: 0},
		},
		PortDetailJSON: []string{"{}", "{}"},
	}

	records := Assemble(data)
	require.Len(t, records, 2)

	assert.Equal(t, models.StatusOnline, records[0].Status)
	require.NotNil(t, records[0].Network)
	assert.Equal(t, 24, records[0].Network.TotalPorts)
	assert.Equal(t, 10, records[0].Network.ActivePorts)

	assert.Equal(t, models.StatusMaintenance, records[1].Status)
	assert.Equal(t, "Cisco ISR - ROUTER (SIN USAR)", records[1].Description)
}

// Components past the end of the status and JSON tables get default
// entries, not errors.
func TestAssembleMismatchedTableLengths(t *testing.T) {
	data := &ExtractedRackData{
		Components: []ComponentRow{
			{Label: "Switch", Kind: models.KindSwitch, Brand: "Cisco", Model: "A", ConsumptionW: 10},
			{Label: "Switch", Kind: models.KindSwitch, Brand: "Cisco", Model: "B", ConsumptionW: 10},
		},
		StatusPorts: []StatusPortsRow{
			{Estado: "usado", TotalPorts: 8, UsedPorts: 2},
		},
	}

	records := Assemble(data)
	require.Len(t, records, 2)

	assert.Equal(t, 8, records[0].Network.TotalPorts)

	// second component fell off both tables
	assert.Equal(t, models.StatusOnline, records[1].Status, "missing status defaults to usado")
	assert.Equal(t, 0, records[1].Network.TotalPorts)
	assert.Empty(t, records[1].Network.PortDetails)
}

func TestAssembleUPSDerivedSpec(t *testing.T) {
	data := &ExtractedRackData{
		EstimatedAutonomy: 2.1,
		LastBatteryChange: "2022-03-15",
		UPSUnits: []UPSEntry{
			{ID: "UPS-1", Brand: "APC", Model: "Smart 2000", CapacityVA: 2000},
		},
		Components: []ComponentRow{
			{Label: "UPS", Kind: models.KindUPS, Brand: "apc", Model: "SMART 2000", ConsumptionW: 450},
		},
		StatusPorts: []StatusPortsRow{{Estado: "usado"}},
	}

	records := Assemble(data)
	require.Len(t, records, 1)
	ups := records[0].UPS
	require.NotNil(t, ups)

	assert.Equal(t, 2000.0, ups.CapacityVA, "matched case-insensitively by brand and model")
	assert.Equal(t, "2000VA / 1800W", ups.Capacity)
	assert.Equal(t, 90, ups.BatteryHealth)
	assert.Equal(t, 22, ups.LoadPercentage, "floor(450/2000*100)")
	assert.Equal(t, 126, ups.EstimatedRuntimeMin, "floor(2.1*60)")
	assert.Equal(t, "2022-03-15", ups.BatteryInstallDate)
	assert.Equal(t, models.DefaultBatteryLifespanMonths, ups.BatteryLifespanMonths)
}

func TestAssembleUPSUnmatchedDefaultsCapacity(t *testing.T) {
	data := &ExtractedRackData{
		Components: []ComponentRow{
			{Label: "UPS", Kind: models.KindUPS, Brand: "NoName", Model: "X", ConsumptionW: 500},
		},
	}

	records := Assemble(data)
	require.Len(t, records, 1)
	ups := records[0].UPS
	require.NotNil(t, ups)
	assert.Equal(t, 1000.0, ups.CapacityVA)
	assert.Equal(t, 50, ups.LoadPercentage)
}

func TestExpandPortDetailsRanges(t *testing.T) {
	ports := expandPortDetails(`{"1-3":"Switch A","5":"Switch B"}`, 6, 4)

	require.Len(t, ports, 6)
	for i, port := range ports {
		assert.Equal(t, i+1, port.PortNumber, "ports ordered ascending, each present once")
	}

	assert.True(t, ports[0].IsConnected)
	assert.Equal(t, "Switch A", ports[0].ConnectedTo)
	assert.True(t, ports[2].IsConnected)
	assert.Equal(t, "Switch A", ports[2].ConnectedTo)
	assert.False(t, ports[3].IsConnected)
	assert.True(t, ports[4].IsConnected)
	assert.Equal(t, "Switch B", ports[4].ConnectedTo)
	assert.False(t, ports[5].IsConnected)
}

func TestExpandPortDetailsNoTotalFillsTo24(t *testing.T) {
	ports := expandPortDetails(`{"2":"AP"}`, 0, 0)
	require.Len(t, ports, 24)
	assert.True(t, ports[1].IsConnected)
}

func TestExpandPortDetailsInvalidJSONFallsBack(t *testing.T) {
	ports := expandPortDetails(`{not json`, 4, 2)

	require.Len(t, ports, 4)
	assert.True(t, ports[0].IsConnected)
	assert.True(t, ports[1].IsConnected)
	assert.False(t, ports[2].IsConnected)
	assert.False(t, ports[3].IsConnected)
	assert.Equal(t, "Puerto en uso", ports[0].Description)
	assert.Equal(t, "Puerto libre", ports[2].Description)
}

func TestExpandPortDetailsEmptyJSON(t *testing.T) {
	assert.Nil(t, expandPortDetails("{}", 0, 0))

	ports := expandPortDetails("{}", 3, 1)
	require.Len(t, ports, 3)
	assert.True(t, ports[0].IsConnected)
	assert.False(t, ports[1].IsConnected)
}

func TestAssemblePatchPanels(t *testing.T) {
	data := &ExtractedRackData{
		Components: []ComponentRow{
			{Label: "Servidor", Kind: models.KindServer, Brand: "Dell", Model: "R740", ConsumptionW: 300},
		},
		PatchPanelPorts: []PatchPanelPortRow{
			{PatchPanelID: "PP-A", TotalPorts: 24, PortNumber: 1, IsConnected: true},
			{PatchPanelID: "PP-A", TotalPorts: 24, PortNumber: 2, IsConnected: false},
			{PatchPanelID: "PP-B", TotalPorts: 12, PortNumber: 1, IsConnected: true},
		},
	}

	records := Assemble(data)
	require.Len(t, records, 3)

	ppA := records[1]
	assert.Equal(t, "PP-A", ppA.ID, "patch panel keeps its spreadsheet id")
	assert.Equal(t, models.KindPatchPanel, ppA.Kind)
	assert.Equal(t, 2, ppA.Position, "positions continue after parsed components")
	assert.Equal(t, 0.0, ppA.PowerConsumptionWatts)
	require.NotNil(t, ppA.Network)
	assert.Equal(t, 24, ppA.Network.TotalPorts)
	assert.Equal(t, 1, ppA.Network.ActivePorts)
	require.Len(t, ppA.Network.PortDetails, 2)
	assert.Equal(t, "Dispositivo conectado", ppA.Network.PortDetails[0].ConnectedTo)

	ppB := records[2]
	assert.Equal(t, "PP-B", ppB.ID)
	assert.Equal(t, 3, ppB.Position)
	assert.Equal(t, 12, ppB.Network.TotalPorts)
}
