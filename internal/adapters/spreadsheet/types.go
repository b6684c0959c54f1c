package spreadsheet

import "github.com/ValenGrassi/cinerack/internal/domain/models"

// UPSEntry is one row of the spreadsheet's UPS table
type UPSEntry struct {
	ID         string
	Brand      string
	Model      string
	CapacityVA float64
}

// ComponentRow is one row of the components table. Kind is already
// classified from the free-text type label.
type ComponentRow struct {
	Label        string
	Kind         models.EquipmentKind
	Brand        string
	Model        string
	ConsumptionW float64
}

// StatusPortsRow is one row of the status/ports table
type StatusPortsRow struct {
	Estado     string
	TotalPorts int
	UsedPorts  int
}

// PatchPanelPortRow is one row of the patch-panel ports table
type PatchPanelPortRow struct {
	PatchPanelID string
	TotalPorts   int
	PortNumber   int
	IsConnected  bool
}

// ExtractedRackData is the intermediate representation produced by
// scanning a rack spreadsheet. The components, status/ports and
// port-detail tables are correlated positionally by row index, not by
// any shared key; joinComponentTables performs that pairing.
type ExtractedRackData struct {
	CinemaName        string
	Location          string
	Address           string
	TotalKVA          float64
	TotalConsumption  float64
	EstimatedAutonomy float64
	LastBatteryChange string
	NextBatteryChange string
	HasGenerator      bool

	UPSUnits        []UPSEntry
	Components      []ComponentRow
	StatusPorts     []StatusPortsRow
	PortDetailJSON  []string
	PatchPanelPorts []PatchPanelPortRow
}
