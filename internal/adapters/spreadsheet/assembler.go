package spreadsheet

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/ValenGrassi/cinerack/internal/domain/models"
)

// defaultUPSCapacityVA is assumed when a UPS component has no matching
// row in the UPS table
const defaultUPSCapacityVA = 1000

// componentBundle pairs one components-table row with its status-table
// row and port-detail JSON cell
type componentBundle struct {
	row      ComponentRow
	status   StatusPortsRow
	portJSON string
}

// joinComponentTables correlates the three independently scanned tables
// by row index. The coupling is positional on purpose: the sheets carry
// no shared key. Components beyond the end of the status table or the
// JSON column get default entries (usado, no ports, empty JSON).
func joinComponentTables(data *ExtractedRackData) []componentBundle {
	bundles := make([]componentBundle, len(data.Components))
	for i, row := range data.Components {
		bundle := componentBundle{
			row:      row,
			status:   StatusPortsRow{Estado: "usado"},
			portJSON: "{}",
		}
		if i < len(data.StatusPorts) {
			bundle.status = data.StatusPorts[i]
		}
		if i < len(data.PortDetailJSON) {
			bundle.portJSON = data.PortDetailJSON[i]
		}
		bundles[i] = bundle
	}
	return bundles
}

// Assemble converts the intermediate representation into the canonical
// equipment record list: one record per component row, followed by one
// synthesized record per distinct patch panel. Malformed per-row data
// never fails the assembly; the extractor has already dropped it.
func Assemble(data *ExtractedRackData) []models.EquipmentRecord {
	var records []models.EquipmentRecord

	for i, bundle := range joinComponentTables(data) {
		records = append(records, buildComponentRecord(data, bundle, i+1))
	}

	records = append(records, buildPatchPanels(data, len(records))...)
	return records
}

func buildComponentRecord(data *ExtractedRackData, bundle componentBundle, position int) models.EquipmentRecord {
	kind := bundle.row.Kind
	isUsed := strings.Contains(bundle.status.Estado, "usado")

	status := models.StatusMaintenance
	if isUsed {
		status = models.StatusOnline
	}

	record := models.EquipmentRecord{
		ID:                    fmt.Sprintf("%s-%d", kind, position),
		Kind:                  kind,
		Name:                  bundle.row.Brand + " " + bundle.row.Model,
		Model:                 bundle.row.Model,
		Status:                status,
		Position:              position,
		PowerConsumptionWatts: bundle.row.ConsumptionW,
		Description:           componentDescription(bundle.row, kind, isUsed),
	}

	switch {
	case kind == models.KindUPS:
		record.UPS = buildUPSSpec(data, bundle)
	case kind == models.KindServer:
		record.Server = &models.ServerSpec{}
	case models.HasNetworkPorts(kind):
		record.Network = &models.NetworkSpec{
			TotalPorts:  bundle.status.TotalPorts,
			ActivePorts: bundle.status.UsedPorts,
			PortDetails: expandPortDetails(bundle.portJSON, bundle.status.TotalPorts, bundle.status.UsedPorts),
		}
	}

	return record
}

func componentDescription(row ComponentRow, kind models.EquipmentKind, isUsed bool) string {
	kindLabel := strings.ToUpper(strings.ReplaceAll(string(kind), "-", " "))
	desc := fmt.Sprintf("%s %s - %s", row.Brand, row.Model, kindLabel)
	if !isUsed {
		desc += " (SIN USAR)"
	}
	return desc
}

// buildUPSSpec derives the UPS display fields. Capacity comes from the
// UPS table matched by brand and model, falling back to 1000VA.
func buildUPSSpec(data *ExtractedRackData, bundle componentBundle) *models.UPSSpec {
	capacityVA := float64(defaultUPSCapacityVA)
	for _, unit := range data.UPSUnits {
		if strings.EqualFold(unit.Brand, bundle.row.Brand) && strings.EqualFold(unit.Model, bundle.row.Model) {
			capacityVA = unit.CapacityVA
			break
		}
	}

	return &models.UPSSpec{
		CapacityVA:            capacityVA,
		Capacity:              fmt.Sprintf("%gVA / %dW", capacityVA, int(math.Floor(capacityVA*models.UPSEfficiencyFactor))),
		BatteryHealth:         90,
		BatteryInstallDate:    data.LastBatteryChange,
		BatteryLifespanMonths: models.DefaultBatteryLifespanMonths,
		LoadPercentage:        int(math.Floor(bundle.row.ConsumptionW / capacityVA * 100)),
		EstimatedRuntimeMin:   int(math.Floor(data.EstimatedAutonomy * 60)),
	}
}

// expandPortDetails turns the compact JSON notation into the full port
// list. Keys are a single port number ("5") or an inclusive range
// ("1-20"); values name the far-end endpoint. Remaining ports are filled
// as unconnected. On JSON parse failure the fallback is a binary fill:
// ports 1..usedPorts connected, the rest free. The parse error is never
// propagated.
func expandPortDetails(portJSON string, totalPorts, usedPorts int) []models.PortRecord {
	trimmed := strings.TrimSpace(portJSON)
	if trimmed == "" || trimmed == "{}" {
		return defaultPortFill(totalPorts, usedPorts)
	}

	var entries map[string]any
	if err := json.Unmarshal([]byte(trimmed), &entries); err != nil {
		return defaultPortFill(totalPorts, usedPorts)
	}

	connected := map[int]models.PortRecord{}
	maxConnected := 0
	for key, value := range entries {
		endpoint := fmt.Sprintf("%v", value)
		for _, portNumber := range expandPortKey(key) {
			connected[portNumber] = models.PortRecord{
				PortNumber:  portNumber,
				IsConnected: true,
				ConnectedTo: endpoint,
				Description: "Conectado a " + endpoint,
			}
			if portNumber > maxConnected {
				maxConnected = portNumber
			}
		}
	}

	maxPorts := totalPorts
	if maxPorts == 0 {
		maxPorts = maxConnected
		if maxPorts < 24 {
			maxPorts = 24
		}
	}

	ports := make([]models.PortRecord, 0, maxPorts)
	for _, port := range connected {
		ports = append(ports, port)
	}
	for p := 1; p <= maxPorts; p++ {
		if _, ok := connected[p]; !ok {
			ports = append(ports, models.PortRecord{
				PortNumber:  p,
				Description: "Puerto libre",
			})
		}
	}
	sort.Slice(ports, func(i, j int) bool { return ports[i].PortNumber < ports[j].PortNumber })
	return ports
}

// expandPortKey resolves a port-detail key to the port numbers it covers
func expandPortKey(key string) []int {
	if start, end, ok := strings.Cut(key, "-"); ok {
		from, err1 := strconv.Atoi(strings.TrimSpace(start))
		to, err2 := strconv.Atoi(strings.TrimSpace(end))
		if err1 != nil || err2 != nil {
			return nil
		}
		var ports []int
		for p := from; p <= to; p++ {
			ports = append(ports, p)
		}
		return ports
	}

	port, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil || port == 0 {
		return nil
	}
	return []int{port}
}

// defaultPortFill builds the binary port layout used when no JSON detail
// is available: ports 1..usedPorts in use, the rest free
func defaultPortFill(totalPorts, usedPorts int) []models.PortRecord {
	if totalPorts <= 0 {
		return nil
	}
	ports := make([]models.PortRecord, 0, totalPorts)
	for p := 1; p <= totalPorts; p++ {
		port := models.PortRecord{PortNumber: p, Description: "Puerto libre"}
		if p <= usedPorts {
			port.IsConnected = true
			port.Description = "Puerto en uso"
		}
		ports = append(ports, port)
	}
	return ports
}

// buildPatchPanels synthesizes one record per distinct patch panel id,
// in encounter order, with positions continuing after the parsed
// components
func buildPatchPanels(data *ExtractedRackData, positionOffset int) []models.EquipmentRecord {
	var order []string
	panels := map[string]*models.EquipmentRecord{}

	for _, port := range data.PatchPanelPorts {
		panel, ok := panels[port.PatchPanelID]
		if !ok {
			order = append(order, port.PatchPanelID)
			panel = &models.EquipmentRecord{
				ID:          port.PatchPanelID,
				Kind:        models.KindPatchPanel,
				Name:        "Panel de Conexiones " + port.PatchPanelID,
				Status:      models.StatusOnline,
				Position:    positionOffset + len(order),
				Description: fmt.Sprintf("Panel de conexiones de %d puertos", port.TotalPorts),
				Network:     &models.NetworkSpec{TotalPorts: port.TotalPorts},
			}
			panels[port.PatchPanelID] = panel
		}

		record := models.PortRecord{
			PortNumber:  port.PortNumber,
			IsConnected: port.IsConnected,
			Description: "Puerto libre",
		}
		if port.IsConnected {
			record.ConnectedTo = "Dispositivo conectado"
			record.Description = "Puerto en uso"
			panel.Network.ActivePorts++
		}
		panel.Network.PortDetails = append(panel.Network.PortDetails, record)
	}

	records := make([]models.EquipmentRecord, 0, len(order))
	for _, id := range order {
		records = append(records, *panels[id])
	}
	return records
}
