package models

import (
	"errors"
	"time"
)

// EquipmentKind represents the kind of equipment mounted in a rack
type EquipmentKind string

const (
	KindServer             EquipmentKind = "server"
	KindPatchPanel         EquipmentKind = "patch-panel"
	KindUPS                EquipmentKind = "ups"
	KindSwitch             EquipmentKind = "switch"
	KindRouter             EquipmentKind = "router"
	KindFirewall           EquipmentKind = "firewall"
	KindWirelessController EquipmentKind = "wireless-controller"
	KindConverter          EquipmentKind = "converter"
)

// EquipmentStatus represents the operational status of a rack component
type EquipmentStatus string

const (
	StatusOnline      EquipmentStatus = "online"
	StatusOffline     EquipmentStatus = "offline"
	StatusWarning     EquipmentStatus = "warning"
	StatusMaintenance EquipmentStatus = "maintenance"
)

var (
	ErrInvalidKind    = errors.New("invalid equipment kind")
	ErrInvalidStatus  = errors.New("invalid equipment status")
	ErrInvalidPorts   = errors.New("invalid port list")
	ErrCinemaNotFound = errors.New("cinema not found")
	ErrCinemaExists   = errors.New("cinema already exists")
)

// PortRecord describes one physical port on a network-capable component
type PortRecord struct {
	PortNumber  int    `json:"portNumber" bson:"port_number"`
	IsConnected bool   `json:"isConnected" bson:"is_connected"`
	ConnectedTo string `json:"connectedTo,omitempty" bson:"connected_to,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

// NetworkSpec holds port-level data for switches, routers, firewalls,
// wireless controllers, converters and patch panels
type NetworkSpec struct {
	TotalPorts  int          `json:"totalPorts" bson:"total_ports"`
	ActivePorts int          `json:"activePorts" bson:"active_ports"`
	PortDetails []PortRecord `json:"portDetails,omitempty" bson:"port_details,omitempty"`
}

// ServerSpec holds descriptive hardware data for servers.
// Not used in any calculation.
type ServerSpec struct {
	CPU     string `json:"cpu,omitempty" bson:"cpu,omitempty"`
	RAM     string `json:"ram,omitempty" bson:"ram,omitempty"`
	Storage string `json:"storage,omitempty" bson:"storage,omitempty"`
}

// UPSSpec holds battery and capacity data for UPS units
type UPSSpec struct {
	CapacityVA            float64 `json:"capacityVA" bson:"capacity_va"`
	Capacity              string  `json:"capacity,omitempty" bson:"capacity,omitempty"`
	BatteryHealth         int     `json:"batteryHealth,omitempty" bson:"battery_health,omitempty"`
	BatteryInstallDate    string  `json:"batteryInstallDate,omitempty" bson:"battery_install_date,omitempty"`
	BatteryLifespanMonths int     `json:"batteryLifespanMonths,omitempty" bson:"battery_lifespan_months,omitempty"`
	LoadPercentage        int     `json:"loadPercentage,omitempty" bson:"load_percentage,omitempty"`
	EstimatedRuntimeMin   int     `json:"estimatedRuntime,omitempty" bson:"estimated_runtime_min,omitempty"`
}

// EquipmentRecord represents one physical unit occupying a rack position
type EquipmentRecord struct {
	ID                    string          `json:"id" bson:"id"`
	Kind                  EquipmentKind   `json:"type" bson:"kind"`
	Name                  string          `json:"name" bson:"name"`
	Model                 string          `json:"model,omitempty" bson:"model,omitempty"`
	Description           string          `json:"description,omitempty" bson:"description,omitempty"`
	Status                EquipmentStatus `json:"status" bson:"status"`
	Position              int             `json:"position" bson:"position"`
	PowerConsumptionWatts float64         `json:"powerConsumption,omitempty" bson:"power_consumption_watts,omitempty"`
	Network               *NetworkSpec    `json:"networkSpec,omitempty" bson:"network,omitempty"`
	Server                *ServerSpec     `json:"serverSpec,omitempty" bson:"server,omitempty"`
	UPS                   *UPSSpec        `json:"upsSpec,omitempty" bson:"ups,omitempty"`
}

// Cinema represents one site and its rack snapshot.
// Derived metrics are never stored on this struct; they are recomputed
// from Components on demand so they cannot drift from the records.
type Cinema struct {
	ID           string            `json:"id" bson:"id"`
	Name         string            `json:"name" bson:"name"`
	Location     string            `json:"location" bson:"location"`
	Address      string            `json:"address" bson:"address"`
	HasGenerator bool              `json:"generator" bson:"has_generator"`
	LastUpdated  time.Time         `json:"lastUpdated" bson:"last_updated"`
	Components   []EquipmentRecord `json:"rackComponents" bson:"components"`
}

// AuditEntry records one change applied to a cinema's rack
type AuditEntry struct {
	ID        int64     `json:"id" db:"id" bson:"id"`
	CinemaID  string    `json:"cinema_id" db:"cinema_id" bson:"cinema_id"`
	Action    string    `json:"action" db:"action" bson:"action"`
	Detail    string    `json:"detail,omitempty" db:"detail" bson:"detail,omitempty"`
	ChangedAt time.Time `json:"changed_at" db:"changed_at" bson:"changed_at"`
}

// ValidateKind checks that the kind belongs to the closed enumeration
func ValidateKind(kind EquipmentKind) error {
	switch kind {
	case KindServer, KindPatchPanel, KindUPS, KindSwitch, KindRouter,
		KindFirewall, KindWirelessController, KindConverter:
		return nil
	default:
		return ErrInvalidKind
	}
}

// ValidateStatus checks that the status belongs to the closed enumeration
func ValidateStatus(status EquipmentStatus) error {
	switch status {
	case StatusOnline, StatusOffline, StatusWarning, StatusMaintenance:
		return nil
	default:
		return ErrInvalidStatus
	}
}

// ValidatePortList checks the port-list invariant: exactly the ports
// numbered 1..TotalPorts, each once, ascending.
func ValidatePortList(spec *NetworkSpec) error {
	if spec == nil {
		return nil
	}
	if len(spec.PortDetails) != spec.TotalPorts {
		return ErrInvalidPorts
	}
	for i, port := range spec.PortDetails {
		if port.PortNumber != i+1 {
			return ErrInvalidPorts
		}
	}
	if spec.ActivePorts < 0 || spec.ActivePorts > spec.TotalPorts {
		return ErrInvalidPorts
	}
	return nil
}

// HasNetworkPorts reports whether a kind carries a NetworkSpec
func HasNetworkPorts(kind EquipmentKind) bool {
	switch kind {
	case KindSwitch, KindRouter, KindFirewall, KindWirelessController, KindConverter, KindPatchPanel:
		return true
	default:
		return false
	}
}
