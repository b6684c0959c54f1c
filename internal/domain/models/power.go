package models

import "math"

// UPS sizing constants used across the engine. These are rack-wide
// assumptions, not per-UPS configuration.
const (
	// UPSEfficiencyFactor converts rated VA to usable W
	UPSEfficiencyFactor = 0.9
	// BatteryHealthFactor derates capacity for batteries in good condition
	BatteryHealthFactor = 0.7
)

// TotalPowerConsumption sums rated power draw over all records.
// Offline equipment still counts: the figure represents rated draw,
// not live telemetry.
func TotalPowerConsumption(records []EquipmentRecord) float64 {
	var total float64
	for _, r := range records {
		total += r.PowerConsumptionWatts
	}
	return total
}

// TotalUPSCapacityVA sums rated capacity over UPS records only
func TotalUPSCapacityVA(records []EquipmentRecord) float64 {
	var total float64
	for _, r := range records {
		if r.Kind == KindUPS && r.UPS != nil {
			total += r.UPS.CapacityVA
		}
	}
	return total
}

// UPSLoadPercentage returns the rack load as a percentage of UPS capacity,
// rounded to the nearest integer. A rack with no UPS capacity reports 0
// rather than dividing by zero.
func UPSLoadPercentage(totalConsumptionW, totalCapacityVA float64) int {
	if totalCapacityVA == 0 {
		return 0
	}
	return int(math.Round(totalConsumptionW / totalCapacityVA * 100))
}

// EstimatedAutonomyHours estimates how long the rack's UPS capacity can
// sustain its rated load, rounded to one decimal. The second return value
// is false when the rack draws no power, in which case autonomy is
// undefined and the hours value is 0; callers must omit the figure rather
// than display it.
func EstimatedAutonomyHours(records []EquipmentRecord) (float64, bool) {
	totalConsumptionW := TotalPowerConsumption(records)
	if totalConsumptionW == 0 {
		return 0, false
	}
	totalCapacityVA := TotalUPSCapacityVA(records)
	hours := totalCapacityVA * UPSEfficiencyFactor * BatteryHealthFactor / totalConsumptionW
	return math.Round(hours*10) / 10, true
}
