package models

import "strings"

// classifyRule maps label keywords to an equipment kind. Any keyword
// matching as a substring selects the kind.
type classifyRule struct {
	keywords []string
	kind     EquipmentKind
}

// classifyRules is evaluated in order, first match wins. The order is
// semantically load-bearing: a label containing both "router" and
// "wireless" classifies as router because router is checked first.
// Do not reorder.
var classifyRules = []classifyRule{
	{[]string{"firewall"}, KindFirewall},
	{[]string{"router"}, KindRouter},
	{[]string{"switch"}, KindSwitch},
	{[]string{"wlc", "wireless"}, KindWirelessController},
	{[]string{"servidor", "server"}, KindServer},
	{[]string{"ap", "access point"}, KindWirelessController},
	{[]string{"patch", "panel"}, KindPatchPanel},
	{[]string{"ups"}, KindUPS},
	{[]string{"converter", "conversor"}, KindConverter},
}

// ClassifyEquipmentLabel maps a free-text equipment type label, as found
// in rack spreadsheets, to the closed set of equipment kinds. Matching is
// case-insensitive. Labels matching no rule default to server.
func ClassifyEquipmentLabel(label string) EquipmentKind {
	lower := strings.ToLower(label)
	for _, rule := range classifyRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.kind
			}
		}
	}
	return KindServer
}
