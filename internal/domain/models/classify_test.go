package models

import "testing"

func TestClassifyEquipmentLabel(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  EquipmentKind
	}{
		{
			name:  "Firewall",
			label: "Firewall Fortigate",
			want:  KindFirewall,
		},
		{
			name:  "Router",
			label: "Router Cisco",
			want:  KindRouter,
		},
		{
			name:  "Switch",
			label: "SWITCH 48p",
			want:  KindSwitch,
		},
		{
			name:  "Wireless controller by WLC",
			label: "WLC 9800",
			want:  KindWirelessController,
		},
		{
			name:  "Spanish server",
			label: "Servidor de proyección",
			want:  KindServer,
		},
		{
			name:  "English server",
			label: "server rack 2U",
			want:  KindServer,
		},
		{
			name:  "Access point",
			label: "Access Point Meraki",
			want:  KindWirelessController,
		},
		{
			name:  "Patch panel",
			label: "Patch Panel 24",
			want:  KindPatchPanel,
		},
		{
			name:  "UPS",
			label: "UPS",
			want:  KindUPS,
		},
		{
			name:  "Spanish converter",
			label: "Conversor de fibra",
			want:  KindConverter,
		},
		{
			name:  "Router beats wireless - order matters",
			label: "Router Wireless WLC",
			want:  KindRouter,
		},
		{
			name:  "Firewall beats router",
			label: "Router con Firewall integrado",
			want:  KindFirewall,
		},
		{
			name:  "Unknown defaults to server",
			label: "Cosa rara",
			want:  KindServer,
		},
		{
			name:  "Empty defaults to server",
			label: "",
			want:  KindServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyEquipmentLabel(tt.label)
			if got != tt.want {
				t.Errorf("ClassifyEquipmentLabel(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}
