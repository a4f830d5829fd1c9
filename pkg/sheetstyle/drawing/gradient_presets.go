package drawing

import "strings"

// GradientPreset names a built-in gradient of the Office gallery.
type GradientPreset int

// Gradient presets.
const (
	EarlySunset GradientPreset = iota
	LateSunset
	Nightfall
	Daybreak
	Horizon
	Desert
	Ocean
	CalmWater
	Fire
	Fog
	Moss
	Peacock
	Wheat
	Parchment
	Mahogany
	Rainbow
	RainbowII
	Gold
	GoldII
	Brass
	Chrome
	ChromeII
	Silver
	Sapphire
)

var gradientPresetNames = [...]string{
	"EarlySunset", "LateSunset", "Nightfall", "Daybreak", "Horizon", "Desert",
	"Ocean", "CalmWater", "Fire", "Fog", "Moss", "Peacock", "Wheat",
	"Parchment", "Mahogany", "Rainbow", "RainbowII", "Gold", "GoldII",
	"Brass", "Chrome", "ChromeII", "Silver", "Sapphire",
}

func (p GradientPreset) String() string {
	if p < 0 || int(p) >= len(gradientPresetNames) {
		return "GradientPreset(?)"
	}
	return gradientPresetNames[p]
}

// ParseGradientPreset resolves a preset by name, ignoring case.
func ParseGradientPreset(name string) (GradientPreset, bool) {
	for i, n := range gradientPresetNames {
		if strings.EqualFold(n, name) {
			return GradientPreset(i), true
		}
	}
	return 0, false
}

// GradientPresets lists every preset in gallery order.
func GradientPresets() []GradientPreset {
	presets := make([]GradientPreset, len(gradientPresetNames))
	for i := range presets {
		presets[i] = GradientPreset(i)
	}
	return presets
}

// PresetStop is one stop of a preset table: an RRGGBB color and a position
// in percent.
type PresetStop struct {
	Color    string
	Position float64
}

// PresetStops returns a copy of the stops of a preset, or nil for an unknown
// preset.
func PresetStops(p GradientPreset) []PresetStop {
	stops := gradientPresets[p]
	if stops == nil {
		return nil
	}
	c := make([]PresetStop, len(stops))
	copy(c, stops)
	return c
}

// gradientPresets holds the gallery tables. Positions such as 64.999 and
// 21.001 are the exact values Office writes and must not be rounded.
var gradientPresets = map[GradientPreset][]PresetStop{
	EarlySunset: {
		{"000082", 0}, {"66008F", 30}, {"BA0066", 64.999}, {"FF0000", 89.999}, {"FF8200", 100},
	},
	LateSunset: {
		{"000000", 0}, {"000040", 20}, {"400040", 50}, {"8F0040", 75}, {"F27300", 89.999}, {"FFBF00", 100},
	},
	Nightfall: {
		{"000000", 0}, {"0A128C", 39.999}, {"181CC7", 70}, {"7005D4", 88}, {"8C3D91", 100},
	},
	Daybreak: {
		{"5E9EFF", 0}, {"85C2FF", 39.999}, {"C4D6EB", 70}, {"FFEBFA", 100},
	},
	Horizon: {
		{"DCEBF5", 0}, {"83A7C3", 8}, {"768FB9", 13}, {"83A7C3", 21.001}, {"FFFFFF", 52},
		{"9C6563", 56}, {"80302D", 58}, {"C0524E", 71}, {"EBDAD4", 94}, {"55261C", 100},
	},
	Desert: {
		{"9D3E17", 0}, {"D79F5C", 35}, {"F9DEAC", 70}, {"FFF2CC", 100},
	},
	Ocean: {
		{"03D4A8", 0}, {"21D6E0", 25}, {"0087E6", 75}, {"005CBF", 100},
	},
	CalmWater: {
		{"CCCCFF", 0}, {"99CCFF", 17.999}, {"9966FF", 36}, {"00CCCC", 61}, {"99CCFF", 82}, {"CCCCFF", 100},
	},
	Fire: {
		{"FFF200", 0}, {"FF7A00", 45}, {"FF0300", 70}, {"4D0808", 100},
	},
	Fog: {
		{"8488C4", 0}, {"D4DEFF", 53}, {"D4DEFF", 83}, {"96AB94", 100},
	},
	Moss: {
		{"DDEBCF", 0}, {"9CB86E", 50}, {"156B13", 100},
	},
	Peacock: {
		{"3399FF", 0}, {"00CCCC", 16}, {"9999FF", 47}, {"2E6792", 60.001}, {"3333CC", 71.001},
		{"1170FF", 81}, {"006699", 100},
	},
	Wheat: {
		{"FBEAC7", 0}, {"FEE7F2", 17.999}, {"FAC77D", 36}, {"FBA97D", 61}, {"FBD49C", 82}, {"FEE7F2", 100},
	},
	Parchment: {
		{"FFEFD1", 0}, {"F0EBD5", 64.999}, {"D1C39F", 100},
	},
	Mahogany: {
		{"D6B19C", 0}, {"D49E6C", 30}, {"A65528", 70}, {"663012", 100},
	},
	Rainbow: {
		{"A603AB", 0}, {"0819FB", 21.001}, {"1A8D48", 35.001}, {"FFFF00", 52}, {"EE3F17", 73},
		{"E81766", 88}, {"A603AB", 100},
	},
	RainbowII: {
		{"FF3399", 0}, {"FF6633", 25}, {"FFFF00", 50}, {"01A78F", 75}, {"3366FF", 100},
	},
	Gold: {
		{"E6DCAC", 0}, {"E6D78A", 12}, {"C7AC4C", 30}, {"E6D78A", 45}, {"E6DCAC", 100},
	},
	GoldII: {
		{"FBE4AE", 0}, {"BD922A", 13}, {"BD922A", 21.001}, {"FBE4AE", 63}, {"BD922A", 67},
		{"835E17", 69}, {"A28949", 82}, {"FBE4AE", 100},
	},
	Brass: {
		{"825600", 0}, {"FFA800", 13}, {"825600", 28}, {"FFA800", 42.999}, {"825600", 58},
		{"FFA800", 72}, {"825600", 87}, {"FFA800", 100},
	},
	Chrome: {
		{"FFFFFF", 0}, {"1F1F1F", 16.5}, {"FFFFFF", 17.999}, {"636363", 42}, {"CBCBCB", 53.999},
		{"5F5F5F", 66}, {"FFFFFF", 75.999}, {"1F1F1F", 78.999}, {"FFFFFF", 100},
	},
	ChromeII: {
		{"CBCBCB", 0}, {"5F5F5F", 13}, {"5F5F5F", 21.001}, {"FFFFFF", 63}, {"B2B2B2", 67},
		{"292929", 69}, {"777777", 82}, {"EAEAEA", 100},
	},
	Silver: {
		{"FFFFFF", 0}, {"E6E6E6", 7.001}, {"7D8496", 32.001}, {"E6E6E6", 47}, {"7D8496", 85.001},
		{"E6E6E6", 100},
	},
	Sapphire: {
		{"000082", 0}, {"0047FF", 13}, {"000082", 28}, {"0047FF", 42.999}, {"000082", 58},
		{"0047FF", 72}, {"000082", 87}, {"0047FF", 100},
	},
}
