package sim

import "encoding/json"

// Phase is a lifecycle stage of the community, derived purely from the day number.
type Phase int

const (
	PhaseLaunch Phase = iota
	PhaseGrowth
	PhaseConversion
	PhaseHarvest
	PhaseExtension
)

// Inclusive upper day bound of each phase. Anything past harvestEndDay is Extension.
const (
	launchEndDay     = 14
	growthEndDay     = 30
	conversionEndDay = 45
	harvestEndDay    = 60
)

var phaseNames = map[Phase]string{
	PhaseLaunch:     "launch",
	PhaseGrowth:     "growth",
	PhaseConversion: "conversion",
	PhaseHarvest:    "harvest",
	PhaseExtension:  "extension",
}

var phaseLabels = map[Phase]string{
	PhaseLaunch:     "启动期",
	PhaseGrowth:     "增长期",
	PhaseConversion: "转化期",
	PhaseHarvest:    "收割期",
	PhaseExtension:  "延伸期",
}

// PhaseFor classifies a day number into its Phase.
func PhaseFor(day int) Phase {
	switch {
	case day <= launchEndDay:
		return PhaseLaunch
	case day <= growthEndDay:
		return PhaseGrowth
	case day <= conversionEndDay:
		return PhaseConversion
	case day <= harvestEndDay:
		return PhaseHarvest
	default:
		return PhaseExtension
	}
}

// String returns the stable identifier ("launch", "growth", ...).
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Label returns the display label shown on the page and in the status payload.
func (p Phase) Label() string {
	if label, ok := phaseLabels[p]; ok {
		return label
	}
	return p.String()
}

// IsPayout reports whether the phase boosts daily issuance and can produce risk events.
func (p Phase) IsPayout() bool {
	return p == PhaseConversion || p == PhaseHarvest
}

// MarshalJSON encodes the phase as its display label.
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Label())
}
