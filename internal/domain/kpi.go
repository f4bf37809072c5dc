package domain

import "time"

// KPIType identifies a tracked performance metric.
type KPIType string

const (
	KPIOneRM           KPIType = "1rm"
	KPIVO2Max          KPIType = "vo2max"
	KPIMovementScore   KPIType = "movement_score"
	KPIBodyComposition KPIType = "body_composition"
	KPIEndurance       KPIType = "endurance"
	KPIFlexibility     KPIType = "flexibility"
	KPIStrength        KPIType = "strength"
	KPIPower           KPIType = "power"
)

// KPILabels maps KPI types to their display names.
var KPILabels = map[KPIType]string{
	KPIOneRM:           "1RM",
	KPIVO2Max:          "VO2 Max",
	KPIMovementScore:   "Movement Score",
	KPIBodyComposition: "Body Composition",
	KPIEndurance:       "Endurance",
	KPIFlexibility:     "Flexibility",
	KPIStrength:        "Strength",
	KPIPower:           "Power",
}

// KPIMeasurement is a single recorded value of a KPI for a client.
type KPIMeasurement struct {
	ID        int64     `json:"id"`
	ClientID  int64     `json:"clientId"`
	KPIType   KPIType   `json:"kpiType"`
	Value     float64   `json:"value"`
	Unit      string    `json:"unit"`
	Notes     string    `json:"notes"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

// KPIMeasurementInput is the caller-supplied subset of measurement fields.
type KPIMeasurementInput struct {
	ID       int64     `json:"id"`
	ClientID int64     `json:"clientId"`
	KPIType  KPIType   `json:"kpiType"`
	Value    float64   `json:"value"`
	Unit     string    `json:"unit"`
	Notes    string    `json:"notes"`
	Date     time.Time `json:"date"`
}

// KPIMeasurementPatch carries a partial update for a measurement.
type KPIMeasurementPatch struct {
	KPIType *KPIType   `json:"kpiType"`
	Value   *float64   `json:"value"`
	Unit    *string    `json:"unit"`
	Notes   *string    `json:"notes"`
	Date    *time.Time `json:"date"`
}

// NewKPIMeasurement builds a fully populated measurement; a missing date
// defaults to now.
func NewKPIMeasurement(in KPIMeasurementInput) KPIMeasurement {
	now := time.Now().UTC()
	m := KPIMeasurement{
		ID:        in.ID,
		ClientID:  in.ClientID,
		KPIType:   in.KPIType,
		Value:     in.Value,
		Unit:      in.Unit,
		Notes:     in.Notes,
		Date:      in.Date,
		CreatedAt: now,
	}
	if m.ID == 0 {
		m.ID = NextID()
	}
	if m.Date.IsZero() {
		m.Date = now
	}
	return m
}

// Apply merges the patch into the measurement.
func (m *KPIMeasurement) Apply(patch KPIMeasurementPatch) {
	if patch.KPIType != nil {
		m.KPIType = *patch.KPIType
	}
	if patch.Value != nil {
		m.Value = *patch.Value
	}
	if patch.Unit != nil {
		m.Unit = *patch.Unit
	}
	if patch.Notes != nil {
		m.Notes = *patch.Notes
	}
	if patch.Date != nil {
		m.Date = *patch.Date
	}
}
