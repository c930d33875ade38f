package models

// BodyMeasurement holds the body circumferences (in cm) taken on one date.
// Every circumference is optional; at most one row exists per date and an
// upsert for an existing date merges only the fields present in the payload.
type BodyMeasurement struct {
	ID          string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Date        string   `json:"date" gorm:"uniqueIndex;type:varchar(10)" validate:"required,datetime=2006-01-02"`
	Waist       *float64 `json:"waist" validate:"omitempty,gt=0,lte=300"`
	Neck        *float64 `json:"neck" validate:"omitempty,gt=0,lte=300"`
	Shoulders   *float64 `json:"shoulders" validate:"omitempty,gt=0,lte=300"`
	Chest       *float64 `json:"chest" validate:"omitempty,gt=0,lte=300"`
	Navel       *float64 `json:"navel" validate:"omitempty,gt=0,lte=300"`
	Hips        *float64 `json:"hips" validate:"omitempty,gt=0,lte=300"`
	LeftBiceps  *float64 `json:"left_biceps" validate:"omitempty,gt=0,lte=300"`
	RightBiceps *float64 `json:"right_biceps" validate:"omitempty,gt=0,lte=300"`
	LeftThigh   *float64 `json:"left_thigh" validate:"omitempty,gt=0,lte=300"`
	RightThigh  *float64 `json:"right_thigh" validate:"omitempty,gt=0,lte=300"`
	LeftCalf    *float64 `json:"left_calf" validate:"omitempty,gt=0,lte=300"`
	RightCalf   *float64 `json:"right_calf" validate:"omitempty,gt=0,lte=300"`
}

// BodyMeasurementPatch lists each circumference as an optional override.
// A nil field leaves the stored value untouched.
type BodyMeasurementPatch struct {
	Waist       *float64
	Neck        *float64
	Shoulders   *float64
	Chest       *float64
	Navel       *float64
	Hips        *float64
	LeftBiceps  *float64
	RightBiceps *float64
	LeftThigh   *float64
	RightThigh  *float64
	LeftCalf    *float64
	RightCalf   *float64
}

// Apply overwrites each field of m for which the patch carries a value.
func (p BodyMeasurementPatch) Apply(m *BodyMeasurement) {
	if p.Waist != nil {
		m.Waist = p.Waist
	}
	if p.Neck != nil {
		m.Neck = p.Neck
	}
	if p.Shoulders != nil {
		m.Shoulders = p.Shoulders
	}
	if p.Chest != nil {
		m.Chest = p.Chest
	}
	if p.Navel != nil {
		m.Navel = p.Navel
	}
	if p.Hips != nil {
		m.Hips = p.Hips
	}
	if p.LeftBiceps != nil {
		m.LeftBiceps = p.LeftBiceps
	}
	if p.RightBiceps != nil {
		m.RightBiceps = p.RightBiceps
	}
	if p.LeftThigh != nil {
		m.LeftThigh = p.LeftThigh
	}
	if p.RightThigh != nil {
		m.RightThigh = p.RightThigh
	}
	if p.LeftCalf != nil {
		m.LeftCalf = p.LeftCalf
	}
	if p.RightCalf != nil {
		m.RightCalf = p.RightCalf
	}
}

// Patch derives the upsert patch from a parsed request payload. Fields the
// client omitted stay nil and therefore untouched on merge.
func (m *BodyMeasurement) Patch() BodyMeasurementPatch {
	return BodyMeasurementPatch{
		Waist:       m.Waist,
		Neck:        m.Neck,
		Shoulders:   m.Shoulders,
		Chest:       m.Chest,
		Navel:       m.Navel,
		Hips:        m.Hips,
		LeftBiceps:  m.LeftBiceps,
		RightBiceps: m.RightBiceps,
		LeftThigh:   m.LeftThigh,
		RightThigh:  m.RightThigh,
		LeftCalf:    m.LeftCalf,
		RightCalf:   m.RightCalf,
	}
}
