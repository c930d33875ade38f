package models

// DateLayout is the calendar-date format used for every date field in the
// API and the store. Dates carry no time component; storing them as
// zero-padded strings keeps lexical order equal to chronological order.
const DateLayout = "2006-01-02"

// WeightEntry is a body-weight measurement in kilograms. At most one entry
// exists per date; a create for an existing date updates that row.
type WeightEntry struct {
	ID    string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Date  string  `json:"date" gorm:"uniqueIndex;type:varchar(10)" validate:"required,datetime=2006-01-02"`
	Value float64 `json:"value" validate:"required,gt=0,lte=500"`
}

// WeightEntryPatch lists the overridable fields of a WeightEntry for the
// upsert update path.
type WeightEntryPatch struct {
	Value *float64
}

// Apply overwrites each field of e for which the patch carries a value.
func (p WeightEntryPatch) Apply(e *WeightEntry) {
	if p.Value != nil {
		e.Value = *p.Value
	}
}

// Patch derives the upsert patch from a parsed request payload.
func (e *WeightEntry) Patch() WeightEntryPatch {
	v := e.Value
	return WeightEntryPatch{Value: &v}
}
