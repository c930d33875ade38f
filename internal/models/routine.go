package models

// Routine is a named exercise routine. The name is the natural key: a
// create for an existing name replaces its exercise list and refreshes
// UpdatedAt. Exercises is an opaque serialized list owned by the client.
type Routine struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	Exercises string `json:"exercises" validate:"required,max=10000"`
	UpdatedAt string `json:"updated_at" gorm:"type:varchar(10)" validate:"omitempty,datetime=2006-01-02"`
}

// RoutinePatch lists the overridable fields of a Routine for the upsert
// update path. UpdatedAt is always refreshed by the store, not the patch.
type RoutinePatch struct {
	Exercises *string
}

// Apply overwrites each field of r for which the patch carries a value.
func (p RoutinePatch) Apply(r *Routine) {
	if p.Exercises != nil {
		r.Exercises = *p.Exercises
	}
}

// Patch derives the upsert patch from a parsed request payload.
func (r *Routine) Patch() RoutinePatch {
	e := r.Exercises
	return RoutinePatch{Exercises: &e}
}
