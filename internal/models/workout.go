package models

// WorkoutSet records one exercise performed on a date. There is no
// uniqueness constraint: several sets of the same exercise on the same day
// are independent rows.
type WorkoutSet struct {
	ID       string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Date     string   `json:"date" gorm:"index;type:varchar(10)" validate:"required,datetime=2006-01-02"`
	Exercise string   `json:"exercise" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Sets     int      `json:"sets" validate:"required,min=1,max=100"`
	Reps     int      `json:"reps" validate:"required,min=1,max=1000"`
	Load     *float64 `json:"load" validate:"omitempty,gte=0,lte=1000"` // kg
	RPE      *int     `json:"rpe" validate:"omitempty,min=1,max=10"`
	Notes    string   `json:"notes" validate:"omitempty,max=2000"`
}
