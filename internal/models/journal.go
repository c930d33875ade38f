package models

// JournalEntry is a free-text physiological journal note with optional
// 1-10 ratings and sleep duration in hours.
type JournalEntry struct {
	ID           string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Date         string   `json:"date" gorm:"index;type:varchar(10)" validate:"required,datetime=2006-01-02"`
	Text         string   `json:"text" validate:"required,min=1,max=5000"`
	Mood         *int     `json:"mood" validate:"omitempty,min=1,max=10"`
	Energy       *int     `json:"energy" validate:"omitempty,min=1,max=10"`
	SleepQuality *int     `json:"sleep_quality" validate:"omitempty,min=1,max=10"`
	SleepHours   *float64 `json:"sleep_hours" validate:"omitempty,gte=0,lte=24"`
}
