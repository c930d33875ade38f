package models

// Supplement describes a supplement intake protocol. The start/end pair is
// not ordered: end before start is stored as given.
type Supplement struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Dose      string `json:"dose" gorm:"type:varchar(50)" validate:"required,min=1,max=50"`
	Frequency string `json:"frequency" gorm:"type:varchar(50)" validate:"required,min=1,max=50"`
	StartDate string `json:"start_date" gorm:"type:varchar(10)" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date" gorm:"type:varchar(10)" validate:"omitempty,datetime=2006-01-02"`
	Notes     string `json:"notes" validate:"omitempty,max=2000"`
}
