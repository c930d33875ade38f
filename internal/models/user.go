package models

// User represents the single account that owns the tracked data.
type User struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(50)" validate:"required,min=3,max=50"`
	Password string `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
}
