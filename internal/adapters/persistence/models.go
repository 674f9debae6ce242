package persistence

import "time"

// PlanModel represents the plans table. Buildings and connections are stored
// as JSON documents; a plan is always loaded whole.
type PlanModel struct {
	ID          string    `gorm:"column:id;primaryKey;size:64"`
	Name        string    `gorm:"column:name;uniqueIndex;size:128;not null"`
	Description string    `gorm:"column:description;type:text"`
	Buildings   string    `gorm:"column:buildings;type:jsonb;not null"`   // JSONB for PostgreSQL, TEXT for SQLite
	Connections string    `gorm:"column:connections;type:jsonb;not null"` // JSONB for PostgreSQL, TEXT for SQLite
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"`
}

func (PlanModel) TableName() string {
	return "plans"
}
