package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Report is a student-submitted safety incident. Rows are written once by
// the submission flow; status moves forward only through school staff
// tooling outside this service.
type Report struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_reports_user_created,priority:1" json:"user_id"`
	Title       string    `gorm:"not null;size:100" json:"title"`
	Description string    `gorm:"not null;size:1000" json:"description"`
	Type        string    `gorm:"not null;size:20" json:"type"`
	Status      string    `gorm:"not null;default:'pending';size:20;index" json:"status"`
	CreatedAt   time.Time `gorm:"index:idx_reports_user_created,priority:2,sort:desc" json:"created_at"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (Report) TableName() string {
	return "reports"
}
