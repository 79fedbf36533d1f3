// Package store implements the report Gateway on top of GORM.
package store

import (
	"context"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/models"
	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/reports"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportStore struct {
	db *gorm.DB
}

func NewReportStore(db *gorm.DB) *ReportStore {
	return &ReportStore{db: db}
}

var _ reports.Gateway = (*ReportStore)(nil)

// InsertReport writes one row. ID and CreatedAt are assigned here when the
// caller left them empty.
func (s *ReportStore) InsertReport(ctx context.Context, r *reports.Report) error {
	row := models.Report{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Type:        string(r.Type),
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert report: %w", err)
	}

	r.ID = row.ID
	r.CreatedAt = row.CreatedAt
	r.Status = reports.Status(row.Status)
	return nil
}

// SelectRecentReports lists the user's reports, newest first.
func (s *ReportStore) SelectRecentReports(ctx context.Context, userID uuid.UUID, limit int) ([]reports.Summary, error) {
	var rows []models.Report
	err := s.db.WithContext(ctx).
		Select("id", "title", "status", "created_at").
		Scopes(ForOwner(userID)).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("select recent reports: %w", err)
	}

	out := make([]reports.Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, reports.Summary{
			ID:        row.ID,
			Title:     row.Title,
			Status:    reports.Status(row.Status),
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}
