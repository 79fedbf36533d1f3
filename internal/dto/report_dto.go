package dto

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/reports"
	"github.com/google/uuid"
)

type SubmitReportRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type ReportSummaryResponse struct {
	ID        uuid.UUID            `json:"id"`
	Title     string               `json:"title"`
	Status    reports.Status       `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	Badge     reports.Presentation `json:"badge"`
}

type RecentReportsResponse struct {
	Reports []ReportSummaryResponse `json:"reports"`
	Limit   int                     `json:"limit"`
}
