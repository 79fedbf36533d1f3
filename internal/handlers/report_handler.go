package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/dto"
	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/reports"
	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/session"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
)

// SubmitFailedMessage is shown to the student when the store rejects a
// report. The input is kept so the same report can be sent again.
const SubmitFailedMessage = "Failed to submit report. Please try again."

const fetchFailedMessage = "Reports are temporarily unavailable"

type ReportHandler struct {
	gateway      reports.Gateway
	defaultLimit int
	maxLimit     int
}

func NewReportHandler(gateway reports.Gateway, defaultLimit, maxLimit int) *ReportHandler {
	if defaultLimit <= 0 {
		defaultLimit = reports.DefaultRecentLimit
	}
	if maxLimit < defaultLimit {
		maxLimit = defaultLimit
	}
	return &ReportHandler{gateway: gateway, defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// Submit stores a new report owned by the caller.
func (h *ReportHandler) Submit(c *fiber.Ctx) error {
	sess, err := session.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.SubmitReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	report, err := reports.Submit(c.UserContext(), sess, h.gateway, reports.Input{
		Title:       req.Title,
		Description: req.Description,
		Type:        reports.Type(req.Type),
	})
	if err != nil {
		var ve *reports.ValidationError
		if errors.As(err, &ve) {
			metrics.ReportSubmitFailures.WithLabelValues("validation").Inc()
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: ve.Error(), Field: ve.Field,
			})
		}

		metrics.ReportSubmitFailures.WithLabelValues("store").Inc()
		slog.Error("report submission failed",
			"request_id", requestID(c),
			"user_id", sess.UserID.String(),
			"action", "submit_report",
			"error", err.Error(),
		)
		if hub := sentryfiber.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Error: true, Message: SubmitFailedMessage,
		})
	}

	metrics.ReportsSubmitted.WithLabelValues(string(report.Type)).Inc()
	return c.Status(fiber.StatusCreated).JSON(report)
}

// Recent lists the caller's newest reports, each with its status badge.
// ?limit=N overrides the configured default up to the configured cap and
// ?scheme=dark selects the dark badge palette.
func (h *ReportHandler) Recent(c *fiber.Ctx) error {
	sess, err := session.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	limit := h.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "limit must be a positive integer", Field: "limit",
			})
		}
		limit = min(n, h.maxLimit)
	}

	summaries, err := reports.FetchRecent(c.UserContext(), h.gateway, sess.UserID, limit)
	if err != nil {
		var ve *reports.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: ve.Error(), Field: ve.Field,
			})
		}

		metrics.ReportFetchFailures.Inc()
		slog.Error("recent reports fetch failed",
			"request_id", requestID(c),
			"user_id", sess.UserID.String(),
			"action", "fetch_recent_reports",
			"error", err.Error(),
		)
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Error: true, Message: fetchFailedMessage,
		})
	}

	scheme := reports.Scheme(c.Query("scheme", string(reports.SchemeLight)))
	out := make([]dto.ReportSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, dto.ReportSummaryResponse{
			ID:        s.ID,
			Title:     s.Title,
			Status:    s.Status,
			CreatedAt: s.CreatedAt,
			Badge:     reports.PresentIn(s.Status, scheme),
		})
	}

	return c.JSON(dto.RecentReportsResponse{Reports: out, Limit: limit})
}

// Types returns the report taxonomy for the type picker.
func (h *ReportHandler) Types(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"types": reports.Types})
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
