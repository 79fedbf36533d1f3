package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/dto"
	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/resources"
	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ResourceHandler struct {
	resourceService *services.ResourceService
}

func NewResourceHandler(resourceService *services.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceService: resourceService}
}

// List returns the resource directory grouped by category, with the
// emergency contacts on top.
func (h *ResourceHandler) List(c *fiber.Ctx) error {
	list, err := h.resourceService.List(c.UserContext())
	if err != nil {
		slog.Error("resource list failed", "request_id", requestID(c), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch resources",
		})
	}

	return c.JSON(dto.ResourcesResponse{
		EmergencyNotice:   resources.EmergencyNotice,
		EmergencyContacts: resources.EmergencyContacts(),
		Categories:        resources.GroupByCategory(list),
	})
}

// Emergency returns the hotline list. It does not touch the database.
func (h *ResourceHandler) Emergency(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"notice":   resources.EmergencyNotice,
		"contacts": resources.EmergencyContacts(),
	})
}

// Create adds a resource (admin only)
func (h *ResourceHandler) Create(c *fiber.Ctx) error {
	var req dto.ResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	res, err := h.resourceService.Create(c.UserContext(), &req)
	if err != nil {
		return h.writeError(c, err, "Failed to create resource")
	}

	return c.Status(fiber.StatusCreated).JSON(res)
}

// Update replaces a resource (admin only)
func (h *ResourceHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid resource ID",
		})
	}

	var req dto.ResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	res, err := h.resourceService.Update(c.UserContext(), id, &req)
	if err != nil {
		return h.writeError(c, err, "Failed to update resource")
	}

	return c.JSON(res)
}

// Delete removes a resource (admin only)
func (h *ResourceHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid resource ID",
		})
	}

	if err := h.resourceService.Delete(c.UserContext(), id); err != nil {
		return h.writeError(c, err, "Failed to delete resource")
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Resource deleted successfully",
	})
}

func (h *ResourceHandler) writeError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrInvalidResource):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrResourceNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Resource not found",
		})
	}
	slog.Error(fallback, "request_id", requestID(c), "error", err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: fallback,
	})
}
