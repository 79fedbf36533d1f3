package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/dto"
	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/models"
	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/resources"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrInvalidResource  = errors.New("title, category and an http(s) url are required")
)

type ResourceService struct {
	db *gorm.DB
}

func NewResourceService(db *gorm.DB) *ResourceService {
	return &ResourceService{db: db}
}

// List returns every resource ordered by category, then title.
func (s *ResourceService) List(ctx context.Context) ([]models.Resource, error) {
	var list []models.Resource
	if err := s.db.WithContext(ctx).Order("category ASC").Order("title ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	return list, nil
}

func (s *ResourceService) Create(ctx context.Context, req *dto.ResourceRequest) (*models.Resource, error) {
	res, err := resourceFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(res).Error; err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}

func (s *ResourceService) Update(ctx context.Context, id uuid.UUID, req *dto.ResourceRequest) (*models.Resource, error) {
	next, err := resourceFromRequest(req)
	if err != nil {
		return nil, err
	}

	var res models.Resource
	if err := s.db.WithContext(ctx).First(&res, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}

	res.Title = next.Title
	res.Description = next.Description
	res.URL = next.URL
	res.Category = next.Category
	if err := s.db.WithContext(ctx).Save(&res).Error; err != nil {
		return nil, fmt.Errorf("failed to update resource: %w", err)
	}
	return &res, nil
}

func (s *ResourceService) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Resource{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResourceNotFound
	}
	return nil
}

// SeedIfEmpty inserts the seed list when the resources table has no rows.
// It returns the number of rows inserted.
func (s *ResourceService) SeedIfEmpty(ctx context.Context, seeds []resources.Seed) (int, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Resource{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 || len(seeds) == 0 {
		return 0, nil
	}

	rows := make([]models.Resource, 0, len(seeds))
	for _, seed := range seeds {
		res, err := resourceFromRequest(&dto.ResourceRequest{
			Title:       seed.Title,
			Description: seed.Description,
			URL:         seed.URL,
			Category:    seed.Category,
		})
		if err != nil {
			return 0, fmt.Errorf("seed %q: %w", seed.Title, err)
		}
		rows = append(rows, *res)
	}
	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return 0, fmt.Errorf("failed to seed resources: %w", err)
	}
	return len(rows), nil
}

func resourceFromRequest(req *dto.ResourceRequest) (*models.Resource, error) {
	title := strings.TrimSpace(req.Title)
	category := strings.TrimSpace(req.Category)
	link := strings.TrimSpace(req.URL)
	if title == "" || category == "" || !isHTTPURL(link) {
		return nil, ErrInvalidResource
	}
	return &models.Resource{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		URL:         link,
		Category:    category,
	}, nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
