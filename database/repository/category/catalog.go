package categoryRepo

import (
	"context"
	"errors"
	"fmt"

	"serviceconnect/models"
)

var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository exposes the service category catalog.
type CategoryRepository interface {
	List(ctx context.Context) ([]models.ServiceCategory, error)
	GetByID(ctx context.Context, id string) (*models.ServiceCategory, error)
}

var categories = []models.ServiceCategory{
	{ID: "plumbing", Name: "Plumbing", Description: "Water repair, installation", Icon: "wrench", Color: "text-blue-600", BgColor: "bg-blue-50"},
	{ID: "carpentry", Name: "Carpentry", Description: "Wood work, furniture repair", Icon: "hammer", Color: "text-amber-600", BgColor: "bg-amber-50"},
	{ID: "housekeeping", Name: "House Help", Description: "Maids, cooks, cleaners", Icon: "users", Color: "text-pink-600", BgColor: "bg-pink-50"},
	{ID: "tutoring", Name: "Tutoring", Description: "Home tutors, coaching", Icon: "book-open", Color: "text-green-600", BgColor: "bg-green-50"},
	{ID: "construction", Name: "Construction", Description: "Contractors, suppliers", Icon: "building", Color: "text-orange-600", BgColor: "bg-orange-50"},
	{ID: "automotive", Name: "Automotive", Description: "Car service, repair", Icon: "car", Color: "text-red-600", BgColor: "bg-red-50"},
	{ID: "painting", Name: "Painting", Description: "House painting, decorating", Icon: "paintbrush", Color: "text-purple-600", BgColor: "bg-purple-50"},
	{ID: "electrical", Name: "Electrical", Description: "Wiring, appliance repair", Icon: "zap", Color: "text-yellow-600", BgColor: "bg-yellow-50"},
}

// StaticCatalog serves the fixed category list.
type StaticCatalog struct{}

func NewStaticCatalog() CategoryRepository {
	return StaticCatalog{}
}

func (StaticCatalog) List(ctx context.Context) ([]models.ServiceCategory, error) {
	out := make([]models.ServiceCategory, len(categories))
	copy(out, categories)
	return out, nil
}

func (StaticCatalog) GetByID(ctx context.Context, id string) (*models.ServiceCategory, error) {
	for _, c := range categories {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, fmt.Errorf("category %q: %w", id, ErrCategoryNotFound)
}
