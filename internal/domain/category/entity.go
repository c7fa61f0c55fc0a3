package category

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("category name cannot be empty")

type Category struct {
	id          uuid.UUID
	name        string
	description string
	icon        string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCategory(name, description, icon string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Category{
		id:          uuid.New(),
		name:        name,
		description: description,
		icon:        icon,
	}, nil
}

func NewCategoryForUpdate(id uuid.UUID, name, description, icon string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Category{
		id:          id,
		name:        name,
		description: description,
		icon:        icon,
	}, nil
}

func ReconstructCategory(id uuid.UUID, name, description, icon string, createdAt, updatedAt time.Time) *Category {
	return &Category{
		id:          id,
		name:        name,
		description: description,
		icon:        icon,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Category) ID() uuid.UUID        { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) Description() string  { return c.description }
func (c *Category) Icon() string         { return c.icon }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }
