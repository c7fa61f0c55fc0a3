package event

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("event name cannot be empty")
	ErrInvalidSchedule = errors.New("event end must not be before its start")
	ErrInvalidSlug     = errors.New("invalid event slug")
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)
	slugValid        = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

type Location struct {
	Region    int32
	Address   string
	Latitude  *float64
	Longitude *float64
}

type Event struct {
	id          uuid.UUID
	name        string
	slug        string
	description string
	banner      string
	categoryID  uuid.UUID
	isFeatured  bool
	isOnline    bool
	isPublished bool
	startAt     time.Time
	endAt       time.Time
	location    Location
	createdBy   uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

// NewEvent derives the slug from the name when none is given.
func NewEvent(
	name, slug, description, banner string,
	categoryID uuid.UUID,
	isFeatured, isOnline, isPublished bool,
	startAt, endAt time.Time,
	location Location,
	createdBy uuid.UUID,
) (*Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if endAt.Before(startAt) {
		return nil, ErrInvalidSchedule
	}

	if slug == "" {
		slug = Slugify(name)
	}
	if !slugValid.MatchString(slug) {
		return nil, ErrInvalidSlug
	}

	return &Event{
		id:          uuid.New(),
		name:        name,
		slug:        slug,
		description: description,
		banner:      banner,
		categoryID:  categoryID,
		isFeatured:  isFeatured,
		isOnline:    isOnline,
		isPublished: isPublished,
		startAt:     startAt,
		endAt:       endAt,
		location:    location,
		createdBy:   createdBy,
	}, nil
}

// NewEventForUpdate validates a full replacement of an existing event's
// fields. Creator and timestamps are untouched by updates.
func NewEventForUpdate(
	id uuid.UUID,
	name, slug, description, banner string,
	categoryID uuid.UUID,
	isFeatured, isOnline, isPublished bool,
	startAt, endAt time.Time,
	location Location,
) (*Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if endAt.Before(startAt) {
		return nil, ErrInvalidSchedule
	}

	if slug == "" {
		slug = Slugify(name)
	}
	if !slugValid.MatchString(slug) {
		return nil, ErrInvalidSlug
	}

	return &Event{
		id:          id,
		name:        name,
		slug:        slug,
		description: description,
		banner:      banner,
		categoryID:  categoryID,
		isFeatured:  isFeatured,
		isOnline:    isOnline,
		isPublished: isPublished,
		startAt:     startAt,
		endAt:       endAt,
		location:    location,
	}, nil
}

func ReconstructEvent(
	id uuid.UUID,
	name, slug, description, banner string,
	categoryID uuid.UUID,
	isFeatured, isOnline, isPublished bool,
	startAt, endAt time.Time,
	location Location,
	createdBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *Event {
	return &Event{
		id:          id,
		name:        name,
		slug:        slug,
		description: description,
		banner:      banner,
		categoryID:  categoryID,
		isFeatured:  isFeatured,
		isOnline:    isOnline,
		isPublished: isPublished,
		startAt:     startAt,
		endAt:       endAt,
		location:    location,
		createdBy:   createdBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func (e *Event) ID() uuid.UUID         { return e.id }
func (e *Event) Name() string          { return e.name }
func (e *Event) Slug() string          { return e.slug }
func (e *Event) Description() string   { return e.description }
func (e *Event) Banner() string        { return e.banner }
func (e *Event) CategoryID() uuid.UUID { return e.categoryID }
func (e *Event) IsFeatured() bool      { return e.isFeatured }
func (e *Event) IsOnline() bool        { return e.isOnline }
func (e *Event) IsPublished() bool     { return e.isPublished }
func (e *Event) StartAt() time.Time    { return e.startAt }
func (e *Event) EndAt() time.Time      { return e.endAt }
func (e *Event) Location() Location    { return e.location }
func (e *Event) CreatedBy() uuid.UUID  { return e.createdBy }
func (e *Event) CreatedAt() time.Time  { return e.createdAt }
func (e *Event) UpdatedAt() time.Time  { return e.updatedAt }
