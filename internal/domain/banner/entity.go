package banner

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle = errors.New("banner title cannot be empty")
	ErrEmptyImage = errors.New("banner image cannot be empty")
)

type Banner struct {
	id        uuid.UUID
	title     string
	image     string
	isShow    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewBanner(title, image string, isShow bool) (*Banner, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(image) == "" {
		return nil, ErrEmptyImage
	}

	return &Banner{
		id:     uuid.New(),
		title:  title,
		image:  image,
		isShow: isShow,
	}, nil
}

func NewBannerForUpdate(id uuid.UUID, title, image string, isShow bool) (*Banner, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(image) == "" {
		return nil, ErrEmptyImage
	}

	return &Banner{
		id:     id,
		title:  title,
		image:  image,
		isShow: isShow,
	}, nil
}

func ReconstructBanner(id uuid.UUID, title, image string, isShow bool, createdAt, updatedAt time.Time) *Banner {
	return &Banner{
		id:        id,
		title:     title,
		image:     image,
		isShow:    isShow,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Banner) ID() uuid.UUID        { return b.id }
func (b *Banner) Title() string        { return b.title }
func (b *Banner) Image() string        { return b.image }
func (b *Banner) IsShow() bool         { return b.isShow }
func (b *Banner) CreatedAt() time.Time { return b.createdAt }
func (b *Banner) UpdatedAt() time.Time { return b.updatedAt }
