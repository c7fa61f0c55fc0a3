package response

import (
	"time"

	"acara-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BannerResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Image     string    `json:"image"`
	IsShow    bool      `json:"isShow"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromBannerView(rm *queries.BannerView) *BannerResponse {
	return &BannerResponse{
		ID:        rm.ID,
		Title:     rm.Title,
		Image:     rm.Image,
		IsShow:    rm.IsShow,
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}
}

func FromBannerViews(views []*queries.BannerView) []*BannerResponse {
	items := make([]*BannerResponse, 0, len(views))
	for _, v := range views {
		items = append(items, FromBannerView(v))
	}
	return items
}

func FromCategoryView(rm *queries.CategoryView) *CategoryResponse {
	return &CategoryResponse{
		ID:          rm.ID,
		Name:        rm.Name,
		Description: rm.Description,
		Icon:        rm.Icon,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

func FromCategoryViews(views []*queries.CategoryView) []*CategoryResponse {
	items := make([]*CategoryResponse, 0, len(views))
	for _, v := range views {
		items = append(items, FromCategoryView(v))
	}
	return items
}
