package request

import (
	"acara-api/internal/domain/banner"
	"acara-api/internal/domain/category"
)

type CreateBannerRequest struct {
	Title  string `json:"title" binding:"required,max=120"`
	Image  string `json:"image" binding:"required"`
	IsShow bool   `json:"is_show"`
}

func (r CreateBannerRequest) ToDomain() (*banner.Banner, error) {
	return banner.NewBanner(r.Title, r.Image, r.IsShow)
}

type UpdateBannerRequest struct {
	Title  string `json:"title" binding:"required,max=120"`
	Image  string `json:"image" binding:"required"`
	IsShow bool   `json:"is_show"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func (r CreateCategoryRequest) ToDomain() (*category.Category, error) {
	return category.NewCategory(r.Name, r.Description, r.Icon)
}

type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
