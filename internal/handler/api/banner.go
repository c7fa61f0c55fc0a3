package api

import (
	"errors"
	"net/http"

	reqdto "acara-api/internal/handler/dto/request"
	resdto "acara-api/internal/handler/dto/response"
	"acara-api/internal/usecase/commands"
	"acara-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BannerHandler struct {
	bannerCommands commands.BannerCommands
	bannerQueries  queries.BannerQueries
}

func NewBannerHandler(bannerCommands commands.BannerCommands, bannerQueries queries.BannerQueries) *BannerHandler {
	return &BannerHandler{
		bannerCommands: bannerCommands,
		bannerQueries:  bannerQueries,
	}
}

// @Summary List visible banners
// @Description List banners shown on the storefront
// @Tags banners
// @Produce json
// @Success 200 {array} resdto.BannerResponse
// @Router /banners [get]
func (h *BannerHandler) ListVisibleBanners(c *gin.Context) {
	views, err := h.bannerQueries.ListVisible(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBannerViews(views))
}

// @Summary List banners
// @Description List all banners including hidden ones (admin only)
// @Tags banners
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BannerResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /banners/all [get]
func (h *BannerHandler) ListAllBanners(c *gin.Context) {
	views, err := h.bannerQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBannerViews(views))
}

// @Summary Get banner
// @Description Get a banner by ID (admin only)
// @Tags banners
// @Produce json
// @Security BearerAuth
// @Param id path string true "Banner ID"
// @Success 200 {object} resdto.BannerResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /banners/{id} [get]
func (h *BannerHandler) GetBanner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid banner ID",
		})
		return
	}

	view, err := h.bannerQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBannerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Banner not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBannerView(view))
}

// @Summary Create banner
// @Description Create a new banner (admin only)
// @Tags banners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBannerRequest true "Banner request"
// @Success 201 {object} resdto.BannerResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /banners [post]
func (h *BannerHandler) CreateBanner(c *gin.Context) {
	var req reqdto.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bannerCommands.Create(c.Request.Context(), req)
	if err != nil {
		h.writeBannerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBannerView(view))
}

// @Summary Update banner
// @Description Update a banner (admin only)
// @Tags banners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Banner ID"
// @Param request body reqdto.UpdateBannerRequest true "Banner request"
// @Success 200 {object} resdto.BannerResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /banners/{id} [put]
func (h *BannerHandler) UpdateBanner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid banner ID",
		})
		return
	}

	var req reqdto.UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bannerCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeBannerError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBannerView(view))
}

// @Summary Delete banner
// @Description Delete a banner (admin only)
// @Tags banners
// @Produce json
// @Security BearerAuth
// @Param id path string true "Banner ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /banners/{id} [delete]
func (h *BannerHandler) DeleteBanner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid banner ID",
		})
		return
	}

	if err := h.bannerCommands.Delete(c.Request.Context(), id); err != nil {
		h.writeBannerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Banner deleted",
	})
}

func (h *BannerHandler) writeBannerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBannerNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Banner not found",
		})
	case errors.Is(err, commands.ErrInvalidBanner):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid banner data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
