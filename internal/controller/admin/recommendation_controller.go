package admin

import (
	"net/http"

	"github.com/aquispel/burnout-api/internal/controller/respond"
	"github.com/aquispel/burnout-api/internal/dto"
	"github.com/aquispel/burnout-api/internal/service"
	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	recommendationService service.RecommendationService
}

func NewRecommendationController(recommendationService service.RecommendationService) *RecommendationController {
	return &RecommendationController{recommendationService: recommendationService}
}

// CreateRecommendation godoc
// @Summary (Admin) Create a recommendation
// @Tags Admin - Recommendations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recommendation body dto.RecommendationCreateDTO true "Recommendation data"
// @Success 201 {object} dto.RecommendationResponseDTO
// @Router /admin/recommendations [post]
func (c *RecommendationController) CreateRecommendation(ctx *gin.Context) {
	var req dto.RecommendationCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond.BindingError(ctx, err)
		return
	}

	rec, err := c.recommendationService.CreateRecommendation(req)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, rec)
}

// ListRecommendations godoc
// @Summary (Admin) List recommendations with filters
// @Tags Admin - Recommendations
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows" default(100)
// @Param active_only query bool false "Only active entries"
// @Param for_positive_result query bool false "Filter by polarity"
// @Success 200 {array} dto.RecommendationResponseDTO
// @Router /admin/recommendations [get]
func (c *RecommendationController) ListRecommendations(ctx *gin.Context) {
	skip, limit := parsePagination(ctx)
	activeOnly := ctx.Query("active_only") == "true"

	var forPositive *bool
	if v := ctx.Query("for_positive_result"); v != "" {
		b := v == "true"
		forPositive = &b
	}

	recs, err := c.recommendationService.ListRecommendations(skip, limit, activeOnly, forPositive)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, recs)
}

// GetRecommendation godoc
// @Summary (Admin) Get a recommendation
// @Tags Admin - Recommendations
// @Produce json
// @Security BearerAuth
// @Param recommendation_id path int true "Recommendation ID"
// @Success 200 {object} dto.RecommendationResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/recommendations/{recommendation_id} [get]
func (c *RecommendationController) GetRecommendation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "recommendation_id")
	if !ok {
		return
	}
	rec, err := c.recommendationService.GetRecommendation(id)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rec)
}

// UpdateRecommendation godoc
// @Summary (Admin) Update a recommendation
// @Tags Admin - Recommendations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recommendation_id path int true "Recommendation ID"
// @Param recommendation body dto.RecommendationUpdateDTO true "Fields to change"
// @Success 200 {object} dto.RecommendationResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/recommendations/{recommendation_id} [put]
func (c *RecommendationController) UpdateRecommendation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "recommendation_id")
	if !ok {
		return
	}
	var req dto.RecommendationUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond.BindingError(ctx, err)
		return
	}

	rec, err := c.recommendationService.UpdateRecommendation(id, req)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rec)
}

// DeleteRecommendation godoc
// @Summary (Admin) Delete a recommendation
// @Tags Admin - Recommendations
// @Security BearerAuth
// @Param recommendation_id path int true "Recommendation ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/recommendations/{recommendation_id} [delete]
func (c *RecommendationController) DeleteRecommendation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "recommendation_id")
	if !ok {
		return
	}
	if err := c.recommendationService.DeleteRecommendation(id); err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
