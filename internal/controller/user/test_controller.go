package user

import (
	"net/http"
	"strconv"

	"github.com/aquispel/burnout-api/internal/controller/respond"
	"github.com/aquispel/burnout-api/internal/dto"
	"github.com/aquispel/burnout-api/internal/middleware"
	"github.com/aquispel/burnout-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type TestController struct {
	testService       service.TestService
	completionService service.CompletionService
}

func NewTestController(testService service.TestService, completionService service.CompletionService) *TestController {
	return &TestController{
		testService:       testService,
		completionService: completionService,
	}
}

// StartTest godoc
// @Summary Start a new burnout test
// @Description Creates a test in in_progress state with the caller's demographics.
// @Tags Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param demographics body dto.TestCreateDTO true "Demographic data"
// @Success 201 {object} dto.TestResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /tests/start [post]
func (c *TestController) StartTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond.BindingError(ctx, err)
		return
	}

	test, err := c.testService.StartTest(middleware.CurrentUserID(ctx), req)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, test)
}

// SubmitResponse godoc
// @Summary Submit one answer
// @Description Stores an answer, overwriting any previous answer for the same question.
// @Tags Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Param answer body dto.ResponseSubmitDTO true "Question id and answer value"
// @Success 201 {object} dto.SubmitAckDTO
// @Failure 400 {object} dto.ErrorResponse "Test already completed"
// @Failure 404 {object} dto.ErrorResponse "Test or question not found"
// @Router /tests/{test_id}/responses [post]
func (c *TestController) SubmitResponse(ctx *gin.Context) {
	testID, ok := parseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	var req dto.ResponseSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond.BindingError(ctx, err)
		return
	}

	ack, err := c.testService.SubmitResponse(middleware.CurrentUserID(ctx), testID, req)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, ack)
}

// SubmitResponsesBatch godoc
// @Summary Submit several answers at once
// @Description Answers are applied in the order sent; each one is validated independently.
// @Tags Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Param answers body dto.ResponsesBatchDTO true "List of answers"
// @Success 201 {object} dto.SubmitAckDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /tests/{test_id}/responses/batch [post]
func (c *TestController) SubmitResponsesBatch(ctx *gin.Context) {
	testID, ok := parseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	var req dto.ResponsesBatchDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond.BindingError(ctx, err)
		return
	}

	ack, err := c.testService.SubmitResponsesBatch(middleware.CurrentUserID(ctx), testID, req)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, ack)
}

// CompleteTest godoc
// @Summary Complete a test and obtain the prediction
// @Description Validates all 19 answers are present, calls the ML service, stores the result and assigns recommendations. On predictor failure the test stays in_progress.
// @Tags Tests
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.TestResultDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Already completed or not enough answers"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 503 {object} dto.ErrorResponse "Prediction service unavailable"
// @Failure 504 {object} dto.ErrorResponse "Prediction service timed out"
// @Router /tests/{test_id}/complete [post]
func (c *TestController) CompleteTest(ctx *gin.Context) {
	testID, ok := parseIDParam(ctx, "test_id")
	if !ok {
		return
	}

	result, err := c.completionService.Complete(ctx.Request.Context(), middleware.CurrentUserID(ctx), testID)
	if err != nil {
		log.Warn().Err(err).Uint("testID", testID).Msg("CompleteTest failed")
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetMyTests godoc
// @Summary List the authenticated user's tests
// @Tags Tests
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows" default(100)
// @Success 200 {array} dto.TestListItemDTO
// @Router /tests/me [get]
func (c *TestController) GetMyTests(ctx *gin.Context) {
	skip, limit := parsePagination(ctx)
	tests, err := c.testService.ListMyTests(middleware.CurrentUserID(ctx), skip, limit)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTestDetail godoc
// @Summary Get a test with all its answers
// @Tags Tests
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.TestDetailDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /tests/{test_id} [get]
func (c *TestController) GetTestDetail(ctx *gin.Context) {
	testID, ok := parseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	detail, err := c.testService.GetTestDetail(middleware.CurrentUserID(ctx), testID)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// GetTestResult godoc
// @Summary Get the result and recommendations of a completed test
// @Tags Tests
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.TestResultDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Test or result not found"
// @Router /tests/{test_id}/result [get]
func (c *TestController) GetTestResult(ctx *gin.Context) {
	testID, ok := parseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	result, err := c.testService.GetResult(middleware.CurrentUserID(ctx), testID)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// DeleteTest godoc
// @Summary Delete a test with its answers and result
// @Tags Tests
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /tests/{test_id} [delete]
func (c *TestController) DeleteTest(ctx *gin.Context) {
	testID, ok := parseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	if err := c.testService.DeleteTest(middleware.CurrentUserID(ctx), testID); err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Kind: "validation", Message: "invalid " + name + " format",
		})
		return 0, false
	}
	return uint(val), true
}

func parsePagination(ctx *gin.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(ctx.DefaultQuery("limit", "100"))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return skip, limit
}
