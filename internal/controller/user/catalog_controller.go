package user

import (
	"net/http"

	"github.com/aquispel/burnout-api/internal/controller/respond"
	"github.com/aquispel/burnout-api/internal/service"
	"github.com/gin-gonic/gin"
)

// CatalogController exposes the read-only question catalog users fill in.
type CatalogController struct {
	questionService service.QuestionService
}

func NewCatalogController(questionService service.QuestionService) *CatalogController {
	return &CatalogController{questionService: questionService}
}

// ListActiveQuestions godoc
// @Summary List the active questionnaire
// @Description Returns the active questions with their options, in questionnaire order.
// @Tags Questions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuestionResponseDTO
// @Router /questions [get]
func (c *CatalogController) ListActiveQuestions(ctx *gin.Context) {
	skip, limit := parsePagination(ctx)
	questions, err := c.questionService.ListQuestions(skip, limit, true)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}
