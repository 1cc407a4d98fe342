package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kareemh/maarif/internal/app/models/dto"
	"github.com/kareemh/maarif/internal/app/services"
	"github.com/kareemh/maarif/internal/middleware"
)

// RankingController handles leaderboard queries
type RankingController struct {
	rankingService services.RankingService
}

// NewRankingController creates a new RankingController
func NewRankingController(rankingService services.RankingService) *RankingController {
	return &RankingController{rankingService: rankingService}
}

// TopAnswerers handles the helpfulness leaderboard
// @Summary Top answerers
// @Description Retrieves the users with the highest accumulated helpfulness, at most limit entries. Ordering between ties is not guaranteed.
// @Tags rankings
// @Produce json
// @Param limit query int false "Maximum entries" default(5) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]dto.RankedUserResponse} "Top answerers"
// @Router /rankings/answerers [get]
func (c *RankingController) TopAnswerers(ctx *gin.Context) {
	users, err := c.rankingService.TopAnswerers(ctx.Request.Context(), parseLimit(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.RankedByHelpfulness(users)))
}

// TopAskers handles the questions-asked leaderboard
// @Summary Top askers
// @Description Retrieves the users who asked the most questions, at most limit entries. Ordering between ties is not guaranteed.
// @Tags rankings
// @Produce json
// @Param limit query int false "Maximum entries" default(5) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]dto.RankedUserResponse} "Top askers"
// @Router /rankings/askers [get]
func (c *RankingController) TopAskers(ctx *gin.Context) {
	users, err := c.rankingService.TopAskers(ctx.Request.Context(), parseLimit(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.RankedByQuestions(users)))
}

// TotalUsers handles the registered-account count
// @Summary Total users
// @Description Retrieves the number of registered accounts.
// @Tags rankings
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.UserCountResponse} "User count"
// @Router /rankings/users/count [get]
func (c *RankingController) TotalUsers(ctx *gin.Context) {
	count, err := c.rankingService.TotalUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.UserCountResponse{Count: count}))
}

func parseLimit(ctx *gin.Context) int {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "5"))
	if err != nil {
		return services.DefaultRankingLimit
	}
	return limit
}
