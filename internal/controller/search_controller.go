package controller

import (
	"cs_sprint_backend/internal/service"
	"cs_sprint_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	service *service.SearchService
}

func NewSearchController(s *service.SearchService) *SearchController {
	return &SearchController{service: s}
}

// Search godoc
// @Summary 통합 검색
// @Description 모듈과 멤버를 검색합니다. 두 글자 미만의 검색어는 빈 결과를 반환합니다
// @Tags 검색
// @Produce json
// @Param q query string true "검색어"
// @Param type query string false "module | user | all" default(all)
// @Success 200 {object} service.SearchResult
// @Router /api/search [get]
func (c *SearchController) Search(ctx *gin.Context) {
	query := ctx.Query("q")
	searchType := ctx.DefaultQuery("type", "all")
	util.Success(ctx, c.service.Search(query, searchType))
}
