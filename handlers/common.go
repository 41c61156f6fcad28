package handlers

import (
	"net/http"
	"strconv"

	"github.com/occamablade/yatube/config"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Error string `json:"error"`
}

var (
	// Predefined errors
	OKResponse       = Response{}
	NotFoundResponse = Response{"not found"}
	DBError1Response = Response{"DB Error 1"}
	DBError2Response = Response{"DB Error 2"}
)

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, NotFoundResponse)
}

// pageParam reads the 1-based page number from the query string. Anything
// unparseable falls back to page 1; out-of-range values are clamped later
// by the paginator.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

func pageSize() int {
	return config.POSTS_PER_PAGE
}
