package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/service"
)

type listResponse struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []any   `json:"results"`
}

// pageParams reads page and page_size. A page that is not a positive integer
// is rejected; an unusable page_size falls back to the default.
func pageParams(c *gin.Context) (int, int, bool) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return 0, 0, false
		}
		page = n
	}

	size := 0
	if raw := c.Query("page_size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			size = n
		}
	}
	return page, size, true
}

func listEnvelope[T any](c *gin.Context, page service.Page[T], items []any) listResponse {
	resp := listResponse{Count: page.Total, Results: items}
	if page.HasNext() {
		link := pageURL(c, page.Page+1)
		resp.Next = &link
	}
	if page.HasPrevious() {
		link := pageURL(c, page.Page-1)
		resp.Previous = &link
	}
	return resp
}

// pageURL rebuilds the current request URL pointing at another page. The
// first page is addressed without a page parameter.
func pageURL(c *gin.Context, page int) string {
	query := c.Request.URL.Query()
	if page <= 1 {
		query.Del("page")
	} else {
		query.Set("page", strconv.Itoa(page))
	}

	link := requestOrigin(c) + c.Request.URL.Path
	if encoded := query.Encode(); encoded != "" {
		link += "?" + encoded
	}
	return link
}
