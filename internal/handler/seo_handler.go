package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/service"
)

// SEOByPage returns the metadata record for one page name.
func (a *API) SEOByPage(c *gin.Context) {
	item, err := a.SEO.store.Lookup(c.Request.Context(), c.Param("page_name"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "SEO metadata not found")
			return
		}
		a.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, a.presentSEO(c, item))
}
