package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/service"
)

const (
	msgNotFound      = "Not found."
	msgInvalidPage   = "Invalid page."
	msgInvalidInput  = "Invalid input."
	msgInternalError = "A server error occurred."
	msgBodyTooLarge  = "Request body too large."
)

var errBodyTooLarge = errors.New("request body too large")

func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}

func respondValidation(c *gin.Context, fields map[string][]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": msgInvalidInput, "errors": fields})
}

// handleServiceError maps service errors onto HTTP responses.
func (a *API) handleServiceError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		respondValidation(c, verr.Fields)
	case errors.Is(err, service.ErrNotFound):
		respondError(c, http.StatusNotFound, msgNotFound)
	case errors.Is(err, service.ErrInvalidPage):
		respondError(c, http.StatusNotFound, msgInvalidPage)
	default:
		a.logger.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		respondError(c, http.StatusInternalServerError, msgInternalError)
	}
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// readBody returns the raw request body, at most bodyLimit bytes; an empty
// body reads as "{}".
func (a *API) readBody(c *gin.Context) ([]byte, error) {
	if c.Request.Body == nil {
		return []byte("{}"), nil
	}
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, a.bodyLimit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errBodyTooLarge
		}
		return nil, err
	}
	if strings.TrimSpace(string(body)) == "" {
		return []byte("{}"), nil
	}
	return body, nil
}

// requestOrigin returns scheme://host of the current request, honouring a
// TLS terminating proxy.
func requestOrigin(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	} else if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}
	return scheme + "://" + c.Request.Host
}

// absoluteURL builds a fetchable URL for a stored media path, or nil if the
// path is empty.
func (a *API) absoluteURL(c *gin.Context, stored string) *string {
	stored = strings.TrimSpace(stored)
	if stored == "" {
		return nil
	}
	link := a.media.URL(stored)
	if strings.HasPrefix(link, "/") {
		link = requestOrigin(c) + link
	}
	return &link
}
