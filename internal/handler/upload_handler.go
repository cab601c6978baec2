package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UploadImage stores an image in the media store. The returned path is what
// admin payloads put in their image fields.
func (a *API) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondValidation(c, map[string][]string{"file": {"No file was submitted."}})
		return
	}

	folder := c.PostForm("folder")
	if folder == "" {
		folder = "uploads"
	}

	stored, err := a.media.SaveImage(file, folder)
	if err != nil {
		if msg, ok := uploadMessage(err); ok {
			respondValidation(c, map[string][]string{"file": {msg}})
			return
		}
		a.handleServiceError(c, err)
		return
	}

	a.logActivity(c, "Uploaded", "Media", 0, stored)
	c.JSON(http.StatusCreated, gin.H{
		"path": stored,
		"url":  a.absoluteURL(c, stored),
	})
}
