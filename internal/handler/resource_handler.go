package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/db"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/service"
)

// ResourceRoutes is the uniform contract every registered resource exposes
// to the router.
type ResourceRoutes interface {
	Resource() service.Resource
	ReadOnly() bool
	PublicList(c *gin.Context)
	PublicRetrieve(c *gin.Context)
	AdminList(c *gin.Context)
	AdminRetrieve(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// resourceHandler serves list, retrieve, create, update and delete for one
// model type.
type resourceHandler[T any] struct {
	api        *API
	store      *service.Store[T]
	blank      func() *T
	newPayload func() payload[T]
	present    func(*gin.Context, *T) any
	// summarize, when set, replaces present on public lists.
	summarize     func(*gin.Context, *T) any
	beforeCreate  func(*gin.Context, *T)
	afterRetrieve func(*gin.Context, *T) error
}

func (h *resourceHandler[T]) Resource() service.Resource { return h.store.Resource() }

func (h *resourceHandler[T]) ReadOnly() bool { return h.newPayload == nil }

// PublicList returns visible records only.
func (h *resourceHandler[T]) PublicList(c *gin.Context) {
	h.list(c, true)
}

// AdminList returns every record.
func (h *resourceHandler[T]) AdminList(c *gin.Context) {
	h.list(c, false)
}

func (h *resourceHandler[T]) list(c *gin.Context, public bool) {
	page, size, ok := pageParams(c)
	if !ok {
		respondError(c, http.StatusNotFound, msgInvalidPage)
		return
	}

	result, err := h.store.List(c.Request.Context(), service.ListQuery{
		Public:   public,
		Params:   c.Request.URL.Query(),
		Page:     page,
		PageSize: size,
	})
	if err != nil {
		h.api.handleServiceError(c, err)
		return
	}

	present := h.present
	if public && h.summarize != nil {
		present = h.summarize
	}
	items := make([]any, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, present(c, &result.Items[i]))
	}
	c.JSON(http.StatusOK, listEnvelope(c, result, items))
}

// PublicRetrieve looks a visible record up by its public key.
func (h *resourceHandler[T]) PublicRetrieve(c *gin.Context) {
	item, err := h.store.Lookup(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.api.handleServiceError(c, err)
		return
	}
	if h.afterRetrieve != nil {
		if err := h.afterRetrieve(c, item); err != nil {
			h.api.handleServiceError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, h.present(c, item))
}

// AdminRetrieve fetches any record by id.
func (h *resourceHandler[T]) AdminRetrieve(c *gin.Context) {
	item, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.present(c, item))
}

// Create validates the body against a blank record and inserts it.
func (h *resourceHandler[T]) Create(c *gin.Context) {
	item := h.blank()
	p, ok := h.bind(c, item)
	if !ok {
		return
	}
	p.apply(item)
	if h.beforeCreate != nil {
		h.beforeCreate(c, item)
	}

	if err := h.store.Create(c.Request.Context(), item); err != nil {
		h.api.handleServiceError(c, err)
		return
	}

	h.api.logActivity(c, "Created", h.Resource().Name, recordID(item), fmt.Sprint(item))
	c.JSON(http.StatusCreated, h.present(c, item))
}

// Update handles PUT (every writable field, absent ones reset to defaults)
// and PATCH (only the fields present in the body).
func (h *resourceHandler[T]) Update(c *gin.Context) {
	item, ok := h.load(c)
	if !ok {
		return
	}

	base := h.blank()
	if c.Request.Method == http.MethodPatch {
		base = item
	}
	p, ok := h.bind(c, base)
	if !ok {
		return
	}
	p.apply(item)

	if err := h.store.Update(c.Request.Context(), item); err != nil {
		h.api.handleServiceError(c, err)
		return
	}

	h.api.logActivity(c, "Updated", h.Resource().Name, recordID(item), fmt.Sprint(item))
	c.JSON(http.StatusOK, h.present(c, item))
}

// Delete removes a record.
func (h *resourceHandler[T]) Delete(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusNotFound, msgNotFound)
		return
	}

	item, err := h.store.Delete(c.Request.Context(), id)
	if err != nil {
		h.api.handleServiceError(c, err)
		return
	}

	h.api.logActivity(c, "Deleted", h.Resource().Name, id, fmt.Sprint(item))
	c.Status(http.StatusNoContent)
}

func (h *resourceHandler[T]) load(c *gin.Context) (*T, bool) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusNotFound, msgNotFound)
		return nil, false
	}
	item, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		h.api.handleServiceError(c, err)
		return nil, false
	}
	return item, true
}

// bind normalizes the body, prefills a payload from base and decodes the
// body over it before validation runs.
func (h *resourceHandler[T]) bind(c *gin.Context, base *T) (payload[T], bool) {
	body, err := h.api.readBody(c)
	if errors.Is(err, errBodyTooLarge) {
		respondError(c, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
		return nil, false
	}
	if err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidInput)
		return nil, false
	}

	res := h.Resource()
	body, err = normalizeInput(body, res.Relations, res.Media, h.api.media.URLPath())
	if err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidInput)
		return nil, false
	}

	p := h.newPayload()
	p.load(base)
	if err := binding.JSON.BindBody(body, p); err != nil {
		respondValidation(c, fieldErrors(err))
		return nil, false
	}
	return p, true
}

func recordID(item any) uint {
	if r, ok := item.(db.Record); ok {
		return r.RecordID()
	}
	return 0
}

// logActivity records an admin mutation. Failures are logged by the
// activity logger and never change the response.
func (a *API) logActivity(c *gin.Context, action, model string, id uint, details string) {
	entry := service.ActivityEntry{
		Action:    action,
		ModelName: model,
		Details:   details,
		IPAddress: c.ClientIP(),
	}
	if user := currentUser(c); user != nil {
		uid := user.ID
		entry.UserID = &uid
	}
	if id != 0 {
		entry.ObjectID = &id
	}
	a.activity.Log(context.WithoutCancel(c.Request.Context()), entry)
}
