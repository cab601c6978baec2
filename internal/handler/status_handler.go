package handler

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/db"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/service"
)

type statusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// UpdateEnquiryStatus sets the status, and optionally the notes, of an enquiry.
func (a *API) UpdateEnquiryStatus(c *gin.Context) {
	updateStatus(c, a.Enquiries, "enquiry", db.EnquiryStatuses, (*db.Enquiry).SetStatus)
}

// UpdateAppointmentStatus sets the status, and optionally the notes, of an
// appointment.
func (a *API) UpdateAppointmentStatus(c *gin.Context) {
	updateStatus(c, a.Appointments, "appointment", db.AppointmentStatuses, (*db.Appointment).SetStatus)
}

// updateStatus accepts any value of the allowed set; there are no transition
// rules. Notes are only replaced when the body carries non-empty notes.
func updateStatus[T any](c *gin.Context, h *resourceHandler[T], label string, allowed []string, set func(*T, string, string)) {
	item, ok := h.load(c)
	if !ok {
		return
	}

	var req statusRequest
	body, err := h.api.readBody(c)
	if errors.Is(err, errBodyTooLarge) {
		respondError(c, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
		return
	}
	if err == nil {
		err = binding.JSON.BindBody(body, &req)
	}
	if err != nil {
		respondValidation(c, fieldErrors(err))
		return
	}
	status := strings.TrimSpace(req.Status)
	if status == "" {
		respondError(c, http.StatusBadRequest, "Status is required")
		return
	}
	if !slices.Contains(allowed, status) {
		respondValidation(c, service.NewValidationError("status", fmt.Sprintf("%q is not a valid choice.", status)).Fields)
		return
	}

	set(item, status, strings.TrimSpace(req.Notes))
	if err := h.store.Update(c.Request.Context(), item); err != nil {
		h.api.handleServiceError(c, err)
		return
	}

	h.api.logActivity(c, "Updated "+label+" status to "+status, h.Resource().Name, recordID(item), fmt.Sprint(item))
	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully"})
}
