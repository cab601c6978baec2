package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/service"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/storage"
)

const (
	msgCheckForm          = "Please check the form and try again."
	msgSubscriptionFailed = "Subscription failed. You may already be subscribed."
	msgApplicationFailed  = "Application submission failed. Please check the form and try again."
)

type submissionResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    any                 `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// sanitizable is a public form whose free text is stripped of markup before
// validation.
type sanitizable interface {
	sanitize()
}

func respondSubmitted(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, submissionResponse{Success: true, Message: message, Data: data})
}

func respondRejected(c *gin.Context, message string, fields map[string][]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, submissionResponse{Success: false, Message: message, Errors: fields})
}

// bindSubmission decodes a JSON form, strips markup and then validates, so a
// field holding nothing but tags counts as empty.
func (a *API) bindSubmission(c *gin.Context, form sanitizable) map[string][]string {
	body, err := a.readBody(c)
	if errors.Is(err, errBodyTooLarge) {
		return map[string][]string{"non_field_errors": {msgBodyTooLarge}}
	}
	if err != nil {
		return map[string][]string{"non_field_errors": {msgInvalidInput}}
	}
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(form); err != nil {
		return fieldErrors(err)
	}
	form.sanitize()
	if err := binding.Validator.ValidateStruct(form); err != nil {
		return fieldErrors(err)
	}
	return nil
}

// storeSubmission persists a submitted record. Validation failures come back
// as field errors; anything else has already been answered with a 500.
func storeSubmission[T any](c *gin.Context, h *resourceHandler[T], item *T) (map[string][]string, bool) {
	err := h.store.Create(c.Request.Context(), item)
	if err == nil {
		return nil, true
	}
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return verr.Fields, false
	}
	h.api.handleServiceError(c, err)
	return nil, false
}

// SubmitEnquiry records a contact form enquiry.
func (a *API) SubmitEnquiry(c *gin.Context) {
	var form enquirySubmission
	if fields := a.bindSubmission(c, &form); fields != nil {
		respondRejected(c, msgCheckForm, fields)
		return
	}

	item := blankEnquiry()
	form.apply(item)
	if fields, ok := storeSubmission(c, a.Enquiries, item); !ok {
		if fields != nil {
			respondRejected(c, msgCheckForm, fields)
		}
		return
	}
	respondSubmitted(c, "Your enquiry has been submitted successfully. We will contact you soon.", item)
}

// SubmitAppointment records a consultation request.
func (a *API) SubmitAppointment(c *gin.Context) {
	var form appointmentSubmission
	if fields := a.bindSubmission(c, &form); fields != nil {
		respondRejected(c, msgCheckForm, fields)
		return
	}

	item := blankAppointment()
	form.apply(item)
	if fields, ok := storeSubmission(c, a.Appointments, item); !ok {
		if fields != nil {
			respondRejected(c, msgCheckForm, fields)
		}
		return
	}
	respondSubmitted(c, "Your appointment request has been submitted. We will confirm shortly.", presentAppointment(c, item))
}

// Subscribe adds an address to the newsletter list.
func (a *API) Subscribe(c *gin.Context) {
	var form subscriptionRequest
	if fields := a.bindSubmission(c, &form); fields != nil {
		respondRejected(c, msgSubscriptionFailed, fields)
		return
	}

	item := blankSubscriber()
	(&subscriberPayload{subscriptionRequest: form, IsActive: true}).apply(item)
	if fields, ok := storeSubmission(c, a.Subscribers, item); !ok {
		if fields != nil {
			respondRejected(c, msgSubscriptionFailed, fields)
		}
		return
	}
	respondSubmitted(c, "Thank you for subscribing to our newsletter!", nil)
}

// ApplyForCareer stores a multipart job application together with its
// resume document.
func (a *API) ApplyForCareer(c *gin.Context) {
	var form careerSubmission
	fields := map[string][]string{}
	if err := c.ShouldBindWith(&form, binding.FormMultipart); err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			fields["experience_years"] = []string{"A valid integer is required."}
		} else {
			for name, msgs := range fieldErrors(err) {
				fields[name] = msgs
			}
		}
	} else {
		form.sanitize()
		if err := binding.Validator.ValidateStruct(&form); err != nil {
			fields = fieldErrors(err)
		}
	}

	resume, err := c.FormFile("resume")
	if err != nil {
		fields["resume"] = []string{"No file was submitted."}
	}
	if len(fields) > 0 {
		respondRejected(c, msgApplicationFailed, fields)
		return
	}

	stored, err := a.media.SaveDocument(resume, "resumes")
	if err != nil {
		if msg, ok := uploadMessage(err); ok {
			respondRejected(c, msgApplicationFailed, map[string][]string{"resume": {msg}})
			return
		}
		a.handleServiceError(c, err)
		return
	}

	item := blankCareer()
	form.apply(item)
	item.Resume = stored
	if fields, ok := storeSubmission(c, a.Careers, item); !ok {
		if rmErr := a.media.Remove(stored); rmErr != nil {
			a.logger.WarnContext(c.Request.Context(), "remove orphaned resume", "path", stored, "error", rmErr)
		}
		if fields != nil {
			respondRejected(c, msgApplicationFailed, fields)
		}
		return
	}
	respondSubmitted(c, "Your application has been submitted successfully.", nil)
}

// uploadMessage turns a rejected upload into a field message.
func uploadMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, storage.ErrEmptyFile):
		return "The submitted file is empty.", true
	case errors.Is(err, storage.ErrFileTooLarge):
		return "The submitted file is too large.", true
	case errors.Is(err, storage.ErrUnsupportedType):
		return "The submitted file type is not supported.", true
	case errors.Is(err, storage.ErrInvalidImage):
		return "Upload a valid image. The file you uploaded was either not an image or a corrupted image.", true
	}
	return "", false
}
