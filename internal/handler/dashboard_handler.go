package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type dashboardResponse struct {
	TotalEnquiries      int64 `json:"total_enquiries"`
	NewEnquiries        int64 `json:"new_enquiries"`
	TotalAppointments   int64 `json:"total_appointments"`
	PendingAppointments int64 `json:"pending_appointments"`
	TotalSubscribers    int64 `json:"total_subscribers"`
	TotalNews           int64 `json:"total_news"`
	TotalTestimonials   int64 `json:"total_testimonials"`
	TotalCaseStudies    int64 `json:"total_case_studies"`
	RecentEnquiries     []any `json:"recent_enquiries"`
	RecentAppointments  []any `json:"recent_appointments"`
}

// DashboardStats returns the admin overview counts and the latest leads.
func (a *API) DashboardStats(c *gin.Context) {
	stats, err := a.dashboard.Stats(c.Request.Context())
	if err != nil {
		a.handleServiceError(c, err)
		return
	}

	resp := dashboardResponse{
		TotalEnquiries:      stats.TotalEnquiries,
		NewEnquiries:        stats.NewEnquiries,
		TotalAppointments:   stats.TotalAppointments,
		PendingAppointments: stats.PendingAppointments,
		TotalSubscribers:    stats.TotalSubscribers,
		TotalNews:           stats.TotalNews,
		TotalTestimonials:   stats.TotalTestimonials,
		TotalCaseStudies:    stats.TotalCaseStudies,
		RecentEnquiries:     make([]any, 0, len(stats.RecentEnquiries)),
		RecentAppointments:  make([]any, 0, len(stats.RecentAppointments)),
	}
	for i := range stats.RecentEnquiries {
		resp.RecentEnquiries = append(resp.RecentEnquiries, stats.RecentEnquiries[i])
	}
	for i := range stats.RecentAppointments {
		resp.RecentAppointments = append(resp.RecentAppointments, presentAppointment(c, &stats.RecentAppointments[i]))
	}
	c.JSON(http.StatusOK, resp)
}
