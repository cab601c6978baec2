package service

import (
	"context"
	"database/sql"

	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/db"
	"gorm.io/gorm"
)

const recentLimit = 5

// DashboardStats is the admin overview snapshot.
type DashboardStats struct {
	TotalEnquiries      int64
	NewEnquiries        int64
	TotalAppointments   int64
	PendingAppointments int64
	TotalSubscribers    int64
	TotalNews           int64
	TotalTestimonials   int64
	TotalCaseStudies    int64
	RecentEnquiries     []db.Enquiry
	RecentAppointments  []db.Appointment
}

// DashboardService computes dashboard statistics.
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a DashboardService.
func NewDashboardService(gdb *gorm.DB) *DashboardService {
	return &DashboardService{db: gdb}
}

// Stats computes every figure inside one read-only transaction so the counts
// and recent lists describe the same instant. Nothing is cached.
func (s *DashboardService) Stats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		counts := []struct {
			model interface{}
			where string
			arg   interface{}
			dst   *int64
		}{
			{&db.Enquiry{}, "", nil, &stats.TotalEnquiries},
			{&db.Enquiry{}, "status = ?", db.EnquiryNew, &stats.NewEnquiries},
			{&db.Appointment{}, "", nil, &stats.TotalAppointments},
			{&db.Appointment{}, "status = ?", db.AppointmentPending, &stats.PendingAppointments},
			{&db.NewsletterSubscriber{}, "is_active = ?", true, &stats.TotalSubscribers},
			{&db.NewsArticle{}, "", nil, &stats.TotalNews},
			{&db.Testimonial{}, "", nil, &stats.TotalTestimonials},
			{&db.CaseStudy{}, "", nil, &stats.TotalCaseStudies},
		}
		for _, c := range counts {
			query := tx.Model(c.model)
			if c.where != "" {
				query = query.Where(c.where, c.arg)
			}
			if err := query.Count(c.dst).Error; err != nil {
				return err
			}
		}

		if err := tx.Order("created_at desc").Order("id desc").Limit(recentLimit).Find(&stats.RecentEnquiries).Error; err != nil {
			return err
		}
		return tx.Order("created_at desc").Order("id desc").Limit(recentLimit).Find(&stats.RecentAppointments).Error
	}, &sql.TxOptions{ReadOnly: true})

	return stats, err
}
