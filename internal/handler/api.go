package handler

import (
	"log/slog"

	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/auth"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/db"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/service"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/storage"
	"gorm.io/gorm"
)

// defaultBodyLimit caps JSON request bodies when no limit is configured.
const defaultBodyLimit = 1 << 20

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	bodyLimit int64
	logger    *slog.Logger
	tokens    *auth.TokenManager
	media     *storage.Local
	users     *service.UserService
	activity  *service.ActivityLogger
	dashboard *service.DashboardService

	PracticeAreas *resourceHandler[db.PracticeArea]
	Team          *resourceHandler[db.TeamMember]
	News          *resourceHandler[db.NewsArticle]
	Services      *resourceHandler[db.Service]
	CaseStudies   *resourceHandler[db.CaseStudy]
	Testimonials  *resourceHandler[db.Testimonial]
	FAQs          *resourceHandler[db.FAQ]
	Enquiries     *resourceHandler[db.Enquiry]
	Appointments  *resourceHandler[db.Appointment]
	Subscribers   *resourceHandler[db.NewsletterSubscriber]
	Careers       *resourceHandler[db.CareerApplication]
	SEO           *resourceHandler[db.SEOMetadata]
	ActivityLogs  *resourceHandler[db.ActivityLog]
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, tokens *auth.TokenManager, media *storage.Local, logger *slog.Logger) *API {
	if logger == nil {
		logger = slog.Default()
	}

	a := &API{
		db:        gdb,
		bodyLimit: defaultBodyLimit,
		logger:    logger,
		tokens:    tokens,
		media:     media,
		users:     service.NewUserService(gdb),
		activity:  service.NewActivityLogger(gdb, logger),
		dashboard: service.NewDashboardService(gdb),
	}
	a.registerResources()
	return a
}

// WithBodyLimit overrides the maximum accepted size of a JSON request body.
func (a *API) WithBodyLimit(limit int64) *API {
	if limit > 0 {
		a.bodyLimit = limit
	}
	return a
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}

// Media exposes the media store used for uploads and attachment URLs.
func (a *API) Media() *storage.Local {
	return a.media
}
