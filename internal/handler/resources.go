package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/db"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/service"
)

func (a *API) registerResources() {
	registerValidators()

	a.PracticeAreas = &resourceHandler[db.PracticeArea]{
		api:        a,
		store:      service.NewStore[db.PracticeArea](a.db, service.PracticeAreaResource),
		blank:      blankPracticeArea,
		newPayload: func() payload[db.PracticeArea] { return &practiceAreaPayload{} },
		present:    plain[db.PracticeArea],
	}
	a.Team = &resourceHandler[db.TeamMember]{
		api:        a,
		store:      service.NewStore[db.TeamMember](a.db, service.TeamMemberResource),
		blank:      blankTeamMember,
		newPayload: func() payload[db.TeamMember] { return &teamMemberPayload{} },
		present:    a.presentTeamMember,
	}
	a.News = &resourceHandler[db.NewsArticle]{
		api:           a,
		store:         service.NewStore[db.NewsArticle](a.db, service.NewsArticleResource),
		blank:         blankNewsArticle,
		newPayload:    func() payload[db.NewsArticle] { return &newsArticlePayload{} },
		present:       a.presentNewsDetail,
		summarize:     a.presentNewsSummary,
		beforeCreate:  setArticleAuthor,
		afterRetrieve: a.countArticleView,
	}
	a.Services = &resourceHandler[db.Service]{
		api:        a,
		store:      service.NewStore[db.Service](a.db, service.ServiceResource),
		blank:      blankService,
		newPayload: func() payload[db.Service] { return &servicePayload{} },
		present:    plain[db.Service],
	}
	a.CaseStudies = &resourceHandler[db.CaseStudy]{
		api:        a,
		store:      service.NewStore[db.CaseStudy](a.db, service.CaseStudyResource),
		blank:      blankCaseStudy,
		newPayload: func() payload[db.CaseStudy] { return &caseStudyPayload{} },
		present:    a.presentCaseStudy,
	}
	a.Testimonials = &resourceHandler[db.Testimonial]{
		api:        a,
		store:      service.NewStore[db.Testimonial](a.db, service.TestimonialResource),
		blank:      blankTestimonial,
		newPayload: func() payload[db.Testimonial] { return &testimonialPayload{} },
		present:    a.presentTestimonial,
	}
	a.FAQs = &resourceHandler[db.FAQ]{
		api:        a,
		store:      service.NewStore[db.FAQ](a.db, service.FAQResource),
		blank:      blankFAQ,
		newPayload: func() payload[db.FAQ] { return &faqPayload{} },
		present:    plain[db.FAQ],
	}
	a.Enquiries = &resourceHandler[db.Enquiry]{
		api:        a,
		store:      service.NewStore[db.Enquiry](a.db, service.EnquiryResource),
		blank:      blankEnquiry,
		newPayload: func() payload[db.Enquiry] { return &enquiryPayload{} },
		present:    plain[db.Enquiry],
	}
	a.Appointments = &resourceHandler[db.Appointment]{
		api:        a,
		store:      service.NewStore[db.Appointment](a.db, service.AppointmentResource),
		blank:      blankAppointment,
		newPayload: func() payload[db.Appointment] { return &appointmentPayload{} },
		present:    presentAppointment,
	}
	a.Subscribers = &resourceHandler[db.NewsletterSubscriber]{
		api:        a,
		store:      service.NewStore[db.NewsletterSubscriber](a.db, service.SubscriberResource),
		blank:      blankSubscriber,
		newPayload: func() payload[db.NewsletterSubscriber] { return &subscriberPayload{} },
		present:    plain[db.NewsletterSubscriber],
	}
	a.Careers = &resourceHandler[db.CareerApplication]{
		api:        a,
		store:      service.NewStore[db.CareerApplication](a.db, service.CareerResource),
		blank:      blankCareer,
		newPayload: func() payload[db.CareerApplication] { return &careerPayload{} },
		present:    a.presentCareer,
	}
	a.SEO = &resourceHandler[db.SEOMetadata]{
		api:        a,
		store:      service.NewStore[db.SEOMetadata](a.db, service.SEOResource),
		blank:      blankSEO,
		newPayload: func() payload[db.SEOMetadata] { return &seoPayload{} },
		present:    a.presentSEO,
	}
	a.ActivityLogs = &resourceHandler[db.ActivityLog]{
		api:     a,
		store:   service.NewStore[db.ActivityLog](a.db, service.ActivityLogResource),
		present: presentActivityLog,
	}
}

// PublicResources lists the content served on the unauthenticated API.
func (a *API) PublicResources() []ResourceRoutes {
	return []ResourceRoutes{
		a.PracticeAreas, a.Team, a.News, a.Services, a.CaseStudies, a.Testimonials, a.FAQs,
	}
}

// AdminResources lists every resource managed through the admin API.
func (a *API) AdminResources() []ResourceRoutes {
	return []ResourceRoutes{
		a.PracticeAreas, a.Team, a.News, a.Services, a.CaseStudies, a.Testimonials, a.FAQs,
		a.Enquiries, a.Appointments, a.Subscribers, a.Careers, a.SEO, a.ActivityLogs,
	}
}

func setArticleAuthor(c *gin.Context, n *db.NewsArticle) {
	if user := currentUser(c); user != nil {
		id := user.ID
		n.AuthorID = &id
	}
}

// countArticleView bumps the stored view counter and mirrors it on the
// record being returned.
func (a *API) countArticleView(c *gin.Context, n *db.NewsArticle) error {
	if err := a.News.store.Increment(c.Request.Context(), n.ID, "views"); err != nil {
		return err
	}
	n.Views++
	return nil
}
