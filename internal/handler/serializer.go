package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/db"
)

// Outbound projections. Attachments are emitted as absolute URLs and
// relations carry a display name next to their id.

type teamMemberView struct {
	db.TeamMember
	Image    *string `json:"image"`
	ImageURL *string `json:"image_url"`
}

type newsSummaryView struct {
	ID            uint       `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Category      string     `json:"category"`
	Summary       string     `json:"summary"`
	ImageURL      *string    `json:"image_url"`
	AuthorName    *string    `json:"author_name"`
	PublishedDate *time.Time `json:"published_date"`
	Views         int        `json:"views"`
	IsPublished   bool       `json:"is_published"`
}

type newsDetailView struct {
	db.NewsArticle
	Image       *string `json:"image"`
	ImageURL    *string `json:"image_url"`
	AuthorName  *string `json:"author_name"`
	ContentHTML string  `json:"content_html"`
}

type caseStudyView struct {
	db.CaseStudy
	Image            *string `json:"image"`
	ImageURL         *string `json:"image_url"`
	PracticeAreaName *string `json:"practice_area_name"`
}

type testimonialView struct {
	db.Testimonial
	ClientImage      *string `json:"client_image"`
	ImageURL         *string `json:"image_url"`
	PracticeAreaName *string `json:"practice_area_name"`
}

type appointmentView struct {
	db.Appointment
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time"`
}

type careerView struct {
	db.CareerApplication
	Resume    *string `json:"resume"`
	ResumeURL *string `json:"resume_url"`
}

type seoView struct {
	db.SEOMetadata
	OgImage    *string `json:"og_image"`
	OgImageURL *string `json:"og_image_url"`
}

type activityLogView struct {
	db.ActivityLog
	Username *string `json:"username"`
}

func plain[T any](_ *gin.Context, item *T) any {
	return item
}

func (a *API) presentTeamMember(c *gin.Context, m *db.TeamMember) any {
	url := a.absoluteURL(c, m.Image)
	return teamMemberView{TeamMember: *m, Image: url, ImageURL: url}
}

func authorName(u *db.User) *string {
	if u == nil {
		return nil
	}
	name := u.FullName()
	return &name
}

func (a *API) presentNewsSummary(c *gin.Context, n *db.NewsArticle) any {
	return newsSummaryView{
		ID:            n.ID,
		Title:         n.Title,
		Slug:          n.Slug,
		Category:      n.Category,
		Summary:       n.Summary,
		ImageURL:      a.absoluteURL(c, n.Image),
		AuthorName:    authorName(n.Author),
		PublishedDate: n.PublishedDate,
		Views:         n.Views,
		IsPublished:   n.IsPublished,
	}
}

func (a *API) presentNewsDetail(c *gin.Context, n *db.NewsArticle) any {
	rendered, err := renderMarkdown(n.Content)
	if err != nil {
		a.logger.WarnContext(c.Request.Context(), "render article content", "id", n.ID, "error", err)
	}
	url := a.absoluteURL(c, n.Image)
	return newsDetailView{
		NewsArticle: *n,
		Image:       url,
		ImageURL:    url,
		AuthorName:  authorName(n.Author),
		ContentHTML: rendered,
	}
}

func practiceAreaName(p *db.PracticeArea) *string {
	if p == nil {
		return nil
	}
	title := p.Title
	return &title
}

func (a *API) presentCaseStudy(c *gin.Context, cs *db.CaseStudy) any {
	url := a.absoluteURL(c, cs.Image)
	return caseStudyView{
		CaseStudy:        *cs,
		Image:            url,
		ImageURL:         url,
		PracticeAreaName: practiceAreaName(cs.PracticeArea),
	}
}

func (a *API) presentTestimonial(c *gin.Context, t *db.Testimonial) any {
	url := a.absoluteURL(c, t.ClientImage)
	return testimonialView{
		Testimonial:      *t,
		ClientImage:      url,
		ImageURL:         url,
		PracticeAreaName: practiceAreaName(t.PracticeArea),
	}
}

func presentAppointment(_ *gin.Context, ap *db.Appointment) any {
	return appointmentView{
		Appointment:   *ap,
		PreferredDate: ap.DateString(),
		PreferredTime: ap.PreferredTime.String(),
	}
}

func (a *API) presentCareer(c *gin.Context, ca *db.CareerApplication) any {
	url := a.absoluteURL(c, ca.Resume)
	return careerView{CareerApplication: *ca, Resume: url, ResumeURL: url}
}

func (a *API) presentSEO(c *gin.Context, s *db.SEOMetadata) any {
	url := a.absoluteURL(c, s.OgImage)
	return seoView{SEOMetadata: *s, OgImage: url, OgImageURL: url}
}

func presentActivityLog(_ *gin.Context, l *db.ActivityLog) any {
	view := activityLogView{ActivityLog: *l}
	if l.User != nil {
		name := strings.TrimSpace(l.User.Username)
		view.Username = &name
	}
	return view
}
