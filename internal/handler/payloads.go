package handler

import (
	"strings"
	"time"

	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/db"
	"gorm.io/datatypes"
)

// payload is the writable projection of a model. load copies the model into
// the payload so a partial body only overrides what it names; apply writes
// the bound values back.
type payload[T any] interface {
	load(*T)
	apply(*T)
}

func trim(s string) string { return strings.TrimSpace(s) }

func copyID(id *uint) *uint {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func blankPracticeArea() *db.PracticeArea       { return &db.PracticeArea{Icon: "⚖️", IsActive: true} }
func blankTeamMember() *db.TeamMember           { return &db.TeamMember{IsActive: true} }
func blankNewsArticle() *db.NewsArticle         { return &db.NewsArticle{Category: db.NewsGeneral} }
func blankService() *db.Service                 { return &db.Service{Icon: "📋", IsActive: true} }
func blankCaseStudy() *db.CaseStudy             { return &db.CaseStudy{} }
func blankTestimonial() *db.Testimonial         { return &db.Testimonial{Rating: 5, IsPublished: true} }
func blankFAQ() *db.FAQ                         { return &db.FAQ{IsPublished: true} }
func blankEnquiry() *db.Enquiry                 { return &db.Enquiry{Status: db.EnquiryNew} }
func blankAppointment() *db.Appointment         { return &db.Appointment{Status: db.AppointmentPending} }
func blankSubscriber() *db.NewsletterSubscriber { return &db.NewsletterSubscriber{IsActive: true} }
func blankCareer() *db.CareerApplication        { return &db.CareerApplication{Status: "new"} }
func blankSEO() *db.SEOMetadata                 { return &db.SEOMetadata{} }

type practiceAreaPayload struct {
	Title       string `json:"title" binding:"required,max=200"`
	Slug        string `json:"slug" binding:"max=255,slug"`
	Icon        string `json:"icon" binding:"max=50"`
	Description string `json:"description" binding:"required"`
	FullContent string `json:"full_content"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"is_active"`
}

func (p *practiceAreaPayload) load(m *db.PracticeArea) {
	*p = practiceAreaPayload{
		Title: m.Title, Slug: m.Slug, Icon: m.Icon, Description: m.Description,
		FullContent: m.FullContent, Order: m.Order, IsActive: m.IsActive,
	}
}

func (p *practiceAreaPayload) apply(m *db.PracticeArea) {
	m.Title = trim(p.Title)
	m.Slug = trim(p.Slug)
	m.Icon = trim(p.Icon)
	m.Description = p.Description
	m.FullContent = p.FullContent
	m.Order = p.Order
	m.IsActive = p.IsActive
}

type teamMemberPayload struct {
	Name           string `json:"name" binding:"required,max=200"`
	Slug           string `json:"slug" binding:"max=255,slug"`
	Role           string `json:"role" binding:"required,oneof=founding_partner senior_partner partner senior_associate associate junior_associate"`
	Specialization string `json:"specialization" binding:"required,max=300"`
	Bio            string `json:"bio" binding:"required"`
	Education      string `json:"education"`
	Email          string `json:"email" binding:"omitempty,email,max=254"`
	Phone          string `json:"phone" binding:"max=20"`
	Image          string `json:"image" binding:"max=255"`
	LinkedinURL    string `json:"linkedin_url" binding:"omitempty,url,max=200"`
	Order          int    `json:"order"`
	IsActive       bool   `json:"is_active"`
}

func (p *teamMemberPayload) load(m *db.TeamMember) {
	*p = teamMemberPayload{
		Name: m.Name, Slug: m.Slug, Role: m.Role, Specialization: m.Specialization,
		Bio: m.Bio, Education: m.Education, Email: m.Email, Phone: m.Phone,
		Image: m.Image, LinkedinURL: m.LinkedinURL, Order: m.Order, IsActive: m.IsActive,
	}
}

func (p *teamMemberPayload) apply(m *db.TeamMember) {
	m.Name = trim(p.Name)
	m.Slug = trim(p.Slug)
	m.Role = p.Role
	m.Specialization = trim(p.Specialization)
	m.Bio = p.Bio
	m.Education = p.Education
	m.Email = trim(p.Email)
	m.Phone = trim(p.Phone)
	m.Image = trim(p.Image)
	m.LinkedinURL = trim(p.LinkedinURL)
	m.Order = p.Order
	m.IsActive = p.IsActive
}

// newsArticlePayload leaves out author, views and published_date: the
// server owns those.
type newsArticlePayload struct {
	Title       string `json:"title" binding:"required,max=300"`
	Slug        string `json:"slug" binding:"max=255,slug"`
	Category    string `json:"category" binding:"required,oneof=civil criminal corporate property family tax consumer banking general"`
	Summary     string `json:"summary" binding:"required,max=500"`
	Content     string `json:"content" binding:"required"`
	Image       string `json:"image" binding:"max=255"`
	IsPublished bool   `json:"is_published"`
}

func (p *newsArticlePayload) load(m *db.NewsArticle) {
	*p = newsArticlePayload{
		Title: m.Title, Slug: m.Slug, Category: m.Category, Summary: m.Summary,
		Content: m.Content, Image: m.Image, IsPublished: m.IsPublished,
	}
}

func (p *newsArticlePayload) apply(m *db.NewsArticle) {
	m.Title = trim(p.Title)
	m.Slug = trim(p.Slug)
	m.Category = p.Category
	m.Summary = p.Summary
	m.Content = p.Content
	m.Image = trim(p.Image)
	m.IsPublished = p.IsPublished
}

type servicePayload struct {
	Title       string `json:"title" binding:"required,max=200"`
	Slug        string `json:"slug" binding:"max=255,slug"`
	Category    string `json:"category" binding:"required,oneof=advisory litigation documentation adr compliance"`
	Description string `json:"description" binding:"required"`
	FullContent string `json:"full_content"`
	Icon        string `json:"icon" binding:"max=50"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"is_active"`
}

func (p *servicePayload) load(m *db.Service) {
	*p = servicePayload{
		Title: m.Title, Slug: m.Slug, Category: m.Category, Description: m.Description,
		FullContent: m.FullContent, Icon: m.Icon, Order: m.Order, IsActive: m.IsActive,
	}
}

func (p *servicePayload) apply(m *db.Service) {
	m.Title = trim(p.Title)
	m.Slug = trim(p.Slug)
	m.Category = p.Category
	m.Description = p.Description
	m.FullContent = p.FullContent
	m.Icon = trim(p.Icon)
	m.Order = p.Order
	m.IsActive = p.IsActive
}

type caseStudyPayload struct {
	Title        string `json:"title" binding:"required,max=300"`
	Slug         string `json:"slug" binding:"max=255,slug"`
	ClientName   string `json:"client_name" binding:"max=200"`
	PracticeArea *uint  `json:"practice_area"`
	Challenge    string `json:"challenge" binding:"required"`
	Solution     string `json:"solution" binding:"required"`
	Outcome      string `json:"outcome" binding:"required"`
	Image        string `json:"image" binding:"max=255"`
	IsPublished  bool   `json:"is_published"`
	Order        int    `json:"order"`
}

func (p *caseStudyPayload) load(m *db.CaseStudy) {
	*p = caseStudyPayload{
		Title: m.Title, Slug: m.Slug, ClientName: m.ClientName, PracticeArea: copyID(m.PracticeAreaID),
		Challenge: m.Challenge, Solution: m.Solution, Outcome: m.Outcome,
		Image: m.Image, IsPublished: m.IsPublished, Order: m.Order,
	}
}

func (p *caseStudyPayload) apply(m *db.CaseStudy) {
	m.Title = trim(p.Title)
	m.Slug = trim(p.Slug)
	m.ClientName = trim(p.ClientName)
	m.PracticeAreaID = p.PracticeArea
	m.PracticeArea = nil
	m.Challenge = p.Challenge
	m.Solution = p.Solution
	m.Outcome = p.Outcome
	m.Image = trim(p.Image)
	m.IsPublished = p.IsPublished
	m.Order = p.Order
}

type testimonialPayload struct {
	ClientName        string `json:"client_name" binding:"required,max=200"`
	ClientDesignation string `json:"client_designation" binding:"max=200"`
	ClientImage       string `json:"client_image" binding:"max=255"`
	Content           string `json:"content" binding:"required"`
	Rating            int    `json:"rating" binding:"gte=1,lte=5"`
	PracticeArea      *uint  `json:"practice_area"`
	IsFeatured        bool   `json:"is_featured"`
	IsPublished       bool   `json:"is_published"`
	Order             int    `json:"order"`
}

func (p *testimonialPayload) load(m *db.Testimonial) {
	*p = testimonialPayload{
		ClientName: m.ClientName, ClientDesignation: m.ClientDesignation, ClientImage: m.ClientImage,
		Content: m.Content, Rating: m.Rating, PracticeArea: copyID(m.PracticeAreaID),
		IsFeatured: m.IsFeatured, IsPublished: m.IsPublished, Order: m.Order,
	}
}

func (p *testimonialPayload) apply(m *db.Testimonial) {
	m.ClientName = trim(p.ClientName)
	m.ClientDesignation = trim(p.ClientDesignation)
	m.ClientImage = trim(p.ClientImage)
	m.Content = p.Content
	m.Rating = p.Rating
	m.PracticeAreaID = p.PracticeArea
	m.PracticeArea = nil
	m.IsFeatured = p.IsFeatured
	m.IsPublished = p.IsPublished
	m.Order = p.Order
}

type faqPayload struct {
	Question    string `json:"question" binding:"required,max=500"`
	Answer      string `json:"answer" binding:"required"`
	Category    string `json:"category" binding:"max=100"`
	Order       int    `json:"order"`
	IsPublished bool   `json:"is_published"`
}

func (p *faqPayload) load(m *db.FAQ) {
	*p = faqPayload{Question: m.Question, Answer: m.Answer, Category: m.Category, Order: m.Order, IsPublished: m.IsPublished}
}

func (p *faqPayload) apply(m *db.FAQ) {
	m.Question = trim(p.Question)
	m.Answer = p.Answer
	m.Category = trim(p.Category)
	m.Order = p.Order
	m.IsPublished = p.IsPublished
}

// enquirySubmission is what the public contact form may send.
type enquirySubmission struct {
	Name       string `json:"name" binding:"required,max=200"`
	Email      string `json:"email" binding:"required,email,max=254"`
	Phone      string `json:"phone" binding:"required,max=20"`
	MatterType string `json:"matter_type" binding:"required,oneof=civil criminal corporate property family other"`
	Subject    string `json:"subject" binding:"required,max=300"`
	Message    string `json:"message" binding:"required"`
}

func (p *enquirySubmission) load(m *db.Enquiry) {
	*p = enquirySubmission{
		Name: m.Name, Email: m.Email, Phone: m.Phone, MatterType: m.MatterType,
		Subject: m.Subject, Message: m.Message,
	}
}

func (p *enquirySubmission) apply(m *db.Enquiry) {
	m.Name = trim(p.Name)
	m.Email = trim(p.Email)
	m.Phone = trim(p.Phone)
	m.MatterType = p.MatterType
	m.Subject = trim(p.Subject)
	m.Message = p.Message
}

// sanitize strips markup from every free-text field of a public submission.
func (p *enquirySubmission) sanitize() {
	p.Name = stripTags(p.Name)
	p.Phone = stripTags(p.Phone)
	p.Subject = stripTags(p.Subject)
	p.Message = stripTags(p.Message)
}

type enquiryPayload struct {
	enquirySubmission
	Status string `json:"status" binding:"required,oneof=new in_progress contacted resolved closed"`
	Notes  string `json:"notes"`
}

func (p *enquiryPayload) load(m *db.Enquiry) {
	p.enquirySubmission.load(m)
	p.Status = m.Status
	p.Notes = m.Notes
}

func (p *enquiryPayload) apply(m *db.Enquiry) {
	p.enquirySubmission.apply(m)
	m.Status = p.Status
	m.Notes = p.Notes
}

type appointmentSubmission struct {
	Name          string `json:"name" binding:"required,max=200"`
	Email         string `json:"email" binding:"required,email,max=254"`
	Phone         string `json:"phone" binding:"required,max=20"`
	MatterType    string `json:"matter_type" binding:"required,oneof=civil criminal corporate property family other"`
	PreferredDate string `json:"preferred_date" binding:"required,datetime=2006-01-02"`
	PreferredTime string `json:"preferred_time" binding:"required,clock"`
	Message       string `json:"message"`
}

func (p *appointmentSubmission) load(m *db.Appointment) {
	*p = appointmentSubmission{
		Name: m.Name, Email: m.Email, Phone: m.Phone, MatterType: m.MatterType,
		PreferredDate: m.DateString(), PreferredTime: m.PreferredTime.String(), Message: m.Message,
	}
}

func (p *appointmentSubmission) apply(m *db.Appointment) {
	m.Name = trim(p.Name)
	m.Email = trim(p.Email)
	m.Phone = trim(p.Phone)
	m.MatterType = p.MatterType
	if day, err := time.Parse(time.DateOnly, trim(p.PreferredDate)); err == nil {
		m.PreferredDate = datatypes.Date(day)
	}
	if clock, ok := parseClock(p.PreferredTime); ok {
		m.PreferredTime = datatypes.NewTime(clock.Hour(), clock.Minute(), clock.Second(), 0)
	}
	m.Message = p.Message
}

func (p *appointmentSubmission) sanitize() {
	p.Name = stripTags(p.Name)
	p.Phone = stripTags(p.Phone)
	p.Message = stripTags(p.Message)
}

type appointmentPayload struct {
	appointmentSubmission
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
	Notes  string `json:"notes"`
}

func (p *appointmentPayload) load(m *db.Appointment) {
	p.appointmentSubmission.load(m)
	p.Status = m.Status
	p.Notes = m.Notes
}

func (p *appointmentPayload) apply(m *db.Appointment) {
	p.appointmentSubmission.apply(m)
	m.Status = p.Status
	m.Notes = p.Notes
}

type subscriptionRequest struct {
	Email string `json:"email" binding:"required,email,max=254"`
	Name  string `json:"name" binding:"max=200"`
}

func (p *subscriptionRequest) sanitize() {
	p.Name = stripTags(p.Name)
}

type subscriberPayload struct {
	subscriptionRequest
	IsActive bool `json:"is_active"`
}

func (p *subscriberPayload) load(m *db.NewsletterSubscriber) {
	p.Email = m.Email
	p.Name = m.Name
	p.IsActive = m.IsActive
}

func (p *subscriberPayload) apply(m *db.NewsletterSubscriber) {
	m.Email = strings.ToLower(trim(p.Email))
	m.Name = trim(p.Name)
	m.IsActive = p.IsActive
}

// careerSubmission is bound from the multipart application form.
type careerSubmission struct {
	Name            string `json:"name" form:"name" binding:"required,max=200"`
	Email           string `json:"email" form:"email" binding:"required,email,max=254"`
	Phone           string `json:"phone" form:"phone" binding:"required,max=20"`
	Position        string `json:"position" form:"position" binding:"required,max=200"`
	ExperienceYears *int   `json:"experience_years" form:"experience_years" binding:"required,gte=0"`
	Education       string `json:"education" form:"education" binding:"required"`
	CoverLetter     string `json:"cover_letter" form:"cover_letter" binding:"required"`
}

func (p *careerSubmission) load(m *db.CareerApplication) {
	years := m.ExperienceYears
	*p = careerSubmission{
		Name: m.Name, Email: m.Email, Phone: m.Phone, Position: m.Position,
		ExperienceYears: &years, Education: m.Education, CoverLetter: m.CoverLetter,
	}
}

func (p *careerSubmission) apply(m *db.CareerApplication) {
	m.Name = trim(p.Name)
	m.Email = trim(p.Email)
	m.Phone = trim(p.Phone)
	m.Position = trim(p.Position)
	if p.ExperienceYears != nil {
		m.ExperienceYears = *p.ExperienceYears
	}
	m.Education = p.Education
	m.CoverLetter = p.CoverLetter
}

func (p *careerSubmission) sanitize() {
	p.Name = stripTags(p.Name)
	p.Phone = stripTags(p.Phone)
	p.Position = stripTags(p.Position)
	p.Education = stripTags(p.Education)
	p.CoverLetter = stripTags(p.CoverLetter)
}

type careerPayload struct {
	careerSubmission
	Resume string `json:"resume" binding:"required,max=255"`
	Status string `json:"status" binding:"required,max=20"`
}

func (p *careerPayload) load(m *db.CareerApplication) {
	p.careerSubmission.load(m)
	p.Resume = m.Resume
	p.Status = m.Status
}

func (p *careerPayload) apply(m *db.CareerApplication) {
	p.careerSubmission.apply(m)
	m.Resume = trim(p.Resume)
	m.Status = trim(p.Status)
}

type seoPayload struct {
	PageName    string `json:"page_name" binding:"required,max=100"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=500"`
	Keywords    string `json:"keywords" binding:"max=500"`
	OgImage     string `json:"og_image" binding:"max=255"`
}

func (p *seoPayload) load(m *db.SEOMetadata) {
	*p = seoPayload{PageName: m.PageName, Title: m.Title, Description: m.Description, Keywords: m.Keywords, OgImage: m.OgImage}
}

func (p *seoPayload) apply(m *db.SEOMetadata) {
	m.PageName = trim(p.PageName)
	m.Title = trim(p.Title)
	m.Description = p.Description
	m.Keywords = trim(p.Keywords)
	m.OgImage = trim(p.OgImage)
}
