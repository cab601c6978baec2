package db

import (
	"strconv"
	"time"

	"gorm.io/gorm"
)

// Sluggable records carry a unique slug derived from a title-like field when
// none is supplied.
type Sluggable interface {
	SlugValue() string
	SetSlug(string)
	SlugSource() string
}

// Keyed records expose the request field, column and value of their natural
// unique key so duplicates can be reported against the right field.
type Keyed interface {
	NaturalKey() (field, column, value string)
}

// PracticeArea is a legal service category such as "Corporate Law".
type PracticeArea struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Slug        string    `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Icon        string    `gorm:"size:50" json:"icon"`
	Description string    `gorm:"type:text;not null" json:"description"`
	FullContent string    `gorm:"type:text" json:"full_content"`
	Order       int       `gorm:"column:sort_order" json:"order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p PracticeArea) RecordID() uint     { return p.ID }
func (p PracticeArea) String() string     { return p.Title }
func (p PracticeArea) SlugValue() string  { return p.Slug }
func (p *PracticeArea) SetSlug(s string)  { p.Slug = s }
func (p PracticeArea) SlugSource() string { return p.Title }

func (p PracticeArea) NaturalKey() (string, string, string) { return "slug", "slug", p.Slug }

// BeforeDelete clears references held by case studies and testimonials.
func (p *PracticeArea) BeforeDelete(tx *gorm.DB) error {
	if err := tx.Model(&CaseStudy{}).Where("practice_area_id = ?", p.ID).Update("practice_area_id", nil).Error; err != nil {
		return err
	}
	return tx.Model(&Testimonial{}).Where("practice_area_id = ?", p.ID).Update("practice_area_id", nil).Error
}

// Team member roles.
const (
	RoleFoundingPartner = "founding_partner"
	RoleSeniorPartner   = "senior_partner"
	RolePartner         = "partner"
	RoleSeniorAssociate = "senior_associate"
	RoleAssociate       = "associate"
	RoleJuniorAssociate = "junior_associate"
)

// TeamMember is a lawyer profile shown on the team page.
type TeamMember struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:200;not null" json:"name"`
	Slug           string    `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Role           string    `gorm:"size:50;not null" json:"role"`
	Specialization string    `gorm:"size:300;not null" json:"specialization"`
	Bio            string    `gorm:"type:text;not null" json:"bio"`
	Education      string    `gorm:"type:text" json:"education"`
	Email          string    `gorm:"size:254" json:"email"`
	Phone          string    `gorm:"size:20" json:"phone"`
	Image          string    `gorm:"size:255" json:"-"`
	LinkedinURL    string    `gorm:"size:200" json:"linkedin_url"`
	Order          int       `gorm:"column:sort_order" json:"order"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (m TeamMember) RecordID() uint     { return m.ID }
func (m TeamMember) String() string     { return m.Name + " - " + m.Role }
func (m TeamMember) SlugValue() string  { return m.Slug }
func (m *TeamMember) SetSlug(s string)  { m.Slug = s }
func (m TeamMember) SlugSource() string { return m.Name }

func (m TeamMember) NaturalKey() (string, string, string) { return "slug", "slug", m.Slug }

// Service categories.
const (
	ServiceAdvisory      = "advisory"
	ServiceLitigation    = "litigation"
	ServiceDocumentation = "documentation"
	ServiceADR           = "adr"
	ServiceCompliance    = "compliance"
)

// Service is an offering listed on the services page.
type Service struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Slug        string    `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Category    string    `gorm:"size:50;not null" json:"category"`
	Description string    `gorm:"type:text;not null" json:"description"`
	FullContent string    `gorm:"type:text" json:"full_content"`
	Icon        string    `gorm:"size:50" json:"icon"`
	Order       int       `gorm:"column:sort_order" json:"order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s Service) RecordID() uint     { return s.ID }
func (s Service) String() string     { return s.Title }
func (s Service) SlugValue() string  { return s.Slug }
func (s *Service) SetSlug(v string)  { s.Slug = v }
func (s Service) SlugSource() string { return s.Title }

func (s Service) NaturalKey() (string, string, string) { return "slug", "slug", s.Slug }

// CaseStudy describes a past matter; the client may be left anonymous.
type CaseStudy struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Title          string        `gorm:"size:300;not null" json:"title"`
	Slug           string        `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	ClientName     string        `gorm:"size:200" json:"client_name"`
	PracticeAreaID *uint         `gorm:"index" json:"practice_area"`
	PracticeArea   *PracticeArea `gorm:"constraint:OnDelete:SET NULL;" json:"-"`
	Challenge      string        `gorm:"type:text;not null" json:"challenge"`
	Solution       string        `gorm:"type:text;not null" json:"solution"`
	Outcome        string        `gorm:"type:text;not null" json:"outcome"`
	Image          string        `gorm:"size:255" json:"-"`
	IsPublished    bool          `json:"is_published"`
	Order          int           `gorm:"column:sort_order" json:"order"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (c CaseStudy) RecordID() uint     { return c.ID }
func (c CaseStudy) String() string     { return c.Title }
func (c CaseStudy) SlugValue() string  { return c.Slug }
func (c *CaseStudy) SetSlug(s string)  { c.Slug = s }
func (c CaseStudy) SlugSource() string { return c.Title }

func (c CaseStudy) NaturalKey() (string, string, string) { return "slug", "slug", c.Slug }

// Testimonial is a client quote with a 1-5 rating.
type Testimonial struct {
	ID                uint          `gorm:"primaryKey" json:"id"`
	ClientName        string        `gorm:"size:200;not null" json:"client_name"`
	ClientDesignation string        `gorm:"size:200" json:"client_designation"`
	ClientImage       string        `gorm:"size:255" json:"-"`
	Content           string        `gorm:"type:text;not null" json:"content"`
	Rating            int           `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	PracticeAreaID    *uint         `gorm:"index" json:"practice_area"`
	PracticeArea      *PracticeArea `gorm:"constraint:OnDelete:SET NULL;" json:"-"`
	IsFeatured        bool          `json:"is_featured"`
	IsPublished       bool          `json:"is_published"`
	Order             int           `gorm:"column:sort_order" json:"order"`
	CreatedAt         time.Time     `json:"created_at"`
}

func (t Testimonial) RecordID() uint { return t.ID }

func (t Testimonial) String() string {
	return t.ClientName + " - " + strconv.Itoa(t.Rating) + "★"
}

// FAQ is a single question and answer pair.
type FAQ struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Question    string    `gorm:"size:500;not null" json:"question"`
	Answer      string    `gorm:"type:text;not null" json:"answer"`
	Category    string    `gorm:"size:100" json:"category"`
	Order       int       `gorm:"column:sort_order" json:"order"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName keeps the acronym readable.
func (FAQ) TableName() string {
	return "faqs"
}

func (f FAQ) RecordID() uint { return f.ID }

func (f FAQ) String() string {
	runes := []rune(f.Question)
	if len(runes) > 100 {
		return string(runes[:100])
	}
	return f.Question
}
