package db

import (
	"time"

	"gorm.io/gorm"
)

// News categories.
const (
	NewsCivil     = "civil"
	NewsCriminal  = "criminal"
	NewsCorporate = "corporate"
	NewsProperty  = "property"
	NewsFamily    = "family"
	NewsTax       = "tax"
	NewsConsumer  = "consumer"
	NewsBanking   = "banking"
	NewsGeneral   = "general"
)

// NewsArticle is a legal news post. PublishedDate is stamped the first time
// the article is saved as published and never moves afterwards.
type NewsArticle struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Title         string     `gorm:"size:300;not null" json:"title"`
	Slug          string     `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Category      string     `gorm:"size:50;not null;index" json:"category"`
	Summary       string     `gorm:"type:text;not null" json:"summary"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	Image         string     `gorm:"size:255" json:"-"`
	AuthorID      *uint      `gorm:"index" json:"author"`
	Author        *User      `gorm:"constraint:OnDelete:SET NULL;" json:"-"`
	IsPublished   bool       `gorm:"index" json:"is_published"`
	PublishedDate *time.Time `json:"published_date"`
	Views         int        `gorm:"not null;default:0" json:"views"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (a NewsArticle) RecordID() uint     { return a.ID }
func (a NewsArticle) String() string     { return a.Title }
func (a NewsArticle) SlugValue() string  { return a.Slug }
func (a *NewsArticle) SetSlug(s string)  { a.Slug = s }
func (a NewsArticle) SlugSource() string { return a.Title }

func (a NewsArticle) NaturalKey() (string, string, string) { return "slug", "slug", a.Slug }

// BeforeSave stamps the publication date on the first save as published.
func (a *NewsArticle) BeforeSave(tx *gorm.DB) error {
	if a.IsPublished && a.PublishedDate == nil {
		now := time.Now().UTC()
		a.PublishedDate = &now
	}
	return nil
}
