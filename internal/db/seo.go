package db

import "time"

// SEOMetadata holds per-page meta tags keyed by page name.
type SEOMetadata struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PageName    string    `gorm:"size:100;uniqueIndex;not null" json:"page_name"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"size:500;not null" json:"description"`
	Keywords    string    `gorm:"size:500" json:"keywords"`
	OgImage     string    `gorm:"size:255" json:"-"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (SEOMetadata) TableName() string {
	return "seo_metadata"
}

func (s SEOMetadata) RecordID() uint { return s.ID }
func (s SEOMetadata) String() string { return s.PageName }

func (s SEOMetadata) NaturalKey() (string, string, string) {
	return "page_name", "page_name", s.PageName
}

// ActivityLog is an append-only audit record of an admin action.
type ActivityLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user"`
	User      *User     `gorm:"constraint:OnDelete:SET NULL;" json:"-"`
	Action    string    `gorm:"size:200;not null" json:"action"`
	ModelName string    `gorm:"size:100;not null;index" json:"model_name"`
	ObjectID  *uint     `json:"object_id"`
	Details   string    `gorm:"type:text" json:"details"`
	Timestamp time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
	IPAddress *string   `gorm:"size:45" json:"ip_address"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

func (l ActivityLog) RecordID() uint { return l.ID }

func (l ActivityLog) String() string {
	name := "system"
	if l.User != nil {
		name = l.User.Username
	}
	return name + " - " + l.Action + " - " + l.Timestamp.Format(time.RFC3339)
}
