package db

import (
	"time"

	"gorm.io/datatypes"
)

// Matter types shared by enquiries and appointments.
const (
	MatterCivil     = "civil"
	MatterCriminal  = "criminal"
	MatterCorporate = "corporate"
	MatterProperty  = "property"
	MatterFamily    = "family"
	MatterOther     = "other"
)

// Enquiry statuses. Any status may follow any other.
const (
	EnquiryNew        = "new"
	EnquiryInProgress = "in_progress"
	EnquiryContacted  = "contacted"
	EnquiryResolved   = "resolved"
	EnquiryClosed     = "closed"
)

// EnquiryStatuses lists every valid enquiry status.
var EnquiryStatuses = []string{EnquiryNew, EnquiryInProgress, EnquiryContacted, EnquiryResolved, EnquiryClosed}

// Appointment statuses. Any status may follow any other.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)

// AppointmentStatuses lists every valid appointment status.
var AppointmentStatuses = []string{AppointmentPending, AppointmentConfirmed, AppointmentCancelled, AppointmentCompleted}

// Enquiry is a contact-form submission.
type Enquiry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:200;not null" json:"name"`
	Email      string    `gorm:"size:254;not null" json:"email"`
	Phone      string    `gorm:"size:20;not null" json:"phone"`
	MatterType string    `gorm:"size:20;not null" json:"matter_type"`
	Subject    string    `gorm:"size:300;not null" json:"subject"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	Status     string    `gorm:"size:20;not null;index" json:"status"`
	Notes      string    `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName avoids the inflector guessing at "enquiry".
func (Enquiry) TableName() string {
	return "enquiries"
}

func (e Enquiry) RecordID() uint { return e.ID }
func (e Enquiry) String() string { return e.Name + " - " + e.Subject }

// SetStatus changes the status and, when notes are given, replaces the notes.
func (e *Enquiry) SetStatus(status, notes string) {
	e.Status = status
	if notes != "" {
		e.Notes = notes
	}
}

// Appointment is a consultation request for a preferred date and time.
type Appointment struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"size:200;not null" json:"name"`
	Email         string         `gorm:"size:254;not null" json:"email"`
	Phone         string         `gorm:"size:20;not null" json:"phone"`
	MatterType    string         `gorm:"size:20;not null" json:"matter_type"`
	PreferredDate datatypes.Date `gorm:"not null;index" json:"-"`
	PreferredTime datatypes.Time `gorm:"not null" json:"-"`
	Message       string         `gorm:"type:text" json:"message"`
	Status        string         `gorm:"size:20;not null;index" json:"status"`
	Notes         string         `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (a Appointment) RecordID() uint { return a.ID }

func (a Appointment) String() string {
	return a.Name + " - " + a.DateString() + " " + a.PreferredTime.String()
}

// DateString renders the preferred date as YYYY-MM-DD.
func (a Appointment) DateString() string {
	return time.Time(a.PreferredDate).Format(time.DateOnly)
}

// SetStatus changes the status and, when notes are given, replaces the notes.
func (a *Appointment) SetStatus(status, notes string) {
	a.Status = status
	if notes != "" {
		a.Notes = notes
	}
}

// NewsletterSubscriber is a mailing list signup; emails are unique.
type NewsletterSubscriber struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:254;uniqueIndex;not null" json:"email"`
	Name         string    `gorm:"size:200" json:"name"`
	IsActive     bool      `gorm:"index" json:"is_active"`
	SubscribedAt time.Time `gorm:"autoCreateTime" json:"subscribed_at"`
}

func (s NewsletterSubscriber) RecordID() uint { return s.ID }
func (s NewsletterSubscriber) String() string { return s.Email }

func (s NewsletterSubscriber) NaturalKey() (string, string, string) {
	return "email", "email", s.Email
}

// CareerApplication is a job application with an attached resume.
type CareerApplication struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:200;not null" json:"name"`
	Email           string    `gorm:"size:254;not null" json:"email"`
	Phone           string    `gorm:"size:20;not null" json:"phone"`
	Position        string    `gorm:"size:200;not null" json:"position"`
	ExperienceYears int       `gorm:"not null" json:"experience_years"`
	Education       string    `gorm:"type:text;not null" json:"education"`
	CoverLetter     string    `gorm:"type:text;not null" json:"cover_letter"`
	Resume          string    `gorm:"size:255;not null" json:"-"`
	Status          string    `gorm:"size:20;not null" json:"status"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
}

func (c CareerApplication) RecordID() uint { return c.ID }
func (c CareerApplication) String() string { return c.Name + " - " + c.Position }
