// Package lead defines the prospect-side domain model: the Lead and Sender
// entities, their work history and prior-contact value objects, and the
// seniority inference rules driven by free-text job titles.
package lead

import (
	"strings"
	"time"

	"leadadapter/errs"
)

// WorkExperience is a single position in a lead's work history.
type WorkExperience struct {
	Company     string     `json:"company"`
	Title       string     `json:"title"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"` // nil means current position
	Description string     `json:"description,omitempty"`
}

// NewWorkExperience validates and returns a WorkExperience.
func NewWorkExperience(w WorkExperience) (WorkExperience, error) {
	if strings.TrimSpace(w.Company) == "" {
		return WorkExperience{}, errs.NewValidation("company", "cannot be empty")
	}
	if strings.TrimSpace(w.Title) == "" {
		return WorkExperience{}, errs.NewValidation("title", "cannot be empty")
	}
	return w, nil
}

// IsCurrent reports whether the position has no end date.
func (w WorkExperience) IsCurrent() bool {
	return w.EndDate == nil
}

// DurationYears returns how many full years the position lasted, using the
// current time for open-ended positions.
func (w WorkExperience) DurationYears() int {
	end := time.Now()
	if w.EndDate != nil {
		end = *w.EndDate
	}
	return int(end.Sub(w.StartDate).Hours() / 24 / 365)
}

// CampaignHistory records prior outreach attempts against a lead.
type CampaignHistory struct {
	TotalAttempts     int        `json:"total_attempts"`
	LastContactDate   *time.Time `json:"last_contact_date,omitempty"`
	LastChannel       string     `json:"last_channel,omitempty"`
	ResponsesReceived int        `json:"responses_received"`
}

// HasResponded reports whether the lead ever replied.
func (h CampaignHistory) HasResponded() bool {
	return h.ResponsesReceived > 0
}

// ResponseRate returns replies per attempt, 0 when never contacted.
func (h CampaignHistory) ResponseRate() float64 {
	if h.TotalAttempts == 0 {
		return 0
	}
	return float64(h.ResponsesReceived) / float64(h.TotalAttempts)
}

// DaysSinceLastContact returns the days elapsed since the last attempt, or
// -1 when no contact date is recorded.
func (h CampaignHistory) DaysSinceLastContact() int {
	if h.LastContactDate == nil {
		return -1
	}
	return int(time.Since(*h.LastContactDate).Hours() / 24)
}

// Lead is the prospect being contacted. Required fields are FirstName,
// JobTitle and CompanyName; a Lead is immutable once built.
type Lead struct {
	FirstName       string           `json:"first_name"`
	LastName        string           `json:"last_name,omitempty"`
	JobTitle        string           `json:"job_title"`
	CompanyName     string           `json:"company_name"`
	WorkExperience  []WorkExperience `json:"work_experience,omitempty"` // most recent first
	CampaignHistory *CampaignHistory `json:"campaign_history,omitempty"`
	Bio             string           `json:"bio,omitempty"`
	Skills          []string         `json:"skills,omitempty"`
	LinkedInURL     string           `json:"linkedin_url,omitempty"`
}

// NewLead validates the required fields and returns the Lead.
func NewLead(l Lead) (Lead, error) {
	if strings.TrimSpace(l.FirstName) == "" {
		return Lead{}, errs.NewValidation("first_name", "cannot be empty")
	}
	if strings.TrimSpace(l.JobTitle) == "" {
		return Lead{}, errs.NewValidation("job_title", "cannot be empty")
	}
	if strings.TrimSpace(l.CompanyName) == "" {
		return Lead{}, errs.NewValidation("company_name", "cannot be empty")
	}
	return l, nil
}

// FullName joins first and last name when a last name is known.
func (l Lead) FullName() string {
	if l.LastName != "" {
		return l.FirstName + " " + l.LastName
	}
	return l.FirstName
}

// YearsInCurrentRole derives tenure from the most recent work experience
// entry. Returns 0, false when no history is available.
func (l Lead) YearsInCurrentRole() (int, bool) {
	if len(l.WorkExperience) == 0 {
		return 0, false
	}
	return l.WorkExperience[0].DurationYears(), true
}

// HasPreviousContact reports whether any prior outreach attempt exists.
func (l Lead) HasPreviousContact() bool {
	return l.CampaignHistory != nil && l.CampaignHistory.TotalAttempts > 0
}

// Sender is the person on whose behalf messages are written.
type Sender struct {
	Name        string `json:"name"`
	CompanyName string `json:"company_name"`
	JobTitle    string `json:"job_title,omitempty"`
	Email       string `json:"email,omitempty"`
}

// NewSender validates the required fields and returns the Sender.
func NewSender(s Sender) (Sender, error) {
	if strings.TrimSpace(s.Name) == "" {
		return Sender{}, errs.NewValidation("name", "cannot be empty")
	}
	if strings.TrimSpace(s.CompanyName) == "" {
		return Sender{}, errs.NewValidation("company_name", "cannot be empty")
	}
	return s, nil
}

// Signature renders the sender line used at the bottom of messages.
func (s Sender) Signature() string {
	if s.JobTitle != "" {
		return s.Name + ", " + s.JobTitle + " @ " + s.CompanyName
	}
	return s.Name + " @ " + s.CompanyName
}
