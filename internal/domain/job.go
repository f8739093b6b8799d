package domain

// ImportantDates carries the structured dates a posting may advertise.
// Values are day-month-year strings as scraped; absence means "not specified".
type ImportantDates struct {
	LastDate string `json:"last_date,omitempty"`
	ExamDate string `json:"exam_date,omitempty"`
}

// JobRecord is one posting. Records are immutable once loaded; the whole
// collection is replaced wholesale on reload.
type JobRecord struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Source         string          `json:"source"`
	Category       string          `json:"category"`
	Description    string          `json:"description"`
	URL            string          `json:"url"`
	PDFLink        string          `json:"pdf_link,omitempty"`
	ImportantDates *ImportantDates `json:"important_dates,omitempty"`
	Skills         []string        `json:"skills,omitempty"`
	ScrapedAt      string          `json:"scraped_at,omitempty"`
}

// LastDate returns the raw application deadline string, or "" when the
// posting has none.
func (j JobRecord) LastDate() string {
	if j.ImportantDates == nil {
		return ""
	}
	return j.ImportantDates.LastDate
}

// ExamDate returns the raw exam date string, or "" when the posting has none.
func (j JobRecord) ExamDate() string {
	if j.ImportantDates == nil {
		return ""
	}
	return j.ImportantDates.ExamDate
}
