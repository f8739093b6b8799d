package fetch

import (
	"regexp"
	"strings"

	"sarkari-engine/internal/domain"
)

var (
	lastDateRe  = regexp.MustCompile(`(?i)(?:last date|application deadline|closing date|apply before)\s*:?\s*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`)
	examDateRe  = regexp.MustCompile(`(?i)(?:exam date|test date)\s*:?\s*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`)
	linkRe      = regexp.MustCompile(`https?://[\w.-]+(?:/[\w.%-]*)*/?(?:\?[\w&=%.-]*)?`)
	pdfSuffixRe = regexp.MustCompile(`(?i)\.pdf(?:\?|$)`)
)

// ExtractDates pulls labelled dates out of free posting text. Returns nil
// when nothing labelled is found; unlabelled dates are too noisy to trust.
func ExtractDates(text string) *domain.ImportantDates {
	if text == "" {
		return nil
	}
	var d domain.ImportantDates
	if m := lastDateRe.FindStringSubmatch(text); m != nil {
		d.LastDate = m[1]
	}
	if m := examDateRe.FindStringSubmatch(text); m != nil {
		d.ExamDate = m[1]
	}
	if d.LastDate == "" && d.ExamDate == "" {
		return nil
	}
	return &d
}

// ExtractLinks returns all absolute URLs found in text, with the first PDF
// link surfaced separately.
func ExtractLinks(text string) (links []string, pdfLink string) {
	for _, l := range linkRe.FindAllString(text, -1) {
		links = append(links, l)
		if pdfLink == "" && pdfSuffixRe.MatchString(l) {
			pdfLink = l
		}
	}
	return links, pdfLink
}

// Summarize crops page text to a card-sized description.
func Summarize(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return "No description available"
	}
	if len(text) > 300 {
		return text[:297] + "..."
	}
	return text
}
