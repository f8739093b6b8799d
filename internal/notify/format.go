package notify

import (
	"fmt"
	"strings"

	"sarkari-engine/internal/domain"
)

// FormatJob renders one posting as a Telegram Markdown alert.
func FormatJob(j domain.JobRecord) string {
	var sb strings.Builder
	sb.WriteString("✨ *New Job Alert!* ✨\n\n")
	sb.WriteString(fmt.Sprintf("*Title:* %s\n", j.Title))
	sb.WriteString(fmt.Sprintf("*Source:* %s\n", j.Source))
	sb.WriteString(fmt.Sprintf("*Category:* %s\n", j.Category))
	sb.WriteString(fmt.Sprintf("*Description:* %s\n", excerpt(j.Description, 200)))
	if d := j.LastDate(); d != "" {
		sb.WriteString(fmt.Sprintf("*Last Date:* %s\n", d))
	}
	if d := j.ExamDate(); d != "" {
		sb.WriteString(fmt.Sprintf("*Exam Date:* %s\n", d))
	}
	if len(j.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("*Skills:* %s\n", strings.Join(j.Skills, ", ")))
	}
	sb.WriteString(fmt.Sprintf("*Link:* %s\n", j.URL))
	return sb.String()
}

func excerpt(s string, n int) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "N/A"
	}
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
