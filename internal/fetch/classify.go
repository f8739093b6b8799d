package fetch

import (
	"sort"
	"strings"
)

// categoryKeywords maps each taxonomy entry to the phrases that mark a
// posting as belonging to it. Order matters: the first category with a hit
// wins, so the more specific exam boards come before catch-alls.
var categoryOrder = []string{
	"Banking", "SSC", "Railway", "Police", "Defence", "Teaching", "UPSC",
	"Medical", "Engineering", "IT", "Finance", "Legal", "Sales", "HR",
	"Administrative",
}

var categoryKeywords = map[string][]string{
	"Banking":        {"bank", "banking", "sbi", "pnb", "icici", "hdfc", "axis", "clerk", "probationary officer"},
	"SSC":            {"ssc", "staff selection commission", "cgl", "chsl", "mts", "stenographer"},
	"Railway":        {"railway", "rrb", "ntpc", "group d", "alp", "technician", "loco pilot"},
	"Police":         {"police", "constable", "sub inspector", "asi", "head constable", "security"},
	"Defence":        {"defence", "defense", "army", "navy", "air force", "bsf", "crpf", "cisf", "itbp", "agniveer"},
	"Teaching":       {"teacher", "teaching", "education", "professor", "lecturer", "principal", "school", "college"},
	"UPSC":           {"upsc", "ias", "ips", "ifs", "civil services", "union public service"},
	"Medical":        {"doctor", "nurse", "medical", "hospital", "aiims", "mbbs", "pharmacist"},
	"Engineering":    {"engineer", "engineering", "technical", "junior engineer", "assistant engineer"},
	"IT":             {"software", "developer", "programmer", "computer", "data analyst", "web developer"},
	"Finance":        {"finance", "accountant", "chartered accountant", "audit", "tax"},
	"Legal":          {"lawyer", "legal", "advocate", "judge", "court", "law"},
	"Sales":          {"sales", "marketing", "business development", "relationship manager"},
	"HR":             {"human resource", "recruitment", "talent acquisition"},
	"Administrative": {"clerk", "assistant", "officer", "administrative", "data entry"},
}

// DetectCategory classifies a posting from its text, defaulting to General.
func DetectCategory(text string) string {
	if text == "" {
		return "General"
	}
	low := strings.ToLower(text)
	for _, cat := range categoryOrder {
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(low, kw) {
				return cat
			}
		}
	}
	return "General"
}

// skillKeywords is the flat tag vocabulary scanned for in posting text.
var skillKeywords = []string{
	// technical
	"python", "java", "javascript", "c++", "c#", "php", "ruby", "go", "rust",
	"react", "angular", "node.js", "django", "spring",
	"sql", "mysql", "postgresql", "mongodb", "oracle",
	"aws", "azure", "docker", "kubernetes",
	"machine learning", "data science",
	"html", "css", "git",
	// business
	"project management", "agile", "scrum",
	"excel", "sap", "erp", "crm", "salesforce",
	"digital marketing", "seo", "data analysis", "tableau", "power bi",
	// government-exam staples
	"typing", "computer knowledge", "ms office",
	"general knowledge", "current affairs", "reasoning",
	"quantitative aptitude", "english", "hindi",
	// soft
	"communication skills", "leadership", "teamwork",
	"problem solving", "analytical thinking", "time management",
}

// ExtractSkills collects the skill tags mentioned in text, title-cased and
// deduplicated, in deterministic order.
func ExtractSkills(text string) []string {
	if text == "" {
		return nil
	}
	low := strings.ToLower(text)
	seen := map[string]bool{}
	var out []string
	for _, kw := range skillKeywords {
		if !strings.Contains(low, kw) || seen[kw] {
			continue
		}
		seen[kw] = true
		out = append(out, titleCase(kw))
	}
	sort.Strings(out)
	return out
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
