package domain

// KnownCategories is the fixed taxonomy the filter UI lists, in display
// order. Unknown categories on loaded records are preserved but never offered
// as filters.
var KnownCategories = []string{
	"Banking",
	"SSC",
	"Railway",
	"Police",
	"Defence",
	"Teaching",
	"UPSC",
	"Medical",
	"Engineering",
	"IT",
	"Finance",
	"Legal",
	"Sales",
	"HR",
	"Administrative",
	"General",
}

// IsKnownCategory reports whether c belongs to the fixed taxonomy.
func IsKnownCategory(c string) bool {
	for _, k := range KnownCategories {
		if k == c {
			return true
		}
	}
	return false
}

// CategoryCount pairs a taxonomy entry with the number of loaded records in it.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CountByCategory computes per-category counts over the loaded collection,
// one entry per known category in taxonomy order. Records with unknown
// categories are not counted anywhere.
func CountByCategory(jobs []JobRecord) []CategoryCount {
	byName := make(map[string]int, len(KnownCategories))
	for _, j := range jobs {
		byName[j.Category]++
	}
	out := make([]CategoryCount, 0, len(KnownCategories))
	for _, c := range KnownCategories {
		out = append(out, CategoryCount{Category: c, Count: byName[c]})
	}
	return out
}
