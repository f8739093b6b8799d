package domain

// Manifest is the feed envelope produced by the fetcher and consumed
// read-only by the engine at startup.
type Manifest struct {
	LastUpdated string      `json:"last_updated"`
	TotalJobs   int         `json:"total_jobs"`
	ActiveJobs  int         `json:"active_jobs"`
	ExpiredJobs int         `json:"expired_jobs"`
	Jobs        []JobRecord `json:"jobs"`
}

// DedupeByID drops records whose id was already seen, keeping first
// occurrence. Card identity in the UI depends on id uniqueness.
func DedupeByID(jobs []JobRecord) []JobRecord {
	seen := make(map[string]bool, len(jobs))
	out := jobs[:0:0]
	for _, j := range jobs {
		if j.ID == "" || seen[j.ID] {
			continue
		}
		seen[j.ID] = true
		out = append(out, j)
	}
	return out
}
