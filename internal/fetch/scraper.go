// Package fetch builds the job manifest: it crawls configured portals,
// classifies what it finds, and maintains jobs/job_manifest.json for the
// engine's feed loader.
package fetch

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"sarkari-engine/internal/domain"
)

const userAgent = "SarkariEngine/1.0 (+local)"

// jobSelectors is the cascade tried against each portal page; the first
// selector that yields postings wins. Portals differ wildly, so this stays
// deliberately generic.
var jobSelectors = []string{
	`a[href*="job"]`,
	`a[href*="recruitment"]`,
	`a[href*="vacancy"]`,
	`a[href*="notification"]`,
	".job-title a",
	".job-link",
	".vacancy-link",
	"h3 a",
	"h4 a",
	".post-title a",
}

var titleKeywords = []string{"job", "recruitment", "vacancy", "notification", "exam", "apply"}

type Portal struct {
	Name string
	URL  string
}

type Scraper struct {
	Portals      []Portal
	PerSiteLimit int
	Limiter      *HostLimiter
	Client       *http.Client

	// Progress, when set, is called once per finished portal.
	Progress func(portal string, found int, err error)
}

func NewScraper(portals []Portal, perSite int, limiter *HostLimiter) *Scraper {
	return &Scraper{
		Portals:      portals,
		PerSiteLimit: perSite,
		Limiter:      limiter,
		Client:       &http.Client{Timeout: 20 * time.Second},
	}
}

// Run crawls all portals concurrently and returns everything found. A portal
// failing never fails the run; partial results are the normal case.
func (s *Scraper) Run(ctx context.Context) []domain.JobRecord {
	var (
		mu  sync.Mutex
		all []domain.JobRecord
	)

	var g errgroup.Group
	g.SetLimit(4)

	for _, p := range s.Portals {
		p := p
		g.Go(func() error {
			jobs, err := s.scrapePortal(ctx, p)
			if err != nil {
				log.Printf("[fetch] %s: %v", p.Name, err)
			}
			if s.Progress != nil {
				s.Progress(p.Name, len(jobs), err)
			}
			mu.Lock()
			all = append(all, jobs...)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return domain.DedupeByID(all)
}

func (s *Scraper) scrapePortal(ctx context.Context, p Portal) ([]domain.JobRecord, error) {
	doc, err := s.getDocument(ctx, p.URL)
	if err != nil {
		return nil, err
	}

	base, _ := url.Parse(p.URL)
	now := time.Now().UTC().Format(time.RFC3339)

	for _, selector := range jobSelectors {
		var jobs []domain.JobRecord
		seen := map[string]bool{}

		doc.Find(selector).EachWithBreak(func(_ int, a *goquery.Selection) bool {
			title := cleanText(a.Text())
			href, _ := a.Attr("href")
			href = strings.TrimSpace(href)
			if title == "" || href == "" || !titleLooksLikeJob(title) {
				return true
			}

			abs := resolveURL(base, href)
			if abs == "" || seen[abs] {
				return true
			}
			seen[abs] = true

			blob := title + " " + p.Name
			jobs = append(jobs, domain.JobRecord{
				ID:             jobID(abs),
				Title:          title,
				Source:         p.Name,
				Category:       DetectCategory(blob),
				Description:    Summarize(title),
				URL:            abs,
				ImportantDates: ExtractDates(title),
				Skills:         ExtractSkills(blob),
				ScrapedAt:      now,
			})
			return len(jobs) < s.PerSiteLimit
		})

		// First selector that produced postings wins.
		if len(jobs) > 0 {
			s.hydrate(ctx, jobs)
			return jobs, nil
		}
	}
	return nil, nil
}

// hydrate fetches each posting's own page to fill description, dates,
// skills, and a possible PDF link. Errors leave the minimal entry intact.
func (s *Scraper) hydrate(ctx context.Context, jobs []domain.JobRecord) {
	for i := range jobs {
		j := &jobs[i]

		if pdfSuffixRe.MatchString(j.URL) {
			j.PDFLink = j.URL
			continue
		}

		doc, err := s.getDocument(ctx, j.URL)
		if err != nil {
			continue
		}

		content := doc.Find("article").First()
		if content.Length() == 0 {
			content = doc.Find("main").First()
		}
		if content.Length() == 0 {
			content = doc.Find("body").First()
		}
		text := cleanText(content.Text())
		if text == "" {
			continue
		}

		j.Description = Summarize(text)
		if d := ExtractDates(text); d != nil {
			j.ImportantDates = d
		}
		if _, pdf := ExtractLinks(text); pdf != "" {
			j.PDFLink = pdf
		}
		j.Category = DetectCategory(text)
		if skills := ExtractSkills(text); len(skills) > 0 {
			j.Skills = skills
		}
	}
}

func (s *Scraper) getDocument(ctx context.Context, rawURL string) (*goquery.Document, error) {
	if s.Limiter != nil {
		if err := s.Limiter.WaitURL(ctx, rawURL); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	res, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", rawURL, err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("get %s: status %d", rawURL, res.StatusCode)
	}
	return goquery.NewDocumentFromReader(res.Body)
}

// jobID is the stable identity of a posting: the hex md5 of its URL.
func jobID(absURL string) string {
	sum := md5.Sum([]byte(absURL))
	return hex.EncodeToString(sum[:])
}

func titleLooksLikeJob(title string) bool {
	low := strings.ToLower(title)
	for _, kw := range titleKeywords {
		if strings.Contains(low, kw) {
			return true
		}
	}
	return false
}

func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if base == nil {
		return ref.String()
	}
	abs := base.ResolveReference(ref)
	if abs.Scheme != "http" && abs.Scheme != "https" {
		return ""
	}
	return abs.String()
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
