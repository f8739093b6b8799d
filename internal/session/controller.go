// Package session owns the mutable per-session state and translates user
// input events into view recomputation and render calls. All other components
// see immutable snapshots.
package session

import (
	"sync"
	"time"

	"sarkari-engine/internal/domain"
	"sarkari-engine/internal/view"
)

// State is the session-state tuple. CurrentPage resets to 1 on any change to
// the search term, category filter, or sort key; only load-more advances it.
type State struct {
	SearchTerm     string       `json:"search_term"`
	CategoryFilter string       `json:"category_filter"`
	SortKey        view.SortKey `json:"sort_key"`
	CurrentPage    int          `json:"current_page"`
	LoadingMore    bool         `json:"loading_more"`
}

// Renderer is what the controller projects state changes onto. RenderFull
// replaces the whole card list (an empty visible slice means empty state);
// RenderMore appends only the newly revealed slice.
type Renderer interface {
	RenderFull(visible []domain.JobRecord, hasMore bool)
	RenderMore(added []domain.JobRecord, hasMore bool)
	PresentDetail(j domain.JobRecord)
	DismissDetail()
	ScrollToResults()
}

type Controller struct {
	mu       sync.Mutex
	jobs     []domain.JobRecord
	state    State
	pageSize int
	renderer Renderer

	search    *Debouncer
	moreDelay time.Duration
}

func NewController(jobs []domain.JobRecord, pageSize int, debounce, moreDelay time.Duration, r Renderer) *Controller {
	if pageSize <= 0 {
		pageSize = view.DefaultPageSize
	}
	return &Controller{
		jobs:      jobs,
		state:     State{SortKey: view.SortNone, CurrentPage: 1},
		pageSize:  pageSize,
		renderer:  r,
		search:    NewDebouncer(debounce),
		moreDelay: moreDelay,
	}
}

// Init draws page 1 of the default view.
func (c *Controller) Init() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renderFullLocked()
}

// ReplaceJobs swaps in a freshly loaded collection, resetting the session to
// its defaults. The old collection is never mutated.
func (c *Controller) ReplaceJobs(jobs []domain.JobRecord) {
	c.search.Stop()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.jobs = jobs
	c.state = State{SortKey: view.SortNone, CurrentPage: 1}
	c.renderFullLocked()
}

// OnSearchInput feeds one keystroke's worth of search text. Evaluation is
// debounced single-flight: a newer keystroke cancels the pending one.
func (c *Controller) OnSearchInput(term string) {
	c.search.Trigger(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.state.SearchTerm = term
		c.state.CurrentPage = 1
		c.renderFullLocked()
	})
}

func (c *Controller) OnCategoryChange(category string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.CategoryFilter = category
	c.state.CurrentPage = 1
	c.renderFullLocked()
}

func (c *Controller) OnSortChange(key view.SortKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SortKey = key
	c.state.CurrentPage = 1
	c.renderFullLocked()
}

// OnLoadMore advances pagination after a short visible delay. Re-entrant
// triggers while a delay is outstanding are dropped, so at most one advance
// is ever in flight.
func (c *Controller) OnLoadMore() {
	c.mu.Lock()
	if c.state.LoadingMore {
		c.mu.Unlock()
		return
	}
	c.state.LoadingMore = true
	c.mu.Unlock()

	time.AfterFunc(c.moreDelay, c.completeLoadMore)
}

// completeLoadMore applies the page advance against whatever view is current
// at completion. If search/filter/sort changed mid-flight, the advance lands
// on the new view (page already reset to 1 becomes page 2 of it).
func (c *Controller) completeLoadMore() {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := view.Derive(c.jobs, c.state.SearchTerm, c.state.CategoryFilter, c.state.SortKey)
	prev := c.state.CurrentPage * c.pageSize
	if prev > len(v) {
		prev = len(v)
	}

	c.state.CurrentPage++
	p := view.Paginate(v, c.pageSize, c.state.CurrentPage)
	c.renderer.RenderMore(p.Visible[prev:], p.HasMore)
	c.state.LoadingMore = false
}

// OnCardActivate opens the detail view for the record with the given id.
// Unknown ids are ignored; the collection may have been replaced under a
// stale UI.
func (c *Controller) OnCardActivate(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, j := range c.jobs {
		if j.ID == id {
			c.renderer.PresentDetail(j)
			return true
		}
	}
	return false
}

// OnDetailDismiss closes the detail view (close button, backdrop click, or
// Escape all funnel here).
func (c *Controller) OnDetailDismiss() {
	c.renderer.DismissDetail()
}

// OnCategoryCardActivate is a category change plus a scroll-to-results cue.
func (c *Controller) OnCategoryCardActivate(category string) {
	c.OnCategoryChange(category)
	c.renderer.ScrollToResults()
}

// Snapshot returns a copy of the session state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Jobs returns the loaded collection. Callers must treat it as read-only.
func (c *Controller) Jobs() []domain.JobRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.jobs
}

func (c *Controller) renderFullLocked() {
	v := view.Derive(c.jobs, c.state.SearchTerm, c.state.CategoryFilter, c.state.SortKey)
	p := view.Paginate(v, c.pageSize, c.state.CurrentPage)
	c.renderer.RenderFull(p.Visible, p.HasMore)
}
