package httpapi

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sarkari-engine/internal/domain"
	"sarkari-engine/internal/events"
	"sarkari-engine/internal/render"
	"sarkari-engine/internal/session"
	"sarkari-engine/internal/store"
)

func apiJobs() []domain.JobRecord {
	return []domain.JobRecord{
		{ID: "a1", Title: "SBI Clerk 2025", Category: "Banking",
			ImportantDates: &domain.ImportantDates{LastDate: "28/09/2025"}},
		{ID: "b2", Title: "SSC CGL 2025", Category: "SSC"},
		{ID: "c3", Title: "RRB NTPC 2025", Category: "Railway"},
	}
}

type apiFixture struct {
	srv      *httptest.Server
	hub      *events.Hub
	renderer *render.HTMLRenderer
	ctl      *session.Controller
	db       *sql.DB
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	db, err := store.Open(filepath.Join(t.TempDir(), "engine.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, store.Migrate(db))

	hub := events.NewHub()
	renderer := render.NewHTMLRenderer(hub)
	jobs := apiJobs()
	ctl := session.NewController(jobs, 2, 5*time.Millisecond, time.Millisecond, renderer)
	ctl.Init()

	h := Handlers{
		Page:       PageHandler{DB: db, Jobs: ctl.Jobs},
		Jobs:       JobsHandler{Jobs: ctl.Jobs, PageSize: 2},
		Categories: CategoriesHandler{Jobs: ctl.Jobs},
		Session:    SessionHandler{Ctl: ctl},
		Prefs:      PrefsHandler{DB: db, Hub: hub},
		Fragments:  FragmentsHandler{Renderer: renderer},
		Events:     EventsHandler{Hub: hub},
	}
	srv := httptest.NewServer(Chain(Routes(h), RequestID, Recover))
	t.Cleanup(srv.Close)

	return &apiFixture{srv: srv, hub: hub, renderer: renderer, ctl: ctl, db: db}
}

func getJSON(t *testing.T, url string, v any) *http.Response {
	t.Helper()
	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()
	require.NoError(t, json.NewDecoder(res.Body).Decode(v))
	return res
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	res, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	res.Body.Close()
	return res
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)
	var out map[string]any
	res := getJSON(t, f.srv.URL+"/health", &out)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, true, out["ok"])
}

func TestJobsList(t *testing.T) {
	f := newAPIFixture(t)

	var out struct {
		Jobs    []domain.JobRecord `json:"jobs"`
		Total   int                `json:"total"`
		Page    int                `json:"page"`
		HasMore bool               `json:"hasMore"`
	}
	getJSON(t, f.srv.URL+"/jobs", &out)
	assert.Equal(t, 3, out.Total)
	assert.Len(t, out.Jobs, 2)
	assert.True(t, out.HasMore)

	getJSON(t, f.srv.URL+"/jobs?page=2", &out)
	assert.Len(t, out.Jobs, 3) // pages are prefixes
	assert.False(t, out.HasMore)

	getJSON(t, f.srv.URL+"/jobs?category=SSC", &out)
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, "b2", out.Jobs[0].ID)

	getJSON(t, f.srv.URL+"/jobs?q=rrb", &out)
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, "c3", out.Jobs[0].ID)

	getJSON(t, f.srv.URL+"/jobs?sort=latest", &out)
	assert.Equal(t, "c3", out.Jobs[0].ID)
}

func TestJobsGetByID(t *testing.T) {
	f := newAPIFixture(t)

	var j domain.JobRecord
	res := getJSON(t, f.srv.URL+"/jobs/a1", &j)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "SBI Clerk 2025", j.Title)

	var apiErr APIError
	res = getJSON(t, f.srv.URL+"/jobs/nope", &apiErr)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "not_found", apiErr.Error.Code)
	assert.NotEmpty(t, apiErr.Error.RequestID)
}

func TestCategoriesList(t *testing.T) {
	f := newAPIFixture(t)

	var out []domain.CategoryCount
	getJSON(t, f.srv.URL+"/categories", &out)
	require.Len(t, out, len(domain.KnownCategories))
	assert.Equal(t, "Banking", out[0].Category)
	assert.Equal(t, 1, out[0].Count)
}

func TestThemePrefs(t *testing.T) {
	f := newAPIFixture(t)

	var out map[string]string
	getJSON(t, f.srv.URL+"/prefs/theme", &out)
	assert.Equal(t, "light", out["theme"])

	req, err := http.NewRequest(http.MethodPut, f.srv.URL+"/prefs/theme", strings.NewReader(`{"theme":"dark"}`))
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	getJSON(t, f.srv.URL+"/prefs/theme", &out)
	assert.Equal(t, "dark", out["theme"])

	req, err = http.NewRequest(http.MethodPut, f.srv.URL+"/prefs/theme", strings.NewReader(`{"theme":"sepia"}`))
	require.NoError(t, err)
	res, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestSessionSearchFlow(t *testing.T) {
	f := newAPIFixture(t)

	res := postJSON(t, f.srv.URL+"/session/search", `{"term":"ssc"}`)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	require.Eventually(t, func() bool {
		return f.ctl.Snapshot().SearchTerm == "ssc"
	}, time.Second, 2*time.Millisecond)

	var st session.State
	getJSON(t, f.srv.URL+"/session", &st)
	assert.Equal(t, "ssc", st.SearchTerm)
	assert.Equal(t, 1, st.CurrentPage)
}

func TestSessionCard(t *testing.T) {
	f := newAPIFixture(t)

	res := postJSON(t, f.srv.URL+"/session/card", `{"id":"a1"}`)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, f.renderer.DetailHTML(), "SBI Clerk 2025")

	res = postJSON(t, f.srv.URL+"/session/card", `{"id":"nope"}`)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res = postJSON(t, f.srv.URL+"/session/detail/dismiss", `{}`)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Empty(t, f.renderer.DetailHTML())
}

func TestSessionRejectsBadJSON(t *testing.T) {
	f := newAPIFixture(t)

	res := postJSON(t, f.srv.URL+"/session/search", `{"term": unquoted}`)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res = postJSON(t, f.srv.URL+"/session/search", `{"unknown_field": 1}`)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestFragmentsListAndDelta(t *testing.T) {
	f := newAPIFixture(t)

	res, err := http.Get(f.srv.URL + "/fragments/list")
	require.NoError(t, err)
	body := readAll(t, res)
	assert.Equal(t, "true", res.Header.Get("X-Has-More"))
	assert.Contains(t, body, `data-id="a1"`)
	assert.Contains(t, body, `data-id="b2"`)
	assert.NotContains(t, body, `data-id="c3"`)

	postJSON(t, f.srv.URL+"/session/more", `{}`)
	require.Eventually(t, func() bool {
		d, _ := f.renderer.Delta()
		return d != ""
	}, time.Second, 2*time.Millisecond)

	res, err = http.Get(f.srv.URL + "/fragments/delta")
	require.NoError(t, err)
	body = readAll(t, res)
	assert.Equal(t, "false", res.Header.Get("X-Has-More"))
	assert.Contains(t, body, `data-id="c3"`)
	assert.NotContains(t, body, `data-id="a1"`)
}

func TestPageShell(t *testing.T) {
	f := newAPIFixture(t)

	res, err := http.Get(f.srv.URL + "/")
	require.NoError(t, err)
	body := readAll(t, res)
	assert.Contains(t, res.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, `data-theme="light"`)
	assert.Contains(t, body, "Banking")

	res, err = http.Get(f.srv.URL + "/no-such-page")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestMethodNotAllowed(t *testing.T) {
	f := newAPIFixture(t)

	res := postJSON(t, f.srv.URL+"/jobs", `{}`)
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}

func TestEventsStream(t *testing.T) {
	f := newAPIFixture(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.srv.URL+"/events", nil)
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, "text/event-stream", res.Header.Get("Content-Type"))

	sc := bufio.NewScanner(res.Body)
	require.True(t, sc.Scan())
	assert.Equal(t, `event: ping`, sc.Text())

	// Init already published a view_rendered event; it is replayed to us.
	var sawRendered bool
	for sc.Scan() {
		line := sc.Text()
		if strings.Contains(line, events.TypeViewRendered) {
			sawRendered = true
			break
		}
	}
	assert.True(t, sawRendered)
}

func readAll(t *testing.T, res *http.Response) string {
	t.Helper()
	defer res.Body.Close()
	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return string(b)
}
