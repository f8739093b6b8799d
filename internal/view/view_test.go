package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sarkari-engine/internal/domain"
)

func sampleSix() []domain.JobRecord {
	return []domain.JobRecord{
		{ID: "b1", Title: "SBI PO Recruitment", Source: "sarkariresult.com", Category: "Banking",
			Description: "Probationary officer posts", Skills: []string{"Reasoning"},
			ImportantDates: &domain.ImportantDates{LastDate: "20-02-2024"}},
		{ID: "s1", Title: "SSC CGL Notification", Source: "freejobalert.com", Category: "SSC",
			Description: "Combined graduate level"},
		{ID: "r1", Title: "RRB NTPC Posts", Source: "sarkariexam.com", Category: "Railway",
			Description: "Railway recruitment board vacancies", Skills: []string{"Current Affairs"},
			ImportantDates: &domain.ImportantDates{LastDate: "15-02-2024"}},
		{ID: "u1", Title: "Civil Services Examination", Source: "upsc.gov.in", Category: "UPSC",
			Description: "IAS and allied services"},
		{ID: "p1", Title: "UP Police Constable", Source: "rojgarresult.com", Category: "Police",
			Description: "Direct recruitment of constables"},
		{ID: "d1", Title: "Agniveer Rally", Source: "joinindianarmy.nic.in", Category: "Defence",
			Description: "Army recruitment rally"},
	}
}

func ids(jobs []domain.JobRecord) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}

func TestDeriveNoFiltersPreservesOrder(t *testing.T) {
	all := sampleSix()
	v := Derive(all, "", "", SortNone)
	assert.Equal(t, ids(all), ids(v))
}

func TestDeriveIsPure(t *testing.T) {
	all := sampleSix()
	a := Derive(all, "rail", "", SortDeadline)
	b := Derive(all, "rail", "", SortDeadline)
	assert.Equal(t, ids(a), ids(b))

	// Derived views never alias the source.
	v := Derive(all, "", "", SortLatest)
	require.NotEmpty(t, v)
	v[0].Title = "mutated"
	assert.NotEqual(t, "mutated", all[0].Title)
	assert.Equal(t, ids(sampleSix()), ids(all))
}

func TestDeriveSearchMatchesAllFields(t *testing.T) {
	all := sampleSix()

	cases := []struct {
		name string
		term string
		want []string
	}{
		{"title", "agniveer", []string{"d1"}},
		{"description", "graduate level", []string{"s1"}},
		{"source", "rojgarresult", []string{"p1"}},
		{"category substring", "railway", []string{"r1"}},
		{"skill tag", "current affairs", []string{"r1"}},
		{"case folded", "SBI po", []string{"b1"}},
		{"whitespace trimmed", "  agniveer  ", []string{"d1"}},
		{"no match", "zzzz", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Derive(all, tc.term, "", SortNone)
			assert.Equal(t, tc.want, idsOrNil(got))
		})
	}
}

func idsOrNil(jobs []domain.JobRecord) []string {
	if len(jobs) == 0 {
		return nil
	}
	return ids(jobs)
}

func TestDeriveCategoryFilterExactMatch(t *testing.T) {
	all := sampleSix()
	v := Derive(all, "", "SSC", SortNone)
	require.Len(t, v, 1)
	assert.Equal(t, "SSC", v[0].Category)

	// Unknown categories simply match nothing.
	assert.Empty(t, Derive(all, "", "Cooking", SortNone))
}

func TestDeriveFiltersAreConjunctive(t *testing.T) {
	all := sampleSix()
	// "recruitment" appears in Banking, Railway and Police records; the
	// category filter must intersect, not union.
	v := Derive(all, "recruitment", "Police", SortNone)
	require.Len(t, v, 1)
	assert.Equal(t, "p1", v[0].ID)

	for _, j := range v {
		assert.Equal(t, "Police", j.Category)
	}
}

func TestDeriveSortLatestReverseID(t *testing.T) {
	all := sampleSix()
	v := Derive(all, "", "", SortLatest)
	got := ids(v)
	assert.Equal(t, []string{"u1", "s1", "r1", "p1", "d1", "b1"}, got)
}

func TestDeriveSortLatestStableTies(t *testing.T) {
	all := []domain.JobRecord{
		{ID: "x", Title: "first"},
		{ID: "x", Title: "second"},
		{ID: "a", Title: "third"},
	}
	v := Derive(all, "", "", SortLatest)
	assert.Equal(t, "first", v[0].Title)
	assert.Equal(t, "second", v[1].Title)
	assert.Equal(t, "third", v[2].Title)
}

func TestDeriveSortDeadline(t *testing.T) {
	all := []domain.JobRecord{
		{ID: "late", ImportantDates: &domain.ImportantDates{LastDate: "20-02-2024"}},
		{ID: "none"},
		{ID: "early", ImportantDates: &domain.ImportantDates{LastDate: "15-02-2024"}},
	}
	v := Derive(all, "", "", SortDeadline)
	assert.Equal(t, []string{"early", "late", "none"}, ids(v))
}

func TestDeriveSortDeadlineMalformedSortsLast(t *testing.T) {
	all := []domain.JobRecord{
		{ID: "bad", ImportantDates: &domain.ImportantDates{LastDate: "soon-ish"}},
		{ID: "good", ImportantDates: &domain.ImportantDates{LastDate: "01-01-2025"}},
	}
	v := Derive(all, "", "", SortDeadline)
	assert.Equal(t, []string{"good", "bad"}, ids(v))
}

func TestDeriveSortCategory(t *testing.T) {
	all := sampleSix()
	v := Derive(all, "", "", SortCategory)
	assert.Equal(t, []string{"b1", "d1", "p1", "r1", "s1", "u1"}, ids(v))
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortLatest, ParseSortKey("latest"))
	assert.Equal(t, SortDeadline, ParseSortKey("deadline"))
	assert.Equal(t, SortCategory, ParseSortKey("category"))
	assert.Equal(t, SortNone, ParseSortKey("none"))
	assert.Equal(t, SortNone, ParseSortKey(""))
	assert.Equal(t, SortNone, ParseSortKey("garbage"))
}
