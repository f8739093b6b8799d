package view

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sarkari-engine/internal/domain"
)

func records(n int) []domain.JobRecord {
	out := make([]domain.JobRecord, n)
	for i := range out {
		out[i] = domain.JobRecord{ID: fmt.Sprintf("job-%02d", i)}
	}
	return out
}

func TestPaginateSinglePageCollection(t *testing.T) {
	// Six records at the default page size all fit on page 1.
	p := Paginate(records(6), DefaultPageSize, 1)
	assert.Len(t, p.Visible, 6)
	assert.False(t, p.HasMore)
}

func TestPaginateAdvance(t *testing.T) {
	v := records(6)

	p := Paginate(v, 2, 1)
	assert.Len(t, p.Visible, 2)
	assert.True(t, p.HasMore)

	p = Paginate(v, 2, 2)
	assert.Len(t, p.Visible, 4)
	assert.True(t, p.HasMore)

	p = Paginate(v, 2, 3)
	assert.Len(t, p.Visible, 6)
	assert.False(t, p.HasMore)
}

func TestPaginateVisibleIsPrefix(t *testing.T) {
	v := records(25)
	for page := 1; page*7 < len(v); page++ {
		cur := Paginate(v, 7, page).Visible
		next := Paginate(v, 7, page+1).Visible
		require.LessOrEqual(t, len(cur), len(next))
		assert.Equal(t, cur, next[:len(cur)], "page %d must be a prefix of page %d", page, page+1)
	}
}

func TestPaginateHasMoreMatchesLengths(t *testing.T) {
	v := records(10)
	for page := 1; page <= 5; page++ {
		p := Paginate(v, 3, page)
		assert.Equal(t, len(p.Visible) < len(v), p.HasMore, "page %d", page)
	}
}

func TestPaginateBeyondEnd(t *testing.T) {
	p := Paginate(records(3), 2, 99)
	assert.Len(t, p.Visible, 3)
	assert.False(t, p.HasMore)
}

func TestPaginateEmptyView(t *testing.T) {
	p := Paginate(nil, 12, 1)
	assert.Empty(t, p.Visible)
	assert.False(t, p.HasMore)
}

func TestPaginateDefaultsBadInputs(t *testing.T) {
	p := Paginate(records(13), 0, 0)
	assert.Len(t, p.Visible, 12)
	assert.True(t, p.HasMore)
}
