package listing_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/homeledger/internal/listing"
)

func TestPager_TotalPages(t *testing.T) {
	p := listing.NewPager()
	assert.Equal(t, 1, p.TotalPages())

	p.SetTotal(95)
	assert.Equal(t, 10, p.TotalPages())

	p.SetTotal(100)
	assert.Equal(t, 10, p.TotalPages())

	p.SetTotal(101)
	assert.Equal(t, 11, p.TotalPages())
}

func TestPager_Navigation(t *testing.T) {
	p := listing.NewPager()
	p.SetTotal(95) // 10 pages at limit 10

	assert.False(t, p.Prev(), "prev must refuse at page 1")

	for i := 2; i <= 10; i++ {
		require.True(t, p.Next())
		assert.Equal(t, i, p.Page)
	}

	assert.False(t, p.HasNext())
	assert.False(t, p.Next(), "next must refuse at the last page")
	assert.Equal(t, 10, p.Page)
}

func TestPager_SetLimitResetsPage(t *testing.T) {
	p := listing.NewPager()
	p.SetTotal(95)
	p.Next()
	p.Next()
	require.Equal(t, 3, p.Page)

	p.SetLimit(50)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 50, p.Limit)

	// Unknown limit is ignored entirely.
	p.Next()
	p.SetLimit(33)
	assert.Equal(t, 50, p.Limit)
	assert.Equal(t, 2, p.Page)
}

func TestPager_FilterChangedResetsPage(t *testing.T) {
	p := listing.NewPager()
	p.SetTotal(95)
	p.Next()
	p.Next()

	p.FilterChanged()
	assert.Equal(t, 1, p.Page)
}

func TestPager_SetTotalClampsPage(t *testing.T) {
	p := listing.NewPager()
	p.SetTotal(95)
	for p.Next() {
	}
	require.Equal(t, 10, p.Page)

	// List shrank underneath us.
	p.SetTotal(12)
	assert.Equal(t, 2, p.Page)
}

func TestPager_Offset(t *testing.T) {
	p := listing.Normalize(3, 20)
	assert.Equal(t, 40, p.Offset())
}

func TestNormalize(t *testing.T) {
	p := listing.Normalize(0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, listing.DefaultLimit, p.Limit)

	p = listing.Normalize(-5, 999)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, listing.DefaultLimit, p.Limit)

	p = listing.Normalize(4, 70)
	assert.Equal(t, 4, p.Page)
	assert.Equal(t, 70, p.Limit)
}

func TestSearchReady(t *testing.T) {
	assert.True(t, listing.SearchReady(""))
	assert.False(t, listing.SearchReady("a"))
	assert.True(t, listing.SearchReady("ab"))
	assert.True(t, listing.SearchReady("groceries"))
}

func TestDebouncer(t *testing.T) {
	var mu sync.Mutex

	var got []string

	d := listing.NewDebouncer(20*time.Millisecond, func(s string) {
		mu.Lock()
		got = append(got, s)
		mu.Unlock()
	})
	defer d.Stop()

	// Rapid typing: only the final idle value fires.
	d.Input("g")
	d.Input("gr")
	d.Input("gro")

	time.Sleep(60 * time.Millisecond)

	mu.Lock()
	assert.Equal(t, []string{"gro"}, got)
	mu.Unlock()

	// A single character never fires, even after the window.
	d.Input("g")
	time.Sleep(60 * time.Millisecond)

	mu.Lock()
	assert.Equal(t, []string{"gro"}, got)
	mu.Unlock()

	// Clearing the search fires with the empty string.
	d.Input("")
	time.Sleep(60 * time.Millisecond)

	mu.Lock()
	assert.Equal(t, []string{"gro", ""}, got)
	mu.Unlock()
}
