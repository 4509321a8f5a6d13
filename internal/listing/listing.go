// Package listing implements the page/limit/filter coordination shared by
// the expense, account-transaction and milk list views and their handlers.
package listing

// Limits is the fixed set of allowed page sizes.
var Limits = []int{10, 20, 50, 70, 100}

const DefaultLimit = 10

// ValidLimit reports whether limit is one of the allowed page sizes.
func ValidLimit(limit int) bool {
	for _, l := range Limits {
		if l == limit {
			return true
		}
	}

	return false
}

// Pager tracks the current page, page size and total row count of a list.
// The zero value is not usable; construct with NewPager.
type Pager struct {
	Page  int
	Limit int
	Total int
}

func NewPager() Pager {
	return Pager{Page: 1, Limit: DefaultLimit}
}

// TotalPages is ceil(Total/Limit), never below 1.
func (p Pager) TotalPages() int {
	if p.Limit <= 0 {
		return 1
	}

	pages := (p.Total + p.Limit - 1) / p.Limit
	if pages < 1 {
		return 1
	}

	return pages
}

// SetTotal records the total row count reported by the backend and clamps
// the current page back into range if the list shrank.
func (p *Pager) SetTotal(total int) {
	p.Total = total
	if p.Page > p.TotalPages() {
		p.Page = p.TotalPages()
	}
}

// SetLimit switches the page size and resets to the first page.
// Unknown limits are ignored.
func (p *Pager) SetLimit(limit int) {
	if !ValidLimit(limit) {
		return
	}

	p.Limit = limit
	p.Page = 1
}

// FilterChanged resets to the first page. Call whenever any filter value,
// including the search text, changes.
func (p *Pager) FilterChanged() {
	p.Page = 1
}

// Next advances one page. Returns false at the last page.
func (p *Pager) Next() bool {
	if !p.HasNext() {
		return false
	}

	p.Page++

	return true
}

// Prev goes back one page. Returns false at the first page.
func (p *Pager) Prev() bool {
	if !p.HasPrev() {
		return false
	}

	p.Page--

	return true
}

func (p Pager) HasNext() bool { return p.Page < p.TotalPages() }
func (p Pager) HasPrev() bool { return p.Page > 1 }

// Offset is the row offset for the current page.
func (p Pager) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Normalize coerces raw page/limit values (for example from query
// parameters) into a valid pager state: page floors at 1, unknown limits
// fall back to the default.
func Normalize(page, limit int) Pager {
	if page < 1 {
		page = 1
	}

	if !ValidLimit(limit) {
		limit = DefaultLimit
	}

	return Pager{Page: page, Limit: limit}
}

// SearchReady reports whether a search string should trigger a fetch.
// Empty strings fetch (clearing the filter); single characters never do.
func SearchReady(s string) bool {
	return len(s) == 0 || len(s) >= 2
}
