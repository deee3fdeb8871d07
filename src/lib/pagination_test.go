package lib

import "testing"

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name       string
		total      int64
		page       int
		limit      int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"empty result set", 0, 1, 20, 0, false, false},
		{"single page exact", 20, 1, 20, 1, false, false},
		{"single page partial", 7, 1, 20, 1, false, false},
		{"first of many", 45, 1, 20, 3, true, false},
		{"middle page", 45, 2, 20, 3, true, true},
		{"last page", 45, 3, 20, 3, false, true},
		{"one item one page", 1, 1, 1, 1, false, false},
		{"limit one many pages", 3, 2, 1, 3, true, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.total, tc.page, tc.limit)

			if p.TotalPages != tc.totalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tc.totalPages)
			}
			if p.HasNextPage != tc.hasNext {
				t.Errorf("HasNextPage = %v, want %v", p.HasNextPage, tc.hasNext)
			}
			if p.HasPrevPage != tc.hasPrev {
				t.Errorf("HasPrevPage = %v, want %v", p.HasPrevPage, tc.hasPrev)
			}

			// currentPage*limit >= total iff there is no next page.
			covered := int64(p.CurrentPage)*int64(p.Limit) >= p.Total
			if covered == p.HasNextPage {
				t.Errorf("pagination invariant violated: covered=%v hasNext=%v", covered, p.HasNextPage)
			}
		})
	}
}

func TestNewPaginationNormalizesInput(t *testing.T) {
	p := NewPagination(10, 0, 0)
	if p.CurrentPage != 1 {
		t.Errorf("CurrentPage = %d, want 1", p.CurrentPage)
	}
	if p.Limit != 1 {
		t.Errorf("Limit = %d, want 1", p.Limit)
	}
}

func TestPaginationOffset(t *testing.T) {
	p := NewPagination(100, 3, 20)
	if got := p.Offset(); got != 40 {
		t.Errorf("Offset() = %d, want 40", got)
	}
}

func TestPageSlice(t *testing.T) {
	cases := []struct {
		name       string
		n, page    int
		limit      int
		start, end int
	}{
		{"first page", 10, 1, 3, 0, 3},
		{"middle page", 10, 2, 3, 3, 6},
		{"partial last page", 10, 4, 3, 9, 10},
		{"past the end", 10, 5, 3, 0, 0},
		{"empty input", 0, 1, 3, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := PageSlice(tc.n, tc.page, tc.limit)
			if start != tc.start || end != tc.end {
				t.Errorf("PageSlice(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tc.n, tc.page, tc.limit, start, end, tc.start, tc.end)
			}
		})
	}
}
