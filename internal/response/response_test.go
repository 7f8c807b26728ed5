package response

import "testing"

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		page        int
		limit       int
		wantPages   int
		wantHasNext bool
		wantHasPrev bool
	}{
		{"middle page", 12, 2, 5, 3, true, true},
		{"first page", 12, 1, 5, 3, true, false},
		{"last page", 12, 3, 5, 3, false, true},
		{"exact fit", 10, 1, 10, 1, false, false},
		{"empty set", 0, 1, 10, 0, false, false},
		{"single row", 1, 1, 10, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.total, tt.page, tt.limit)
			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.HasNextPage != tt.wantHasNext {
				t.Errorf("HasNextPage = %t, want %t", p.HasNextPage, tt.wantHasNext)
			}
			if p.HasPrevPage != tt.wantHasPrev {
				t.Errorf("HasPrevPage = %t, want %t", p.HasPrevPage, tt.wantHasPrev)
			}
			if p.Total != tt.total || p.Page != tt.page || p.Limit != tt.limit {
				t.Errorf("echo fields = (%d, %d, %d), want (%d, %d, %d)",
					p.Total, p.Page, p.Limit, tt.total, tt.page, tt.limit)
			}
		})
	}
}
