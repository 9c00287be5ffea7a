package repository

import (
	"strings"
	"testing"
)

// Storefront lists promise ascending display_order with id as a stable
// tie-break. Every list query shares displayOrderClause, so pinning the
// clause pins the ordering for categories, banners, and promotions alike.
func TestDisplayOrderClauseBreaksTiesByID(t *testing.T) {
	clause := strings.TrimSpace(displayOrderClause)

	if !strings.HasPrefix(clause, "ORDER BY") {
		t.Fatalf("not an ORDER BY clause: %q", clause)
	}

	orderIdx := strings.Index(clause, "display_order ASC")
	if orderIdx < 0 {
		t.Fatalf("display_order must sort ascending: %q", clause)
	}
	idIdx := strings.Index(clause, "id ASC")
	if idIdx < 0 {
		t.Fatalf("id must break ties ascending: %q", clause)
	}
	if idIdx < orderIdx {
		t.Fatalf("id may only break display_order ties, not lead the sort: %q", clause)
	}
}
