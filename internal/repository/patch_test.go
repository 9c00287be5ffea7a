package repository

import (
	"reflect"
	"testing"

	"github.com/tehnoshop/storefront-api/internal/models"
)

func boolPtr(b bool) *bool        { return &b }
func strPtr(s string) *string     { return &s }
func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

func TestCategoryPatchOnlySuppliedFields(t *testing.T) {
	patch := models.CategoryPatch{IsActive: boolPtr(false)}

	sets, args := categoryPatchAssignments(patch)

	if !reflect.DeepEqual(sets, []string{"is_active = $1"}) {
		t.Fatalf("expected only is_active in SET clause, got %v", sets)
	}
	if !reflect.DeepEqual(args, []interface{}{false}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestCategoryPatchIsDeterministic(t *testing.T) {
	patch := models.CategoryPatch{
		Slug:         strPtr("audio"),
		NameEn:       strPtr("Audio"),
		DisplayOrder: intPtr(2),
	}

	sets1, args1 := categoryPatchAssignments(patch)
	sets2, args2 := categoryPatchAssignments(patch)

	// Same payload must build the same statement, so retries and repeated
	// updates settle on the same final state.
	if !reflect.DeepEqual(sets1, sets2) || !reflect.DeepEqual(args1, args2) {
		t.Fatalf("assignments not deterministic: %v / %v vs %v / %v", sets1, args1, sets2, args2)
	}

	want := []string{"slug = $1", "name_en = $2", "display_order = $3"}
	if !reflect.DeepEqual(sets1, want) {
		t.Fatalf("expected %v, got %v", want, sets1)
	}
	if !reflect.DeepEqual(args1, []interface{}{"audio", "Audio", 2}) {
		t.Fatalf("unexpected args: %v", args1)
	}
}

func TestEmptyCategoryPatchHasNoAssignments(t *testing.T) {
	sets, args := categoryPatchAssignments(models.CategoryPatch{})
	if len(sets) != 0 || len(args) != 0 {
		t.Fatalf("empty patch must not write anything, got %v / %v", sets, args)
	}
}

func TestProductPatchPlaceholdersAlign(t *testing.T) {
	status := models.ProductStatusActive
	patch := models.ProductPatch{
		TitleSr: strPtr("Punjač"),
		Price:   floatPtr(2990),
		Stock:   intPtr(10),
		Status:  &status,
	}

	sets, args := productPatchAssignments(patch)

	want := []string{"title_sr = $1", "price = $2", "stock = $3", "status = $4"}
	if !reflect.DeepEqual(sets, want) {
		t.Fatalf("expected %v, got %v", want, sets)
	}
	if len(args) != 4 {
		t.Fatalf("expected 4 args, got %d", len(args))
	}
	if args[3] != "active" {
		t.Fatalf("status must bind as its string value, got %v", args[3])
	}
}

func TestBannerPatchSkipsNilWindowBounds(t *testing.T) {
	patch := models.BannerPatch{IsActive: boolPtr(true)}

	sets, _ := bannerPatchAssignments(patch)

	for _, s := range sets {
		if s == "starts_at = $1" || s == "ends_at = $1" {
			t.Fatalf("nil window bounds must stay untouched, got %v", sets)
		}
	}
	if !reflect.DeepEqual(sets, []string{"is_active = $1"}) {
		t.Fatalf("expected only is_active, got %v", sets)
	}
}

func TestPromotionPatchFullAssignment(t *testing.T) {
	pos := models.PromotionPositionHome
	patch := models.PromotionPatch{
		TitleSr:  strPtr("Akcija"),
		TitleEn:  strPtr("Sale"),
		Position: &pos,
		Discount: floatPtr(15),
	}

	sets, args := promotionPatchAssignments(patch)

	want := []string{"title_sr = $1", "title_en = $2", "position = $3", "discount = $4"}
	if !reflect.DeepEqual(sets, want) {
		t.Fatalf("expected %v, got %v", want, sets)
	}
	if args[2] != "home" {
		t.Fatalf("position must bind as its string value, got %v", args[2])
	}
}
