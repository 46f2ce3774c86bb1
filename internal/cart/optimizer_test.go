package cart

import "testing"

func TestSuggestGapShortfall(t *testing.T) {
	suggestion := SuggestGap(100, 160)

	if suggestion.GapGrams != 60 {
		t.Fatalf("gap = %v, want 60", suggestion.GapGrams)
	}

	if len(suggestion.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(suggestion.Options))
	}

	// Whole food first, supplement second
	if suggestion.Options[0].Label != "+500g Pollo / semana" {
		t.Fatalf("first option should be the whole food, got %q", suggestion.Options[0].Label)
	}
	if suggestion.Options[1].Label != "+1 Scoop Whey / día" {
		t.Fatalf("second option should be the supplement, got %q", suggestion.Options[1].Label)
	}
}

func TestSuggestGapTargetMet(t *testing.T) {
	suggestion := SuggestGap(180, 160)

	if suggestion.GapGrams != 0 {
		t.Fatalf("gap should clamp to zero when the target is met, got %v", suggestion.GapGrams)
	}
	if len(suggestion.Options) != 2 {
		t.Fatalf("options are always presented, got %d", len(suggestion.Options))
	}
}
