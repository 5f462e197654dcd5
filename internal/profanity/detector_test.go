package profanity

import "testing"

func TestPredict(t *testing.T) {
	d := New(DefaultThreshold)
	tests := []struct {
		text string
		want bool
	}{
		{"Thanks for calling in.", false},
		{"What the fuck is that?", true},
		{"Oh shitty weather today.", true},
		{"He passed the class.", false},
		{"Assess the situation.", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := d.Predict(tt.text); got != tt.want {
			t.Errorf("Predict(%q) = %v, want %v (p=%v)", tt.text, got, tt.want, d.Probability(tt.text))
		}
	}
}

func TestProbabilityIncreasesWithTerms(t *testing.T) {
	d := New(DefaultThreshold)
	clean := d.Probability("this is a long and perfectly clean sentence")
	one := d.Probability("this is a long and damn clean sentence")
	two := d.Probability("this is a damn long and shit clean sentence")
	if !(clean < one && one < two) {
		t.Fatalf("expected monotonic probabilities, got %v %v %v", clean, one, two)
	}
	if clean <= 0 || two >= 1 {
		t.Fatalf("probabilities must stay inside (0, 1): %v %v", clean, two)
	}
}

func TestThresholdFallback(t *testing.T) {
	if got := New(0).Threshold(); got != DefaultThreshold {
		t.Fatalf("Threshold() = %v, want default", got)
	}
	strict := New(0.99)
	if strict.Predict("damn it") {
		t.Fatal("expected strict threshold to reject a single term")
	}
}

func TestNewWithWords(t *testing.T) {
	d := NewWithWords(0.5, []string{"heck", "frick*", " ", "*"})
	if !d.Predict("oh heck") || !d.Predict("fricking thing") {
		t.Fatal("expected custom terms to match")
	}
	if d.Predict("check this") {
		t.Fatal("exact terms must not match substrings")
	}
}
