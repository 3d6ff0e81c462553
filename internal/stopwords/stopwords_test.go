package stopwords

import (
	"testing"

	"matcompat/internal/textutil"
)

func TestDefaultContains(t *testing.T) {
	set := Default()

	for _, word := range []string{"de", "la", "que", "estas", "u"} {
		if !set.Contains(word) {
			t.Errorf("Default().Contains(%q) = false, want true", word)
		}
	}
	for _, word := range []string{"derivada", "integral", ""} {
		if set.Contains(word) {
			t.Errorf("Default().Contains(%q) = true, want false", word)
		}
	}
}

func TestFilterPreservesOrderAndDuplicates(t *testing.T) {
	set := Default()
	tokens := textutil.Tokenize("la derivada de la derivada es la derivada")

	got := set.Filter(tokens)
	want := []string{"derivada", "derivada", "derivada"}

	if len(got) != len(want) {
		t.Fatalf("Filter() = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFilterEmpty(t *testing.T) {
	set := Default()

	if got := set.Filter(nil); len(got) != 0 {
		t.Errorf("Filter(nil) = %v, want empty", got)
	}
	if got := set.Filter([]string{"de", "la", "que"}); len(got) != 0 {
		t.Errorf("Filter(all stopwords) = %v, want empty", got)
	}
}

func TestDefaultWith(t *testing.T) {
	set := DefaultWith([]string{"  También ", "", "etc"})

	if !set.Contains("tambien") {
		t.Error("expected normalized extra word to be a stopword")
	}
	if !set.Contains("etc") {
		t.Error("expected extra word to be a stopword")
	}
	if !set.Contains("de") {
		t.Error("extending must not drop built-in words")
	}
	if set.Len() != Default().Len()+2 {
		t.Errorf("Len() = %d, want %d", set.Len(), Default().Len()+2)
	}
}
