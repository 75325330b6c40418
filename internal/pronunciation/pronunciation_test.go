package pronunciation

import (
	"testing"

	"github.com/heartmarshall/poemfactory/internal/domain"
)

func TestMap_Lookup(t *testing.T) {
	t.Parallel()

	m := FromStrings(map[string]string{
		"Hello": "HH AH0 L OW1",
	})
	m.Add("hello", domain.ParsePronunciation("HH EH0 L OW1"))

	prons, ok := m.Lookup("hello")
	if !ok {
		t.Fatal("hello not found")
	}
	if len(prons) != 2 {
		t.Fatalf("variants = %d, want 2", len(prons))
	}
	if got := prons[0].String(); got != "HH AH0 L OW1" {
		t.Errorf("first variant = %q, want %q", got, "HH AH0 L OW1")
	}
}

func TestMap_LookupMissing(t *testing.T) {
	t.Parallel()

	m := Map{"empty": nil}

	if _, ok := m.Lookup("absent"); ok {
		t.Error("absent word should not be found")
	}
	if _, ok := m.Lookup("empty"); ok {
		t.Error("word without variants should not be found")
	}
}
