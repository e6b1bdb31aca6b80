package checklist_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/calvinalkan/chk/internal/checklist"
)

func TestBuiltinCatalogsAreWellFormed(t *testing.T) {
	t.Parallel()

	prefixes := make(map[string]bool)

	for _, cat := range checklist.Categories() {
		catalog, ok := checklist.CatalogFor(cat)
		if !ok {
			t.Fatalf("missing catalog %s", cat)
		}

		if catalog.Category != cat {
			t.Errorf("catalog %s tagged %s", cat, catalog.Category)
		}

		if catalog.Len() == 0 {
			t.Errorf("catalog %s is empty", cat)
		}

		if prefixes[cat.Prefix()] {
			t.Errorf("duplicate prefix %s", cat.Prefix())
		}

		prefixes[cat.Prefix()] = true

		for i, def := range catalog.Tasks {
			if strings.TrimSpace(def.Label) == "" {
				t.Errorf("%s[%d] has empty label", cat, i)
			}
		}
	}
}

func TestCatalogForReturnsCopy(t *testing.T) {
	t.Parallel()

	a, _ := checklist.CatalogFor(checklist.Leave)
	a.Tasks[0].Label = "mutated"

	b, _ := checklist.CatalogFor(checklist.Leave)
	if b.Tasks[0].Label == "mutated" {
		t.Fatal("CatalogFor exposed the shared catalog")
	}
}

func TestParseKey(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "pass-01", want: "pass-01"},
		{in: "pass-23", want: "pass-23"},
		{in: "ferias-1", want: "ferias-01"},
		{in: "done-insp-02", want: "insp-02"},
		{in: "raire-03", want: "raire-03"},
		{in: "pass-24", wantErr: true},
		{in: "pass-00", wantErr: true},
		{in: "nope-01", wantErr: true},
		{in: "pass", wantErr: true},
		{in: "pass-xx", wantErr: true},
		{in: "", wantErr: true},
	} {
		key, err := checklist.ParseKey(tt.in)
		if tt.wantErr {
			if !errors.Is(err, checklist.ErrInvalidKey) {
				t.Errorf("ParseKey(%q) err = %v, want ErrInvalidKey", tt.in, err)
			}

			continue
		}

		if err != nil {
			t.Errorf("ParseKey(%q): %v", tt.in, err)

			continue
		}

		if key.String() != tt.want {
			t.Errorf("ParseKey(%q) = %s, want %s", tt.in, key, tt.want)
		}
	}
}

func TestParseCategoryAcceptsNameAndPrefix(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]checklist.Category{
		"passport": checklist.Passport,
		"pass":     checklist.Passport,
		"Leave":    checklist.Leave,
		"raire":    checklist.Housing,
	} {
		got, err := checklist.ParseCategory(in)
		if err != nil || got != want {
			t.Errorf("ParseCategory(%q) = %s, %v; want %s", in, got, err, want)
		}
	}

	_, err := checklist.ParseCategory("visa")
	if !errors.Is(err, checklist.ErrUnknownCategory) {
		t.Errorf("ParseCategory(visa) err = %v", err)
	}
}

func TestLookupPage(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"Passaporte e Visto", "passport", "6"} {
		p, ok := checklist.LookupPage(in)
		if !ok || p.Catalog != checklist.Passport {
			t.Errorf("LookupPage(%q) = %+v, %v", in, p, ok)
		}
	}

	if p, ok := checklist.LookupPage("arrival"); !ok || p.HasCatalog() {
		t.Errorf("arrival page = %+v, %v; want page without catalog", p, ok)
	}

	if _, ok := checklist.LookupPage("7"); ok {
		t.Error("LookupPage(7) should fail")
	}
}

func TestPassportReferenceDatedRow(t *testing.T) {
	t.Parallel()

	anchor := datePtr(t, "2025-06-01")

	var dated int

	for _, row := range checklist.PassportReference() {
		d, ok := row.Deadline(anchor)
		if !ok {
			continue
		}

		dated++

		if d != date(t, "2025-05-02") {
			t.Errorf("dated row deadline = %s, want 2025-05-02", d)
		}

		if _, ok := row.Deadline(nil); ok {
			t.Error("dated row resolved without anchor")
		}
	}

	if dated != 1 {
		t.Fatalf("dated rows = %d, want 1", dated)
	}
}
