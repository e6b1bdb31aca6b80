package checklist_test

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/chk/internal/checklist"
)

func date(t *testing.T, s string) civil.Date {
	t.Helper()

	d, err := civil.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}

	return d
}

func datePtr(t *testing.T, s string) *civil.Date {
	t.Helper()

	d := date(t, s)

	return &d
}

func TestResolveSubtractsOffsetsFromAnchor(t *testing.T) {
	t.Parallel()

	catalog := checklist.Catalog{
		Category: "x",
		Tasks: []checklist.TaskDefinition{
			{OffsetDays: 100, Label: "A"},
			{OffsetDays: 30, Label: "B"},
			{OffsetDays: 1, Label: "C"},
		},
	}

	got := checklist.Resolve(catalog, datePtr(t, "2025-06-01"))

	want := []checklist.ResolvedTask{
		{Key: checklist.Key{Category: "x", Index: 1}, Label: "A", Deadline: date(t, "2025-02-21")},
		{Key: checklist.Key{Category: "x", Index: 2}, Label: "B", Deadline: date(t, "2025-05-02")},
		{Key: checklist.Key{Category: "x", Index: 3}, Label: "C", Deadline: date(t, "2025-05-31")},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("resolve mismatch (-want +got):\n%s", diff)
	}

	var keys []string
	for _, task := range got {
		keys = append(keys, task.Key.String())
	}

	if diff := cmp.Diff([]string{"x-01", "x-02", "x-03"}, keys); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveNegativeOffsetFallsAfterAnchor(t *testing.T) {
	t.Parallel()

	catalog := checklist.Catalog{
		Category: "x",
		Tasks:    []checklist.TaskDefinition{{OffsetDays: -10, Label: "D"}},
	}

	got := checklist.Resolve(catalog, datePtr(t, "2025-06-01"))

	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}

	if got[0].Deadline != date(t, "2025-06-11") {
		t.Fatalf("deadline = %s, want 2025-06-11", got[0].Deadline)
	}
}

func TestResolveWithoutAnchorIsEmpty(t *testing.T) {
	t.Parallel()

	for _, cat := range checklist.Categories() {
		catalog, ok := checklist.CatalogFor(cat)
		if !ok {
			t.Fatalf("no catalog for %s", cat)
		}

		got := checklist.Resolve(catalog, nil)
		if got == nil || len(got) != 0 {
			t.Fatalf("%s: Resolve(nil) = %#v, want empty non-nil slice", cat, got)
		}
	}
}

func TestResolveIsDeterministicForEveryBuiltinCatalog(t *testing.T) {
	t.Parallel()

	anchors := []string{"1970-01-01", "2024-02-29", "2025-06-01", "2999-12-31"}

	for _, cat := range checklist.Categories() {
		catalog, _ := checklist.CatalogFor(cat)

		for _, a := range anchors {
			anchor := datePtr(t, a)

			first := checklist.Resolve(catalog, anchor)
			second := checklist.Resolve(catalog, anchor)

			if diff := cmp.Diff(first, second); diff != "" {
				t.Fatalf("%s@%s: repeated resolve differs:\n%s", cat, a, diff)
			}

			seen := make(map[string]bool)

			for i, task := range first {
				want := anchor.AddDays(-catalog.Tasks[i].OffsetDays)
				if task.Deadline != want {
					t.Errorf("%s@%s[%d]: deadline %s, want %s", cat, a, i, task.Deadline, want)
				}

				k := task.Key.String()
				if seen[k] {
					t.Errorf("%s@%s: duplicate key %s", cat, a, k)
				}

				seen[k] = true
			}
		}
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	today := date(t, "2025-06-01")

	for _, tt := range []struct {
		deadline string
		wantDays int
		want     checklist.Urgency
	}{
		{"2025-06-02", 1, checklist.Upcoming},
		{"2025-06-01", 0, checklist.DueToday},
		{"2025-05-22", -10, checklist.Overdue},
	} {
		d := date(t, tt.deadline)

		if got := checklist.DaysRemaining(d, today); got != tt.wantDays {
			t.Errorf("DaysRemaining(%s) = %d, want %d", tt.deadline, got, tt.wantDays)
		}

		if got := checklist.Classify(d, today); got != tt.want {
			t.Errorf("Classify(%s) = %s, want %s", tt.deadline, got, tt.want)
		}
	}
}
