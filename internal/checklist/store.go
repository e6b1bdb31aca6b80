package checklist

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// ManualTask is a user-created checklist item. ID is assigned at creation and
// is the only handle mutations accept.
type ManualTask struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
	Notes string `json:"notes"`
}

// Store owns all mutable checklist state of one session: the anchor date,
// completion flags of resolved tasks and the manual lists per page.
//
// A Store is not safe for concurrent use. Every session owns its own Store.
type Store struct {
	anchor *civil.Date
	flags  map[Key]bool

	// passthrough keeps extras entries that are not shaped like a task key,
	// so they survive an export.
	passthrough map[string]bool

	lists map[string][]ManualTask
	newID func() string
}

// newTaskID returns a time-ordered UUIDv7.
func newTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

// NewStore returns an empty store with an empty list for every built-in page.
func NewStore() *Store {
	s := &Store{
		flags:       make(map[Key]bool),
		passthrough: make(map[string]bool),
		lists:       make(map[string][]ManualTask),
		newID:       newTaskID,
	}

	for _, p := range builtinPages {
		s.lists[p.Name] = []ManualTask{}
	}

	return s
}

// Anchor returns a copy of the anchor date, or nil when none is set.
func (s *Store) Anchor() *civil.Date {
	if s.anchor == nil {
		return nil
	}

	d := *s.anchor

	return &d
}

// SetAnchor sets the anchor date. Nil clears it.
func (s *Store) SetAnchor(d *civil.Date) {
	if d == nil {
		s.anchor = nil

		return
	}

	v := *d
	s.anchor = &v
}

// Flag returns the completion flag of key. Keys never set are false.
func (s *Store) Flag(key Key) bool {
	return s.flags[key]
}

// SetFlag records the completion flag of key.
func (s *Store) SetFlag(key Key, done bool) {
	s.flags[key] = done
}

// PassthroughKeys returns the extras keys kept from an import that are not
// shaped like a task key, sorted.
func (s *Store) PassthroughKeys() []string {
	return slices.Sorted(maps.Keys(s.passthrough))
}

// ManualPages returns the names of all manual lists: built-in pages first in
// navigation order, then any other list sorted by name.
func (s *Store) ManualPages() []string {
	names := make([]string, 0, len(s.lists))
	for _, p := range builtinPages {
		names = append(names, p.Name)
	}

	var extra []string

	for name := range s.lists {
		if !isBuiltinPage(name) {
			extra = append(extra, name)
		}
	}

	sort.Strings(extra)

	return append(names, extra...)
}

// ManualTasks returns a copy of the manual list of page, creating the empty
// list on first access.
func (s *Store) ManualTasks(page string) []ManualTask {
	list, ok := s.lists[page]
	if !ok {
		list = []ManualTask{}
		s.lists[page] = list
	}

	return slices.Clone(list)
}

// ManualTaskAt returns the task at the 0-based position index of page.
// The index must come from the current list; anything else is a caller bug
// and panics.
func (s *Store) ManualTaskAt(page string, index int) ManualTask {
	list := s.lists[page]
	if index < 0 || index >= len(list) {
		panic(fmt.Sprintf("checklist: manual task index %d out of range [0,%d) for page %q", index, len(list), page))
	}

	return list[index]
}

// AddManualTask appends a new, not done task to page and returns it.
func (s *Store) AddManualTask(page, title string) (ManualTask, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return ManualTask{}, ErrTitleRequired
	}

	task := ManualTask{ID: s.newID(), Title: title}
	s.lists[page] = append(s.lists[page], task)

	return task, nil
}

// SetManualDone sets the done flag of the task id in page.
func (s *Store) SetManualDone(page, id string, done bool) error {
	return s.updateManual(page, id, func(t *ManualTask) { t.Done = done })
}

// SetManualNotes replaces the notes of the task id in page.
func (s *Store) SetManualNotes(page, id, notes string) error {
	return s.updateManual(page, id, func(t *ManualTask) { t.Notes = notes })
}

// DeleteManualTask removes the task id from page. Later tasks move up by one
// position; earlier tasks are untouched.
func (s *Store) DeleteManualTask(page, id string) error {
	idx, err := s.indexOf(page, id)
	if err != nil {
		return err
	}

	s.lists[page] = slices.Delete(s.lists[page], idx, idx+1)

	return nil
}

func (s *Store) updateManual(page, id string, apply func(*ManualTask)) error {
	idx, err := s.indexOf(page, id)
	if err != nil {
		return err
	}

	apply(&s.lists[page][idx])

	return nil
}

func (s *Store) indexOf(page, id string) (int, error) {
	idx := slices.IndexFunc(s.lists[page], func(t ManualTask) bool { return t.ID == id })
	if idx < 0 {
		return -1, fmt.Errorf("%w: %s (page %q)", ErrManualTaskNotFound, id, page)
	}

	return idx, nil
}

// TaskStatus is a resolved task paired with its completion flag.
type TaskStatus struct {
	ResolvedTask
	Done bool
}

// Statuses resolves catalog against the store's anchor and attaches flags.
// Without an anchor the result is empty.
func (s *Store) Statuses(catalog Catalog) []TaskStatus {
	resolved := Resolve(catalog, s.anchor)

	out := make([]TaskStatus, 0, len(resolved))
	for _, t := range resolved {
		out = append(out, TaskStatus{ResolvedTask: t, Done: s.flags[t.Key]})
	}

	return out
}

// CategoryStatuses is Statuses for a built-in category.
func (s *Store) CategoryStatuses(c Category) []TaskStatus {
	catalog, ok := CatalogFor(c)
	if !ok {
		return []TaskStatus{}
	}

	return s.Statuses(catalog)
}
