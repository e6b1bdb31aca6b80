package checklist

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
	"strings"

	"cloud.google.com/go/civil"
)

// Snapshot is the complete exchangeable state of a Store.
type Snapshot struct {
	Lists    map[string][]ManualTask `json:"lists"`
	AuthDate *civil.Date             `json:"auth_date"`
	Extras   map[string]bool         `json:"extras"`
}

// Snapshot captures the store. Every manual list is present, empty ones
// included. Only flags that were explicitly set are written.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		Lists:    make(map[string][]ManualTask, len(s.lists)),
		AuthDate: s.Anchor(),
		Extras:   make(map[string]bool, len(s.flags)+len(s.passthrough)),
	}

	for _, p := range builtinPages {
		snap.Lists[p.Name] = []ManualTask{}
	}

	for name, list := range s.lists {
		snap.Lists[name] = slices.Clone(list)
	}

	for k, v := range s.passthrough {
		snap.Extras[k] = v
	}

	for k, v := range s.flags {
		snap.Extras[k.String()] = v
	}

	return snap
}

// Restore replaces the whole store with snap. Built-in pages missing from
// snap become empty lists. Manual tasks without an id, or with an id already
// used in the same list, get a fresh one. Every extras entry shaped like a
// key becomes a flag, whatever its category; when a key is spelled more than
// once the bare form wins over "done-". Other entries are kept verbatim.
func (s *Store) Restore(snap Snapshot) {
	lists := make(map[string][]ManualTask, len(snap.Lists)+len(builtinPages))

	for name, list := range snap.Lists {
		seen := make(map[string]bool, len(list))
		copied := make([]ManualTask, 0, len(list))

		for _, t := range list {
			if t.ID == "" || seen[t.ID] {
				t.ID = s.newID()
			}

			seen[t.ID] = true
			copied = append(copied, t)
		}

		lists[name] = copied
	}

	for _, p := range builtinPages {
		if _, ok := lists[p.Name]; !ok {
			lists[p.Name] = []ManualTask{}
		}
	}

	flags := make(map[Key]bool)
	ranks := make(map[Key]int)
	passthrough := make(map[string]bool)

	// Sorted so that equal-rank spellings of one key resolve the same way
	// on every import.
	for _, raw := range slices.Sorted(maps.Keys(snap.Extras)) {
		key, legacy, ok := parseFlagKey(raw)
		if !ok {
			passthrough[raw] = snap.Extras[raw]

			continue
		}

		rank := flagKeyRank(raw, key, legacy)
		if prev, seen := ranks[key]; seen && prev >= rank {
			continue
		}

		flags[key] = snap.Extras[raw]
		ranks[key] = rank
	}

	s.lists = lists
	s.flags = flags
	s.passthrough = passthrough
	s.SetAnchor(snap.AuthDate)
}

// Import decodes data and restores the store from it. On error the store is
// left unchanged.
func (s *Store) Import(data []byte) error {
	snap, err := Decode(data)
	if err != nil {
		return err
	}

	s.Restore(snap)

	return nil
}

// Export encodes the store's snapshot.
func (s *Store) Export() ([]byte, error) {
	return Encode(s.Snapshot())
}

// Encode writes snap as indented JSON. Non-ASCII text is written as-is.
func Encode(snap Snapshot) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	err := enc.Encode(snap)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decode parses a snapshot. It returns a *FormatError when data is not a JSON
// object, when a known field has the wrong shape, or when auth_date is not a
// calendar date. Absent fields and a null or empty auth_date are valid.
func Decode(data []byte) (Snapshot, error) {
	var top map[string]json.RawMessage

	err := json.Unmarshal(data, &top)
	if err != nil {
		return Snapshot{}, &FormatError{Reason: "not a JSON object", Err: err}
	}

	if top == nil {
		return Snapshot{}, &FormatError{Reason: "not a JSON object"}
	}

	snap := Snapshot{
		Lists:  map[string][]ManualTask{},
		Extras: map[string]bool{},
	}

	if raw, ok := top["lists"]; ok && !isNull(raw) {
		var lists map[string][]ManualTask

		err := json.Unmarshal(raw, &lists)
		if err != nil {
			return Snapshot{}, &FormatError{Field: "lists", Reason: "expected an object of task lists", Err: err}
		}

		for name, list := range lists {
			if list == nil {
				list = []ManualTask{}
			}

			snap.Lists[name] = list
		}
	}

	if raw, ok := top["auth_date"]; ok && !isNull(raw) {
		var s string

		err := json.Unmarshal(raw, &s)
		if err != nil {
			return Snapshot{}, &FormatError{Field: "auth_date", Reason: "expected a date string or null", Err: err}
		}

		// Older files write "" for an unset date.
		if strings.TrimSpace(s) != "" {
			d, err := civil.ParseDate(s)
			if err != nil {
				return Snapshot{}, &FormatError{Field: "auth_date", Reason: "not a calendar date: " + s, Err: err}
			}

			snap.AuthDate = &d
		}
	}

	if raw, ok := top["extras"]; ok && !isNull(raw) {
		err := json.Unmarshal(raw, &snap.Extras)
		if err != nil {
			return Snapshot{}, &FormatError{Field: "extras", Reason: "expected an object of booleans", Err: err}
		}
	}

	return snap, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
