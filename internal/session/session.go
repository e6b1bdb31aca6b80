// Package session persists one checklist session per workspace.
//
// The state file is a regular snapshot (the same format export writes), kept
// at <state_dir>/state.json. Every command loads it, works on its own
// checklist.Store and, for mutating commands, writes it back atomically while
// holding the workspace lock.
package session

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/calvinalkan/chk/internal/checklist"
)

// StateFileName is the name of the state file inside the state directory.
const StateFileName = "state.json"

// StatePath returns the absolute path of the workspace state file.
func (c *Config) StatePath() string {
	return filepath.Join(c.StateDirAbs, StateFileName)
}

// View loads the workspace state and passes it to fn. Changes fn makes to the
// store are discarded.
func View(cfg *Config, fn func(*checklist.Store) error) error {
	path := cfg.StatePath()

	_, statErr := os.Stat(path)
	if errors.Is(statErr, os.ErrNotExist) {
		return fn(checklist.NewStore())
	}

	return withLock(path, func() error {
		store, err := load(path)
		if err != nil {
			return err
		}

		return fn(store)
	})
}

// Update loads the workspace state, passes it to fn and, if fn succeeds,
// writes the store back. If fn fails nothing is written.
func Update(cfg *Config, fn func(*checklist.Store) error) error {
	path := cfg.StatePath()

	mkdirErr := os.MkdirAll(cfg.StateDirAbs, dirPerms)
	if mkdirErr != nil {
		return fmt.Errorf("creating state dir: %w", mkdirErr)
	}

	return withLock(path, func() error {
		store, err := load(path)
		if err != nil {
			return err
		}

		fnErr := fn(store)
		if fnErr != nil {
			return fnErr
		}

		return save(path, store)
	})
}

func load(path string) (*checklist.Store, error) {
	store := checklist.NewStore()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return store, nil
		}

		return nil, fmt.Errorf("reading state: %w", err)
	}

	importErr := store.Import(data)
	if importErr != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrStateCorrupt, path, importErr)
	}

	return store, nil
}

func save(path string, store *checklist.Store) error {
	data, err := store.Export()
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	writeErr := atomic.WriteFile(path, bytes.NewReader(data))
	if writeErr != nil {
		return fmt.Errorf("writing state: %w", writeErr)
	}

	return nil
}

// WriteFile writes data to path atomically.
func WriteFile(path string, data []byte) error {
	err := atomic.WriteFile(path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
