package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/chk/internal/checklist"
	"github.com/calvinalkan/chk/internal/session"
)

// DoneCmd returns the done command.
func DoneCmd(cfg *session.Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("done", flag.ContinueOnError),
		Usage: "done <key>...",
		Short: "Mark automatic items as done",
		Long: `Mark automatic checklist items as done.

Keys are shown by 'chk ls', for example pass-03 or ferias-01.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execSetFlags(o, cfg, args, true)
		},
	}
}

// UndoCmd returns the undo command.
func UndoCmd(cfg *session.Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("undo", flag.ContinueOnError),
		Usage: "undo <key>...",
		Short: "Mark automatic items as not done",
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execSetFlags(o, cfg, args, false)
		},
	}
}

func execSetFlags(o *IO, cfg *session.Config, args []string, done bool) error {
	if len(args) == 0 {
		return ErrKeyRequired
	}

	// All keys are validated before anything is written.
	keys := make([]checklist.Key, 0, len(args))

	for _, arg := range args {
		key, err := checklist.ParseKey(arg)
		if err != nil {
			return err
		}

		keys = append(keys, key)
	}

	err := session.Update(cfg, func(s *checklist.Store) error {
		for _, key := range keys {
			s.SetFlag(key, done)
		}

		return nil
	})
	if err != nil {
		return err
	}

	for _, key := range keys {
		o.Printf("%s %s\n", key, o.style.badge(done))
	}

	return nil
}
