package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/chk/internal/session"
)

// PrintConfigCmd returns the print-config command.
func PrintConfigCmd(cfg *session.Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("print-config", flag.ContinueOnError),
		Usage: "print-config",
		Short: "Show resolved configuration",
		Long:  "Display the effective configuration and which files it was loaded from.",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			execPrintConfig(o, cfg)

			return nil
		},
	}
}

func execPrintConfig(o *IO, cfg *session.Config) {
	o.Println("effective_cwd=" + cfg.EffectiveCwd)
	o.Println("state_dir=" + cfg.StateDirAbs)
	o.Println("export_file=" + cfg.ResolvePath(cfg.ExportFile))
	o.Println("color=" + cfg.Color)
	o.Println("today=" + cfg.Today().String())

	o.Println("")
	o.Println("# sources")

	if cfg.Sources.Global == "" && cfg.Sources.Project == "" {
		o.Println("(defaults only)")

		return
	}

	if cfg.Sources.Global != "" {
		o.Println("global_config=" + cfg.Sources.Global)
	}

	if cfg.Sources.Project != "" {
		o.Println("project_config=" + cfg.Sources.Project)
	}
}
