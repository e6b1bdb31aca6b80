package cli_test

import (
	"strings"
	"testing"

	"github.com/calvinalkan/chk/internal/cli"
)

func Test_Done_And_Undo_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("date", "2025-06-01")

	stdout := c.MustRun("done", "pass-01", "done-insp-2")
	cli.AssertContains(t, stdout, "pass-01 Feito")
	cli.AssertContains(t, stdout, "insp-02 Feito")

	cli.AssertContains(t, c.MustRun("ls", "passport"), "pass-01 [x]")

	if got, want := c.MustRun("undo", "pass-01"), "pass-01 Aguardando"; got != want {
		t.Errorf("undo=%q, want=%q", got, want)
	}

	cli.AssertContains(t, c.MustRun("ls", "passport"), "pass-01 [ ]")
}

func Test_Done_Works_When_No_Date(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("done", "pay-01")
	c.MustRun("date", "2025-06-01")

	cli.AssertContains(t, c.MustRun("ls", "payroll"), "pay-01 [x]")
}

func Test_Done_Fails_When_Key_Invalid(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name       string
		args       []string
		wantStderr string
	}{
		{name: "no key", args: []string{"done"}, wantStderr: "at least one task key is required"},
		{name: "unknown category", args: []string{"done", "xyz-01"}, wantStderr: "invalid task key"},
		{name: "index out of range", args: []string{"done", "ferias-04"}, wantStderr: "index out of range 1-3"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)
			stderr := c.MustFail(tt.args...)

			if !strings.Contains(stderr, tt.wantStderr) {
				t.Errorf("stderr=%q, want to contain %q", stderr, tt.wantStderr)
			}
		})
	}
}

func Test_Done_Writes_Nothing_When_Any_Key_Invalid(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("date", "2025-06-01")
	c.MustFail("done", "pass-01", "pass-99")

	cli.AssertContains(t, c.MustRun("ls", "passport"), "pass-01 [ ]")
}
