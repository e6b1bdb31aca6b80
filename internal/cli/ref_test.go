package cli_test

import (
	"strings"
	"testing"

	"github.com/calvinalkan/chk/internal/cli"
)

func Test_Ref_Passport_Shows_Dated_Row_When_Date_Set(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout := c.MustRun("ref", "passport")
	cli.AssertContains(t, stdout, "Preencher requerimento eletrônico de passaporte")
	cli.AssertNotContains(t, stdout, "(02/05/2025)")

	c.MustRun("date", "2025-06-01")
	cli.AssertContains(t, c.MustRun("ref", "passport"), "(02/05/2025)")
}

func Test_Ref_Medical_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("ref", "medical")

	cli.AssertContains(t, stdout, "Jejum de 10-12h para coleta de exames")
	cli.AssertContains(t, stdout, "Obrigatório a partir de 35 anos")
	cli.AssertNotContains(t, stdout, "Quando")
}

func Test_Ref_Fails_When_Table_Unknown(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	for _, args := range [][]string{{"ref"}, {"ref", "visa"}} {
		if stderr := c.MustFail(args...); !strings.Contains(stderr, "unknown reference table") {
			t.Errorf("%v: stderr=%q", args, stderr)
		}
	}
}

func Test_Ics_Exports_Pending_Deadlines_When_Date_Set(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("date", "2025-06-01")
	c.MustRun("done", "ferias-02")

	stdout := c.MustRun("ics")

	cli.AssertContains(t, stdout, "BEGIN:VCALENDAR")
	cli.AssertContains(t, stdout, "UID:ferias-01@chk")
	cli.AssertContains(t, stdout, "DTSTART;VALUE=DATE:20250221")
	cli.AssertContains(t, stdout, "UID:raire-03@chk")
	cli.AssertNotContains(t, stdout, "UID:ferias-02@chk")

	cli.AssertContains(t, c.MustRun("ics", "--all"), "UID:ferias-02@chk")

	out := c.MustRun("ics", "-o", "deadlines.ics")
	cli.AssertContains(t, out, "events to "+c.Dir+"/deadlines.ics")
	cli.AssertContains(t, c.ReadFile("deadlines.ics"), "END:VCALENDAR")
}

func Test_Ics_Warns_When_No_Date(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, code := c.Run("ics")

	if got, want := code, 1; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	cli.AssertContains(t, stderr, "warning: exit authorization date not set")
	cli.AssertContains(t, stdout, "BEGIN:VCALENDAR")
	cli.AssertNotContains(t, stdout, "BEGIN:VEVENT")
}
