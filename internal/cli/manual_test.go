package cli_test

import (
	"strings"
	"testing"

	"github.com/calvinalkan/chk/internal/cli"
)

func Test_Manual_Task_Lifecycle_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add", "arrival", "Abrir", "conta", "no", "banco")
	if len(id) != 36 {
		t.Fatalf("add should print the task ID, got %q", id)
	}

	stdout := c.MustRun("ls", "arrival")
	cli.AssertContains(t, stdout, id[:8]+" [ ] Abrir conta no banco  Aguardando")

	if got, want := c.MustRun("check", "arrival", id[:6]), id[:8]+" Abrir conta no banco  Feito"; got != want {
		t.Errorf("check=%q, want=%q", got, want)
	}

	c.MustRun("note", "arrival", "#1", "levar", "passaporte")
	stdout = c.MustRun("ls", "arrival")
	cli.AssertContains(t, stdout, "[x] Abrir conta no banco  Feito")
	cli.AssertContains(t, stdout, "levar passaporte")

	c.MustRun("note", "arrival", id)
	cli.AssertNotContains(t, c.MustRun("ls", "arrival"), "levar passaporte")

	c.MustRun("uncheck", "Chegada na CABW", id)
	cli.AssertContains(t, c.MustRun("ls", "arrival"), "[ ] Abrir conta no banco")

	if got, want := c.MustRun("rm", "arrival", id), "Removed "+id[:8]+" Abrir conta no banco"; got != want {
		t.Errorf("rm=%q, want=%q", got, want)
	}

	cli.AssertNotContains(t, c.MustRun("ls", "arrival"), "Abrir conta no banco")
}

func Test_Rm_Shifts_Positions_When_Earlier_Task_Removed(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("add", "payroll", "A")
	c.MustRun("add", "payroll", "B")
	c.MustRun("add", "payroll", "C")

	c.MustRun("rm", "payroll", "#1")

	// #1 is now B.
	if got := c.MustRun("check", "payroll", "#1"); !strings.Contains(got, " B  Feito") {
		t.Errorf("check #1=%q, want B", got)
	}

	stdout := c.MustRun("ls", "payroll")
	cli.AssertNotContains(t, stdout, " A ")
	cli.AssertContains(t, stdout, "[x] B")
	cli.AssertContains(t, stdout, "[ ] C")
}

func Test_Manual_Commands_Fail_When_Input_Invalid(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name       string
		args       []string
		wantStderr string
	}{
		{name: "add without page", args: []string{"add"}, wantStderr: "page is required"},
		{name: "add without title", args: []string{"add", "arrival"}, wantStderr: "title is required"},
		{name: "add blank title", args: []string{"add", "arrival", "  "}, wantStderr: "title is required"},
		{name: "add unknown page", args: []string{"add", "Mudança", "x"}, wantStderr: "unknown page: Mudança"},
		{name: "check without id", args: []string{"check", "arrival"}, wantStderr: "task ID or #position is required"},
		{name: "check unknown id", args: []string{"check", "arrival", "deadbeef"}, wantStderr: "manual task not found"},
		{name: "check short prefix", args: []string{"check", "arrival", "de"}, wantStderr: "at least 4 characters"},
		{name: "check bad position", args: []string{"check", "arrival", "#1"}, wantStderr: "manual task not found"},
		{name: "rm extra args", args: []string{"rm", "arrival", "a", "b"}, wantStderr: "too many arguments"},
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

func Test_Add_Creates_Page_When_New_Page_Flag(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("add", "--new-page", "Mudança", "Contratar transportadora")
	c.MustRun("add", "Mudança", "Vender carro")

	stdout := c.MustRun("ls", "Mudança")
	cli.AssertContains(t, stdout, "Mudança  0% (0/2)")
	cli.AssertContains(t, stdout, "Vender carro")
	cli.AssertContains(t, c.MustRun("pages"), "-  Mudança  0% (0/2)")
}

func Test_Add_Rejects_New_Page_When_Name_Resolves_To_Builtin(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"2", "medical", "MEDICAL", "42"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)

			stderr := c.MustFail("add", "--new-page", name, "Contratar transportadora")
			cli.AssertContains(t, stderr, "page name is reserved")
			cli.AssertNotContains(t, c.MustRun("ls"), "Contratar transportadora")
		})
	}
}

func Test_Add_New_Page_Flag_Accepts_Existing_Page_Name(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("add", "--new-page", "Pagamento", "Conferir contracheque")

	cli.AssertContains(t, c.MustRun("ls", "payroll"), "Conferir contracheque")
}

func Test_Ls_Draws_Imported_List_Named_Like_Slug_Once(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	_, stderr, code := c.RunWithInput(`{"lists": {"medical": [{"title": "Levar exames", "done": false, "notes": ""}]}}`, "import", "-")
	if code != 0 {
		t.Fatalf("import failed: %s", stderr)
	}

	stdout := c.MustRun("ls")
	if n := strings.Count(stdout, "INSPSAU"); n != 1 {
		t.Errorf("built-in medical page drawn %d times\n%s", n, stdout)
	}

	cli.AssertContains(t, stdout, "medical  0% (0/1)")
}
