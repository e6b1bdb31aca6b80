package cli_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/calvinalkan/chk/internal/cli"
)

func Test_Export_Then_Import_When_Moving_Between_Workspaces(t *testing.T) {
	t.Parallel()

	src := cli.NewCLI(t)
	src.MustRun("date", "2025-06-01")
	src.MustRun("done", "pass-03")
	src.MustRun("add", "arrival", "Abrir conta")

	stdout := src.MustRun("export")
	cli.AssertContains(t, stdout, "Exported to "+src.Dir+"/cabw_checklist.json")

	exported := src.ReadFile("cabw_checklist.json")

	dst := cli.NewCLI(t)
	dst.MustRun("add", "payroll", "will be replaced")
	dst.WriteFile("in.json", exported)

	stdout = dst.MustRun("import", "in.json")
	cli.AssertContains(t, stdout, "Imported 1 manual tasks, 1 flags, exit authorization date 01/06/2025")

	if got, want := dst.MustRun("date"), "2025-06-01 (01/06/2025)"; got != want {
		t.Errorf("date=%q, want=%q", got, want)
	}

	cli.AssertContains(t, dst.MustRun("ls", "passport"), "pass-03 [x]")
	cli.AssertContains(t, dst.MustRun("ls", "arrival"), "Abrir conta")
	cli.AssertNotContains(t, dst.MustRun("ls", "payroll"), "will be replaced")
}

func Test_Export_Writes_Snapshot_To_Stdout_When_Dash(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("date", "2025-06-01")
	c.MustRun("done", "raire-02")

	stdout := c.MustRun("export", "-o", "-")

	var snap struct {
		Lists    map[string][]any `json:"lists"`
		AuthDate string           `json:"auth_date"`
		Extras   map[string]bool  `json:"extras"`
	}

	if err := json.Unmarshal([]byte(stdout), &snap); err != nil {
		t.Fatalf("export is not JSON: %v\n%s", err, stdout)
	}

	if got, want := snap.AuthDate, "2025-06-01"; got != want {
		t.Errorf("auth_date=%q, want=%q", got, want)
	}

	if !snap.Extras["raire-02"] {
		t.Errorf("extras=%v, want raire-02", snap.Extras)
	}

	if got, want := len(snap.Lists), 6; got != want {
		t.Errorf("lists=%d, want=%d", got, want)
	}
}

func Test_Import_Reads_Stdin_And_Keeps_Unknown_Keys(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	legacy := `{
		"lists": {"Pagamento": [{"title": "Conferir contracheque", "done": true, "notes": ""}]},
		"auth_date": "2025-06-01",
		"extras": {"done-pass-1": true, "done-legacy-99": true, "show_tips": true}
	}`

	stdout, stderr, code := c.RunWithInput(legacy, "import", "-")
	if code != 0 {
		t.Fatalf("import failed: %s", stderr)
	}

	cli.AssertContains(t, stdout, "Imported 1 manual tasks, 3 flags")
	cli.AssertContains(t, stdout, "Kept 1 unrecognized flag keys: [show_tips]")
	cli.AssertContains(t, c.MustRun("ls", "passport"), "pass-01 [x]")
	cli.AssertContains(t, c.MustRun("ls", "payroll"), "[x] Conferir contracheque")

	exported := c.MustRun("export", "-o", "-")
	cli.AssertContains(t, exported, `"show_tips": true`)
	cli.AssertContains(t, exported, `"legacy-99": true`)
	cli.AssertNotContains(t, exported, `"done-legacy-99"`)
	cli.AssertContains(t, exported, `"pass-01": true`)
}

func Test_Import_Leaves_State_When_File_Malformed(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name    string
		content string
	}{
		{name: "not json", content: "hello"},
		{name: "array", content: "[]"},
		{name: "bad date", content: `{"auth_date": "June 1st"}`},
		{name: "bad extras", content: `{"extras": {"pass-01": "yes"}}`},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)
			c.MustRun("date", "2025-06-01")
			c.WriteFile("bad.json", tt.content)

			stderr := c.MustFail("import", "bad.json")
			cli.AssertContains(t, stderr, "cannot import bad.json")

			if got, want := c.MustRun("date"), "2025-06-01 (01/06/2025)"; got != want {
				t.Errorf("date after failed import=%q, want=%q", got, want)
			}
		})
	}
}

func Test_Import_Fails_When_File_Missing(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	if stderr := c.MustFail("import"); !strings.Contains(stderr, "file is required") {
		t.Errorf("stderr=%q", stderr)
	}

	if stderr := c.MustFail("import", "nope.json"); !strings.Contains(stderr, "reading nope.json") {
		t.Errorf("stderr=%q", stderr)
	}
}

func Test_Export_Help_Notes_Bare_Key_Format(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("export", "--help")

	cli.AssertContains(t, stdout, "Flags are written with bare keys (pass-01)")
	cli.AssertContains(t, stdout, `only reads "done-" keys`)
}
