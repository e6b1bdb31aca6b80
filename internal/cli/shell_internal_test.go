package cli

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitWords(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		line string
		want []string
	}{
		{line: "", want: nil},
		{line: "  ls   arrival ", want: []string{"ls", "arrival"}},
		{line: `add "Chegada na CABW" 'Abrir conta'`, want: []string{"add", "Chegada na CABW", "Abrir conta"}},
		{line: `note 1 #2 it\'s\ fine`, want: []string{"note", "1", "#2", "it's fine"}},
		{line: `note 1 #2 ""`, want: []string{"note", "1", "#2", ""}},
		{line: `a"b c"d`, want: []string{"ab cd"}},
		{line: `note 1 #1 "a; b | c > d"`, want: []string{"note", "1", "#1", "a; b | c > d"}},
		{line: `add arrival Pagar\ aluguel`, want: []string{"add", "arrival", "Pagar aluguel"}},
	} {
		got, err := splitWords(tt.line)
		if err != nil {
			t.Errorf("splitWords(%q) error: %v", tt.line, err)

			continue
		}

		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("splitWords(%q) mismatch (-want +got):\n%s", tt.line, diff)
		}
	}

	for _, line := range []string{`add "open`, `add 'open`, `trailing\`, `ls; rm 1`, `export -o - > out.json`, `ls | head`} {
		if _, err := splitWords(line); !errors.Is(err, errInvalidLine) {
			t.Errorf("splitWords(%q) error = %v, want %v", line, err, errInvalidLine)
		}
	}
}
