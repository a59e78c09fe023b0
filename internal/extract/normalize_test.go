package extract

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "strips indentation and keeps final newline",
			raw:  "  foo\n  bar\n",
			want: "foo\nbar\n",
		},
		{
			name: "drops leading blank lines",
			raw:  "\n\n    inst\n    outv 1\n  ",
			want: "inst\noutv 1\n",
		},
		{
			name: "whitespace-only leading lines count as blank",
			raw:  "   \n\t\n  setv va00 1",
			want: "setv va00 1",
		},
		{
			name: "keeps internal blank lines",
			raw:  "  a\n\n\n  b",
			want: "a\n\n\nb",
		},
		{
			name: "keeps trailing blank lines",
			raw:  "a\n\n\n",
			want: "a\n\n\n",
		},
		{
			name: "keeps trailing whitespace on a line",
			raw:  "  outs \"x\"  \n",
			want: "outs \"x\"  \n",
		},
		{
			name: "mixed indentation",
			raw:  "\tdoif va00 = 1\n\t\touts \"one\"\n\tendi",
			want: "doif va00 = 1\nouts \"one\"\nendi",
		},
		{
			name: "no indentation is unchanged",
			raw:  "outv 1",
			want: "outv 1",
		},
		{
			name: "empty stays empty",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Normalize(tt.raw)); diff != "" {
				t.Errorf("Normalize(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := "\n   inst\n     outv 1\n\n   outs \"done\"\n"
	once := Normalize(raw)
	if diff := cmp.Diff(once, Normalize(once)); diff != "" {
		t.Errorf("Normalize is not idempotent (-once +twice):\n%s", diff)
	}
}
