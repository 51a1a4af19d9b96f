package detect

import (
	"testing"
	"time"
)

func TestClassifyQuery(t *testing.T) {
	cases := []struct {
		query string
		want  QueryKind
	}{
		{"click the start button", KindSimpleAction},
		{"open notepad", KindSimpleAction},
		{"type hello world into the editor", KindTextInput},
		{"enter my username", KindTextInput},
		{"find the best pizza place nearby", KindComplex},
		{"search for golang tutorials", KindComplex},
		{"fill out the registration form", KindComplex},
		{"do the thing", KindUnknown},
	}
	for _, c := range cases {
		if got := ClassifyQuery(c.query); got != c.want {
			t.Errorf("ClassifyQuery(%q) = %v, want %v", c.query, got, c.want)
		}
	}
}

func TestClassifyQuery_TextInputWinsOverSimple(t *testing.T) {
	// "enter" (text input) and "press" (simple) both match; text input
	// is the more specific intent.
	if got := ClassifyQuery("press tab then enter the code"); got != KindTextInput {
		t.Errorf("got %v, want KindTextInput", got)
	}
}

func TestChooseMode(t *testing.T) {
	cases := []struct {
		name string
		in   PolicyInput
		want Mode
	}{
		{
			name: "force refresh with target",
			in:   PolicyInput{ForceRefresh: true, TargetApp: "Notepad"},
			want: ModePrecise,
		},
		{
			name: "force refresh without target",
			in:   PolicyInput{ForceRefresh: true},
			want: ModeFull,
		},
		{
			name: "fresh snapshot wins over everything but force",
			in: PolicyInput{Query: "type something", HasSnapshot: true,
				CacheAge: time.Second, CacheTimeout: 3 * time.Second},
			want: ModeCached,
		},
		{
			name: "stale snapshot falls through",
			in: PolicyInput{Query: "click ok", TargetApp: "Notepad", HasSnapshot: true,
				CacheAge: 5 * time.Second, CacheTimeout: 3 * time.Second},
			want: ModePrecise,
		},
		{
			name: "text input goes focused",
			in:   PolicyInput{Query: "type the password"},
			want: ModeFocused,
		},
		{
			name: "complex goes ranked",
			in:   PolicyInput{Query: "find the cheapest flight"},
			want: ModeRanked,
		},
		{
			name: "simple action without target goes full",
			in:   PolicyInput{Query: "click save"},
			want: ModeFull,
		},
		{
			name: "unknown with target goes precise",
			in:   PolicyInput{Query: "do it", TargetApp: "Calculator"},
			want: ModePrecise,
		},
	}
	for _, c := range cases {
		if got := ChooseMode(c.in); got != c.want {
			t.Errorf("%s: ChooseMode = %v, want %v", c.name, got, c.want)
		}
	}
}
