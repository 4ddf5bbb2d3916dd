package teamdict

import "testing"

func TestResolve_FirstMatchWins(t *testing.T) {
	t.Parallel()

	d := New([]Entry{
		{Player: "virat", Team: "India"},
		{Player: "vir", Team: "Overlap"}, // overlapping key, later position loses
		{Player: "babar", Team: "Pakistan"},
	})

	got := d.Resolve([]string{"Virat (b Shaheen)", "Someone"})
	if got != "India" {
		t.Fatalf("got %q want India", got)
	}
}

func TestResolve_CaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()

	d := New([]Entry{{Player: "de kock", Team: "South Africa"}})
	if got := d.Resolve([]string{"Quinton DE KOCK not out"}); got != "South Africa" {
		t.Fatalf("got %q want South Africa", got)
	}
}

func TestResolve_UnknownTeamSentinel(t *testing.T) {
	t.Parallel()

	d := Default()
	if got := d.Resolve([]string{"Totally Unknown Player"}); got != UnknownTeam {
		t.Fatalf("got %q want %q", got, UnknownTeam)
	}
	if got := d.Resolve(nil); got != UnknownTeam {
		t.Fatalf("empty names: got %q want %q", got, UnknownTeam)
	}
}

func TestDefault_ContainsShippedMapping(t *testing.T) {
	t.Parallel()

	d := Default()
	if got := d.Resolve([]string{"Babar Azam"}); got != "Pakistan" {
		t.Fatalf("babar: got %q want Pakistan", got)
	}
	if got := d.Resolve([]string{"Rohit Sharma"}); got != "India" {
		t.Fatalf("rohit: got %q want India", got)
	}
}

func TestParseSerialized(t *testing.T) {
	t.Parallel()

	d := ParseSerialized("India::virat,rohit;;Pakistan::babar;;Empty::;;garbage-no-sep")
	if d.Len() != 3 {
		t.Fatalf("entries: got %d want 3", d.Len())
	}
	if got := d.Resolve([]string{"babar"}); got != "Pakistan" {
		t.Fatalf("got %q want Pakistan", got)
	}
	if got := d.Resolve([]string{"rohit"}); got != "India" {
		t.Fatalf("got %q want India", got)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	t.Parallel()

	in := "India::virat,rohit;;Pakistan::babar"
	d := ParseSerialized(in)
	if got := d.Serialize(); got != in {
		t.Fatalf("round trip: got %q want %q", got, in)
	}
}
