package config

import "testing"

func TestPrefixAndKey(t *testing.T) {
	app := New().Prefix("PEOPLESTATS_")
	if got := app.key("SCRATCH_DIR"); got != "PEOPLESTATS_SCRATCH_DIR" {
		t.Fatalf("key() = %q, want %q", got, "PEOPLESTATS_SCRATCH_DIR")
	}
	nested := app.Prefix("LOAD_")
	if got := nested.key("BUF"); got != "PEOPLESTATS_LOAD_BUF" {
		t.Fatalf("nested key() = %q, want %q", got, "PEOPLESTATS_LOAD_BUF")
	}
}

func TestMayString(t *testing.T) {
	c := New().Prefix("S_")
	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q, want %q", got, "def")
	}
	t.Setenv("S_NAME", " gzoutput ")
	if got := c.MayString("NAME", "x"); got != "gzoutput" {
		t.Fatalf("MayString value = %q, want %q", got, "gzoutput")
	}
	t.Setenv("S_BLANK", "   ")
	if got := c.MayString("BLANK", "def"); got != "def" {
		t.Fatalf("MayString blank = %q, want %q", got, "def")
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("I_")
	if got := c.MayInt("MISSING", 9); got != 9 {
		t.Fatalf("MayInt default = %d, want %d", got, 9)
	}
	t.Setenv("I_OK", " 7 ")
	if got := c.MayInt("OK", 0); got != 7 {
		t.Fatalf("MayInt ok = %d, want %d", got, 7)
	}
	t.Setenv("I_BAD", "x")
	if got := c.MayInt("BAD", 3); got != 3 {
		t.Fatalf("MayInt bad -> default = %d, want %d", got, 3)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("B_")
	if got := c.MayBool("MISSING", true); got != true {
		t.Fatalf("MayBool default true expected")
	}
	t.Setenv("B_F", "false")
	if got := c.MayBool("F", true); got != false {
		t.Fatalf("MayBool false expected")
	}
	t.Setenv("B_BAD", "nope")
	if got := c.MayBool("BAD", true); got != true {
		t.Fatalf("MayBool bad -> default true expected")
	}
}
