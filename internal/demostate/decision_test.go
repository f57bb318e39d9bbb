package demostate

import (
	"net/url"
	"testing"
)

func TestDecide_NoParams(t *testing.T) {
	d := Decide(url.Values{})
	if d.Mode != ModeNone {
		t.Fatalf("expected ModeNone, got %v", d.Mode)
	}
	if len(d.Strip) != 0 {
		t.Fatalf("expected nothing to strip, got %v", d.Strip)
	}
}

func TestDecide_Enter(t *testing.T) {
	q := url.Values{}
	q.Set("demo", "true")
	q.Set("view", "power") // unrelated params stay untouched

	d := Decide(q)
	if d.Mode != ModeEnter {
		t.Fatalf("expected ModeEnter, got %v", d.Mode)
	}
	if len(d.Strip) != 1 || d.Strip[0] != "demo" {
		t.Fatalf("expected strip [demo], got %v", d.Strip)
	}
}

func TestDecide_Exit(t *testing.T) {
	q := url.Values{}
	q.Set("exitDemo", "true")

	d := Decide(q)
	if d.Mode != ModeExit {
		t.Fatalf("expected ModeExit, got %v", d.Mode)
	}
}

func TestDecide_ExitWinsOverEnter(t *testing.T) {
	q := url.Values{}
	q.Set("demo", "true")
	q.Set("exitDemo", "true")

	d := Decide(q)
	if d.Mode != ModeExit {
		t.Fatalf("exit must win when both params are present, got %v", d.Mode)
	}
	// both params are consumed in one pass
	if len(d.Strip) != 2 {
		t.Fatalf("expected both params stripped, got %v", d.Strip)
	}
}

func TestDecide_NonTruthyIgnored(t *testing.T) {
	for _, val := range []string{"", "1", "false", "TRUE", "yes"} {
		q := url.Values{}
		q.Set("demo", val)
		if d := Decide(q); d.Mode != ModeNone {
			t.Errorf("demo=%q should not activate, got mode %v", val, d.Mode)
		}
	}
}
