package main

import "testing"

func TestSplitList(t *testing.T) {
	got := splitList("one, two,,three ,")
	if len(got) != 3 || got[0] != "one" || got[1] != "two" || got[2] != "three" {
		t.Fatalf("unexpected parts: %+v", got)
	}
	if got := splitList(""); len(got) != 0 {
		t.Fatalf("expected no parts for empty input, got %+v", got)
	}
}
