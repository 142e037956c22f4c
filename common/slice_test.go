package common

import (
	"testing"
)

func TestContainString(t *testing.T) {
	index, ok := ContainString([]string{"a", "b", "c"}, "b")
	if !ok || index != 1 {
		t.Fatal("case 1 not match with expect", index, ok)
	}
	if _, ok := ContainString([]string{"a", "b", "c"}, "d"); ok {
		t.Fatal("case 2 success not match with expect")
	}
	if _, ok := ContainString(nil, "a"); ok {
		t.Fatal("case 3 success not match with expect")
	}
}

func TestAddIfNotContain(t *testing.T) {
	sl, ok := AddIfNotContain([]string{"a"}, "b")
	if !ok || len(sl) != 2 {
		t.Fatal("case 1 not match with expect", ok, len(sl))
	}
	if _, ok := AddIfNotContain(sl, "a"); ok {
		t.Fatal("case 2 success not match with expect")
	}
	if _, ok := AddIfNotContain(sl, ""); ok {
		t.Fatal("case 3 success not match with expect")
	}
}

func TestRemoveIfContain(t *testing.T) {
	if _, ok := RemoveIfContain([]string{"", "b", ""}, "a"); ok {
		t.Fatal("case 1 success not match with expect")
	}
	if _, ok := RemoveIfContain([]string{}, ""); ok {
		t.Fatal("case 2 success not match with expect")
	}
	sl, ok := RemoveIfContain([]string{"a", "b", "c"}, "c")
	if !ok || len(sl) != 2 {
		t.Fatal("case 3 not match with expect", ok, len(sl))
	}
	if sl, ok := RemoveIfContain([]string{"a", "a", "b"}, "a"); !ok || len(sl) != 2 {
		t.Fatal("case 4 not match with expect", ok, len(sl))
	}
}
