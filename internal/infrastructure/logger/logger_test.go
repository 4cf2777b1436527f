package logger

import "testing"

func TestNew(t *testing.T) {
	for _, env := range []string{"", "production", "development", " LOCAL "} {
		l, err := New(env)
		if err != nil {
			t.Fatalf("env %q: unexpected error: %v", env, err)
		}
		if l == nil {
			t.Fatalf("env %q: expected logger", env)
		}
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatalf("expected nop logger")
	}
}
