package fixtures

import "testing"

func TestHello(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"with name", "Alice", "Hello, Alice!"},
		{"default subject", "World", "Hello, World!"},
		{"empty name passes through", "", "Hello, !"},
		{"whitespace kept verbatim", "  Bob  ", "Hello,   Bob  !"},
		{"non-ascii name", "wörld", "Hello, wörld!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hello(tt.input); got != tt.expected {
				t.Errorf("Hello(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"no args", nil, "Hello, World!"},
		{"empty slice", []string{}, "Hello, World!"},
		{"single arg", []string{"Alice"}, "Hello, Alice!"},
		{"extra args ignored", []string{"Alice", "extra", "ignored"}, "Hello, Alice!"},
		{"empty-string name not defaulted", []string{""}, "Hello, !"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Run(tt.args...); got != tt.expected {
				t.Errorf("Run(%v) = %q, want %q", tt.args, got, tt.expected)
			}
		})
	}
}

func TestRunNoArgumentForm(t *testing.T) {
	if got := Run(); got != "Hello, World!" {
		t.Errorf("Run() = %q, want %q", got, "Hello, World!")
	}
}

func TestRunDeterministic(t *testing.T) {
	first := Run("Ada")
	for i := 0; i < 100; i++ {
		if got := Run("Ada"); got != first {
			t.Fatalf("call %d returned %q, first call returned %q", i, got, first)
		}
	}
}
