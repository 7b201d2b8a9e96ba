package mergeop

import "testing"

func TestSplitKey(t *testing.T) {
	tests := []struct {
		in  string
		key string
		op  Op
	}{
		{"a", "a", OpMerge},
		{"a!", "a", OpForce},
		{"a?", "a", OpDefault},
		{"a!?", "a!", OpDefault},
		{"a?!", "a?", OpForce},
		{"!", "", OpForce},
		{"", "", OpMerge},
	}
	for _, tt := range tests {
		key, op := SplitKey(tt.in)
		if key != tt.key || op != tt.op {
			t.Errorf("SplitKey(%q) = %q, %s; want %q, %s", tt.in, key, op, tt.key, tt.op)
		}
	}
}
