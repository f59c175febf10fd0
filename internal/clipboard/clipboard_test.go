package clipboard

import (
	"errors"
	"testing"
)

func TestCleanVector(t *testing.T) {
	tests := []struct {
		in, want string
		ok       bool
	}{
		{"CD", "CD", true},
		{"  bbccsddaanb\n", "BBCCSDDAANB", true},
		{"", "", true},
		{"C D", "", false},
		{"CX", "", false},
	}
	for _, tt := range tests {
		got, err := cleanVector(tt.in)
		if tt.ok {
			if err != nil || got != tt.want {
				t.Errorf("cleanVector(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
			}
			continue
		}
		if !errors.Is(err, ErrNotVector) {
			t.Errorf("cleanVector(%q) error = %v, want ErrNotVector", tt.in, err)
		}
	}
}

func TestWriteVectorRejectsJunk(t *testing.T) {
	if err := WriteVector("hello"); !errors.Is(err, ErrNotVector) {
		t.Fatalf("expected ErrNotVector, got %v", err)
	}
}
