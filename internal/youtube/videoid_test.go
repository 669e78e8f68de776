package youtube

import "testing"

func TestResolveVideoID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare id", "dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"bare id with underscore and dash", "a_b-C_d-E_f", "a_b-C_d-E_f"},
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch url with trailing params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=30s", "dQw4w9WgXcQ"},
		{"watch url v not first param", "https://www.youtube.com/watch?t=30s&v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short url", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short url with params", "https://youtu.be/dQw4w9WgXcQ?si=abc123", "dQw4w9WgXcQ"},
		{"embed url", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"legacy v path", "https://www.youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"legacy e path", "https://www.youtube.com/e/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"no scheme", "www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveVideoID(tt.input)
			if err != nil {
				t.Fatalf("ResolveVideoID(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ResolveVideoID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveVideoIDInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"plain text", "not a url"},
		{"empty", ""},
		{"too short id", "abc123"},
		{"unrelated url", "https://example.com/page"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveVideoID(tt.input)
			if err == nil {
				t.Fatalf("ResolveVideoID(%q) expected error", tt.input)
			}
			if !IsKind(err, ErrInvalidVideoID) {
				t.Errorf("ResolveVideoID(%q) error kind = %v, want ErrInvalidVideoID", tt.input, err)
			}
		})
	}
}
