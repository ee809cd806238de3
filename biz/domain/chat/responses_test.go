package chat

import "testing"

func TestRespond(t *testing.T) {
	tests := []struct {
		name          string
		msg           string
		wantTechnique string
	}{
		{"anxiety topic", "I feel so anxious about tomorrow", "grounding"},
		{"low mood topic", "everything feels hopeless", "cognitive-reframing"},
		{"sleep topic", "I barely sleep these days", "behavioral-activation"},
		{"positive feedback", "thanks, that was helpful", "affirmation"},
		{"case insensitive", "ANXIETY is back", "grounding"},
		{"no keyword", "let me tell you about my week", "active-listening"},
		{"empty", "", "active-listening"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := respond(tt.msg)
			if r.technique != tt.wantTechnique {
				t.Errorf("respond(%q).technique = %q, want %q", tt.msg, r.technique, tt.wantTechnique)
			}
			if r.content == "" {
				t.Error("empty reply content")
			}
		})
	}
}
