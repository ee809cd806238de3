package risk

import (
	"errors"
	"testing"

	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
)

func TestFromAssessment(t *testing.T) {
	tests := []struct {
		name     string
		rawScore int64
		want     Level
	}{
		{"negative score", -1, LevelNone},
		{"zero", 0, LevelNone},
		{"below low threshold", 10, LevelNone},
		{"low boundary", 11, LevelLow},
		{"medium boundary", 17, LevelMedium},
		{"high boundary", 22, LevelHigh},
		{"severe phq9", 25, LevelHigh},
		{"phq9 max", 27, LevelHigh},
		{"gad7 severe stays below high", 20, LevelMedium},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromAssessment(tt.rawScore); got != tt.want {
				t.Errorf("FromAssessment(%d) = %d, want %d", tt.rawScore, got, tt.want)
			}
		})
	}
}

func TestFromText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Level
	}{
		{"plain text", "I had a good day at work", LevelNone},
		{"keyword alone", "suicide", LevelHigh},
		{"keyword in sentence", "sometimes I think about suicide", LevelHigh},
		{"multi word keyword", "I want to end my life", LevelHigh},
		{"hyphenated keyword", "struggling with self-harm again", LevelHigh},
		{"case sensitive", "Suicide prevention hotline", LevelNone},
		{"empty", "", LevelNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromText(tt.text); got != tt.want {
				t.Errorf("FromText(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestFromLabel(t *testing.T) {
	tests := []struct {
		label string
		want  Level
	}{
		{"low", LevelLow},
		{"medium", LevelMedium},
		{"high", LevelHigh},
	}
	for _, tt := range tests {
		got, err := FromLabel(tt.label)
		if err != nil {
			t.Fatalf("FromLabel(%q) err = %v", tt.label, err)
		}
		if got != tt.want {
			t.Errorf("FromLabel(%q) = %d, want %d", tt.label, got, tt.want)
		}
	}
}

func TestFromLabelUnknown(t *testing.T) {
	for _, label := range []string{"", "critical", "HIGH", "none"} {
		if _, err := FromLabel(label); !errors.Is(err, consts.ErrInvalidInput) {
			t.Errorf("FromLabel(%q) err = %v, want ErrInvalidInput", label, err)
		}
	}
}
