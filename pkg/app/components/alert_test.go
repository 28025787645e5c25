package components

import (
	"strings"
	"testing"
)

func TestAlert(t *testing.T) {
	tests := []struct {
		highlight string
		want      string
	}{
		{"correct", "You chose the right answer"},
		{"wrong", "You chose wrong answer"},
	}

	for _, tt := range tests {
		view := Alert(tt.highlight, 60)
		if !strings.Contains(view, tt.want) {
			t.Errorf("Alert(%q) missing %q", tt.highlight, tt.want)
		}
	}
}

func TestAlertNone(t *testing.T) {
	if view := Alert("", 60); view != "" {
		t.Errorf("Expected no alert before scoring, got %q", view)
	}
}
