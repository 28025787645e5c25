package quiz

import (
	"testing"

	"github.com/kerbaras/authorquiz/pkg/data"
)

func TestScore(t *testing.T) {
	turn := TurnData{
		Books:  []string{"X", "Y"},
		Author: &data.Author{Books: []string{"X"}},
	}

	tests := []struct {
		answer string
		want   Highlight
	}{
		{"X", HighlightCorrect},
		{"Y", HighlightWrong},
		{"Z", HighlightWrong},
		{"", HighlightWrong},
	}

	for _, tt := range tests {
		got, ok := Score(turn, tt.answer)
		if !ok {
			t.Errorf("Score(%q) was not scored", tt.answer)
		}
		if got != tt.want {
			t.Errorf("Score(%q) = %q, want %q", tt.answer, got, tt.want)
		}
	}
}

func TestScoreEveryAuthorBookIsCorrect(t *testing.T) {
	author := &data.Author{Name: "William Shakespeare", Books: []string{"Hamlet", "Macbeth", "Romeo and Juliet"}}
	turn := TurnData{Books: []string{"Hamlet", "IT", "Heart of Darkness", "Emma"}, Author: author}

	for _, title := range author.Books {
		if got, _ := Score(turn, title); got != HighlightCorrect {
			t.Errorf("Score(%q) = %q, want correct", title, got)
		}
	}
}

func TestScoreWithoutAuthor(t *testing.T) {
	turn := TurnData{Books: []string{"X"}}

	got, ok := Score(turn, "X")
	if ok {
		t.Error("Expected turn without author not to be scored")
	}
	if got != HighlightNone {
		t.Errorf("Expected no highlight, got %q", got)
	}
}

func TestScoreIsIdempotent(t *testing.T) {
	turn := TurnData{
		Books:  []string{"X", "Y"},
		Author: &data.Author{Books: []string{"X"}},
	}

	first, _ := Score(turn, "Y")
	second, _ := Score(turn, "Y")
	if first != second {
		t.Errorf("Expected same result twice, got %q then %q", first, second)
	}
	if len(turn.Books) != 2 || len(turn.Author.Books) != 1 {
		t.Error("Score must not modify the turn")
	}
}

func TestHighlightString(t *testing.T) {
	if HighlightNone.String() != "none" {
		t.Errorf("Expected 'none', got %q", HighlightNone.String())
	}
	if HighlightCorrect.String() != "correct" {
		t.Errorf("Expected 'correct', got %q", HighlightCorrect.String())
	}
}
