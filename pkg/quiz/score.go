package quiz

// Highlight is the feedback shown after an answer is scored.
type Highlight string

const (
	HighlightNone    Highlight = ""
	HighlightCorrect Highlight = "correct"
	HighlightWrong   Highlight = "wrong"
)

func (h Highlight) String() string {
	if h == HighlightNone {
		return "none"
	}
	return string(h)
}

// Score grades answer against turn. An empty answer means nothing was selected
// and grades as wrong. When the turn has no author nothing is scored and ok is
// false.
func Score(turn TurnData, answer string) (highlight Highlight, ok bool) {
	if turn.Author == nil {
		return HighlightNone, false
	}
	if answer != "" && turn.Author.Wrote(answer) {
		return HighlightCorrect, true
	}
	return HighlightWrong, true
}
