package quiz

import (
	"errors"
	"fmt"

	"github.com/kerbaras/authorquiz/pkg/data"
)

// CandidateCount is the number of titles offered in a round.
const CandidateCount = 4

var (
	ErrNoTurn             = errors.New("no turn available")
	ErrEmptyDataset       = fmt.Errorf("%w: dataset has no authors", ErrNoTurn)
	ErrAuthorWithoutBooks = fmt.Errorf("%w: author has no books", ErrNoTurn)
)

// Rand is the random source used for turn generation. *math/rand/v2.Rand
// satisfies it.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// TurnData is one round of the quiz. Author is nil when the sampled answer
// could not be matched back to an author.
type TurnData struct {
	Books  []string
	Author *data.Author
	Answer string
}

// GenerateTurn builds a round from authors: it shuffles every known title,
// keeps up to CandidateCount of them, picks one as the answer and attaches the
// first author (in dataset order) that wrote it.
func GenerateTurn(authors []*data.Author, rng Rand) (TurnData, error) {
	if len(authors) == 0 {
		return TurnData{}, ErrEmptyDataset
	}

	pool, err := bookPool(authors)
	if err != nil {
		return TurnData{}, err
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	books := pool[:min(CandidateCount, len(pool))]
	answer := books[rng.IntN(len(books))]

	return TurnData{
		Books:  books,
		Author: FindAuthor(authors, answer),
		Answer: answer,
	}, nil
}

// FindAuthor returns the first author in authors that wrote title, or nil.
func FindAuthor(authors []*data.Author, title string) *data.Author {
	for _, author := range authors {
		if author != nil && author.Wrote(title) {
			return author
		}
	}
	return nil
}

// bookPool flattens every title into a fresh slice. A title listed by more than
// one author appears once.
func bookPool(authors []*data.Author) ([]string, error) {
	seen := make(map[string]bool)
	var pool []string

	for i, author := range authors {
		if author == nil || len(author.Books) == 0 {
			return nil, fmt.Errorf("%w (position %d)", ErrAuthorWithoutBooks, i)
		}
		for _, title := range author.Books {
			if seen[title] {
				continue
			}
			seen[title] = true
			pool = append(pool, title)
		}
	}

	return pool, nil
}
