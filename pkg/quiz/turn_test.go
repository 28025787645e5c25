package quiz

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/kerbaras/authorquiz/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAuthors() []*data.Author {
	return []*data.Author{
		{Name: "Mark Twain", Books: []string{"The Adventures of Huckleberry Finn"}},
		{Name: "Joseph Conrad", Books: []string{"Heart of Darkness"}},
		{Name: "J.K. Rowling", Books: []string{"Harry Potter and the Sorcerers Stone"}},
		{Name: "Stephen King", Books: []string{"The Shining", "IT"}},
		{Name: "Charles Dickens", Books: []string{"David Copperfield", "A Tale of Two Cities"}},
		{Name: "William Shakespeare", Books: []string{"Hamlet", "Macbeth", "Romeo and Juliet"}},
	}
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// fixedRand never reorders and always picks index pick (clamped).
type fixedRand struct {
	pick int
}

func (f fixedRand) IntN(n int) int {
	return min(f.pick, n-1)
}

func (f fixedRand) Shuffle(n int, swap func(i, j int)) {}

func TestGenerateTurnSingleAuthor(t *testing.T) {
	a := &data.Author{Name: "A", Books: []string{"X"}}

	turn, err := GenerateTurn([]*data.Author{a}, newRand(1))
	require.NoError(t, err)

	assert.Equal(t, []string{"X"}, turn.Books)
	assert.Same(t, a, turn.Author)
	assert.Equal(t, "X", turn.Answer)
}

func TestGenerateTurnSeedDatasetRepeated(t *testing.T) {
	authors := seedAuthors()
	rng := newRand(42)

	for i := 0; i < 1000; i++ {
		turn, err := GenerateTurn(authors, rng)
		require.NoError(t, err)

		require.Len(t, turn.Books, CandidateCount)
		seen := make(map[string]bool)
		for _, title := range turn.Books {
			require.False(t, seen[title], "duplicate title %q in round %d", title, i)
			seen[title] = true
		}

		require.NotNil(t, turn.Author, "round %d has no author", i)
		assert.True(t, turn.Author.Wrote(turn.Answer))
		assert.Contains(t, turn.Books, turn.Answer)
	}
}

func TestGenerateTurnFewerThanFourTitles(t *testing.T) {
	authors := []*data.Author{
		{Name: "A", Books: []string{"X"}},
		{Name: "B", Books: []string{"Y", "Z"}},
	}

	turn, err := GenerateTurn(authors, newRand(7))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"X", "Y", "Z"}, turn.Books)
	assert.NotNil(t, turn.Author)
}

func TestGenerateTurnCandidateLength(t *testing.T) {
	tests := []struct {
		name    string
		authors []*data.Author
		want    int
	}{
		{
			name:    "one title",
			authors: []*data.Author{{Name: "A", Books: []string{"X"}}},
			want:    1,
		},
		{
			name: "exactly four",
			authors: []*data.Author{
				{Name: "A", Books: []string{"W", "X"}},
				{Name: "B", Books: []string{"Y", "Z"}},
			},
			want: 4,
		},
		{
			name:    "seed dataset",
			authors: seedAuthors(),
			want:    4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			turn, err := GenerateTurn(tt.authors, newRand(3))
			require.NoError(t, err)
			assert.Len(t, turn.Books, tt.want)
		})
	}
}

func TestGenerateTurnDeterministicForSeed(t *testing.T) {
	first, err := GenerateTurn(seedAuthors(), newRand(99))
	require.NoError(t, err)

	second, err := GenerateTurn(seedAuthors(), newRand(99))
	require.NoError(t, err)

	assert.Equal(t, first.Books, second.Books)
	assert.Equal(t, first.Answer, second.Answer)
	assert.Equal(t, first.Author.Name, second.Author.Name)
}

func TestGenerateTurnDoesNotMutateDataset(t *testing.T) {
	authors := seedAuthors()
	snapshot := make([][]string, len(authors))
	for i, a := range authors {
		snapshot[i] = append([]string(nil), a.Books...)
	}

	_, err := GenerateTurn(authors, newRand(5))
	require.NoError(t, err)

	for i, a := range authors {
		assert.Equal(t, snapshot[i], a.Books)
	}
}

func TestGenerateTurnSharedTitlePicksFirstAuthor(t *testing.T) {
	first := &data.Author{Name: "First", Books: []string{"Shared"}}
	second := &data.Author{Name: "Second", Books: []string{"Shared", "Other"}}

	turn, err := GenerateTurn([]*data.Author{first, second}, fixedRand{pick: 0})
	require.NoError(t, err)

	assert.Equal(t, []string{"Shared", "Other"}, turn.Books)
	assert.Equal(t, "Shared", turn.Answer)
	assert.Same(t, first, turn.Author)
}

func TestGenerateTurnErrors(t *testing.T) {
	tests := []struct {
		name    string
		authors []*data.Author
		want    error
	}{
		{name: "nil dataset", authors: nil, want: ErrEmptyDataset},
		{name: "empty dataset", authors: []*data.Author{}, want: ErrEmptyDataset},
		{
			name: "author without books",
			authors: []*data.Author{
				{Name: "A", Books: []string{"X"}},
				{Name: "B"},
			},
			want: ErrAuthorWithoutBooks,
		},
		{name: "nil author", authors: []*data.Author{nil}, want: ErrAuthorWithoutBooks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			turn, err := GenerateTurn(tt.authors, newRand(1))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.True(t, errors.Is(err, ErrNoTurn))
			assert.Nil(t, turn.Author)
			assert.Empty(t, turn.Books)
		})
	}
}

func TestFindAuthor(t *testing.T) {
	authors := seedAuthors()

	assert.Equal(t, "William Shakespeare", FindAuthor(authors, "Macbeth").Name)
	assert.Equal(t, "Stephen King", FindAuthor(authors, "IT").Name)
	assert.Nil(t, FindAuthor(authors, "Ulysses"))
	assert.Nil(t, FindAuthor(nil, "IT"))
}
