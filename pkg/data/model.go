package data

import "slices"

type Author struct {
	Name        string   `json:"name"`
	ImageURL    string   `json:"imageUrl"`
	ImageSource string   `json:"imageSource"`
	Books       []string `json:"books"`
}

// Wrote reports whether title is one of the author's books.
func (a *Author) Wrote(title string) bool {
	return slices.Contains(a.Books, title)
}

// Store holds the authors available for quiz generation. Implementations keep
// insertion order.
type Store interface {
	Authors() ([]*Author, error)
	AddAuthor(author *Author) error
	Close() error
}

// Dataset is the in-memory, append-only list of authors. Authors are handed out
// by pointer, so a turn can refer back to the exact record it was built from.
type Dataset struct {
	authors []*Author
}

func NewDataset(authors ...*Author) *Dataset {
	return &Dataset{authors: slices.Clone(authors)}
}

// Add appends author as the last element. Names are not required to be unique.
func (d *Dataset) Add(author *Author) {
	d.authors = append(d.authors, author)
}

func (d *Dataset) Len() int {
	return len(d.authors)
}

// List returns a copy of the author slice; the records themselves are shared.
func (d *Dataset) List() []*Author {
	return slices.Clone(d.authors)
}

func (d *Dataset) Authors() ([]*Author, error) {
	return d.List(), nil
}

func (d *Dataset) AddAuthor(author *Author) error {
	d.Add(author)
	return nil
}

func (d *Dataset) Close() error {
	return nil
}
