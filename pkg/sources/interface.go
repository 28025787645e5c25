package sources

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/kerbaras/authorquiz/pkg/data"
)

// Source supplies the authors a quiz starts with.
type Source interface {
	Load() ([]*data.Author, error)
}

//go:embed seed/authors.json
var seedFS embed.FS

type document struct {
	Authors []*data.Author `json:"authors"`
}

// Embedded is the built-in seed dataset.
type Embedded struct{}

func NewEmbedded() *Embedded {
	return &Embedded{}
}

func (Embedded) Load() ([]*data.Author, error) {
	raw, err := seedFS.ReadFile("seed/authors.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read seed dataset: %w", err)
	}
	return decode(raw)
}

// File loads authors from a JSON document shaped like the embedded seed.
type File struct {
	Path string
}

func NewFile(path string) *File {
	return &File{Path: path}
}

func (f *File) Load() ([]*data.Author, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read authors file: %w", err)
	}

	authors, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}
	return authors, nil
}

// New returns the file source for path, or the embedded seed when path is empty.
func New(path string) Source {
	if path == "" {
		return NewEmbedded()
	}
	return NewFile(path)
}

func decode(raw []byte) ([]*data.Author, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal authors JSON: %w", err)
	}

	if len(doc.Authors) == 0 {
		return nil, fmt.Errorf("no authors found")
	}

	for i, author := range doc.Authors {
		if author == nil || strings.TrimSpace(author.Name) == "" {
			return nil, fmt.Errorf("author %d: missing name", i)
		}
		if len(author.Books) == 0 {
			return nil, fmt.Errorf("author %q: no books", author.Name)
		}
	}

	return doc.Authors, nil
}
