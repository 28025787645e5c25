package quiz

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/kerbaras/authorquiz/pkg/data"
)

const (
	minNameLength     = 2
	minImageURLLength = 5
	minTitleLength    = 2
)

var imageURLPattern = regexp.MustCompile(`(?i)^http:`)

// ValidationErrors maps a form field to the problem found with it. Book fields
// are keyed as "books[i]".
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = fmt.Sprintf("%s: %s", field, v[field])
	}
	return "invalid author: " + strings.Join(parts, "; ")
}

// BookField is the ValidationErrors key for the i-th book title.
func BookField(i int) string {
	return fmt.Sprintf("books[%d]", i)
}

// ValidateAuthor checks a submitted author before it reaches the dataset.
// It returns nil or a ValidationErrors.
func ValidateAuthor(author *data.Author) error {
	if author == nil {
		return ValidationErrors{"name": "required"}
	}

	errs := ValidationErrors{}

	name := strings.TrimSpace(author.Name)
	switch {
	case name == "":
		errs["name"] = "required"
	case len([]rune(name)) < minNameLength:
		errs["name"] = fmt.Sprintf("must be at least %d characters", minNameLength)
	}

	url := strings.TrimSpace(author.ImageURL)
	switch {
	case url == "":
		errs["imageUrl"] = "required"
	case len(url) < minImageURLLength:
		errs["imageUrl"] = fmt.Sprintf("must be at least %d characters", minImageURLLength)
	case !imageURLPattern.MatchString(url):
		errs["imageUrl"] = "must start with http:"
	}

	if len(author.Books) == 0 {
		errs["books"] = "at least one book is required"
	}
	for i, title := range author.Books {
		title = strings.TrimSpace(title)
		switch {
		case title == "":
			errs[BookField(i)] = "required"
		case len([]rune(title)) < minTitleLength:
			errs[BookField(i)] = fmt.Sprintf("must be at least %d characters", minTitleLength)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NormalizeAuthor returns a copy of author with surrounding whitespace trimmed.
func NormalizeAuthor(author data.Author) *data.Author {
	books := make([]string, len(author.Books))
	for i, title := range author.Books {
		books[i] = strings.TrimSpace(title)
	}
	return &data.Author{
		Name:        strings.TrimSpace(author.Name),
		ImageURL:    strings.TrimSpace(author.ImageURL),
		ImageSource: strings.TrimSpace(author.ImageSource),
		Books:       books,
	}
}
