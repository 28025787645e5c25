package integrations

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/kerbaras/authorquiz/pkg/quiz"
)

// BookletBuilder writes generated rounds into a printable EPUB quiz.
type BookletBuilder struct {
	outputDir string
	imageDir  string
	title     string
}

func NewBookletBuilder(outputDir, imageDir string) *BookletBuilder {
	return &BookletBuilder{
		outputDir: outputDir,
		imageDir:  imageDir,
		title:     "Author Quiz",
	}
}

// CreateBooklet writes one section per round followed by an answer key and
// returns the path of the EPUB written to filename inside the output directory.
func (b *BookletBuilder) CreateBooklet(rounds []quiz.TurnData, filename string) (string, error) {
	if len(rounds) == 0 {
		return "", fmt.Errorf("no rounds to compile")
	}

	if err := os.MkdirAll(b.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	e, err := epub.NewEpub(b.title)
	if err != nil {
		return "", fmt.Errorf("failed to create EPub: %w", err)
	}

	e.SetAuthor("Author Quiz")
	e.SetDescription("Select the book written by the author shown")
	e.SetLang("en")

	for i, round := range rounds {
		if err := b.addRound(e, i+1, round); err != nil {
			return "", fmt.Errorf("failed to add round %d: %w", i+1, err)
		}
	}

	if _, err := e.AddSection(answerKey(rounds), "Answers", "", ""); err != nil {
		return "", fmt.Errorf("failed to add answer key: %w", err)
	}

	if filename == "" {
		filename = sanitizeFilename(b.title) + ".epub"
	}
	outputPath := filepath.Join(b.outputDir, sanitizeFilename(filename))

	if err := e.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPub: %w", err)
	}

	return outputPath, nil
}

func (b *BookletBuilder) addRound(e *epub.Epub, number int, round quiz.TurnData) error {
	title := fmt.Sprintf("Round %d", number)

	var body strings.Builder
	body.WriteString(fmt.Sprintf("<h1>%s</h1>\n", title))

	if round.Author != nil {
		// Portraits are optional in the booklet; a missing or remote image is skipped.
		if path, ok := LocalImagePath(b.imageDir, round.Author.ImageURL); ok {
			internal, err := e.AddImage(path, "")
			if err == nil {
				body.WriteString(fmt.Sprintf(`<div class="portrait"><img src="%s" alt="Author"/></div>`+"\n", internal))
			}
		}
		body.WriteString(fmt.Sprintf("<p>Which book did <strong>%s</strong> write?</p>\n", html.EscapeString(round.Author.Name)))
	}

	body.WriteString("<ol type=\"A\">\n")
	for _, book := range round.Books {
		body.WriteString(fmt.Sprintf("<li>%s</li>\n", html.EscapeString(book)))
	}
	body.WriteString("</ol>\n")

	_, err := e.AddSection(body.String(), title, "", "")
	return err
}

func answerKey(rounds []quiz.TurnData) string {
	var body strings.Builder
	body.WriteString("<h1>Answers</h1>\n<ol>\n")
	for _, round := range rounds {
		letter := 'A'
		for i, book := range round.Books {
			if book == round.Answer {
				letter = rune('A' + i)
				break
			}
		}
		body.WriteString(fmt.Sprintf("<li>%c. %s</li>\n", letter, html.EscapeString(round.Answer)))
	}
	body.WriteString("</ol>\n")
	return body.String()
}

// LocalImagePath resolves a portrait reference to a readable local file.
// Remote URLs are never fetched.
func LocalImagePath(imageDir, ref string) (string, bool) {
	if ref == "" || strings.Contains(ref, "://") || strings.HasPrefix(strings.ToLower(ref), "http:") {
		return "", false
	}

	path := ref
	if !filepath.IsAbs(path) {
		path = filepath.Join(imageDir, ref)
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}

// sanitizeFilename removes characters that are invalid in filenames
func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	result = strings.Trim(result, ".")
	return result
}
