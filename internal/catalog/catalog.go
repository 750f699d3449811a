package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Size is the number of questions a catalog must hold: one per board cell.
const Size = 25

// Question is a single bingo prompt. The ID is stable across edits of the
// catalog file; Text is what the board displays and persists.
type Question struct {
	ID   int    `toml:"id"`
	Text string `toml:"text"`
}

// Catalog is the fixed, ordered set of 25 questions. Order is significant:
// index = row*5 + col defines the grid position.
type Catalog struct {
	questions []Question
}

// Load reads a catalog override from path. A missing file is not an error:
// the built-in default catalog is returned. A file that exists but does not
// parse, or that does not contain exactly 25 well-formed questions, is an
// error — the catalog is static operator-provided input, and a bad override
// should fail loudly at startup rather than degrade.
func Load(path string) (Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}

	var raw struct {
		Questions []Question `toml:"questions"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}

	cat, err := New(raw.Questions)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// New validates a question list and wraps it in a Catalog.
func New(questions []Question) (Catalog, error) {
	if len(questions) != Size {
		return Catalog{}, fmt.Errorf("want %d questions, got %d", Size, len(questions))
	}

	seen := make(map[int]bool, Size)
	for i, q := range questions {
		if strings.TrimSpace(q.Text) == "" {
			return Catalog{}, fmt.Errorf("question %d has empty text", i)
		}
		if seen[q.ID] {
			return Catalog{}, fmt.Errorf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true
	}

	out := make([]Question, Size)
	copy(out, questions)
	return Catalog{questions: out}, nil
}

// Questions returns the questions in catalog order.
func (c Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// Texts returns the flattened question-text sequence in catalog order.
func (c Catalog) Texts() []string {
	out := make([]string, len(c.questions))
	for i, q := range c.questions {
		out[i] = q.Text
	}
	return out
}

// At returns the question at the given catalog index (0..24).
func (c Catalog) At(index int) Question {
	return c.questions[index]
}

// Len reports the number of questions. Always Size for a valid catalog.
func (c Catalog) Len() int {
	return len(c.questions)
}
