package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aliskhannn/wordly/assets"
	"github.com/aliskhannn/wordly/internal/domain/entities"
)

var ErrEmptyDataset = errors.New("word dataset is empty")

// WordRepository provides read access to the word catalogue.
// The catalogue is loaded once and returned as copies so callers may
// mutate mastery freely.
type WordRepository struct {
	words []*entities.Word
	byID  map[string]*entities.Word // duplicate detection
}

// NewWordRepository loads words from path. An empty path uses the bundled
// dataset; .xlsx and .csv files go through the importer.
func NewWordRepository(path string) (*WordRepository, error) {
	words, err := loadWords(path)
	if err != nil {
		return nil, err
	}
	return NewWordRepositoryFromWords(words)
}

// NewWordRepositoryFromWords builds a repository from already parsed words.
func NewWordRepositoryFromWords(words []*entities.Word) (*WordRepository, error) {
	if len(words) == 0 {
		return nil, ErrEmptyDataset
	}

	r := &WordRepository{
		words: make([]*entities.Word, 0, len(words)),
		byID:  make(map[string]*entities.Word, len(words)),
	}
	for i, w := range words {
		if err := normalizeWord(w); err != nil {
			return nil, fmt.Errorf("word %d: %w", i+1, err)
		}
		if _, ok := r.byID[w.ID]; ok {
			return nil, fmt.Errorf("word %d: duplicate word %q in %s", i+1, w.Term, w.Category)
		}
		r.byID[w.ID] = w
		r.words = append(r.words, w)
	}

	return r, nil
}

// GetAll returns every word in dataset order.
func (r *WordRepository) GetAll() []*entities.Word {
	return cloneWords(r.words, nil)
}

// GetByCategories returns the words of the given categories in dataset order.
func (r *WordRepository) GetByCategories(categories []entities.Category) []*entities.Word {
	selected := make(map[entities.Category]bool, len(categories))
	for _, c := range categories {
		selected[c] = true
	}
	return cloneWords(r.words, func(w *entities.Word) bool {
		return selected[w.Category]
	})
}

// Count returns the number of words.
func (r *WordRepository) Count() int {
	return len(r.words)
}

func cloneWords(words []*entities.Word, keep func(*entities.Word) bool) []*entities.Word {
	out := make([]*entities.Word, 0, len(words))
	for _, w := range words {
		if keep == nil || keep(w) {
			out = append(out, w.Clone())
		}
	}
	return out
}

type wordsFile struct {
	Words []*entities.Word `json:"words"`
}

// WriteJSON writes words in the dataset format.
func WriteJSON(w io.Writer, words []*entities.Word) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(wordsFile{Words: words}); err != nil {
		return fmt.Errorf("encode words: %w", err)
	}
	return nil
}

func loadWords(path string) ([]*entities.Word, error) {
	if strings.TrimSpace(path) == "" {
		return parseWordsJSON(assets.Words)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".csv":
		result, err := ImportWords(DefaultImportConfig(path))
		if err != nil {
			return nil, err
		}
		if len(result.Errors) > 0 {
			return nil, fmt.Errorf("%s has %d invalid rows, first: %s", path, len(result.Errors), result.Errors[0])
		}
		return result.Words, nil
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read words file: %w", err)
		}
		return parseWordsJSON(data)
	}
}

func parseWordsJSON(data []byte) ([]*entities.Word, error) {
	var file wordsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal words JSON: %w", err)
	}
	if len(file.Words) == 0 {
		return nil, ErrEmptyDataset
	}
	return file.Words, nil
}

// normalizeWord trims fields, resolves the category and assigns the id.
func normalizeWord(w *entities.Word) error {
	if w == nil {
		return fmt.Errorf("word is empty")
	}

	w.Term = strings.TrimSpace(w.Term)
	w.Pronunciation = strings.TrimSpace(w.Pronunciation)
	w.PartOfSpeech = strings.TrimSpace(w.PartOfSpeech)
	w.Definition = strings.TrimSpace(w.Definition)
	w.Example = strings.TrimSpace(w.Example)

	if w.Term == "" {
		return fmt.Errorf("term is required")
	}
	if w.Definition == "" {
		return fmt.Errorf("definition of %q is required", w.Term)
	}

	if strings.TrimSpace(string(w.Category)) == "" {
		w.Category = entities.DefaultCategory
	} else {
		c, err := entities.ParseCategory(string(w.Category))
		if err != nil {
			return err
		}
		w.Category = c
	}

	if w.ID == "" {
		w.ID = entities.WordID(w.Category, w.Term)
	}
	w.Mastery = entities.MasteryNew
	return nil
}
