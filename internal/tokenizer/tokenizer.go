// Package tokenizer turns text into the integer sequences the sentiment
// model was trained on.
//
// The artifact is the JSON produced by a fitted Keras Tokenizer's to_json().
// A bare {"word": index} object is also accepted and uses Keras defaults for
// everything else.
package tokenizer

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

const defaultFilters = "!\"#$%&()*+,-./:;<=>?@[\\]^_`{|}~\t\n"

// Tokenizer is immutable after Load and safe for concurrent use.
type Tokenizer struct {
	wordIndex map[string]int
	numWords  int
	oovIndex  int
	hasOOV    bool
	filters   map[rune]struct{}
	lower     bool
	split     string
	charLevel bool
}

// Load reads and parses the tokenizer artifact at path.
func Load(path string) (*Tokenizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tokenizer: %w", err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tokenizer %s: %w", path, err)
	}

	slog.Info("[Tokenizer] Tokenizer loaded",
		slog.String("path", path),
		slog.Int("vocabulary", len(t.wordIndex)),
		slog.Int("num_words", t.numWords),
		slog.Bool("oov", t.hasOOV))
	return t, nil
}

func Parse(data []byte) (*Tokenizer, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("tokenizer artifact is not valid JSON")
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, errors.New("tokenizer artifact must be a JSON object")
	}

	cfg := doc.Get("config")
	wordIndexRaw := cfg.Get("word_index")
	if !cfg.Exists() {
		// bare word index
		cfg = gjson.Result{}
		wordIndexRaw = doc
	}

	wordIndex, err := parseWordIndex(wordIndexRaw)
	if err != nil {
		return nil, err
	}

	t := &Tokenizer{
		wordIndex: wordIndex,
		numWords:  int(cfg.Get("num_words").Int()),
		filters:   runeSet(defaultFilters),
		lower:     true,
		split:     " ",
		charLevel: cfg.Get("char_level").Bool(),
	}

	if f := cfg.Get("filters"); f.Exists() && f.Type == gjson.String {
		t.filters = runeSet(f.String())
	}
	if l := cfg.Get("lower"); l.Exists() && l.Type != gjson.Null {
		t.lower = l.Bool()
	}
	if s := cfg.Get("split"); s.Exists() && s.Type == gjson.String {
		if s.String() == "" {
			return nil, errors.New("tokenizer split must not be empty")
		}
		t.split = s.String()
	}
	if oov := cfg.Get("oov_token"); oov.Exists() && oov.Type == gjson.String {
		t.oovIndex, t.hasOOV = wordIndex[oov.String()]
	}

	return t, nil
}

// word_index is a JSON-encoded string inside to_json() output, but accept a
// nested object too.
func parseWordIndex(raw gjson.Result) (map[string]int, error) {
	if raw.Type == gjson.String {
		if !gjson.Valid(raw.String()) {
			return nil, errors.New("word_index is not valid JSON")
		}
		raw = gjson.Parse(raw.String())
	}
	if !raw.IsObject() {
		return nil, errors.New("word_index is missing or not an object")
	}

	wordIndex := make(map[string]int)
	var bad error
	raw.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.Number || value.Int() < 1 {
			bad = fmt.Errorf("word_index entry %q has invalid index %s", key.String(), value.Raw)
			return false
		}
		wordIndex[key.String()] = int(value.Int())
		return true
	})
	if bad != nil {
		return nil, bad
	}
	if len(wordIndex) == 0 {
		return nil, errors.New("word_index is empty")
	}

	return wordIndex, nil
}

// TextToSequence converts text to word indices. Unknown words, and words at
// or beyond num_words, become the OOV index when the artifact defines an OOV
// token and are dropped otherwise.
func (t *Tokenizer) TextToSequence(text string) []int {
	words := t.words(text)
	seq := make([]int, 0, len(words))

	for _, w := range words {
		i, ok := t.wordIndex[w]
		switch {
		case ok && (t.numWords == 0 || i < t.numWords):
			seq = append(seq, i)
		case t.hasOOV:
			seq = append(seq, t.oovIndex)
		}
	}

	return seq
}

// VocabularySize is the number of words in the fitted index.
func (t *Tokenizer) VocabularySize() int {
	return len(t.wordIndex)
}

func (t *Tokenizer) words(text string) []string {
	if t.lower {
		text = strings.ToLower(text)
	}

	if t.charLevel {
		chars := make([]string, 0, len(text))
		for _, r := range text {
			chars = append(chars, string(r))
		}
		return chars
	}

	parts := strings.Split(t.replaceFilters(text), t.split)
	words := parts[:0]
	for _, p := range parts {
		if p != "" {
			words = append(words, p)
		}
	}
	return words
}

// replaceFilters swaps every filtered character for the split string.
func (t *Tokenizer) replaceFilters(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if _, ok := t.filters[r]; ok {
			b.WriteString(t.split)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}
