// Package ortho implements orthography-profile tokenization: segmenting raw
// text into graphemes according to a language-specific profile resource, with
// a Unicode grapheme-cluster fallback when no profile is given.
package ortho

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Profile is a compiled orthography profile: the set of graphemes a writing
// system uses, each with an optional replacement (e.g. an IPA value).
type Profile struct {
	graphemes map[string]string
	maxRunes  int
}

// LoadProfile reads an orthography profile from disk.
func LoadProfile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	defer func() { _ = f.Close() }()

	p, err := ParseProfile(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return p, nil
}

// ParseProfile reads a profile from r. Each line holds a grapheme and an
// optional tab-separated replacement; # starts a comment. Graphemes are
// stored NFD-decomposed because matching runs over decomposed input.
func ParseProfile(r io.Reader) (*Profile, error) {
	p := &Profile{graphemes: make(map[string]string)}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		// Split before trimming so a leading tab still means an empty
		// grapheme column.
		grapheme, replacement, _ := strings.Cut(line, "\t")
		grapheme = norm.NFD.String(strings.TrimSpace(grapheme))
		if grapheme == "" {
			return nil, fmt.Errorf("line %d: empty grapheme", lineNo)
		}

		p.graphemes[grapheme] = strings.TrimSpace(replacement)
		if n := len([]rune(grapheme)); n > p.maxRunes {
			p.maxRunes = n
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning profile: %w", err)
	}

	if len(p.graphemes) == 0 {
		return nil, fmt.Errorf("profile defines no graphemes")
	}
	return p, nil
}

// Len returns the number of graphemes the profile defines.
func (p *Profile) Len() int {
	return len(p.graphemes)
}

// Tokenizer segments raw strings into space-joined token sequences. With a
// profile it performs greedy longest-match segmentation; without one it
// falls back to Unicode grapheme clusters.
type Tokenizer struct {
	profile *Profile
}

// NewTokenizer creates a tokenizer. A nil profile selects the
// grapheme-cluster fallback.
func NewTokenizer(profile *Profile) *Tokenizer {
	return &Tokenizer{profile: profile}
}

// Tokenize segments s and joins the resulting tokens with single spaces.
// Whitespace in the input separates tokens but produces none itself.
func (t *Tokenizer) Tokenize(s string) string {
	var tokens []string
	if t.profile != nil {
		tokens = t.profile.segment(s)
	} else {
		tokens = graphemeClusters(s)
	}
	return strings.Join(tokens, " ")
}

// segment runs greedy longest-match over the NFD-decomposed input. Runes not
// covered by the profile pass through as single-rune tokens.
func (p *Profile) segment(s string) []string {
	runes := []rune(norm.NFD.String(s))
	var tokens []string

	for i := 0; i < len(runes); {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}

		matched := false
		longest := p.maxRunes
		if rest := len(runes) - i; longest > rest {
			longest = rest
		}
		for l := longest; l >= 1; l-- {
			candidate := string(runes[i : i+l])
			if replacement, ok := p.graphemes[candidate]; ok {
				if replacement != "" {
					tokens = append(tokens, replacement)
				} else {
					tokens = append(tokens, norm.NFC.String(candidate))
				}
				i += l
				matched = true
				break
			}
		}
		if !matched {
			tokens = append(tokens, norm.NFC.String(string(runes[i])))
			i++
		}
	}
	return tokens
}

// graphemeClusters splits s at normalization boundaries so combining marks
// stay attached to their base characters.
func graphemeClusters(s string) []string {
	var it norm.Iter
	it.InitString(norm.NFC, s)

	var clusters []string
	for !it.Done() {
		cluster := string(it.Next())
		if strings.TrimSpace(cluster) == "" {
			continue
		}
		clusters = append(clusters, cluster)
	}
	return clusters
}
