package qlc

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Conf defines the canonical column names a dataset may use and the alias
// spellings that resolve to them. Header names not covered by the conf get a
// synthesized {lower, upper} alias pair.
type Conf struct {
	// Aliases maps canonical column names to their alias spellings.
	Aliases map[string][]string `yaml:"aliases"`
}

// DefaultConf returns the built-in alias table covering the entry-types
// commonly found in dictionary datasets.
func DefaultConf() *Conf {
	return &Conf{
		Aliases: map[string][]string{
			"head":        {"head", "HEAD", "hd", "entry"},
			"translation": {"translation", "TRANSLATION", "trans", "gloss"},
			"tokens":      {"tokens", "TOKENS"},
			"ipa":         {"ipa", "IPA"},
			"pos":         {"pos", "POS", "partofspeech"},
			"doculect":    {"doculect", "DOCULECT", "language"},
		},
	}
}

// LoadConf reads an alias configuration file in YAML format.
func LoadConf(path string) (*Conf, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read conf file: %w", err)
	}

	var c Conf
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse conf file %s: %w", path, err)
	}
	if c.Aliases == nil {
		c.Aliases = make(map[string][]string)
	}
	return &c, nil
}

// canonical resolves a raw header name against the alias table. It returns
// the canonical name and the full alias set, synthesizing a default pair when
// the name is not covered by the conf.
func (c *Conf) canonical(name string) (string, []string) {
	folded := strings.ToLower(name)
	for canonical, aliases := range c.Aliases {
		if folded == canonical {
			return canonical, aliases
		}
		for _, a := range aliases {
			if folded == strings.ToLower(a) {
				return canonical, aliases
			}
		}
	}
	return folded, []string{folded, strings.ToUpper(folded)}
}
