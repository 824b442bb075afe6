// Package substitute post-processes translated values for a target writing
// system. Replacement rules are applied as literal text substitutions while
// `{...}` placeholder tokens are masked out first and restored verbatim, so
// runtime string codes never get corrupted.
package substitute

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"weblate-bridge/internal/dataset"

	"gopkg.in/yaml.v3"
)

// Rule is one literal replacement. Rules run in table order and each rule
// sees the output of the previous one, so multi-character matches must come
// before their prefixes.
type Rule struct {
	Match   string `yaml:"match"`
	Replace string `yaml:"replace"`
}

// KoKoreRules converts Latin punctuation to Korean mixed-script punctuation.
// Spaces go first so the later sequences still match their literal form.
var KoKoreRules = []Rule{
	{Match: " ", Replace: ""},
	{Match: "...", Replace: "…"},
	{Match: "..", Replace: "‥"},
	{Match: ".", Replace: "。"},
	{Match: ",", Replace: "、"},
	{Match: "?", Replace: "？"},
	{Match: "!", Replace: "！"},
	{Match: ":", Replace: "："},
	{Match: ";", Replace: "；"},
}

var (
	placeholderPattern = regexp.MustCompile(`\{[^\n}]+\}`)
	markerPattern      = regexp.MustCompile(`\$\{(\d+)\}`)
)

// Substituter applies an ordered replacement table with placeholder
// protection.
type Substituter struct {
	rules []Rule
}

// New creates a Substituter for the given table.
func New(rules []Rule) *Substituter {
	return &Substituter{rules: rules}
}

// Apply transforms a single value: placeholders are masked with positional
// `${i}` markers, the rules run over the masked text, and the recorded tokens
// are put back byte-for-byte. Marker-shaped text that never came from a
// placeholder passes through unchanged.
func (s *Substituter) Apply(value string) string {
	masked, tokens := mask(value)
	for _, rule := range s.rules {
		masked = strings.ReplaceAll(masked, rule.Match, rule.Replace)
	}
	return restore(masked, tokens)
}

// ApplyTable transforms every value of a dataset table, preserving key order.
func (s *Substituter) ApplyTable(table *dataset.Table) *dataset.Table {
	out := dataset.NewTable()
	table.Each(func(key, value string) {
		out.Set(key, s.Apply(value))
	})
	return out
}

// mask replaces each placeholder token with a `${i}` marker, i assigned in
// scan order, and records the original token texts.
func mask(value string) (string, []string) {
	var tokens []string
	masked := placeholderPattern.ReplaceAllStringFunc(value, func(token string) string {
		idx := len(tokens)
		tokens = append(tokens, token)
		return fmt.Sprintf("${%d}", idx)
	})
	return masked, tokens
}

// restore swaps `${i}` markers back for their recorded tokens. Indexes
// outside the recorded range are left as-is.
func restore(masked string, tokens []string) string {
	return markerPattern.ReplaceAllStringFunc(masked, func(marker string) string {
		idx, err := strconv.Atoi(markerPattern.FindStringSubmatch(marker)[1])
		if err != nil || idx < 0 || idx >= len(tokens) {
			return marker
		}
		return tokens[idx]
	})
}

// ParseRules decodes a replacement table from YAML, so target-script rules
// ship as data instead of code.
func ParseRules(data []byte) ([]Rule, error) {
	var doc struct {
		Rules []Rule `yaml:"rules"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	if len(doc.Rules) == 0 {
		return nil, fmt.Errorf("rules file defines no rules")
	}
	return doc.Rules, nil
}

// LoadRules reads a replacement table from a YAML file.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	return ParseRules(data)
}
