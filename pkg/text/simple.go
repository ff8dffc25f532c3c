package text

import (
	"context"
	"io"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// SimpleReplacer implements Replacer using basic string replacement
type SimpleReplacer struct{}

// NewSimpleReplacer creates a new SimpleReplacer
func NewSimpleReplacer() *SimpleReplacer {
	return &SimpleReplacer{}
}

// Replace implements Replacer.Replace. Rules are applied strictly in list
// order: each rule sees the output of the previous one, so with
// overlapping names the caller's ordering decides the outcome.
func (r *SimpleReplacer) Replace(ctx context.Context, content io.Reader, rules []Rule) (*Result, error) {
	// Read all content
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	// Create result with original content
	result := &Result{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
		PerRule:         make([]int, len(rules)),
	}

	// Apply each rule
	currentContent := string(originalContent)
	for i, rule := range rules {
		// Skip empty rules
		if rule.From == "" {
			continue
		}

		count := strings.Count(currentContent, rule.From)
		if count == 0 {
			continue
		}

		currentContent = strings.ReplaceAll(currentContent, rule.From, rule.To)
		result.WasModified = true
		result.ReplacementCount += count
		result.PerRule[i] = count
	}

	// Update final content
	result.ModifiedContent = []byte(currentContent)
	return result, nil
}

// ValidateRules implements Replacer.ValidateRules
func (r *SimpleReplacer) ValidateRules(rules []Rule) error {
	for i, rule := range rules {
		if rule.From == "" {
			return errors.Errorf("rule %d: from name is required", i)
		}
		if rule.To == "" {
			return errors.Errorf("rule %d: to name is required", i)
		}
	}
	return nil
}

// ReplaceName applies the rules to a single path component. Same ordered
// pass as Replace, without the bookkeeping. Callers hand in base names
// only, so a replacement can never cross a path separator.
func ReplaceName(name string, rules []Rule) string {
	for _, rule := range rules {
		if rule.From == "" {
			continue
		}
		name = strings.ReplaceAll(name, rule.From, rule.To)
	}
	return name
}
