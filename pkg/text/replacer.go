package text

import (
	"context"
	"io"
)

// Rule defines a single literal name replacement
type Rule struct {
	// From is the source name to replace
	From string

	// To is the destination name
	To string
}

// Result contains the results of a replacement pass over some content
type Result struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the total number of replacements made
	ReplacementCount int

	// PerRule holds the replacement count for each rule, indexed like the
	// rule list that produced it
	PerRule []int

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// Replacer defines the interface for name replacement operations
type Replacer interface {
	// Replace applies the rules to the content, strictly in list order.
	// Returns a Result containing the modified content and metadata
	Replace(ctx context.Context, content io.Reader, rules []Rule) (*Result, error)

	// ValidateRules checks that all rules are valid
	ValidateRules(rules []Rule) error
}
