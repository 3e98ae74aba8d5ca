package transform

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Option configures a Normalizer
type Option func(*Normalizer) error

// WithTrimSpace removes leading and trailing white space from both fields
func WithTrimSpace() Option {
	return func(n *Normalizer) error {
		n.trim = true
		return nil
	}
}

// WithCollapseSpaces replaces runs of white space with a single space
func WithCollapseSpaces() Option {
	return func(n *Normalizer) error {
		n.collapse = true
		return nil
	}
}

// WithUnicodeNFC rewrites both fields in Unicode normalization form C
func WithUnicodeNFC() Option {
	return func(n *Normalizer) error {
		n.nfc = true
		return nil
	}
}

// WithSanitize replaces tabs and line breaks inside fields with a space so
// every record survives a write and read back
func WithSanitize() Option {
	return func(n *Normalizer) error {
		n.sanitize = true
		return nil
	}
}

// WithTitleCaseNames title-cases the first field using the rules of a BCP 47 language tag
func WithTitleCaseNames(tag string) Option {
	return func(n *Normalizer) error {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			return errLanguageNotSpecified
		}
		lang, err := language.Parse(tag)
		if err != nil {
			return fmt.Errorf("%w %q: %v", errInvalidLanguage, tag, err)
		}
		caser := cases.Title(lang)
		n.titleCaser = &caser
		return nil
	}
}
