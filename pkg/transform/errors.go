package transform

import "errors"

var (
	errLanguageNotSpecified = errors.New("language tag not specified")
	errInvalidLanguage      = errors.New("invalid language tag")
)
