package domain

import (
	"fmt"
	"strings"
)

// SourceExtensions lists the file name suffixes the transformers accept
var SourceExtensions = []string{".ts", ".tsx"}

// IsSupportedSource reports whether the file name ends in a recognized
// source extension. The match is case-sensitive.
func IsSupportedSource(path string) bool {
	for _, ext := range SourceExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// SupportedSourcesHint renders the accepted extensions for user messages,
// e.g. "(.ts, .tsx)"
func SupportedSourcesHint() string {
	return fmt.Sprintf("(%s)", strings.Join(SourceExtensions, ", "))
}
