//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

// Version is the semantic version of the funcad module embedded at build time.
//
//go:embed VERSION
var version string

// Version returns the embedded version without surrounding whitespace.
func Version() string { return strings.TrimSpace(version) }

const (
	// Name is the canonical command and module identifier. It appears in help
	// text and default config and cache paths.
	Name = "funcad"
	// Description is a short summary used in help output.
	Description = "Parser and inspector for funcad formula documents"
)

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	Name  string
	Email string
}

// Author lists the primary author(s) of the project.
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
