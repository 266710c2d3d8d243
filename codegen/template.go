package codegen

import (
	"fmt"
	"go/format"
	"os"
	"strings"

	"github.com/iotaledger/dotbits/ierrors"
)

// ErrMissingPackageClause is returned if a template file does not contain a package clause.
var ErrMissingPackageClause = ierrors.New("template has no package clause")

// Template is a Go source file that acts as a blueprint for generated code. Everything up to the package clause
// forms the header of the generated file, everything after it is the content that gets its tokens replaced.
//
// Templates carry a "//go:build ignore" constraint so that they stay valid Go without being compiled. Build
// constraints and go:generate directives are dropped while parsing.
type Template struct {
	// Header contains the part of the template up to and including the package clause.
	Header string

	// Content contains the declarations of the template.
	Content string

	// TokenMappings maps the tokens that appear in the Content to their replacement.
	TokenMappings map[string]string

	// generator is the name of the generator that is mentioned in the "Code generated" comment.
	generator string
}

// NewTemplate creates a new Template that replaces tokens according to the given mappings.
func NewTemplate(generator string, tokenMappings map[string]string) *Template {
	return &Template{
		TokenMappings: tokenMappings,
		generator:     generator,
	}
}

// Parse reads the template from the given file.
func (t *Template) Parse(fileName string) error {
	source, err := os.ReadFile(fileName)
	if err != nil {
		return ierrors.Wrapf(err, "failed to read template %s", fileName)
	}

	return t.ParseString(string(source))
}

// ParseString reads the template from the given source code.
func (t *Template) ParseString(source string) error {
	lines := make([]string, 0)
	for _, line := range strings.Split(source, "\n") {
		if !isDirective(line) {
			lines = append(lines, line)
		}
	}

	for i, line := range lines {
		if strings.HasPrefix(line, "package ") {
			t.Header = strings.TrimSpace(strings.Join(lines[:i+1], "\n"))
			t.Content = strings.TrimSpace(strings.Join(lines[i+1:], "\n"))

			return nil
		}
	}

	return ErrMissingPackageClause
}

// GenerateContent returns the Content with all tokens replaced according to the current TokenMappings.
func (t *Template) GenerateContent() (string, error) {
	replacements := make([]string, 0, 2*len(t.TokenMappings))
	for token, replacement := range t.TokenMappings {
		replacements = append(replacements, token, replacement)
	}

	return strings.NewReplacer(replacements...).Replace(t.Content), nil
}

// Render returns the formatted source of the generated file (it can receive an optional generator function that
// overrides the way the content is generated).
func (t *Template) Render(optGenerator ...func() (string, error)) ([]byte, error) {
	generateContent := t.GenerateContent
	if len(optGenerator) > 0 {
		generateContent = optGenerator[0]
	}

	content, err := generateContent()
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to generate content")
	}

	source := fmt.Sprintf("// Code generated by %s. DO NOT EDIT.\n\n%s\n\n%s\n", t.generator, t.Header, content)

	formatted, err := format.Source([]byte(source))
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to format generated code")
	}

	return formatted, nil
}

// Generate renders the template and writes the result to the given file.
func (t *Template) Generate(fileName string, optGenerator ...func() (string, error)) error {
	formatted, err := t.Render(optGenerator...)
	if err != nil {
		return err
	}

	//nolint:gosec // generated source files are meant to be world readable
	if err := os.WriteFile(fileName, formatted, 0o644); err != nil {
		return ierrors.Wrapf(err, "failed to write %s", fileName)
	}

	return nil
}

// isDirective returns true for lines that configure the template itself and must not end up in the output.
func isDirective(line string) bool {
	return strings.HasPrefix(line, "//go:build") || strings.HasPrefix(line, "// +build") || strings.HasPrefix(line, "//go:generate")
}
