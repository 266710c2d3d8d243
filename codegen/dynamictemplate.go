package codegen

import (
	"strings"
)

// DynamicTemplate is a Template that derives its token mappings from an argument, so the same content can be
// instantiated multiple times with different replacements.
type DynamicTemplate[T any] struct {
	TokenMappings map[string]func(T) string

	*Template
}

// NewDynamicTemplate creates a new DynamicTemplate with the given token mappings.
func NewDynamicTemplate[T any](generator string, tokenMappings map[string]func(T) string) *DynamicTemplate[T] {
	return &DynamicTemplate[T]{
		TokenMappings: tokenMappings,
		Template:      NewTemplate(generator, make(map[string]string)),
	}
}

// GenerateContent translates the tokens in the content to tokens relating to the given argument.
func (d *DynamicTemplate[T]) GenerateContent(arg T) (string, error) {
	for token, mapping := range d.TokenMappings {
		d.Template.TokenMappings[token] = mapping(arg)
	}

	return d.Template.GenerateContent()
}

// GenerateInstances generates one instance of the content per argument and joins them.
func (d *DynamicTemplate[T]) GenerateInstances(args ...T) (string, error) {
	instances := make([]string, 0, len(args))
	for _, arg := range args {
		instance, err := d.GenerateContent(arg)
		if err != nil {
			return "", err
		}

		instances = append(instances, instance)
	}

	return strings.Join(instances, "\n\n"), nil
}

// Render returns the formatted source of a file that contains one instance per argument.
func (d *DynamicTemplate[T]) Render(args ...T) ([]byte, error) {
	return d.Template.Render(func() (string, error) {
		return d.GenerateInstances(args...)
	})
}

// Generate writes a file that contains one instance per argument.
func (d *DynamicTemplate[T]) Generate(fileName string, args ...T) error {
	return d.Template.Generate(fileName, func() (string, error) {
		return d.GenerateInstances(args...)
	})
}
