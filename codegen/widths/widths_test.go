package widths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/dotbits/codegen"
	"github.com/iotaledger/dotbits/codegen/widths"
)

const testTemplate = `//go:build ignore

package example

//go:generate go run github.com/iotaledger/dotbits/codegen/widths/cmd example.go

// WordType is a WordBase with WordBits.
type WordType WordBase
`

func TestRender(t *testing.T) {
	template := widths.New()
	require.NoError(t, template.ParseString(testTemplate))

	source, err := template.Render(
		widths.Width{TypeName: "A", BaseType: "uint8", Bits: "8 bits"},
		widths.Width{TypeName: "B", BaseType: "uint16", Bits: "16 bits"},
	)
	require.NoError(t, err)

	expected := `// Code generated by github.com/iotaledger/dotbits/codegen/widths. DO NOT EDIT.

package example

// A is a uint8 with 8 bits.
type A uint8

// B is a uint16 with 16 bits.
type B uint16
`
	require.Equal(t, expected, string(source))
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	templateFile := filepath.Join(dir, "example_template.go")
	require.NoError(t, os.WriteFile(templateFile, []byte(testTemplate), 0o600))

	template := widths.New()
	require.NoError(t, template.Parse(templateFile))

	outputFile := filepath.Join(dir, "example.go")
	require.NoError(t, template.Generate(outputFile))

	generated, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	require.Contains(t, string(generated), "type U8 uint8")
	require.Contains(t, string(generated), "// Uint is a uint with native word size.")
	require.NotContains(t, string(generated), "go:build")
	require.NotContains(t, string(generated), "go:generate")
}

func TestParseErrors(t *testing.T) {
	template := widths.New()
	require.ErrorIs(t, template.ParseString("// no package here"), codegen.ErrMissingPackageClause)
	require.Error(t, template.Parse(filepath.Join(t.TempDir(), "missing.go")))
}

// TestBitmanipWidthsUpToDate ensures that the committed bitmanip/widths.go matches its template.
func TestBitmanipWidthsUpToDate(t *testing.T) {
	template := widths.New()
	require.NoError(t, template.Parse(filepath.Join("..", "..", "bitmanip", "widths_template.go")))

	source, err := template.Render()
	require.NoError(t, err)

	committed, err := os.ReadFile(filepath.Join("..", "..", "bitmanip", "widths.go"))
	require.NoError(t, err)
	require.Equal(t, string(committed), string(source))

	// the native width is platform dependent and documented in words
	require.Contains(t, string(source), "// Uint is a uint that exposes its bits (native word size) through the BitManip methods.")
	require.Contains(t, string(source), "// Len returns the bit width of U8 (8 bits).")
	require.NotContains(t, string(source), "strconv.IntSize")
}
