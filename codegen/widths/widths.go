package widths

import (
	"github.com/iotaledger/dotbits/codegen"
)

// Generator is the import path of the widths generator, as it appears in the generated files.
const Generator = "github.com/iotaledger/dotbits/codegen/widths"

// Width describes one instance of a width template.
type Width struct {
	// TypeName is the name of the generated type, i.e. "U8".
	TypeName string
	// BaseType is the predeclared type the generated type is based on, i.e. "uint8".
	BaseType string
	// Bits is the bit width as it appears in doc comments, i.e. "8 bits".
	Bits string
}

// Default contains one Width per unsigned integer type that Go predeclares.
var Default = []Width{
	{TypeName: "U8", BaseType: "uint8", Bits: "8 bits"},
	{TypeName: "U16", BaseType: "uint16", Bits: "16 bits"},
	{TypeName: "U32", BaseType: "uint32", Bits: "32 bits"},
	{TypeName: "U64", BaseType: "uint64", Bits: "64 bits"},
	{TypeName: "Uint", BaseType: "uint", Bits: "native word size"},
}

// Widths is a template that instantiates its content once per Width by replacing the following tokens:
//
//   - WordType: the name of the generated type - i.e. "U16"
//   - WordBase: the predeclared base type - i.e. "uint16"
//   - WordBits: the bit width - i.e. "16 bits"
type Widths struct {
	*codegen.DynamicTemplate[Width]
}

// New creates a new Widths template.
func New() *Widths {
	return &Widths{
		DynamicTemplate: codegen.NewDynamicTemplate(Generator, map[string]func(Width) string{
			"WordType": func(w Width) string { return w.TypeName },
			"WordBase": func(w Width) string { return w.BaseType },
			"WordBits": func(w Width) string { return w.Bits },
		}),
	}
}

// Render returns the formatted source containing one instance per Width (Default if none are given).
func (w *Widths) Render(widths ...Width) ([]byte, error) {
	return w.DynamicTemplate.Render(orDefault(widths)...)
}

// Generate writes a file containing one instance per Width (Default if none are given).
func (w *Widths) Generate(fileName string, widths ...Width) error {
	return w.DynamicTemplate.Generate(fileName, orDefault(widths)...)
}

func orDefault(widths []Width) []Width {
	if len(widths) == 0 {
		return Default
	}

	return widths
}
