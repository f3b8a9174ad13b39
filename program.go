package descgen

import (
	"encoding/json"
	"io"
	"strings"

	"golang.org/x/exp/slices"
)

// DefaultProgramName is the name of the built-in example program.
const DefaultProgramName = "bunny_prog"

// Shader source suffixes appended to the program base name.
const (
	VertSuffix = "_vert.glsl"
	FragSuffix = "_frag.glsl"
)

var (
	// DefaultUniforms are the uniforms every generated program binds, in binding order.
	DefaultUniforms = []string{"P", "V", "MV", "collected"}
	// DefaultAttributes are the per-vertex attributes every generated program binds.
	DefaultAttributes = []string{"vertPos", "vertNor"}
)

// Program describes a shader program. Fields are declared in alphabetical
// key order so the encoded document comes out with sorted keys.
type Program struct {
	Attributes []string `json:"attributes" jsonschema_description:"Per-vertex attribute names, in binding order."`
	Frag       string   `json:"frag" jsonschema_description:"Fragment shader source file name."`
	Name       string   `json:"name" jsonschema_description:"Program name the renderer registers the program under."`
	Uniforms   []string `json:"uniforms" jsonschema_description:"Uniform names, in binding order."`
	Vert       string   `json:"vert" jsonschema_description:"Vertex shader source file name."`
}

// NewProgram builds the program descriptor for name. Only the part of name
// up to the first underscore is used to derive the shader file names.
//
// The Name field is always DefaultProgramName, whatever name is given.
func NewProgram(name string) *Program {
	base := ProgramBase(name)
	return &Program{
		Attributes: slices.Clone(DefaultAttributes),
		Frag:       base + FragSuffix,
		Name:       DefaultProgramName,
		Uniforms:   slices.Clone(DefaultUniforms),
		Vert:       base + VertSuffix,
	}
}

// ProgramBase returns the segment of name before the first underscore,
// or name itself when it has none.
func ProgramBase(name string) string {
	base, _, _ := strings.Cut(name, "_")
	return base
}

// Encode writes the descriptor as indented JSON followed by a newline.
func (p *Program) Encode(w io.Writer) error {
	data, err := marshal(p)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// marshal encodes v with the two space indentation used by every descriptor.
func marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
