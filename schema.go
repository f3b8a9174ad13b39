package descgen

import (
	"io"

	"github.com/invopop/jsonschema"
)

func reflectSchema(v any, title, description string) *jsonschema.Schema {
	r := jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}
	schema := r.Reflect(v)
	schema.Title = title
	schema.Description = description
	return schema
}

// ProgramSchema returns the JSON Schema of program descriptors.
func ProgramSchema() *jsonschema.Schema {
	return reflectSchema(&Program{}, "Shader program descriptor",
		"Names the shader sources, uniforms and attributes of a program.")
}

// TextureSchema returns the JSON Schema of texture descriptors.
func TextureSchema() *jsonschema.Schema {
	return reflectSchema(&Texture{}, "Texture descriptor",
		"Names the image file of a texture, its unit and its wrap modes.")
}

// EncodeSchema writes schema as indented JSON followed by a newline.
func EncodeSchema(w io.Writer, schema *jsonschema.Schema) error {
	data, err := marshal(schema)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
