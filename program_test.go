package descgen

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_ExampleDescriptor(t *testing.T) {
	p := NewProgram(DefaultProgramName)

	assert.Equal(t, "bunny_prog", p.Name)
	assert.Equal(t, "bunny_vert.glsl", p.Vert)
	assert.Equal(t, "bunny_frag.glsl", p.Frag)
	assert.Equal(t, []string{"P", "V", "MV", "collected"}, p.Uniforms)
	assert.Equal(t, []string{"vertPos", "vertNor"}, p.Attributes)
}

func TestProgram_ShaderNamesShareBase(t *testing.T) {
	cases := map[string]string{
		"bunny_prog":     "bunny",
		"note_prog_v2":   "note",
		"platform":       "platform",
		"_leading":       "",
		"trailing_":      "trailing",
		"sky_dome_prog_": "sky",
	}
	for name, base := range cases {
		p := NewProgram(name)
		assert.Equal(t, base, ProgramBase(name), name)
		assert.Equal(t, base+"_vert.glsl", p.Vert, name)
		assert.Equal(t, base+"_frag.glsl", p.Frag, name)
	}
}

func TestProgram_NameIsAlwaysDefault(t *testing.T) {
	p := NewProgram("platform_prog")

	assert.Equal(t, DefaultProgramName, p.Name)
	assert.Equal(t, "platform_vert.glsl", p.Vert)
}

func TestProgram_ListsAreNotShared(t *testing.T) {
	a := NewProgram(DefaultProgramName)
	b := NewProgram(DefaultProgramName)

	a.Uniforms[0] = "M"
	a.Attributes = append(a.Attributes, "vertTex")

	assert.Equal(t, "P", b.Uniforms[0])
	assert.Equal(t, []string{"P", "V", "MV", "collected"}, DefaultUniforms)
	assert.Equal(t, []string{"vertPos", "vertNor"}, DefaultAttributes)
}

func TestProgram_EncodeExample(t *testing.T) {
	var buf bytes.Buffer
	if err := NewProgram(DefaultProgramName).Encode(&buf); err != nil {
		t.Fatalf("could not encode the program descriptor: %v", err)
	}

	expected := `{
  "attributes": [
    "vertPos",
    "vertNor"
  ],
  "frag": "bunny_frag.glsl",
  "name": "bunny_prog",
  "uniforms": [
    "P",
    "V",
    "MV",
    "collected"
  ],
  "vert": "bunny_vert.glsl"
}
`
	assert.Equal(t, expected, buf.String())

	var compact bytes.Buffer
	assert.NoError(t, json.Compact(&compact, buf.Bytes()))
	assert.Equal(t,
		`{"attributes":["vertPos","vertNor"],"frag":"bunny_frag.glsl","name":"bunny_prog","uniforms":["P","V","MV","collected"],"vert":"bunny_vert.glsl"}`,
		compact.String())
}

func TestProgram_EncodeHasExactlyFiveKeys(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, NewProgram("note_prog").Encode(&buf))

	var doc map[string]any
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Len(t, doc, 5)
	for _, key := range []string{"name", "vert", "frag", "uniforms", "attributes"} {
		assert.Contains(t, doc, key)
	}
}

func TestProgram_RoundTrip(t *testing.T) {
	p := NewProgram("moonrock_prog")

	var buf bytes.Buffer
	assert.NoError(t, p.Encode(&buf))

	var decoded Program
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *p, decoded)
}
