package descgen

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// WrapRepeat is the GL_REPEAT wrap mode constant.
const WrapRepeat = 10497

// Texture describes a texture. Fields are declared in alphabetical key order.
type Texture struct {
	Filename  string `json:"filename" jsonschema_description:"Path of the image file, as given."`
	Name      string `json:"name" jsonschema_description:"Texture name, derived from the file name."`
	Unit      int    `json:"unit" jsonschema_description:"Texture unit the texture is bound to."`
	WrapModeX int    `json:"wrap_mode_x" jsonschema_description:"Horizontal wrap mode (GL enum)."`
	WrapModeY int    `json:"wrap_mode_y" jsonschema_description:"Vertical wrap mode (GL enum)."`
}

// NewTexture builds the texture descriptor for filename.
func NewTexture(filename string) *Texture {
	return &Texture{
		Filename:  filename,
		Name:      TextureName(filename),
		Unit:      0,
		WrapModeX: WrapRepeat,
		WrapModeY: WrapRepeat,
	}
}

// TextureName derives the texture name from filename: the last slash
// separated segment, cut at its first dot.
//
//	textures/wood.png -> wood
//	wood.tar.gz       -> wood
//	wood              -> wood
func TextureName(filename string) string {
	if i := strings.LastIndex(filename, "/"); i >= 0 {
		filename = filename[i+1:]
	}
	name, _, _ := strings.Cut(filename, ".")
	return name
}

// TextureFormat reports the image format implied by the extension of filename.
// The file itself is never opened.
func TextureFormat(filename string) (imaging.Format, error) {
	return imaging.FormatFromFilename(filename)
}

// Encode writes the descriptor as indented JSON. No newline is appended.
// Filenames that are not valid UTF-8 are rejected.
func (t *Texture) Encode(w io.Writer) error {
	if err := t.validate(); err != nil {
		return err
	}
	data, err := marshal(t)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteFile writes the descriptor into dir as <name>.json, creating or
// truncating the file. It returns the path of the written file.
func (t *Texture) WriteFile(dir string) (string, error) {
	path := filepath.Join(dir, t.Name+".json")
	if err := t.validate(); err != nil {
		return "", errors.Wrapf(err, "unable to write the texture descriptor %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "unable to create the texture descriptor %s", path)
	}
	if err := t.Encode(f); err != nil {
		f.Close()
		return "", errors.Wrapf(err, "unable to write the texture descriptor %s", path)
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, "unable to close the texture descriptor %s", path)
	}
	return path, nil
}

func (t *Texture) validate() error {
	if !utf8.ValidString(t.Filename) {
		return errors.Errorf("texture filename %q is not valid UTF-8", t.Filename)
	}
	return nil
}
