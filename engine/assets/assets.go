package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// Root is the base directory for on-disk assets, relative to the working
// directory unless overridden.
var Root = "assets"

// LoadShader reads a GLSL file into a null-terminated string for OpenGL.
func LoadShader(name string) (string, error) {
	b, err := os.ReadFile(filepath.Join(Root, "shaders", name))
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	// Null termination for gl.Str
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}

// LoadFont reads a TTF/OTF file from the fonts directory.
func LoadFont(name string) ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(Root, "fonts", name))
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", name, err)
	}
	return b, nil
}
