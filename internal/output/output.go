// Package output persists rendered icons to disk.
//
// Writers never create directories: the destination directory is expected to
// exist, and a missing one surfaces as an error from the first write.
package output

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	ico "github.com/sergeymakinen/go-ico"
)

// File describes an image written to disk.
type File struct {
	Path   string
	Bytes  int
	SHA256 string
}

// IconPath returns <dir>/icon<size>.png.
func IconPath(dir string, size int) string {
	return filepath.Join(dir, fmt.Sprintf("icon%d.png", size))
}

// WritePNG encodes img as PNG (alpha preserved) and writes it to path,
// replacing any existing file.
func WritePNG(path string, img image.Image) (File, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return File{}, fmt.Errorf("output: cannot encode %s: %w", path, err)
	}
	return write(path, buf.Bytes())
}

// WriteICO encodes img as a single-entry Windows icon and writes it to path.
func WriteICO(path string, img image.Image) (File, error) {
	var buf bytes.Buffer
	if err := ico.Encode(&buf, img); err != nil {
		return File{}, fmt.Errorf("output: cannot encode %s: %w", path, err)
	}
	return write(path, buf.Bytes())
}

func write(path string, data []byte) (File, error) {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return File{}, fmt.Errorf("output: cannot write %s: %w", path, err)
	}
	sum := sha256.Sum256(data)
	return File{
		Path:   path,
		Bytes:  len(data),
		SHA256: hex.EncodeToString(sum[:]),
	}, nil
}
