// Package assets serves the sprites embedded into the binary.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png" // Register PNG format
	"io/fs"
	"log"
)

//go:embed images/*.png
var projectAssets embed.FS

// Decode reads and decodes an embedded image.
func Decode(name string) (image.Image, error) {
	return decodeFrom(projectAssets, "images/"+name)
}

func decodeFrom(fsys fs.FS, path string) (image.Image, error) {
	fileData, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read image %q: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(fileData))
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}
	return img, nil
}

// MustLoad is Decode for sprites the game cannot run without: a missing asset is fatal.
func MustLoad(name string) image.Image {
	img, err := Decode(name)
	if err != nil {
		log.Fatalf("Failed to load image '%s': %v", name, err)
	}
	return img
}
