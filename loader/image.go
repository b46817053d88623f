// Package loader provides flat binary image loading for R32 programs.
//
// An image is a headerless sequence of little-endian 32-bit words, loaded in
// full at address 0.
package loader

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// WordSize is the size of one instruction word in bytes.
const WordSize = 4

// Image is a flat binary program.
type Image struct {
	// Path is the file the image was read from, if any.
	Path string
	// Data contains the raw image bytes.
	Data []byte
}

// Size returns the image length in bytes. The driving loop runs while the
// program counter is below it.
func (img *Image) Size() int {
	return len(img.Data)
}

// Words decodes the image into little-endian words. A trailing partial word
// is zero-padded.
func (img *Image) Words() []uint32 {
	words := make([]uint32, 0, (len(img.Data)+WordSize-1)/WordSize)
	for i := 0; i < len(img.Data); i += WordSize {
		var buf [WordSize]byte
		copy(buf[:], img.Data[i:])
		words = append(words, binary.LittleEndian.Uint32(buf[:]))
	}
	return words
}

// Load reads a flat binary image from a file.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	img.Path = path

	return img, nil
}

// Read reads a flat binary image from a reader.
func Read(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return &Image{Data: data}, nil
}

// BuildImage assembles instruction words into a byte slice.
func BuildImage(words ...uint32) []byte {
	image := make([]byte, 0, len(words)*WordSize)
	for _, w := range words {
		image = binary.LittleEndian.AppendUint32(image, w)
	}
	return image
}

// WriteImage writes instruction words as a flat binary image.
func WriteImage(w io.Writer, words []uint32) error {
	if _, err := w.Write(BuildImage(words...)); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}

// Save writes instruction words to a flat binary image file.
func Save(path string, words []uint32) error {
	if err := os.WriteFile(path, BuildImage(words...), 0644); err != nil {
		return fmt.Errorf("failed to write image file: %w", err)
	}
	return nil
}
