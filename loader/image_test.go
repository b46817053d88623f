package loader_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/r32sim/loader"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

var _ = Describe("Image Loader", func() {
	var tempDir string

	sample := []uint32{0xE3A01004, 0xE2812003, 0xE5812004, 0xE5913004}

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "image-loader-test")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		_ = os.RemoveAll(tempDir)
	})

	Describe("BuildImage", func() {
		It("should pack words little-endian without padding", func() {
			image := loader.BuildImage(0xE3A01004, 0x00000001)

			Expect(image).To(Equal([]byte{
				0x04, 0x10, 0xA0, 0xE3,
				0x01, 0x00, 0x00, 0x00,
			}))
		})

		It("should return an empty image for no words", func() {
			Expect(loader.BuildImage()).To(BeEmpty())
		})
	})

	Describe("Save and Load", func() {
		It("should round-trip a program through a file", func() {
			path := filepath.Join(tempDir, "test.bin")
			Expect(loader.Save(path, sample)).To(Succeed())

			img, err := loader.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(img.Path).To(Equal(path))
			Expect(img.Size()).To(Equal(16))
			Expect(img.Words()).To(Equal(sample))
		})

		It("should fail for a missing file", func() {
			_, err := loader.Load(filepath.Join(tempDir, "missing.bin"))
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
		})
	})

	Describe("Read", func() {
		It("should keep a trailing partial word", func() {
			img, err := loader.Read(bytes.NewReader([]byte{0x04, 0x10, 0xA0, 0xE3, 0x2A}))
			Expect(err).NotTo(HaveOccurred())
			Expect(img.Size()).To(Equal(5))
			Expect(img.Words()).To(Equal([]uint32{0xE3A01004, 0x2A}))
		})

		It("should wrap reader errors", func() {
			_, err := loader.Read(failingReader{})
			Expect(err).To(MatchError(ContainSubstring("device gone")))
		})
	})

	It("should write the same bytes as BuildImage", func() {
		var buf bytes.Buffer
		Expect(loader.WriteImage(&buf, sample)).To(Succeed())
		Expect(buf.Bytes()).To(Equal(loader.BuildImage(sample...)))
	})
})
