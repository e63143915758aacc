// Package rom handles the ROM image file that codes are written to.
package rom

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrNotRegularFile is returned when the input path is not a regular file.
	ErrNotRegularFile = errors.New("not a regular file")
	// ErrOutOfBounds is returned for accesses outside of the image.
	ErrOutOfBounds = errors.New("offset outside of image")
	// ErrSameFile is returned when the output path refers to the input file.
	ErrSameFile = errors.New("output is the input file")
)

// Image is a ROM image opened for positioned reads and writes.
// The image size is fixed, accesses past its end fail instead of growing
// the file.
type Image struct {
	file *os.File
	path string
	size int64
}

// CheckInput verifies that the input image exists and is a regular file.
func CheckInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("checking input file '%s': %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("input file '%s': %w", path, ErrNotRegularFile)
	}
	return nil
}

// Prepare copies the input image to the output path and opens the copy for
// reading and writing. If any step fails after the output file was created,
// the output file is removed. Paths that already exist are never removed
// before they were replaced by the copy.
func Prepare(input, output string) (*Image, error) {
	if err := CheckInput(input); err != nil {
		return nil, err
	}
	if err := checkDistinct(input, output); err != nil {
		return nil, err
	}

	if err := copyFile(input, output); err != nil {
		return nil, err
	}

	img, err := Open(output)
	if err != nil {
		_ = os.Remove(output)
		return nil, err
	}
	return img, nil
}

// checkDistinct fails if the output path resolves to the input file,
// including through links.
func checkDistinct(input, output string) error {
	inInfo, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("checking input file '%s': %w", input, err)
	}
	outInfo, err := os.Stat(output)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("checking output file '%s': %w", output, err)
	}
	if os.SameFile(inInfo, outInfo) {
		return fmt.Errorf("'%s' and '%s': %w", input, output, ErrSameFile)
	}
	return nil
}

// Open opens an existing image for reading and writing.
func Open(path string) (*Image, error) {
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("opening file '%s' for reading and writing: %w", path, err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("getting size of file '%s': %w", path, err)
	}

	return &Image{
		file: file,
		path: path,
		size: info.Size(),
	}, nil
}

// Path returns the file path of the image.
func (img *Image) Path() string {
	return img.path
}

// Size returns the image size in bytes.
func (img *Image) Size() int64 {
	return img.size
}

// ReadAt implements io.ReaderAt.
func (img *Image) ReadAt(p []byte, off int64) (int, error) {
	if err := img.checkBounds(off, len(p)); err != nil {
		return 0, err
	}
	n, err := img.file.ReadAt(p, off)
	if err != nil {
		return n, fmt.Errorf("reading at offset 0x%X: %w", off, err)
	}
	return n, nil
}

// WriteAt implements io.WriterAt.
func (img *Image) WriteAt(p []byte, off int64) (int, error) {
	if err := img.checkBounds(off, len(p)); err != nil {
		return 0, err
	}
	n, err := img.file.WriteAt(p, off)
	if err != nil {
		return n, fmt.Errorf("writing at offset 0x%X: %w", off, err)
	}
	return n, nil
}

// Close closes the underlying file.
func (img *Image) Close() error {
	if err := img.file.Close(); err != nil {
		return fmt.Errorf("closing file '%s': %w", img.path, err)
	}
	return nil
}

// Commit closes the image. If closing fails the file is removed, as its
// content can not be trusted.
func (img *Image) Commit() error {
	if err := img.Close(); err != nil {
		if removeErr := os.Remove(img.path); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
			return errors.Join(err, fmt.Errorf("removing file '%s': %w", img.path, removeErr))
		}
		return err
	}
	return nil
}

// Discard closes the image and removes its file.
func (img *Image) Discard() error {
	_ = img.file.Close()
	if err := os.Remove(img.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing file '%s': %w", img.path, err)
	}
	return nil
}

func (img *Image) checkBounds(off int64, length int) error {
	if off < 0 || off+int64(length) > img.size {
		return fmt.Errorf("%w: offset 0x%X length %d, image size 0x%X", ErrOutOfBounds, off, length, img.size)
	}
	return nil
}

func copyFile(input, output string) error {
	src, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening file '%s': %w", input, err)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating file '%s': %w", output, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(output)
		return fmt.Errorf("copying '%s' to '%s': %w", input, output, err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(output)
		return fmt.Errorf("closing file '%s': %w", output, err)
	}
	return nil
}
