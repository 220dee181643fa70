//go:build linux || darwin

package mem

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MappedFile represents a snapshot file mmap'd read only and exposed as
// a memory image segment at a caller supplied base address.
type MappedFile struct {
	file  *os.File
	data  []byte
	image *Image
}

// MapFile maps a snapshot file at the supplied base address
func MapFile(path string, base uint64) (*MappedFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	image := NewImage()
	result := &MappedFile{file: file, image: image}
	if info.Size() == 0 {
		return result, nil
	}
	data, err := unix.Mmap(int(file.Fd()), 0, int(info.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	if err := image.AddSegment(base, data); err != nil {
		unix.Munmap(data)
		file.Close()
		return nil, err
	}
	result.data = data
	return result, nil
}

// Image returns the backing memory image
func (m *MappedFile) Image() *Image {
	return m.image
}

// Close unmaps the file; handles derived from the image must not be
// used afterwards.
func (m *MappedFile) Close() error {
	var err error
	if m.data != nil {
		err = unix.Munmap(m.data)
		m.data = nil
	}
	if closeErr := m.file.Close(); err == nil {
		err = closeErr
	}
	return err
}
