// Package mem provides object handle sources: in memory byte objects,
// sparse segment based memory images, mmap'd snapshot files and views
// over live local Go values. All sources are read only.
package mem

import (
	"errors"
	"fmt"
	"sort"
)

var (
	//ErrUnmapped an address falls outside every image segment
	ErrUnmapped = errors.New("address not mapped")
	//ErrOutOfRange a handle read exceeds the object backing storage
	ErrOutOfRange = errors.New("read out of range")
)

type (
	segment struct {
		addr uint64
		data []byte
	}

	//Image represents a sparse foreign address space assembled from
	//non overlapping segments. An Image is immutable once populated and
	//safe for concurrent reads; AddSegment calls must not race with reads.
	Image struct {
		segments []segment
	}
)

// NewImage creates an empty memory image
func NewImage() *Image {
	return &Image{}
}

// AddSegment maps data at the supplied base address
func (i *Image) AddSegment(addr uint64, data []byte) error {
	end := addr + uint64(len(data))
	if end < addr {
		return fmt.Errorf("segment 0x%x+%d wraps the address space", addr, len(data))
	}
	for _, seg := range i.segments {
		if addr < seg.addr+uint64(len(seg.data)) && seg.addr < end {
			return fmt.Errorf("segment 0x%x overlaps segment 0x%x", addr, seg.addr)
		}
	}
	i.segments = append(i.segments, segment{addr: addr, data: data})
	sort.Slice(i.segments, func(x, y int) bool {
		return i.segments[x].addr < i.segments[y].addr
	})
	return nil
}

// ReadBytes reads width bytes at an absolute address
func (i *Image) ReadBytes(addr uint64, width int) ([]byte, error) {
	data, err := i.view(addr, width)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// ObjectAt returns a handle over size bytes at an absolute address; the
// object identity is its address. The whole object must fall within one
// mapped segment.
func (i *Image) ObjectAt(addr uint64, size int) (*Object, error) {
	data, err := i.view(addr, size)
	if err != nil {
		return nil, err
	}
	return &Object{identity: addr, data: data}, nil
}

func (i *Image) view(addr uint64, width int) ([]byte, error) {
	if width < 0 {
		return nil, ErrOutOfRange
	}
	index := sort.Search(len(i.segments), func(x int) bool {
		return i.segments[x].addr+uint64(len(i.segments[x].data)) > addr
	})
	if index == len(i.segments) || addr < i.segments[index].addr {
		return nil, fmt.Errorf("%w: 0x%x", ErrUnmapped, addr)
	}
	seg := i.segments[index]
	offset := addr - seg.addr
	if offset+uint64(width) > uint64(len(seg.data)) {
		return nil, fmt.Errorf("%w: 0x%x+%d", ErrUnmapped, addr, width)
	}
	return seg.data[offset : offset+uint64(width)], nil
}
