package heaply

import (
	"encoding/binary"
	"strconv"
)

// Platform represents the foreign process address model: word size, byte
// order and the compressed reference widening rule. The widening base and
// shift vary across images, so they are injected here rather than assumed.
type Platform struct {
	//PointerSize foreign word size in bytes, 4 or 8
	PointerSize int
	//ByteOrder foreign byte order
	ByteOrder binary.ByteOrder
	//RefBase compressed reference widening base
	RefBase Ref
	//RefShift compressed reference widening shift
	RefShift uint
}

// LocalPlatform returns the platform model of the running process with an
// identity widening rule; suitable for live self inspection.
func LocalPlatform() *Platform {
	return &Platform{
		PointerSize: strconv.IntSize / 8,
		ByteOrder:   binary.NativeEndian,
	}
}

// Widen expands a narrow encoded reference to a full reference identity
func (p *Platform) Widen(narrow uint32) Ref {
	if narrow == 0 {
		return 0
	}
	return p.RefBase + Ref(narrow)<<p.RefShift
}

// Narrow compresses a full reference back to its narrow encoding; the
// second result is false when ref is not representable under this rule.
func (p *Platform) Narrow(ref Ref) (uint32, bool) {
	if ref == 0 {
		return 0, true
	}
	if ref < p.RefBase {
		return 0, false
	}
	delta := uint64(ref - p.RefBase)
	if delta&(1<<p.RefShift-1) != 0 {
		return 0, false
	}
	narrow := delta >> p.RefShift
	if narrow > 1<<32-1 {
		return 0, false
	}
	return uint32(narrow), true
}

// normalized returns a defaulted copy; the receiver, possibly shared
// across concurrent visitor constructions, is never written.
func (p *Platform) normalized() *Platform {
	var result Platform
	if p != nil {
		result = *p
	}
	if result.PointerSize == 0 {
		result.PointerSize = strconv.IntSize / 8
	}
	if result.ByteOrder == nil {
		result.ByteOrder = binary.NativeEndian
	}
	return &result
}
