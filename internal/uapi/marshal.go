package uapi

import (
	"encoding/binary"
	"errors"
)

// ErrShortBuffer is returned by Unmarshal when the input cannot hold the
// full kernel struct.
var ErrShortBuffer = errors.New("uapi: buffer shorter than kernel struct")

// The GPIO chardev is a native-endian interface; every supported target
// for this package is little-endian, so the codecs write little-endian
// explicitly rather than going through unsafe pointer casts.

// Marshal converts a GPIO uapi struct to its exact kernel byte layout.
// Returns nil for types this package does not know about.
func Marshal(v any) []byte {
	switch val := v.(type) {
	case *ChipInfo:
		return marshalChipInfo(val)
	case *LineAttribute:
		buf := make([]byte, 16)
		putLineAttribute(buf, val)
		return buf
	case *LineConfigAttribute:
		buf := make([]byte, 24)
		putLineConfigAttribute(buf, val)
		return buf
	case *LineConfig:
		buf := make([]byte, 272)
		putLineConfig(buf, val)
		return buf
	case *LineRequest:
		return marshalLineRequest(val)
	case *LineInfo:
		return marshalLineInfo(val)
	case *LineValues:
		buf := make([]byte, 16)
		binary.LittleEndian.PutUint64(buf[0:8], val.Bits)
		binary.LittleEndian.PutUint64(buf[8:16], val.Mask)
		return buf
	default:
		return nil
	}
}

// Unmarshal fills a GPIO uapi struct from its exact kernel byte layout.
func Unmarshal(data []byte, v any) error {
	switch val := v.(type) {
	case *ChipInfo:
		return unmarshalChipInfo(data, val)
	case *LineAttribute:
		if len(data) < 16 {
			return ErrShortBuffer
		}
		getLineAttribute(data, val)
		return nil
	case *LineConfigAttribute:
		if len(data) < 24 {
			return ErrShortBuffer
		}
		getLineConfigAttribute(data, val)
		return nil
	case *LineConfig:
		if len(data) < 272 {
			return ErrShortBuffer
		}
		getLineConfig(data, val)
		return nil
	case *LineRequest:
		return unmarshalLineRequest(data, val)
	case *LineInfo:
		return unmarshalLineInfo(data, val)
	case *LineValues:
		if len(data) < 16 {
			return ErrShortBuffer
		}
		val.Bits = binary.LittleEndian.Uint64(data[0:8])
		val.Mask = binary.LittleEndian.Uint64(data[8:16])
		return nil
	default:
		return errors.New("uapi: unsupported type")
	}
}

func marshalChipInfo(ci *ChipInfo) []byte {
	buf := make([]byte, 68)
	copy(buf[0:32], ci.Name[:])
	copy(buf[32:64], ci.Label[:])
	binary.LittleEndian.PutUint32(buf[64:68], ci.Lines)
	return buf
}

func unmarshalChipInfo(data []byte, ci *ChipInfo) error {
	if len(data) < 68 {
		return ErrShortBuffer
	}
	copy(ci.Name[:], data[0:32])
	copy(ci.Label[:], data[32:64])
	ci.Lines = binary.LittleEndian.Uint32(data[64:68])
	return nil
}

func putLineAttribute(buf []byte, a *LineAttribute) {
	binary.LittleEndian.PutUint32(buf[0:4], a.ID)
	binary.LittleEndian.PutUint32(buf[4:8], a.Padding)
	binary.LittleEndian.PutUint64(buf[8:16], a.Value)
}

func getLineAttribute(data []byte, a *LineAttribute) {
	a.ID = binary.LittleEndian.Uint32(data[0:4])
	a.Padding = binary.LittleEndian.Uint32(data[4:8])
	a.Value = binary.LittleEndian.Uint64(data[8:16])
}

func putLineConfigAttribute(buf []byte, ca *LineConfigAttribute) {
	putLineAttribute(buf[0:16], &ca.Attr)
	binary.LittleEndian.PutUint64(buf[16:24], ca.Mask)
}

func getLineConfigAttribute(data []byte, ca *LineConfigAttribute) {
	getLineAttribute(data[0:16], &ca.Attr)
	ca.Mask = binary.LittleEndian.Uint64(data[16:24])
}

func putLineConfig(buf []byte, lc *LineConfig) {
	binary.LittleEndian.PutUint64(buf[0:8], lc.Flags)
	binary.LittleEndian.PutUint32(buf[8:12], lc.NumAttrs)
	for i, p := range lc.Padding {
		binary.LittleEndian.PutUint32(buf[12+4*i:16+4*i], p)
	}
	for i := range lc.Attrs {
		putLineConfigAttribute(buf[32+24*i:56+24*i], &lc.Attrs[i])
	}
}

func getLineConfig(data []byte, lc *LineConfig) {
	lc.Flags = binary.LittleEndian.Uint64(data[0:8])
	lc.NumAttrs = binary.LittleEndian.Uint32(data[8:12])
	for i := range lc.Padding {
		lc.Padding[i] = binary.LittleEndian.Uint32(data[12+4*i : 16+4*i])
	}
	for i := range lc.Attrs {
		getLineConfigAttribute(data[32+24*i:56+24*i], &lc.Attrs[i])
	}
}

func marshalLineRequest(r *LineRequest) []byte {
	buf := make([]byte, 592)
	for i, off := range r.Offsets {
		binary.LittleEndian.PutUint32(buf[4*i:4*i+4], off)
	}
	copy(buf[256:288], r.Consumer[:])
	putLineConfig(buf[288:560], &r.Config)
	binary.LittleEndian.PutUint32(buf[560:564], r.NumLines)
	binary.LittleEndian.PutUint32(buf[564:568], r.EventBufferSize)
	for i, p := range r.Padding {
		binary.LittleEndian.PutUint32(buf[568+4*i:572+4*i], p)
	}
	binary.LittleEndian.PutUint32(buf[588:592], uint32(r.Fd))
	return buf
}

func unmarshalLineRequest(data []byte, r *LineRequest) error {
	if len(data) < 592 {
		return ErrShortBuffer
	}
	for i := range r.Offsets {
		r.Offsets[i] = binary.LittleEndian.Uint32(data[4*i : 4*i+4])
	}
	copy(r.Consumer[:], data[256:288])
	getLineConfig(data[288:560], &r.Config)
	r.NumLines = binary.LittleEndian.Uint32(data[560:564])
	r.EventBufferSize = binary.LittleEndian.Uint32(data[564:568])
	for i := range r.Padding {
		r.Padding[i] = binary.LittleEndian.Uint32(data[568+4*i : 572+4*i])
	}
	r.Fd = int32(binary.LittleEndian.Uint32(data[588:592]))
	return nil
}

func marshalLineInfo(li *LineInfo) []byte {
	buf := make([]byte, 256)
	copy(buf[0:32], li.Name[:])
	copy(buf[32:64], li.Consumer[:])
	binary.LittleEndian.PutUint32(buf[64:68], li.Offset)
	binary.LittleEndian.PutUint32(buf[68:72], li.NumAttrs)
	binary.LittleEndian.PutUint64(buf[72:80], li.Flags)
	for i := range li.Attrs {
		putLineAttribute(buf[80+16*i:96+16*i], &li.Attrs[i])
	}
	for i, p := range li.Padding {
		binary.LittleEndian.PutUint32(buf[240+4*i:244+4*i], p)
	}
	return buf
}

func unmarshalLineInfo(data []byte, li *LineInfo) error {
	if len(data) < 256 {
		return ErrShortBuffer
	}
	copy(li.Name[:], data[0:32])
	copy(li.Consumer[:], data[32:64])
	li.Offset = binary.LittleEndian.Uint32(data[64:68])
	li.NumAttrs = binary.LittleEndian.Uint32(data[68:72])
	li.Flags = binary.LittleEndian.Uint64(data[72:80])
	for i := range li.Attrs {
		getLineAttribute(data[80+16*i:96+16*i], &li.Attrs[i])
	}
	for i := range li.Padding {
		li.Padding[i] = binary.LittleEndian.Uint32(data[240+4*i : 244+4*i])
	}
	return nil
}
