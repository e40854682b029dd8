package uapi

import (
	"strings"
	"unsafe"
)

// ChipInfo must match kernel struct gpiochip_info exactly (68 bytes):
//
//	struct gpiochip_info {
//	  char name[GPIO_MAX_NAME_SIZE];   // kernel name of the chip
//	  char label[GPIO_MAX_NAME_SIZE];  // functional name, may be empty
//	  __u32 lines;                     // number of lines on the chip
//	};
type ChipInfo struct {
	Name  [GPIO_MAX_NAME_SIZE]byte
	Label [GPIO_MAX_NAME_SIZE]byte
	Lines uint32
}

// Compile-time size check - kernel struct is 68 bytes
var _ [68]byte = [unsafe.Sizeof(ChipInfo{})]byte{}

// NameString returns Name without the NUL padding
func (c *ChipInfo) NameString() string {
	return cString(c.Name[:])
}

// LabelString returns Label without the NUL padding
func (c *ChipInfo) LabelString() string {
	return cString(c.Label[:])
}

// LineAttribute must match kernel struct gpio_v2_line_attribute (16 bytes).
// The kernel declares the value as a union of flags (u64), values (u64)
// and debounce_period_us (u32); a single aligned uint64 covers all three.
type LineAttribute struct {
	ID      uint32 // GPIO_V2_LINE_ATTR_ID_*
	Padding uint32 // reserved, must be zero
	Value   uint64 // union storage
}

// Compile-time size check - 8-byte aligned union makes this 16 bytes
var _ [16]byte = [unsafe.Sizeof(LineAttribute{})]byte{}

// Flags returns the union interpreted as gpio_v2_line_flag bits
func (a *LineAttribute) Flags() uint64 {
	return a.Value
}

// Values returns the union interpreted as a line-value bitmap
func (a *LineAttribute) Values() uint64 {
	return a.Value
}

// DebouncePeriodUs returns the union interpreted as a debounce period.
// The u32 member occupies the low half of the union on little-endian.
func (a *LineAttribute) DebouncePeriodUs() uint32 {
	return uint32(a.Value)
}

// LineConfigAttribute must match kernel struct gpio_v2_line_config_attribute
// (24 bytes): a LineAttribute plus the mask of lines it applies to.
type LineConfigAttribute struct {
	Attr LineAttribute
	Mask uint64 // bitmap over the requested lines, bit i = offsets[i]
}

// Compile-time size check
var _ [24]byte = [unsafe.Sizeof(LineConfigAttribute{})]byte{}

// LineConfig must match kernel struct gpio_v2_line_config exactly (272 bytes):
//
//	struct gpio_v2_line_config {
//	  __aligned_u64 flags;
//	  __u32 num_attrs;
//	  __u32 padding[5];   // fills implicit padding, reserved
//	  struct gpio_v2_line_config_attribute attrs[GPIO_V2_LINE_NUM_ATTRS_MAX];
//	};
type LineConfig struct {
	Flags    uint64
	NumAttrs uint32
	Padding  [5]uint32
	Attrs    [GPIO_V2_LINE_NUM_ATTRS_MAX]LineConfigAttribute
}

// Compile-time size check - 8 + 4 + 20 + 10*24 = 272 bytes
var _ [272]byte = [unsafe.Sizeof(LineConfig{})]byte{}

// LineRequest must match kernel struct gpio_v2_line_request exactly (592 bytes).
// Fd is filled in by the kernel on a successful GPIO_V2_GET_LINE ioctl.
type LineRequest struct {
	Offsets         [GPIO_V2_LINES_MAX]uint32
	Consumer        [GPIO_MAX_NAME_SIZE]byte
	Config          LineConfig
	NumLines        uint32
	EventBufferSize uint32
	Padding         [5]uint32 // reserved, must be zero
	Fd              int32
}

// Compile-time size check - 256 + 32 + 272 + 4 + 4 + 20 + 4 = 592 bytes
var _ [592]byte = [unsafe.Sizeof(LineRequest{})]byte{}

// ConsumerString returns Consumer without the NUL padding
func (r *LineRequest) ConsumerString() string {
	return cString(r.Consumer[:])
}

// LineInfo must match kernel struct gpio_v2_line_info exactly (256 bytes).
type LineInfo struct {
	Name     [GPIO_MAX_NAME_SIZE]byte
	Consumer [GPIO_MAX_NAME_SIZE]byte
	Offset   uint32
	NumAttrs uint32
	Flags    uint64
	Attrs    [GPIO_V2_LINE_NUM_ATTRS_MAX]LineAttribute
	Padding  [4]uint32 // reserved for future use
}

// Compile-time size check - 64 + 8 + 8 + 160 + 16 = 256 bytes
var _ [256]byte = [unsafe.Sizeof(LineInfo{})]byte{}

// NameString returns Name without the NUL padding
func (i *LineInfo) NameString() string {
	return cString(i.Name[:])
}

// ConsumerString returns Consumer without the NUL padding
func (i *LineInfo) ConsumerString() string {
	return cString(i.Consumer[:])
}

// LineValues must match kernel struct gpio_v2_line_values (16 bytes).
// Bit i of both bitmaps refers to offsets[i] of the owning request.
type LineValues struct {
	Bits uint64
	Mask uint64
}

// Compile-time size check
var _ [16]byte = [unsafe.Sizeof(LineValues{})]byte{}

// cString trims the NUL padding the kernel leaves in fixed-width
// char-array fields.
func cString(b []byte) string {
	return strings.TrimRight(string(b), "\x00")
}
