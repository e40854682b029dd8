// Package uapi mirrors the Linux GPIO character-device UAPI
package uapi

import "unsafe"

// Limits from include/uapi/linux/gpio.h
const (
	GPIO_MAX_NAME_SIZE         = 32
	GPIO_V2_LINES_MAX          = 64
	GPIO_V2_LINE_NUM_ATTRS_MAX = 10
)

// GPIO_IOCTL_MAGIC is the ioctl type byte shared by all GPIO chardev requests
const GPIO_IOCTL_MAGIC = 0xB4

// Command numbers, unique within the 0xB4 magic
const (
	GPIO_GET_CHIPINFO          = 0x01
	GPIO_V2_GET_LINEINFO       = 0x05
	GPIO_V2_GET_LINEINFO_WATCH = 0x06
	GPIO_V2_GET_LINE           = 0x07
	GPIO_GET_LINEINFO_UNWATCH  = 0x0C
	GPIO_V2_LINE_SET_CONFIG    = 0x0D
	GPIO_V2_LINE_GET_VALUES    = 0x0E
	GPIO_V2_LINE_SET_VALUES    = 0x0F
)

// Line attribute IDs (gpio_v2_line_attr_id)
const (
	GPIO_V2_LINE_ATTR_ID_FLAGS         = 1
	GPIO_V2_LINE_ATTR_ID_OUTPUT_VALUES = 2
	GPIO_V2_LINE_ATTR_ID_DEBOUNCE      = 3
)

// Line flags (gpio_v2_line_flag, 64-bit)
const (
	GPIO_V2_LINE_FLAG_USED                 = 1 << 0
	GPIO_V2_LINE_FLAG_ACTIVE_LOW           = 1 << 1
	GPIO_V2_LINE_FLAG_INPUT                = 1 << 2
	GPIO_V2_LINE_FLAG_OUTPUT               = 1 << 3
	GPIO_V2_LINE_FLAG_EDGE_RISING          = 1 << 4
	GPIO_V2_LINE_FLAG_EDGE_FALLING         = 1 << 5
	GPIO_V2_LINE_FLAG_OPEN_DRAIN           = 1 << 6
	GPIO_V2_LINE_FLAG_OPEN_SOURCE          = 1 << 7
	GPIO_V2_LINE_FLAG_BIAS_PULL_UP         = 1 << 8
	GPIO_V2_LINE_FLAG_BIAS_PULL_DOWN       = 1 << 9
	GPIO_V2_LINE_FLAG_BIAS_DISABLED        = 1 << 10
	GPIO_V2_LINE_FLAG_EVENT_CLOCK_REALTIME = 1 << 11
	GPIO_V2_LINE_FLAG_EVENT_CLOCK_HTE      = 1 << 12
)

// ioctl encoding constants (asm-generic/ioctl.h, externally fixed contract)
const (
	_IOC_NONE  = 0
	_IOC_WRITE = 1
	_IOC_READ  = 2

	_IOC_NRBITS   = 8
	_IOC_TYPEBITS = 8
	_IOC_SIZEBITS = 14
	_IOC_DIRBITS  = 2

	_IOC_NRSHIFT   = 0
	_IOC_TYPESHIFT = _IOC_NRSHIFT + _IOC_NRBITS
	_IOC_SIZESHIFT = _IOC_TYPESHIFT + _IOC_TYPEBITS
	_IOC_DIRSHIFT  = _IOC_SIZESHIFT + _IOC_SIZEBITS
)

// IoctlEncode packs a direction, type (magic), command number and payload
// size into a 32-bit ioctl request code, mirroring _IOC() from
// asm-generic/ioctl.h. Like the macro it performs no range checks: an
// oversized payload wraps through the direction bits rather than failing.
func IoctlEncode(dir, typ, nr, size uint32) uint32 {
	return (dir << _IOC_DIRSHIFT) |
		(size << _IOC_SIZESHIFT) |
		(typ << _IOC_TYPESHIFT) |
		(nr << _IOC_NRSHIFT)
}

// IO, IOR, IOW and IOWR mirror the kernel macros of the same names.
func IO(typ, nr uint32) uint32 {
	return IoctlEncode(_IOC_NONE, typ, nr, 0)
}

func IOR(typ, nr, size uint32) uint32 {
	return IoctlEncode(_IOC_READ, typ, nr, size)
}

func IOW(typ, nr, size uint32) uint32 {
	return IoctlEncode(_IOC_WRITE, typ, nr, size)
}

func IOWR(typ, nr, size uint32) uint32 {
	return IoctlEncode(_IOC_READ|_IOC_WRITE, typ, nr, size)
}

// GPIO chardev ioctl request codes. Payload sizes come from the live
// struct definitions so a layout change shows up in the encoded value,
// exactly as _IOR(type, nr, struct ...) does in C.
var (
	GPIO_GET_CHIPINFO_IOCTL          = IOR(GPIO_IOCTL_MAGIC, GPIO_GET_CHIPINFO, uint32(unsafe.Sizeof(ChipInfo{})))
	GPIO_V2_GET_LINEINFO_IOCTL       = IOWR(GPIO_IOCTL_MAGIC, GPIO_V2_GET_LINEINFO, uint32(unsafe.Sizeof(LineInfo{})))
	GPIO_V2_GET_LINEINFO_WATCH_IOCTL = IOWR(GPIO_IOCTL_MAGIC, GPIO_V2_GET_LINEINFO_WATCH, uint32(unsafe.Sizeof(LineInfo{})))
	GPIO_V2_GET_LINE_IOCTL           = IOWR(GPIO_IOCTL_MAGIC, GPIO_V2_GET_LINE, uint32(unsafe.Sizeof(LineRequest{})))
	GPIO_V2_LINE_SET_CONFIG_IOCTL    = IOWR(GPIO_IOCTL_MAGIC, GPIO_V2_LINE_SET_CONFIG, uint32(unsafe.Sizeof(LineConfig{})))
	GPIO_V2_LINE_GET_VALUES_IOCTL    = IOWR(GPIO_IOCTL_MAGIC, GPIO_V2_LINE_GET_VALUES, uint32(unsafe.Sizeof(LineValues{})))
	GPIO_V2_LINE_SET_VALUES_IOCTL    = IOWR(GPIO_IOCTL_MAGIC, GPIO_V2_LINE_SET_VALUES, uint32(unsafe.Sizeof(LineValues{})))

	// v1 watch teardown; the payload is the bare __u32 line offset
	GPIO_GET_LINEINFO_UNWATCH_IOCTL = IOWR(GPIO_IOCTL_MAGIC, GPIO_GET_LINEINFO_UNWATCH, uint32(unsafe.Sizeof(uint32(0))))
)
