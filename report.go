// Package gpio reports the request codes of the Linux GPIO
// character-device ioctl interface.
//
// The codes are derived the same way the kernel derives them: the
// asm-generic _IOC bit packing applied to the 0xB4 magic, the per-request
// command number and the size of the request's payload struct. Nothing
// here touches a device node; the package exists to print what the codes
// are, not to issue them.
package gpio

import (
	"fmt"
	"io"

	"github.com/Curuvar-Ltd/go-gpio/internal/logging"
	"github.com/Curuvar-Ltd/go-gpio/internal/uapi"
)

// Code pairs a GPIO ioctl request code with its symbolic kernel name.
type Code struct {
	Name  string
	Value uint32
}

// Codes returns the reported request codes in their fixed order: the v1
// chip-info request followed by the v2 line API requests, by command
// number within each group.
func Codes() []Code {
	return []Code{
		{"GPIO_GET_CHIPINFO_IOCTL", uapi.GPIO_GET_CHIPINFO_IOCTL},
		{"GPIO_V2_GET_LINEINFO_IOCTL", uapi.GPIO_V2_GET_LINEINFO_IOCTL},
		{"GPIO_V2_GET_LINEINFO_WATCH_IOCTL", uapi.GPIO_V2_GET_LINEINFO_WATCH_IOCTL},
		{"GPIO_V2_GET_LINE_IOCTL", uapi.GPIO_V2_GET_LINE_IOCTL},
		{"GPIO_V2_LINE_SET_CONFIG_IOCTL", uapi.GPIO_V2_LINE_SET_CONFIG_IOCTL},
		{"GPIO_V2_LINE_GET_VALUES_IOCTL", uapi.GPIO_V2_LINE_GET_VALUES_IOCTL},
		{"GPIO_V2_LINE_SET_VALUES_IOCTL", uapi.GPIO_V2_LINE_SET_VALUES_IOCTL},
	}
}

// WriteReport prints one "0xXXXXXXXX NAME" line per code to w, in the
// order Codes returns them. The value is 8 zero-padded uppercase hex
// digits. The only possible failure is the writer's own.
func WriteReport(w io.Writer, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.Default()
	}

	for _, c := range Codes() {
		logger.Debug("emitting request code", "name", c.Name, "value", fmt.Sprintf("0x%08X", c.Value))
		if _, err := fmt.Fprintf(w, "0x%08X %s\n", c.Value, c.Name); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	return nil
}
