// gpio-ioctl-codes prints the request codes of the GPIO chardev ioctl
// interface, one "0xXXXXXXXX NAME" line per request. It takes no
// arguments and touches no device.
package main

import (
	"os"

	gpio "github.com/Curuvar-Ltd/go-gpio"
	"github.com/Curuvar-Ltd/go-gpio/internal/logging"
)

func main() {
	logger := logging.NewLogger(logging.DefaultConfig())
	logging.SetDefault(logger)

	if err := gpio.WriteReport(os.Stdout, logger); err != nil {
		logger.Error("failed to write report", "error", err)
		os.Exit(1)
	}
}
