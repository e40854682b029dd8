package gpio

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference values for the default Linux ioctl encoding (14 size bits,
// direction in the top two bits), 64-bit alignment rules.
const expectedReport = `0x8044B401 GPIO_GET_CHIPINFO_IOCTL
0xC100B405 GPIO_V2_GET_LINEINFO_IOCTL
0xC100B406 GPIO_V2_GET_LINEINFO_WATCH_IOCTL
0xC250B407 GPIO_V2_GET_LINE_IOCTL
0xC110B40D GPIO_V2_LINE_SET_CONFIG_IOCTL
0xC010B40E GPIO_V2_LINE_GET_VALUES_IOCTL
0xC010B40F GPIO_V2_LINE_SET_VALUES_IOCTL
`

func TestWriteReportGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, nil))
	assert.Equal(t, expectedReport, buf.String())
}

func TestWriteReportFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, nil))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)

	lineRe := regexp.MustCompile(`^0x[0-9A-F]{8} GPIO_\w+$`)
	for _, line := range lines {
		assert.Regexp(t, lineRe, line)
	}
}

func TestWriteReportIdempotent(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, WriteReport(&first, nil))
	require.NoError(t, WriteReport(&second, nil))
	assert.Equal(t, first.String(), second.String())
}

func TestCodesOrder(t *testing.T) {
	want := []string{
		"GPIO_GET_CHIPINFO_IOCTL",
		"GPIO_V2_GET_LINEINFO_IOCTL",
		"GPIO_V2_GET_LINEINFO_WATCH_IOCTL",
		"GPIO_V2_GET_LINE_IOCTL",
		"GPIO_V2_LINE_SET_CONFIG_IOCTL",
		"GPIO_V2_LINE_GET_VALUES_IOCTL",
		"GPIO_V2_LINE_SET_VALUES_IOCTL",
	}

	codes := Codes()
	require.Len(t, codes, len(want))
	for i, c := range codes {
		assert.Equal(t, want[i], c.Name)
		assert.NotZero(t, c.Value)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWriteReportWriterError(t *testing.T) {
	err := WriteReport(failingWriter{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}
