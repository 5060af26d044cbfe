package cpuinfo

import (
	"fmt"
	"io"
	"os"
)

// DefaultPath is where Linux exposes the CPU description.
const DefaultPath = "/proc/cpuinfo"

// ReadSource acquires the raw cpuinfo blob. When r is non-nil the blob is
// read from it (piped input); otherwise the file at path is read.
func ReadSource(path string, r io.Reader) (string, error) {
	if r != nil {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("read piped cpuinfo: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// Hostname returns the local host name for diagnostics, or "" if it cannot
// be determined.
func Hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return ""
	}
	return name
}
