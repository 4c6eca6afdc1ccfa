// internal/transport/devices.go
package transport

import (
	"os"
	"path/filepath"
	"strings"
)

// ListDevices returns the entries of dir whose names start with prefix, sorted.
// Diagnostic only; nothing is opened.
func ListDevices(dir, prefix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), prefix) {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	return out, nil
}
