// internal/cli/labels.go
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadLabels reads one label per line from path, preserving file order.
// Blank lines are skipped; a duplicated label or a file without labels
// is a configuration error.
func LoadLabels(path string) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}
	defer fh.Close()

	seen := make(map[string]struct{})
	var labels []string
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		label := strings.TrimRight(sc.Text(), " \t\r")
		if label == "" {
			continue
		}
		if _, dup := seen[label]; dup {
			return nil, fmt.Errorf("duplicated label %q in file %s", label, path)
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read labels from %s: %w", path, err)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("no label in file %s", path)
	}
	return labels, nil
}
