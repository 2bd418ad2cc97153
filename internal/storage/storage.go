// Package storage reads and writes text files as line slices.
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// maxLineBytes caps the length of a single line so a pathological file
// cannot blow up the scanner.
const maxLineBytes = 10 * 1024 * 1024

// Load reads path into a slice of lines. A missing file is not an error:
// editing a new file starts from an empty buffer. When the file holds more
// than maxLines lines the result is cut off there and truncated is true.
// maxLines <= 0 means no limit.
func Load(path string, maxLines int) (lines []string, truncated bool, err error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if maxLines > 0 && len(lines) >= maxLines {
			truncated = true
			break
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, truncated, nil
}

// Save writes lines to path, each followed by a newline, replacing whatever
// was there.
func Save(path string, lines []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, line := range lines {
		writer.WriteString(line)
		writer.WriteString("\n")
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return file.Close()
}
