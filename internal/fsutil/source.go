package fsutil

import (
	"fmt"
	"io"
)

// StdinName is the input name that selects standard input.
const StdinName = "-"

// ReadSource returns the text of the named input. The name "-" reads stdin
// to EOF; anything else is read from fsys.
func ReadSource(fsys FileSystem, name string, stdin io.Reader) (string, error) {
	if name == StdinName {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := fsys.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}
