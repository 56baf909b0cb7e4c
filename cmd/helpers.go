package cmd

import (
	"fmt"
	"strconv"
)

// parseFolderID parses a positional folder ID argument.
func parseFolderID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid folder id %q", arg)
	}
	return id, nil
}
