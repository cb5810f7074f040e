package timeline

import (
	"fmt"
	"os"
)

// SaveFile writes tl to path in the format implied by its extension.
func SaveFile(tl *Timeline, path string) error {
	data, err := Marshal(tl, FormatFromPath(path))
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// LoadFile reads a timeline from path in the format implied by its extension.
func LoadFile(path string) (*Timeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return Unmarshal(data, FormatFromPath(path))
}
