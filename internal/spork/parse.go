package spork

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyOverrides sets sporks from NAME=VALUE pairs as given on the command line.
func (m *Manager) ApplyOverrides(pairs []string) error {
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("spork override %q: expected NAME=VALUE", pair)
		}
		id, err := IDByName(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return fmt.Errorf("spork override %q: %w", pair, err)
		}
		if err := m.Set(id, value); err != nil {
			return err
		}
	}
	return nil
}
