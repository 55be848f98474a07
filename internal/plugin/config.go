package plugin

import (
	"encoding/xml"
	"fmt"
)

// toolConfig mirrors the host-authored configuration document. The root
// element name is not fixed, so XMLName carries no tag; FieldSelect is a
// pointer to distinguish an absent element from an empty one (both are
// configuration errors, surfaced identically).
type toolConfig struct {
	XMLName     xml.Name
	FieldSelect *string `xml:"FieldSelect"`
}

// parseFieldSelect extracts the analyzed field name from the raw XML
// configuration.
func parseFieldSelect(raw string) (string, error) {
	var cfg toolConfig
	if err := xml.Unmarshal([]byte(raw), &cfg); err != nil {
		return "", fmt.Errorf("parse configuration: %w", err)
	}
	if cfg.FieldSelect == nil || *cfg.FieldSelect == "" {
		return "", ErrNoFieldSelected
	}
	return *cfg.FieldSelect, nil
}
