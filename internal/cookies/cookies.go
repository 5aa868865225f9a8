// Package cookies loads session credentials exported from a browser.
package cookies

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Cookie is one name/value pair. Browser exports carry more fields
// (domain, expiry, and so on); only name and value matter for the fetch.
type Cookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Store reads a JSON array of cookie objects from a fixed path.
type Store struct {
	Path string
}

// Load returns the cookie set. A missing file is not an error: it yields
// an empty set and fetches proceed unauthenticated. A file that exists but
// cannot be parsed is reported so the operator can fix the export.
func (s Store) Load() ([]Cookie, error) {
	if s.Path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cookie file: %w", err)
	}
	var raw []Cookie
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse cookie file %s: %w", s.Path, err)
	}
	out := make([]Cookie, 0, len(raw))
	for _, c := range raw {
		if c.Name == "" {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
