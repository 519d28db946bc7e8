package provider

import (
	"encoding/json"
	"strings"

	"github.com/nulzo/provider-gateway/internal/catalog"
)

const rawSnippetLimit = 512

// StripJSONWrapping removes the markdown code fences some providers wrap
// around JSON-mode output. The payload itself is never altered.
func StripJSONWrapping(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}
	return s
}

// DecodeJSON parses a JSON-mode reply into out, applying the shared
// wrapping rules. A failure is a *ParseError carrying a bounded snippet of
// the raw reply for diagnostics. Partial data is never returned: out is only
// populated on full success.
func DecodeJSON(p catalog.Provider, raw string, out any) error {
	cleaned := StripJSONWrapping(raw)
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		snippet := cleaned
		if len(snippet) > rawSnippetLimit {
			snippet = snippet[:rawSnippetLimit]
		}
		return &ParseError{Provider: p, Raw: snippet, Err: err}
	}
	return nil
}
