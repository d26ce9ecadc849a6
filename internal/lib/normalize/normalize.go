// Package normalize adapts upstream wire payloads to the casing used inside
// the service: snake_case object keys become camelCase.
package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/go-chi/render"
)

// Key rewrites every underscore followed by an ASCII lowercase letter into the
// uppercase letter. All other bytes are kept as they are.
func Key(s string) string {
	if strings.IndexByte(s, '_') < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' && i+1 < len(s) && isLower(s[i+1]) {
			b.WriteByte(s[i+1] - 'a' + 'A')
			i++
			continue
		}
		b.WriteByte(c)
	}

	return b.String()
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// Keys returns a copy of v with every object key passed through Key,
// descending into nested objects and arrays. v itself is never modified.
//
// When two keys of one object map to the same name, a key that is already in
// its final form wins over a rewritten one; among rewritten keys the
// lexically greatest source key wins.
func Keys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.SortFunc(keys, func(a, b string) int {
			ak, bk := Key(a) == a, Key(b) == b
			if ak != bk {
				if ak {
					return 1
				}
				return -1
			}
			return strings.Compare(a, b)
		})

		out := make(map[string]any, len(t))
		for _, k := range keys {
			out[Key(k)] = Keys(t[k])
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Keys(val)
		}
		return out
	default:
		return v
	}
}

// Decode reads a JSON document from r, normalizes its keys and decodes the
// result into v, which is expected to carry camelCase json tags.
func Decode(r io.Reader, v any) error {
	const op = "normalize.Decode"

	var raw any

	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	b, err := json.Marshal(Keys(raw))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = render.DecodeJSON(bytes.NewReader(b), v); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
