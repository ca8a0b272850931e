package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSONArray pulls a JSON array out of raw model output and decodes it
// into a slice of T. Models often wrap arrays in markdown fences or
// conversational text, so the extractor scans for the first balanced
// bracket pair instead of requiring clean JSON.
func ExtractJSONArray[T any](raw string, validate func([]T) error) ([]T, error) {
	cleaned := stripCodeFences(raw)

	jsonStr, err := extractArray(cleaned)
	if err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal([]byte(jsonStr), &items); err != nil {
		// Retry after stripping // comments some models insert.
		stripped := stripJSONComments(jsonStr)
		if err2 := json.Unmarshal([]byte(stripped), &items); err2 != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
		}
	}

	if validate != nil {
		if err := validate(items); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
		}
	}

	return items, nil
}

// extractArray finds the first balanced top-level JSON array in s.
func extractArray(s string) (string, error) {
	start := strings.IndexByte(s, '[')
	if start == -1 {
		return "", fmt.Errorf("%w: no array found", ErrInvalidOutput)
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		ch := s[i]

		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}

	return "", fmt.Errorf("%w: unbalanced array", ErrInvalidOutput)
}

// stripCodeFences removes markdown code fences (```json ... ```) if present.
func stripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)

	if idx := strings.Index(trimmed, "```"); idx != -1 {
		rest := trimmed[idx+3:]
		if nl := strings.IndexByte(rest, '\n'); nl != -1 {
			firstLine := strings.TrimSpace(rest[:nl])
			// A fence language tag is a short bare word like "json".
			if len(firstLine) <= 10 && !strings.ContainsAny(firstLine, "[]{}") {
				rest = rest[nl+1:]
			}
		}
		if end := strings.Index(rest, "```"); end != -1 {
			return rest[:end]
		}
		return rest
	}

	return trimmed
}

// stripJSONComments removes // line comments outside of strings.
func stripJSONComments(s string) string {
	var b strings.Builder
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		ch := s[i]

		if escaped {
			b.WriteByte(ch)
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			b.WriteByte(ch)
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			b.WriteByte(ch)
			continue
		}
		if !inString && ch == '/' && i+1 < len(s) && s[i+1] == '/' {
			for i < len(s) && s[i] != '\n' {
				i++
			}
			if i < len(s) {
				b.WriteByte('\n')
			}
			continue
		}
		b.WriteByte(ch)
	}

	return b.String()
}
