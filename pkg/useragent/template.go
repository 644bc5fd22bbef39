package useragent

import "strings"

// template is a replacement string from the rules document. It may reference
// capture groups of the rule's regex positionally ($1 through $9) or be a
// plain literal. An empty template never produces a value.
type template string

// resolve substitutes capture group references with the values captured by a
// successful match and returns the trimmed result. Groups that did not
// participate in the match substitute as empty strings. A result that is
// empty after trimming yields nil, so callers always see absence instead of
// an empty-string field.
//
// match is the regexp.FindStringSubmatch result: match[0] is the full match,
// match[1..] are the capture groups.
func (t template) resolve(match []string) *string {
	if t == "" {
		return nil
	}

	s := string(t)
	if strings.ContainsRune(s, '$') {
		var b strings.Builder
		b.Grow(len(s))
		for i := 0; i < len(s); i++ {
			c := s[i]
			if c == '$' && i+1 < len(s) && s[i+1] >= '1' && s[i+1] <= '9' {
				if idx := int(s[i+1] - '0'); idx < len(match) {
					b.WriteString(match[idx])
				}
				i++
				continue
			}
			b.WriteByte(c)
		}
		s = b.String()
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// orDefault returns the authored template, or the category default when the
// entry left it unset.
func orDefault(authored, def string) template {
	if authored == "" {
		return template(def)
	}
	return template(authored)
}
