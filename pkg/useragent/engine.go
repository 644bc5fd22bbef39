package useragent

import "regexp"

// Engine identifies the rendering engine named in a user agent string.
type Engine struct {
	Name  *string `json:"name,omitempty"`
	Major *string `json:"major,omitempty"`
	Minor *string `json:"minor,omitempty"`
	Patch *string `json:"patch,omitempty"`
}

type engineRule struct {
	re   *regexp.Regexp
	name template
	v1   template
	v2   template
	v3   template
}

// ParseEngine matches agent against the engine rules in table order and
// resolves the first matching rule's templates.
func (t *RuleTable) ParseEngine(agent string) Engine {
	for _, r := range t.engine {
		m := r.re.FindStringSubmatch(agent)
		if m == nil {
			continue
		}
		return Engine{
			Name:  r.name.resolve(m),
			Major: r.v1.resolve(m),
			Minor: r.v2.resolve(m),
			Patch: r.v3.resolve(m),
		}
	}
	return Engine{}
}
