package useragent

import "regexp"

// Product identifies the browser or client application named in a user agent
// string. Every field is optional; nil means the rule table produced no value.
type Product struct {
	Name  *string `json:"name,omitempty"`
	Major *string `json:"major,omitempty"`
	Minor *string `json:"minor,omitempty"`
	Patch *string `json:"patch,omitempty"`
}

type productRule struct {
	re     *regexp.Regexp
	family template
	v1     template
	v2     template
	v3     template
}

// ParseProduct matches agent against the product rules in table order and
// resolves the first matching rule's templates. A Product with all fields
// nil is returned when no rule matches.
func (t *RuleTable) ParseProduct(agent string) Product {
	for _, r := range t.product {
		m := r.re.FindStringSubmatch(agent)
		if m == nil {
			continue
		}
		return Product{
			Name:  r.family.resolve(m),
			Major: r.v1.resolve(m),
			Minor: r.v2.resolve(m),
			Patch: r.v3.resolve(m),
		}
	}
	return Product{}
}
