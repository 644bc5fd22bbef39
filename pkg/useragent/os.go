package useragent

import "regexp"

// OS identifies the operating system named in a user agent string.
type OS struct {
	Name       *string `json:"name,omitempty"`
	Major      *string `json:"major,omitempty"`
	Minor      *string `json:"minor,omitempty"`
	Patch      *string `json:"patch,omitempty"`
	PatchMinor *string `json:"patch_minor,omitempty"`
}

type osRule struct {
	re   *regexp.Regexp
	name template
	v1   template
	v2   template
	v3   template
	v4   template
}

// ParseOS matches agent against the OS rules in table order and resolves the
// first matching rule's templates.
func (t *RuleTable) ParseOS(agent string) OS {
	for _, r := range t.os {
		m := r.re.FindStringSubmatch(agent)
		if m == nil {
			continue
		}
		return OS{
			Name:       r.name.resolve(m),
			Major:      r.v1.resolve(m),
			Minor:      r.v2.resolve(m),
			Patch:      r.v3.resolve(m),
			PatchMinor: r.v4.resolve(m),
		}
	}
	return OS{}
}
