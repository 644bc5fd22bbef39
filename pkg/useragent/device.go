package useragent

import "regexp"

// Device identifies the hardware named in a user agent string. Name is the
// device family classification, Brand and Model the manufacturer details; a
// single rule can populate all three from one match.
type Device struct {
	Name  *string `json:"name,omitempty"`
	Brand *string `json:"brand,omitempty"`
	Model *string `json:"model,omitempty"`
}

type deviceRule struct {
	re    *regexp.Regexp
	name  template
	brand template
	model template
}

// ParseDevice matches agent against the device rules in table order and
// resolves the first matching rule's templates.
func (t *RuleTable) ParseDevice(agent string) Device {
	for _, r := range t.device {
		m := r.re.FindStringSubmatch(agent)
		if m == nil {
			continue
		}
		return Device{
			Name:  r.name.resolve(m),
			Brand: r.brand.resolve(m),
			Model: r.model.resolve(m),
		}
	}
	return Device{}
}
