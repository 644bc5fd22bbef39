package useragent

import "regexp"

// CPU identifies the processor architecture named in a user agent string.
type CPU struct {
	Architecture *string `json:"architecture,omitempty"`
}

type cpuRule struct {
	re           *regexp.Regexp
	architecture template
}

// ParseCPU matches agent against the CPU rules in table order and resolves
// the first matching rule's template.
func (t *RuleTable) ParseCPU(agent string) CPU {
	for _, r := range t.cpu {
		m := r.re.FindStringSubmatch(agent)
		if m == nil {
			continue
		}
		return CPU{Architecture: r.architecture.resolve(m)}
	}
	return CPU{}
}
