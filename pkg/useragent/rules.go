package useragent

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// RuleTable holds the compiled classification rules for all five categories.
// It is immutable after loading and safe for unsynchronized concurrent use.
// Rule order within a category is the order of the source document and
// encodes authoring priority: evaluation is strictly first-match-wins.
type RuleTable struct {
	product []productRule
	os      []osRule
	device  []deviceRule
	cpu     []cpuRule
	engine  []engineRule
}

// rulesDocument mirrors the YAML layout of a rules file. All five sections
// are required; their entry fields follow the uap replacement conventions.
type rulesDocument struct {
	UserAgentParsers []productEntry `yaml:"user_agent_parsers"`
	OSParsers        []osEntry      `yaml:"os_parsers"`
	DeviceParsers    []deviceEntry  `yaml:"device_parsers"`
	CPUParsers       []cpuEntry     `yaml:"cpu_parsers"`
	EngineParsers    []engineEntry  `yaml:"engine_parsers"`
}

type productEntry struct {
	Regex     string `yaml:"regex"`
	RegexFlag string `yaml:"regex_flag"`
	Family    string `yaml:"family_replacement"`
	V1        string `yaml:"v1_replacement"`
	V2        string `yaml:"v2_replacement"`
	V3        string `yaml:"v3_replacement"`
}

type osEntry struct {
	Regex     string `yaml:"regex"`
	RegexFlag string `yaml:"regex_flag"`
	OS        string `yaml:"os_replacement"`
	V1        string `yaml:"os_v1_replacement"`
	V2        string `yaml:"os_v2_replacement"`
	V3        string `yaml:"os_v3_replacement"`
	V4        string `yaml:"os_v4_replacement"`
}

type deviceEntry struct {
	Regex     string `yaml:"regex"`
	RegexFlag string `yaml:"regex_flag"`
	Device    string `yaml:"device_replacement"`
	Brand     string `yaml:"brand_replacement"`
	Model     string `yaml:"model_replacement"`
}

type cpuEntry struct {
	Regex        string `yaml:"regex"`
	RegexFlag    string `yaml:"regex_flag"`
	Architecture string `yaml:"architecture_replacement"`
}

type engineEntry struct {
	Regex     string `yaml:"regex"`
	RegexFlag string `yaml:"regex_flag"`
	Engine    string `yaml:"engine_replacement"`
	V1        string `yaml:"engine_v1_replacement"`
	V2        string `yaml:"engine_v2_replacement"`
	V3        string `yaml:"engine_v3_replacement"`
}

// LoadRulesFile reads and compiles a rules document from disk.
func LoadRulesFile(path string) (*RuleTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrRulesUnavailable, err)
	}
	return LoadRules(data)
}

// LoadRules parses and compiles a YAML rules document. Loading is
// all-or-nothing: any schema violation or invalid regex fails the whole
// document and no table is produced.
func LoadRules(data []byte) (*RuleTable, error) {
	var doc rulesDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidRules, err)
	}

	for section, entries := range map[string]int{
		"user_agent_parsers": len(doc.UserAgentParsers),
		"os_parsers":         len(doc.OSParsers),
		"device_parsers":     len(doc.DeviceParsers),
		"cpu_parsers":        len(doc.CPUParsers),
		"engine_parsers":     len(doc.EngineParsers),
	} {
		if entries == 0 {
			return nil, fmt.Errorf("%w: missing or empty section %q", ErrInvalidRules, section)
		}
	}

	t := &RuleTable{
		product: make([]productRule, 0, len(doc.UserAgentParsers)),
		os:      make([]osRule, 0, len(doc.OSParsers)),
		device:  make([]deviceRule, 0, len(doc.DeviceParsers)),
		cpu:     make([]cpuRule, 0, len(doc.CPUParsers)),
		engine:  make([]engineRule, 0, len(doc.EngineParsers)),
	}

	for i, e := range doc.UserAgentParsers {
		re, err := compilePattern(e.Regex, e.RegexFlag)
		if err != nil {
			return nil, fmt.Errorf("user_agent_parsers[%d]: %w", i, err)
		}
		t.product = append(t.product, productRule{
			re:     re,
			family: orDefault(e.Family, "$1"),
			v1:     orDefault(e.V1, "$2"),
			v2:     orDefault(e.V2, "$3"),
			v3:     orDefault(e.V3, "$4"),
		})
	}

	for i, e := range doc.OSParsers {
		re, err := compilePattern(e.Regex, e.RegexFlag)
		if err != nil {
			return nil, fmt.Errorf("os_parsers[%d]: %w", i, err)
		}
		t.os = append(t.os, osRule{
			re:   re,
			name: orDefault(e.OS, "$1"),
			v1:   orDefault(e.V1, "$2"),
			v2:   orDefault(e.V2, "$3"),
			v3:   orDefault(e.V3, "$4"),
			v4:   orDefault(e.V4, "$5"),
		})
	}

	for i, e := range doc.DeviceParsers {
		re, err := compilePattern(e.Regex, e.RegexFlag)
		if err != nil {
			return nil, fmt.Errorf("device_parsers[%d]: %w", i, err)
		}
		// Brand carries no default: it is absent unless the rule authors it.
		t.device = append(t.device, deviceRule{
			re:    re,
			name:  orDefault(e.Device, "$1"),
			brand: template(e.Brand),
			model: orDefault(e.Model, "$1"),
		})
	}

	for i, e := range doc.CPUParsers {
		re, err := compilePattern(e.Regex, e.RegexFlag)
		if err != nil {
			return nil, fmt.Errorf("cpu_parsers[%d]: %w", i, err)
		}
		t.cpu = append(t.cpu, cpuRule{
			re:           re,
			architecture: orDefault(e.Architecture, "$1"),
		})
	}

	for i, e := range doc.EngineParsers {
		re, err := compilePattern(e.Regex, e.RegexFlag)
		if err != nil {
			return nil, fmt.Errorf("engine_parsers[%d]: %w", i, err)
		}
		t.engine = append(t.engine, engineRule{
			re:   re,
			name: orDefault(e.Engine, "$1"),
			v1:   orDefault(e.V1, "$2"),
			v2:   orDefault(e.V2, "$3"),
			v3:   orDefault(e.V3, "$4"),
		})
	}

	return t, nil
}

// compilePattern compiles a rule regex once, at load time. The optional flag
// (e.g. "i") is applied as an inline group. Matching uses RE2 semantics, so
// evaluation cost stays linear in the input regardless of rule authoring.
func compilePattern(expr, flag string) (*regexp.Regexp, error) {
	if expr == "" {
		return nil, ErrEmptyPattern
	}
	if flag != "" {
		expr = "(?" + flag + ")" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Join(ErrInvalidPattern, err)
	}
	return re, nil
}
