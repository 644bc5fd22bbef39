package useragent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uakit/pkg/useragent"
)

// validRules is a minimal document with all five required sections.
const validRules = `
user_agent_parsers:
  - regex: '(Foo)/(\d+)\.(\d+)(?:\.(\d+))?'
os_parsers:
  - regex: 'FooOS (\d+)\.(\d+)'
    os_replacement: 'FooOS'
    os_v1_replacement: '$1'
    os_v2_replacement: '$2'
device_parsers:
  - regex: '\((FooPhone)\)'
    brand_replacement: 'Foo Inc'
cpu_parsers:
  - regex: 'foo64'
    architecture_replacement: 'amd64'
engine_parsers:
  - regex: '(FooKit)/(\d+)'
`

func TestLoadRules(t *testing.T) {
	table, err := useragent.LoadRules([]byte(validRules))
	require.NoError(t, err)
	require.NotNil(t, table)

	ua := table.Parse("Mozilla/5.0 (FooPhone) FooOS 2.1 FooKit/7 Foo/1.2.3 foo64", "10.0.0.1")

	require.NotNil(t, ua.Product.Name)
	assert.Equal(t, "Foo", *ua.Product.Name)
	assert.Equal(t, "1", *ua.Product.Major)
	assert.Equal(t, "2", *ua.Product.Minor)
	assert.Equal(t, "3", *ua.Product.Patch)

	require.NotNil(t, ua.OS.Name)
	assert.Equal(t, "FooOS", *ua.OS.Name)
	assert.Equal(t, "2", *ua.OS.Major)
	assert.Equal(t, "1", *ua.OS.Minor)
	assert.Nil(t, ua.OS.Patch)

	require.NotNil(t, ua.Device.Name)
	assert.Equal(t, "FooPhone", *ua.Device.Name)
	assert.Equal(t, "Foo Inc", *ua.Device.Brand)
	assert.Equal(t, "FooPhone", *ua.Device.Model)

	require.NotNil(t, ua.CPU.Architecture)
	assert.Equal(t, "amd64", *ua.CPU.Architecture)

	require.NotNil(t, ua.Engine.Name)
	assert.Equal(t, "FooKit", *ua.Engine.Name)
	assert.Equal(t, "7", *ua.Engine.Major)
}

func TestLoadRulesMissingSection(t *testing.T) {
	doc := `
user_agent_parsers:
  - regex: '(Foo)/(\d+)'
os_parsers:
  - regex: 'FooOS'
device_parsers:
  - regex: 'FooPhone'
engine_parsers:
  - regex: '(FooKit)/(\d+)'
`
	table, err := useragent.LoadRules([]byte(doc))
	assert.Nil(t, table)
	require.ErrorIs(t, err, useragent.ErrInvalidRules)
	assert.Contains(t, err.Error(), "cpu_parsers")
}

func TestLoadRulesNotYAML(t *testing.T) {
	table, err := useragent.LoadRules([]byte("{not yaml: ["))
	assert.Nil(t, table)
	assert.ErrorIs(t, err, useragent.ErrInvalidRules)
}

func TestLoadRulesEntryWithoutRegex(t *testing.T) {
	doc := validRules + `
  - engine_replacement: 'Orphan'
`
	table, err := useragent.LoadRules([]byte(doc))
	assert.Nil(t, table)
	require.ErrorIs(t, err, useragent.ErrEmptyPattern)
	assert.Contains(t, err.Error(), "engine_parsers[1]")
}

func TestLoadRulesInvalidPattern(t *testing.T) {
	doc := `
user_agent_parsers:
  - regex: '(Foo'
os_parsers:
  - regex: 'FooOS'
device_parsers:
  - regex: 'FooPhone'
cpu_parsers:
  - regex: 'foo64'
engine_parsers:
  - regex: 'FooKit'
`
	table, err := useragent.LoadRules([]byte(doc))
	assert.Nil(t, table)
	require.ErrorIs(t, err, useragent.ErrInvalidPattern)
	assert.Contains(t, err.Error(), "user_agent_parsers[0]")
}

func TestLoadRulesFileMissing(t *testing.T) {
	table, err := useragent.LoadRulesFile("testdata/does-not-exist.yaml")
	assert.Nil(t, table)
	assert.ErrorIs(t, err, useragent.ErrRulesUnavailable)
}

func TestFirstMatchWins(t *testing.T) {
	doc := `
user_agent_parsers:
  - regex: '(Foo)/(\d+)'
    family_replacement: 'First'
  - regex: '(Foo)/(\d+)'
    family_replacement: 'Second'
os_parsers:
  - regex: 'FooOS'
device_parsers:
  - regex: 'FooPhone'
cpu_parsers:
  - regex: 'foo64'
engine_parsers:
  - regex: 'FooKit'
`
	table, err := useragent.LoadRules([]byte(doc))
	require.NoError(t, err)

	product := table.ParseProduct("Foo/3")
	require.NotNil(t, product.Name)
	assert.Equal(t, "First", *product.Name)
}

func TestRegexFlag(t *testing.T) {
	doc := `
user_agent_parsers:
  - regex: '(foo)/(\d+)'
    regex_flag: 'i'
os_parsers:
  - regex: 'FooOS'
device_parsers:
  - regex: 'FooPhone'
cpu_parsers:
  - regex: 'foo64'
engine_parsers:
  - regex: 'FooKit'
`
	table, err := useragent.LoadRules([]byte(doc))
	require.NoError(t, err)

	product := table.ParseProduct("FOO/9")
	require.NotNil(t, product.Name)
	assert.Equal(t, "FOO", *product.Name)
	assert.Equal(t, "9", *product.Major)
}

func TestNoMatchYieldsAbsence(t *testing.T) {
	table, err := useragent.LoadRules([]byte(validRules))
	require.NoError(t, err)

	product := table.ParseProduct("garbage-string-123")
	assert.Equal(t, useragent.Product{}, product)
	assert.Equal(t, useragent.OS{}, table.ParseOS("garbage-string-123"))
	assert.Equal(t, useragent.Device{}, table.ParseDevice("garbage-string-123"))
	assert.Equal(t, useragent.CPU{}, table.ParseCPU("garbage-string-123"))
	assert.Equal(t, useragent.Engine{}, table.ParseEngine("garbage-string-123"))
}

func TestBrandHasNoDefaultTemplate(t *testing.T) {
	doc := `
user_agent_parsers:
  - regex: '(Foo)/(\d+)'
os_parsers:
  - regex: 'FooOS'
device_parsers:
  - regex: '(BarPhone)'
cpu_parsers:
  - regex: 'foo64'
engine_parsers:
  - regex: 'FooKit'
`
	table, err := useragent.LoadRules([]byte(doc))
	require.NoError(t, err)

	device := table.ParseDevice("a BarPhone here")
	require.NotNil(t, device.Name)
	assert.Equal(t, "BarPhone", *device.Name)
	assert.Equal(t, "BarPhone", *device.Model)
	assert.Nil(t, device.Brand, "brand must stay absent unless authored")
}
