package useragent

import (
	"regexp"
	"strings"

	json "github.com/goccy/go-json"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UserAgent is the aggregate classification of a single user agent string.
// The caller-supplied address is stored verbatim and never parsed. Absent
// fields are nil and are omitted from the JSON form, never rendered as empty
// strings.
type UserAgent struct {
	IP          *string `json:"ip,omitempty"`
	Fingerprint *string `json:"fingerprint,omitempty"`
	Hash        *string `json:"hash,omitempty"`
	Product     Product `json:"product"`
	OS          OS      `json:"os"`
	Device      Device  `json:"device"`
	CPU         CPU     `json:"cpu"`
	Engine      Engine  `json:"engine"`
	Raw         *string `json:"user_agent,omitempty"`
}

// Parse classifies agent against the table's five rule categories and
// attaches ip unchanged. It is a pure read-only operation and never fails:
// a string that matches nothing simply yields absent fields.
func (t *RuleTable) Parse(agent, ip string) UserAgent {
	ua := UserAgent{
		IP:      optional(ip),
		Raw:     optional(agent),
		Product: t.ParseProduct(agent),
		OS:      t.ParseOS(agent),
		Device:  t.ParseDevice(agent),
		CPU:     t.ParseCPU(agent),
		Engine:  t.ParseEngine(agent),
	}
	ua.Fingerprint = ua.fingerprint()
	ua.Hash = ua.hash()
	return ua
}

// String returns the raw user agent string, or "" when it was empty.
func (ua UserAgent) String() string {
	if ua.Raw == nil {
		return ""
	}
	return *ua.Raw
}

// ToJSON serializes the aggregate. Present fields keep their values exactly,
// absent fields are omitted, so decoding the output with FromJSON restores
// an identical value.
func (ua UserAgent) ToJSON() ([]byte, error) {
	return json.Marshal(ua)
}

// FromJSON decodes a UserAgent previously produced by ToJSON.
func FromJSON(data []byte) (UserAgent, error) {
	var ua UserAgent
	if err := json.Unmarshal(data, &ua); err != nil {
		return UserAgent{}, err
	}
	return ua, nil
}

// IsBot reports whether the raw user agent looks like an automated client.
func (ua UserAgent) IsBot() bool {
	return ua.Raw != nil && botKeywords.MatchString(*ua.Raw)
}

// Bot name lookup for common crawlers; the regex path below handles the
// long tail of self-identifying bots.
var botNameMap = map[string]string{
	"googlebot":           "Googlebot",
	"bingbot":             "Bingbot",
	"yandexbot":           "YandexBot",
	"baiduspider":         "Baidu Spider",
	"duckduckbot":         "DuckDuckBot",
	"facebookexternalhit": "Facebook",
	"twitterbot":          "Twitterbot",
	"linkedinbot":         "LinkedInBot",
	"slackbot":            "Slackbot",
	"telegrambot":         "TelegramBot",
	"applebot":            "Applebot",
}

var (
	botKeywords    = regexp.MustCompile(`(?i)bot|crawler|spider|scraper|curl|wget|python-requests|go-http-client`)
	botNamePattern = regexp.MustCompile(`(?i)([a-z0-9\-_]+(?:bot|spider|crawler))`)
)

// BotName extracts a human-readable bot name from the raw user agent, or ""
// when the user agent does not look like a bot.
func (ua UserAgent) BotName() string {
	if !ua.IsBot() {
		return ""
	}

	lower := strings.ToLower(*ua.Raw)
	for keyword, name := range botNameMap {
		if strings.Contains(lower, keyword) {
			return name
		}
	}

	if m := botNamePattern.FindStringSubmatch(*ua.Raw); len(m) > 1 {
		return cases.Title(language.English).String(strings.ToLower(m[1]))
	}
	return "Unknown Bot"
}

// optional returns nil for empty strings so empty inputs surface as absence.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
