// Package useragent classifies HTTP User-Agent strings into structured
// identity fields — product, operating system, device, CPU architecture and
// rendering engine — driven entirely by an external, ordered table of regex
// rules.
//
// # Rule table
//
// Rules live in a YAML document with five sections (user_agent_parsers,
// os_parsers, device_parsers, cpu_parsers, engine_parsers). Each entry pairs
// a regex with replacement templates that may reference capture groups
// positionally ($1..$9). Within a category the first matching rule wins, in
// document order, so authors place specific rules before general fallbacks.
// Patterns are compiled exactly once at load time; parsing never compiles.
//
// The table location is resolved from the USER_AGENT_RULES_PATH environment
// variable, falling back to ./assets/regexes.yaml.
//
// # Usage
//
// The package-level entry points share one process-wide table behind a
// write-once cell:
//
//	if err := useragent.Init(); err != nil {
//	    // broken rules file: treat as startup-blocking
//	}
//
//	ua, _ := useragent.Parse(r.UserAgent(), clientip.FromRequest(r))
//	if ua.Product.Name != nil {
//	    log.Printf("browser=%s", *ua.Product.Name)
//	}
//
// Init is idempotent and safe from any goroutine; the first Parse call
// initializes lazily and blocks only for the one-time build. A custom table
// can be loaded with LoadRulesFile for callers that manage their own
// lifecycle.
//
// # Absence
//
// A string that matches no rule in a category is not an error: every field
// of that category is nil. Fields are *string and resolve to nil whenever a
// template evaluates to the empty string, so "unknown" is always represented
// as absence and never as "".
//
// # Errors
//
// Load-time failures (unreadable file, schema violation, invalid regex)
// surface as ConfigError-style sentinels: ErrRulesUnavailable,
// ErrInvalidRules, ErrEmptyPattern, ErrInvalidPattern. They abort the whole
// load; no partial table is ever published. ErrNotInitialized wraps the load
// failure on every subsequent Parse/Default call.
package useragent
