package useragent

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultRulesPath is the rules file location used when no override is set.
const DefaultRulesPath = "./assets/regexes.yaml"

// Config resolves the rules file location. The environment variable takes
// precedence over the default relative path.
type Config struct {
	RulesPath string `env:"USER_AGENT_RULES_PATH" envDefault:"./assets/regexes.yaml"`
}

var (
	sharedTable atomic.Pointer[RuleTable]
	initOnce    sync.Once
	initErr     error

	reloadMu sync.Mutex
	envOnce  sync.Once
)

func rulesPath() string {
	envOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return DefaultRulesPath
	}
	return cfg.RulesPath
}

// Init builds the shared rule table from the configured rules file and
// publishes it for lock-free reads. It is idempotent and safe to call from
// any number of goroutines: exactly one build runs, concurrent callers block
// until it finishes, and later calls are no-ops returning the outcome of the
// first build. A load failure is latched — the process keeps failing fast
// rather than serving classifications from a partial table.
func Init() error {
	initOnce.Do(func() {
		t, err := LoadRulesFile(rulesPath())
		if err != nil {
			initErr = errors.Join(ErrNotInitialized, err)
			return
		}
		sharedTable.Store(t)
	})
	return initErr
}

// Default returns the shared rule table, initializing it on first use.
// After a successful Init it never blocks and never allocates.
func Default() (*RuleTable, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	return sharedTable.Load(), nil
}

// Parse classifies agent with the shared rule table, attaching ip unchanged.
// The first call may block while the table is built; the only possible error
// is a failed initialization.
func Parse(agent, ip string) (UserAgent, error) {
	t, err := Default()
	if err != nil {
		return UserAgent{}, err
	}
	return t.Parse(agent, ip), nil
}

// Reload builds a fresh table from the configured rules file and atomically
// swaps it in. Reloads are serialized; in-flight Parse calls keep the table
// they already loaded. A failed reload leaves the current table untouched.
// Reload requires a prior successful Init.
func Reload() error {
	reloadMu.Lock()
	defer reloadMu.Unlock()

	if err := Init(); err != nil {
		return err
	}
	t, err := LoadRulesFile(rulesPath())
	if err != nil {
		return err
	}
	sharedTable.Store(t)
	return nil
}
