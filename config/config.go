// Package config holds the runtime configuration and its loading from YAML data and the process environment.
package config

import (
	"go.arcalot.io/log/v2"
)

// Config is the main configuration structure that configures the runtime. It is not identical to the scenarios
// being run.
type Config struct {
	// Glue holds the ordered list of code paths the backends load step definitions from. Earlier paths take
	// precedence over later ones.
	Glue []string `json:"glue" yaml:"glue"`
	// Backends restricts the built-in backends to the listed kinds. An empty list enables all of them.
	Backends []string `json:"backends" yaml:"backends"`
	// Locale is the BCP 47 language tag steps are executed with.
	Locale string `json:"locale" yaml:"locale"`
	// SkipAfterFailure makes RunScenario skip the steps following the first step that did not pass.
	SkipAfterFailure bool `json:"skip_after_failure" yaml:"skip_after_failure"`
	// Log configures logging for scenario runs.
	Log log.Config `json:"log" yaml:"log"`
}
