// Package config defines the format-agnostic configuration model for a run,
// along with the Loader interface for reading bag settings from files and
// the environment-driven defaults for the CLI.
//
// The `config.Model` is what the `app` package consumes. Concrete file
// loaders, such as the HCL one, live in separate packages.
package config
