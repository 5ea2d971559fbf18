// Package providertest provides a conformance test suite for validating
// core.Provider implementations.
//
// This package contains test functions that provider packages import and run
// to verify they honor the core.Provider contract and its optional
// extensions (SymlinkProvider, FileProvider). The suite checks contracts,
// including the error taxonomy codes, not backend-specific behavior.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    providertest.TestSuite(t, func(t *testing.T) (core.Provider, string) {
//	        return myprovider.New(), t.TempDir()
//	    })
//	}
package providertest

import (
	"slices"
	"testing"

	"github.com/jmgilman/syskit/core"
)

// NewProviderFunc returns a fresh provider and an existing, empty directory
// (an absolute name in the provider's namespace) under which the tests may
// create and remove entries.
type NewProviderFunc func(t *testing.T) (core.Provider, string)

// Config configures the test suite to match provider characteristics.
type Config struct {
	// SkipTests lists test groups or group/subtest names to skip
	// (e.g. "Symlink" or "Manage/RemoveNonEmpty").
	SkipTests []string
}

func (c Config) shouldSkip(name string) bool {
	return slices.Contains(c.SkipTests, name)
}

// TestSuite runs all conformance tests with the default configuration.
func TestSuite(t *testing.T, newProvider NewProviderFunc) {
	TestSuiteWithConfig(t, newProvider, Config{})
}

// TestSuiteWithConfig runs all conformance tests with behavior configuration.
// Every group receives a fresh provider from newProvider.
func TestSuiteWithConfig(t *testing.T, newProvider NewProviderFunc, config Config) {
	groups := []struct {
		name string
		run  func(t *testing.T, p core.Provider, base string, config Config)
	}{
		{"Metadata", TestMetadataWithConfig},
		{"Directory", TestDirectoryWithConfig},
		{"Manage", TestManageWithConfig},
		{"Symlink", TestSymlinkWithConfig},
		{"Canonicalize", TestCanonicalizeWithConfig},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			if config.shouldSkip(g.name) {
				t.Skip("Skipped by provider configuration")
				return
			}
			p, base := newProvider(t)
			g.run(t, p, base, config)
		})
	}
}

// run executes a named subtest unless the configuration skips it.
func run(t *testing.T, group, name string, config Config, fn func(t *testing.T)) {
	t.Run(name, func(t *testing.T) {
		if config.shouldSkip(group + "/" + name) {
			t.Skip("Skipped by provider configuration")
			return
		}
		fn(t)
	})
}
