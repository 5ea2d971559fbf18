//go:build unix

package config

import (
	"github.com/jmgilman/syskit/core"
	"github.com/jmgilman/syskit/provider/local"
)

func osProvider() (core.Provider, core.ProcessContext, error) {
	return local.New(), local.Process{}, nil
}
