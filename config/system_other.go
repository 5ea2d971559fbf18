//go:build !unix

package config

import (
	"github.com/jmgilman/syskit/core"
	"github.com/jmgilman/syskit/errors"
)

func osProvider() (core.Provider, core.ProcessContext, error) {
	return nil, nil, errors.New(errors.CodeUnsupported, "provider os requires a unix system")
}
