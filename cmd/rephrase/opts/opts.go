package opts

import (
	"github.com/walteh/rephrase/pkg/config"
	"github.com/walteh/rephrase/pkg/log"
	"github.com/walteh/rephrase/pkg/pipeline"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config     *config.Config
	Humanizer  pipeline.Humanizer
	UserLogger *log.Logger
}
