package diamond

import (
	"io"
	"log"

	"github.com/fsartoris/football-viz/declutter"
)

// Option configures Create.
type Option func(*config)

type config struct {
	style       Style
	declutterer declutter.Declutterer
	logger      *log.Logger
}

func newConfig(opts []Option) config {
	cfg := config{
		style:       DefaultStyle(),
		declutterer: declutter.Repel{AvoidAnchors: true},
		logger:      log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithStyle sets the figure style. The default is DefaultStyle.
func WithStyle(s Style) Option {
	return func(c *config) { c.style = s }
}

// WithDeclutterer sets the strategy used to keep entity labels apart.
// The default is declutter.Repel with anchor avoidance; nil disables
// decluttering.
func WithDeclutterer(d declutter.Declutterer) Option {
	return func(c *config) {
		if d == nil {
			d = declutter.None{}
		}
		c.declutterer = d
	}
}

// WithLogger sets the logger Create reports to. Nothing is logged
// by default.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
