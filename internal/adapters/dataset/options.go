package dataset

import (
	"time"

	"github.com/okian/glorypath/pkg/logger"
)

// Option applies a configuration option to the Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithReferenceDate sets the date athlete ages are computed at.
func WithReferenceDate(ref time.Time) Option {
	return func(c *Catalog) {
		if !ref.IsZero() {
			c.refDate = ref
		}
	}
}
