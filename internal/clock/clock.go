package clock

import (
	"time"

	"go.uber.org/fx"
)

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// SystemClock returns the real wall-clock time in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

var Module = fx.Provide(func() Clock { return SystemClock{} })
