package component

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableflip.dev/uikit/pkg/schedule"
	"tableflip.dev/uikit/pkg/skin"
	"tableflip.dev/uikit/pkg/tabindex"
)

// Options carries the host services a widget is built with.
type Options struct {
	ID        string
	Skins     *skin.Registry
	Logger    *zap.Logger
	Tabs      *tabindex.Allocator
	Scheduler schedule.Scheduler
	// Delay is the typing delay for widgets whose settings leave it zero.
	Delay     time.Duration
}

// Option configures Options.
type Option func(*Options)

// WithID names the widget in logs and events.
func WithID(id string) Option {
	return func(o *Options) { o.ID = id }
}

// WithSkins sets the registry skins are resolved from.
func WithSkins(r *skin.Registry) Option {
	return func(o *Options) { o.Skins = r }
}

// WithLogger sets the widget logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithTabIndex shares the host's index allocator.
func WithTabIndex(a *tabindex.Allocator) Option {
	return func(o *Options) { o.Tabs = a }
}

// WithScheduler sets where deferred callbacks run.
func WithScheduler(s schedule.Scheduler) Option {
	return func(o *Options) { o.Scheduler = s }
}

// WithDelay sets the host typing delay.
func WithDelay(d time.Duration) Option {
	return func(o *Options) { o.Delay = d }
}

// Resolve applies opts over defaults. Missing services get private
// instances; a widget built without a host allocator gets its own.
func Resolve(kind string, opts ...Option) Options {
	o := Options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.ID == "" {
		o.ID = kind + "-" + uuid.NewString()[:8]
	}
	if o.Skins == nil {
		o.Skins = skin.Default()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	o.Logger = o.Logger.With(zap.String("component", kind), zap.String("id", o.ID))
	if o.Tabs == nil {
		o.Tabs = tabindex.New()
	}
	if o.Scheduler == nil {
		o.Scheduler = schedule.Realtime{}
	}
	if o.Delay <= 0 {
		o.Delay = schedule.DefaultDelay
	}
	return o
}
