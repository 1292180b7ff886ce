package resolver

import (
	"github.com/tliron/commonlog"

	"github.com/t14raptor/go-scope/internal/logging"
)

type options struct {
	strict         bool
	globals        []string
	defaultGlobals bool
	suggestions    bool
	log            commonlog.Logger
}

func defaultOptions() options {
	return options{
		defaultGlobals: true,
		suggestions:    true,
		log:            logging.GetLogger("resolver"),
	}
}

type Option func(*options)

// WithStrict resolves the program as strict mode code regardless of
// directives.
func WithStrict(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// WithGlobals predeclares names as ambient globals.
func WithGlobals(names ...string) Option {
	return func(o *options) { o.globals = append(o.globals, names...) }
}

// WithDefaultGlobals toggles the builtin and host globals (console, Math, ...).
func WithDefaultGlobals(enabled bool) Option {
	return func(o *options) { o.defaultGlobals = enabled }
}

// WithSuggestions toggles "did you mean" hints on unresolved references.
func WithSuggestions(enabled bool) Option {
	return func(o *options) { o.suggestions = enabled }
}

// WithLogger replaces the jscope.resolver logger. A nil logger is ignored.
func WithLogger(log commonlog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}
