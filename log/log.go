// Package log provides the namespaced debug logger used by event sources.
package log

import (
	_log "log"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/gookit/color"
)

type (
	Log struct {
		*_log.Logger

		DEBUG bool

		mu        sync.RWMutex // protects the following fields
		namespace string
		filter    *Filter
	}

	// Filter decides which namespaces print debug output, in the format of
	// the DEBUG environment variable: "events,events:*,-events:noisy".
	Filter struct {
		include []*regexp.Regexp
		exclude []*regexp.Regexp
	}
)

// ParseFilter compiles a DEBUG style namespace list. An empty list matches nothing.
func ParseFilter(namespaces string) *Filter {
	f := &Filter{}
	for _, part := range strings.FieldsFunc(namespaces, func(r rune) bool {
		return r == ',' || r == ' '
	}) {
		exclude := strings.HasPrefix(part, "-")
		part = strings.TrimPrefix(part, "-")
		if part == "" {
			continue
		}
		re := regexp.MustCompile("^" + strings.ReplaceAll(regexp.QuoteMeta(part), `\*`, `.*`) + "$")
		if exclude {
			f.exclude = append(f.exclude, re)
		} else {
			f.include = append(f.include, re)
		}
	}
	return f
}

func (f *Filter) Enabled(namespace string) bool {
	if f == nil {
		return false
	}
	for _, re := range f.exclude {
		if re.MatchString(namespace) {
			return false
		}
	}
	for _, re := range f.include {
		if re.MatchString(namespace) {
			return true
		}
	}
	return false
}

func NewLog(namespace string) *Log {
	l := &Log{
		Logger: _log.New(os.Stderr, "", 0),
		filter: ParseFilter(os.Getenv("DEBUG")),
	}

	if namespace != "" {
		l.SetNamespace(namespace)
	}
	return l
}

// Extend returns a logger for namespace "<parent>:<sub>" sharing the output
// and filter of l.
func (d *Log) Extend(sub string) *Log {
	d.mu.RLock()
	defer d.mu.RUnlock()

	l := &Log{
		Logger: _log.New(d.Logger.Writer(), "", d.Logger.Flags()),
		DEBUG:  d.DEBUG,
		filter: d.filter,
	}
	if d.namespace == "" {
		l.SetNamespace(sub)
	} else {
		l.SetNamespace(d.namespace + ":" + sub)
	}
	return l
}

// SetFilter replaces the namespace filter parsed from DEBUG at construction.
func (d *Log) SetFilter(f *Filter) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.filter = f
}

// DebugEnabled reports whether Debug writes anything.
func (d *Log) DebugEnabled() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.DEBUG || d.filter.Enabled(d.namespace)
}

// Console log Debug.
func (d *Log) Debug(message string, args ...any) {
	if d.DebugEnabled() {
		d.Logger.Println(color.Debug.Sprintf(message, args...))
	}
}

// Console log Info.
func (d *Log) Info(message string, args ...any) {
	d.Logger.Println(color.Info.Sprintf(message, args...))
}

// Console log Warning.
func (d *Log) Warning(message string, args ...any) {
	d.Logger.Println(color.Warn.Sprintf(message, args...))
}

// Console log Error.
func (d *Log) Error(message string, args ...any) {
	d.Logger.Println(color.Danger.Sprintf(message, args...))
}

// Namespace returns the debug namespace of the logger.
func (d *Log) Namespace() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.namespace
}

// SetNamespace sets the debug namespace, which is also the output prefix.
func (d *Log) SetNamespace(namespace string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.namespace = namespace

	d.Logger.SetPrefix(namespace + " ")
}
