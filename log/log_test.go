package log

import (
	"bytes"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/gookit/color"
)

func TestLog(t *testing.T) {
	os.Setenv("DEBUG", "")
	color.Disable()
	_log := NewLog("events")
	buf := new(bytes.Buffer)

	t.Run("namespace", func(t *testing.T) {
		if _log.Namespace() != "events" || _log.Logger.Prefix() != "events " {
			t.Fatalf(`*Log.Namespace() = %q, want match for %#q`, _log.Namespace(), "events")
		}
	})

	_log.SetFlags(0)
	_log.SetOutput(buf)

	_log.Debug("Test")

	if buf.Len() > 0 {
		t.Fatal(`_log.Debug("Test") There should be no output here, but got the output.`)
	}

	buf.Reset()

	_log.Info("hello %d world", 23)
	line := strings.TrimSuffix(buf.String(), "\n")
	pattern := "^" + _log.Logger.Prefix() + "hello 23 world$"
	matched, err := regexp.MatchString(pattern, line)
	if err != nil {
		t.Fatal("pattern did not compile:", err)
	}
	if !matched {
		t.Errorf("log output should match %q is %q", pattern, line)
	}

	t.Run("extend", func(t *testing.T) {
		buf.Reset()
		child := _log.Extend("clicked")
		if child.Namespace() != "events:clicked" {
			t.Fatalf(`*Log.Extend("clicked").Namespace() = %q, want match for %q`, child.Namespace(), "events:clicked")
		}
		child.SetFilter(ParseFilter("events:*"))
		child.Debug("dispatch")
		if !strings.Contains(buf.String(), "events:clicked dispatch") {
			t.Fatalf(`child.Debug("dispatch") wrote %q, want match for %q`, buf.String(), "events:clicked dispatch")
		}
	})

	t.Run("DEBUG flag", func(t *testing.T) {
		buf.Reset()
		_log.DEBUG = true
		_log.Debug("forced")
		_log.DEBUG = false
		if buf.Len() == 0 {
			t.Fatal(`_log.Debug("forced") with DEBUG = true should produce output`)
		}
	})

	_log.SetOutput(os.Stderr)
}

func TestFilter(t *testing.T) {
	for _, c := range []struct {
		patterns  string
		namespace string
		want      bool
	}{
		{"", "events", false},
		{"*", "events:clicked", true},
		{"events", "events", true},
		{"events", "events:clicked", false},
		{"events:*", "events:clicked", true},
		{"events:*,-events:noisy", "events:noisy", false},
		{"events:* -events:noisy", "events:quiet", true},
		{"-events", "events", false},
	} {
		if got := ParseFilter(c.patterns).Enabled(c.namespace); got != c.want {
			t.Fatalf(`ParseFilter(%q).Enabled(%q) = %t, want match for %t`, c.patterns, c.namespace, got, c.want)
		}
	}

	var nilFilter *Filter
	if nilFilter.Enabled("events") {
		t.Fatal(`(*Filter)(nil).Enabled("events") = true, want match for false`)
	}
}
