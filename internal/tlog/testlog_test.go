package tlog_test

import (
	stderrs "errors"
	"testing"

	"github.com/sirkon/errors"

	"github.com/sirkon/dllist/internal/dllist"
	"github.com/sirkon/dllist/internal/tlog"
)

func TestLogging(t *testing.T) {
	t.Run("log-std-error", func(t *testing.T) {
		tlog.Log(t, stderrs.New("not an error"))
	})

	t.Run("log-cursor-error", func(t *testing.T) {
		var c dllist.Cursor[int]
		_, err := c.Value()
		tlog.Log(t, err)
	})

	t.Run("log-ctxed-error", func(t *testing.T) {
		tlog.Log(t, errors.New("ctx error").Int("int", 12).Uint64("size", 3).Str("string", "str"))
	})

	t.Run("check-nil", func(t *testing.T) {
		if tlog.Check(t, nil) {
			t.Error("nil error must not be reported")
		}
	})
}
