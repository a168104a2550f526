package dllist

import (
	"testing"

	"github.com/sirkon/errors"

	"github.com/sirkon/dllist/internal/tlog"
)

func expectInvalidCursor(t *testing.T, err error, action string) {
	t.Helper()

	if err == nil {
		t.Errorf("%s: error expected", action)
		return
	}

	if !errors.Is(err, ErrorInvalidCursor) {
		tlog.Error(t, errors.Wrap(err, action+": unexpected error"))
		return
	}

	tlog.Log(t, errors.Wrap(err, action+": expected error"))
}

func TestCursor(t *testing.T) {
	t.Run("zero", func(t *testing.T) {
		var c Cursor[int]
		if c.Valid() || c.IsEnd() {
			t.Error("zero cursor must be neither valid nor end")
		}
		_, err := c.Value()
		expectInvalidCursor(t, err, "dereference zero cursor")
		_, err = c.Ref()
		expectInvalidCursor(t, err, "reference zero cursor")
		expectInvalidCursor(t, c.Next(), "advance zero cursor")
		expectInvalidCursor(t, c.Prev(), "retreat zero cursor")
	})

	t.Run("end", func(t *testing.T) {
		s := From([]int{1, 2})
		c := s.End()
		if c.Valid() || !c.IsEnd() {
			t.Error("end cursor must be end and not valid")
		}
		_, err := c.Value()
		expectInvalidCursor(t, err, "dereference end")
		expectInvalidCursor(t, c.Next(), "advance past end")
		if c != s.End() {
			t.Error("failed advance must not move the cursor")
		}
	})

	t.Run("empty-end", func(t *testing.T) {
		s := New[int]()
		c := s.End()
		expectInvalidCursor(t, c.Prev(), "retreat end of empty sequence")
		expectInvalidCursor(t, c.Next(), "advance end of empty sequence")
	})

	t.Run("before-begin", func(t *testing.T) {
		s := From([]int{1, 2})
		c := s.Begin()
		expectInvalidCursor(t, c.Prev(), "retreat before begin")
		if c != s.Begin() {
			t.Error("failed retreat must not move the cursor")
		}
	})

	t.Run("prev-from-end", func(t *testing.T) {
		s := From([]int{1, 2})
		c := s.End()
		if err := c.Prev(); err != nil {
			tlog.Error(t, errors.Wrap(err, "retreat from end"))
			return
		}
		if v, _ := c.Value(); v != 2 {
			t.Errorf("last element expected, got %d", v)
		}
	})

	t.Run("next-to-end", func(t *testing.T) {
		s := From([]int{1})
		c := s.Begin()
		if err := c.Next(); err != nil {
			tlog.Error(t, errors.Wrap(err, "advance from last"))
			return
		}
		if !c.IsEnd() || c != s.End() {
			t.Error("advance from the last element must give end")
		}
	})

	t.Run("removed", func(t *testing.T) {
		s := From([]int{1, 2, 3})
		c := Find(s, 2)
		s.Remove(&c)
		expectInvalidCursor(t, c.Next(), "advance removed cursor")
		expectInvalidCursor(t, c.Prev(), "retreat removed cursor")
		_, err := c.Value()
		expectInvalidCursor(t, err, "dereference removed cursor")
	})

	t.Run("ref", func(t *testing.T) {
		s := From([]string{"a", "b"})
		c := Find(s, "b")
		p, err := c.Ref()
		if err != nil {
			tlog.Error(t, errors.Wrap(err, "take reference"))
			return
		}
		*p = "c"
		requireState(t, s, []string{"a", "c"})
	})

	t.Run("equality", func(t *testing.T) {
		s := From([]int{7, 7})
		a := s.Begin()
		b := Find(s, 7)
		if a != b {
			t.Error("cursors to the same node must be equal")
		}
		if err := b.Next(); err != nil {
			tlog.Error(t, errors.Wrap(err, "advance"))
			return
		}
		if a == b {
			t.Error("cursors to different nodes with equal values must differ")
		}
	})
}
