package collab

import "testing"

func TestInMemoryEngine_UpdateAndRemove(t *testing.T) {
	e := NewInMemoryEngine("host-1")

	if e.HostID() != "host-1" {
		t.Fatalf("expected host id retained, got %s", e.HostID())
	}

	e.UpdateCursor("p1", 3, 14)
	c, ok := e.GetCursor("p1")
	if !ok {
		t.Fatal("expected cursor for p1")
	}
	if c.Line != 3 || c.Column != 14 {
		t.Fatalf("unexpected cursor position: %+v", c)
	}
	if c.UpdatedAt.IsZero() {
		t.Fatal("expected UpdatedAt to be stamped")
	}

	e.RemoveCursor("p1")
	if _, ok := e.GetCursor("p1"); ok {
		t.Fatal("expected cursor removed")
	}

	// removing an unknown id is a no-op
	e.RemoveCursor("ghost")
}

func TestInMemoryEngine_GetCursorsSnapshot(t *testing.T) {
	e := NewInMemoryEngine("host-1")
	e.UpdateCursor("p1", 1, 1)
	e.UpdateCursor("p2", 2, 2)

	all := e.GetCursors()
	if len(all) != 2 {
		t.Fatalf("expected 2 cursors, got %d", len(all))
	}

	// mutating the snapshot must not affect the engine
	all[0].Line = 99
	for _, id := range []string{"p1", "p2"} {
		c, _ := e.GetCursor(id)
		if c.Line == 99 {
			t.Fatal("snapshot mutation leaked into engine state")
		}
	}
}
