package enhance

import (
	"testing"
	"time"
)

func TestStoreGetOrCreate(t *testing.T) {
	st := NewStore(time.Minute)
	defer st.Stop()

	a := st.GetOrCreate("cookie-a")
	if again := st.GetOrCreate("cookie-a"); again != a {
		t.Fatalf("GetOrCreate returned a new session for an existing id")
	}
	if b := st.GetOrCreate("cookie-b"); b == a {
		t.Fatalf("distinct ids must map to distinct sessions")
	}
	if st.Len() != 2 {
		t.Fatalf("expected 2 sessions, got %d", st.Len())
	}
}

func TestStoreSweepDropsIdleSessions(t *testing.T) {
	st := NewStore(time.Minute)
	defer st.Stop()

	st.GetOrCreate("a")
	st.GetOrCreate("b")

	if removed := st.Sweep(time.Now()); removed != 0 {
		t.Fatalf("fresh sessions swept: %d", removed)
	}
	if removed := st.Sweep(time.Now().Add(2 * time.Minute)); removed != 2 {
		t.Fatalf("expected 2 idle sessions swept, got %d", removed)
	}
	if st.Len() != 0 {
		t.Fatalf("store not empty after sweep: %d", st.Len())
	}
}
