package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/sidesh-hub/medinfo-india/conversation"
	"github.com/sidesh-hub/medinfo-india/medicine"
	"github.com/sidesh-hub/medinfo-india/store"
)

func TestCreateGetDelete(t *testing.T) {
	st := NewStore(time.Hour)

	s := st.Create()
	if s.ID == "" {
		t.Fatal("Expected a session ID")
	}
	if st.Count() != 1 {
		t.Errorf("Expected 1 session, got %d", st.Count())
	}

	got, ok := st.Get(s.ID)
	if !ok || got != s {
		t.Error("Expected Get to return the created session")
	}
	if _, ok := st.Get("missing"); ok {
		t.Error("Expected a miss for an unknown id")
	}

	st.Delete(s.ID)
	if st.Count() != 0 {
		t.Errorf("Expected no sessions after delete, got %d", st.Count())
	}
}

func TestSweepExpiredRespectsTTL(t *testing.T) {
	st := NewStore(30 * time.Millisecond)

	expired := st.Create()
	time.Sleep(60 * time.Millisecond)
	fresh := st.Create()

	removed := st.SweepExpired()
	if removed != 1 {
		t.Fatalf("Expected 1 removed session, got %d", removed)
	}
	if _, ok := st.Get(expired.ID); ok {
		t.Error("Expected the idle-expired session to be gone")
	}
	if _, ok := st.Get(fresh.ID); !ok {
		t.Error("Expected the fresh session to survive the sweep")
	}
}

// blockingResolver holds every lookup until release is closed.
type blockingResolver struct {
	entered chan struct{}
	release chan struct{}
}

func (r *blockingResolver) Lookup(ctx context.Context, name string) (*medicine.LookupResult, error) {
	close(r.entered)
	<-r.release
	return &medicine.LookupResult{Found: false}, nil
}

func TestSweepExpiredKeepsInFlightSessions(t *testing.T) {
	st := NewStore(10 * time.Millisecond)
	s := st.Create()

	res := &blockingResolver{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	router := conversation.NewRouter(store.New(), res)

	done := make(chan struct{})
	go func() {
		defer close(done)
		router.Route(context.Background(), s, "zentathrin 200")
	}()

	// Wait until the turn is parked inside the resolver, then let the TTL
	// lapse. The sweep must skip the awaiting session.
	<-res.entered
	time.Sleep(30 * time.Millisecond)

	if removed := st.SweepExpired(); removed != 0 {
		t.Errorf("Expected the in-flight session to be kept, removed %d", removed)
	}
	if _, ok := st.Get(s.ID); !ok {
		t.Fatal("Expected the in-flight session to still exist")
	}

	close(res.release)
	<-done

	// Once the turn completes the session ages out like any other.
	time.Sleep(30 * time.Millisecond)
	if removed := st.SweepExpired(); removed != 1 {
		t.Errorf("Expected the completed session to be swept, removed %d", removed)
	}
}
