package memory

import (
	"fmt"
	"sync"
	"testing"
)

func TestStoreLazySessionCreation(t *testing.T) {
	t.Parallel()

	store := NewStore()
	profile := store.UserProfile("fresh")
	if len(profile) != 0 {
		t.Fatalf("expected empty profile, got %#v", profile)
	}
	state := store.State("fresh")
	if len(state) != 0 {
		t.Fatalf("expected empty state, got %#v", state)
	}
}

func TestStoreProfileMergeOverwrites(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.UpdateUserProfile("s1", map[string]any{"region": "india", "name": "a"})
	store.UpdateUserProfile("s1", map[string]any{"region": "generic"})

	profile := store.UserProfile("s1")
	if profile["region"] != "generic" {
		t.Fatalf("region = %v, want generic", profile["region"])
	}
	if profile["name"] != "a" {
		t.Fatalf("name = %v, want a (merge must keep unrelated keys)", profile["name"])
	}
}

func TestStoreStateAccumulatesAcrossTurns(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.UpdateState("s1", map[string]any{"last_disaster_type": "flood"})
	store.UpdateState("s1", map[string]any{"last_phase": "during"})

	state := store.State("s1")
	if state["last_disaster_type"] != "flood" {
		t.Fatalf("last_disaster_type = %v, want flood", state["last_disaster_type"])
	}
	if state["last_phase"] != "during" {
		t.Fatalf("last_phase = %v, want during", state["last_phase"])
	}
}

func TestStoreSessionsAreIndependent(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.UpdateState("s1", map[string]any{"last_disaster_type": "fire"})

	if got := store.State("s2"); len(got) != 0 {
		t.Fatalf("session s2 state = %#v, want empty", got)
	}
}

func TestStoreSnapshotIsDetached(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.UpdateState("s1", map[string]any{"k": "v"})

	snap := store.State("s1")
	snap["k"] = "mutated"

	if got := store.State("s1"); got["k"] != "v" {
		t.Fatalf("store state mutated through snapshot: %#v", got)
	}
}

func TestStoreConcurrentTurns(t *testing.T) {
	t.Parallel()

	store := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("s%d", i%4)
			store.UpdateState(id, map[string]any{"turn": i})
			_ = store.State(id)
			store.UpdateUserProfile(id, map[string]any{"region": "generic"})
			_ = store.UserProfile(id)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 4; i++ {
		id := fmt.Sprintf("s%d", i)
		if got := store.UserProfile(id)["region"]; got != "generic" {
			t.Fatalf("profile region for %s = %v, want generic", id, got)
		}
	}
}
