package core

import (
	"sync"
	"testing"
)

func TestNewEntityIDsMonotonic(t *testing.T) {
	a := NewEntity()
	b := NewEntity()
	c := NewEntity()
	if !(a.ID < b.ID && b.ID < c.ID) {
		t.Errorf("ids not monotonic: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

func TestNewEntityIDsUniqueAcrossGoroutines(t *testing.T) {
	const workers = 8
	const perWorker = 1000

	var wg sync.WaitGroup
	results := make([][]EntityID, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			ids := make([]EntityID, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				ids = append(ids, NewEntity().ID)
			}
			results[w] = ids
		}(w)
	}
	wg.Wait()

	seen := make(map[EntityID]struct{}, workers*perWorker)
	for w, ids := range results {
		for i, id := range ids {
			if _, dup := seen[id]; dup {
				t.Fatalf("duplicate id %d from worker %d", id, w)
			}
			seen[id] = struct{}{}
			// Each goroutine's own allocations must be ordered
			if i > 0 && ids[i-1] >= id {
				t.Fatalf("worker %d ids not increasing: %d then %d", w, ids[i-1], id)
			}
		}
	}
}

func TestAddGetComponent(t *testing.T) {
	e := NewEntity()
	tr := &Transform{X: 3, Y: 4}
	e.AddComponent(tr)

	got, ok := e.GetComponent(CompTransform)
	if !ok {
		t.Fatal("GetComponent(CompTransform) ok = false, want true")
	}
	if got.(*Transform) != tr {
		t.Error("GetComponent returned a different component")
	}

	if _, ok := e.GetComponent(CompHealth); ok {
		t.Error("GetComponent(CompHealth) ok = true for absent component")
	}
}

func TestAddComponentReplacesSameKind(t *testing.T) {
	e := NewEntity()
	e.AddComponent(&Transform{X: 1})
	second := &Transform{X: 2}
	e.AddComponent(second)

	got, _ := e.GetComponent(CompTransform)
	if got.(*Transform) != second {
		t.Error("second AddComponent of the same kind did not replace the first")
	}
}

func TestHasComponent(t *testing.T) {
	e := NewEntity()
	if e.HasComponent(CompCollider) {
		t.Error("HasComponent true on empty entity")
	}
	e.AddComponent(NewCircleCollider(5, LayerEnemy))
	if !e.HasComponent(CompCollider) {
		t.Error("HasComponent false after AddComponent")
	}
}

func TestDeactivate(t *testing.T) {
	e := NewEntity()
	if !e.IsActive() {
		t.Error("new entity not active")
	}
	e.Deactivate()
	if e.IsActive() {
		t.Error("entity active after Deactivate")
	}
}

func TestEntityConcurrentComponentAccess(t *testing.T) {
	e := NewEntity()
	e.AddComponent(&Transform{})

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				e.AddComponent(&Health{Current: i, Max: 100})
				e.GetComponent(CompTransform)
				e.HasComponent(CompHealth)
			}
		}()
	}
	wg.Wait()

	if _, ok := e.GetComponent(CompHealth); !ok {
		t.Error("health component missing after concurrent writes")
	}
}

func TestTransformDistanceAndAngle(t *testing.T) {
	a := &Transform{X: 0, Y: 0}
	b := &Transform{X: 3, Y: 4}
	if d := a.DistanceTo(b); d != 5 {
		t.Errorf("DistanceTo = %v, want 5", d)
	}
	if d := b.DistanceTo(a); d != 5 {
		t.Errorf("DistanceTo not symmetric: %v", d)
	}
}

func TestColliderHelpers(t *testing.T) {
	c := NewCircleCollider(8, LayerPlayer)
	if c.Layer != LayerPlayer {
		t.Errorf("Layer = %v, want LayerPlayer", c.Layer)
	}
	if c.QueryRadius() != 16 {
		t.Errorf("QueryRadius = %v, want 16", c.QueryRadius())
	}

	b := NewBoxCollider(10, 40, LayerObstacle)
	if b.QueryRadius() != 40 {
		t.Errorf("QueryRadius = %v, want twice the larger half extent", b.QueryRadius())
	}
}

func TestColliderHelperPanicsOnBadDimensions(t *testing.T) {
	t.Run("circle", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		NewCircleCollider(0, LayerEnemy)
	})
	t.Run("box", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		NewBoxCollider(10, -1, LayerObstacle)
	})
}

func TestMaskWantsLayer(t *testing.T) {
	c := &Collider{Layer: LayerProjectile, Mask: MaskEnemy | MaskObstacle}
	if !c.WantsLayer(LayerEnemy) || !c.WantsLayer(LayerObstacle) {
		t.Error("mask does not select its listed layers")
	}
	if c.WantsLayer(LayerPlayer) || c.WantsLayer(LayerPickup) {
		t.Error("mask selects unlisted layers")
	}
}
