package systems

import (
	"testing"

	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/core"
)

func TestLifetimeCountsDownAndExpires(t *testing.T) {
	ls := &LifetimeSystem{}
	e := core.NewEntity()
	e.AddComponent(&core.Lifetime{Remaining: 0.05})
	ents := []*core.Entity{e}

	ls.Update(ents, 0.03)
	if !e.IsActive() {
		t.Fatal("entity expired early")
	}
	ls.Update(ents, 0.03)
	if e.IsActive() {
		t.Error("entity outlived its lifetime")
	}
}

func TestEntitiesWithoutLifetimeAreUntouched(t *testing.T) {
	ls := &LifetimeSystem{}
	e := core.NewEntity()
	e.AddComponent(&core.Transform{})

	ls.Update([]*core.Entity{e}, 10)
	if !e.IsActive() {
		t.Error("permanent entity was expired")
	}
}
