package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testValueComponent struct {
	Value float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	// ID从1开始
	if id1 != 1 || id2 != 2 {
		t.Errorf("Entity IDs should start at 1, got %d, %d", id1, id2)
	}
	if !em.Exists(id1) {
		t.Error("Created entity should exist")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 100, Y: 200})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}
	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestAddComponentToMissingEntity(t *testing.T) {
	em := NewEntityManager()
	em.AddComponent(EntityID(42), &testPositionComponent{})
	if em.HasComponent(EntityID(42), reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Adding to a missing entity should be ignored")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id1, &testValueComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testValueComponent{})

	entities := em.GetEntitiesWith(
		reflect.TypeOf(&testPositionComponent{}),
		reflect.TypeOf(&testValueComponent{}),
	)
	if len(entities) != 1 || entities[0] != id1 {
		t.Errorf("Query should return only id1, got %v", entities)
	}

	posEntities := em.GetEntitiesWith(reflect.TypeOf(&testPositionComponent{}))
	if len(posEntities) != 2 {
		t.Errorf("Expected 2 entities with Position component, got %d", len(posEntities))
	}
}

func TestGetEntitiesWithSorted(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testValueComponent{Value: float64(i)})
	}

	entities := GetEntitiesWith1[*testValueComponent](em)
	for i := 1; i < len(entities); i++ {
		if entities[i] <= entities[i-1] {
			t.Fatalf("Entities should be sorted by ID: %v", entities)
		}
	}
}

func TestGenericHelpers(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{X: 10, Y: 20})
	AddComponent(em, id, &testValueComponent{Value: 0.5})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok || pos.X != 10 || pos.Y != 20 {
		t.Errorf("GetComponent[*testPositionComponent] = %+v, %v", pos, ok)
	}
	if !HasComponent[*testValueComponent](em, id) {
		t.Error("HasComponent[*testValueComponent] should be true")
	}
	if got := GetEntitiesWith2[*testPositionComponent, *testValueComponent](em); len(got) != 1 {
		t.Errorf("GetEntitiesWith2 = %v", got)
	}

	RemoveComponent[*testValueComponent](em, id)
	if _, ok := GetComponent[*testValueComponent](em, id); ok {
		t.Error("Component should be removed")
	}
	if got := GetEntitiesWith3[*testPositionComponent, *testValueComponent, *testPositionComponent](em); len(got) != 0 {
		t.Errorf("GetEntitiesWith3 = %v", got)
	}
}

func TestDestroyMultipleEntities(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	id3 := em.CreateEntity()

	em.DestroyEntity(id1)
	em.DestroyEntity(id3)
	em.RemoveMarkedEntities()

	if em.Exists(id1) || em.Exists(id3) {
		t.Error("id1 and id3 should be removed")
	}
	if !em.Exists(id2) {
		t.Error("id2 should still exist")
	}
}

func BenchmarkGetEntitiesWith2(b *testing.B) {
	em := NewEntityManager()
	for i := 0; i < 1000; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{})
		if i%2 == 0 {
			em.AddComponent(id, &testValueComponent{})
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*testPositionComponent, *testValueComponent](em)
	}
}
