package diag

import "testing"

func TestInferMonotonicity(t *testing.T) {
	i := InferDefault(0)
	if err := i.Set(InferDirect(1)); err != nil {
		t.Fatalf("direct over default should succeed: %v", err)
	}
	if v, _ := i.Some(); v != 1 {
		t.Fatalf("expected 1, got %d", v)
	}
	if err := i.Set(InferDirect(2)); err == nil {
		t.Fatal("expected conflict setting a different value at the same confidence")
	}
	if err := i.Set(InferDefault(3)); err != nil {
		t.Fatalf("lower-confidence set should be a silent no-op, got error: %v", err)
	}
	if v, _ := i.Some(); v != 1 {
		t.Fatalf("lower-confidence set must not change the value, got %d", v)
	}
	if err := i.Set(InferNone[int]()); err != nil {
		t.Fatalf("setting None should be a no-op, got error: %v", err)
	}
}

func TestInferSameValueSameConfidenceIsNoOp(t *testing.T) {
	i := InferDirect("bus")
	if err := i.Set(InferDirect("bus")); err != nil {
		t.Fatalf("same value, same confidence must not conflict: %v", err)
	}
}

func TestInferOrDefault(t *testing.T) {
	none := InferNone[int]()
	if got := none.OrDefault(5); got.Confidence() != Default {
		t.Fatalf("expected Default confidence, got %v", got.Confidence())
	}
	direct := InferDirect(7)
	if got := direct.OrDefault(5); got.Confidence() != Direct {
		t.Fatalf("OrDefault must not override a non-None value")
	}
}

func TestInferMap(t *testing.T) {
	i := InferCalculated(3)
	doubled := InferMap(i, func(v int) int { return v * 2 })
	if v, _ := doubled.Some(); v != 6 {
		t.Fatalf("expected 6, got %d", v)
	}
	if doubled.Confidence() != Calculated {
		t.Fatalf("Map must preserve confidence")
	}
}
