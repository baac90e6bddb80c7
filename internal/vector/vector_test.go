package vector

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddSub(t *testing.T) {
	t.Parallel()

	a := Vector{1, 2, 3}
	b := Vector{4, 5, 6}

	sum, err := Add(a, b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if diff := cmp.Diff(Vector{5, 7, 9}, sum); diff != "" {
		t.Errorf("Add mismatch (-want +got):\n%s", diff)
	}

	d, err := Sub(b, a)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	if diff := cmp.Diff(Vector{3, 3, 3}, d); diff != "" {
		t.Errorf("Sub mismatch (-want +got):\n%s", diff)
	}
}

func TestDimensionMismatch(t *testing.T) {
	t.Parallel()

	if _, err := Add(Vector{1}, Vector{1, 2}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Add got %v, want ErrDimensionMismatch", err)
	}
	if _, err := Sub(Vector{1}, Vector{1, 2}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Sub got %v, want ErrDimensionMismatch", err)
	}
	if _, err := Lerp(Vector{1}, Vector{1, 2}, 0.5); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Lerp got %v, want ErrDimensionMismatch", err)
	}
}

func TestScaleAndBias(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff(Vector{2, 4}, Scale(Vector{1, 2}, 2)); diff != "" {
		t.Errorf("Scale mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Vector{1.5, 2.5}, AddBias(Vector{1, 2}, 0.5)); diff != "" {
		t.Errorf("AddBias mismatch (-want +got):\n%s", diff)
	}
}

func TestLerp(t *testing.T) {
	t.Parallel()

	got, err := Lerp(Vector{1, 0}, Vector{0, 1}, 0.5)
	if err != nil {
		t.Fatalf("Lerp: %v", err)
	}
	if diff := cmp.Diff(Vector{0.5, 0.5}, got); diff != "" {
		t.Errorf("Lerp mismatch (-want +got):\n%s", diff)
	}
}

func TestMean(t *testing.T) {
	t.Parallel()

	t.Run("basic", func(t *testing.T) {
		t.Parallel()
		got, err := Mean([]Vector{{1, 1, 1, 1}, {0, 0, 0, 0}})
		if err != nil {
			t.Fatalf("Mean: %v", err)
		}
		if diff := cmp.Diff(Vector{0.5, 0.5, 0.5, 0.5}, got); diff != "" {
			t.Errorf("Mean mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		if _, err := Mean(nil); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("got %v, want ErrEmptyInput", err)
		}
	})
}

func TestWeightedMean(t *testing.T) {
	t.Parallel()

	t.Run("weights", func(t *testing.T) {
		t.Parallel()
		got, err := WeightedMean([]Vector{{1, 1}, {0, 0}}, []float64{3, 1})
		if err != nil {
			t.Fatalf("WeightedMean: %v", err)
		}
		if diff := cmp.Diff(Vector{0.75, 0.75}, got); diff != "" {
			t.Errorf("WeightedMean mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("zero total", func(t *testing.T) {
		t.Parallel()
		if _, err := WeightedMean([]Vector{{1}, {2}}, []float64{1, -1}); err == nil {
			t.Error("want error for zero total weight")
		}
	})

	t.Run("length mismatch", func(t *testing.T) {
		t.Parallel()
		if _, err := WeightedMean([]Vector{{1}}, []float64{1, 2}); !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("got %v, want ErrDimensionMismatch", err)
		}
	})
}

func TestLayerNorm(t *testing.T) {
	t.Parallel()

	got := LayerNorm(Vector{1, 2, 3}, 1e-5)

	mean := 0.0
	for _, x := range got {
		mean += x
	}
	mean /= float64(len(got))
	if math.Abs(mean) > 1e-6 {
		t.Errorf("normalized mean = %g, want ~0", mean)
	}

	variance := 0.0
	for _, x := range got {
		variance += (x - mean) * (x - mean)
	}
	variance /= float64(len(got))
	if math.Abs(variance-1.0) > 1e-4 {
		t.Errorf("normalized variance = %g, want ~1", variance)
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	got := Clamp(Vector{-1, 0.5, 2}, 0, 1)
	if diff := cmp.Diff(Vector{0, 0.5, 1}, got); diff != "" {
		t.Errorf("Clamp mismatch (-want +got):\n%s", diff)
	}
}

func TestClone(t *testing.T) {
	t.Parallel()

	orig := Vector{1, 2}
	clone := orig.Clone()
	clone[0] = 9
	if orig[0] != 1 {
		t.Error("Clone shares backing storage with the original")
	}
}
