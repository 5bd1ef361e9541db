package domain

import (
	"math"
	"testing"
)

func TestJaccard_Commutative(t *testing.T) {
	a := []string{"React", "Python", "AWS"}
	b := []string{"Python", "Go"}

	if Jaccard(a, b) != Jaccard(b, a) {
		t.Errorf("Jaccard(a,b)=%f != Jaccard(b,a)=%f", Jaccard(a, b), Jaccard(b, a))
	}
}

func TestJaccard_Identity(t *testing.T) {
	a := []string{"React", "Python"}
	if got := Jaccard(a, a); got != 1.0 {
		t.Errorf("Jaccard(a,a) = %f, want 1.0", got)
	}
}

func TestJaccard_EmptyInputs(t *testing.T) {
	if got := Jaccard(nil, nil); got != 0.0 {
		t.Errorf("Jaccard({},{}) = %f, want 0.0", got)
	}
	if got := Jaccard(nil, []string{"Go"}); got != 0.0 {
		t.Errorf("Jaccard({},B) = %f, want 0.0", got)
	}
	if got := Jaccard([]string{"Go"}, nil); got != 0.0 {
		t.Errorf("Jaccard(A,{}) = %f, want 0.0", got)
	}
}

func TestJaccard_PartialOverlap(t *testing.T) {
	talent := []string{"React", "Python"}
	required := []string{"React", "Python", "AWS"}

	got := Jaccard(talent, required)
	want := 2.0 / 3.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Jaccard = %f, want %f", got, want)
	}
}

func TestJaccard_DeduplicatesInputs(t *testing.T) {
	a := []string{"Go", "Go", "Go"}
	b := []string{"Go"}
	if got := Jaccard(a, b); got != 1.0 {
		t.Errorf("Jaccard with duplicates = %f, want 1.0", got)
	}
}

func TestCosine_Identical(t *testing.T) {
	v := []float32{0.5, 0.25, 0.1}
	if got := Cosine(v, v); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Cosine(v,v) = %f, want 1.0", got)
	}
}

func TestCosine_Orthogonal(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{0, 1}
	if got := Cosine(a, b); got != 0.0 {
		t.Errorf("Cosine orthogonal = %f, want 0.0", got)
	}
}

func TestCosine_ZeroVector(t *testing.T) {
	a := make([]float32, Dimensions)
	b := []float32{1, 2, 3}
	bb := make([]float32, Dimensions)
	copy(bb, b)

	if got := Cosine(a, bb); got != 0.0 {
		t.Errorf("Cosine with zero vector = %f, want 0.0", got)
	}
}

func TestCosine_DimensionMismatch(t *testing.T) {
	if got := Cosine([]float32{1, 2}, []float32{1, 2, 3}); got != 0.0 {
		t.Errorf("Cosine with mismatched dims = %f, want 0.0", got)
	}
}

func TestCosine_Opposite_ClampedDownstream(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{-1, 0}

	raw := Cosine(a, b)
	if math.Abs(raw-(-1.0)) > 1e-9 {
		t.Fatalf("Cosine opposite = %f, want -1.0", raw)
	}
	if got := Clamp01(raw); got != 0.0 {
		t.Errorf("Clamp01(-1.0) = %f, want 0.0", got)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0.0},
		{0.0, 0.0},
		{0.42, 0.42},
		{1.0, 1.0},
		{1.0000001, 1.0},
	}
	for _, tc := range tests {
		if got := Clamp01(tc.in); got != tc.want {
			t.Errorf("Clamp01(%f) = %f, want %f", tc.in, got, tc.want)
		}
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(100 * 0.6 * (2.0 / 3.0)); got != 40.0 {
		t.Errorf("Round2 = %f, want 40.0", got)
	}
	if got := Round2(0.666666); got != 0.67 {
		t.Errorf("Round2(0.666666) = %f, want 0.67", got)
	}
}
