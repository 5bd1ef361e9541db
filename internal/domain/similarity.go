package domain

import "math"

// Jaccard returns |A∩B| / |A∪B| over the distinct labels of both inputs.
// Returns 0.0 when either input is empty (covers the empty-union case, and
// avoids rewarding two empty profiles with a perfect score).
// Labels are compared exactly as given; callers canonicalize case.
func Jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	setA := make(map[string]struct{}, len(a))
	for _, s := range a {
		setA[s] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, s := range b {
		setB[s] = struct{}{}
	}

	intersection := 0
	for s := range setA {
		if _, ok := setB[s]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

// Cosine returns the cosine similarity of two vectors, accumulating in
// float64. Returns 0.0 when either vector has zero magnitude — a zero
// vector means "no real embedding" and must not reach the division.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Clamp01 clamps x to [0.0, 1.0]. Embedding similarity can drift outside
// the interval through floating point; downstream percentages must stay
// within [0, 100].
func Clamp01(x float64) float64 {
	if x < 0.0 {
		return 0.0
	}
	if x > 1.0 {
		return 1.0
	}
	return x
}

// Round2 rounds to two decimal places (scores and percentages).
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
