package embedding

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/talentbridge/matchd/internal/domain"
)

const (
	fieldVector    = "vector"
	fieldSource    = "source"
	fieldCreatedAt = "created_at"
)

// buildHashFields converts an embedding row into a flat map[string]string for HSET.
func buildHashFields(emb domain.Embedding) map[string]string {
	return map[string]string{
		fieldVector:    vectorToBytes(emb.Vector),
		fieldSource:    string(emb.Source),
		fieldCreatedAt: strconv.FormatInt(emb.CreatedAt, 10),
	}
}

// parseHashFields converts a flat hash map back into an embedding row.
func parseHashFields(subjectID domain.SubjectID, source domain.Source, m map[string]string) domain.Embedding {
	createdAt, _ := strconv.ParseInt(m[fieldCreatedAt], 10, 64)
	return domain.Embedding{
		SubjectID: subjectID,
		Source:    source,
		Vector:    bytesToVector(m[fieldVector]),
		CreatedAt: createdAt,
	}
}

// vectorToBytes serializes []float32 to a binary string (4 bytes per float, little-endian).
func vectorToBytes(v []float32) string {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return string(buf)
}

// bytesToVector deserializes a binary string back to []float32.
func bytesToVector(s string) []float32 {
	b := []byte(s)
	if len(b)%4 != 0 {
		return nil
	}
	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v
}
