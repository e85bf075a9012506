package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestMergeSectionIDs(t *testing.T) {
	a := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	b := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	c := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	t.Run("union dedup + sorted", func(t *testing.T) {
		existing := pq.StringArray{b.String(), a.String()}
		got := MergeSectionIDs(existing, []uuid.UUID{c, a})
		assert.Equal(t, pq.StringArray{a.String(), b.String(), c.String()}, got)
	})

	t.Run("existing nil", func(t *testing.T) {
		got := MergeSectionIDs(nil, []uuid.UUID{b, a})
		assert.Equal(t, pq.StringArray{a.String(), b.String()}, got)
	})

	t.Run("nil uuid & string kosong dibuang", func(t *testing.T) {
		got := MergeSectionIDs(pq.StringArray{"", a.String()}, []uuid.UUID{uuid.Nil, b})
		assert.Equal(t, pq.StringArray{a.String(), b.String()}, got)
	})

	t.Run("idempotent", func(t *testing.T) {
		once := MergeSectionIDs(nil, []uuid.UUID{a, b})
		twice := MergeSectionIDs(once, []uuid.UUID{a, b})
		assert.Equal(t, once, twice)
	})
}
