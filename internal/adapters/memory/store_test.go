package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/roster/internal/adapters/memory"
	"github.com/csg33k/roster/internal/domain"
)

func emp(id int64, first string) domain.Employee {
	return domain.Employee{
		ID:         id,
		FirstName:  first,
		LastName:   "Smith",
		Email:      "x@example.com",
		Department: "Ops",
		Role:       "Engineer",
	}
}

func TestNew_DropsDuplicateSeedIDs(t *testing.T) {
	s := memory.New([]domain.Employee{emp(1, "Ann"), emp(1, "Dup"), emp(2, "Bob")})
	require.Equal(t, 2, s.Len())
	got, ok := s.Find(1)
	require.True(t, ok)
	assert.Equal(t, "Ann", got.FirstName)
}

func TestAppend(t *testing.T) {
	s := memory.New(nil)
	assert.True(t, s.Append(emp(1, "Ann")))
	assert.False(t, s.Append(emp(1, "Other")), "duplicate id must be rejected")
	assert.True(t, s.Append(emp(2, "Bob")))

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Ann", list[0].FirstName)
	assert.Equal(t, "Bob", list[1].FirstName)
}

func TestReplace_KeepsPosition(t *testing.T) {
	s := memory.New([]domain.Employee{emp(1, "Ann"), emp(2, "Bob"), emp(3, "Cy")})
	assert.True(t, s.Replace(2, emp(2, "Robert")))
	assert.False(t, s.Replace(99, emp(99, "Nobody")))

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "Robert", list[1].FirstName)
}

func TestRemove(t *testing.T) {
	s := memory.New([]domain.Employee{emp(1, "Ann"), emp(2, "Bob")})
	assert.True(t, s.Remove(2))
	assert.False(t, s.Remove(2), "second remove is a no-op")

	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].ID)
}

func TestFind_Miss(t *testing.T) {
	s := memory.New([]domain.Employee{emp(1, "Ann")})
	_, ok := s.Find(42)
	assert.False(t, ok)
}

func TestList_IsSnapshot(t *testing.T) {
	s := memory.New([]domain.Employee{emp(1, "Ann")})
	list := s.List()
	list[0].FirstName = "Mutated"

	got, _ := s.Find(1)
	assert.Equal(t, "Ann", got.FirstName)
}

func TestMaxID(t *testing.T) {
	assert.Equal(t, int64(0), memory.New(nil).MaxID())
	s := memory.New([]domain.Employee{emp(7, "A"), emp(3, "B"), emp(12, "C")})
	assert.Equal(t, int64(12), s.MaxID())
}
