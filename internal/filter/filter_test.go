package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild_Empty(t *testing.T) {
	assert.Empty(t, Build(Criteria{}))
	assert.True(t, Criteria{}.IsEmpty())
	assert.Equal(t, "", Criteria{}.Key())
}

func TestBuild_CityOnly(t *testing.T) {
	assert.Equal(t, []Pair{{"city", "Pune"}}, Build(Criteria{City: "Pune"}))
}

func TestBuild_FixedOrder(t *testing.T) {
	c := Criteria{Course: "Math", MinCapacity: "10", State: "MH", City: "Pune"}
	assert.Equal(t, []Pair{
		{"city", "Pune"},
		{"state", "MH"},
		{"minCapacity", "10"},
		{"course", "Math"},
	}, Build(c))
	assert.Equal(t, "city=Pune&state=MH&minCapacity=10&course=Math", c.Key())
}

func TestBuild_ZeroIsIncluded(t *testing.T) {
	assert.Equal(t, []Pair{{"minCapacity", "0"}}, Build(Criteria{MinCapacity: "0"}))
}

func TestEncode_Escapes(t *testing.T) {
	got := Encode([]Pair{{"city", "New Delhi"}, {"course", "C&C++"}})
	assert.Equal(t, "city=New+Delhi&course=C%26C%2B%2B", got)
}

func TestCriteria_Set(t *testing.T) {
	var c Criteria
	assert.True(t, c.Set("state", "KA"))
	assert.True(t, c.Set("minCapacity", "5"))
	assert.False(t, c.Set("pincode", "1"))
	assert.Equal(t, Criteria{State: "KA", MinCapacity: "5"}, c)
}
