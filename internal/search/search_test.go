package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIndex() *Index {
	return New(
		[]string{"V Kohli", "RG Sharma", "KL Rahul", "V Sehwag", "SR Watson"},
		[]string{"Mumbai Indians", "Royal Challengers Bengaluru", "Rajasthan Royals"},
	)
}

func TestFindRanksBestFirst(t *testing.T) {
	got := testIndex().Find("kohli", "", 0)
	require.NotEmpty(t, got)
	assert.Equal(t, "V Kohli", got[0].Name)
	assert.Equal(t, Player, got[0].Kind)
}

func TestFindFiltersByKind(t *testing.T) {
	x := testIndex()
	for _, r := range x.Find("r", Team, 0) {
		assert.Equal(t, Team, r.Kind)
	}
	got := x.Find("rajasthan", Team, 0)
	require.NotEmpty(t, got)
	assert.Equal(t, "Rajasthan Royals", got[0].Name)
	assert.Len(t, x.Find("a", "", 2), 2)
}

func TestFindEmptyQuery(t *testing.T) {
	got := testIndex().Find("   ", "", 0)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestResolve(t *testing.T) {
	x := testIndex()

	name, err := x.Resolve("v KOHLI", Player)
	require.NoError(t, err)
	assert.Equal(t, "V Kohli", name)

	name, err = x.Resolve("mumbai", Team)
	require.NoError(t, err)
	assert.Equal(t, "Mumbai Indians", name)

	_, err = x.Resolve("mumbai", Player)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = x.Resolve("zzz", Team)
	require.ErrorIs(t, err, ErrNotFound)
}
