package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tomato/unionfind"
)

func TestActivate_FreshSingleton(t *testing.T) {
	u := unionfind.New(3)
	assert.False(t, u.IsActive(0))
	u.Activate(0)
	assert.True(t, u.IsActive(0))
	assert.Equal(t, 0, u.Find(0))
	assert.Equal(t, 0, u.ModeOfRoot(u.Find(0)))
	assert.False(t, u.IsProtectedRoot(u.Find(0)))
}

func TestUnionSurvivor_CarriesModeFromSurvivor(t *testing.T) {
	f := []float64{10, 5} // vertex 0 is denser than vertex 1
	u := unionfind.New(2)
	u.Activate(0)
	u.Activate(1)

	newRoot := u.UnionSurvivor(f, u.Find(0), u.Find(1))
	assert.Equal(t, 0, u.ModeOfRoot(newRoot))
	assert.Equal(t, u.Find(0), u.Find(1))
}

func TestUnionSurvivor_UnionByIsSizeDirectedButModeFollowsSurvivor(t *testing.T) {
	// Build a 3-vertex set rooted so that the "other" side is larger,
	// then union it into a 1-vertex higher-density survivor: the
	// resulting root must still carry the survivor's mode even though
	// the larger set determines which parent pointer moves.
	f := []float64{100, 1, 1, 1}
	u := unionfind.New(4)
	for i := 0; i < 4; i++ {
		u.Activate(i)
	}
	r1 := u.UnionSurvivor(f, u.Find(1), u.Find(2)) // merge two low-density vertices
	r1 = u.UnionSurvivor(f, r1, u.Find(3))         // grow the low-density set to size 3

	newRoot := u.UnionSurvivor(f, u.Find(0), r1)
	assert.Equal(t, 0, u.ModeOfRoot(newRoot))
}

func TestUnionSurvivor_PanicsOnMisorderedModes(t *testing.T) {
	f := []float64{1, 10}
	u := unionfind.New(2)
	u.Activate(0)
	u.Activate(1)

	require.Panics(t, func() {
		u.UnionSurvivor(f, u.Find(0), u.Find(1))
	})
}

func TestProtectRoot_PersistsAfterBecomingChild(t *testing.T) {
	// The protected survivor is the smaller set, so its root becomes the
	// child in the size-directed union; the flag must still land on the
	// new root.
	f := []float64{10, 1, 1}
	u := unionfind.New(3)
	for i := 0; i < 3; i++ {
		u.Activate(i)
	}
	big := u.UnionSurvivor(f, u.Find(1), u.Find(2)) // size-2 low-density set
	u.ProtectRoot(u.Find(0))

	newRoot := u.UnionSurvivor(f, u.Find(0), big)
	assert.True(t, u.IsProtectedRoot(newRoot))
}
