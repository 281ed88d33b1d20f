package unionfind

// UF is the tomato-specialized disjoint-set state of §3/§4.4. The zero
// value is not usable; construct with New.
type UF struct {
	parent    []int
	size      []int
	mode      []int
	protected []bool
	active    []bool
}

// New allocates a UF over n vertices, all inactive. Complexity: O(n).
func New(n int) *UF {
	u := &UF{
		parent:    make([]int, n),
		size:      make([]int, n),
		mode:      make([]int, n),
		protected: make([]bool, n),
		active:    make([]bool, n),
	}
	for i := 0; i < n; i++ {
		u.parent[i] = i
		u.size[i] = 1
		u.mode[i] = i
	}
	return u
}

// IsActive reports whether v has been reached by the sweep yet.
func (u *UF) IsActive(v int) bool {
	return u.active[v]
}

// Activate brings v into the sweep as a fresh singleton root. The caller
// guarantees v has never been merged into any other set before this call
// (the sweep activates each vertex exactly once, in ≻ order, before any
// neighbor-union can touch it).
func (u *UF) Activate(v int) {
	u.active[v] = true
	u.parent[v] = v
	u.size[v] = 1
	u.mode[v] = v
	u.protected[v] = false
}

// Find resolves v to its current root, halving the path as it climbs.
// Idempotent; allocation-free.
func (u *UF) Find(v int) int {
	for u.parent[v] != v {
		p := u.parent[v]
		gp := u.parent[p]
		u.parent[v] = gp
		v = p
	}
	return v
}

// IsProtectedRoot reports whether root r has been certified as a
// τ-persistent mode. Meaningful only when r is a current root.
func (u *UF) IsProtectedRoot(r int) bool {
	return u.protected[r]
}

// ProtectRoot marks root r as τ-persistent: it may absorb other roots
// afterward, but package tomato must never choose it as the absorbed side
// of a later union in the same sweep.
func (u *UF) ProtectRoot(r int) {
	u.protected[r] = true
}

// ModeOfRoot returns the highest-≻ vertex merged into root r so far.
// Meaningful only when r is a current root.
func (u *UF) ModeOfRoot(r int) int {
	return u.mode[r]
}

// UnionSurvivor merges other_root into survivor_root (or vice versa,
// depending on which set is larger) and returns the identity of the
// resulting root.
//
// Preconditions: both arguments are current roots, distinct, and
// mode(survivorRoot) ≻ mode(otherRoot) under f.
//
// The union direction is chosen by size — the larger set becomes the
// parent, ties favor survivorRoot — but regardless of direction the new
// root's mode and protected flag are always carried from survivorRoot,
// not from whichever side won the size tie-break. That carried-mode
// discipline is what lets tomato.Cluster read off the correct cluster
// label without a second pass over the forest.
func (u *UF) UnionSurvivor(f []float64, survivorRoot, otherRoot int) int {
	survivorMode := u.mode[survivorRoot]
	otherMode := u.mode[otherRoot]
	if fs, fo := f[survivorMode], f[otherMode]; !(fs > fo || (fs == fo && survivorMode < otherMode)) {
		panic("unionfind: UnionSurvivor called with survivorRoot not higher-mode than otherRoot")
	}

	newRoot, child := survivorRoot, otherRoot
	if u.size[newRoot] < u.size[child] {
		newRoot, child = child, newRoot
	}

	u.parent[child] = newRoot
	u.size[newRoot] += u.size[child]
	u.mode[newRoot] = survivorMode
	u.protected[newRoot] = u.protected[survivorRoot]

	return newRoot
}
