package calltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEquivalentReflexiveSymmetric(t *testing.T) {
	frames := []Frame{
		{Name: "main.main", Path: "/src/main.go", Line: 10},
		{Name: "main.main", Path: "/src/main.go", Line: 10, Column: 3},
		{Name: "runtime.gopark"},
		{},
	}
	for _, matchColumn := range []bool{false, true} {
		for _, a := range frames {
			assert.True(t, Equivalent(a, a, matchColumn), "reflexive: %+v", a)
			for _, b := range frames {
				assert.Equal(t,
					Equivalent(a, b, matchColumn),
					Equivalent(b, a, matchColumn),
					"symmetric: %+v vs %+v", a, b)
			}
		}
	}
}

func TestEquivalentAbsentFields(t *testing.T) {
	noSource := Frame{Name: "f"}
	withSource := Frame{Name: "f", Path: "/src/f.go", Line: 1}

	// Absent equals absent.
	assert.True(t, Equivalent(noSource, Frame{Name: "f"}, false))
	// Absent never equals present.
	assert.False(t, Equivalent(noSource, withSource, false))
}

func TestEquivalentColumnPolicy(t *testing.T) {
	a := Frame{Name: "f", Path: "/src/f.go", Line: 5, Column: 2}
	b := Frame{Name: "f", Path: "/src/f.go", Line: 5, Column: 9}

	assert.True(t, Equivalent(a, b, false), "tolerant policy ignores column")
	assert.False(t, Equivalent(a, b, true), "strict policy requires column")
}

func TestEquivalentMismatches(t *testing.T) {
	base := Frame{Name: "f", Path: "/src/f.go", Line: 5}
	assert.False(t, Equivalent(base, Frame{Name: "g", Path: "/src/f.go", Line: 5}, false))
	assert.False(t, Equivalent(base, Frame{Name: "f", Path: "/src/g.go", Line: 5}, false))
	assert.False(t, Equivalent(base, Frame{Name: "f", Path: "/src/f.go", Line: 6}, false))
}

func TestFingerprintAgreesWithEquivalence(t *testing.T) {
	// Fingerprint is only a pre-filter: equivalent frames must hash equal
	// under either column policy, since column is excluded from the hash.
	a := Frame{Name: "f", Path: "/src/f.go", Line: 5, Column: 2}
	b := Frame{Name: "f", Path: "/src/f.go", Line: 5, Column: 9}
	assert.Equal(t, fingerprint(a), fingerprint(b))

	c := Frame{Name: "f", Path: "/src/f.go", Line: 6}
	assert.NotEqual(t, fingerprint(a), fingerprint(c))
}

func TestReverseFrames(t *testing.T) {
	in := []Frame{{Name: "leaf"}, {Name: "mid"}, {Name: "root"}}
	out := ReverseFrames(in)
	assert.Equal(t, []Frame{{Name: "root"}, {Name: "mid"}, {Name: "leaf"}}, out)
	// Input untouched.
	assert.Equal(t, "leaf", in[0].Name)

	assert.Empty(t, ReverseFrames(nil))
}
