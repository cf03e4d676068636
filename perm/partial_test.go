// Package perm_test — reconstruction of permutations from chain/cycle
// fragments, including conflict detection.
package perm_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/archgraph/perm"
)

func TestPartial_ChainAndCycleMerge(t *testing.T) {
	t.Parallel()

	p := perm.NewPartial()
	require.NoError(t, p.AddFragment("1>3>2"))
	require.NoError(t, p.AddFragment("(4,5)"))

	img, err := p.Complete()
	require.NoError(t, err)
	// 1↦3, 3↦2, 4↦5, 5↦4; 2 is the only free source, 1 the only free target.
	assert.Equal(t, perm.Image{2, 0, 1, 4, 3}, img)
	assert.Equal(t, "(1,3,2)(4,5)", perm.Cycles(img))
}

func TestPartial_RestatedAssignmentIsNoop(t *testing.T) {
	t.Parallel()

	p := perm.NewPartial()
	require.NoError(t, p.AddFragment("2>4"))
	require.NoError(t, p.AddFragment("2>4"))
	assert.Equal(t, 1, p.Len())
}

func TestPartial_AmbiguousMapping(t *testing.T) {
	t.Parallel()

	p := perm.NewPartial()
	require.NoError(t, p.AddFragment("1>2"))
	err := p.AddFragment("1>3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, perm.ErrAmbiguousMapping))
	// The diagnostic must name the conflicting element.
	assert.Contains(t, err.Error(), "element 1")
}

func TestPartial_InjectivityConflict(t *testing.T) {
	t.Parallel()

	p := perm.NewPartial()
	require.NoError(t, p.AddFragment("1>3"))
	err := p.AddFragment("2>3")
	assert.True(t, errors.Is(err, perm.ErrNotInjective))
}

func TestPartial_BadFragments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		frag string
	}{
		{name: "empty", frag: "   "},
		{name: "single element chain", frag: "4"},
		{name: "unterminated cycle", frag: "(1,2"},
		{name: "singleton cycle", frag: "(3)"},
		{name: "non numeric", frag: "1>x"},
		{name: "zero element", frag: "0>1"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := perm.NewPartial().AddFragment(tc.frag)
			assert.True(t, errors.Is(err, perm.ErrBadFragment), "got %v", err)
		})
	}
}

func TestPartial_CompleteOnEmptyFails(t *testing.T) {
	t.Parallel()

	_, err := perm.NewPartial().Complete()
	assert.True(t, errors.Is(err, perm.ErrBadFragment))
}

func TestPartial_CompletionIsDeterministic(t *testing.T) {
	t.Parallel()

	// 2↦5 leaves sources {1,3,4,5} and targets {1,2,3,4} free:
	// ascending matching gives 1↦1, 3↦2, 4↦3, 5↦4.
	p := perm.NewPartial()
	require.NoError(t, p.AddFragment("2>5"))
	img, err := p.Complete()
	require.NoError(t, err)
	assert.Equal(t, perm.Image{0, 4, 1, 2, 3}, img)
}
