// Package perm_test verifies cycle-form rendering/parsing round trips and
// image validation.
package perm_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/archgraph/perm"
)

func TestCycles_Rendering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		img  perm.Image
		want string
	}{
		{name: "identity", img: perm.Identity(5), want: ""},
		{name: "single transposition", img: perm.Image{1, 0, 2}, want: "(1,2)"},
		{name: "three cycle", img: perm.Image{2, 0, 1}, want: "(1,3,2)"},
		{name: "two cycles", img: perm.Image{2, 0, 1, 4, 3}, want: "(1,3,2)(4,5)"},
		{name: "full rotation", img: perm.Image{1, 2, 3, 0}, want: "(1,2,3,4)"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, perm.Cycles(tc.img))
		})
	}
}

func TestParseCycles_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		s      string
		degree int
	}{
		{name: "identity", s: "", degree: 4},
		{name: "transposition", s: "(1,2)", degree: 4},
		{name: "two cycles", s: "(1,3,2)(4,5)", degree: 5},
		{name: "rotation", s: "(1,2,3,4,5,6)", degree: 6},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			img, err := perm.ParseCycles(tc.s, tc.degree)
			require.NoError(t, err)
			require.NoError(t, perm.Validate(img))
			assert.Equal(t, tc.s, perm.Cycles(img))
		})
	}
}

func TestParseCycles_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		s       string
		degree  int
		wantErr error
	}{
		{name: "unbalanced", s: "(1,2", degree: 3, wantErr: perm.ErrBadCycleForm},
		{name: "no paren", s: "1,2", degree: 3, wantErr: perm.ErrBadCycleForm},
		{name: "singleton cycle", s: "(1)", degree: 3, wantErr: perm.ErrBadCycleForm},
		{name: "non numeric", s: "(1,a)", degree: 3, wantErr: perm.ErrBadCycleForm},
		{name: "out of domain", s: "(1,9)", degree: 3, wantErr: perm.ErrOutOfDomain},
		{name: "zero element", s: "(0,1)", degree: 3, wantErr: perm.ErrOutOfDomain},
		{name: "repeated element", s: "(1,2)(2,3)", degree: 3, wantErr: perm.ErrDuplicateElement},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := perm.ParseCycles(tc.s, tc.degree)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "want %v, got %v", tc.wantErr, err)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, perm.Validate(perm.Image{2, 0, 1}))

	err := perm.Validate(perm.Image{0, 0, 1})
	assert.True(t, errors.Is(err, perm.ErrNotPermutation))

	err = perm.Validate(perm.Image{0, 5, 1})
	assert.True(t, errors.Is(err, perm.ErrNotPermutation))
}

func TestIsIdentity(t *testing.T) {
	t.Parallel()

	assert.True(t, perm.IsIdentity(perm.Identity(7)))
	assert.True(t, perm.IsIdentity(perm.Image{}))
	assert.False(t, perm.IsIdentity(perm.Image{1, 0}))
}
