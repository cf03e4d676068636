// Package synth_test — Component invariants, uniqueness keys and the Seen
// set.
package synth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/archgraph/synth"
)

func TestComponent_KeyIsOrderSensitive(t *testing.T) {
	t.Parallel()

	a := synth.Component{Degree: 4, Generators: []string{"(1,2)", "(3,4)"}}
	b := synth.Component{Degree: 4, Generators: []string{"(3,4)", "(1,2)"}}
	c := synth.Component{Degree: 4, Generators: []string{"(1,2)", "(3,4)"}}

	assert.NotEqual(t, a.Key(), b.Key(), "tuple identity is order-sensitive")
	assert.Equal(t, a.Key(), c.Key())
}

func TestComponent_Trivial(t *testing.T) {
	t.Parallel()

	assert.True(t, synth.Component{Degree: 3}.Trivial())
	assert.False(t, synth.Component{Degree: 3, Generators: []string{"(1,2)"}}.Trivial())
}

func TestComponent_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		comp    synth.Component
		wantErr bool
	}{
		{name: "valid", comp: synth.Component{Degree: 4, Generators: []string{"(1,2)", "(1,2,3,4)"}}},
		{name: "trivial is valid", comp: synth.Component{Degree: 1}},
		{name: "zero degree", comp: synth.Component{Degree: 0}, wantErr: true},
		{name: "out of domain", comp: synth.Component{Degree: 3, Generators: []string{"(1,4)"}}, wantErr: true},
		{name: "garbage generator", comp: synth.Component{Degree: 3, Generators: []string{"nope"}}, wantErr: true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.comp.Validate()
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, synth.ErrBadComponent))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSeen(t *testing.T) {
	t.Parallel()

	s := synth.NewSeen()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has("(1,2)"))

	s.Add("(1,2)")
	assert.True(t, s.Has("(1,2)"))
	assert.Equal(t, 1, s.Len())

	s.Add("(1,2)")
	assert.Equal(t, 1, s.Len(), "re-adding is a no-op")
}
