package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkham-tools/investigator-api/internal/catalog"
)

// scriptedRoller returns queued die faces in order.
type scriptedRoller struct {
	faces []int
	next  int
}

func (s *scriptedRoller) Roll(_ int) (int, error) {
	f := s.faces[s.next%len(s.faces)]
	s.next++
	return f, nil
}

func (s *scriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func newTestGenerator(t *testing.T, faces ...int) *Generator {
	t.Helper()
	g, err := NewGenerator(&Config{Roller: &scriptedRoller{faces: faces}})
	require.NoError(t, err)
	return g
}

func TestNewGenerator_RequiresRoller(t *testing.T) {
	_, err := NewGenerator(&Config{})
	require.Error(t, err)

	_, err = NewGenerator(nil)
	require.Error(t, err)
}

func TestRoll_CompoundNotation(t *testing.T) {
	t.Run("3d6 times 5", func(t *testing.T) {
		g := newTestGenerator(t, 4, 5, 6)
		value, err := g.Roll(catalog.RollSpec{Count: 3, Sides: 6, Multiplier: 5})
		require.NoError(t, err)
		assert.Equal(t, 75, value)
	})

	t.Run("2d6 plus 6 times 5", func(t *testing.T) {
		g := newTestGenerator(t, 3, 4)
		value, err := g.Roll(catalog.RollSpec{Count: 2, Sides: 6, Plus: 6, Multiplier: 5})
		require.NoError(t, err)
		assert.Equal(t, 65, value)
	})

	t.Run("invalid spec", func(t *testing.T) {
		g := newTestGenerator(t, 1)
		_, err := g.Roll(catalog.RollSpec{Count: 0, Sides: 6})
		require.Error(t, err)
	})
}

func TestRollDetailed_AuditTrail(t *testing.T) {
	g := newTestGenerator(t, 2, 3, 4)

	detailed, err := g.RollDetailed(catalog.RollSpec{Count: 3, Sides: 6, Multiplier: 5})
	require.NoError(t, err)

	assert.Equal(t, "3D6x5", detailed.Notation)
	assert.Equal(t, []int{2, 3, 4}, detailed.Dice)
	assert.Equal(t, 45, detailed.Value)
	require.Len(t, detailed.Steps, 3)
	assert.Contains(t, detailed.Steps[0], "3D6x5")
	assert.Contains(t, detailed.Steps[1], "9")
	assert.Contains(t, detailed.Steps[2], "45")
}

func TestRollAttribute_Clamped(t *testing.T) {
	// 6+6+6 = 18, x6 = 108, clamped to 99.
	g := newTestGenerator(t, 6, 6, 6)
	value, err := g.RollAttribute(catalog.RollSpec{Count: 3, Sides: 6, Multiplier: 6})
	require.NoError(t, err)
	assert.Equal(t, AttributeMax, value)
}

func TestParseNotation(t *testing.T) {
	tests := []struct {
		notation string
		want     catalog.RollSpec
		wantErr  bool
	}{
		{notation: "3d6x5", want: catalog.RollSpec{Count: 3, Sides: 6, Multiplier: 5}},
		{notation: "2d6+6x5", want: catalog.RollSpec{Count: 2, Sides: 6, Plus: 6, Multiplier: 5}},
		{notation: "1d100", want: catalog.RollSpec{Count: 1, Sides: 100, Multiplier: 1}},
		{notation: "d6", wantErr: true},
		{notation: "0d6", wantErr: true},
		{notation: "3x6d5", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.notation, func(t *testing.T) {
			spec, err := ParseNotation(tc.notation)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, spec)
		})
	}
}

func TestNotation(t *testing.T) {
	assert.Equal(t, "3D6x5", Notation(catalog.RollSpec{Count: 3, Sides: 6, Multiplier: 5}))
	assert.Equal(t, "2D6+6x5", Notation(catalog.RollSpec{Count: 2, Sides: 6, Plus: 6, Multiplier: 5}))
	assert.Equal(t, "1D10", Notation(catalog.RollSpec{Count: 1, Sides: 10, Multiplier: 1}))
}
