package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionCart_AddMergesByID(t *testing.T) {
	c := &SessionCart{SessionID: "s"}
	p := &Product{ID: "pc-1", Name: "PC Gamer RTX", Price: 2999.90}

	c.Add(p)
	c.Add(p)
	c.Add(&Product{ID: "pc-2", Name: "PC Office", Price: 1500})

	require.Equal(t, 2, c.Count())
	require.Equal(t, 2, c.Lines[0].Quantity)
	require.Equal(t, "pc-2", c.Lines[1].ID)
	require.InDelta(t, 2999.90*2+1500, c.Total(), 0.001)
}

func TestSessionCart_Remove(t *testing.T) {
	c := &SessionCart{}
	c.Add(&Product{ID: "a"})
	c.Add(&Product{ID: "b"})

	require.True(t, c.Remove("a"))
	require.False(t, c.Remove("missing"))
	require.Equal(t, 1, c.Count())
	require.Equal(t, "b", c.Lines[0].ID)
}

func TestSessionCart_CloneIsIndependent(t *testing.T) {
	c := &SessionCart{}
	c.Add(&Product{ID: "a", Name: "x"})

	cl := c.Clone()
	cl.Lines[0].Name = "changed"

	require.Equal(t, "x", c.Lines[0].Name)
}

func TestSessionCart_ViewOfNilIsEmptyList(t *testing.T) {
	var c *SessionCart
	v := c.View()
	require.NotNil(t, v.Items)
	require.Empty(t, v.Items)
	require.Zero(t, v.Count)
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"PC Gamer RTX 4090", "pc-gamer-rtx-4090"},
		{"Ryzen 7 / 32GB -- Edição", "ryzen-7-32gb-edio"},
		{"  spaced  out ", "spaced-out"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}
}
