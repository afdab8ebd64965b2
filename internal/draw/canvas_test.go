package draw_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/invaders/internal/draw"
)

func TestFillRect(t *testing.T) {
	// 1:1 scaling: 120 columns, 40 rows = 80 sub-pixels
	c := draw.NewScaledCanvas(120, 40, 120, 80)

	c.FillRect(10, 10, 6, 3)

	assert.True(t, c.IsSetFloat(10, 10), "top-left corner set")
	assert.True(t, c.IsSetFloat(12, 11), "interior set")
	assert.False(t, c.IsSetFloat(9, 10), "left of rect clear")
	assert.False(t, c.IsSetFloat(10, 14), "below rect clear")

	c.Clear()
	assert.False(t, c.IsSetFloat(12, 11), "cleared")
}

func TestCanvasScaling(t *testing.T) {
	// Half-size terminal: logical coordinates compress by 2x
	c := draw.NewScaledCanvas(60, 20, 120, 80)

	c.SetFloat(100, 60)
	assert.True(t, c.IsSetFloat(100, 60))

	col, row := c.LogicalToTerminal(120, 80)
	assert.Equal(t, 61, col)
	assert.Equal(t, 21, row)
}

func TestRenderUsesHalfBlocks(t *testing.T) {
	c := draw.NewScaledCanvas(4, 2, 4, 4)

	// Top sub-pixel only in column 0, both sub-pixels in column 1
	c.SetFloat(0, 0)
	c.SetFloat(1, 0)
	c.SetFloat(1, 1)

	var sb strings.Builder
	c.Render(&sb)
	out := sb.String()

	assert.Contains(t, out, string(rune(draw.BlockUpperHalf)))
	assert.Contains(t, out, string(rune(draw.BlockFull)))
}

func TestChunkWriterOffsets(t *testing.T) {
	var sb strings.Builder
	cw := draw.NewChunkWriter(&sb, 5, 3)

	cw.WriteAt(1, 1, "hi")
	require.NoError(t, cw.Flush())

	// 1-based canvas position (1,1) maps to terminal (6,4)
	assert.Equal(t, "\033[4;6Hhi", sb.String())
}
