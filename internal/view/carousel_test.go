package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarousel_ClampBoundaries(t *testing.T) {
	c := NewCarousel(makeItems(7), 3, Clamp)

	c.Retreat()
	assert.Equal(t, 0, c.View().Start)

	c.JumpTo(4)
	c.Advance()
	w := c.View()
	assert.Equal(t, 4, w.Start)
	assert.True(t, w.CanRetreat)
	assert.False(t, w.CanAdvance)

	c.JumpTo(0)
	w = c.View()
	assert.False(t, w.CanRetreat)
	assert.True(t, w.CanAdvance)
}

func TestCarousel_WrapBoundaries(t *testing.T) {
	c := NewCarousel(makeItems(7), 3, Wrap)

	c.Retreat()
	assert.Equal(t, 4, c.View().Start)

	c.Advance()
	assert.Equal(t, 0, c.View().Start)

	w := c.View()
	assert.True(t, w.CanRetreat)
	assert.True(t, w.CanAdvance)
}

func TestCarousel_WindowAndIndicators(t *testing.T) {
	items := makeItems(7)
	c := NewCarousel(items, 3, Clamp)
	c.Advance()
	c.Advance()

	w := c.View()
	assert.Equal(t, items[2:5], w.Items)
	assert.Equal(t, 5, w.Indicators)
	assert.True(t, w.Navigable)
}

func TestCarousel_JumpToNormalizes(t *testing.T) {
	clamped := NewCarousel(makeItems(7), 3, Clamp)
	clamped.JumpTo(-2)
	assert.Equal(t, 0, clamped.View().Start)
	clamped.JumpTo(10)
	assert.Equal(t, 4, clamped.View().Start)

	wrapped := NewCarousel(makeItems(7), 3, Wrap)
	wrapped.JumpTo(6)
	assert.Equal(t, 1, wrapped.View().Start)
	wrapped.JumpTo(-1)
	assert.Equal(t, 4, wrapped.View().Start)
}

func TestCarousel_AppendToWindowLeavesSource(t *testing.T) {
	items := makeItems(7)
	c := NewCarousel(items, 3, Wrap)

	_ = append(c.View().Items, item{ID: "extra"})
	assert.Equal(t, "3", items[3].ID)

	c.JumpTo(4)
	assert.Equal(t, items[4:7], c.View().Items)
}

func TestCarousel_FewerItemsThanWindow(t *testing.T) {
	for _, b := range []Boundary{Clamp, Wrap} {
		t.Run(b.String(), func(t *testing.T) {
			items := makeItems(2)
			c := NewCarousel(items, 3, b)
			c.Advance()
			c.Retreat()
			c.JumpTo(5)

			w := c.View()
			assert.Equal(t, 0, w.Start)
			assert.Equal(t, items, w.Items)
			assert.Equal(t, 1, w.Indicators)
			assert.False(t, w.Navigable)
			assert.False(t, w.CanAdvance)
			assert.False(t, w.CanRetreat)
		})
	}
}

func TestCarousel_Empty(t *testing.T) {
	c := NewCarousel[item](nil, 3, Wrap)
	c.Advance()
	w := c.View()
	assert.Empty(t, w.Items)
	assert.Equal(t, 0, w.Indicators)
}

func TestCarousel_SingleItemGallery(t *testing.T) {
	items := makeItems(3)
	c := NewCarousel(items, 1, Wrap)
	c.Retreat()
	assert.Equal(t, []item{items[2]}, c.View().Items)
	c.Advance()
	c.Advance()
	assert.Equal(t, []item{items[1]}, c.View().Items)
}

func TestParseBoundary(t *testing.T) {
	b, err := ParseBoundary(" Wrap ")
	assert.NoError(t, err)
	assert.Equal(t, Wrap, b)

	b, err = ParseBoundary("clamped")
	assert.NoError(t, err)
	assert.Equal(t, Clamp, b)

	_, err = ParseBoundary("bounce")
	assert.Error(t, err)
}
