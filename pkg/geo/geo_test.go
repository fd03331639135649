package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	gangnam := Point{Lat: 37.4979, Lng: 127.0276}
	jongno := Point{Lat: 37.5704, Lng: 126.9922}

	t.Run("same point is zero", func(t *testing.T) {
		assert.InDelta(t, 0, Distance(gangnam, gangnam), 1e-6)
	})

	t.Run("is symmetric", func(t *testing.T) {
		assert.InDelta(t, Distance(gangnam, jongno), Distance(jongno, gangnam), 1e-6)
	})

	t.Run("gangnam to jongno is about 8.7km", func(t *testing.T) {
		assert.InDelta(t, 8700, Distance(gangnam, jongno), 300)
	})

	t.Run("one degree of latitude is about 111km", func(t *testing.T) {
		d := Distance(Point{Lat: 0, Lng: 0}, Point{Lat: 1, Lng: 0})
		assert.InDelta(t, 111195, d, 100)
	})
}

func TestPointValid(t *testing.T) {
	assert.True(t, Point{Lat: 37.5, Lng: 127.0}.Valid())
	assert.True(t, Point{Lat: -89.9, Lng: 179.9}.Valid())
	assert.False(t, Point{Lat: 91, Lng: 0}.Valid())
	assert.False(t, Point{Lat: 0, Lng: 181}.Valid())
}
