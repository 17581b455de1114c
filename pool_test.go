package ufiber

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoolRecyclesWithinBound(t *testing.T) {
	p := newFCBPool(2)

	a := p.allocFCB()
	b := p.allocFCB()
	a.state = stateDead
	b.state = stateDead

	p.releaseFCB(a)
	require.Equal(t, 1, p.size)
	p.releaseFCB(b)
	require.Equal(t, 2, p.size)

	got := p.allocFCB()
	require.Same(t, b, got, "most recently released fcb is reused first")
	require.Equal(t, stateReady, got.state, "resetFCB must clear the recycled state")
}

func TestPoolEvictsOldestBeyondMax(t *testing.T) {
	p := newFCBPool(1)

	a := p.allocFCB()
	b := p.allocFCB()
	c := p.allocFCB()
	a.state, b.state, c.state = stateDead, stateDead, stateDead

	p.releaseFCB(a)
	p.releaseFCB(b) // evicts a, since max is 1
	require.Equal(t, 1, p.size)

	got := p.allocFCB()
	require.Same(t, b, got)

	p.releaseFCB(c)
	got2 := p.allocFCB()
	require.Same(t, c, got2)
}

func TestNewFCBPoolClampsMaxToOne(t *testing.T) {
	p := newFCBPool(0)
	require.Equal(t, 1, p.max)
	p = newFCBPool(-5)
	require.Equal(t, 1, p.max)
}
