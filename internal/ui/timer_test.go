package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerFiresOnce(t *testing.T) {
	t.Parallel()
	timer := &ActionTimer{}
	fired := 0

	require.True(t, timer.Schedule(100*time.Millisecond, func() { fired++ }))
	assert.True(t, timer.Active())

	timer.Poll(60 * time.Millisecond)
	assert.Equal(t, 0, fired)
	timer.Poll(60 * time.Millisecond)
	assert.Equal(t, 1, fired)
	assert.False(t, timer.Active())

	timer.Poll(time.Hour)
	assert.Equal(t, 1, fired)
}

func TestTimerSingleSlot(t *testing.T) {
	t.Parallel()
	timer := &ActionTimer{}
	var order []string

	require.True(t, timer.Schedule(time.Millisecond, func() { order = append(order, "first") }))
	assert.False(t, timer.Schedule(time.Millisecond, func() { order = append(order, "rejected") }))

	timer.Poll(time.Millisecond)
	assert.Equal(t, []string{"first"}, order)
}

func TestTimerChainsFromAction(t *testing.T) {
	t.Parallel()
	timer := &ActionTimer{}
	var order []string

	require.True(t, timer.Schedule(time.Millisecond, func() {
		order = append(order, "first")
		// the slot is free again by the time the action runs
		require.True(t, timer.Schedule(time.Millisecond, func() { order = append(order, "second") }))
	}))
	timer.Poll(time.Millisecond)
	assert.Equal(t, []string{"first"}, order)
	assert.True(t, timer.Active())
	timer.Poll(time.Millisecond)
	assert.Equal(t, []string{"first", "second"}, order)
}
