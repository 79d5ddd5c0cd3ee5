package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_Publish_dispatches_to_subscribers(t *testing.T) {
	bus := NewBus()

	var received []Options
	bus.Subscribe(func(o Options) {
		received = append(received, o)
	})

	bus.Errorf("test error: %d", 42)
	bus.Infof("info msg")
	bus.Warnf("warn msg")
	bus.Successf("saved %s", "post")

	require.Len(t, received, 4)
	assert.Equal(t, KindError, received[0].Kind)
	assert.Equal(t, "test error: 42", received[0].Message)
	assert.Equal(t, KindInfo, received[1].Kind)
	assert.Equal(t, KindWarning, received[2].Kind)
	assert.Equal(t, KindSuccess, received[3].Kind)
	assert.Equal(t, "saved post", received[3].Message)
}

func TestBus_Publish_fans_out_to_every_subscriber(t *testing.T) {
	bus := NewBus()

	var a, b int
	bus.Subscribe(func(Options) { a++ })
	bus.Subscribe(func(Options) { b++ })

	bus.Publish(Options{Message: "hello"})

	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}

func TestBus_Publish_without_subscribers(t *testing.T) {
	bus := NewBus()
	assert.NotPanics(t, func() { bus.Infof("nobody listening") })
}

func TestBus_Subscribe_during_publish(t *testing.T) {
	bus := NewBus()

	late := 0
	bus.Subscribe(func(Options) {
		bus.Subscribe(func(Options) { late++ })
	})

	bus.Infof("first")
	assert.Zero(t, late, "subscriber added mid-publish only sees later notifications")

	bus.Infof("second")
	assert.Equal(t, 1, late)
}
