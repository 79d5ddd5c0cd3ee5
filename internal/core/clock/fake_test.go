package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFake_Advance_runs_due_callbacks_in_order(t *testing.T) {
	f := NewFake(epoch)

	var order []string
	f.AfterFunc(300*time.Millisecond, func() { order = append(order, "c") })
	f.AfterFunc(100*time.Millisecond, func() { order = append(order, "a") })
	f.AfterFunc(200*time.Millisecond, func() { order = append(order, "b") })

	f.Advance(250 * time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, order)
	assert.Equal(t, 1, f.Pending())

	f.Advance(50 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, epoch.Add(300*time.Millisecond), f.Now())
}

func TestFake_Advance_same_deadline_runs_in_schedule_order(t *testing.T) {
	f := NewFake(epoch)

	var order []int
	for i := range 3 {
		f.AfterFunc(time.Second, func() { order = append(order, i) })
	}

	f.Advance(time.Second)
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestFake_Advance_runs_nested_callbacks_inside_window(t *testing.T) {
	f := NewFake(epoch)

	var fired []time.Time
	f.AfterFunc(time.Second, func() {
		fired = append(fired, f.Now())
		f.AfterFunc(300*time.Millisecond, func() {
			fired = append(fired, f.Now())
		})
	})

	f.Advance(2 * time.Second)
	assert.Equal(t, []time.Time{
		epoch.Add(time.Second),
		epoch.Add(1300 * time.Millisecond),
	}, fired)
}

func TestFake_Stop(t *testing.T) {
	f := NewFake(epoch)

	called := false
	timer := f.AfterFunc(time.Second, func() { called = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second stop reports already stopped")

	f.Advance(time.Minute)
	assert.False(t, called)
	assert.Zero(t, f.Pending())
}

func TestFake_Stop_after_fire(t *testing.T) {
	f := NewFake(epoch)
	timer := f.AfterFunc(time.Millisecond, func() {})

	f.Advance(time.Millisecond)
	assert.False(t, timer.Stop())
}
