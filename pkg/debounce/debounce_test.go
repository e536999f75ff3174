package debounce_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/pixelcraft/pkg/debounce"
)

func TestDebouncer_SingleCall(t *testing.T) {
	var called int32
	d := debounce.New(30 * time.Millisecond)

	d.Debounce(func() { atomic.AddInt32(&called, 1) })

	require.Eventually(t, func() bool { return atomic.LoadInt32(&called) == 1 }, time.Second, 5*time.Millisecond)
	require.False(t, d.Pending())
}

func TestDebouncer_RapidCalls_OnlyLastFires(t *testing.T) {
	var called, last int32
	d := debounce.New(50 * time.Millisecond)

	for i := int32(1); i <= 10; i++ {
		v := i
		d.Debounce(func() {
			atomic.StoreInt32(&last, v)
			atomic.AddInt32(&called, 1)
		})
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return atomic.LoadInt32(&called) == 1 }, time.Second, 5*time.Millisecond)
	// ждём ещё одну паузу: лишних вызовов быть не должно
	time.Sleep(100 * time.Millisecond)
	require.EqualValues(t, 1, atomic.LoadInt32(&called))
	require.EqualValues(t, 10, atomic.LoadInt32(&last))
}

func TestDebouncer_Cancel(t *testing.T) {
	var called int32
	d := debounce.New(30 * time.Millisecond)

	d.Debounce(func() { atomic.AddInt32(&called, 1) })
	require.True(t, d.Pending())
	d.Cancel()
	require.False(t, d.Pending())

	time.Sleep(80 * time.Millisecond)
	require.EqualValues(t, 0, atomic.LoadInt32(&called))
}

func TestDebouncer_Immediate_CancelsPending(t *testing.T) {
	var pending, immediate int32
	d := debounce.New(30 * time.Millisecond)

	d.Debounce(func() { atomic.AddInt32(&pending, 1) })
	d.Immediate(func() { atomic.AddInt32(&immediate, 1) })

	require.EqualValues(t, 1, atomic.LoadInt32(&immediate))
	time.Sleep(80 * time.Millisecond)
	require.EqualValues(t, 0, atomic.LoadInt32(&pending))
}
