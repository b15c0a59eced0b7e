package cotask

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOnceDriverStaysDoneAfterCompletion(t *testing.T) {
	clock := &manualClock{}
	d := NewOnce(Delay(100*time.Millisecond), clock)

	require.Equal(t, Cont, d.Tick(), "arming pass")
	clock.Advance(100)
	require.Equal(t, Done, d.Tick())
	require.Equal(t, Done, d.Tick(), "once semantics: no reset, further passes are idempotent no-ops")
}

func TestRepeatDriverRestartsRootOnCompletion(t *testing.T) {
	clock := &manualClock{}
	d := NewRepeat(Delay(100*time.Millisecond), clock)

	require.Equal(t, Cont, d.Tick())
	clock.Advance(100)
	require.Equal(t, Done, d.Tick(), "cycle 1 completes")

	// The root frame was reset; the next pass re-arms from scratch.
	require.Equal(t, Cont, d.Tick(), "cycle 2 begins")
	clock.Advance(100)
	require.Equal(t, Done, d.Tick(), "cycle 2 completes")
}

func TestEveryDriverHoldsCompletionUntilIntervalElapses(t *testing.T) {
	clock := &manualClock{}
	d := NewEvery(200*time.Millisecond, Delay(50*time.Millisecond), clock)

	require.Equal(t, Cont, d.Tick())
	clock.Advance(50)
	require.Equal(t, Done, d.Tick(), "first cycle completes at t=50")

	clock.Advance(100) // t=150, short of completedAt(50)+interval(200)=250
	require.Equal(t, Done, d.Tick(), "still within the interval: no reset yet")

	clock.Advance(100) // t=250: interval has elapsed
	require.Equal(t, Done, d.Tick(), "reset happens on this pass, reporting the still-pending prior Done")

	require.Equal(t, Cont, d.Tick(), "cycle 2 now begins from a freshly reset root")
	clock.Advance(50)
	require.Equal(t, Done, d.Tick(), "cycle 2 completes at t=300")
}

func TestDriverMetricsTrackTicksAndCompletions(t *testing.T) {
	clock := &manualClock{}
	m := &Metrics{}
	d := NewRepeat(Delay(10*time.Millisecond), clock, WithMetrics(m))

	d.Tick()
	clock.Advance(10)
	d.Tick()
	d.Tick() // cycle 2, freshly reset

	require.Same(t, m, d.Metrics())
	require.Equal(t, uint64(3), m.Ticks)
	require.Equal(t, uint64(1), m.Completions)
}

func TestDriverWithNilMetricsDoesNotPanic(t *testing.T) {
	clock := &manualClock{}
	d := NewOnce(instantDone, clock)
	require.Nil(t, d.Metrics())
	require.NotPanics(t, func() { d.Tick() })
}

// TestBlinkUnderRepeat mirrors the blink scenario (S1): a periodic toggle
// driven by NewRepeat, where each cycle is a fixed delay.
func TestBlinkUnderRepeat(t *testing.T) {
	clock := &manualClock{}
	var edges int
	blink := func(rt *Runtime) Status {
		f, done := rt.Begin()
		if done {
			return Done
		}
		switch f.PC {
		case 0:
			f.Wait = rt.clock.Now() + 250
			f.PC = 1
			edges++
			return Cont
		default:
			if !expired(rt.clock.Now(), f.Wait) {
				return Cont
			}
		}
		f.PC = Finally
		return Done
	}
	d := NewRepeat(blink, clock)

	for cycle := 0; cycle < 4; cycle++ {
		require.Equal(t, Cont, d.Tick())
		clock.Advance(250)
		require.Equal(t, Done, d.Tick())
	}
	require.Equal(t, 4, edges, "one toggle per blink cycle")
}

// TestConcurrentBlinkAndButtonUnderOnce mirrors S2: a blink loop racing
// against a button-press watch, both driven by a single Once driver via
// Race, terminating as soon as the button wins.
func TestConcurrentBlinkAndButtonUnderOnce(t *testing.T) {
	clock := &manualClock{}
	var rec []string
	blink := alwaysCont // never completes on its own
	buttonPress := Delay(300 * time.Millisecond)
	d := NewOnce(Race(buttonPress, blink, recording(&rec, "button"), recording(&rec, "blink")), clock)

	for clock.now < 300 {
		require.Equal(t, Cont, d.Tick())
		clock.Advance(50)
	}
	require.Equal(t, Done, d.Tick())
	require.Equal(t, []string{"button"}, rec)
}
