package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTask struct {
	name    string
	renders int
	err     error
	onRun   func()
}

func (t *fakeTask) RenderPass() error {
	t.renders++
	if t.onRun != nil {
		t.onRun()
	}
	return t.err
}

func TestSchedule_IdempotentPerTurn(t *testing.T) {
	s := New()
	task := &fakeTask{}

	s.Schedule(task)
	s.Schedule(task)
	s.Schedule(task)
	assert.Equal(t, 1, s.Pending())

	require.NoError(t, s.Flush())
	assert.Equal(t, 1, task.renders)
	assert.Equal(t, 0, s.Pending())
}

func TestFlush_InsertionOrder(t *testing.T) {
	s := New()
	var order []string
	a := &fakeTask{name: "a"}
	b := &fakeTask{name: "b"}
	c := &fakeTask{name: "c"}
	for _, task := range []*fakeTask{a, b, c} {
		task := task
		task.onRun = func() { order = append(order, task.name) }
	}

	s.Schedule(b)
	s.Schedule(a)
	s.Schedule(b) // re-schedule does not move b
	s.Schedule(c)

	require.NoError(t, s.Flush())
	assert.Equal(t, []string{"b", "a", "c"}, order)
}

func TestFlush_DrainsTasksScheduledDuringFlush(t *testing.T) {
	s := New()
	follower := &fakeTask{}
	leader := &fakeTask{}
	leader.onRun = func() {
		if leader.renders == 1 {
			s.Schedule(follower)
		}
	}

	s.Schedule(leader)
	require.NoError(t, s.Flush())
	assert.Equal(t, 1, leader.renders)
	assert.Equal(t, 1, follower.renders)
}

func TestFlush_ErrorPropagatesAndKeepsRemainder(t *testing.T) {
	s := New()
	boom := errors.New("boom")
	failing := &fakeTask{err: boom}
	after := &fakeTask{}

	s.Schedule(failing)
	s.Schedule(after)

	err := s.Flush()
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, failing.renders, "failed task is not retried")
	assert.Equal(t, 0, after.renders, "remainder stays queued")
	assert.Equal(t, 1, s.Pending())

	failing.err = nil
	require.NoError(t, s.Flush())
	assert.Equal(t, 1, failing.renders, "failed task does not re-arm on its own")
	assert.Equal(t, 1, after.renders)
}

func TestOnNeedsFlush_FiresOnFirstScheduleOnly(t *testing.T) {
	s := New()
	signals := 0
	s.OnNeedsFlush = func() { signals++ }

	a := &fakeTask{}
	b := &fakeTask{}
	s.Schedule(a)
	s.Schedule(b)
	s.Schedule(a)
	assert.Equal(t, 1, signals)

	require.NoError(t, s.Flush())
	s.Schedule(a)
	assert.Equal(t, 2, signals, "signal re-arms after a flush")
}

func TestOnNeedsFlush_RearmsAfterErrorRequeue(t *testing.T) {
	s := New()
	signals := 0
	s.OnNeedsFlush = func() { signals++ }

	failing := &fakeTask{err: errors.New("boom")}
	after := &fakeTask{}
	s.Schedule(failing)
	s.Schedule(after)
	assert.Equal(t, 1, signals)

	require.Error(t, s.Flush())
	assert.Equal(t, 1, s.Pending())
	assert.Equal(t, 2, signals, "the requeued remainder signals a new flush")

	s.Schedule(&fakeTask{})
	assert.Equal(t, 2, signals, "no edge while the queue is non-empty")

	require.NoError(t, s.Flush())
	assert.Equal(t, 0, s.Pending())

	s.Schedule(after)
	assert.Equal(t, 3, signals, "signal re-arms once the queue drained")
}

func TestSchedule_NilTaskIgnored(t *testing.T) {
	s := New()
	s.Schedule(nil)
	assert.Equal(t, 0, s.Pending())
	require.NoError(t, s.Flush())
}
