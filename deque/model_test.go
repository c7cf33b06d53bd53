package deque_test

import (
	"math/rand"
	"testing"

	gdeque "github.com/gammazero/deque"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkdeque/deque-go/deque"
)

// model mirrors the bounded eviction rules on top of gammazero/deque so a random
// stream of operations can be replayed against both and compared.
type model struct {
	q      *gdeque.Deque[int]
	maxLen int
}

func (m *model) pushBack(v int) {
	m.q.PushBack(v)
	if m.maxLen > 0 && m.q.Len() > m.maxLen {
		m.q.PopFront()
	}
}

func (m *model) pushFront(v int) {
	m.q.PushFront(v)
	if m.maxLen > 0 && m.q.Len() > m.maxLen {
		m.q.PopBack()
	}
}

func (m *model) popBack() (int, bool) {
	if m.q.Len() == 0 {
		return 0, false
	}
	return m.q.PopBack(), true
}

func (m *model) popFront() (int, bool) {
	if m.q.Len() == 0 {
		return 0, false
	}
	return m.q.PopFront(), true
}

func (m *model) values() []int {
	values := make([]int, m.q.Len())
	for i := range values {
		values[i] = m.q.At(i)
	}
	return values
}

func TestMatchesReferenceDeque(t *testing.T) {
	for _, maxLen := range []int{0, 1, 2, 5, 17} {
		rng := rand.New(rand.NewSource(int64(maxLen) + 42))

		var d *deque.Deque[int]
		if maxLen > 0 {
			d = deque.NewBounded[int](maxLen)
		} else {
			d = deque.New[int]()
		}
		m := &model{q: gdeque.New[int](0), maxLen: maxLen}

		for step := 0; step < 2000; step++ {
			v := rng.Intn(10)
			switch rng.Intn(7) {
			case 0, 1:
				d.PushBack(v)
				m.pushBack(v)
			case 2, 3:
				d.PushFront(v)
				m.pushFront(v)
			case 4:
				want, ok := m.popBack()
				got := d.PopBack()
				require.Equal(t, ok, got.IsPresent(), "step %d", step)
				if ok {
					require.Equal(t, want, got.MustGet(), "step %d", step)
				}
			case 5:
				want, ok := m.popFront()
				got := d.PopFront()
				require.Equal(t, ok, got.IsPresent(), "step %d", step)
				if ok {
					require.Equal(t, want, got.MustGet(), "step %d", step)
				}
			case 6:
				if rng.Intn(20) == 0 {
					d.Clear()
					m.q.Clear()
				}
			}

			deque.CheckInvariants(d)
			require.Equal(t, m.q.Len(), d.Len(), "step %d", step)
		}

		assert.Equal(t, m.values(), d.Values(), "max length %d", maxLen)
	}
}

func TestCountAndIndexMatchReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	d := deque.New[int]()
	m := &model{q: gdeque.New[int](0)}
	for i := 0; i < 300; i++ {
		v := rng.Intn(20)
		d.PushBack(v)
		m.pushBack(v)
	}

	values := m.values()
	for target := 0; target < 25; target++ {
		count, first := 0, -1
		for i, v := range values {
			if v == target {
				if first < 0 {
					first = i
				}
				count++
			}
		}

		assert.Equal(t, count, d.Count(target), "count of %d", target)
		idx, err := d.Index(target)
		if first < 0 {
			assert.ErrorIs(t, err, deque.ErrNotFound)
		} else {
			assert.NoError(t, err)
			assert.Equal(t, first, idx)
		}
	}
}
