package tetris

import "math/rand"

// queueMin is the length below which the queue appends a fresh bag.
const queueMin = 7

// Randomizer deals shuffled bags of all seven kinds.
type Randomizer struct {
	rng *rand.Rand
}

// NewRandomizer returns a randomizer seeded for reproducible sequences.
func NewRandomizer(seed int64) *Randomizer {
	return &Randomizer{rng: rand.New(rand.NewSource(seed))}
}

// NewBag returns a permutation of the seven kinds.
func (r *Randomizer) NewBag() []Kind {
	bag := AllKinds[:]
	out := make([]Kind, len(bag))
	copy(out, bag)
	r.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Queue holds the upcoming kinds. After every Pop it holds at least seven.
type Queue struct {
	rand  *Randomizer
	kinds []Kind
}

// NewQueue returns a queue primed with one bag.
func NewQueue(r *Randomizer) *Queue {
	return &Queue{rand: r, kinds: r.NewBag()}
}

// Pop removes and returns the next kind, refilling when running low.
func (q *Queue) Pop() Kind {
	if len(q.kinds) == 0 {
		q.kinds = append(q.kinds, q.rand.NewBag()...)
	}
	k := q.kinds[0]
	q.kinds = q.kinds[1:]
	if len(q.kinds) < queueMin {
		q.kinds = append(q.kinds, q.rand.NewBag()...)
	}
	return k
}

// Peek returns up to n upcoming kinds without consuming them.
func (q *Queue) Peek(n int) []Kind {
	n = min(max(n, 0), len(q.kinds))
	out := make([]Kind, n)
	copy(out, q.kinds[:n])
	return out
}

// Len returns the number of queued kinds.
func (q *Queue) Len() int {
	return len(q.kinds)
}
