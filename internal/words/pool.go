package words

import (
	"math/rand"
	"sync"
	"time"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Word struct {
	Text       string     `json:"word"`
	Difficulty Difficulty `json:"difficulty"`
}

// Pool is the combined word list rooms sample candidates from. All
// difficulty tiers are pooled together; sampling is uniform over the whole
// list. Safe for concurrent use by independent rooms.
type Pool struct {
	mu    sync.Mutex
	rng   *rand.Rand
	words []Word
}

func NewPool(list []Word) *Pool {
	return &Pool{
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		words: list,
	}
}

func (p *Pool) Size() int {
	return len(p.words)
}

// Sample draws n distinct words without replacement, uniformly. A random
// permutation of the indices gives every word the same chance at every
// position; comparator-based shuffles are biased and must not be used here.
// If n exceeds the pool size the whole pool is returned, shuffled.
func (p *Pool) Sample(n int) []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if n > len(p.words) {
		n = len(p.words)
	}
	perm := p.rng.Perm(len(p.words))
	out := make([]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, p.words[idx].Text)
	}
	return out
}
