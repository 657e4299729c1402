package random

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source is the randomness the suggestion composer draws from.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// Locked wraps a seeded generator so one instance can be shared across goroutines.
type Locked struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New(seed uint64) *Locked {
	return &Locked{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func NewTimeSeeded() *Locked {
	return New(uint64(time.Now().UnixNano()))
}

func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.IntN(n)
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

// Choice returns a uniformly chosen byte of charset, or 0 when it is empty.
func Choice(src Source, charset string) byte {
	if len(charset) == 0 {
		return 0
	}
	return charset[src.IntN(len(charset))]
}

func GenerateRandomString(src Source, charset string, length int) string {
	if length <= 0 || len(charset) == 0 {
		return ""
	}

	result := make([]byte, length)
	for i := range result {
		result[i] = Choice(src, charset)
	}
	return string(result)
}

// Sample returns k distinct values from [0, n) in random order.
func Sample(src Source, n, k int) []int {
	if k > n {
		k = n
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + src.IntN(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
