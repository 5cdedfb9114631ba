package store

import (
	"fmt"
	"sync"
	"time"
)

// idSource gera IDs a partir do relógio, como o mock original fazia.
// Duas criações no mesmo milissegundo recebem um sufixo sequencial para que
// uma não sobrescreva a outra silenciosamente.
type idSource struct {
	mu   sync.Mutex
	last int64
	seq  int
}

func (g *idSource) next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now().UnixMilli()
	if now == g.last {
		g.seq++
		return fmt.Sprintf("%d-%d", now, g.seq)
	}
	g.last = now
	g.seq = 0
	return fmt.Sprintf("%d", now)
}
