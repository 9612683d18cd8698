package picker

import (
	"errors"
	"math/rand"
	"sync"
	"time"
)

var ErrNoCandidates = errors.New("no hay nicknames para elegir")

// Picker elige un nickname al azar con distribución uniforme.
type Picker struct {
	mu     sync.Mutex
	random *rand.Rand
}

type Config struct {
	// Seed fija para tests; 0 usa la hora actual.
	Seed int64
}

func New(cfg *Config) *Picker {
	seed := time.Now().UnixNano()
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}
	return &Picker{random: rand.New(rand.NewSource(seed))}
}

// Pick devuelve candidates[i] con i uniforme en [0, len).
func (p *Picker) Pick(candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}
	// rand.Rand no es seguro para uso concurrente
	p.mu.Lock()
	i := p.random.Intn(len(candidates))
	p.mu.Unlock()
	return candidates[i], nil
}
