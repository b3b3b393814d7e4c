package metrics

import (
	"sync"
	"time"
)

// Metrics считает запросы анализа за время жизни процесса.
// Счетчики живут только в памяти и отдаются через /debug/metrics.
type Metrics struct {
	mu                    sync.RWMutex
	ScoreRequests         int64
	StarRequests          int64
	ComprehensiveRequests int64
	FallbacksUsed         int64
	LastUpdateTime        time.Time
}

// Snapshot — копия счетчиков для сериализации в ответ
type Snapshot struct {
	ScoreRequests         int64     `json:"score_requests"`
	StarRequests          int64     `json:"star_requests"`
	ComprehensiveRequests int64     `json:"comprehensive_requests"`
	FallbacksUsed         int64     `json:"fallbacks_used"`
	LastUpdateTime        time.Time `json:"last_update_time"`
}

func NewMetrics() *Metrics {
	return &Metrics{
		LastUpdateTime: time.Now(),
	}
}

func (m *Metrics) IncrementScoreRequests() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ScoreRequests++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementStarRequests() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StarRequests++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementComprehensiveRequests() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ComprehensiveRequests++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementFallbacksUsed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FallbacksUsed++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) GetSnapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		ScoreRequests:         m.ScoreRequests,
		StarRequests:          m.StarRequests,
		ComprehensiveRequests: m.ComprehensiveRequests,
		FallbacksUsed:         m.FallbacksUsed,
		LastUpdateTime:        m.LastUpdateTime,
	}
}
