package notify

import (
	"sync"
	"time"
)

// Kind тип уведомления
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notification одно декларативное уведомление.
// Ядро только добавляет и удаляет записи; отрисовка — забота презентационного
// слоя (CLI печатает, gateway отдает JSON).
type Notification struct {
	Message string    `json:"message"`
	Kind    Kind      `json:"kind"`
	Expiry  time.Time `json:"expiry"`
}

// Queue упорядоченная очередь уведомлений с истечением по времени
type Queue struct {
	items []Notification
	ttl   time.Duration
	now   func() time.Time
	mu    sync.Mutex
}

// NewQueue создает очередь с заданным временем жизни уведомлений
func NewQueue(ttl time.Duration) *Queue {
	return &Queue{
		ttl: ttl,
		now: time.Now,
	}
}

// Push добавляет уведомление в конец очереди
func (q *Queue) Push(message string, kind Kind) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = append(q.items, Notification{
		Message: message,
		Kind:    kind,
		Expiry:  q.now().Add(q.ttl),
	})
}

// Pending возвращает живые уведомления, отбрасывая истекшие
func (q *Queue) Pending() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	alive := q.items[:0]
	for _, n := range q.items {
		if n.Expiry.After(now) {
			alive = append(alive, n)
		}
	}
	q.items = alive

	out := make([]Notification, len(q.items))
	copy(out, q.items)
	return out
}

// Drain возвращает живые уведомления и очищает очередь.
// Удобно для CLI: каждое уведомление печатается один раз.
func (q *Queue) Drain() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	var out []Notification
	for _, n := range q.items {
		if n.Expiry.After(now) {
			out = append(out, n)
		}
	}
	q.items = nil
	return out
}

// Clear очищает очередь
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = nil
}
