package memory

import (
	"sync"

	"github.com/jhoicas/stockboard/internal/domain/entity"
	"github.com/jhoicas/stockboard/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// DefaultActivityCapacity eventos que se conservan si no se configura otro valor.
const DefaultActivityCapacity = 50

// ActivityRepo buffer circular de actividad reciente.
type ActivityRepo struct {
	mu     sync.Mutex
	buf    []entity.Activity
	next   int
	filled bool
}

// NewActivityRepository construye el buffer con la capacidad indicada (<= 0 usa la de defecto).
func NewActivityRepository(capacity int) *ActivityRepo {
	if capacity <= 0 {
		capacity = DefaultActivityCapacity
	}
	return &ActivityRepo{buf: make([]entity.Activity, capacity)}
}

// Append sobrescribe el evento más antiguo cuando el buffer está lleno.
func (r *ActivityRepo) Append(a entity.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buf[r.next] = a
	r.next = (r.next + 1) % len(r.buf)
	if r.next == 0 {
		r.filled = true
	}
	return nil
}

// Recent devuelve hasta limit eventos, el más reciente primero. limit <= 0 devuelve todos.
func (r *ActivityRepo) Recent(limit int) ([]entity.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	size := r.next
	if r.filled {
		size = len(r.buf)
	}
	if limit <= 0 || limit > size {
		limit = size
	}
	out := make([]entity.Activity, 0, limit)
	for i := 1; i <= limit; i++ {
		out = append(out, r.buf[(r.next-i+len(r.buf))%len(r.buf)])
	}
	return out, nil
}
