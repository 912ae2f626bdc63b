package memory

import "sync"

// table is one ordered collection. Rows are handed out as copies only.
type table[T any] struct {
	mu     sync.RWMutex
	rows   []T
	lastID int64
	id     func(*T) int64
	setID  func(*T, int64)
	clone  func(T) T
}

func newTable[T any](id func(*T) int64, setID func(*T, int64), clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T]{id: id, setID: setID, clone: clone}
}

// nextID never reuses an id, even after deletes.
func (t *table[T]) nextID() int64 {
	t.lastID++
	return t.lastID
}

// load appends fixture rows, keeping their ids when set.
func (t *table[T]) load(rows []T, stamp func(*T)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, row := range rows {
		row = t.clone(row)
		if id := t.id(&row); id > 0 {
			if id > t.lastID {
				t.lastID = id
			}
		} else {
			t.setID(&row, t.nextID())
		}
		stamp(&row)
		t.rows = append(t.rows, row)
	}
}

// list returns matching rows, most recently inserted first.
func (t *table[T]) list(match func(*T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	result := make([]T, 0, len(t.rows))
	for i := len(t.rows) - 1; i >= 0; i-- {
		if match == nil || match(&t.rows[i]) {
			result = append(result, t.clone(t.rows[i]))
		}
	}
	return result
}

func (t *table[T]) find(match func(*T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i := range t.rows {
		if match(&t.rows[i]) {
			return t.clone(t.rows[i]), true
		}
	}
	var zero T
	return zero, false
}

func (t *table[T]) get(id int64) (T, bool) {
	return t.find(func(row *T) bool { return t.id(row) == id })
}

// insert assigns the next id, runs check against the current rows under the
// write lock, then stores a copy of row.
func (t *table[T]) insert(row *T, check func(existing []T) error, stamp func(*T)) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if check != nil {
		if err := check(t.rows); err != nil {
			return err
		}
	}
	t.setID(row, t.nextID())
	stamp(row)
	t.rows = append(t.rows, t.clone(*row))
	return nil
}

// update applies mutate to the row with id. mutate sees every row so it can
// enforce uniqueness; its error aborts the update.
func (t *table[T]) update(id int64, mutate func(row *T, all []T) error) (T, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var zero T
	for i := range t.rows {
		if t.id(&t.rows[i]) != id {
			continue
		}
		next := t.clone(t.rows[i])
		if err := mutate(&next, t.rows); err != nil {
			return zero, true, err
		}
		t.rows[i] = next
		return t.clone(next), true, nil
	}
	return zero, false, nil
}

func (t *table[T]) remove(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.rows {
		if t.id(&t.rows[i]) == id {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			return true
		}
	}
	return false
}
