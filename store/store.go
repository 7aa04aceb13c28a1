// store implements the in-memory record store backing the API.
// Nothing is persisted: a process restart loses all data.
package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"case-management-api/models"
)

// MemoryDB holds all case templates and clients, keyed by generated
// id. Ids are `<kind>_<counter>_<unixMillis>`; uniqueness comes from
// the per-kind counter, the timestamp is informational.
//
// The mutex guards map access across concurrent requests. Two callers
// doing read-modify-write across separate HTTP calls still race with
// last-write-wins semantics; there is no version token.
type MemoryDB struct {
	mu sync.RWMutex

	templates     map[string]models.CaseTemplate
	templateOrder []string
	clients       map[string]models.Client
	clientOrder   []string

	templateCounter int
	clientCounter   int

	now func() time.Time
}

func New() *MemoryDB {
	return &MemoryDB{
		templates: make(map[string]models.CaseTemplate),
		clients:   make(map[string]models.Client),
		now:       time.Now,
	}
}

// InsertTemplate assigns an id and timestamps, stores the record and
// returns it.
func (d *MemoryDB) InsertTemplate(t models.CaseTemplate) models.CaseTemplate {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.templateCounter++
	now := d.now()
	t.ID = fmt.Sprintf("template_%d_%d", d.templateCounter, now.UnixMilli())
	t.CreatedAt = now
	t.UpdatedAt = now

	d.templates[t.ID] = t
	d.templateOrder = append(d.templateOrder, t.ID)
	return t
}

// Templates returns every template, newest first. Records sharing a
// created_at keep their insertion order.
func (d *MemoryDB) Templates() []models.CaseTemplate {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]models.CaseTemplate, 0, len(d.templateOrder))
	for _, id := range d.templateOrder {
		out = append(out, d.templates[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (d *MemoryDB) Template(id string) (models.CaseTemplate, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	t, ok := d.templates[id]
	return t, ok
}

// UpdateTemplate applies mutate to a copy of the stored record,
// refreshes updated_at and stores the result. Returns false if the id
// does not resolve.
func (d *MemoryDB) UpdateTemplate(id string, mutate func(*models.CaseTemplate)) (models.CaseTemplate, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	t, ok := d.templates[id]
	if !ok {
		return models.CaseTemplate{}, false
	}
	mutate(&t)
	t.UpdatedAt = d.now()
	d.templates[id] = t
	return t, true
}

// DeleteTemplate removes the record if present. Deletion is
// unconditional: clients created from the template keep their
// snapshot and are unaffected.
func (d *MemoryDB) DeleteTemplate(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.templates[id]; !ok {
		return false
	}
	delete(d.templates, id)
	d.templateOrder = removeID(d.templateOrder, id)
	return true
}

func (d *MemoryDB) InsertClient(c models.Client) models.Client {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.clientCounter++
	now := d.now()
	c.ID = fmt.Sprintf("client_%d_%d", d.clientCounter, now.UnixMilli())
	c.CreatedAt = now
	c.UpdatedAt = now

	d.clients[c.ID] = c
	d.clientOrder = append(d.clientOrder, c.ID)
	return c
}

func (d *MemoryDB) Clients() []models.Client {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]models.Client, 0, len(d.clientOrder))
	for _, id := range d.clientOrder {
		out = append(out, d.clients[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (d *MemoryDB) Client(id string) (models.Client, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	c, ok := d.clients[id]
	return c, ok
}

func (d *MemoryDB) UpdateClient(id string, mutate func(*models.Client)) (models.Client, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	c, ok := d.clients[id]
	if !ok {
		return models.Client{}, false
	}
	mutate(&c)
	c.UpdatedAt = d.now()
	d.clients[id] = c
	return c, true
}

func (d *MemoryDB) DeleteClient(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.clients[id]; !ok {
		return false
	}
	delete(d.clients, id)
	d.clientOrder = removeID(d.clientOrder, id)
	return true
}

func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
