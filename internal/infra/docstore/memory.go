package docstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memDoc struct {
	seq  int64
	data map[string]any
}

// memoryStore keeps collections in process. Used for local runs and tests.
type memoryStore struct {
	mu    sync.RWMutex
	seq   int64
	colls map[string]map[string]*memDoc
}

func NewMemory() Store {
	return &memoryStore{colls: map[string]map[string]*memDoc{}}
}

func (s *memoryStore) Collection(name string) Collection {
	return &memCollection{s: s, name: name}
}

func (s *memoryStore) Ping(context.Context) error  { return nil }
func (s *memoryStore) Close(context.Context) error { return nil }

type memCollection struct {
	s    *memoryStore
	name string
}

// docs must be called with the store lock held.
func (c *memCollection) docs() map[string]*memDoc {
	m, ok := c.s.colls[c.name]
	if !ok {
		m = map[string]*memDoc{}
		c.s.colls[c.name] = m
	}
	return m
}

func matches(data map[string]any, f Filter) bool {
	for k, want := range f {
		got, ok := data[k]
		if !ok || fmt.Sprint(got) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}

func sortTime(data map[string]any, field string) time.Time {
	s, _ := data[field].(string)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

type memEntry struct {
	id  string
	doc *memDoc
}

func (c *memCollection) selectLocked(f Filter) []memEntry {
	var out []memEntry
	for id, d := range c.docs() {
		if matches(d.data, f) {
			out = append(out, memEntry{id: id, doc: d})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].doc.seq < out[j].doc.seq })
	return out
}

func (c *memCollection) Find(_ context.Context, q Query, out any) error {
	if _, err := sliceElem(out); err != nil {
		return err
	}
	if q.SortDesc != "" {
		if err := checkField(q.SortDesc); err != nil {
			return err
		}
	}

	c.s.mu.RLock()
	entries := c.selectLocked(q.Filter)
	if q.SortDesc != "" {
		sort.SliceStable(entries, func(i, j int) bool {
			return sortTime(entries[i].doc.data, q.SortDesc).After(sortTime(entries[j].doc.data, q.SortDesc))
		})
	}
	docs := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, withID(e.doc.data, e.id))
	}
	c.s.mu.RUnlock()

	if q.Skip > 0 {
		if q.Skip >= int64(len(docs)) {
			docs = docs[:0]
		} else {
			docs = docs[q.Skip:]
		}
	}
	if q.Limit > 0 && q.Limit < int64(len(docs)) {
		docs = docs[:q.Limit]
	}
	return decodeJSONDocs(docs, out)
}

func (c *memCollection) FindOne(_ context.Context, filter Filter, out any) error {
	c.s.mu.RLock()
	entries := c.selectLocked(filter)
	if len(entries) == 0 {
		c.s.mu.RUnlock()
		return ErrNotFound
	}
	doc := withID(entries[0].doc.data, entries[0].id)
	c.s.mu.RUnlock()
	return decodeJSONDocs(doc, out)
}

func (c *memCollection) Count(_ context.Context, filter Filter) (int64, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	return int64(len(c.selectLocked(filter))), nil
}

func (c *memCollection) insertLocked(data map[string]any) string {
	id := uuid.NewString()
	c.s.seq++
	c.docs()[id] = &memDoc{seq: c.s.seq, data: data}
	return id
}

func (c *memCollection) Insert(_ context.Context, doc any) (string, error) {
	data, err := toJSONMap(doc)
	if err != nil {
		return "", err
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	return c.insertLocked(data), nil
}

func (c *memCollection) InsertMany(_ context.Context, docs []any) ([]string, error) {
	encoded := make([]map[string]any, 0, len(docs))
	for _, d := range docs {
		data, err := toJSONMap(d)
		if err != nil {
			return nil, err
		}
		encoded = append(encoded, data)
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	ids := make([]string, 0, len(encoded))
	for _, data := range encoded {
		ids = append(ids, c.insertLocked(data))
	}
	return ids, nil
}

func (c *memCollection) Set(_ context.Context, id string, fields map[string]any) (int64, error) {
	if _, err := uuid.Parse(id); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	patch, err := toJSONMap(fields)
	if err != nil {
		return 0, err
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	d, ok := c.docs()[id]
	if !ok {
		return 0, nil
	}
	for k, v := range patch {
		d.data[k] = v
	}
	return 1, nil
}

func (c *memCollection) Upsert(_ context.Context, filter Filter, fields map[string]any) error {
	patch, err := toJSONMap(fields)
	if err != nil {
		return err
	}
	if len(patch) == 0 {
		return nil
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	entries := c.selectLocked(filter)
	if len(entries) == 0 {
		for k, v := range filter {
			if _, ok := patch[k]; !ok {
				patch[k] = v
			}
		}
		c.insertLocked(patch)
		return nil
	}
	for k, v := range patch {
		entries[0].doc.data[k] = v
	}
	return nil
}

func (c *memCollection) Delete(_ context.Context, id string) (int64, error) {
	if _, err := uuid.Parse(id); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	docs := c.docs()
	if _, ok := docs[id]; !ok {
		return 0, nil
	}
	delete(docs, id)
	return 1, nil
}

func (c *memCollection) DeleteMany(_ context.Context, filter Filter) (int64, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	entries := c.selectLocked(filter)
	docs := c.docs()
	for _, e := range entries {
		delete(docs, e.id)
	}
	return int64(len(entries)), nil
}
