package history

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/proyectmyvet/myvet/internal/core/store"
)

const (
	namespace = "historial"
	listKey   = "lista_citas"
)

// Entry is a locally cached record of a successfully booked appointment.
// Entries are never reconciled with the backend; this is an independent
// client-side log.
type Entry struct {
	ID     int64  `json:"id"`
	Pet    string `json:"mascota"`
	Owner  string `json:"dueno"`
	Reason string `json:"motivo"`
	Date   string `json:"fecha"`
	Time   string `json:"hora"`
}

// NewID returns an id for a fresh entry. Creation-time milliseconds keep ids
// unique enough for a single-device log.
func NewID() int64 {
	return time.Now().UnixMilli()
}

// Cache is a persisted newest-first list of entries, stored as one JSON blob.
// Append and Remove are read-modify-write over the whole blob with no writer
// lock; concurrent writers are last-write-wins.
type Cache struct {
	kv *store.KV
}

// New wraps a key-value store with the history list.
func New(kv *store.KV) *Cache {
	return &Cache{kv: kv}
}

// All returns every entry, newest first. An unset list is an empty slice;
// a corrupted blob is an error, not a silent reset.
func (c *Cache) All() ([]Entry, error) {
	raw, ok, err := c.kv.Get(namespace, listKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Entry{}, nil
	}
	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return entries, nil
}

// Append inserts the entry at the front of the list.
func (c *Cache) Append(entry Entry) error {
	entries, err := c.All()
	if err != nil {
		return err
	}
	entries = append([]Entry{entry}, entries...)
	return c.write(entries)
}

// Remove deletes the entry with the given id. Removing an absent id is a
// no-op.
func (c *Cache) Remove(id int64) error {
	entries, err := c.All()
	if err != nil {
		return err
	}
	kept := entries[:0]
	found := false
	for _, entry := range entries {
		if entry.ID == id {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return nil
	}
	return c.write(kept)
}

func (c *Cache) write(entries []Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	return c.kv.Set(namespace, listKey, string(raw))
}
