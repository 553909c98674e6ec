package market

import "sort"

// Thread holds one conversation's messages keyed by message id.
// Messages arrive over two paths — a full re-fetch after sending and
// the realtime push on insert — and the same row can show up on both,
// so Add must be idempotent.
type Thread struct {
	byID  map[string]Message
	dirty bool
	view  []Message
}

func NewThread() *Thread {
	return &Thread{byID: make(map[string]Message)}
}

// Add inserts or replaces a message. Returns true if the message was
// not present before.
func (t *Thread) Add(m Message) bool {
	_, exists := t.byID[m.ID]
	t.byID[m.ID] = m
	t.dirty = true
	return !exists
}

func (t *Thread) AddAll(ms []Message) {
	for _, m := range ms {
		t.Add(m)
	}
}

// MarkRead flips the read flag on every message sent by senderID.
func (t *Thread) MarkRead(senderID string) {
	for id, m := range t.byID {
		if m.SenderID == senderID && !m.Read {
			m.Read = true
			t.byID[id] = m
			t.dirty = true
		}
	}
}

func (t *Thread) Len() int { return len(t.byID) }

// Messages returns the conversation ordered by creation time ascending,
// id as tiebreak.
func (t *Thread) Messages() []Message {
	if t.dirty || t.view == nil {
		t.view = make([]Message, 0, len(t.byID))
		for _, m := range t.byID {
			t.view = append(t.view, m)
		}
		sort.Slice(t.view, func(i, j int) bool {
			if !t.view[i].CreatedAt.Equal(t.view[j].CreatedAt) {
				return t.view[i].CreatedAt.Before(t.view[j].CreatedAt)
			}
			return t.view[i].ID < t.view[j].ID
		})
		t.dirty = false
	}
	return t.view
}
