package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func msg(id, sender string, at time.Time) Message {
	return Message{ID: id, SenderID: sender, ReceiverID: "other", Content: "oi", CreatedAt: at}
}

func TestThreadAddIsIdempotent(t *testing.T) {
	th := NewThread()
	now := time.Now()

	assert.True(t, th.Add(msg("m1", "a", now)))
	assert.False(t, th.Add(msg("m1", "a", now)))
	assert.Equal(t, 1, th.Len())

	// the push copy and the refetched row merge into one entry
	th.AddAll([]Message{msg("m1", "a", now), msg("m2", "b", now.Add(time.Second))})
	assert.Equal(t, 2, th.Len())
}

func TestThreadOrdering(t *testing.T) {
	base := time.Now()
	th := NewThread()
	th.Add(msg("m3", "a", base.Add(2*time.Second)))
	th.Add(msg("m1", "a", base))
	th.Add(msg("m2", "b", base.Add(time.Second)))

	ms := th.Messages()
	assert.Equal(t, []string{"m1", "m2", "m3"}, []string{ms[0].ID, ms[1].ID, ms[2].ID})
}

func TestThreadOrderingTiebreakByID(t *testing.T) {
	at := time.Now()
	th := NewThread()
	th.Add(msg("b", "x", at))
	th.Add(msg("a", "x", at))

	ms := th.Messages()
	assert.Equal(t, "a", ms[0].ID)
	assert.Equal(t, "b", ms[1].ID)
}

func TestThreadMarkReadOnlyFlipsSender(t *testing.T) {
	now := time.Now()
	th := NewThread()
	th.Add(msg("m1", "contact", now))
	th.Add(msg("m2", "me", now.Add(time.Second)))

	th.MarkRead("contact")

	for _, m := range th.Messages() {
		if m.SenderID == "contact" {
			assert.True(t, m.Read)
		} else {
			assert.False(t, m.Read)
		}
	}
}
