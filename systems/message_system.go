package systems

import (
	"fmt"

	"ferris-shooter/entity"
	"ferris-shooter/world"
)

// MessageLog keeps the last few HUD messages in a ring
type MessageLog struct {
	ring  []string
	next  int
	count int
}

// NewMessageLog creates a log holding at most capacity messages
func NewMessageLog(capacity int) *MessageLog {
	return &MessageLog{ring: make([]string, max(capacity, 1))}
}

// Add appends a message, dropping the oldest once the log is full
func (ml *MessageLog) Add(message string) {
	ml.ring[ml.next] = message
	ml.next = (ml.next + 1) % len(ml.ring)
	if ml.count < len(ml.ring) {
		ml.count++
	}
}

// Len returns the number of stored messages
func (ml *MessageLog) Len() int {
	return ml.count
}

// Recent returns up to n messages, newest first
func (ml *MessageLog) Recent(n int) []string {
	n = min(max(n, 0), ml.count)

	result := make([]string, n)
	for i := range result {
		result[i] = ml.ring[(ml.next-1-i+len(ml.ring))%len(ml.ring)]
	}
	return result
}

// Clear drops every message
func (ml *MessageLog) Clear() {
	clear(ml.ring)
	ml.next, ml.count = 0, 0
}

// Subscribe feeds the log from world events
func (ml *MessageLog) Subscribe(w *world.World) {
	em := w.GetEventManager()

	em.Subscribe(EventWave, func(event world.Event) {
		wave := event.(WaveEvent)
		ml.Add(fmt.Sprintf("Wave %d incoming", wave.Wave))
		if wave.Boss {
			ml.Add("A boss appears!")
		}
		if wave.Powerup {
			ml.Add("Powerup spotted")
		}
	})

	em.Subscribe(EventExpired, func(event world.Event) {
		switch event.(ExpiredEvent).Entity.Kind {
		case entity.Powerup:
			ml.Add("A powerup faded away")
		case entity.Boss:
			ml.Add("The boss retreats")
		}
	})
}
