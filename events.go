package sprite3d

import (
	"github.com/akmonengine/sprite3d/actor"
)

const (
	ON_SHOW EventType = iota
	ON_HIDE
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// ShowEvent is sent when a sprite starts overlapping the screen
type ShowEvent struct {
	Sprite *actor.Sprite
}

func (e ShowEvent) Type() EventType { return ON_SHOW }

// HideEvent is sent when a sprite stops overlapping the screen, or is hidden
type HideEvent struct {
	Sprite *actor.Sprite
}

func (e HideEvent) Type() EventType { return ON_HIDE }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	visibleStates map[*actor.Sprite]bool
}

func NewEvents() Events {
	return Events{
		listeners:     make(map[EventType][]EventListener),
		buffer:        make([]Event, 0, 64),
		visibleStates: make(map[*actor.Sprite]bool),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// processVisibilityEvents compares the visibility of each sprite with the one
// recorded at the previous frame. A sprite seen for the first time only has
// its state recorded.
func (e *Events) processVisibilityEvents(sprites []*actor.Sprite) {
	if e.visibleStates == nil {
		e.visibleStates = make(map[*actor.Sprite]bool)
	}

	for _, sprite := range sprites {
		trackedState, exists := e.visibleStates[sprite]
		if !exists {
			e.visibleStates[sprite] = sprite.IsVisible
			continue
		}

		if !trackedState && sprite.IsVisible {
			e.buffer = append(e.buffer, ShowEvent{Sprite: sprite})
			e.visibleStates[sprite] = true
		} else if trackedState && !sprite.IsVisible {
			e.buffer = append(e.buffer, HideEvent{Sprite: sprite})
			e.visibleStates[sprite] = false
		}
	}
}

// forget drops the tracked state of a removed sprite
func (e *Events) forget(sprite *actor.Sprite) {
	delete(e.visibleStates, sprite)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
