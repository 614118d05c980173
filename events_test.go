package sprite3d

import (
	"testing"

	"github.com/akmonengine/sprite3d/actor"
	"github.com/akmonengine/sprite3d/config"
	"github.com/go-gl/mathgl/mgl64"
)

type eventCapture struct {
	events []Event
}

func (ec *eventCapture) capture(event Event) {
	ec.events = append(ec.events, event)
}

func (ec *eventCapture) reset() {
	ec.events = ec.events[:0]
}

func (ec *eventCapture) count() int {
	return len(ec.events)
}

func (ec *eventCapture) countType(eventType EventType) int {
	n := 0
	for _, e := range ec.events {
		if e.Type() == eventType {
			n++
		}
	}
	return n
}

func subscribeAll(events *Events, capture *eventCapture) {
	events.Subscribe(ON_SHOW, capture.capture)
	events.Subscribe(ON_HIDE, capture.capture)
}

// =============================================================================
// Events Unit Tests
// =============================================================================

func TestEventTypes(t *testing.T) {
	if (ShowEvent{}).Type() != ON_SHOW {
		t.Error("ShowEvent.Type() should be ON_SHOW")
	}
	if (HideEvent{}).Type() != ON_HIDE {
		t.Error("HideEvent.Type() should be ON_HIDE")
	}
}

func TestEvents_FirstSightingIsSilent(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	subscribeAll(&events, capture)

	sprite := &actor.Sprite{IsVisible: true}
	events.processVisibilityEvents([]*actor.Sprite{sprite})
	events.flush()

	if capture.count() != 0 {
		t.Errorf("expected no event on first sighting, got %d", capture.count())
	}
}

func TestEvents_ShowAndHide(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	subscribeAll(&events, capture)

	sprite := &actor.Sprite{IsVisible: false}
	sprites := []*actor.Sprite{sprite}
	events.processVisibilityEvents(sprites)
	events.flush()

	sprite.IsVisible = true
	events.processVisibilityEvents(sprites)
	events.flush()
	if capture.countType(ON_SHOW) != 1 || capture.count() != 1 {
		t.Fatalf("expected one ShowEvent, got %v", capture.events)
	}
	if show := capture.events[0].(ShowEvent); show.Sprite != sprite {
		t.Errorf("ShowEvent.Sprite = %p, want %p", show.Sprite, sprite)
	}

	// no change, no event
	capture.reset()
	events.processVisibilityEvents(sprites)
	events.flush()
	if capture.count() != 0 {
		t.Errorf("expected no event while visibility is unchanged, got %v", capture.events)
	}

	sprite.IsVisible = false
	events.processVisibilityEvents(sprites)
	events.flush()
	if capture.countType(ON_HIDE) != 1 || capture.count() != 1 {
		t.Errorf("expected one HideEvent, got %v", capture.events)
	}
}

func TestEvents_OnlySubscribedListeners(t *testing.T) {
	events := NewEvents()
	shows := &eventCapture{}
	events.Subscribe(ON_SHOW, shows.capture)

	sprite := &actor.Sprite{IsVisible: true}
	sprites := []*actor.Sprite{sprite}
	events.processVisibilityEvents(sprites)

	sprite.IsVisible = false
	events.processVisibilityEvents(sprites)
	events.flush()

	if shows.count() != 0 {
		t.Errorf("ON_SHOW listener received %v", shows.events)
	}
}

func TestEvents_MultipleListeners(t *testing.T) {
	events := NewEvents()
	first, second := &eventCapture{}, &eventCapture{}
	events.Subscribe(ON_HIDE, first.capture)
	events.Subscribe(ON_HIDE, second.capture)

	sprite := &actor.Sprite{IsVisible: true}
	sprites := []*actor.Sprite{sprite}
	events.processVisibilityEvents(sprites)
	sprite.IsVisible = false
	events.processVisibilityEvents(sprites)
	events.flush()

	if first.count() != 1 || second.count() != 1 {
		t.Errorf("expected both listeners to receive one event, got %d and %d", first.count(), second.count())
	}
}

func TestEvents_FlushClearsBuffer(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	subscribeAll(&events, capture)

	sprite := &actor.Sprite{}
	sprites := []*actor.Sprite{sprite}
	events.processVisibilityEvents(sprites)
	sprite.IsVisible = true
	events.processVisibilityEvents(sprites)
	events.flush()
	events.flush()

	if capture.count() != 1 {
		t.Errorf("expected a single delivery, got %d", capture.count())
	}
	if len(events.buffer) != 0 {
		t.Errorf("buffer should be empty after flush, has %d events", len(events.buffer))
	}
}

// =============================================================================
// Scene Integration Tests
// =============================================================================

func TestScene_VisibilityEvents(t *testing.T) {
	scene := newTestScene(config.Default())
	capture := &eventCapture{}
	subscribeAll(&scene.Events, capture)

	sprite := createSprite(mgl64.Vec3{400, 300, 1})
	scene.AddSprite(sprite)

	scene.Project()
	if capture.count() != 0 {
		t.Fatalf("first frame should not emit events, got %v", capture.events)
	}

	sprite.Transform.Position = mgl64.Vec3{-5000, 300, 1}
	scene.Project()
	if capture.countType(ON_HIDE) != 1 {
		t.Fatalf("moving offscreen should emit ON_HIDE, got %v", capture.events)
	}

	capture.reset()
	sprite.Transform.Position = mgl64.Vec3{400, 300, 1}
	scene.Project()
	if capture.countType(ON_SHOW) != 1 {
		t.Fatalf("moving back onscreen should emit ON_SHOW, got %v", capture.events)
	}

	capture.reset()
	sprite.Hidden = true
	scene.Project()
	if capture.countType(ON_HIDE) != 1 {
		t.Fatalf("hiding should emit ON_HIDE, got %v", capture.events)
	}
}

func TestScene_RemoveSpriteForgetsVisibility(t *testing.T) {
	scene := newTestScene(config.Default())
	capture := &eventCapture{}
	subscribeAll(&scene.Events, capture)

	sprite := createSprite(mgl64.Vec3{400, 300, 1})
	scene.AddSprite(sprite)
	scene.Project()

	scene.RemoveSprite(sprite)
	if _, ok := scene.Events.visibleStates[sprite]; ok {
		t.Error("removed sprite is still tracked")
	}

	// added back offscreen: first sighting again, no event
	sprite.Transform.Position = mgl64.Vec3{-5000, 0, 1}
	scene.AddSprite(sprite)
	scene.Project()
	if capture.count() != 0 {
		t.Errorf("re-added sprite should be treated as new, got %v", capture.events)
	}
}
