package sse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarlsen/BloxClicker_Go/internal/testing/leaktest"
)

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d clients, got %d", want, hub.ClientCount())
}

func TestHub_BroadcastReachesClient(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	hub.Broadcast(EventTypeChatMessage, ChatMessagePayload{Username: "Player", Text: "hi"})

	select {
	case event := <-client.EventChannel:
		assert.Equal(t, EventTypeChatMessage, event.Type)
		assert.NotEmpty(t, event.ID)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
	}
}

func TestHub_EventFilter(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	client := hub.Register([]string{EventTypeGameEvent})
	waitForClients(t, hub, 1)

	hub.Broadcast(EventTypeChatMessage, ChatMessagePayload{Text: "filtered out"})
	hub.Broadcast(EventTypeGameEvent, GameEventPayload{Name: "Double Studs", Active: true})

	select {
	case event := <-client.EventChannel:
		assert.Equal(t, EventTypeGameEvent, event.Type)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
	}

	select {
	case event := <-client.EventChannel:
		t.Fatalf("unexpected extra event: %s", event.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_Unregister(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	hub.Unregister(client.ID)
	waitForClients(t, hub, 0)
}

func TestHub_StopLeavesNoGoroutines(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	hub := NewHub()
	hub.Start()

	for i := 0; i < 5; i++ {
		hub.Register(nil)
	}
	waitForClients(t, hub, 5)

	hub.Stop()
	assert.Zero(t, hub.ClientCount())

	checker.Check(0)
}

func TestFormatSSEMessage(t *testing.T) {
	event := Event{ID: "abc", Type: EventTypeKeepalive, Timestamp: 42}

	msg, err := FormatSSEMessage(event)
	require.NoError(t, err)

	assert.Contains(t, string(msg), "id: abc\n")
	assert.Contains(t, string(msg), "event: "+EventTypeKeepalive+"\n")
	assert.Contains(t, string(msg), "data: {")
}
