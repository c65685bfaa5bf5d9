package server

import (
	"testing"
	"time"
)

func TestWebLogger_Levels(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		args     []interface{}
		expected string
		level    string
	}{
		{"plain", "Rendering %dx%d\n", []interface{}{4, 2}, "Rendering 4x2\n", "info"},
		{"warning prefix", "warning: %s\n", []interface{}{"volume not closed"}, "warning: volume not closed\n", "warning"},
		{"warning elsewhere", "no warning: here\n", nil, "no warning: here\n", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messageChan := make(chan ConsoleMessage, 1)
			logger := NewWebLogger("test-render", messageChan)
			logger.Printf(tt.format, tt.args...)

			select {
			case msg := <-messageChan:
				if msg.Message != tt.expected {
					t.Errorf("Expected message %q, got %q", tt.expected, msg.Message)
				}
				if msg.Level != tt.level {
					t.Errorf("Expected level %q, got %q", tt.level, msg.Level)
				}
				if time.Since(msg.Timestamp) > time.Second {
					t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
				}
			default:
				t.Fatal("Expected a console message")
			}
		})
	}
}

func TestWebLogger_ChannelFullDoesNotBlock(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 1)
	logger := NewWebLogger("test-render-full", messageChan)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			logger.Printf("Message %d\n", i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Logger blocked on a full channel")
	}

	messages := drainConsole(messageChan)
	if len(messages) != 1 || messages[0].Message != "Message 0\n" {
		t.Errorf("Expected only the first message to be kept, got %v", messages)
	}
}

func TestWebLogger_NilChannel(t *testing.T) {
	// Should not panic
	logger := NewWebLogger("test-render-nil", nil)
	logger.Printf("Test message with nil channel\n")
}

func TestDrainConsole_Empty(t *testing.T) {
	if messages := drainConsole(make(chan ConsoleMessage, 4)); len(messages) != 0 {
		t.Errorf("Expected no messages, got %v", messages)
	}
}
