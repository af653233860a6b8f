// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

// mockBridge is a test double for BridgeRunner.
type mockBridge struct {
	startErr   error
	startCount atomic.Int32
	stopCount  atomic.Int32

	mu   sync.Mutex
	done chan struct{}
	err  error
}

func newMockBridge() *mockBridge {
	return &mockBridge{done: make(chan struct{})}
}

func (m *mockBridge) Start(context.Context) error {
	m.startCount.Add(1)
	return m.startErr
}

func (m *mockBridge) Done() <-chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.done
}

func (m *mockBridge) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

func (m *mockBridge) Stop(time.Duration) {
	m.stopCount.Add(1)
}

func (m *mockBridge) fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	close(m.done)
}

func TestMQTTBridgeService_Interface(t *testing.T) {
	var _ suture.Service = (*MQTTBridgeService)(nil)
}

func TestNewMQTTBridgeService_DefaultQuiesce(t *testing.T) {
	svc := NewMQTTBridgeService(newMockBridge(), 0)
	if svc.quiesce != 250*time.Millisecond {
		t.Errorf("quiesce = %v, want 250ms", svc.quiesce)
	}
	if svc.String() != "mqtt-bridge" {
		t.Errorf("String() = %q, want mqtt-bridge", svc.String())
	}
}

func TestMQTTBridgeService_Serve(t *testing.T) {
	t.Run("stops bridge on context cancellation", func(t *testing.T) {
		bridge := newMockBridge()
		svc := NewMQTTBridgeService(bridge, time.Millisecond)

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() {
			errCh <- svc.Serve(ctx)
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case err := <-errCh:
			if !errors.Is(err, context.Canceled) {
				t.Errorf("expected context.Canceled, got %v", err)
			}
		case <-time.After(time.Second):
			t.Fatal("Serve did not return")
		}
		if bridge.startCount.Load() != 1 || bridge.stopCount.Load() != 1 {
			t.Errorf("start/stop = %d/%d, want 1/1", bridge.startCount.Load(), bridge.stopCount.Load())
		}
	})

	t.Run("returns start error without stopping", func(t *testing.T) {
		startErr := errors.New("connection refused")
		bridge := newMockBridge()
		bridge.startErr = startErr
		svc := NewMQTTBridgeService(bridge, time.Millisecond)

		err := svc.Serve(context.Background())
		if !errors.Is(err, startErr) {
			t.Errorf("expected %v, got %v", startErr, err)
		}
		if bridge.stopCount.Load() != 0 {
			t.Errorf("Stop called %d times after failed start", bridge.stopCount.Load())
		}
	})

	t.Run("returns bridge failure", func(t *testing.T) {
		lost := errors.New("connection lost")
		bridge := newMockBridge()
		svc := NewMQTTBridgeService(bridge, time.Millisecond)

		errCh := make(chan error, 1)
		go func() {
			errCh <- svc.Serve(context.Background())
		}()

		time.Sleep(20 * time.Millisecond)
		bridge.fail(lost)

		select {
		case err := <-errCh:
			if !errors.Is(err, lost) {
				t.Errorf("expected %v, got %v", lost, err)
			}
		case <-time.After(time.Second):
			t.Fatal("Serve did not return after bridge failure")
		}
		if bridge.stopCount.Load() != 1 {
			t.Errorf("Stop called %d times, want 1", bridge.stopCount.Load())
		}
	})

	t.Run("bridge closed without error", func(t *testing.T) {
		bridge := newMockBridge()
		svc := NewMQTTBridgeService(bridge, time.Millisecond)
		bridge.fail(nil)

		if err := svc.Serve(context.Background()); !errors.Is(err, errBridgeStopped) {
			t.Errorf("expected errBridgeStopped, got %v", err)
		}
	})
}

func TestMQTTBridgeService_RestartedBySupervisor(t *testing.T) {
	bridge := newMockBridge()
	bridge.startErr = errors.New("broker down")
	svc := NewMQTTBridgeService(bridge, time.Millisecond)

	sup := suture.New("test-sup", suture.Spec{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          100 * time.Millisecond,
	})
	sup.Add(svc)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	errCh := sup.ServeBackground(ctx)

	time.Sleep(100 * time.Millisecond)
	if bridge.startCount.Load() < 2 {
		t.Errorf("expected restarts, got %d starts", bridge.startCount.Load())
	}

	cancel()
	<-errCh
}
