package status

import (
	"testing"
	"time"
)

func TestSignalZeroValueIsFalse(t *testing.T) {
	s := NewSignal()
	if s.Value() {
		t.Error("new signal should read false")
	}
}

func TestSignalSetAndValue(t *testing.T) {
	s := NewSignal()

	s.Set(true)
	if !s.Value() {
		t.Error("signal should read true after Set(true)")
	}

	// Reverse transition is supported: the signal is a live value, not a
	// one-time latch.
	s.Set(false)
	if s.Value() {
		t.Error("signal should read false after Set(false)")
	}
}

func TestSignalSubscribeNotifiesOnChange(t *testing.T) {
	s := NewSignal()
	ch, cancel := s.Subscribe()
	defer cancel()

	s.Set(true)

	select {
	case v := <-ch:
		if !v {
			t.Errorf("got %v, want true", v)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for notification")
	}
}

func TestSignalNoNotificationWithoutChange(t *testing.T) {
	s := NewSignal()
	ch, cancel := s.Subscribe()
	defer cancel()

	s.Set(false) // already false

	select {
	case v := <-ch:
		t.Errorf("unexpected notification %v for unchanged value", v)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSignalLatestWinsDelivery(t *testing.T) {
	s := NewSignal()
	ch, cancel := s.Subscribe()
	defer cancel()

	// Subscriber not draining: flips coalesce to the most recent value.
	s.Set(true)
	s.Set(false)
	s.Set(true)

	select {
	case v := <-ch:
		if !v {
			t.Errorf("got %v, want latest value true", v)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for notification")
	}
}

func TestSignalCancelReleasesSubscription(t *testing.T) {
	s := NewSignal()
	ch, cancel := s.Subscribe()
	cancel()

	s.Set(true)

	select {
	case v := <-ch:
		t.Errorf("cancelled subscriber received %v", v)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSignalMultipleSubscribers(t *testing.T) {
	s := NewSignal()
	ch1, cancel1 := s.Subscribe()
	defer cancel1()
	ch2, cancel2 := s.Subscribe()
	defer cancel2()

	s.Set(true)

	for i, ch := range []<-chan bool{ch1, ch2} {
		select {
		case v := <-ch:
			if !v {
				t.Errorf("subscriber %d got %v, want true", i, v)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d timed out", i)
		}
	}
}
