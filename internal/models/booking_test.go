package models

import "testing"

func TestBookingStatusTransitions(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{BookingPending, BookingConfirmed, true},
		{BookingPending, BookingCancelled, true},
		{BookingPending, BookingCompleted, false},
		{BookingConfirmed, BookingCompleted, true},
		{BookingConfirmed, BookingCancelled, true},
		{BookingConfirmed, BookingPending, false},
		{BookingCompleted, BookingCancelled, false},
		{BookingCompleted, BookingConfirmed, false},
		{BookingCancelled, BookingPending, false},
		{BookingCancelled, BookingConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo(%s→%s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestBookingStatusIsTerminal(t *testing.T) {
	if BookingPending.IsTerminal() || BookingConfirmed.IsTerminal() {
		t.Error("Expected pending and confirmed to be non-terminal")
	}
	if !BookingCompleted.IsTerminal() || !BookingCancelled.IsTerminal() {
		t.Error("Expected completed and cancelled to be terminal")
	}
}

func TestValidBookingStatus(t *testing.T) {
	for _, s := range []BookingStatus{BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled} {
		if !ValidBookingStatus(s) {
			t.Errorf("Expected %s to be valid", s)
		}
	}
	if ValidBookingStatus("deleted") {
		t.Error("Expected unknown status to be invalid")
	}
}

func TestBookingHelpers(t *testing.T) {
	b := &Booking{Status: BookingPending}
	if !b.IsPending() || b.IsConfirmed() || !b.CanCancel() {
		t.Error("Unexpected helpers for pending booking")
	}

	b.Status = BookingConfirmed
	if b.IsPending() || !b.IsConfirmed() || !b.CanCancel() {
		t.Error("Unexpected helpers for confirmed booking")
	}

	b.Status = BookingCompleted
	if b.CanCancel() {
		t.Error("Expected completed booking to not be cancellable")
	}

	b.Status = BookingCancelled
	if b.CanCancel() {
		t.Error("Expected cancelled booking to not be cancellable")
	}
}

func TestBookingStatusLabel(t *testing.T) {
	if BookingPending.Label() != "Очікує підтвердження" {
		t.Errorf("Unexpected label %q", BookingPending.Label())
	}
	if BookingStatus("weird").Label() != "weird" {
		t.Error("Expected unknown status to fall back to its raw value")
	}
}
