package input

import (
	"testing"
	"time"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"arrow_up", ActionMoveNorth},
		{"l", ActionMoveEast},
		{"w", ActionWait},
		{"a", ActionGiveUp},
		{"?", ActionHint},
		{"ctrl_c", ActionQuit},
		{"f9", ActionDevMap},
		{"tick", ActionAutoMove},
		{"z", ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got := Resolve(RawInput{Device: DeviceTerminal, Code: tt.code, Timestamp: time.Now()})
			if got.Action != tt.want {
				t.Errorf("Resolve(%q) = %s, want %s", tt.code, ActionName(got.Action), ActionName(tt.want))
			}
		})
	}
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	codes := GetBindingsByAction()[ActionQuit]
	for i := 1; i < len(codes); i++ {
		if codes[i-1] > codes[i] {
			t.Fatalf("codes not sorted: %v", codes)
		}
	}
	if len(codes) < 2 {
		t.Errorf("quit has %d bindings, want several", len(codes))
	}
}

func TestIntent_IsMove(t *testing.T) {
	tests := []struct {
		action Action
		want   bool
	}{
		{ActionMoveNorth, true},
		{ActionMoveWest, true},
		{ActionWait, false},
		{ActionAutoMove, false},
		{ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(ActionName(tt.action), func(t *testing.T) {
			if got := (Intent{Action: tt.action}).IsMove(); got != tt.want {
				t.Errorf("IsMove = %v, want %v", got, tt.want)
			}
		})
	}
}
