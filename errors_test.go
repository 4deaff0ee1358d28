package hipmatmul

import (
	"errors"
	"testing"
)

func TestStructuredErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType ErrorType
		wantOp   string
		wantMsg  string
		checkFn  func(error) bool
	}{
		{
			name:     "Invalid Size Error",
			err:      ErrInvalidSize,
			wantType: ErrTypeInvalidArg,
			wantOp:   "Malloc",
			wantMsg:  "size must be positive",
			checkFn:  IsInvalidArgError,
		},
		{
			name:     "Double Free Error",
			err:      ErrDoubleFree,
			wantType: ErrTypeMemory,
			wantOp:   "Free",
			wantMsg:  "double free detected",
			checkFn:  IsMemoryError,
		},
		{
			name:     "Invalid Device Error",
			err:      ErrInvalidDevice,
			wantType: ErrTypeInvalidArg,
			wantOp:   "SetDevice",
			wantMsg:  "invalid device ID",
			checkFn:  IsInvalidArgError,
		},
		{
			name:     "Nil Kernel Error",
			err:      ErrNilKernel,
			wantType: ErrTypeLaunch,
			wantOp:   "Launch",
			wantMsg:  "nil kernel",
			checkFn:  IsLaunchError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e *EmuError
			if !errors.As(tt.err, &e) {
				t.Fatalf("error is not an *EmuError: %v", tt.err)
			}
			if e.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", e.Type, tt.wantType)
			}
			if e.Op != tt.wantOp {
				t.Errorf("Op = %q, want %q", e.Op, tt.wantOp)
			}
			if e.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", e.Message, tt.wantMsg)
			}
			if !tt.checkFn(tt.err) {
				t.Error("predicate rejected its own error")
			}
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("backing store exhausted")
	err := NewMemoryError("Malloc", "allocation failed", cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if msg := err.Error(); msg == "" {
		t.Error("empty error message")
	}
}

func TestErrorTypeString(t *testing.T) {
	cases := map[ErrorType]string{
		ErrTypeMemory:     "Memory",
		ErrTypeInvalidArg: "InvalidArgument",
		ErrTypeLaunch:     "Launch",
		ErrTypeDevice:     "Device",
		ErrorType(99):     "Unknown",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("ErrorType(%d).String() = %q, want %q", typ, got, want)
		}
	}
}
