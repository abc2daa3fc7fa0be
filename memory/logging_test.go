package memory

import "testing"

func TestLoggingRecordsReadsAndWrites(t *testing.T) {
	inner := NewRAM(4)
	l := NewLogging(inner)

	l.WriteU8(0, 0xAA)
	if got := l.ReadU8(0); got != 0xAA {
		t.Fatalf("ReadU8(0) = %02X, want AA", got)
	}

	log := l.Log()
	if len(log) != 2 {
		t.Fatalf("len(log) = %d, want 2", len(log))
	}
	if log[0].Type != Write || log[0].Address != 0 || log[0].Value != 0xAA {
		t.Errorf("log[0] = %+v, want a Write of AA at 0", log[0])
	}
	if log[1].Type != Read || log[1].Address != 0 || log[1].Value != 0xAA {
		t.Errorf("log[1] = %+v, want a Read of AA at 0", log[1])
	}

	l.ResetLog()
	if len(l.Log()) != 0 {
		t.Error("ResetLog should clear the access log")
	}
}

func TestLoggingDelegatesTick(t *testing.T) {
	inner := NewRAM(1)
	l := NewLogging(inner)
	sig := l.Tick(5)
	if sig.Any() {
		t.Error("plain RAM should never raise an interrupt through Logging")
	}
}
