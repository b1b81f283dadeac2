package server

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/san-kum/motorsim/internal/config"
	"github.com/san-kum/motorsim/internal/motor"
)

func quietLogger() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

func dial(t *testing.T, s *Server) *websocket.Conn {
	t.Helper()
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) ServerMessage {
	t.Helper()
	if err := conn.SetReadDeadline(time.Now().Add(30 * time.Second)); err != nil {
		t.Fatal(err)
	}
	var msg ServerMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	return msg
}

// readResult collects progress messages until the result arrives.
func readResult(t *testing.T, conn *websocket.Conn) ([]float64, ServerMessage) {
	t.Helper()
	var progress []float64
	for {
		msg := read(t, conn)
		switch msg.Type {
		case MsgProgress:
			progress = append(progress, msg.Progress)
		case MsgResult:
			return progress, msg
		default:
			t.Fatalf("unexpected message %+v", msg)
		}
	}
}

func TestSimulatePreset(t *testing.T) {
	conn := dial(t, New("", quietLogger()))

	def := config.GetPreset("bates-knsu")
	if err := conn.WriteJSON(ClientMessage{Type: MsgSimulate, Motor: def}); err != nil {
		t.Fatal(err)
	}

	progress, res := readResult(t, conn)
	if !res.Success {
		t.Fatalf("expected success, alerts: %v", res.Alerts)
	}
	if res.Stats == nil || res.Stats.Impulse <= 0 || res.Stats.BurnTime <= 0 {
		t.Fatalf("bad stats %+v", res.Stats)
	}
	if len(progress) == 0 {
		t.Fatal("no progress messages")
	}
	for i, p := range progress {
		if p < 0 || p > 1 {
			t.Errorf("progress %d out of range: %v", i, p)
		}
		if i > 0 && p < 1 && p-progress[i-1] < progressStep {
			t.Errorf("progress %d not throttled: %v after %v", i, p, progress[i-1])
		}
	}
}

func TestSecondRunOnSameConnection(t *testing.T) {
	conn := dial(t, New("", quietLogger()))
	def := config.GetPreset("bates-knsu")

	for i := 0; i < 2; i++ {
		if err := conn.WriteJSON(ClientMessage{Type: MsgSimulate, Motor: def}); err != nil {
			t.Fatal(err)
		}
		if _, res := readResult(t, conn); !res.Success {
			t.Fatalf("run %d failed", i)
		}
	}
}

func TestCancel(t *testing.T) {
	s := New("", quietLogger())
	gate := make(chan struct{})
	s.simulate = func(m *motor.Motor, fn motor.ProgressFunc) *motor.Result {
		return m.Simulate(func(p float64) bool {
			<-gate
			return fn(p)
		})
	}
	conn := dial(t, s)
	def := config.GetPreset("bates-knsu")

	for _, msg := range []ClientMessage{
		{Type: MsgSimulate, Motor: def},
		{Type: MsgCancel},
		{Type: MsgSimulate, Motor: def},
	} {
		if err := conn.WriteJSON(msg); err != nil {
			t.Fatal(err)
		}
	}

	// Messages are handled in order, so the cancel is stored by now.
	busy := read(t, conn)
	if busy.Type != MsgError || !strings.Contains(busy.Error, "already running") {
		t.Fatalf("expected busy error, got %+v", busy)
	}
	close(gate)

	_, res := readResult(t, conn)
	if res.Success {
		t.Fatal("cancelled run reported success")
	}
}

func TestErrors(t *testing.T) {
	conn := dial(t, New("", quietLogger()))

	badGrain := config.GetPreset("bates-knsu")
	badGrain.Grains[0].Type = "Hexagon"
	badBounds := config.GetPreset("bates-knsu")
	badBounds.Config.Timestep = 0.5

	tests := []struct {
		name string
		msg  ClientMessage
		want string
	}{
		{"unknown type", ClientMessage{Type: "launch"}, "unknown message type"},
		{"no motor", ClientMessage{Type: MsgSimulate}, "no motor"},
		{"unknown grain", ClientMessage{Type: MsgSimulate, Motor: badGrain}, "Hexagon"},
		{"out of bounds", ClientMessage{Type: MsgSimulate, Motor: badBounds}, "out of bounds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := conn.WriteJSON(tt.msg); err != nil {
				t.Fatal(err)
			}
			msg := read(t, conn)
			if msg.Type != MsgError || !strings.Contains(msg.Error, tt.want) {
				t.Errorf("got %+v, want error containing %q", msg, tt.want)
			}
		})
	}
}

func TestValidationAlertsInResult(t *testing.T) {
	conn := dial(t, New("", quietLogger()))

	def := config.GetPreset("bates-knsu")
	def.Nozzle.Exit = def.Nozzle.Throat / 2
	if err := conn.WriteJSON(ClientMessage{Type: MsgSimulate, Motor: def}); err != nil {
		t.Fatal(err)
	}
	_, res := readResult(t, conn)
	if res.Success {
		t.Fatal("invalid nozzle should be rejected")
	}
	if len(res.Alerts) == 0 {
		t.Fatal("expected alerts")
	}
}

func TestResultAlwaysCarriesSuccess(t *testing.T) {
	b, err := json.Marshal(ServerMessage{Type: MsgResult})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"success":false`) {
		t.Errorf("result without explicit success: %s", b)
	}

	conn := dial(t, New("", quietLogger()))
	def := config.GetPreset("bates-knsu")
	def.Nozzle.Exit = def.Nozzle.Throat / 2
	if err := conn.WriteJSON(ClientMessage{Type: MsgSimulate, Motor: def}); err != nil {
		t.Fatal(err)
	}
	if err := conn.SetReadDeadline(time.Now().Add(30 * time.Second)); err != nil {
		t.Fatal(err)
	}
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatal(err)
	}
	if fields["type"] != MsgResult || fields["success"] != false {
		t.Errorf("rejected run message: %s", raw)
	}
}
