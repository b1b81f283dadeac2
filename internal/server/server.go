// Package server streams simulation progress over a websocket.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/san-kum/motorsim/internal/alert"
	"github.com/san-kum/motorsim/internal/config"
	"github.com/san-kum/motorsim/internal/motor"
)

const (
	MsgSimulate = "simulate"
	MsgCancel   = "cancel"
	MsgProgress = "progress"
	MsgResult   = "result"
	MsgError    = "error"
)

// progressStep is the smallest progress change worth sending.
const progressStep = 0.01

type ClientMessage struct {
	Type  string            `json:"type"`
	Motor *motor.Definition `json:"motor,omitempty"`
}

type ServerMessage struct {
	Type     string        `json:"type"`
	Progress float64       `json:"progress,omitempty"`
	Success  bool          `json:"success"`
	Stats    *motor.Stats  `json:"stats,omitempty"`
	Alerts   []alert.Alert `json:"alerts,omitempty"`
	Error    string        `json:"error,omitempty"`
}

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	log      log.FieldLogger
	simulate func(*motor.Motor, motor.ProgressFunc) *motor.Result
}

func New(addr string, logger log.FieldLogger) *Server {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		log: logger,
		simulate: func(m *motor.Motor, fn motor.ProgressFunc) *motor.Result {
			return m.Simulate(fn)
		},
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

// Serve listens until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()

	s.log.WithField("addr", s.addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// event is either a progress update or the final result of a run.
type event struct {
	progress float64
	result   *motor.Result
}

type run struct {
	cancel atomic.Bool
	events chan event
}

func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	logger := s.log.WithField("remote", conn.RemoteAddr().String())
	logger.Debug("client connected")

	quit := make(chan struct{})
	defer close(quit)
	in := make(chan ClientMessage)
	go s.readLoop(conn, in, quit, logger)

	var (
		current *run
		events  <-chan event
	)
	defer func() {
		if current != nil {
			current.cancel.Store(true)
		}
	}()

	for {
		select {
		case msg, ok := <-in:
			if !ok {
				logger.Debug("client disconnected")
				return
			}
			switch msg.Type {
			case MsgSimulate:
				if current != nil {
					s.write(conn, logger, errorMessage("simulation already running"))
					continue
				}
				m, err := buildMotor(msg.Motor)
				if err != nil {
					s.write(conn, logger, errorMessage(err.Error()))
					continue
				}
				current = s.start(m, quit)
				events = current.events
				logger.WithField("grains", len(m.Grains)).Info("simulation started")
			case MsgCancel:
				if current != nil {
					current.cancel.Store(true)
				}
			default:
				s.write(conn, logger, errorMessage("unknown message type "+msg.Type))
			}
		case ev := <-events:
			if ev.result == nil {
				if !s.write(conn, logger, ServerMessage{Type: MsgProgress, Progress: ev.progress}) {
					return
				}
				continue
			}
			stats := ev.result.Stats()
			logger.WithFields(log.Fields{
				"success":     ev.result.Success,
				"designation": stats.Designation,
			}).Info("simulation finished")
			reply := ServerMessage{
				Type:    MsgResult,
				Success: ev.result.Success,
				Stats:   &stats,
				Alerts:  ev.result.Alerts,
			}
			current, events = nil, nil
			if !s.write(conn, logger, reply) {
				return
			}
		}
	}
}

// readLoop decodes client messages until the connection fails or the
// handler exits. in is closed when reading stops.
func (s *Server) readLoop(conn *websocket.Conn, in chan<- ClientMessage, quit <-chan struct{}, logger log.FieldLogger) {
	defer close(in)
	for {
		msg := ClientMessage{Motor: &motor.Definition{Config: motor.DefaultConfig()}}
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.WithError(err).Debug("read failed")
			}
			return
		}
		if msg.Type != MsgSimulate {
			msg.Motor = nil
		}
		select {
		case in <- msg:
		case <-quit:
			return
		}
	}
}

func (s *Server) start(m *motor.Motor, quit <-chan struct{}) *run {
	rn := &run{events: make(chan event, 16)}
	go func() {
		last := -1.0
		res := s.simulate(m, func(p float64) bool {
			if p-last >= progressStep || (p >= 1 && last < 1) {
				select {
				case rn.events <- event{progress: p}:
					last = p
				default:
				}
			}
			return rn.cancel.Load()
		})
		select {
		case rn.events <- event{result: res}:
		case <-quit:
		}
	}()
	return rn
}

func (s *Server) write(conn *websocket.Conn, logger log.FieldLogger, msg ServerMessage) bool {
	if err := conn.WriteJSON(&msg); err != nil {
		logger.WithError(err).Warn("write failed")
		return false
	}
	return true
}

func buildMotor(def *motor.Definition) (*motor.Motor, error) {
	if def == nil || len(def.Grains) == 0 && def.Propellant == nil {
		return nil, errors.New("simulate message has no motor")
	}
	if err := config.ValidateBounds(def.Config); err != nil {
		return nil, err
	}
	return motor.FromDefinition(*def)
}

func errorMessage(text string) ServerMessage {
	return ServerMessage{Type: MsgError, Error: text}
}
