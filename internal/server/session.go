package server

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/samsja/belote-libre-v2/internal/engine"
	"github.com/samsja/belote-libre-v2/internal/engine/sim"
)

// Session streams bot-only deals to a single connection. It implements
// sim.Observer so every accepted card reaches the client as it is played.
type Session struct {
	mu        sync.Mutex
	id        string
	conn      *websocket.Conn
	log       logrus.FieldLogger
	requestID string
}

func NewSession(conn *websocket.Conn, log logrus.FieldLogger) *Session {
	id := uuid.NewString()
	return &Session{
		id:   id,
		conn: conn,
		log:  log.WithField("session", id),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) HandleConnection() {
	s.log.Info("session opened")
	defer s.log.Info("session closed")

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError("", "bad_request", "invalid json")
			continue
		}
		s.handleMessage(msg)
	}
}

func (s *Session) handleMessage(msg ClientMessage) {
	switch msg.Type {
	case "start_deal":
		s.startDeal(msg)
	case "check_play":
		s.checkPlay(msg)
	default:
		s.sendError(msg.RequestID, "unknown_type", "unknown message type")
	}
}

func (s *Session) startDeal(msg ClientMessage) {
	cfg, err := msg.chainConfig()
	if err != nil {
		s.sendError(msg.RequestID, "bad_request", err.Error())
		return
	}
	cfg.Log = s.log.WithField("request", msg.RequestID)
	cfg.Observer = s

	s.mu.Lock()
	s.requestID = msg.RequestID
	s.mu.Unlock()

	deals, err := sim.RunChain(cfg)
	if err != nil {
		s.log.WithError(err).Warn("deal failed")
		s.sendError(msg.RequestID, "deal_failed", err.Error())
		return
	}
	views := make([]DealView, 0, len(deals))
	for _, d := range deals {
		views = append(views, buildDealView(d))
	}
	s.send(ServerMessage{Type: "done", RequestID: msg.RequestID, Deals: views})
}

func (s *Session) checkPlay(msg ClientMessage) {
	v, err := msg.verdict()
	if err != nil {
		s.sendError(msg.RequestID, "bad_request", err.Error())
		return
	}
	s.send(ServerMessage{Type: "verdict", RequestID: msg.RequestID, Verdict: v})
}

func (s *Session) CardPlayed(dealID string, fold int, seat int, card engine.Card) {
	s.sendEvent(dealID, cardPlayedEvent(fold, seat, card))
}

func (s *Session) FoldCompleted(rec sim.FoldRecord) {
	s.sendEvent(rec.DealID, foldCompletedEvent(rec))
}

func (s *Session) DealCompleted(deal sim.Deal) {
	s.sendEvent(deal.ID, dealCompletedEvent(deal))
}

func (s *Session) sendEvent(dealID string, ev Event) {
	s.mu.Lock()
	requestID := s.requestID
	s.mu.Unlock()
	s.send(ServerMessage{Type: "events", RequestID: requestID, DealID: dealID, Events: []Event{ev}})
}

func (s *Session) sendError(requestID, code, message string) {
	s.send(ServerMessage{
		Type:      "error",
		RequestID: requestID,
		Error:     &ErrorView{Code: code, Message: message},
	})
}

func (s *Session) send(msg ServerMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return
	}
	if err := s.conn.WriteJSON(msg); err != nil {
		s.log.WithError(err).Debug("write failed")
	}
}
