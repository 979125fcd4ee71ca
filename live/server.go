// Package live streams game events to websocket spectators. The feed is
// read-only: nothing a spectator sends reaches the engine.
package live

import (
	"net/http"
	"sync/atomic"

	"github.com/awesome-cap/hashmap"
	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/uno-arena/simulator/event"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var logger = logrus.WithField("component", "live")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type client struct {
	id   int64
	conn *websocket.Conn
}

type Server struct {
	addr    string
	clients *hashmap.HashMap
	nextID  int64
}

func NewServer(addr string) *Server {
	return &Server{
		addr:    addr,
		clients: hashmap.New(),
	}
}

// Attach subscribes the server to the game events it rebroadcasts. Call
// once before the simulation starts.
func (s *Server) Attach() {
	event.FirstCardPlayed.AddListener(s)
	event.CardPlayed.AddListener(s)
	event.ColorPicked.AddListener(s)
	event.PlayerPassed.AddListener(s)
	event.UnoCalled.AddListener(s)
	event.UnoMissed.AddListener(s)
	event.RoundWon.AddListener(s)
}

// Serve blocks accepting spectator connections.
func (s *Server) Serve() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/feed", s.serveFeed)
	logger.Infof("spectator feed listening on %s", s.addr)
	return http.ListenAndServe(s.addr, mux)
}

func (s *Server) serveFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.WithError(err).Warn("spectator upgrade failed")
		return
	}
	spectator := &client{id: atomic.AddInt64(&s.nextID, 1), conn: conn}
	s.clients.Set(spectator.id, spectator)
	go s.discardReads(spectator)
}

// discardReads drains the connection so pings are answered and a closed
// peer is noticed.
func (s *Server) discardReads(spectator *client) {
	for {
		if _, _, err := spectator.conn.ReadMessage(); err != nil {
			s.clients.Del(spectator.id)
			_ = spectator.conn.Close()
			return
		}
	}
}

func (s *Server) broadcast(message feedMessage) {
	data, err := json.Marshal(message)
	if err != nil {
		logger.WithError(err).Warn("feed message marshal failed")
		return
	}
	s.clients.Foreach(func(e *hashmap.Entry) {
		spectator := e.Value().(*client)
		if err := spectator.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			s.clients.Del(spectator.id)
			_ = spectator.conn.Close()
		}
	})
}

func (s *Server) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	s.broadcast(feedMessage{Type: "first_card", Card: describeCard(payload.Card)})
}

func (s *Server) OnCardPlayed(payload event.CardPlayedPayload) {
	s.broadcast(feedMessage{
		Type:   "card_played",
		Player: payload.PlayerName,
		Card:   describeCard(payload.Card),
		Drawn:  payload.Drawn,
	})
}

func (s *Server) OnColorPicked(payload event.ColorPickedPayload) {
	s.broadcast(feedMessage{
		Type:   "color_picked",
		Player: payload.PlayerName,
		Color:  payload.Color.Name(),
	})
}

func (s *Server) OnPlayerPassed(payload event.PlayerPassedPayload) {
	s.broadcast(feedMessage{
		Type:       "player_passed",
		Player:     payload.PlayerName,
		CardsDrawn: payload.CardsDrawn,
	})
}

func (s *Server) OnUnoCalled(payload event.UnoCalledPayload) {
	s.broadcast(feedMessage{Type: "uno_called", Player: payload.PlayerName})
}

func (s *Server) OnUnoMissed(payload event.UnoMissedPayload) {
	s.broadcast(feedMessage{
		Type:    "uno_missed",
		Player:  payload.PlayerName,
		Penalty: payload.Penalty,
	})
}

func (s *Server) OnRoundWon(payload event.RoundWonPayload) {
	s.broadcast(feedMessage{
		Type:   "round_won",
		Player: payload.PlayerName,
		Turns:  payload.Turns,
	})
}
