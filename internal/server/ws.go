package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NewHandler serves one spectator session per websocket connection.
func NewHandler(log logrus.FieldLogger) http.HandlerFunc {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.WithError(err).Warn("ws upgrade")
			return
		}
		defer conn.Close()

		NewSession(conn, log).HandleConnection()
	}
}
