package main

import (
	"net/http"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/samsja/belote-libre-v2/internal/server"
)

func main() {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			log.WithError(err).Fatal("bad LOG_LEVEL")
		}
		log.SetLevel(level)
	}

	addr := ":8080"
	if v := os.Getenv("ADDR"); v != "" {
		addr = v
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", server.NewHandler(log))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	log.WithField("addr", addr).Info("listening")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
