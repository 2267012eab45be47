package main

import (
	"net/http"
	"os"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/plus3/blockfall/server"
)

type Server struct {
	router     *way.Router
	GameServer *server.GameServer
}

func main() {
	srv := Server{
		GameServer: server.NewGameServer(),
	}
	srv.routes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Printf("Defaulting to port %s", port)
	}
	log.WithField("port", port).Info("serving")
	log.Fatalln(http.ListenAndServe(":"+port, srv.router))
}
