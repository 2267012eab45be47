package main

import (
	"github.com/matryer/way"
)

const uriPlay = "/play"

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", uriPlay, s.GameServer.Handler())
}
