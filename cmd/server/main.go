package main

import (
	"flag"
	"log"

	"courseplan/internal/server"

	"github.com/labstack/echo/v4"
)

func main() {
	portPtr := flag.String("port", "8080", "Port to listen on")
	flag.Parse()

	e := echo.New()
	server.RegisterRoutes(e)

	addr := ":" + *portPtr
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
