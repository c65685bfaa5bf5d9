package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-shading-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	static := flag.String("static", "static/", "Directory of static files")
	flag.Parse()

	webServer := server.NewServer(*port, *static)

	log.Printf("Shading Raytracer Web Server")
	log.Printf("Try http://localhost:%d/api/render?scene=default", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
