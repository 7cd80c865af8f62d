// Command serve hosts a catalog directory over HTTP for gallery installs
// that use a self-hosted data source.
package main

import (
	"flag"
	"log"

	"github.com/morikazuSuma/symbol-grounding/internal/server"
)

func main() {
	port := flag.Int("port", server.DefaultPort, "listen port")
	dir := flag.String("dir", ".", "catalog directory (holds data.json and images/)")
	flag.Parse()

	srv := server.NewServer(*dir)
	if err := srv.ListenAndServe(*port); err != nil {
		log.Fatalf("Catalog server failed: %v", err)
	}
}
