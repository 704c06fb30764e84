package main

import (
	"log"
	"net/http"
	"time"

	"github.com/doucearrivee/contact-api/contact"
)

func main() {
	in := mustParseServerInput()

	s := contact.New(in.cfg, in.limiter, in.notifier)

	srv := &http.Server{
		Addr:              in.listenAddr,
		Handler:           s.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("contact-api listening on %v", in.listenAddr)
	log.Fatal(srv.ListenAndServe())
}
