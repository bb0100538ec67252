package main

import (
	"log"
	"net/http"
	"time"
)

func main() {
	mustLoadEnv()
	cfg := loadConfig()

	db, err := openDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[DB] connect failed: %v", err)
	}
	log.Println("[DB] connected")

	app := newApp(cfg, newGormStore(db))

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Println("[api] listening on", addr)
	log.Fatal(srv.ListenAndServe())
}
