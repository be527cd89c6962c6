package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ImplantacaoMW/datacheckai/database"
	"github.com/ImplantacaoMW/datacheckai/internal/config"
	"github.com/ImplantacaoMW/datacheckai/server"
)

func main() {
	log.Println("iniciando o validador de importação...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("erro na configuração: %v", err)
	}

	store, err := database.NewSampleStoreWithConfig(cfg.SampleDatabasePath, database.Config{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatalf("erro ao abrir o banco de amostras %q: %v", cfg.SampleDatabasePath, err)
	}
	defer store.Close()

	srv := server.New(cfg, store)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("erro no servidor: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("erro ao encerrar: %v", err)
	}
}
