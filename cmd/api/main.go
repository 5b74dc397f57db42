package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/licitafacil/licitafacil/internal/admin"
	"github.com/licitafacil/licitafacil/internal/broker"
	"github.com/licitafacil/licitafacil/internal/config"
	"github.com/licitafacil/licitafacil/internal/db"
	"github.com/licitafacil/licitafacil/internal/handlers"
	"github.com/licitafacil/licitafacil/internal/repository"
	"github.com/licitafacil/licitafacil/internal/storage"
)

// cmd/api/main.go
func main() {
	cfg := config.LoadAPIConfig() // .env

	// Logger JSON "global" - permite usar slog.Info/slog.Error/Warn em qualquer lugar
	_ = config.InitLogger(cfg.LogLevel)
	slog.Info("starting", "port", cfg.Port, "mongo_db", cfg.MongoDB)

	// HOOK: admin job (one-off)
	task := flag.String("task", "", "admin task: seed")
	flag.Parse()
	if *task != "" {
		switch *task {
		case "seed":
			// conecta somente o necessário para o seed
			client, err := db.NewMongoClient(cfg.MongoURI)
			if err != nil {
				slog.Error("mongo_connect_error", "err", err)
				os.Exit(1)
			}
			defer func() { _ = client.Disconnect(context.Background()) }()

			database := client.Database(cfg.MongoDB)
			empresas := repository.NewEmpresaRepository(database)
			lics := repository.NewLicitacaoRepository(database)
			if err := admin.SeedDemo(context.Background(), empresas, lics, slog.Default()); err != nil {
				slog.Error("seed_failed", "err", err)
				os.Exit(1)
			}
			slog.Info("seed_done")
			return // encerra o processo sem subir HTTP
		default:
			slog.Error("unknown_admin_task", "task", *task)
			os.Exit(2)
		}
	}

	// conecta Mongo
	client, err := db.NewMongoClient(cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo connect error: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	database := client.Database(cfg.MongoDB)
	empresas := repository.NewEmpresaRepository(database)
	documentos := repository.NewDocumentoRepository(database)
	licitacoes := repository.NewLicitacaoRepository(database)

	idxCtx, cancelIdx := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelIdx()
	if err := empresas.EnsureIndexes(idxCtx); err != nil {
		log.Fatalf("mongo index error: %v", err)
	}
	if err := documentos.EnsureIndexes(idxCtx); err != nil {
		log.Fatalf("mongo index error: %v", err)
	}
	if err := licitacoes.EnsureIndexes(idxCtx); err != nil {
		log.Fatalf("mongo index error: %v", err)
	}

	// storage de arquivos (MinIO)
	store, err := storage.NewMinio(storage.MinioOptions{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		Bucket:    cfg.MinioBucket,
		UseSSL:    cfg.MinioUseSSL,
	})
	if err != nil {
		log.Fatalf("minio connect error: %v", err)
	}

	// publisher (Rabbit)
	pub, err := broker.NewPublisher(cfg.RabbitURI, cfg.RabbitQueue)
	if err != nil {
		log.Fatalf("rabbitmq connect error: %v", err)
	}
	defer pub.Close()

	hEmpresa := &handlers.EmpresaHandler{Repo: empresas, Docs: documentos, Lics: licitacoes, Pub: pub}
	hDoc := &handlers.DocumentoHandler{Repo: documentos, Empresas: empresas, Store: store, Pub: pub, MaxUploadBytes: cfg.MaxUploadBytes}
	hLic := &handlers.LicitacaoHandler{Repo: licitacoes, Empresas: empresas, Pub: pub}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", hEmpresa.Health)
	mux.HandleFunc("/api/empresa", hEmpresa.Empresa)
	mux.HandleFunc("/api/empresa/", hEmpresa.EmpresaByID)
	mux.HandleFunc("/api/documentos", hDoc.Documentos)
	mux.HandleFunc("/api/documentos/", hDoc.DocumentoByID)
	mux.HandleFunc("/api/licitacoes", hLic.Licitacoes)
	mux.HandleFunc("/api/licitacoes/", hLic.LicitacaoByID)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           logMiddleware(mux),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	// start server
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown error", "err", err)
	}
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		dur := time.Since(start)
		slog.Info("request", "method", r.Method, "path", r.URL.Path, "dur", fmtDuration(dur))
	})
}

func fmtDuration(d time.Duration) string {
	return fmt.Sprintf("%dms", d.Milliseconds())
}
