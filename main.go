package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"mapca-proposal/api/handler"
	"mapca-proposal/api/router"
	"mapca-proposal/job"
	"mapca-proposal/logic/analysis"
	"mapca-proposal/logic/chat"
	"mapca-proposal/logic/extract"
	"mapca-proposal/logic/ingestion/parser"
	"mapca-proposal/logic/invoke"
	"mapca-proposal/logic/view"
	"mapca-proposal/logs"
	"mapca-proposal/service"
	"mapca-proposal/storage/memory"
	"mapca-proposal/storage/postgres"
	"mapca-proposal/vars"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newInvoker(ctx context.Context) (*invoke.Invoker, error) {
	chatModel, err := chat.NewChatModel(ctx, chat.ConfigFromEnv())
	if err != nil {
		return nil, err
	}
	return invoke.New(chatModel, vars.LLM_TIMEOUT), nil
}

func newHandOffStore() (service.HandOffStore, error) {
	switch vars.HANDOFF_STORE {
	case vars.MEMORY:
		return memory.NewHandOffStore(vars.SESSION_CACHE_SIZE, vars.HANDOFF_TTL), nil
	case vars.POSTGRES:
		db, err := postgres.InitDB(postgres.DSN())
		if err != nil {
			return nil, err
		}
		return postgres.NewHandOffRepo(db), nil
	}
	return nil, fmt.Errorf("unknown HANDOFF_STORE %q", vars.HANDOFF_STORE)
}

func serve(ctx context.Context, addr string) error {
	// 1. hand-off store
	store, err := newHandOffStore()
	if err != nil {
		return err
	}

	// 2. LLM
	inv, err := newInvoker(ctx)
	if err != nil {
		return err
	}
	an := analysis.New(inv)

	// 3. service
	svc, err := service.NewProposalService(extract.New(inv), an, an, store, vars.SESSION_CACHE_SIZE, vars.HANDOFF_TTL)
	if err != nil {
		return err
	}

	// 4. scheduled purge
	c, err := job.StartCronJob(vars.PURGE_SPEC, svc)
	if err != nil {
		return fmt.Errorf("schedule purge %q: %w", vars.PURGE_SPEC, err)
	}
	defer c.Stop()

	// 5. handler
	pdfParser, err := parser.NewPDF(ctx)
	if err != nil {
		return err
	}
	h := handler.NewProposalHandler(svc, pdfParser, vars.MAX_UPLOAD_MB)

	// 6. web server
	tmpl, err := view.Templates()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	r := gin.Default()
	r.MaxMultipartMemory = int64(vars.MAX_UPLOAD_MB) << 20
	r.SetHTMLTemplate(tmpl)
	router.RegisterRoutes(r, h)

	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 10 * time.Second}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logs.L().Infof("Server running on %s (llm=%s/%s, handoff=%s, ttl=%v)",
			addr, vars.LLM_PROVIDER, vars.LLM_MODEL, vars.HANDOFF_STORE, vars.HANDOFF_TTL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logs.L().Info("Server shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
