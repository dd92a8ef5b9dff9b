package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/petmall-admin/internal/config"
	"github.com/petmall-admin/internal/provider"
)

type stubService struct {
	name     string
	startErr error
	stopped  atomic.Bool
}

func (s *stubService) Name() string { return s.name }

func (s *stubService) Start(ctx context.Context) error {
	if s.startErr != nil {
		return s.startErr
	}
	<-ctx.Done()
	return nil
}

func (s *stubService) Stop(context.Context) error {
	s.stopped.Store(true)
	return nil
}

func TestRunnerStopsAllServicesOnFailure(t *testing.T) {
	healthy := &stubService{name: "http"}
	failing := &stubService{name: "worker", startErr: errors.New("redis unreachable")}
	runner := NewRunner(healthy, failing)

	err := runner.Run(context.Background(), time.Second, nil)
	if err == nil || err.Error() != "redis unreachable" {
		t.Fatalf("expected start error, got %v", err)
	}
	if !healthy.stopped.Load() || !failing.stopped.Load() {
		t.Fatalf("all services should be stopped")
	}
}

func TestRunnerReturnsNilOnCancel(t *testing.T) {
	svc := &stubService{name: "http"}
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	if err := NewRunner(svc).Run(ctx, time.Second, nil); err != nil {
		t.Fatalf("cancel should end cleanly, got %v", err)
	}
	if !svc.stopped.Load() {
		t.Fatalf("service should be stopped")
	}
}

func TestBuildRunnerWithModes(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "0"
	cfg.Server.Mode = "release"
	container := &provider.Container{Config: cfg}

	runner, err := BuildRunnerWith(cfg, container, ModeAll)
	if err != nil {
		t.Fatalf("all mode without queue should still build api: %v", err)
	}
	if len(runner.services) != 1 || runner.services[0].Name() != "http" {
		t.Fatalf("expected only http service, got %d", len(runner.services))
	}
	if _, err := BuildRunnerWith(cfg, container, ModeWorker); err == nil {
		t.Fatalf("worker mode requires queue")
	}
	if _, err := BuildRunnerWith(cfg, container, "cron"); err == nil {
		t.Fatalf("unknown mode should fail")
	}
}

type orderedService struct {
	name  string
	order *[]string
}

func (s *orderedService) Name() string { return s.name }

func (s *orderedService) Start(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

func (s *orderedService) Stop(context.Context) error {
	*s.order = append(*s.order, s.name)
	return nil
}

func TestRunnerStopsInReverseOrder(t *testing.T) {
	var stopped []string
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runner := NewRunner(&orderedService{name: "http", order: &stopped}, &orderedService{name: "worker", order: &stopped})
	if err := runner.Run(ctx, time.Second, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stopped) != 2 || stopped[0] != "worker" || stopped[1] != "http" {
		t.Fatalf("expected reverse stop order, got %v", stopped)
	}
}

func TestRunnerRejectsNilService(t *testing.T) {
	if err := NewRunner(nil).Run(context.Background(), time.Second, nil); err == nil {
		t.Fatalf("nil service should fail")
	}
}
