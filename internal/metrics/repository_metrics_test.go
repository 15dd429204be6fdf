package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vadimdragunov/shoporders/internal/domain"
	"github.com/vadimdragunov/shoporders/internal/storage/memory"
)

func TestNewRepositoryMetrics(t *testing.T) {
	m := newRepositoryMetricsWithRegisterer(prometheus.NewRegistry())
	if m == nil {
		t.Fatal("metrics must not be nil")
	}
	if m.ops == nil {
		t.Error("ops counter vec must not be nil")
	}
	if m.duration == nil {
		t.Error("duration histogram vec must not be nil")
	}
}

func TestNewRepositoryMetrics_DoubleRegister(t *testing.T) {
	registry := prometheus.NewRegistry()
	first := newRepositoryMetricsWithRegisterer(registry)
	second := newRepositoryMetricsWithRegisterer(registry)

	// Повторная регистрация переиспользует уже зарегистрированные коллекторы.
	if first.ops != second.ops {
		t.Error("ops collector must be reused on re-registration")
	}
}

func TestInstrumentRepository_CountsOps(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := newRepositoryMetricsWithRegisterer(registry)
	repo := InstrumentRepository(memory.NewRepository(), m)

	client, err := domain.NewClient("Иван", "ivan@mail.ru", "+79991234567", "")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if err := repo.AddClient(client); err != nil {
		t.Fatalf("add client: %v", err)
	}
	if err := repo.AddClient(client); !errors.Is(err, domain.ErrClientExists) {
		t.Fatalf("expected ErrClientExists, got %v", err)
	}

	ok := testutil.ToFloat64(m.ops.WithLabelValues("add_client", "ok"))
	failed := testutil.ToFloat64(m.ops.WithLabelValues("add_client", "error"))
	if ok != 1 {
		t.Fatalf("expected 1 ok op, got %v", ok)
	}
	if failed != 1 {
		t.Fatalf("expected 1 failed op, got %v", failed)
	}
}

func TestInstrumentRepository_PassesValuesThrough(t *testing.T) {
	m := newRepositoryMetricsWithRegisterer(prometheus.NewRegistry())
	repo := InstrumentRepository(memory.NewRepository(), m)

	client, err := domain.NewClient("Иван", "ivan@mail.ru", "+79991234567", "")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if err := repo.AddClient(client); err != nil {
		t.Fatalf("add client: %v", err)
	}

	clients, err := repo.ListClients()
	if err != nil {
		t.Fatalf("list clients: %v", err)
	}
	if len(clients) != 1 || clients[0].Phone != client.Phone {
		t.Fatalf("decorator must not alter results: %v", clients)
	}
}
