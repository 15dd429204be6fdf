package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/vadimdragunov/shoporders/internal/interchange"
	"github.com/vadimdragunov/shoporders/internal/storage/postgres"
)

const defaultTimeout = 60 * time.Second

// Утилита обмена данными: выгрузка клиентов в CSV, загрузка клиентов из CSV
// и выгрузка заказов в JSON поверх рабочей базы.
func main() {
	var (
		action string
		file   string
		dsn    string
	)

	flag.StringVar(&action, "action", "", "action: export-clients|import-clients|export-orders")
	flag.StringVar(&file, "file", "", "path to the CSV/JSON file")
	flag.StringVar(&dsn, "dsn", "", "PostgreSQL DSN (fallback: SHOP_POSTGRES_DSN)")
	flag.Parse()

	if strings.TrimSpace(file) == "" {
		fail("-file is required")
	}
	if strings.TrimSpace(dsn) == "" {
		dsn = strings.TrimSpace(os.Getenv("SHOP_POSTGRES_DSN"))
	}
	if dsn == "" {
		fail("SHOP_POSTGRES_DSN (or -dsn) is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	store, err := postgres.Open(ctx, dsn)
	if err != nil {
		fail("open postgres store: %v", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		fail("ensure schema: %v", err)
	}

	svc := interchange.NewService(postgres.NewRepository(store))

	switch strings.ToLower(strings.TrimSpace(action)) {
	case "export-clients":
		if err := svc.ExportClientsFile(file); err != nil {
			fail("export clients failed: %v", err)
		}
		fmt.Printf("clients exported to %s\n", file)
	case "import-clients":
		if err := svc.ImportClientsFile(file); err != nil {
			fail("import clients failed: %v", err)
		}
		fmt.Printf("clients imported from %s\n", file)
	case "export-orders":
		if err := svc.ExportOrdersFile(file); err != nil {
			fail("export orders failed: %v", err)
		}
		fmt.Printf("orders exported to %s\n", file)
	default:
		fail("unsupported action: %q (use export-clients|import-clients|export-orders)", action)
	}
}

func fail(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
