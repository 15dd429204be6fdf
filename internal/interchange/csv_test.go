package interchange_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vadimdragunov/shoporders/internal/domain"
	"github.com/vadimdragunov/shoporders/internal/interchange"
	"github.com/vadimdragunov/shoporders/internal/storage/memory"
)

func addClient(t *testing.T, repo domain.Repository, name, email, phone, city string) domain.Client {
	t.Helper()
	client, err := domain.NewClient(name, email, phone, city)
	require.NoError(t, err)
	require.NoError(t, repo.AddClient(client))
	return client
}

func TestExportClientsCSV_Header(t *testing.T) {
	repo := memory.NewRepository()
	svc := interchange.NewService(repo)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportClientsCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, "Имя,Email,Телефон,Город", lines[0])
	require.Len(t, lines, 1, "empty store exports only the header")
}

func TestClientsCSV_RoundTrip(t *testing.T) {
	src := memory.NewRepository()
	svc := interchange.NewService(src)

	want := []domain.Client{
		addClient(t, src, "Иван", "ivan@mail.ru", "+79991234567", "Москва"),
		addClient(t, src, "Пётр", "petr@mail.ru", "+79990000001", ""),
	}

	var buf bytes.Buffer
	require.NoError(t, svc.ExportClientsCSV(&buf))

	dst := memory.NewRepository()
	require.NoError(t, interchange.NewService(dst).ImportClientsCSV(&buf))

	got, err := dst.ListClients()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestImportClientsCSV_InvalidRowAbortsWholeFile(t *testing.T) {
	repo := memory.NewRepository()
	svc := interchange.NewService(repo)

	payload := strings.Join([]string{
		"Имя,Email,Телефон,Город",
		"Иван,ivan@mail.ru,+79991234567,Москва",
		"Пётр,not-an-email,+79990000001,СПб",
	}, "\n")

	err := svc.ImportClientsCSV(strings.NewReader(payload))
	require.Error(t, err)
	require.True(t, domain.IsValidation(err))

	// Валидация выполняется до вставок: ни одна строка не должна попасть в хранилище.
	clients, listErr := repo.ListClients()
	require.NoError(t, listErr)
	require.Empty(t, clients)
}

func TestImportClientsCSV_DuplicatePhoneAborts(t *testing.T) {
	repo := memory.NewRepository()
	svc := interchange.NewService(repo)
	addClient(t, repo, "Иван", "ivan@mail.ru", "+79991234567", "Москва")

	payload := strings.Join([]string{
		"Имя,Email,Телефон,Город",
		"Пётр,petr@mail.ru,+79991234567,СПб",
	}, "\n")

	err := svc.ImportClientsCSV(strings.NewReader(payload))
	require.ErrorIs(t, err, domain.ErrClientExists)
}

func TestImportClientsCSV_WrongColumnCount(t *testing.T) {
	repo := memory.NewRepository()
	svc := interchange.NewService(repo)

	// encoding/csv сам отвергает строки с неполным набором колонок.
	payload := "Имя,Email,Телефон,Город\nИван,ivan@mail.ru,+79991234567\n"
	require.Error(t, svc.ImportClientsCSV(strings.NewReader(payload)))
}

func TestImportClientsCSV_EmptyFile(t *testing.T) {
	repo := memory.NewRepository()
	svc := interchange.NewService(repo)
	require.Error(t, svc.ImportClientsCSV(strings.NewReader("")))
}
