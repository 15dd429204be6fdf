package interchange

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vadimdragunov/shoporders/internal/domain"
)

// Заголовок CSV-файла клиентов: колонки в исходной локали, порядок фиксирован.
var clientsCSVHeader = []string{"Имя", "Email", "Телефон", "Город"}

// Service реализует обмен данными (CSV/JSON) поверх публичных операций репозитория.
// К хранилищу напрямую сервис не обращается.
type Service struct {
	repo domain.Repository
}

// NewService создаёт сервис обмена поверх репозитория.
func NewService(repo domain.Repository) *Service {
	return &Service{repo: repo}
}

// ExportClientsCSV пишет всех клиентов в w: строка заголовка и по строке на клиента.
func (s *Service) ExportClientsCSV(w io.Writer) error {
	clients, err := s.repo.ListClients()
	if err != nil {
		return fmt.Errorf("list clients: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(clientsCSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, c := range clients {
		if err := cw.Write([]string{c.Name, c.Email, c.Phone, c.City}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ImportClientsCSV читает клиентов из r в том же четырёхколоночном формате.
// Сначала валидируются все строки файла, потом выполняются вставки; импорт
// прерывается на первой ошибке (валидации или дубликата телефона) целиком.
func (s *Service) ImportClientsCSV(r io.Reader) error {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return errors.New("csv file is empty")
	}

	// Первая строка — заголовок, данные начинаются со второй.
	clients := make([]domain.Client, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != len(clientsCSVHeader) {
			return fmt.Errorf("row %d: expected %d columns, got %d", i+2, len(clientsCSVHeader), len(rec))
		}
		client, err := domain.NewClient(rec[0], rec[1], rec[2], rec[3])
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		clients = append(clients, client)
	}

	for _, client := range clients {
		if err := s.repo.AddClient(client); err != nil {
			return fmt.Errorf("import client %s: %w", client.Phone, err)
		}
	}
	return nil
}

// ExportClientsFile экспортирует клиентов в CSV-файл по указанному пути.
func (s *Service) ExportClientsFile(path string) error {
	return s.writeFile(path, s.ExportClientsCSV)
}

// ImportClientsFile импортирует клиентов из CSV-файла.
func (s *Service) ImportClientsFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return s.ImportClientsCSV(f)
}

func (s *Service) writeFile(path string, export func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := export(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
