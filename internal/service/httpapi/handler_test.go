package httpapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vadimdragunov/shoporders/internal/domain"
	"github.com/vadimdragunov/shoporders/internal/interchange"
	"github.com/vadimdragunov/shoporders/internal/service/httpapi"
	"github.com/vadimdragunov/shoporders/internal/storage/memory"
)

func newTestServer(t *testing.T) (*httptest.Server, domain.Repository) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo := memory.NewRepository()
	handler := httpapi.NewHandler(repo, interchange.NewService(repo), nil, logger.WithField("layer", "http"))
	srv := httptest.NewServer(handler.Routes())
	t.Cleanup(srv.Close)
	return srv, repo
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func getJSON(t *testing.T, url string, out any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestAddClient_Created(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/clients", map[string]any{
		"name": "Иван", "email": "ivan@mail.ru", "phone": "+79991234567", "city": "Москва",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestAddClient_ValidationError(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/clients", map[string]any{
		"name": "Иван", "email": "not-an-email", "phone": "+79991234567",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAddClient_DuplicateConflict(t *testing.T) {
	srv, _ := newTestServer(t)

	payload := map[string]any{
		"name": "Иван", "email": "ivan@mail.ru", "phone": "+79991234567", "city": "Москва",
	}
	require.Equal(t, http.StatusCreated, postJSON(t, srv.URL+"/api/v1/clients", payload).StatusCode)
	require.Equal(t, http.StatusConflict, postJSON(t, srv.URL+"/api/v1/clients", payload).StatusCode)
}

func TestAddOrder_UnknownClient(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/orders", map[string]any{
		"client_phone": "+79990000000",
		"products":     []map[string]any{{"name": "Книга", "price": 300}},
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAddOrder_BadPhoneShape(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/orders", map[string]any{
		"client_phone": "12345",
		"products":     []map[string]any{{"name": "Книга", "price": 300}},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOrderScenario_TotalCost(t *testing.T) {
	srv, _ := newTestServer(t)

	require.Equal(t, http.StatusCreated, postJSON(t, srv.URL+"/api/v1/clients", map[string]any{
		"name": "Иван", "email": "ivan@mail.ru", "phone": "+79991234567", "city": "Москва",
	}).StatusCode)

	resp := postJSON(t, srv.URL+"/api/v1/orders", map[string]any{
		"client_phone": "+79991234567",
		"products": []map[string]any{
			{"name": "Книга", "price": 300},
			{"name": "Ручка", "price": 50},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var orders []struct {
		Client struct {
			Name string `json:"name"`
		} `json:"client"`
		Total float64 `json:"total"`
	}
	getJSON(t, srv.URL+"/api/v1/orders", &orders)
	require.Len(t, orders, 1)
	require.Equal(t, "Иван", orders[0].Client.Name)
	require.InDelta(t, 350.0, orders[0].Total, 1e-9)
}

func TestExportClientsCSV(t *testing.T) {
	srv, repo := newTestServer(t)

	client, err := domain.NewClient("Иван", "ivan@mail.ru", "+79991234567", "Москва")
	require.NoError(t, err)
	require.NoError(t, repo.AddClient(client))

	resp, err := http.Get(srv.URL + "/api/v1/clients/export")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "Имя,Email,Телефон,Город")
	require.Contains(t, string(body), "+79991234567")
}

func TestImportClientsCSV(t *testing.T) {
	srv, repo := newTestServer(t)

	payload := "Имя,Email,Телефон,Город\nИван,ivan@mail.ru,+79991234567,Москва\n"
	resp, err := http.Post(srv.URL+"/api/v1/clients/import", "text/csv", strings.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	clients, err := repo.ListClients()
	require.NoError(t, err)
	require.Len(t, clients, 1)
}

func TestTopClientsReport(t *testing.T) {
	srv, _ := newTestServer(t)

	require.Equal(t, http.StatusCreated, postJSON(t, srv.URL+"/api/v1/clients", map[string]any{
		"name": "Иван", "email": "ivan@mail.ru", "phone": "+79991234567",
	}).StatusCode)
	for i := 0; i < 2; i++ {
		resp := postJSON(t, srv.URL+"/api/v1/orders", map[string]any{
			"client_phone": "+79991234567",
			"products":     []map[string]any{{"name": "Книга", "price": 300}},
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var top []struct {
		Client struct {
			Phone string `json:"phone"`
		} `json:"client"`
		Orders int `json:"orders"`
	}
	getJSON(t, srv.URL+"/api/v1/reports/top-clients?n=1", &top)
	require.Len(t, top, 1)
	require.Equal(t, "+79991234567", top[0].Client.Phone)
	require.Equal(t, 2, top[0].Orders)
}

func TestClientProductLinksReport(t *testing.T) {
	srv, _ := newTestServer(t)

	require.Equal(t, http.StatusCreated, postJSON(t, srv.URL+"/api/v1/clients", map[string]any{
		"name": "Иван", "email": "ivan@mail.ru", "phone": "+79991234567",
	}).StatusCode)
	resp := postJSON(t, srv.URL+"/api/v1/orders", map[string]any{
		"client_phone": "+79991234567",
		"products": []map[string]any{
			{"name": "Книга", "price": 300},
			{"name": "Ручка", "price": 50},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var links []struct {
		Client  string `json:"client"`
		Product string `json:"product"`
	}
	getJSON(t, srv.URL+"/api/v1/reports/client-product-links", &links)
	require.Len(t, links, 2)
	for _, link := range links {
		require.Equal(t, "Иван", link.Client)
	}
	require.Equal(t, "Книга", links[0].Product)
	require.Equal(t, "Ручка", links[1].Product)
}

func TestTopClientsReport_BadLimit(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/reports/top-clients?n=abc")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
