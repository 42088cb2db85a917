package qrapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/qrbox/internal/models"
	"github.com/iudanet/qrbox/pkg/api"
)

// readQRResponse собирает ответ decode endpoint в формате api.qrserver.com
func readQRResponse(data, errMsg string) []api.ReadResult {
	symbol := api.Symbol{Seq: 0}
	if data != "" {
		symbol.Data = &data
	}
	if errMsg != "" {
		symbol.Error = &errMsg
	}
	return []api.ReadResult{{Type: "qrcode", Symbol: []api.Symbol{symbol}}}
}

func TestNewClient(t *testing.T) {
	client := NewClient("https://decode.example", "https://encode.example")

	assert.NotNil(t, client)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestClient_Decode(t *testing.T) {
	// Создаем mock сервер, отвечающий как api.qrserver.com
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		// Проверяем multipart поле file
		require.NoError(t, r.ParseMultipartForm(10<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "scan.png", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(readQRResponse("https://example.com", ""))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL)

	data, err := client.Decode(context.Background(), []byte("fake-png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", data)
}

func TestClient_Decode_NoQRFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(readQRResponse("", "could not find/read a QR code"))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL)

	_, err := client.Decode(context.Background(), []byte("fake-png-bytes"))
	require.ErrorIs(t, err, ErrNoQRFound)
}

func TestClient_Decode_EmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL)

	_, err := client.Decode(context.Background(), []byte("fake-png-bytes"))
	require.ErrorIs(t, err, ErrNoQRFound)
}

func TestClient_Decode_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL)

	_, err := client.Decode(context.Background(), []byte("fake-png-bytes"))
	require.ErrorIs(t, err, ErrDecodeFailed)
	// Ошибка транспорта не должна маскироваться под "QR не найден"
	assert.NotErrorIs(t, err, ErrNoQRFound)
}

func TestClient_Decode_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // закрываем сразу, чтобы получить ошибку соединения

	client := NewClient(server.URL, server.URL)

	_, err := client.Decode(context.Background(), []byte("fake-png-bytes"))
	require.ErrorIs(t, err, ErrDecodeFailed)
}

func TestClient_Download(t *testing.T) {
	imageBytes := []byte{0x89, 'P', 'N', 'G'}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(imageBytes)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL)

	data, err := client.Download(context.Background(), server.URL+"/v1/create-qr-code/?data=hello")
	require.NoError(t, err)
	assert.Equal(t, imageBytes, data)
}

func TestClient_Download_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL)

	_, err := client.Download(context.Background(), server.URL)
	require.ErrorIs(t, err, ErrDownloadFailed)
}

func TestClient_BuildEncodeURL(t *testing.T) {
	client := NewClient("https://api.qrserver.com/v1/read-qr-code/", "https://api.qrserver.com/v1/create-qr-code/")

	cust := models.Customization{
		ForegroundColor: "#112233",
		BackgroundColor: "#FFFFFF",
		IsTransparent:   false,
		HasMargin:       true,
		Margin:          "4",
	}

	got := client.BuildEncodeURL("hello", "250", cust)

	assert.Contains(t, got, "https://api.qrserver.com/v1/create-qr-code/?")
	assert.Contains(t, got, "size=250x250")
	assert.Contains(t, got, "data=hello")
	assert.Contains(t, got, "color=112233")
	assert.Contains(t, got, "bgcolor=FFFFFF")
	assert.Contains(t, got, "margin=4")
	assert.Contains(t, got, "format=png")
	assert.Contains(t, got, "qzone=1")
}

func TestClient_BuildEncodeURL_Transparent(t *testing.T) {
	client := NewClient("", "https://api.qrserver.com/v1/create-qr-code/")

	cust := models.DefaultCustomization()
	cust.IsTransparent = true

	got := client.BuildEncodeURL("hello", "270", cust)
	assert.Contains(t, got, "bgcolor=transparent")
}

func TestClient_BuildEncodeURL_NoMargin(t *testing.T) {
	client := NewClient("", "https://api.qrserver.com/v1/create-qr-code/")

	cust := models.DefaultCustomization()
	cust.SetMargin("0")

	got := client.BuildEncodeURL("hello", "270", cust)
	assert.Contains(t, got, "margin=0")
}

func TestClient_BuildEncodeURL_EncodesPayload(t *testing.T) {
	client := NewClient("", "https://api.qrserver.com/v1/create-qr-code/")

	got := client.BuildEncodeURL("WIFI:S:MyNet;T:WPA;P:secret;;", "270", models.DefaultCustomization())

	// Payload должен быть URL-экранирован
	assert.NotContains(t, got, "data=WIFI:S:")
	assert.Contains(t, got, "data=WIFI%3AS%3AMyNet%3BT%3AWPA%3BP%3Asecret%3B%3B")
}
