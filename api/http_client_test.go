package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestHTTPClient_Request_Success(t *testing.T) {
	// Mock server setup
	mockResponse := map[string]string{"message": "success"}
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test-endpoint" {
			t.Errorf("Expected endpoint '/test-endpoint', got '%s'", r.URL.Path)
		}
		if r.URL.Query().Get("name") != "New York" {
			t.Errorf("Expected query name 'New York', got '%s'", r.URL.Query().Get("name"))
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(mockResponse)
	}))
	defer mockServer.Close()

	// Test setup
	client := NewHTTPClient(mockServer.URL)
	var response map[string]string

	// Act
	err := client.Request(context.Background(), "GET", "/test-endpoint", url.Values{"name": {"New York"}}, nil, nil, &response)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if response["message"] != "success" {
		t.Errorf("Expected response message to be 'success', got '%s'", response["message"])
	}
}

func TestHTTPClient_Request_Failure(t *testing.T) {
	// Mock server setup
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "bad request"}`))
	}))
	defer mockServer.Close()

	// Test setup
	client := NewHTTPClient(mockServer.URL)
	var response map[string]string

	// Act
	err := client.Request(context.Background(), "POST", "/test-endpoint", nil, nil, map[string]string{"key": "value"}, &response)

	// Assert
	if err == nil {
		t.Fatalf("Expected an error, got nil")
	}

	expectedError := "unexpected status code: 400 Bad Request"
	if err.Error() != expectedError {
		t.Errorf("Expected error '%s', got '%s'", expectedError, err.Error())
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Expected a *StatusError, got %T", err)
	}
	if statusErr.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", statusErr.StatusCode)
	}
	if statusErr.Body != `{"error": "bad request"}` {
		t.Errorf("Unexpected body %q", statusErr.Body)
	}
}

func TestHTTPClient_Request_MalformedJSON(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"invalid_json`))
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL)
	var response map[string]string

	err := client.Request(context.Background(), "GET", "/broken", nil, nil, nil, &response)
	if err == nil {
		t.Fatal("Expected a decode error, got nil")
	}
}

func TestHTTPClient_Request_Timeout(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer mockServer.Close()

	client := NewHTTPClientWithTimeout(mockServer.URL, 20*time.Millisecond)

	err := client.Request(context.Background(), "GET", "/slow", nil, nil, nil, nil)
	if err == nil {
		t.Fatal("Expected a timeout error, got nil")
	}
}
