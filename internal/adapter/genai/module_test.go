package genai

import (
	"testing"

	"github.com/polkiloo/storefront/internal/config"
)

func TestNewClientUsesConfig(t *testing.T) {
	cfg := &config.Config{GenAIBaseURL: "http://example.com", GenAIModel: "m", GenAIAPIKey: "key", Profile: config.DefaultProfile()}
	client, err := newClient(clientParams{Config: cfg, Logger: testLogger()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	httpClient, ok := client.(*HTTPClient)
	if !ok {
		t.Fatalf("expected *HTTPClient, got %T", client)
	}
	if httpClient.storeName != "Delícias da Gio" {
		t.Fatalf("unexpected store name %q", httpClient.storeName)
	}
}

func TestNewClientWithoutKeyIsNoop(t *testing.T) {
	client, err := newClient(clientParams{Config: &config.Config{}, Logger: testLogger()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := client.(NoopClient); !ok {
		t.Fatalf("expected NoopClient, got %T", client)
	}
}
