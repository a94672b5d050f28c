package datadragon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type testLogger struct{}

func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Debug(format string, v ...interface{}) {}

func newTestServer(t *testing.T) (*httptest.Server, *int) {
	t.Helper()

	championFetches := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/api/versions.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["15.17.1","15.16.1"]`))
	})
	mux.HandleFunc("/cdn/15.17.1/data/en_US/champion.json", func(w http.ResponseWriter, r *http.Request) {
		championFetches++
		w.Write([]byte(`{"data":{
			"Jinx":{"key":"222","name":"Jinx"},
			"MonkeyKing":{"key":"62","name":"Wukong"}
		}}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &championFetches
}

func newTestClient(t *testing.T) (*Client, *int) {
	srv, fetches := newTestServer(t)
	c := NewClient(testLogger{})
	c.baseURL = srv.URL
	return c, fetches
}

func TestChampionName_Resolves(t *testing.T) {
	c, _ := newTestClient(t)

	if got := c.ChampionName(context.Background(), 222); got != "Jinx" {
		t.Errorf("expected Jinx, got %q", got)
	}
	if got := c.ChampionName(context.Background(), 62); got != "Wukong" {
		t.Errorf("expected Wukong, got %q", got)
	}
}

func TestChampionName_UnknownID(t *testing.T) {
	c, _ := newTestClient(t)

	if got := c.ChampionName(context.Background(), 99999); got != "Champion_99999" {
		t.Errorf("expected fallback label, got %q", got)
	}
}

func TestChampionName_CachesDataset(t *testing.T) {
	c, fetches := newTestClient(t)

	c.ChampionName(context.Background(), 222)
	c.ChampionName(context.Background(), 62)
	c.ChampionName(context.Background(), 222)

	if *fetches != 1 {
		t.Errorf("dataset should be fetched once within the check interval, got %d", *fetches)
	}
}

func TestChampionName_DegradesWhenUnreachable(t *testing.T) {
	c := NewClient(testLogger{})
	c.baseURL = "http://127.0.0.1:0"

	if got := c.ChampionName(context.Background(), 222); got != "Champion_222" {
		t.Errorf("unreachable dataset should degrade to label, got %q", got)
	}
}

func TestVersion_FallbackBeforeFirstFetch(t *testing.T) {
	c := NewClient(testLogger{})

	if got := c.Version(); got != fallbackVersion {
		t.Errorf("expected fallback version, got %q", got)
	}
}

func TestChampionIconURL_SpecialAssetNames(t *testing.T) {
	c := NewClient(testLogger{})

	url := c.ChampionIconURL("Wukong")
	if !strings.Contains(url, "/MonkeyKing.png") {
		t.Errorf("Wukong should map to the MonkeyKing asset, got %q", url)
	}

	url = c.ChampionIconURL("Jinx")
	if !strings.Contains(url, "/Jinx.png") {
		t.Errorf("regular champion asset mismatch: %q", url)
	}
}
