package transit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// newTestProvider starts an httptest server with the given handler and
// returns a provider pointed at it.
func newTestProvider(t *testing.T, handler http.HandlerFunc) *SLProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p, err := NewSLProvider("test-key", srv.URL+"/", 2*time.Second)
	if err != nil {
		t.Fatalf("NewSLProvider: %v", err)
	}
	return p
}

func writeBody(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(body))
}

func TestNewSLProviderRequiresBaseURL(t *testing.T) {
	if _, err := NewSLProvider("key", "  ", 0); err == nil {
		t.Fatal("expected error for empty base url")
	}
}

func TestSearchStopsSendsQueryAndKey(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != searchPath {
			t.Errorf("path = %q, want %q", r.URL.Path, searchPath)
		}
		q := r.URL.Query()
		if q.Get("key") != "test-key" {
			t.Errorf("key = %q, want test-key", q.Get("key"))
		}
		if q.Get("searchstring") != "Central Station" {
			t.Errorf("searchstring = %q, want %q", q.Get("searchstring"), "Central Station")
		}
		writeBody(w, `{"StatusCode":0,"ResponseData":[{"Name":"Stockholm Central","SiteId":"1002"},{"Name":"Centralen","SiteId":9001}]}`)
	})

	stops, err := p.SearchStops(context.Background(), " Central Station ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stops) != 2 {
		t.Fatalf("expected 2 stops, got %d", len(stops))
	}
	if stops[0].SiteID != "1002" || stops[0].Name != "Stockholm Central" {
		t.Errorf("stops[0] = %+v", stops[0])
	}
	if stops[1].SiteID != "9001" {
		t.Errorf("numeric SiteId decoded as %q, want 9001", stops[1].SiteID)
	}
}

func TestSearchStopsNoCandidates(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, `{"StatusCode":0,"ResponseData":null}`)
	})

	stops, err := p.SearchStops(context.Background(), "Nowhere")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stops) != 0 {
		t.Fatalf("expected no stops, got %d", len(stops))
	}
}

func TestSearchStopsSkipsCandidatesWithoutSiteID(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, `{"ResponseData":[{"Name":"Ghost"},{"Name":"Real","SiteId":"5"}]}`)
	})

	stops, err := p.SearchStops(context.Background(), "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stops) != 1 || stops[0].Name != "Real" {
		t.Fatalf("stops = %+v, want only Real", stops)
	}
}

func TestSearchStopsHTTPError(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})

	_, err := p.SearchStops(context.Background(), "x")
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if se.Code != http.StatusBadGateway || se.Body {
		t.Errorf("StatusError = %+v, want HTTP 502", se)
	}
}

func TestSearchStopsBodyLevelError(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, `{"StatusCode":1002,"Message":"Key is invalid","ResponseData":null}`)
	})

	_, err := p.SearchStops(context.Background(), "x")
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if se.Code != 1002 || !se.Body || se.Message != "Key is invalid" {
		t.Errorf("StatusError = %+v", se)
	}
}

func TestSearchStopsMalformedJSON(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, `{"ResponseData":[`)
	})

	if _, err := p.SearchStops(context.Background(), "x"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestDeparturesDecodesCategories(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != departuresPath {
			t.Errorf("path = %q, want %q", r.URL.Path, departuresPath)
		}
		if got := r.URL.Query().Get("siteid"); got != "1002" {
			t.Errorf("siteid = %q, want 1002", got)
		}
		writeBody(w, `{"StatusCode":0,"ResponseData":{
			"Buses":[{"LineNumber":"1","Destination":"X","ScheduledDepartureTime":"T2"}],
			"Metro":[{"LineNumber":14,"Destination":"Y","ExpectedDepartureTime":"T1"}]}}`)
	})

	board, err := p.Departures(context.Background(), "1002")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(board.Buses) != 1 || len(board.Metros) != 1 {
		t.Fatalf("board = %+v, want 1 bus and 1 metro", board)
	}
	if b := board.Buses[0]; b.LineNumber != "1" || b.Expected != "" || b.Scheduled != "T2" {
		t.Errorf("bus = %+v", b)
	}
	if m := board.Metros[0]; m.LineNumber != "14" || m.Destination != "Y" || m.Expected != "T1" {
		t.Errorf("metro = %+v", m)
	}
}

func TestDeparturesAcceptsV4FieldNames(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, `{"ResponseData":{"Metros":[{"LineNumber":"17","Destination":"Åkeshov",
			"ExpectedDateTime":"2026-01-01T08:05:00","TimeTabledDateTime":"2026-01-01T08:04:00"}]}}`)
	})

	board, err := p.Departures(context.Background(), "9001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(board.Buses) != 0 {
		t.Errorf("buses = %+v, want empty", board.Buses)
	}
	if len(board.Metros) != 1 {
		t.Fatalf("expected 1 metro, got %d", len(board.Metros))
	}
	m := board.Metros[0]
	if m.Expected != "2026-01-01T08:05:00" || m.Scheduled != "2026-01-01T08:04:00" {
		t.Errorf("metro times = (%q, %q)", m.Expected, m.Scheduled)
	}
}

func TestDeparturesNullResponseDataIsEmpty(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, `{"StatusCode":0,"ResponseData":null}`)
	})

	board, err := p.Departures(context.Background(), "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board.Buses == nil || board.Metros == nil {
		t.Fatalf("categories must be empty slices, got %+v", board)
	}
	if len(board.Buses)+len(board.Metros) != 0 {
		t.Errorf("board = %+v, want empty", board)
	}
}

func TestDeparturesRespectsContext(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
		writeBody(w, `{}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Departures(ctx, "1"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
