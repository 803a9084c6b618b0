package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aura/internal/domain"
)

func TestUnconfiguredClientSimulates(t *testing.T) {
	for _, u := range []string{"", "https://script.google.com/macros/s/YOUR_DEPLOYED_SCRIPT_ID/exec"} {
		c := New(u)
		if c.Configured() {
			t.Fatalf("url %q should not count as configured", u)
		}
		// Writes succeed without touching the network.
		if err := c.Sync(context.Background(), ActionOrder, map[string]any{"id": "ORD-X"}); err != nil {
			t.Fatalf("simulated sync should succeed, got %v", err)
		}
		// Reads yield their fallbacks.
		role, err := c.FetchRole(context.Background(), "alice@aura.test")
		if role != "" || err == nil {
			t.Fatalf("simulated role lookup: got role=%q err=%v", role, err)
		}
		users, _ := c.FetchUsers(context.Background())
		if len(users) != 0 {
			t.Fatalf("simulated user fetch should be empty, got %d", len(users))
		}
	}
}

func TestSyncPostsEnvelopeAndIgnoresResponse(t *testing.T) {
	var got syncEnvelope
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode envelope: %v", err)
		}
		// Apps Script replies are not contractual; garbage must not fail the call.
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.Sync(context.Background(), ActionCommunityPost, map[string]string{"name": "Priya"}); err != nil {
		t.Fatalf("sync should report success on dispatch, got %v", err)
	}
	if got.Action != ActionCommunityPost {
		t.Fatalf("envelope action = %q, want %q", got.Action, ActionCommunityPost)
	}
}

func TestSyncTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := New(srv.URL)
	if err := c.Sync(context.Background(), ActionOrder, nil); err == nil {
		t.Fatal("sync over a dead transport should error")
	}
}

func TestFetchRole(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("action") != "getRole" {
			t.Errorf("unexpected action %q", r.URL.Query().Get("action"))
		}
		if r.URL.Query().Get("email") != "boss@aura.test" {
			t.Errorf("unexpected email %q", r.URL.Query().Get("email"))
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"role": domain.RoleAdmin})
	}))
	defer srv.Close()

	role, err := New(srv.URL).FetchRole(context.Background(), "boss@aura.test")
	if err != nil {
		t.Fatal(err)
	}
	if role != domain.RoleAdmin {
		t.Fatalf("role = %q, want ADMIN", role)
	}
}

func TestFetchProductsFallsBackOnBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>sign in</html>"))
	}))
	defer srv.Close()

	products, err := New(srv.URL).FetchProducts(context.Background())
	if err == nil {
		t.Fatal("malformed body should surface an error for the caller to fall back on")
	}
	if products != nil {
		t.Fatalf("products should be nil on failure, got %v", products)
	}
}

func TestFetchRequestsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	reqs, err := New(srv.URL).FetchRequests(context.Background())
	if err == nil {
		t.Fatal("non-OK status should error")
	}
	if len(reqs) != 0 {
		t.Fatalf("requests fallback should be empty, got %d", len(reqs))
	}
}

func TestFetchProductsDecodesCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"products": []domain.Product{
				{ID: "r1", SKU: "RNG-001", Name: "Eternal Diamond Band", Category: "Rings", Price: 95000, Quantity: 15},
			},
		})
	}))
	defer srv.Close()

	products, err := New(srv.URL).FetchProducts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 1 || products[0].SKU != "RNG-001" {
		t.Fatalf("unexpected catalog: %+v", products)
	}
}
