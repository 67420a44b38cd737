package gateway

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	OrderSvcURL     string
	KitchenSvcURL   string
	InventorySvcURL string
	LoyaltySvcURL   string
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log.Printf("PROXY: %s %s -> %s%s", r.Method, r.URL.Path, targetURL, r.URL.Path)

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequest(r.Method, url, r.Body)
	if err != nil {
		log.Printf("ERROR: Failed to create request: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("ERROR: Failed to proxy to %s: %v", targetURL, err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("ERROR: Failed to copy response: %v", err)
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	log.Printf("ROUTE: %s %s", r.Method, path)

	// The old table tablet app still calls /api/table/{n}/menu; it maps
	// onto the available-only menu listing.
	if strings.HasPrefix(path, "/api/table/") && strings.HasSuffix(path, "/menu") {
		r.URL.Path = "/api/menus"
		r.URL.RawQuery = "available=true"
		log.Printf("[GATEWAY] Rewrote table menu path to: %s", r.URL.Path)
		g.ProxyRequest(w, r, g.config.OrderSvcURL)
		return
	}

	if path == "/api/menu" || path == "/api/menu/" {
		r.URL.Path = "/api/menus"
		log.Printf("[GATEWAY] Rewriting %s to /api/menus", path)
		g.ProxyRequest(w, r, g.config.OrderSvcURL)
		return
	}

	if strings.HasPrefix(path, "/api/orders") ||
		strings.HasPrefix(path, "/api/menus") ||
		strings.HasPrefix(path, "/api/carts") {
		g.ProxyRequest(w, r, g.config.OrderSvcURL)
		return
	}

	if strings.HasPrefix(path, "/api/tickets") || strings.HasPrefix(path, "/api/chefs") {
		g.ProxyRequest(w, r, g.config.KitchenSvcURL)
		return
	}

	if strings.HasPrefix(path, "/api/stock") ||
		strings.HasPrefix(path, "/api/ingredients") ||
		strings.HasPrefix(path, "/api/suppliers") ||
		strings.HasPrefix(path, "/api/purchase-orders") ||
		strings.HasPrefix(path, "/api/grocer") {
		g.ProxyRequest(w, r, g.config.InventorySvcURL)
		return
	}

	if strings.HasPrefix(path, "/api/loyalty") {
		g.ProxyRequest(w, r, g.config.LoyaltySvcURL)
		return
	}

	if strings.HasPrefix(path, "/api/") {
		log.Printf("[GATEWAY] Unmatched API route: %s", path)
		http.Error(w, "API route not found", http.StatusNotFound)
		return
	}

	http.ServeFile(w, r, "./frontend/index.html")
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("./frontend/"))))
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}
