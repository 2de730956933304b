// Command devstore serves the backing-store contract from memory. It exists
// for frontend work and CLI testing when no postgres instance is around; the
// data resets on every start.
package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/ChromaDiv/supply-chain-app/internal/domain"
	"github.com/ChromaDiv/supply-chain-app/pkg/logger"
)

type memStore struct {
	mu        sync.Mutex
	products  []domain.Product
	suppliers []domain.SupplierRecord
	nextID    int64
}

func newMemStore() *memStore {
	supplierID := int64(1)
	return &memStore{
		products: []domain.Product{
			{ID: 1, SKU: "COT-BLU-001", Name: "Blue Cotton Roll", CurrentStock: 100, ReorderPoint: 40,
				UnitCost: decimal.RequireFromString("12.50"), LeadTimeDays: 5, SupplierID: &supplierID},
			{ID: 2, SKU: "SILK-RED-002", Name: "Red Silk Sheet", CurrentStock: 15, ReorderPoint: 20,
				UnitCost: decimal.RequireFromString("25.00"), LeadTimeDays: 5, SupplierID: &supplierID},
		},
		suppliers: []domain.SupplierRecord{
			{ID: 1, Name: "Global Fabrics Inc", ContactEmail: "orders@globalfabrics.example", LeadTimeDays: 14},
		},
		nextID: 3,
	}
}

func (s *memStore) handleInventory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.products)
}

func (s *memStore) handleSuppliers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.suppliers)
}

func (s *memStore) handleReorder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID int64 `json:"product_id"`
		Quantity  int   `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID != req.ProductID {
			continue
		}
		wait := s.products[i].LeadTimeDays
		if wait <= 0 {
			wait = 7
		}
		eta := time.Now().AddDate(0, 0, wait)
		s.products[i].CurrentStock += req.Quantity
		s.products[i].NextDelivery = &eta
		writeJSON(w, http.StatusOK, map[string]string{"eta": eta.Format("January 02, 2006")})
		return
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
}

func (s *memStore) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextID
	s.nextID++
	if p.LeadTimeDays <= 0 {
		p.LeadTimeDays = 7
	}
	s.products = append(s.products, p)
	writeJSON(w, http.StatusCreated, p)
}

func (s *memStore) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product id"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			break
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newRouter(s *memStore) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "Supply Chain API is Online"})
	}).Methods("GET")
	r.HandleFunc("/inventory", s.handleInventory).Methods("GET")
	r.HandleFunc("/suppliers", s.handleSuppliers).Methods("GET")
	r.HandleFunc("/reorder", s.handleReorder).Methods("POST")
	r.HandleFunc("/products", s.handleCreateProduct).Methods("POST")
	r.HandleFunc("/products/{id}", s.handleDeleteProduct).Methods("DELETE")
	return r
}

func main() {
	addr := flag.String("addr", ":8000", "listen address")
	flag.Parse()

	r := newRouter(newMemStore())

	logger.Log.Info().Str("addr", *addr).Msg("devstore listening")
	if err := http.ListenAndServe(*addr, r); err != nil {
		logger.Log.Fatal().Err(err).Msg("devstore stopped")
	}
}
