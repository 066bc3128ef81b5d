package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// Load generator for the petcare API: browse the shop, add to cart, run the
// booking flow. Point it at a running api-server.

type SimConfig struct {
	APIBaseURL   string
	Duration     time.Duration
	Workers      int
	BrowseRatio  float64
	CartRatio    float64
	BookingRatio float64
}

type OperationMetrics struct {
	Total     int64
	Success   int64
	Rejected  int64
	Error     int64
	Latencies []time.Duration
	mu        sync.Mutex
}

func (om *OperationMetrics) Record(latency time.Duration, success bool, rejected bool) {
	atomic.AddInt64(&om.Total, 1)
	if success {
		atomic.AddInt64(&om.Success, 1)
	} else if rejected {
		atomic.AddInt64(&om.Rejected, 1)
	} else {
		atomic.AddInt64(&om.Error, 1)
	}

	om.mu.Lock()
	om.Latencies = append(om.Latencies, latency)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (avg, min, max, p50, p95 time.Duration) {
	om.mu.Lock()
	defer om.mu.Unlock()

	if len(om.Latencies) == 0 {
		return 0, 0, 0, 0, 0
	}

	latencies := make([]time.Duration, len(om.Latencies))
	copy(latencies, om.Latencies)

	sort.Slice(latencies, func(i, j int) bool {
		return latencies[i] < latencies[j]
	})

	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}

	avg = sum / time.Duration(len(latencies))
	min = latencies[0]
	max = latencies[len(latencies)-1]

	p50Idx := len(latencies) * 50 / 100
	if p50Idx >= len(latencies) {
		p50Idx = len(latencies) - 1
	}
	p50 = latencies[p50Idx]

	p95Idx := len(latencies) * 95 / 100
	if p95Idx >= len(latencies) {
		p95Idx = len(latencies) - 1
	}
	p95 = latencies[p95Idx]

	return avg, min, max, p50, p95
}

type Metrics struct {
	Browse  OperationMetrics
	Cart    OperationMetrics
	Booking OperationMetrics
}

type Simulator struct {
	config   SimConfig
	products []string
	client   *http.Client
	metrics  Metrics
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("simulator starting")

	cfg := loadConfig()
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	log.Printf("config: duration=%s workers=%d browse=%.2f cart=%.2f booking=%.2f",
		cfg.Duration, cfg.Workers, cfg.BrowseRatio, cfg.CartRatio, cfg.BookingRatio)

	sim := &Simulator{
		config: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	if err := sim.loadProducts(); err != nil {
		log.Fatalf("load products: %v", err)
	}
	log.Printf("loaded %d products", len(sim.products))

	sim.Run()
	sim.PrintReport()
}

func loadConfig() SimConfig {
	cfg := SimConfig{
		APIBaseURL:   getEnv("SIM_API_BASE_URL", "http://localhost:8080"),
		Duration:     getDuration("SIM_DURATION", 30*time.Second),
		Workers:      getInt("SIM_WORKERS", 10),
		BrowseRatio:  getFloat("SIM_BROWSE_RATIO", 0.5),
		CartRatio:    getFloat("SIM_CART_RATIO", 0.3),
		BookingRatio: getFloat("SIM_BOOKING_RATIO", 0.2),
	}

	// Normalize ratios
	total := cfg.BrowseRatio + cfg.CartRatio + cfg.BookingRatio
	if total > 0 {
		cfg.BrowseRatio /= total
		cfg.CartRatio /= total
		cfg.BookingRatio /= total
	}

	return cfg
}

func validateConfig(cfg SimConfig) error {
	if cfg.Workers <= 0 {
		return fmt.Errorf("SIM_WORKERS must be > 0")
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("SIM_DURATION must be > 0")
	}
	return nil
}

func (s *Simulator) loadProducts() error {
	resp, err := s.client.Get(s.config.APIBaseURL + "/products")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET /products: status %d", resp.StatusCode)
	}

	var products []struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return err
	}
	for _, p := range products {
		s.products = append(s.products, p.ID)
	}
	if len(s.products) == 0 {
		return fmt.Errorf("no products available")
	}
	return nil
}

func (s *Simulator) Run() {
	deadline := time.Now().Add(s.config.Duration)

	log.Printf("starting simulation for %s with %d workers", s.config.Duration, s.config.Workers)

	var wg sync.WaitGroup
	for i := 0; i < s.config.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			s.worker(workerID, deadline)
		}(i)
	}

	wg.Wait()
	log.Println("simulation complete")
}

func (s *Simulator) worker(workerID int, deadline time.Time) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(workerID)))

	petID := s.createPet(rng)

	for time.Now().Before(deadline) {
		r := rng.Float64()
		switch {
		case r < s.config.BrowseRatio:
			s.doBrowse(rng)
		case r < s.config.BrowseRatio+s.config.CartRatio:
			s.doCart(rng)
		default:
			s.doBooking(rng, petID)
		}
	}
}

var simPetNames = []string{"Milo", "Luna", "Rocky", "Bella", "Max", "Nala"}

func (s *Simulator) createPet(rng *rand.Rand) string {
	body := map[string]any{
		"name": simPetNames[rng.Intn(len(simPetNames))],
		"type": []string{"dog", "cat", "other"}[rng.Intn(3)],
	}

	status, resp := s.post("/pets", body)
	if status != http.StatusCreated {
		log.Printf("create pet failed: status %d", status)
		return ""
	}

	var pet struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(resp, &pet)
	return pet.ID
}

func (s *Simulator) doBrowse(rng *rand.Rand) {
	id := s.products[rng.Intn(len(s.products))]

	start := time.Now()
	resp, err := s.client.Get(s.config.APIBaseURL + "/products/" + id)
	latency := time.Since(start)

	if err != nil {
		s.metrics.Browse.Record(latency, false, false)
		return
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	s.metrics.Browse.Record(latency, resp.StatusCode == http.StatusOK, false)
}

func (s *Simulator) doCart(rng *rand.Rand) {
	body := map[string]any{
		"productId": s.products[rng.Intn(len(s.products))],
		"quantity":  rng.Intn(3) + 1,
	}

	start := time.Now()
	status, _ := s.post("/cart/items", body)
	latency := time.Since(start)

	s.metrics.Cart.Record(latency, status == http.StatusOK, status == http.StatusNotFound)
}

// doBooking runs the whole draft flow and measures the confirm call.
func (s *Simulator) doBooking(rng *rand.Rand, petID string) {
	if petID == "" {
		return
	}

	date := time.Now().AddDate(0, 0, rng.Intn(14)+1).Format("2006-01-02")
	times := []string{"09:00", "10:30", "12:00", "15:30"}
	reasons := []string{"General checkup", "Vaccination", "Deworming", "Follow-up"}

	patch := map[string]any{
		"selectedDate":   date,
		"selectedTime":   times[rng.Intn(len(times))],
		"selectedReason": reasons[rng.Intn(len(reasons))],
		"selectedPet":    petID,
	}
	if status, _ := s.patch("/booking/draft", patch); status != http.StatusOK {
		s.metrics.Booking.Record(0, false, false)
		return
	}

	start := time.Now()
	status, _ := s.post("/booking/confirm", nil)
	latency := time.Since(start)

	s.metrics.Booking.Record(latency, status == http.StatusCreated, status == http.StatusUnprocessableEntity)
}

func (s *Simulator) post(path string, body any) (int, []byte) {
	return s.send(http.MethodPost, path, body)
}

func (s *Simulator) patch(path string, body any) (int, []byte) {
	return s.send(http.MethodPatch, path, body)
}

func (s *Simulator) send(method, path string, body any) (int, []byte) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return 0, nil
		}
	} else {
		buf.WriteString("{}")
	}

	req, err := http.NewRequest(method, s.config.APIBaseURL+path, &buf)
	if err != nil {
		return 0, nil
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, nil
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, data
}

func (s *Simulator) PrintReport() {
	fmt.Println()
	fmt.Println("=== Simulation Report ===")
	printOp("browse", &s.metrics.Browse)
	printOp("cart", &s.metrics.Cart)
	printOp("booking", &s.metrics.Booking)
}

func printOp(name string, om *OperationMetrics) {
	total := atomic.LoadInt64(&om.Total)
	if total == 0 {
		fmt.Printf("%-8s no operations\n", name)
		return
	}

	avg, min, max, p50, p95 := om.Stats()
	fmt.Printf("%-8s total=%d success=%d rejected=%d error=%d\n",
		name, total,
		atomic.LoadInt64(&om.Success),
		atomic.LoadInt64(&om.Rejected),
		atomic.LoadInt64(&om.Error))
	fmt.Printf("         avg=%s min=%s max=%s p50=%s p95=%s\n", avg, min, max, p50, p95)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
