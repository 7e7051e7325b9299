package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
	"github.com/spf13/cobra"

	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/config"
	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/gantt"
	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/logging"
	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/process"
	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/store"
	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/pkg/bridge"
)

var (
	serveOpen bool

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server exposing /simulate, /history, and /healthz",
		RunE:  runServe,
	}
)

func init() {
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open /healthz in the default browser once listening")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logging.BuildLogger(cfg.LogLevel)

	var hist *store.Store
	if cfg.SQLitePath != "" {
		hist, err = store.Open(cfg.SQLitePath)
		if err != nil {
			return err
		}
		defer hist.Close()
	}

	s := &server{
		cfg:       cfg,
		log:       log,
		startedAt: time.Now(),
		host:      &bridge.Host{Log: log, Store: hist, Now: func() int64 { return time.Now().Unix() }},
	}

	r := chi.NewRouter()
	r.Post("/simulate", s.handleSimulate)
	r.Get("/history", s.handleListHistory)
	r.Get("/history/{runID}", s.handleGetHistory)
	r.Get("/healthz", s.handleHealthz)

	if serveOpen {
		go func() {
			time.Sleep(200 * time.Millisecond)
			_ = browser.OpenURL("http://" + addrForBrowser(cfg.ListenAddr) + "/healthz")
		}()
	}

	log.Info("listening", logging.StringAttr("addr", cfg.ListenAddr))
	return http.ListenAndServe(cfg.ListenAddr, r)
}

func addrForBrowser(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}

type server struct {
	cfg       *config.Config
	log       *slog.Logger
	startedAt time.Time
	host      *bridge.Host
}

type simulateRequest struct {
	Processes []workloadRecord `json:"processes"`
	Algorithm string           `json:"algorithm"`
	Quantum   int              `json:"quantum"`
}

type simulateResponse struct {
	Processes  []process.Process `json:"processes"`
	Gantt      []gantt.Entry     `json:"gantt"`
	Overflowed bool              `json:"overflowed"`
}

func (s *server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	algo, err := parseAlgorithmName(req.Algorithm)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	processes := make([]process.Process, len(req.Processes))
	for i, rec := range req.Processes {
		processes[i] = process.Process{PID: rec.PID, AT: rec.AT, BT: rec.BT, Priority: rec.Priority}
	}

	quantum := req.Quantum
	if quantum == 0 {
		quantum = s.cfg.QuantumOrDefault(2)
	}

	maxLogs := s.cfg.MaxLogs
	if maxLogs <= 0 {
		maxLogs = 4096
	}
	logBuffer := make([]gantt.Entry, maxLogs)

	n := s.host.RunScheduler(processes, int(algo), quantum, logBuffer, maxLogs)
	if n < 0 {
		http.Error(w, "bad input", http.StatusBadRequest)
		return
	}

	resp := simulateResponse{
		Processes: processes,
		Gantt:      logBuffer[:n],
		Overflowed: n == maxLogs,
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	if s.host.Store == nil {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]store.Run{})
		return
	}
	runs, err := s.host.Store.ListRuns(50)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(runs)
}

func (s *server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")
	if s.host.Store == nil {
		http.NotFound(w, r)
		return
	}
	run, ok, err := s.host.Store.GetRun(runID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(run)
}

func (s *server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	type healthz struct {
		Status     string  `json:"status"`
		UptimeSecs float64 `json:"uptime_seconds"`
		CPUPercent float64 `json:"host_cpu_percent"`
		MemPercent float64 `json:"host_mem_percent"`
	}

	resp := healthz{Status: "ok", UptimeSecs: time.Since(s.startedAt).Seconds()}

	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		resp.CPUPercent = pcts[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		resp.MemPercent = vm.UsedPercent
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
