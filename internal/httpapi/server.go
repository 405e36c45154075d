package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/patrik-rangel/hotel-data-generator/internal/domain/entities"
	"github.com/patrik-rangel/hotel-data-generator/internal/domain/services"
	"github.com/patrik-rangel/hotel-data-generator/internal/resources/excel"
)

const (
	defaultPageSize = 100
	maxPageSize     = 1000
)

type RequestObserver interface {
	ObserveRequest(route string, status int)
}

// Server expõe o snapshot atual somente para leitura, mais o POST /regenerate.
type Server struct {
	store    *services.SnapshotStore
	observer RequestObserver
	logger   *zap.Logger
}

func NewServer(store *services.SnapshotStore, observer RequestObserver, logger *zap.Logger) *Server {
	return &Server{store: store, observer: observer, logger: logger}
}

func (s *Server) RegisterRoutes(r chi.Router) {
	if s.observer != nil {
		r.Use(s.observe)
	}

	r.Get("/snapshot", s.handleManifest)
	r.Post("/regenerate", s.handleRegenerate)
	r.Get("/summary", s.handleSummary)

	r.Get("/devices", s.handleDevices)
	r.Get("/rooms", s.handleRooms)
	r.Get("/operations", s.handleOperations)
	r.Get("/adjustments", s.handleAdjustments)

	r.Get("/fault-warnings", s.fixture(func(snap *entities.Snapshot) any { return snap.FaultWarnings }))
	r.Get("/device-linkages", s.fixture(func(snap *entities.Snapshot) any { return snap.DeviceLinkages }))
	r.Get("/users", s.fixture(func(snap *entities.Snapshot) any { return snap.Users }))
	r.Get("/organization-units", s.fixture(func(snap *entities.Snapshot) any { return snap.OrganizationUnits }))
	r.Get("/safety-events", s.fixture(func(snap *entities.Snapshot) any { return snap.SafetyEvents }))
	r.Get("/inspection-records", s.fixture(func(snap *entities.Snapshot) any { return snap.InspectionRecords }))
	r.Get("/rectification-items", s.fixture(func(snap *entities.Snapshot) any { return snap.RectificationItems }))

	r.Get("/export/adjustments.xlsx", s.handleExportAdjustments)
	r.Get("/export/operations.xlsx", s.handleExportOperations)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.observer.ObserveRequest(route, status)
	})
}

func (s *Server) snapshot(w http.ResponseWriter) (*entities.Snapshot, bool) {
	snap, err := s.store.Current()
	if err != nil {
		if errors.Is(err, services.ErrSnapshotNotFound) {
			writeError(w, http.StatusServiceUnavailable, "snapshot not generated yet")
			return nil, false
		}
		writeError(w, http.StatusInternalServerError, "failed to load snapshot")
		return nil, false
	}
	return snap, true
}

func (s *Server) fixture(get func(*entities.Snapshot) any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		snap, ok := s.snapshot(w)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, get(snap))
	}
}

func (s *Server) handleManifest(w http.ResponseWriter, _ *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, snap.Manifest())
}

func (s *Server) handleRegenerate(w http.ResponseWriter, r *http.Request) {
	var seed int64
	if v := r.URL.Query().Get("seed"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid seed parameter")
			return
		}
		seed = parsed
	}
	snap := s.store.Regenerate(seed)
	writeJSON(w, http.StatusCreated, snap.Manifest())
}

func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, services.Summarize(snap))
}

// intParam devolve (valor, presente, erro).
func intParam(r *http.Request, name string) (int, bool, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(v)
	return n, true, err
}

func (s *Server) handleDevices(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	floor, hasFloor, err := intParam(r, "floor")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid floor parameter")
		return
	}
	q := r.URL.Query()
	deviceType := entities.DeviceType(q.Get("type"))
	category := entities.DeviceCategory(q.Get("category"))
	room := q.Get("room")

	out := make([]entities.Device, 0, len(snap.Devices))
	for _, d := range snap.Devices {
		if deviceType != "" && d.Type != deviceType {
			continue
		}
		if category != "" && d.Category != category {
			continue
		}
		if hasFloor && d.Floor != floor {
			continue
		}
		if room != "" && d.RoomNumber != room {
			continue
		}
		out = append(out, d)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRooms(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	floor, hasFloor, err := intParam(r, "floor")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid floor parameter")
		return
	}
	status := entities.RoomStatus(r.URL.Query().Get("status"))
	roomType := entities.RoomType(r.URL.Query().Get("type"))

	out := make([]entities.Room, 0, len(snap.Rooms))
	for _, room := range snap.Rooms {
		if hasFloor && room.Floor != floor {
			continue
		}
		if status != "" && room.Status != status {
			continue
		}
		if roomType != "" && room.Type != roomType {
			continue
		}
		out = append(out, room)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleOperations(w http.ResponseWriter, _ *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, snap.Operations)
}

type adjustmentPage struct {
	Total  int                         `json:"total"`
	Offset int                         `json:"offset"`
	Limit  int                         `json:"limit"`
	Items  []entities.DeviceAdjustment `json:"items"`
}

func (s *Server) handleAdjustments(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}

	limit, hasLimit, err := intParam(r, "limit")
	if err != nil || (hasLimit && limit <= 0) {
		writeError(w, http.StatusBadRequest, "invalid limit parameter")
		return
	}
	if !hasLimit {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset, _, err := intParam(r, "offset")
	if err != nil || offset < 0 {
		writeError(w, http.StatusBadRequest, "invalid offset parameter")
		return
	}

	q := r.URL.Query()
	adjType := entities.AdjustmentType(q.Get("type"))
	actor := entities.Actor(q.Get("actor"))
	room := q.Get("room")

	filtered := make([]entities.DeviceAdjustment, 0)
	for _, a := range snap.Adjustments {
		if adjType != "" && a.AdjustmentType != adjType {
			continue
		}
		if actor != "" && a.AdjustedBy != actor {
			continue
		}
		if room != "" && a.RoomNumber != room {
			continue
		}
		filtered = append(filtered, a)
	}

	page := adjustmentPage{Total: len(filtered), Offset: offset, Limit: limit, Items: []entities.DeviceAdjustment{}}
	if offset < len(filtered) {
		end := min(offset+limit, len(filtered))
		page.Items = filtered[offset:end]
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) writeWorkbook(w http.ResponseWriter, filename string, body []byte, err error) {
	if err != nil {
		s.logger.Error("Falha ao gerar planilha", zap.String("file", filename), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to build workbook")
		return
	}
	w.Header().Set("Content-Type", excel.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (s *Server) handleExportAdjustments(w http.ResponseWriter, _ *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	body, err := excel.AdjustmentsWorkbook(snap.Adjustments)
	s.writeWorkbook(w, "device-adjustments.xlsx", body, err)
}

func (s *Server) handleExportOperations(w http.ResponseWriter, _ *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	body, err := excel.OperationsWorkbook(snap.Operations)
	s.writeWorkbook(w, "operations.xlsx", body, err)
}
