// Package api exposes a ledger and its program over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"ledgercell.dev/ledgercell"
	"ledgercell.dev/ledgercell/internal/ledger"
)

// codeToStatus maps invocation failure codes to HTTP statuses. Statuses are
// numbers rather than net/http constants to keep the table easy to scan.
var codeToStatus = map[ledgercell.Code]int{
	ledgercell.CodeNotAuthorized:    403,
	ledgercell.CodeInvalidEncoding:  400,
	ledgercell.CodeMalformedPayload: 400,
	ledgercell.CodeCapacityExceeded: 413,
	ledgercell.CodeMissingAccount:   400,
}

type server struct {
	store           *ledger.Ledger
	processor       *ledgercell.Processor
	defaultCapacity int
	logger          zerolog.Logger
}

// NewHandler wires the account routes into a router and exposes a health
// check. Invocations run through a processor that logs applied updates with
// the supplied logger.
func NewHandler(store *ledger.Ledger, defaultCapacity int, logger zerolog.Logger) http.Handler {
	s := &server{
		store:           store,
		processor:       ledgercell.NewProcessor(ledgercell.WithLogger(logger)),
		defaultCapacity: defaultCapacity,
		logger:          logger,
	}

	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Post("/accounts", s.createAccount)
	r.Get("/accounts/{address}", s.getAccount)
	r.Post("/accounts/{address}/invoke", s.invoke)
	return r
}

type createRequest struct {
	Capacity *int `json:"capacity"`
}

type createResponse struct {
	Address string `json:"address"`
}

func (s *server) createAccount(w http.ResponseWriter, r *http.Request) {
	capacity := s.defaultCapacity
	if r.ContentLength != 0 {
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid create request: "+err.Error())
			return
		}
		if req.Capacity != nil {
			capacity = *req.Capacity
		}
	}
	addr, err := s.store.Create(capacity)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Info().Str("address", addr.String()).Int("capacity", capacity).Msg("allocated account")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(createResponse{Address: addr.String()})
}

type accountResponse struct {
	Address     string `json:"address"`
	Owner       string `json:"owner"`
	Capacity    int    `json:"capacity"`
	Counter     uint32 `json:"counter"`
	CounterSeed uint32 `json:"counter_seed"`
	Name        string `json:"name"`
}

func (s *server) getAccount(w http.ResponseWriter, r *http.Request) {
	addr, ok := s.parseAddress(w, r)
	if !ok {
		return
	}
	snap, err := s.store.Snapshot(addr)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "account not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	record := ledgercell.DecodeRecord(snap.Data)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(accountResponse{
		Address:     addr.String(),
		Owner:       snap.Owner.String(),
		Capacity:    len(snap.Data),
		Counter:     record.Counter,
		CounterSeed: record.CounterSeed,
		Name:        record.Name,
	})
}

func (s *server) invoke(w http.ResponseWriter, r *http.Request) {
	addr, ok := s.parseAddress(w, r)
	if !ok {
		return
	}
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "read payload: "+err.Error())
		return
	}
	err = s.store.With(addr, func(account *ledgercell.Account) error {
		return s.processor.Process(s.store.Program(), []*ledgercell.Account{account}, payload)
	})
	if err == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if errors.Is(err, ledger.ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, "account not found")
		return
	}
	if lerr, ok := ledgercell.AsError(err); ok {
		status, mapped := codeToStatus[lerr.Code()]
		if !mapped {
			status = http.StatusInternalServerError
		}
		writeFailure(w, status, lerr)
		return
	}
	writeJSONError(w, http.StatusInternalServerError, err.Error())
}

func (s *server) parseAddress(w http.ResponseWriter, r *http.Request) (ledgercell.Identity, bool) {
	addr, err := ledgercell.ParseIdentity(chi.URLParam(r, "address"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return ledgercell.Identity{}, false
	}
	return addr, true
}

type failureResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeFailure(w http.ResponseWriter, status int, lerr *ledgercell.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(failureResponse{
		Code:    lerr.Code().String(),
		Message: lerr.Error(),
	})
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(failureResponse{Message: message})
}
