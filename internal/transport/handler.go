// Package transport exposes the validator read API over HTTP.
package transport

import (
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/pow"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/validation"
)

const (
	defaultRejectionLimit = 100
	maxRejectionLimit     = 1000
	maxTxBodyBytes        = 1 << 20
)

// Handler serves the JSON routes of the API gateway.
type Handler struct {
	params  *chaincfg.Params
	network model.Network
	reader  VerdictReader
	sporks  SporkLister
	checker TxChecker
	health  HealthChecker
	codec   gwruntime.Marshaler
	logger  *zap.Logger
}

// NewHandler builds a Handler.
func NewHandler(
	params *chaincfg.Params,
	reader VerdictReader,
	sporks SporkLister,
	checker TxChecker,
	health HealthChecker,
	logger *zap.Logger,
) (*Handler, error) {
	if params == nil {
		return nil, errors.New("transport handler params is required")
	}
	if reader == nil || sporks == nil || checker == nil || health == nil {
		return nil, errors.New("transport handler dependencies are required")
	}
	return &Handler{
		params:  params,
		network: params.Name,
		reader:  reader,
		sporks:  sporks,
		checker: checker,
		health:  health,
		codec:   &gwruntime.JSONBuiltin{},
		logger:  logger.With(zap.String("network", string(params.Name))),
	}, nil
}

// Register mounts the routes on mux.
func (h *Handler) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		method  string
		pattern string
		handler gwruntime.HandlerFunc
	}{
		{method: http.MethodGet, pattern: "/v1/health", handler: h.healthCheck},
		{method: http.MethodGet, pattern: "/v1/sporks", handler: h.listSporks},
		{method: http.MethodGet, pattern: "/v1/blocks/{hash}/verdict", handler: h.blockVerdict},
		{method: http.MethodGet, pattern: "/v1/rejections/{reason}", handler: h.rejections},
		{method: http.MethodPost, pattern: "/v1/tx/check", handler: h.checkTx},
	}
	for _, route := range routes {
		if err := mux.HandlePath(route.method, route.pattern, route.handler); err != nil {
			return err
		}
	}
	return nil
}

type (
	sporkResponse struct {
		ID     int32  `json:"id"`
		Name   string `json:"name"`
		Value  int64  `json:"value"`
		Active bool   `json:"active"`
	}
	verdictResponse struct {
		Network      string    `json:"network"`
		Height       uint64    `json:"height"`
		Hash         string    `json:"hash"`
		PrevHash     string    `json:"prev_hash"`
		Track        string    `json:"track"`
		Timestamp    time.Time `json:"timestamp"`
		Bits         string    `json:"bits"`
		ExpectedBits string    `json:"expected_bits"`
		Difficulty   float64   `json:"difficulty"`
		Signer       string    `json:"signer,omitempty"`
		TxCount      uint32    `json:"tx_count"`
		Valid        bool      `json:"valid"`
		Reason       string    `json:"reason,omitempty"`
		ValidatedAt  time.Time `json:"validated_at"`
	}
	rejectionResponse struct {
		BlockHeight uint64    `json:"block_height"`
		BlockHash   string    `json:"block_hash"`
		TxID        string    `json:"txid"`
		Reason      string    `json:"reason"`
		Penalizable bool      `json:"penalizable"`
		RejectedAt  time.Time `json:"rejected_at"`
	}
	checkTxRequest struct {
		Hex string `json:"hex"`
	}
	checkTxResponse struct {
		TxID        string `json:"txid"`
		Valid       bool   `json:"valid"`
		Reason      string `json:"reason,omitempty"`
		Penalizable bool   `json:"penalizable,omitempty"`
		Message     string `json:"message,omitempty"`
	}
	errorResponse struct {
		Error string `json:"error"`
	}
)

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	resp, err := h.health.Check(r.Context(), &healthpb.HealthCheckRequest{})
	if err != nil {
		h.writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	status := http.StatusOK
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		status = http.StatusServiceUnavailable
	}
	h.writeJSON(w, status, map[string]string{"status": resp.GetStatus().String()})
}

func (h *Handler) listSporks(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	entries := h.sporks.All()
	out := make([]sporkResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, sporkResponse{ID: int32(e.ID), Name: e.Name, Value: e.Value, Active: e.Active})
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) blockVerdict(w http.ResponseWriter, r *http.Request, params map[string]string) {
	hash := params["hash"]
	if len(hash) != 64 {
		h.writeError(w, http.StatusBadRequest, errors.New("hash must be 64 hex characters"))
		return
	}
	if _, err := hex.DecodeString(hash); err != nil {
		h.writeError(w, http.StatusBadRequest, errors.New("hash must be 64 hex characters"))
		return
	}

	v, err := h.reader.VerdictByHash(r.Context(), h.network, hash)
	if errors.Is(err, clickhouse.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		h.logger.Error("read verdict", zap.String("hash", hash), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, errors.New("verdict lookup failed"))
		return
	}

	h.writeJSON(w, http.StatusOK, verdictResponse{
		Network:      string(v.Network),
		Height:       v.Height,
		Hash:         v.Hash,
		PrevHash:     v.PrevHash,
		Track:        v.Track.String(),
		Timestamp:    v.Timestamp,
		Bits:         strconv.FormatUint(uint64(v.Bits), 16),
		ExpectedBits: strconv.FormatUint(uint64(v.ExpectedBits), 16),
		Difficulty:   pow.TargetToDifficulty(v.Bits, h.params, v.Track),
		Signer:       v.Signer,
		TxCount:      v.TxCount,
		Valid:        v.Valid,
		Reason:       v.Reason,
		ValidatedAt:  v.ValidatedAt,
	})
}

func (h *Handler) rejections(w http.ResponseWriter, r *http.Request, params map[string]string) {
	limit := defaultRejectionLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.writeError(w, http.StatusBadRequest, errors.New("limit must be a positive integer"))
			return
		}
		limit = min(n, maxRejectionLimit)
	}

	rows, err := h.reader.RejectionsByReason(r.Context(), h.network, params["reason"], limit)
	if err != nil {
		h.logger.Error("read rejections", zap.String("reason", params["reason"]), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, errors.New("rejection lookup failed"))
		return
	}

	out := make([]rejectionResponse, 0, len(rows))
	for _, rej := range rows {
		out = append(out, rejectionResponse{
			BlockHeight: rej.BlockHeight,
			BlockHash:   rej.BlockHash,
			TxID:        rej.TxID,
			Reason:      rej.Reason,
			Penalizable: rej.Penalizable,
			RejectedAt:  rej.RejectedAt,
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) checkTx(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxTxBodyBytes+1))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(body) > maxTxBodyBytes {
		h.writeError(w, http.StatusRequestEntityTooLarge, errors.New("request body too large"))
		return
	}

	var req checkTxRequest
	if err := h.codec.Unmarshal(body, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	raw, err := hex.DecodeString(req.Hex)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, errors.New("hex must be a hex-encoded transaction"))
		return
	}
	tx, err := model.DecodeTransaction(raw)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	resp := checkTxResponse{TxID: tx.Hash().String(), Valid: true}
	if err := h.checker.CheckStructure(tx, true); err != nil {
		resp.Valid = false
		resp.Reason = validation.ReasonOf(err)
		resp.Penalizable = validation.IsPenalizable(err)
		resp.Message = err.Error()
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := h.codec.Marshal(v)
	if err != nil {
		h.logger.Error("marshal response", zap.Error(err))
		status = http.StatusInternalServerError
		body = []byte(`{"error":"response encoding failed"}`)
	}
	w.Header().Set("Content-Type", h.codec.ContentType(v))
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}
