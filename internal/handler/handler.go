// Package handler exposes the estimator over HTTP with fasthttp.
package handler

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"benefits-engine/internal/engine"
	"benefits-engine/internal/model"
	"benefits-engine/internal/ratetable"
)

const (
	PathEstimate   = "/api/calculate-benefits-eligibility"
	PathCompare    = "/api/compare-scenarios"
	PathRateTables = "/api/rate-tables"
	PathHealth     = "/healthz"
)

type Handler struct {
	table *ratetable.Table
	log   *zap.Logger
}

func New(table *ratetable.Table, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{table: table, log: log}
}

// Serve is the fasthttp.RequestHandler for every route.
func (h *Handler) Serve(ctx *fasthttp.RequestCtx) {
	start := time.Now()

	switch string(ctx.Path()) {
	case PathEstimate:
		h.handleEstimate(ctx)
	case PathCompare:
		h.handleCompare(ctx)
	case PathRateTables:
		h.handleRateTables(ctx)
	case PathHealth:
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}

	h.log.Debug("Handled request",
		zap.ByteString("method", ctx.Method()),
		zap.ByteString("path", ctx.Path()),
		zap.Int("status", ctx.Response.StatusCode()),
		zap.Duration("elapsed", time.Since(start)))
}

func (h *Handler) handleEstimate(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusBadRequest, "Method not allowed")
		return
	}

	var req model.EstimateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp := engine.Process(h.table, &req)
	h.log.Info("Estimate calculated",
		zap.String("calculation_id", resp.CalculationMetadata.CalculationID),
		zap.String("tenant_id", req.TenantID),
		zap.String("outcome", resp.CalculationMetadata.CalculationOutcome),
		zap.Int("recommendations", len(resp.CalculationResult.Recommendations)))

	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (h *Handler) handleCompare(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusBadRequest, "Method not allowed")
		return
	}

	var req model.CompareRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	cmp, err := engine.Compare(h.table, req.Baseline, req.Scenario)
	if err != nil {
		h.log.Error("Comparison failed", zap.String("tenant_id", req.TenantID), zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "Comparison failed")
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, cmp)
}

func (h *Handler) handleRateTables(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusBadRequest, "Method not allowed")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, h.table)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Encoding failed")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
