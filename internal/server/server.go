package server

import (
	"context"
	"time"

	gojson "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/cskerritt/economic-loss-calculator-sub000/internal/calculation"
	"github.com/cskerritt/economic-loss-calculator-sub000/internal/config"
	"github.com/cskerritt/economic-loss-calculator-sub000/internal/domain"
)

// Server exposes the damages engine over HTTP as a stateless JSON API. Every
// request carries the full case document; nothing is persisted between calls.
type Server struct {
	engine *calculation.CalculationEngine
	parser *config.InputParser
	logger calculation.Logger
}

// New creates a Server around an engine.
func New(engine *calculation.CalculationEngine) *Server {
	return &Server{
		engine: engine,
		parser: config.NewInputParser(),
		logger: calculation.NopLogger{},
	}
}

// SetLogger sets the request logger. A nil logger restores the no-op default.
func (s *Server) SetLogger(l calculation.Logger) {
	if l == nil {
		s.logger = calculation.NopLogger{}
		return
	}
	s.logger = l
}

// CalculationResponse wraps one engine run with its run identity.
type CalculationResponse struct {
	ID        string             `json:"id"`
	ElapsedMS int64              `json:"elapsed_ms"`
	Result    *domain.CaseResult `json:"result"`
}

// ScheduleResponse carries one detailed schedule expansion.
type ScheduleResponse struct {
	ID        string                      `json:"id"`
	Kind      string                      `json:"kind"`
	Earnings  []domain.EarningsScheduleRow  `json:"earnings,omitempty"`
	Household []domain.HouseholdScheduleRow `json:"household,omitempty"`
	LCP       []domain.LcpScheduleRow       `json:"lcp,omitempty"`
}

// ErrorResponse is the JSON error payload.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Handler routes API requests. Registered as the fasthttp request handler.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	switch {
	case path == "/healthz":
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok")
	case path == "/api/v1/calculate":
		s.handleCalculate(ctx)
	case path == "/api/v1/schedule":
		s.handleSchedule(ctx)
	default:
		s.writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func (s *Server) handleCalculate(ctx *fasthttp.RequestCtx) {
	c, ok := s.decodeCase(ctx)
	if !ok {
		return
	}

	start := time.Now()
	result, err := s.engine.RunCase(context.Background(), c)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, CalculationResponse{
		ID:        uuid.NewString(),
		ElapsedMS: time.Since(start).Milliseconds(),
		Result:    result,
	})
}

func (s *Server) handleSchedule(ctx *fasthttp.RequestCtx) {
	c, ok := s.decodeCase(ctx)
	if !ok {
		return
	}

	kind := string(ctx.QueryArgs().Peek("kind"))
	if kind == "" {
		kind = "earnings"
	}
	targetYear := ctx.QueryArgs().GetUintOrZero("year")

	resp := ScheduleResponse{ID: uuid.NewString(), Kind: kind}
	switch kind {
	case "earnings":
		resp.Earnings = s.engine.GenerateEarningsSchedule(c, targetYear)
	case "household":
		resp.Household = s.engine.GenerateHouseholdSchedule(c, targetYear)
	case "lcp":
		resp.LCP = s.engine.GenerateLcpSchedule(c, targetYear)
	default:
		s.writeError(ctx, fasthttp.StatusBadRequest, "kind must be earnings, household or lcp")
		return
	}
	s.writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (s *Server) decodeCase(ctx *fasthttp.RequestCtx) (*domain.Case, bool) {
	if !ctx.IsPost() {
		s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return nil, false
	}
	var c domain.Case
	if err := gojson.Unmarshal(ctx.PostBody(), &c); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return nil, false
	}
	if err := s.parser.ValidateCase(&c); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return nil, false
	}
	return &c, true
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, payload any) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	data, err := gojson.Marshal(payload)
	if err != nil {
		s.logger.Errorf("encode response: %v", err)
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetBody(data)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	s.logger.Warnf("request %s %s -> %d: %s", ctx.Method(), ctx.Path(), status, message)
	s.writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}

// ListenAndServe starts serving on addr and blocks.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Infof("damages API listening on %s", addr)
	return fasthttp.ListenAndServe(addr, s.Handler)
}
