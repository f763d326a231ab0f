package simplify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/kmap/kmap"
	"github.com/katalvlaran/kmap/literal"
	"github.com/katalvlaran/kmap/minimize"
	"github.com/katalvlaran/kmap/verify"
)

// Service simplifies requests. Its fields are read-only after New.
type Service struct {
	logger     *slog.Logger
	minimizer  minimize.Minimizer
	checker    verify.Checker
	registerer prometheus.Registerer
	names      []string
	validate   *validator.Validate
	metrics    *metrics
}

// New returns a Service with the SAT checker, the Quine-McCluskey
// minimizer, a discarding logger and a private metrics registry,
// each replaceable by opts.
func New(opts ...Option) *Service {
	s := &Service{
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		minimizer:  minimize.QuineMcCluskey{},
		checker:    verify.SAT{},
		registerer: prometheus.NewRegistry(),
		validate:   validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics = newMetrics(s.registerer)

	return s
}

// Simplify processes req. Validation failures wrap ErrInvalidRequest or a
// truthtable sentinel; a checker mismatch wraps ErrNotEquivalent.
// Identical requests give identical results apart from ID.
func (s *Service) Simplify(ctx context.Context, req Request) (*Result, error) {
	form, err := minimize.ParseForm(defaultForm(req.Form))
	formLabel := form.String()
	if err != nil {
		formLabel = "unknown"
	}
	res, err := s.simplify(ctx, req, form)
	s.metrics.requests.WithLabelValues(formLabel, outcome(err)).Inc()

	return res, err
}

func (s *Service) simplify(ctx context.Context, req Request, form minimize.Form) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	id := uuid.NewString()
	log := s.logger.With("request_id", id)

	if err := s.validate.Struct(req); err != nil {
		log.Debug("request rejected", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	m, err := kmap.Build(req.Variables, req.Minterms, req.DontCares)
	if err != nil {
		log.Debug("build failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	s.metrics.groups.Observe(float64(len(m.Groups)))
	log.Debug("map built", "variables", m.Vars, "groups", len(m.Groups))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	vars := s.varNames(req.Variables)
	expr, err := s.minimizer.Minimize(vars, form, req.Minterms, req.DontCares)
	if err != nil {
		return nil, fmt.Errorf("simplify: minimize: %w", err)
	}
	s.metrics.literals.Observe(float64(expr.Literals()))
	symbolic := expr.String()
	log.Debug("minimized", "form", form, "expression", symbolic)

	lit, err := literal.ToLiteralFormStrict(symbolic, vars)
	if err != nil {
		return nil, fmt.Errorf("simplify: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	verified := false
	if s.checker != nil {
		ok, err := s.checker.Equivalent(expr, req.Minterms, req.DontCares)
		if err != nil {
			return nil, fmt.Errorf("simplify: verify: %w", err)
		}
		if !ok {
			log.Warn("expression not equivalent", "expression", symbolic)
			return nil, fmt.Errorf("%w: %s", ErrNotEquivalent, symbolic)
		}
		verified = true
	}

	groups := make([][]int, len(m.Groups))
	for i, g := range m.Groups {
		groups[i] = m.Indices(g)
	}
	log.Info("simplified", "form", form, "literal", lit, "groups", len(groups), "verified", verified)

	return &Result{
		ID:         id,
		Map:        m,
		Expression: expr,
		Symbolic:   symbolic,
		Literal:    lit,
		Form:       form,
		Groups:     groups,
		Verified:   verified,
	}, nil
}

// VarNames returns the names a request for n variables is reported with.
func (s *Service) VarNames(n int) []string { return s.varNames(n) }

func (s *Service) varNames(n int) []string {
	if len(s.names) >= n {
		return append([]string(nil), s.names[:n]...)
	}

	return minimize.DefaultVars(n)
}

func defaultForm(f string) string {
	if f == "" {
		return minimize.SOP.String()
	}

	return f
}

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return outcomeCanceled
	case errors.Is(err, ErrInvalidRequest):
		return outcomeInvalid
	case errors.Is(err, ErrNotEquivalent):
		return outcomeNotEquivalent
	}

	return outcomeInternalFailed
}
