// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/respond"
)

// checkTimeout bounds every readiness probe.
const checkTimeout = 2 * time.Second

// Check is one named readiness probe.
type Check struct {
	Name  string
	Probe func(ctx context.Context) error
}

// HealthDependencies holds the injectable dependency checkers for the /ready endpoint.
type HealthDependencies struct {
	// Checks run concurrently; any failure marks the service degraded.
	// Typically the content store and, when configured, Redis.
	Checks []Check
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health (Liveness probe).
func (handler *healthHandler) liveness(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{constants.FieldStatus: "ok"})
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// readiness handles GET /ready (Readiness probe).
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	checks := handler.dependencies.Checks
	results := make([]checkResult, len(checks))

	// Probe failures are recorded, not returned, so every check reports.
	group, groupCtx := errgroup.WithContext(request.Context())
	for index, check := range checks {
		group.Go(func() error {
			probeCtx, cancel := context.WithTimeout(groupCtx, checkTimeout)
			defer cancel()

			result := checkResult{Name: check.Name, IsOK: true}
			if err := check.Probe(probeCtx); err != nil {
				result.IsOK = false
				result.Error = err.Error()
				handler.logger.Error("readiness_check_failed", slog.String("dependency", check.Name), slog.Any("error", err))
			}
			results[index] = result
			return nil
		})
	}
	_ = group.Wait()

	responseStatus := "ready"
	httpStatus := http.StatusOK
	for _, result := range results {
		if !result.IsOK {
			responseStatus = "degraded"
			httpStatus = http.StatusServiceUnavailable
		}
	}

	respond.JSON(writer, httpStatus, respond.SuccessEnvelope{Data: map[string]any{
		constants.FieldStatus: responseStatus,
		constants.FieldChecks: results,
	}})
}
