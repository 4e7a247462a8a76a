// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package api

import (
	"log/slog"
	"net/http"

	"github.com/nexpad/nexpad/internal/platform/respond"
)

// # Health Check Definitions

// HealthDependencies carries the probe functions for each external dependency.
type HealthDependencies struct {
	// CheckDatabase pings PostgreSQL; nil means healthy.
	CheckDatabase func() error

	// CheckCache pings Redis; nil means healthy.
	CheckCache func() error
}

type healthStatus struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services,omitempty"`
}

// # Health Check Handlers

// NewHealthHandlers builds the liveness and readiness probe handlers.
//
// Liveness only proves the process is serving; readiness additionally
// verifies PostgreSQL and Redis and degrades to 503 when either fails.
func NewHealthHandlers(deps HealthDependencies, log *slog.Logger) (liveness, readiness http.HandlerFunc) {
	liveness = func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, healthStatus{Status: "ok"})
	}

	readiness = func(w http.ResponseWriter, r *http.Request) {
		services := map[string]string{
			"database": "ok",
			"cache":    "ok",
		}
		healthy := true

		if err := deps.CheckDatabase(); err != nil {
			log.Error("readiness database check failed", slog.Any("error", err))
			services["database"] = "unavailable"
			healthy = false
		}
		if err := deps.CheckCache(); err != nil {
			log.Error("readiness cache check failed", slog.Any("error", err))
			services["cache"] = "unavailable"
			healthy = false
		}

		status := http.StatusOK
		body := healthStatus{Status: "ok", Services: services}
		if !healthy {
			status = http.StatusServiceUnavailable
			body.Status = "degraded"
		}
		respond.JSON(w, status, body)
	}

	return liveness, readiness
}
