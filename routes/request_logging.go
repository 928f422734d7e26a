/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"time"

	"github.com/flamego/flamego"

	"github.com/humaidq/vitalsign/logging"
)

var requestLogger = logging.Logger(logging.SourceWebRequest)

// RequestLogger logs request metadata and timing for each HTTP request.
func RequestLogger(c flamego.Context) {
	start := time.Now()

	c.Next()

	status := c.ResponseWriter().Status()
	if status == 0 {
		status = http.StatusOK
	}

	fields := []interface{}{
		"event", "request",
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
	}
	fields = append(fields, baseRequestFields(c)...)

	requestLogger.Info("request", fields...)
}

func baseRequestFields(c flamego.Context) []interface{} {
	fields := []interface{}{
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"ip", clientIP(c),
		"user_agent", c.Request().UserAgent(),
	}
	if id := requestID(c); id != "" {
		fields = append(fields, "request_id", id)
	}

	if clientASNResolver != nil {
		if asn, country, ok := clientASNResolver(c.Request().Request); ok {
			fields = append(fields, "asn", asn, "country", country)
		}
	}

	return fields
}

func clientIP(c flamego.Context) string {
	return clientIPFromHTTPRequest(c.Request().Request)
}
