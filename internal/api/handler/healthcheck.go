package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

var startedAt = time.Now()

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(map[string]string{
			"status": "ok",
			"uptime": time.Since(startedAt).Truncate(time.Second).String(),
		})
		if err != nil {
			logrus.WithError(err).Warn("healthcheck: falha ao responder liveness")
		}
	})
}
