// Package health provides liveness and readiness probe handlers.
//
// Liveness always answers OK. Readiness runs a set of named checks in
// parallel under a shared timeout and answers 503 when any of them fails:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "mailer": dispatchConfig.Check,
//	}, health.WithTimeout(3*time.Second)))
//
// Responses are plain text ("OK" / "Service Unavailable") unless the client
// asks for JSON with ?format=json or an Accept: application/json header:
//
//	{"status":"unhealthy","checks":{"mailer":{"status":"unhealthy","error":"..."}}}
package health
