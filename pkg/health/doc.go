// Package health provides HTTP handlers for liveness and readiness probes.
//
// Liveness always answers OK while the process runs. Readiness runs a set of
// named checks in parallel and answers 503 when any of them fails:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "mailer": contact.ConfigCheck(cfg.Contact),
//	}))
//
// Responses are plain text ("OK" / "Service Unavailable") unless the client
// asks for JSON with an Accept: application/json header or ?format=json.
package health
