package httpapi

import "testing"

func TestShouldTraceRequest_HealthPaths(t *testing.T) {
	t.Parallel()

	paths := []string{"/healthz", "/health", "/livez", "/readyz", " /healthz "}
	for _, path := range paths {
		if shouldTraceRequest(path) {
			t.Fatalf("expected no tracing for path %q", path)
		}
	}
}

func TestShouldTraceRequest_NonHealthPaths(t *testing.T) {
	t.Parallel()

	paths := []string{"/api/matches", "/api/search/teams", "/", "/api/123/statistics"}
	for _, path := range paths {
		if !shouldTraceRequest(path) {
			t.Fatalf("expected tracing for path %q", path)
		}
	}
}
