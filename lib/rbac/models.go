package rbac

import (
	"regexp"

	"broilink-backend/models"
)

type HTTPMethod string

const (
	GET    HTTPMethod = "GET"
	POST   HTTPMethod = "POST"
	PUT    HTTPMethod = "PUT"
	DELETE HTTPMethod = "DELETE"
	PATCH  HTTPMethod = "PATCH"
)

// methodRules - aturan untuk satu HTTP method: path persis dicek dulu, baru pola
type methodRules struct {
	exact    map[string]models.RbacFunc
	patterns []patternRule
}

type patternRule struct {
	pattern *regexp.Regexp
	handler models.RbacFunc
}
