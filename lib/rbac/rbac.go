package rbac

import (
	"regexp"
	"slices"
	"strings"

	"broilink-backend/models"

	"github.com/pkg/errors"
)

type Provider interface {
	GetRuleFunc(method, path string) (models.RbacFunc, bool)
	// IsAllowed - path tanpa aturan ditolak (deny by default)
	IsAllowed(method, path, userID string, role models.UserRole) bool
	RegisterRule(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) error
	GetPermissions(role models.UserRole) map[models.Module][]models.Permission
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance()
}

func NewInstance() Provider {
	i := &impl{
		rules:       map[HTTPMethod]*methodRules{},
		permissions: map[models.UserRole]map[models.Module][]models.Permission{},
	}
	i.initRules()
	return i
}

type impl struct {
	rules       map[HTTPMethod]*methodRules
	permissions map[models.UserRole]map[models.Module][]models.Permission
}

func (i *impl) GetRuleFunc(method, path string) (models.RbacFunc, bool) {
	rules, exists := i.rules[HTTPMethod(strings.ToUpper(method))]
	if !exists {
		return nil, false
	}
	path = normalizePath(path)
	if handler, found := rules.exact[path]; found {
		return handler, true
	}
	for _, rule := range rules.patterns {
		if rule.pattern.MatchString(path) {
			return rule.handler, true
		}
	}
	return nil, false
}

func (i *impl) IsAllowed(method, path, userID string, role models.UserRole) bool {
	handler, found := i.GetRuleFunc(method, path)
	if !found {
		return false
	}
	return handler(userID, role, normalizePath(path))
}

func (i *impl) RegisterRule(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) error {
	path, method, err := parseSwaggerPattern(swaggerPattern)
	if err != nil {
		return err
	}

	// peta hak akses untuk menu di frontend
	for _, role := range roles {
		if _, ok := i.permissions[role]; !ok {
			i.permissions[role] = map[models.Module][]models.Permission{}
		}
		if !slices.Contains(i.permissions[role][module], permission) {
			i.permissions[role][module] = append(i.permissions[role][module], permission)
		}
	}

	rules, exists := i.rules[method]
	if !exists {
		rules = &methodRules{exact: map[string]models.RbacFunc{}}
		i.rules[method] = rules
	}
	if handler == nil {
		handler = AllowByRoleFunc(roles)
	}
	if !strings.Contains(path, "{") {
		rules.exact[path] = handler
		return nil
	}
	pattern := pathToRegex(path)
	if pattern == nil {
		return errors.Errorf("pola path tidak valid: %v", path)
	}
	rules.patterns = append(rules.patterns, patternRule{
		pattern: pattern,
		handler: handler,
	})
	return nil
}

func (i *impl) GetPermissions(role models.UserRole) map[models.Module][]models.Permission {
	result := map[models.Module][]models.Permission{}
	for module, permissions := range i.permissions[role] {
		result[module] = slices.Clone(permissions)
	}
	return result
}

var paramRe = regexp.MustCompile(`\{[^}]+?\}`)

// pathToRegex: "/api/admin/users/{id}" -> ^/api/admin/users/([^/]+)$
func pathToRegex(path string) *regexp.Regexp {
	pattern := regexp.QuoteMeta(path)
	pattern = strings.ReplaceAll(pattern, `\{`, "{")
	pattern = strings.ReplaceAll(pattern, `\}`, "}")
	pattern = paramRe.ReplaceAllString(pattern, `([^/]+)`)
	regex, err := regexp.Compile("^" + pattern + "$")
	if err != nil {
		return nil
	}
	return regex
}

func AllowByRoleFunc(accessRoles []models.UserRole) models.RbacFunc {
	allowMap := map[models.UserRole]bool{}
	for _, role := range accessRoles {
		allowMap[role] = true
	}
	return func(userID string, role models.UserRole, path string) bool {
		return allowMap[role]
	}
}

// parseSwaggerPattern membaca format anotasi swagger "/api/admin/users [post]"
func parseSwaggerPattern(pattern string) (path string, method HTTPMethod, err error) {
	pattern = strings.TrimSpace(pattern)
	bracketStart := strings.LastIndex(pattern, "[")
	bracketEnd := strings.LastIndex(pattern, "]")
	if bracketStart == -1 || bracketEnd <= bracketStart {
		return "", "", errors.Errorf("method tidak ditemukan pada pola (%v)", pattern)
	}
	path = normalizePath(strings.TrimSpace(pattern[:bracketStart]))
	method = HTTPMethod(strings.ToUpper(strings.TrimSpace(pattern[bracketStart+1 : bracketEnd])))
	return path, method, nil
}

func normalizePath(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}
	return path
}
