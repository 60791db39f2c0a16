package fiberlog

import (
	"regexp"
	"time"

	authutils "broilink-backend/lib/utils/auth-utils"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid      = "pid"
	TagLatency  = "latency"
	TagStatus   = "status"
	TagMethod   = "method"
	TagPath     = "path"
	TagURL      = "url"
	TagIP       = "ip"
	TagUA       = "user_agent"
	TagBody     = "body"
	TagResBody  = "res_body"
	TagUserID   = "user_id"
	RequestID   = "request_id"
	maxBodySize = 2048
)

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag menghasilkan nilai field log untuk satu tag
type FuncTag func(c *fiber.Ctx, d *data) interface{}

var secretRe = regexp.MustCompile(`("(?:password|otp|token)"\s*:\s*)"[^"]*"`)

func maskBody(body []byte) string {
	if len(body) > maxBodySize {
		body = body[:maxBodySize]
	}
	return secretRe.ReplaceAllString(string(body), `$1"***"`)
}

func isJSON(contentType []byte) bool {
	return len(contentType) >= len(fiber.MIMEApplicationJSON) &&
		string(contentType[:len(fiber.MIMEApplicationJSON)]) == fiber.MIMEApplicationJSON
}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(c *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagLatency: func(c *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagStatus: func(c *fiber.Ctx, d *data) interface{} {
			return c.Response().StatusCode()
		},
		TagMethod: func(c *fiber.Ctx, d *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, d *data) interface{} {
			return c.Path()
		},
		TagURL: func(c *fiber.Ctx, d *data) interface{} {
			return c.OriginalURL()
		},
		TagIP: func(c *fiber.Ctx, d *data) interface{} {
			return c.IP()
		},
		TagUA: func(c *fiber.Ctx, d *data) interface{} {
			return c.Get(fiber.HeaderUserAgent)
		},
		TagBody: func(c *fiber.Ctx, d *data) interface{} {
			if !isJSON(c.Request().Header.ContentType()) {
				return ""
			}
			return maskBody(c.Body())
		},
		TagResBody: func(c *fiber.Ctx, d *data) interface{} {
			if !isJSON(c.Response().Header.ContentType()) {
				return ""
			}
			return maskBody(c.Response().Body())
		},
		TagUserID: func(c *fiber.Ctx, d *data) interface{} {
			return authutils.GetStringClaim(c, "sub")
		},
		RequestID: func(c *fiber.Ctx, d *data) interface{} {
			return c.GetRespHeader(fiber.HeaderXRequestID)
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}
