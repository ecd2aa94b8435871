package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Tag names for log fields
const (
	TagPid       = "pid"
	TagStatus    = "status"
	TagMethod    = "method"
	TagPath      = "path"
	TagIP        = "ip"
	TagHost      = "host"
	TagUA        = "ua"
	TagLatency   = "latency"
	TagBody      = "body"
	TagResBody   = "res_body"
	RequestID    = "request_id"
	TagQuery     = "query"
	TagBytesSent = "bytes_sent"
)

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag извлекает значение поля из контекста запроса
type FuncTag func(c *fiber.Ctx, d *data) interface{}

var funcTagMap = map[string]FuncTag{
	TagPid: func(c *fiber.Ctx, d *data) interface{} {
		return d.pid
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
	TagIP: func(c *fiber.Ctx, d *data) interface{} {
		return c.IP()
	},
	TagHost: func(c *fiber.Ctx, d *data) interface{} {
		return c.Hostname()
	},
	TagUA: func(c *fiber.Ctx, d *data) interface{} {
		return string(c.Request().Header.UserAgent())
	},
	TagLatency: func(c *fiber.Ctx, d *data) interface{} {
		return d.end.Sub(d.start).String()
	},
	TagBody: func(c *fiber.Ctx, d *data) interface{} {
		return string(c.Body())
	},
	TagResBody: func(c *fiber.Ctx, d *data) interface{} {
		return string(c.Response().Body())
	},
	RequestID: func(c *fiber.Ctx, d *data) interface{} {
		return string(c.Response().Header.Peek(fiber.HeaderXRequestID))
	},
	TagQuery: func(c *fiber.Ctx, d *data) interface{} {
		return string(c.Request().URI().QueryString())
	},
	TagBytesSent: func(c *fiber.Ctx, d *data) interface{} {
		return len(c.Response().Body())
	},
}

// getFuncTagMap собирает функции только для запрошенных в конфиге полей
func getFuncTagMap(cfg Config, d *data) map[string]FuncTag {
	ftm := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if fn, ok := funcTagMap[tag]; ok {
			ftm[tag] = fn
		}
	}
	return ftm
}
