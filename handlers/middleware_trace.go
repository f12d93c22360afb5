package handlers

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// Trace opens a span per request, named after the method and matched route.
// With no provider configured it is a pass-through.
func (s *Service) Trace() gin.HandlerFunc {
	if s.TracerProvider == nil {
		return func(c *gin.Context) { c.Next() }
	}
	tracer := s.TracerProvider.Tracer("nutrimate/handlers")
	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), c.Request.Method+" "+c.FullPath())
		defer span.End()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		span.SetAttributes(attribute.Int("http.status_code", c.Writer.Status()))
	}
}
