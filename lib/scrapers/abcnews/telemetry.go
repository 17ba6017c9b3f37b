package abcnews

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("scrapers/abcnews")
