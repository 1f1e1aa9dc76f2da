package ports

import (
	"context"
	"time"
)

// Cache define el puerto de salida para cachear respuestas de lectura del warehouse.
// Un fallo de cache nunca debe romper la petición: los casos de uso lo tratan como miss.
type Cache interface {
	// Get decodifica el valor de key en dst. Devuelve false, nil si no existe.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// NopCache no guarda nada; se usa cuando no hay Redis configurado.
type NopCache struct{}

func (NopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (NopCache) Set(context.Context, string, any, time.Duration) error { return nil }
