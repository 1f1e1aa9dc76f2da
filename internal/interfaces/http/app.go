package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// AppConfig opciones del servidor Fiber.
type AppConfig struct {
	Name  string
	Debug bool // expone la causa cruda en las respuestas de error
}

// NewApp crea la app Fiber con el ErrorHandler de la API.
// UnescapePath decodifica la ruta antes del ruteo: los :employee_id llegan ya decodificados
// a RequireSelf y a los handlers.
func NewApp(cfg AppConfig, log zerolog.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		UnescapePath: true,
		ErrorHandler: ErrorHandler(cfg.Debug, log),
	})
}
