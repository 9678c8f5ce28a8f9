// Package web serves the embedded single-page dashboard frontend. The page
// fetches the JSON view payloads and renders the chart specifications
// client-side; the backend never renders HTML per request.
package web

import (
	"embed"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

//go:embed static
var static embed.FS

func RegisterFrontend(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		index, err := static.ReadFile("static/index.html")
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(index)
	})

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(static),
		PathPrefix: "static",
	}))
}
