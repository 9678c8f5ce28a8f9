package main

import (
	"github.com/ie-dashboard/backend/cmd/app"
)

// @title          Institutional Effectiveness Dashboard API
// @version        1.0.0
// @description    Backend for the Institutional Effectiveness Dashboard: synthetic demonstration data for academic medical center leadership.
// @license.name   MIT License
// @license.url    https://opensource.org/licenses/MIT
// @BasePath       /api
func main() {
	app.Run()
}
