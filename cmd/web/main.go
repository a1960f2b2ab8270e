// @title           LocalPro API
// @version         1.0
// @description     API for the LocalPro local services marketplace.
// @contact.name    LocalPro
// @contact.email   support@localpro.app
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1

package main

import "localpro_backend/internal/app"

func main() {
	app.Run()
}
