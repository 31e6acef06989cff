package main

import (
	"os"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := loadConfig()
	log := newLogger(cfg.Environment)
	defer log.Sync()

	h := &Handler{
		sessions: newSessionManager(),
		catalog:  &catalogHolder{},
		log:      log,
	}

	// Load the bundled catalog. The server still starts without one — core
	// routes answer 503 until a valid foods CSV is uploaded via POST /api/foods.
	if f, err := os.Open(cfg.FoodsCSV); err != nil {
		log.Warnw("no default food catalog, waiting for upload", "path", cfg.FoodsCSV, "error", err)
	} else {
		table, err := loadFoodCatalog(f)
		f.Close()
		if err != nil {
			log.Warnw("default food catalog rejected, waiting for upload", "path", cfg.FoodsCSV, "error", err)
		} else {
			h.catalog.replace(table)
			log.Infow("food catalog loaded", "path", cfg.FoodsCSV, "foods", table.len())
		}
	}

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)

	log.Infow("starting server", "addr", cfg.Addr)
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}
