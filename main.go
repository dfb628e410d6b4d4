package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/printarts/printrec/config"
	"github.com/printarts/printrec/internal/adminapi"
	"github.com/printarts/printrec/internal/app"
	"github.com/printarts/printrec/internal/webserver"
	"go.uber.org/zap"
)

var (
	h        bool
	initdb   bool
	conffile string
)

func init() {
	flag.BoolVar(&h, "h", false, "help usage")
	flag.BoolVar(&initdb, "initdb", false, "drop and recreate the database schema")
	flag.StringVar(&conffile, "c", "", "config yaml file")
}

func main() {
	flag.Parse()
	if h {
		flag.Usage()
		return
	}

	cfg := config.LoadConfig(conffile)
	app.Initialize(cfg)
	defer app.GApp().Release()

	if initdb {
		app.GApp().InitDb()
		fmt.Fprintln(os.Stdout, "database initialized")
		return
	}

	products, err := app.LoadSeedProducts()
	if err != nil {
		zap.S().Errorf("failed to load seed catalog: %v", err)
	} else {
		app.GApp().SeedCatalog(products)
	}

	webserver.Init(cfg)
	adminapi.InitRouter()

	go func() {
		if err := webserver.Listen(); err != nil {
			zap.S().Errorf("web server stopped: %v", err)
			os.Exit(1)
		}
	}()
	zap.S().Infof("printrec listening on %s:%d", cfg.Web.Host, cfg.Web.Port)

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc
	zap.S().Info("shutting down")
}
