package main

import (
	"flag"
	"fmt"
	"os"
	"syscall"

	"github.com/cayro-uniformes/internal/app"
	"github.com/cayro-uniformes/internal/config"
	"github.com/cayro-uniformes/internal/logger"
	"github.com/cayro-uniformes/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiGreen = "\033[32m"
	ansiCyan  = "\033[36m"
)

func main() {
	printStartupBanner()

	// Configuración y logs
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	// Base de datos
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("no se pudo inicializar la base de datos: %v", err)
	}

	// Migración automática
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("no se pudo migrar la base de datos: %v", err)
	}

	// Modo de Gin
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Parámetros de línea de comandos
	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "modo de arranque: all (por defecto), api, worker")
	flag.Parse()

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("el servicio terminó con error: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiCyan + " ██████╗ █████╗ ██╗   ██╗██████╗  ██████╗ " + ansiReset)
	fmt.Println(ansiCyan + "██╔════╝██╔══██╗╚██╗ ██╔╝██╔══██╗██╔═══██╗" + ansiReset)
	fmt.Println(ansiCyan + "██║     ███████║ ╚████╔╝ ██████╔╝██║   ██║" + ansiReset)
	fmt.Println(ansiCyan + "██║     ██╔══██║  ╚██╔╝  ██╔══██╗██║   ██║" + ansiReset)
	fmt.Println(ansiCyan + "╚██████╗██║  ██║   ██║   ██║  ██║╚██████╔╝" + ansiReset)
	fmt.Println(ansiCyan + " ╚═════╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝ ╚═════╝ " + ansiReset)
	fmt.Println(ansiGreen + ansiBold + "Cayro Uniformes API" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}
