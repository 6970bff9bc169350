package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tonixchain/brandgen/internal/app"
	"github.com/tonixchain/brandgen/internal/config"
	"github.com/tonixchain/brandgen/internal/state"
	"github.com/tonixchain/brandgen/internal/web"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Println("env file error:", err)
		os.Exit(2)
	}
	defaults, err := web.DefaultServerConfigFromEnv(":8080")
	if err != nil {
		fmt.Println("server config error:", err)
		os.Exit(2)
	}
	cfg, err := config.FromEnv(config.Default())
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	listenAddr := flag.String("listen", defaults.ListenAddr, "http listen address; also configurable via "+web.EnvListenAddr)
	devMode := flag.Bool("dev", defaults.DevMode, "enable dev mode (permissive CORS); also configurable via "+web.EnvDevMode)
	outDir := flag.String("out", cfg.OutDir, "directory served at / and written by -generate; also configurable via "+config.EnvOutDir)
	seed := flag.Int64("seed", cfg.Seed, "default seed for on-demand renders; also configurable via "+config.EnvSeed)
	generate := flag.Bool("generate", false, "write all assets into -out before serving")
	debug := flag.Bool("debug", false, "log every request on stderr")
	flag.Parse()

	cfg.OutDir = *outDir
	cfg.Seed = *seed
	if err := cfg.Validate(); err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := app.NewLogrusLogger(os.Stderr, *debug, false)
	store := state.NewStore()
	generator := app.New(cfg, store, logger, os.Stdout)

	if *generate {
		if _, err := generator.Run(processCtx); err != nil {
			fmt.Println("generation error:", err)
			os.Exit(1)
		}
	}

	var handler http.Handler = web.NewRouter(cfg.OutDir, web.APIV1Deps{
		Renderer:    generator,
		Status:      store,
		Logger:      logger,
		DefaultSeed: cfg.Seed,
	})
	if *devMode {
		handler = web.WithDevCORS(handler)
	}

	server := web.NewHTTPServer(web.ServerConfig{ListenAddr: *listenAddr, DevMode: *devMode})
	server.Handler = handler
	if err := server.Start(processCtx); err != nil {
		fmt.Println("server start error:", err)
		os.Exit(1)
	}

	base := "http://" + displayAddr(server.ListenAddr())
	fmt.Println("Brand asset preview listening on", server.ListenAddr())
	fmt.Println("Output dir:", cfg.OutDir)
	fmt.Println("Scenes:", base+"/api/v1/scenes")
	fmt.Println("OG image:", base+"/api/v1/scenes/og-image/image.png")
	fmt.Println("Telegram cover:", base+"/api/v1/scenes/telegram-cover/image.png")

	<-processCtx.Done()
	_ = server.Stop()
}

// displayAddr turns a wildcard listen address into something clickable.
func displayAddr(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	if host == "" || host == "::" || host == "0.0.0.0" {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, port)
}
