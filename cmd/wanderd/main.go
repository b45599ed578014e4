package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wanderlands/server/internal/config"
	"github.com/wanderlands/server/internal/core/event"
	coresys "github.com/wanderlands/server/internal/core/system"
	"github.com/wanderlands/server/internal/data"
	"github.com/wanderlands/server/internal/handler"
	gonet "github.com/wanderlands/server/internal/net"
	"github.com/wanderlands/server/internal/net/packet"
	"github.com/wanderlands/server/internal/persist"
	"github.com/wanderlands/server/internal/scripting"
	"github.com/wanderlands/server/internal/system"
	"github.com/wanderlands/server/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(serverName string, serverID int) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m           Wanderlands  v0.1.0             \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m       terrain streaming world server      \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mserver:\033[0m %s \033[90m(id: %d)\033[0m\n\n", serverName, serverID)
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main server logic ─────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/server.toml"
	if p := os.Getenv("WANDER_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.Server.Name, cfg.Server.ID)

	// 3. Connect to PostgreSQL and run migrations
	printSection("database")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := persist.NewDB(ctx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer db.Close()
	printOK("PostgreSQL connected")

	if err := persist.RunMigrations(ctx, db.Pool); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	printOK("migrations applied")
	fmt.Println()

	// 4. Create repositories
	accountRepo := persist.NewAccountRepo(db)
	playerRepo := persist.NewPlayerRepo(db)

	// 5. Create world state and load data tables
	worldState := world.NewState()

	printSection("data")

	envTable, err := data.LoadEnvTable("data/yaml/environment_list.yaml")
	if err != nil {
		return fmt.Errorf("load environment table: %w", err)
	}
	envCount := spawnEnvironment(worldState, envTable)
	printStat("environment objects", envCount)

	ambienceTable, err := data.LoadAmbienceTable("data/yaml/ambience_list.yaml")
	if err != nil {
		return fmt.Errorf("load ambience table: %w", err)
	}
	printStat("ambience presets", ambienceTable.Count())

	// 5a. Initialize Lua scripting engine
	luaEngine, err := scripting.NewEngine("scripts", log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer luaEngine.Close()
	printOK("Lua scripts loaded")
	fmt.Println()

	// 6. Create event bus, packet registry and register handlers
	bus := event.NewBus()
	pktReg := packet.NewRegistry(log)
	deps := &handler.Deps{
		AccountRepo: accountRepo,
		PlayerRepo:  playerRepo,
		Config:      cfg,
		Log:         log,
		World:       worldState,
		Scripting:   luaEngine,
		Bus:         bus,
	}
	handler.RegisterAll(pktReg, deps)

	// 7. Create network server
	pktPerSec := 0
	if cfg.RateLimit.Enabled {
		pktPerSec = cfg.RateLimit.PacketsPerSecond
	}
	netServer, err := gonet.NewServer(
		cfg.Network.BindAddress,
		cfg.Network.InQueueSize,
		cfg.Network.OutQueueSize,
		pktPerSec,
		cfg.Network.WriteTimeout,
		log,
	)
	if err != nil {
		return fmt.Errorf("net server: %w", err)
	}
	go netServer.AcceptLoop()

	// 8. Create systems and register with runner
	sessions := system.NewSessionTable()
	runner := coresys.NewRunner()
	runner.Register(system.NewInputSystem(netServer, pktReg, sessions, cfg.Network.MaxPacketsPerTick, accountRepo, playerRepo, worldState, bus, log))
	runner.Register(system.NewEventSystem(bus))
	runner.Register(system.NewStreamSystem(worldState))
	runner.Register(system.NewInteractionSystem(worldState, luaEngine))
	runner.Register(system.NewAmbienceSystem(worldState, ambienceTable))
	runner.Register(system.NewPropSystem(worldState, luaEngine, bus, cfg.World.CellSize))
	runner.Register(system.NewOutputSystem(sessions))

	saveTicks := int(5 * time.Minute / cfg.Network.TickRate)
	persistSys := system.NewPersistenceSystem(worldState, playerRepo, log, saveTicks)
	runner.Register(persistSys)

	// 9. Start game loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Network.TickRate)
	defer ticker.Stop()

	printSection("server ready")
	printReady(fmt.Sprintf("listening on %s", netServer.Addr().String()))
	printReady(fmt.Sprintf("game loop started (tick: %s)", cfg.Network.TickRate))
	fmt.Println()

	for {
		select {
		case <-ticker.C:
			runner.Tick(cfg.Network.TickRate)
		case sig := <-shutdownCh:
			log.Info("shutdown signal received", zap.String("signal", sig.String()))
			persistSys.SaveAllPlayers()
			netServer.Shutdown()
			log.Info("server stopped")
			return nil
		}
	}
}

// spawnEnvironment instantiates the environment catalog into world state.
func spawnEnvironment(ws *world.State, table *data.EnvTable) int {
	count := 0
	table.Each(func(e *data.EnvEntry) {
		var obj world.EnvObject
		switch e.Kind {
		case "village":
			obj = &world.Village{ID: e.ID, Name: e.Name, X: e.X, Z: e.Z, Houses: e.Houses, Population: e.Population}
		case "forest":
			obj = &world.Forest{ID: e.ID, Name: e.Name, X: e.X, Z: e.Z, TreeCount: e.TreeCount, Density: e.Density}
		case "mountain":
			obj = &world.Mountain{ID: e.ID, Name: e.Name, X: e.X, Z: e.Z, PeakHeight: e.PeakHeight, Snowline: e.Snowline}
		case "temple":
			obj = &world.Temple{ID: e.ID, Name: e.Name, X: e.X, Z: e.Z, Deity: e.Deity, Lit: e.Lit}
		case "market":
			obj = &world.Market{ID: e.ID, Name: e.Name, X: e.X, Z: e.Z, Stalls: e.Stalls, OpenFrom: e.OpenFrom, OpenTo: e.OpenTo}
		default:
			return
		}
		ws.AddEnvObject(obj)
		count++
	})
	return count
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
