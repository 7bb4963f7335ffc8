package main

import (
	"flag"
	"log"
	"strings"

	"familybudget/config"
	"familybudget/database"
	"familybudget/middleware"
	"familybudget/router"
)

// @title Family Budget API
// @version 1.0
// @description Multi-tenant family budget tracker: register, form a family, record shared expenses and incomes, and read aggregated statistics.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey SessionCookie
// @in header
// @name Cookie

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "path to external config file (optional)")
	flag.StringVar(&configFile, "c", "", "path to external config file (shorthand)")
	flag.StringVar(&port, "port", "", "listen port, e.g. 8080 or :8080")
	flag.StringVar(&port, "p", "", "listen port (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&showVersion, "v", false, "print version (shorthand)")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("family budget v1.0.0")
		return
	}

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("port overridden from command line: %s", port)
	}

	config.PrintConfig()

	// 初始化数据库
	if err := database.Init(cfg); err != nil {
		log.Fatalf("init database: %v", err)
	}

	// 初始化会话令牌密钥
	middleware.InitJWT(cfg)

	r := router.SetupRouter(cfg)

	log.Printf("family budget listening on %s", cfg.Server.Port)
	log.Printf("swagger: http://localhost%s/swagger/index.html", cfg.Server.Port)

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
