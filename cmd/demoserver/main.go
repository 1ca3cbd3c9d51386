// Command demoserver starts the Soshin demo server hosting the
// workshop login pages and the API they submit to.
// Usage: go run ./cmd/demoserver [port]
// Default port: 9999
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/raysh454/soshin/internal/demoserver"
)

func main() {
	cfg := demoserver.DefaultConfig()

	// Optional: custom port from command line
	if len(os.Args) > 1 {
		port, err := strconv.Atoi(os.Args[1])
		if err != nil || port < 1 || port > 65535 {
			log.Fatalf("Invalid port: %s", os.Args[1])
		}
		cfg.Port = port
	}

	fmt.Println("===========================================")
	fmt.Println("   Soshin Demo Server - Submission Demo")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Println("Workshop pages:")
	fmt.Printf("  http://localhost:%d/login        (submit-event variant)\n", cfg.Port)
	fmt.Printf("  http://localhost:%d/login/click  (click-event variant)\n", cfg.Port)
	fmt.Println()
	fmt.Println("API:")
	fmt.Printf("  POST http://localhost:%d/api/login\n", cfg.Port)
	fmt.Printf("  GET  http://localhost:%d/api/submissions\n", cfg.Port)
	fmt.Printf("  WS   ws://localhost:%d/ws/submissions\n", cfg.Port)
	fmt.Printf("  Docs http://localhost:%d/swagger/index.html\n", cfg.Port)
	fmt.Println()
	fmt.Println("Switch the API between ok / not-found / error with")
	fmt.Printf("  POST http://localhost:%d/demo/set-mode?mode=not-found\n", cfg.Port)
	fmt.Println()

	server, err := demoserver.NewDemoServer(cfg)
	if err != nil {
		log.Fatalf("Setup error: %v", err)
	}
	defer server.Close()

	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
