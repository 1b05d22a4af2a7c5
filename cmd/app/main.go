package main

import (
	"context"
	"os"

	"loadgo/config"
	adminservice "loadgo/internal/admin-service"
	"loadgo/internal/mylogger"
)

func main() {
	mylog := mylogger.New("admin-service", os.Getenv("LOG_LEVEL"))

	cfg := config.New(mylog)

	cmd := "admin-service"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "admin-service":
		if err := adminservice.Execute(context.Background(), mylog, cfg); err != nil {
			mylog.Error("service exited with error", err)
			os.Exit(1)
		}
	default:
		mylog.Warn("unknown command", "command", cmd)
		os.Exit(1)
	}
}
