package main

import (
	"log"
	"os"

	"gradeyour401k/cmd"
)

func main() {
	apiHandler, cfg, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	apiHandler.Logger.Infow("starting api", "port", cfg.Port, "commit", os.Getenv("commit_hash"))
	err = apiHandler.StartApi(cfg.Port)
	if err != nil {
		log.Fatal(err)
	}
}
