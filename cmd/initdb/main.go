// Command initdb creates the admissions and fees tables without starting the server.
// Usage: go run ./cmd/initdb
package main

import (
	"os"

	"github.com/gofiber/fiber/v2/log"
	"github.com/sahilchouksey/school-intake/config"
	"github.com/sahilchouksey/school-intake/database"
	"github.com/sahilchouksey/school-intake/model"
)

func main() {
	if err := config.LoadENV(); err != nil {
		log.Fatal("Failed to load environment variables: ", err)
	}

	env, err := config.Get()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	store, err := database.StartGORM(env)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := run(store); err != nil {
		_ = store.Close()
		log.Error(err)
		os.Exit(1)
	}
	_ = store.Close()
}

func run(store *database.GORMStore) error {
	if err := store.Init(); err != nil {
		return err
	}
	if err := store.HealthCheck(); err != nil {
		return err
	}

	for _, table := range []interface{ TableName() string }{model.Admission{}, model.Fee{}} {
		var rows int64
		if err := store.GetDB().Table(table.TableName()).Count(&rows).Error; err != nil {
			return err
		}
		log.Infof("%s: %d rows", table.TableName(), rows)
	}
	return nil
}
