// Copyright 2026 Northern.tech AS
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.

package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mendersoftware/go-lib-micro/config"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	dconfig "github.com/mendersoftware/devicepanel/config"
	"github.com/mendersoftware/devicepanel/server"
	"github.com/mendersoftware/devicepanel/store"
	"github.com/mendersoftware/devicepanel/store/memory"
	mstore "github.com/mendersoftware/devicepanel/store/mongo"
)

var Version string = "unknown"

func main() {
	doMain(os.Args)
}

func doMain(args []string) {
	var configPath string
	var envPath string

	app := &cli.App{
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name: "config",
				Usage: "Configuration `FILE`. " +
					"Supports JSON, TOML, YAML and HCL " +
					"formatted configs.",
				Value:       "config.yaml",
				Destination: &configPath,
			},
			&cli.StringFlag{
				Name: "env-file",
				Usage: "Dotenv `FILE` loaded into the environment " +
					"before reading the configuration.",
				Value:       ".env",
				Destination: &envPath,
			},
		},
		Commands: []cli.Command{
			{
				Name:   "server",
				Usage:  "Run the HTTP API server",
				Action: cmdServer,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "automigrate",
						Usage: "Run database migrations before starting.",
					},
				},
			},
			{
				Name:   "migrate",
				Usage:  "Run the migrations",
				Action: cmdMigrate,
			},
		},
	}
	app.Usage = "Device Panel"
	app.Version = Version
	app.Action = cmdServer

	app.Before = func(args *cli.Context) error {
		err := loadEnvFile(envPath)
		if err != nil {
			return cli.NewExitError(
				fmt.Sprintf("error loading environment file: %s", err),
				1)
		}

		err = config.FromConfigFile(configPath, dconfig.Defaults)
		if err != nil {
			return cli.NewExitError(
				fmt.Sprintf("error loading configuration: %s", err),
				1)
		}

		// Enable setting config values by environment variables
		config.Config.SetEnvPrefix("DEVICEPANEL")
		config.Config.AutomaticEnv()
		config.Config.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

		return nil
	}

	err := app.Run(args)
	if err != nil {
		log.Fatal(err)
	}
}

// loadEnvFile loads the dotenv file without overriding variables already
// present in the environment; a missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

func setupDataStore(automigrate bool) (store.DataStore, error) {
	switch backend := config.Config.GetString(dconfig.SettingDataStore); backend {
	case dconfig.DataStoreMongo:
		dataStore, err := mstore.SetupDataStore(automigrate)
		if err != nil {
			return nil, err
		}
		return dataStore, nil
	case dconfig.DataStoreMemory:
		return memory.NewDataStore(), nil
	default:
		return nil, errors.Errorf("unknown datastore %q", backend)
	}
}

func cmdServer(args *cli.Context) error {
	dataStore, err := setupDataStore(args.Bool("automigrate"))
	if err != nil {
		return err
	}
	defer dataStore.Close()
	return server.InitAndRun(config.Config, dataStore)
}

func cmdMigrate(args *cli.Context) error {
	if config.Config.GetString(dconfig.SettingDataStore) != dconfig.DataStoreMongo {
		return errors.New("migrations are only available for the mongo datastore")
	}
	dataStore, err := mstore.SetupDataStore(true)
	if err != nil {
		return err
	}
	return dataStore.Close()
}
