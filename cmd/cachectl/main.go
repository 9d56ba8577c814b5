package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"patient-records-service/internal/app/config"
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/app/drivers/database"
	"patient-records-service/internal/app/drivers/logger"
	"patient-records-service/internal/app/drivers/storage"
	"patient-records-service/internal/app/services/shared/cachestore"
	"patient-records-service/internal/app/services/shared/tokenstore"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

const usage = `usage: cachectl [flags] <command>

commands:
  clear-cache        drop every cached upstream response
  set-token <token>  store the bearer token sent to the upstream backend
  clear-token        remove the stored bearer token
  hash-key <key>     print the bcrypt hash to use as ADMIN_API_KEY_HASH
  version            print build information

flags:
`

func main() {
	timeout := flag.Duration("timeout", 30*time.Second, "time allowed for the command")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	command := flag.Arg(0)
	switch command {
	case "version":
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Tag: %s\n", Tag)
		return
	case "hash-key":
		if flag.NArg() != 2 || flag.Arg(1) == "" {
			fmt.Fprintln(os.Stderr, "hash-key expects exactly one key argument")
			os.Exit(2)
		}
		hash, err := utils.HashAPIKey(flag.Arg(1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "hashing key: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(driverConfig, internalConfig)

	// An in-process memory store holds nothing another process could clear.
	if internalConfig.Cache.Driver == "" || internalConfig.Cache.Driver == constvars.CacheDriverMemory {
		log.Fatal("CACHE_DRIVER is memory; cachectl needs a shared store (redis, mongo or minio)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	store, release, err := openStore(ctx, driverConfig, internalConfig)
	if err != nil {
		log.WithError(err).Fatal("Failed to open cache store")
	}
	defer release()

	entry := log.WithFields(logrus.Fields{
		"command": command,
		"driver":  internalConfig.Cache.Driver,
	})

	err = run(ctx, store, command, flag.Args()[1:])
	if err != nil {
		entry.WithError(err).Error("Command failed")
		release()
		os.Exit(1)
	}
	entry.Info("Command succeeded")
}

func run(ctx context.Context, store contracts.CacheStore, command string, args []string) error {
	tokens := tokenstore.NewTokenStore(store)

	switch command {
	case "clear-cache":
		return store.ClearPrefix(ctx, constvars.CacheKeyPrefix)
	case "set-token":
		if len(args) != 1 || args[0] == "" {
			return fmt.Errorf("set-token expects exactly one token argument")
		}
		return tokens.Set(ctx, args[0])
	case "clear-token":
		return tokens.Clear(ctx)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func openStore(ctx context.Context, driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) (contracts.CacheStore, func(), error) {
	deps := cachestore.Dependencies{}
	release := func() {}

	switch internalConfig.Cache.Driver {
	case constvars.CacheDriverRedis:
		client := database.NewRedisClient(driverConfig)
		deps.Redis = client
		release = func() { client.Close() }
	case constvars.CacheDriverMongo:
		client := database.NewMongoDB(driverConfig)
		deps.MongoCollection = client.
			Database(driverConfig.MongoDB.DbName).
			Collection(constvars.MongoCacheCollection)
		release = func() { client.Disconnect(context.Background()) }
	case constvars.CacheDriverMinio:
		deps.Minio = storage.NewMinio(driverConfig)
		deps.MinioBucketName = internalConfig.Cache.MinioBucketName
	}

	store, err := cachestore.NewCacheStore(internalConfig.Cache.Driver, deps)
	if err != nil {
		release()
		return nil, nil, err
	}
	return store, release, nil
}
