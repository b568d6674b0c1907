package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	mw "github.com/0xabhi/mpin-api/internal/api/middlewares"
	"github.com/0xabhi/mpin-api/internal/api/router"
	"github.com/0xabhi/mpin-api/internal/mpin"
	"github.com/0xabhi/mpin-api/internal/repository/sqlconnect"
	"github.com/0xabhi/mpin-api/internal/store/audit"
	"github.com/0xabhi/mpin-api/internal/wordlist"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	cls := mpin.New(loadTables(ctx))
	sto := buildStore(ctx)

	handler := mw.Chain(
		router.Router(cls, sto),
		mw.RequestID,
		mw.Recovery,
		mw.Cors,
		mw.ResponseTimeMiddleware,
		mw.BodySizeLimit,
		mw.SecurityHeaders,
	)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	log.Println("Server is running on port:", port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalln("Error starting server:", err)
	}
}

// loadTables prefers the S3 wordlist override, falling back to the embedded
// defaults on any failure. Tables are immutable once loaded.
func loadTables(ctx context.Context) mpin.Tables {
	if os.Getenv("WORDLIST_BUCKET") == "" {
		return mpin.DefaultTables()
	}
	loader, err := wordlist.NewFromEnv(ctx)
	if err != nil {
		log.Printf("wordlist: %v; using embedded tables", err)
		return mpin.DefaultTables()
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	tables, err := loader.LoadTables(ctx)
	if err != nil {
		log.Printf("wordlist: %v; using embedded tables", err)
		return mpin.DefaultTables()
	}
	log.Printf("wordlist: loaded override tables (%d four-digit, %d six-digit)", tables.Len4(), tables.Len6())
	return tables
}

// buildStore assembles the audit store: Postgres when DATABASE_URL is set,
// in-memory otherwise, with an optional Redis cache in front of the stats
// aggregate.
func buildStore(ctx context.Context) audit.Store {
	var sto audit.Store

	if os.Getenv("DATABASE_URL") != "" {
		db, err := sqlconnect.ConnectDB()
		if err != nil {
			log.Fatalf("Database connection failed: %v", err)
		}
		sto = audit.NewSQL(db)
		log.Println("audit: using Postgres store")
	} else {
		sto = audit.NewMemory()
		log.Println("audit: DATABASE_URL not set, using in-memory store")
	}

	if rdb := connectRedis(ctx); rdb != nil {
		sto = audit.NewCachedStats(sto, rdb)
	}
	return sto
}

func connectRedis(ctx context.Context) *redis.Client {
	var rdb *redis.Client
	if url := os.Getenv("REDIS_URL"); url != "" {
		opt, err := redis.ParseURL(url)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		opt.DialTimeout = 5 * time.Second
		opt.ReadTimeout = 1 * time.Second
		opt.WriteTimeout = 1 * time.Second
		rdb = redis.NewClient(opt)
	} else if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:         addr,
			Username:     os.Getenv("REDIS_USER"),
			Password:     os.Getenv("REDIS_PASSWORD"),
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
	} else {
		return nil
	}

	// Fail fast on a misconfigured cache rather than limping along.
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Redis connection failed: %v", err)
	}
	log.Println("stats cache: connected to Redis")
	return rdb
}
