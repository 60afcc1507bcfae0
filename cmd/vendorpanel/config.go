package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	apiEndpoint    string
	tokenPath      string
	logLevel       string
	env            string
	pageSize       int
	searchDebounce time.Duration
	httpTimeout    time.Duration
}

func NewConfig() Config {
	var (
		apiEndpoint string
		tokenPath   string
		logLevel    string
		env         string
	)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	flag.StringVar(&apiEndpoint, "a", "http://localhost:8080", "base URL of the platform API")
	flag.StringVar(&tokenPath, "t", ".vendor-token", "path to the stored bearer token file")
	flag.Parse()

	if address := os.Getenv("PLATFORM_API_ADDRESS"); address != "" {
		apiEndpoint = address
	}

	if path := os.Getenv("TOKEN_PATH"); path != "" {
		tokenPath = path
	}

	if l := os.Getenv("LOG_LEVEL"); l != "" {
		logLevel = l
	} else {
		logLevel = "error"
	}

	if e := os.Getenv("ENV"); e != "" {
		env = e
	} else {
		env = "production"
	}

	pageSize := 10
	if raw := os.Getenv("PAGE_SIZE"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			pageSize = parsed
		}
	}

	searchDebounce := 500 * time.Millisecond
	if raw := os.Getenv("SEARCH_DEBOUNCE_MS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			searchDebounce = time.Duration(parsed) * time.Millisecond
		}
	}

	httpTimeout := 30 * time.Second
	if raw := os.Getenv("HTTP_TIMEOUT_SECONDS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			httpTimeout = time.Duration(parsed) * time.Second
		}
	}

	return Config{
		apiEndpoint,
		tokenPath,
		logLevel,
		env,
		pageSize,
		searchDebounce,
		httpTimeout,
	}
}
