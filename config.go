package main

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/doucearrivee/contact-api/contact"
	"github.com/doucearrivee/contact-api/email"
	"github.com/doucearrivee/contact-api/email/mailgunmail"
	"github.com/doucearrivee/contact-api/email/smtpmail"
	"github.com/doucearrivee/contact-api/ratelimit"
	"github.com/doucearrivee/contact-api/ratelimit/redisstore"
)

const mailgunProvider = "mailgun"
const smtpProvider = "smtp"

const memoryStore = "memory"
const redisStore = "redis"

type serverInput struct {
	cfg        contact.Config
	limiter    ratelimit.Limiter
	notifier   contact.Notifier
	listenAddr string
}

func mustParseServerInput() serverInput {
	if err := godotenv.Load(); err == nil {
		log.Printf("config: loaded .env file")
	}

	return serverInput{
		cfg: contact.Config{
			Key:            mustParseStringVar("KEY"),
			MinFillTime:    time.Duration(parseIntVarWithDefault("MIN_FILL_MS", 3000)) * time.Millisecond,
			AllowedOrigins: parseSliceVar("ALLOWED_ORIGINS"),
			RestoreRealIP:  parseBoolVarWithDefault("RESTORE_REAL_IP", false),
			Developing:     parseBoolVarWithDefault("DEVELOPING", false),
		},
		limiter:    mustParseLimiter(),
		notifier:   mustParseNotifier(),
		listenAddr: parseStringVarWithDefault("LISTEN_ADDR", ":8080"),
	}
}

func mustParseNotifier() contact.Notifier {
	var sender email.Sender

	switch provider := parseStringVarWithDefault("EMAIL_PROVIDER", mailgunProvider); provider {
	case smtpProvider:
		sender = smtpmail.New(
			mustParseStringVar("SMTP_HOST"),
			parseIntVarWithDefault("SMTP_PORT", 587),
			mustParseStringVar("SMTP_USER"),
			mustParseStringVar("SMTP_PASS"),
			parseBoolVarWithDefault("SMTP_SSL", false),
		)
	case mailgunProvider:
		sender = mailgunmail.New(mustParseStringVar("MG_DOMAIN"), mustParseStringVar("MG_KEY"))
	default:
		log.Fatalf("Unknown EMAIL_PROVIDER %v", provider)
	}

	return contact.NewEmailNotifier(
		email.NewDispatcher(sender),
		mustParseStringVar("OPERATOR_EMAIL"),
		mustParseStringVar("FROM_ADDR"),
	)
}

func mustParseLimiter() ratelimit.Limiter {
	max := parseIntVarWithDefault("RATE_LIMIT_MAX", ratelimit.DefaultMaxRequests)
	window := time.Duration(parseIntVarWithDefault("RATE_LIMIT_WINDOW_MINUTES", 15)) * time.Minute

	switch store := parseStringVarWithDefault("RATE_LIMIT_STORE", memoryStore); store {
	case redisStore:
		opts, err := redis.ParseURL(mustParseStringVar("REDIS_URL"))
		if err != nil {
			log.Fatalf("Failed to parse REDIS_URL: %v", err)
		}
		return redisstore.New(redis.NewClient(opts), max, window)
	case memoryStore:
		sweep := time.Duration(parseIntVarWithDefault("RATE_LIMIT_SWEEP_MINUTES", 5)) * time.Minute
		return ratelimit.NewMemory(max, window, sweep)
	default:
		log.Fatalf("Unknown RATE_LIMIT_STORE %v", store)
		return nil
	}
}

func parseStringVar(key string) string {
	return os.Getenv(key)
}

func mustParseStringVar(key string) (v string) {
	v = parseStringVar(key)
	if strings.Compare(v, "") == 0 {
		log.Fatalf("Env var %v cannot be empty", key)
	}

	return
}

func parseStringVarWithDefault(key, def string) string {
	v := parseStringVar(key)
	if v == "" {
		return def
	}
	return v
}

func parseBoolVarWithDefault(key string, def bool) bool {
	v := parseStringVar(key)
	if v == "" {
		return def
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func parseIntVarWithDefault(key string, def int) int {
	v := parseStringVar(key)
	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("Env var %v must be an int", key)
	}
	return n
}

func parseSliceVar(key string) (v []string) {
	val := parseStringVar(key)
	if val == "" {
		return nil
	}

	for _, s := range strings.Split(val, ",") {
		if s = strings.TrimSpace(s); s != "" {
			v = append(v, s)
		}
	}

	return
}
