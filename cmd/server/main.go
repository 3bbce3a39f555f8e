package main

import (
	"context"
	"os"

	"github.com/socialynx/backend/api"
	"github.com/socialynx/backend/pkg/catalog"
	"github.com/socialynx/backend/pkg/config"
	"github.com/socialynx/backend/pkg/email"
	"github.com/socialynx/backend/pkg/entitlement"
	"github.com/socialynx/backend/pkg/generation"
	"github.com/socialynx/backend/pkg/httpserver"
	"github.com/socialynx/backend/pkg/logger"
	"github.com/socialynx/backend/pkg/mongo"
	"github.com/socialynx/backend/pkg/payment"
	"github.com/socialynx/backend/pkg/quota"
	"github.com/socialynx/backend/pkg/redis"
)

type appConfig struct {
	Environment   string `env:"ENVIRONMENT" envDefault:"development"`
	ServiceName   string `env:"SERVICE_NAME" envDefault:"socialynx-backend"`
	DailyLimit    int    `env:"FREE_DAILY_LIMIT" envDefault:"3"`
	WebhookSecret string `env:"PAYMENT_WEBHOOK_SECRET"`
}

func main() {
	ctx := context.Background()

	var (
		appCfg      appConfig
		httpCfg     httpserver.Config
		mongoCfg    mongo.Config
		redisCfg    redis.Config
		emailCfg    email.Config
		yookassaCfg payment.YooKassaConfig
		openaiCfg   generation.OpenAIConfig
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&mongoCfg)
	config.MustLoad(&redisCfg)
	config.MustLoad(&emailCfg)
	config.MustLoad(&yookassaCfg)
	config.MustLoad(&openaiCfg)

	log := logger.New(logger.WithEnvironment(appCfg.Environment, appCfg.ServiceName))
	logger.SetAsDefault(log)

	mongoClient, err := mongo.New(ctx, mongoCfg)
	if err != nil {
		log.Error("failed to connect to mongodb", logger.Error(err))
		os.Exit(1)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()
	db := mongoClient.Database(mongoCfg.Database)

	redisClient, err := redis.Connect(ctx, redisCfg)
	if err != nil {
		log.Error("failed to connect to redis", logger.Error(err))
		os.Exit(1)
	}
	defer func() { _ = redisClient.Close() }()

	cat := catalog.New(catalog.NewMongoSource(db), catalog.WithLogger(log))

	entitlements := entitlement.NewService(entitlement.NewMongoStore(db))

	tracker := quota.NewTracker(quota.NewRedisStore(redisClient), quota.WithLimit(appCfg.DailyLimit))

	var mailer email.EmailSender = email.NoopSender{}
	if emailCfg.Enabled() {
		mailer, err = email.NewPostmarkClient(emailCfg)
		if err != nil {
			log.Error("failed to configure email sender", logger.Error(err))
			os.Exit(1)
		}
	} else {
		log.Warn("email sender is not configured, receipts disabled")
	}

	payments := payment.NewService(
		cat,
		payment.NewYooKassaProvider(yookassaCfg),
		payment.NewMongoSessionStore(db),
		entitlements,
		payment.WithLogger(log),
		payment.WithMailer(mailer),
	)

	completer, err := generation.NewOpenAIClient(openaiCfg)
	if err != nil {
		log.Error("failed to configure openai client", logger.Error(err))
		os.Exit(1)
	}
	generator := generation.NewService(completer, generation.NewMongoHistoryStore(db), generation.WithLogger(log))

	router := api.NewRouter(api.Deps{
		Catalog:       cat,
		Payments:      payments,
		Entitlements:  entitlements,
		Quota:         tracker,
		Generation:    generator,
		WebhookSecret: appCfg.WebhookSecret,
		HealthChecks: map[string]httpserver.HealthCheckFunc{
			"mongodb": mongo.Healthcheck(mongoClient),
			"redis":   redis.Healthcheck(redisClient),
		},
		Logger: log,
	})

	server := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	if err := server.Run(ctx, router); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}
