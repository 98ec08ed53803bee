package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/dtapi/booking-go/config"
	redisadapter "github.com/dtapi/booking-go/internal/adapters/redis"
	"github.com/dtapi/booking-go/internal/data"
	"github.com/dtapi/booking-go/internal/notify"
	"github.com/dtapi/booking-go/internal/notify/email"
	"github.com/dtapi/booking-go/internal/notify/push"
	"github.com/dtapi/booking-go/internal/notify/sms"
	"github.com/dtapi/booking-go/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Booking    *service.BookingService
	Query      *service.QueryService
	Auth       *service.AuthService
	Dispatcher *service.Dispatcher
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	DB       *sql.DB
	Redis    redis.UniversalClient
	Jobs     *data.JobRepo
	Contacts *data.TranslatorRepo
}

// buildRepositories builds repositories backing service ports; no business rules here.
func buildRepositories(db *sql.DB, redis redis.UniversalClient, logger *slog.Logger) *serviceRepositories {
	return &serviceRepositories{
		DB:       db,
		Redis:    redis,
		Jobs:     data.NewJobRepo(db, data.RepoConfig{Logger: logger}),
		Contacts: data.NewTranslatorRepo(db, logger),
	}
}

// buildSinks constructs notification clients for every enabled channel.
// A client that fails construction is skipped with a warning so the
// remaining channels still dispatch.
func buildSinks(cfg config.NotifyConfig, logger *slog.Logger) []service.SinkRegistration {
	var sinks []service.SinkRegistration

	if cfg.Push.Enabled {
		client, err := push.NewClient(push.Config{
			GatewayURL: cfg.Push.GatewayURL,
			AuthKey:    cfg.Push.AuthKey,
			Timeout:    cfg.Push.Timeout,
			RetryLimit: cfg.Push.RetryLimit,
		})
		if err != nil {
			logger.Warn("push client disabled", "error", err)
		} else {
			sinks = append(sinks, service.SinkRegistration{
				Name:    "push-gateway",
				Channel: notify.ChannelPush,
				Sink:    client,
			})
		}
	}

	if cfg.SMS.Enabled {
		client, err := sms.NewClient(sms.Config{
			GatewayURL: cfg.SMS.GatewayURL,
			Sender:     cfg.SMS.Sender,
			APIKey:     cfg.SMS.APIKey,
			Timeout:    cfg.SMS.Timeout,
			RetryLimit: cfg.SMS.RetryLimit,
		})
		if err != nil {
			logger.Warn("sms client disabled", "error", err)
		} else {
			sinks = append(sinks, service.SinkRegistration{
				Name:    "sms-gateway",
				Channel: notify.ChannelSMS,
				Sink:    client,
			})
		}
	}

	if cfg.Email.Enabled {
		client, err := email.NewClient(email.Config{
			MailerURL:  cfg.Email.MailerURL,
			FromName:   cfg.Email.FromName,
			FromEmail:  cfg.Email.FromEmail,
			Timeout:    cfg.Email.Timeout,
			RetryLimit: cfg.Email.RetryLimit,
		})
		if err != nil {
			logger.Warn("email client disabled", "error", err)
		} else {
			sinks = append(sinks, service.SinkRegistration{
				Name:    "mailer",
				Channel: notify.ChannelEmail,
				Sink:    client,
			})
		}
	}

	return sinks
}

func buildEligibility(expression string, logger *slog.Logger) *service.EligibilityPolicy {
	policy, err := service.NewEligibilityPolicy(expression, nil)
	if err != nil {
		logger.Warn("invalid eligibility expression, using default", "error", err)
		policy, err = service.NewEligibilityPolicy("", nil)
		if err != nil {
			return nil
		}
	}
	return policy
}

type dispatcherDeps struct {
	Repos       *serviceRepositories
	Notify      config.NotifyConfig
	Cache       config.CacheConfig
	Eligibility *service.EligibilityPolicy
	Logger      *slog.Logger
}

func buildDispatcher(deps dispatcherDeps) *service.Dispatcher {
	sinks := buildSinks(deps.Notify, deps.Logger)
	if len(sinks) == 0 {
		deps.Logger.Info("no notification channels enabled, dispatch disabled")
		return nil
	}

	opts := service.DispatcherOptions{
		Logger:      deps.Logger,
		Sinks:       sinks,
		Translators: deps.Repos.Contacts,
		Eligibility: deps.Eligibility,
		ContactTTL:  deps.Cache.ContactTTL,
	}
	if deps.Repos.Redis != nil {
		opts.Contacts = redisadapter.NewContactCacheWithTTL(deps.Repos.Redis, deps.Cache.ContactTTL)
	}

	return service.NewDispatcher(opts)
}

// NewServices wires business services using repositories and notification adapters.
func NewServices(deps *ServiceDeps) ServiceContainer {
	if deps == nil {
		return ServiceContainer{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cfg := deps.Config
	if cfg == nil {
		cfg = &config.AppConfig{}
	}

	repos := buildRepositories(deps.DB, deps.RedisClient, logger)
	eligibility := buildEligibility(cfg.EligibilityExpression, logger)
	dispatcher := buildDispatcher(dispatcherDeps{
		Repos:       repos,
		Notify:      cfg.Notify,
		Cache:       cfg.Cache,
		Eligibility: eligibility,
		Logger:      logger,
	})

	booking := service.MustNewBookingService(service.BookingServiceOptions{
		Repo:       repos.Jobs,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	query := service.MustNewQueryService(service.QueryServiceOptions{
		Repo:        repos.Jobs,
		Translators: repos.Contacts,
		Eligibility: eligibility,
		Logger:      logger,
	})
	auth := BuildAuthService(AuthConfig{
		Auth:        cfg.Auth,
		RedisClient: deps.RedisClient,
		Logger:      logger,
	})

	return ServiceContainer{
		Booking:    booking,
		Query:      query,
		Auth:       auth,
		Dispatcher: dispatcher,
	}
}
