package app

import (
	"log"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Joseluizbianchini/ZeFood/domain"
	"github.com/Joseluizbianchini/ZeFood/internal/config"
	"github.com/Joseluizbianchini/ZeFood/internal/infrastructure/auth"
	"github.com/Joseluizbianchini/ZeFood/internal/infrastructure/database"
	"github.com/Joseluizbianchini/ZeFood/internal/infrastructure/events"
	"github.com/Joseluizbianchini/ZeFood/internal/infrastructure/notifications"
	"github.com/Joseluizbianchini/ZeFood/internal/infrastructure/repositories"
	"github.com/Joseluizbianchini/ZeFood/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	AMQPPool    *events.ChannelPool

	// Repositories
	UserRepo     domain.UserRepository
	CustomerRepo domain.CustomerRepository
	OrderRepo    domain.OrderRepository
	SessionRepo  domain.SessionRepository

	// Services
	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	Mailer      domain.Mailer
	AuthSvc     domain.AuthService
	CustomerSvc domain.CustomerService
	OrderSvc    domain.OrderService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	container.initRedis()
	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	c.DB = db
	return nil
}

func (c *Container) initRedis() {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB)
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.CustomerRepo = repositories.NewCustomerRepository(c.DB)
	c.OrderRepo = repositories.NewOrderRepository(c.DB)
	c.SessionRepo = repositories.NewSessionRepository(c.RedisClient, c.Config.SessionTTL)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.AccessTTL)

	// The mailer is built once here and handed to every consumer; no
	// per-request transport rebuilding.
	smtp := notifications.NewSMTPMailer(
		c.Config.MailHost,
		c.Config.MailPort,
		c.Config.MailUsername,
		c.Config.MailPassword,
		c.Config.MailFrom,
		c.Config.MailStoreAddress,
	)
	c.Mailer = services.NewTimeoutMailer(smtp, c.Config.MailSendTimeout)

	// Kitchen-queue publishing is optional: without a broker URL the order
	// flow runs without it.
	var publisher domain.OrderEventPublisher
	if c.Config.AMQPURL != "" {
		pool, err := events.NewChannelPool(c.Config.AMQPURL, c.Config.AMQPQueue, c.Config.AMQPPoolSize)
		if err != nil {
			log.Printf("AMQP_DISABLED: error=%v", err)
		} else {
			c.AMQPPool = pool
			publisher = events.NewPublisher(pool, c.Config.AMQPQueue)
		}
	}

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.SessionRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.Mailer,
		c.Config.AccessTTL,
		c.Config.SessionTTL,
		c.Config.ResetTokenTTL,
		c.Config.FrontendBaseURL,
	)
	c.CustomerSvc = services.NewCustomerService(c.CustomerRepo)
	c.OrderSvc = services.NewOrderService(c.OrderRepo, publisher)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.AMQPPool != nil {
		c.AMQPPool.Close()
	}

	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
