package container

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/autanasoft/accounts-api/config"
	"github.com/autanasoft/accounts-api/pkg/helpers"
	"github.com/autanasoft/accounts-api/pkg/mailer"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client

	mailgunClient *mailer.Mailgun
	eventsPub     *helpers.RabbitPublisher
	emailsPub     *helpers.RabbitPublisher
	esClient      *elasticsearch.Client
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }
func SetPGPool(p *pgxpool.Pool)  { pgPool = p }
func GetPGPool() *pgxpool.Pool   { return pgPool }
func SetRedis(r *redis.Client)   { redisClient = r }
func GetRedis() *redis.Client    { return redisClient }

func SetMailgun(m *mailer.Mailgun)             { mailgunClient = m }
func GetMailgun() *mailer.Mailgun              { return mailgunClient }
func SetEventsPub(p *helpers.RabbitPublisher)  { eventsPub = p }
func GetEventsPub() *helpers.RabbitPublisher   { return eventsPub }
func SetEmailsPub(p *helpers.RabbitPublisher)  { emailsPub = p }
func GetEmailsPub() *helpers.RabbitPublisher   { return emailsPub }
func SetES(c *elasticsearch.Client)            { esClient = c }
func GetES() *elasticsearch.Client             { return esClient }
