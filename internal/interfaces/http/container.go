package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/texnokross/texnokross/internal/infrastructure/config"
	"github.com/texnokross/texnokross/internal/infrastructure/recordstore"
	"github.com/texnokross/texnokross/internal/shared/logger"
)

// Container wires the record store, repositories, services and handlers
// into one gin engine.
type Container struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface
	store  recordstore.Store
	redis  *redis.Client

	repos *repositories
	svcs  *services
	hdlrs *allHandlers
}

// NewContainer builds every dependency on top of an already opened store.
// redisClient may be nil when rate limiting is off. The caller owns both.
func NewContainer(store recordstore.Store, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		cfg:    cfg,
		log:    log,
		store:  store,
		redis:  redisClient,
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()
	c.setupRoutes()

	return c
}

func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// PaymentConfigured reports whether checkout links can be issued.
func (c *Container) PaymentConfigured() bool {
	return c.svcs.paymentLink.Configured()
}
