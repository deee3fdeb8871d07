package controllers

import (
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/devfolio/Backend-Dev-Folio/src/cache"
	"github.com/devfolio/Backend-Dev-Folio/src/lib"
)

type HealthController struct {
	client    *mongo.Client
	cache     *cache.Redis
	startedAt time.Time
	requests  atomic.Int64
}

func NewHealthController(client *mongo.Client, redis *cache.Redis) *HealthController {
	return &HealthController{
		client:    client,
		cache:     redis,
		startedAt: time.Now(),
	}
}

// CountRequests is mounted app-wide so /health/metrics can report traffic.
func (hc *HealthController) CountRequests(c *fiber.Ctx) error {
	hc.requests.Add(1)
	return c.Next()
}

// Health is the basic probe.
func (hc *HealthController) Health(c *fiber.Ctx) error {
	return lib.OK(c, fiber.Map{
		"status": "up",
		"uptime": time.Since(hc.startedAt).String(),
	})
}

// Detailed reports dependency status alongside runtime stats.
func (hc *HealthController) Detailed(c *fiber.Ctx) error {
	mongoStatus := "up"
	if err := hc.client.Ping(c.Context(), readpref.Primary()); err != nil {
		mongoStatus = "down"
	}

	redisStatus := "up"
	if err := hc.cache.Ping(c.Context()); err != nil {
		redisStatus = "down"
	}

	host, _ := os.Hostname()
	if host == "" {
		host = "unavailable"
	}

	return lib.OK(c, fiber.Map{
		"status": "up",
		"uptime": time.Since(hc.startedAt).String(),
		"host":   host,
		"dependencies": fiber.Map{
			"mongodb": mongoStatus,
			"redis":   redisStatus,
		},
		"runtime": fiber.Map{
			"goVersion":  runtime.Version(),
			"goroutines": runtime.NumGoroutine(),
			"gomaxprocs": runtime.GOMAXPROCS(0),
		},
	})
}

// Ready answers 503 until the store responds; load balancers gate on it.
func (hc *HealthController) Ready(c *fiber.Ctx) error {
	if err := hc.client.Ping(c.Context(), readpref.Primary()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"message": "store not reachable",
		})
	}
	return lib.OK(c, fiber.Map{"status": "ready"})
}

// Live only proves the process responds.
func (hc *HealthController) Live(c *fiber.Ctx) error {
	return lib.OK(c, fiber.Map{"status": "alive"})
}

// Metrics exposes coarse process metrics.
func (hc *HealthController) Metrics(c *fiber.Ctx) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return lib.OK(c, fiber.Map{
		"uptimeSeconds":   int64(time.Since(hc.startedAt).Seconds()),
		"requestsServed":  hc.requests.Load(),
		"goroutines":      runtime.NumGoroutine(),
		"heapAllocBytes":  mem.HeapAlloc,
		"totalAllocBytes": mem.TotalAlloc,
		"numGC":           mem.NumGC,
	})
}
