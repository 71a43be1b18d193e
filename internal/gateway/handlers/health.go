package handlers

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/sync/errgroup"
)

// ============================================================
// Health Check Handlers
// ============================================================

// LivenessProbe reports that the process is serving requests.
func LivenessProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "alive",
	})
}

// StartupProbe reports that the gateway finished starting.
func StartupProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "started",
	})
}

// Upstream is a service the gateway depends on.
type Upstream struct {
	Name string
	URL  string
}

// ReadinessProbe checks /health/live of every upstream concurrently and
// answers 503 listing the ones that did not respond with 200.
func ReadinessProbe(client *http.Client, upstreams ...Upstream) fiber.Handler {
	if client == nil {
		client = &http.Client{Timeout: 2 * time.Second}
	}

	return func(c fiber.Ctx) error {
		var (
			mu   sync.Mutex
			down []string
		)

		g, ctx := errgroup.WithContext(c.Context())
		for _, u := range upstreams {
			g.Go(func() error {
				if err := ping(ctx, client, u.URL+"/health/live"); err != nil {
					mu.Lock()
					down = append(down, u.Name)
					mu.Unlock()
				}
				return nil
			})
		}
		_ = g.Wait()

		if len(down) > 0 {
			sort.Strings(down)
			return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded",
				"down":   down,
			})
		}
		return c.JSON(fiber.Map{
			"status": "ready",
		})
	}
}

func ping(ctx context.Context, client *http.Client, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: status %d", url, resp.StatusCode)
	}
	return nil
}
