// Command join-load fires concurrent joins at one campaign and checks that
// every join landed: the final count must equal the target and the campaign
// must have succeeded.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"groupbuy/internal/adapter/httpclient"
	"groupbuy/internal/core/domain"
	"groupbuy/internal/optimistic"
)

type result struct {
	joined     atomic.Int64
	retried    atomic.Int64
	failed     atomic.Int64
	latencySum atomic.Int64
}

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:8080", "API base URL")
		joiners  = flag.Int("joiners", 50, "number of concurrent joiners")
		rps      = flag.Int("rps", 200, "join rate limit")
		retries  = flag.Int("retries", 5, "whole-call retries on concurrent_update")
		timeout  = flag.Duration("timeout", 30*time.Second, "overall deadline")
		campType = flag.String("type", string(domain.TypeFlash), "campaign type")
	)
	flag.Parse()

	if err := run(*baseURL, *joiners, *rps, *retries, *timeout, domain.CampaignType(*campType)); err != nil {
		fmt.Fprintf(os.Stderr, "join-load: %v\n", err)
		os.Exit(1)
	}
}

func run(baseURL string, joiners, rps, retries int, timeout time.Duration, typ domain.CampaignType) error {
	transport := &http.Transport{
		MaxIdleConns:        joiners * 2,
		MaxIdleConnsPerHost: joiners * 2,
		IdleConnTimeout:     90 * time.Second,
	}
	client := httpclient.NewClient(baseURL, httpclient.WithHTTPClient(&http.Client{
		Transport: transport,
		Timeout:   timeout,
	}))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	campaign, err := client.Create(ctx, domain.CampaignSpec{
		Product:       domain.ProductRef{ID: "load-sku", Name: "Load test item"},
		Type:          typ,
		TargetCount:   joiners + 1,
		OriginalPrice: 10000,
		GroupPrice:    7500,
		CreatedBy:     "load-initiator",
	})
	if err != nil {
		return fmt.Errorf("create campaign: %w", err)
	}
	fmt.Printf("campaign %s created, target %d\n", campaign.ID, campaign.TargetCount)

	burst := max(rps/joiners, 1)
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	var res result
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for i := range joiners {
		g.Go(func() error {
			// every joiner is its own UI client with its own cache
			cache := optimistic.New()
			if err := cache.Put(campaign); err != nil {
				return err
			}
			userID := fmt.Sprintf("load-user-%d", i)
			for attempt := 0; ; attempt++ {
				if err := limiter.Wait(gctx); err != nil {
					return err
				}
				began := time.Now()
				_, err := cache.Join(gctx, client, campaign.ID, userID, domain.Variant{})
				res.latencySum.Add(int64(time.Since(began)))
				if err == nil {
					res.joined.Add(1)
					return nil
				}
				if errors.Is(err, domain.ErrConcurrentUpdate) && attempt < retries {
					res.retried.Add(1)
					continue
				}
				res.failed.Add(1)
				return fmt.Errorf("%s: %w", userID, err)
			}
		})
	}
	joinErr := g.Wait()
	took := time.Since(start)

	calls := res.joined.Load() + res.retried.Load() + res.failed.Load()
	fmt.Printf("joins ok       : %d\n", res.joined.Load())
	fmt.Printf("retried        : %d\n", res.retried.Load())
	fmt.Printf("failed         : %d\n", res.failed.Load())
	fmt.Printf("took           : %v\n", took.Round(time.Millisecond))
	if calls > 0 {
		fmt.Printf("avg latency    : %v\n", time.Duration(res.latencySum.Load()/calls))
	}
	if joinErr != nil {
		return joinErr
	}

	final, err := client.Get(ctx, campaign.ID)
	if err != nil {
		return fmt.Errorf("read final state: %w", err)
	}
	parts, err := client.Participants(ctx, campaign.ID)
	if err != nil {
		return fmt.Errorf("read participants: %w", err)
	}
	fmt.Printf("final count    : %d/%d (%s), ledger entries %d\n",
		final.CurrentCount, final.TargetCount, final.Status, len(parts))

	if final.CurrentCount != final.TargetCount || final.Status != domain.StatusSuccess || len(parts) != final.TargetCount {
		return errors.New("consistency check failed")
	}
	fmt.Println("consistency check passed")
	return nil
}
