// Package scrape pulls a single bookmaker's match page through a headless
// browser and extracts the result-market prices. It exists for matches the
// odds API does not carry; everything downstream only sees the Snapshot.
package scrape

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/lucianofrutuoso/python-bet/internal/pkg/config"
	"github.com/lucianofrutuoso/python-bet/internal/pkg/models"
)

// Scraper renders one configured match page and reads the home/draw/away
// price elements via CSS selectors. Odds pages are JavaScript-heavy, so a
// plain GET is not enough; chromedp drives a real renderer.
type Scraper struct {
	cfg *config.ScraperConfig
}

func New(cfg *config.ScraperConfig) (*Scraper, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("scraper URL is required")
	}
	if cfg.Selectors.Home == "" && cfg.Selectors.Draw == "" && cfg.Selectors.Away == "" {
		return nil, fmt.Errorf("at least one price selector is required")
	}
	return &Scraper{cfg: cfg}, nil
}

// Snapshot loads the page once and returns the current price vector.
// Selectors that match nothing or hold unparseable text leave their market
// out of the snapshot; the trend comparator skips absent markets anyway.
func (s *Scraper) Snapshot(ctx context.Context) (models.Snapshot, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, s.cfg.Timeout)
	defer cancelRun()

	texts := make(map[models.Outcome]*string)
	tasks := chromedp.Tasks{chromedp.Navigate(s.cfg.URL)}

	selectors := []struct {
		outcome  models.Outcome
		selector string
	}{
		{models.OutcomeHome, s.cfg.Selectors.Home},
		{models.OutcomeDraw, s.cfg.Selectors.Draw},
		{models.OutcomeAway, s.cfg.Selectors.Away},
	}
	for _, sel := range selectors {
		if sel.selector == "" {
			continue
		}
		text := new(string)
		texts[sel.outcome] = text
		// AtLeast(0) so one missing element doesn't stall the whole run.
		tasks = append(tasks, chromedp.Text(sel.selector, text, chromedp.ByQuery, chromedp.AtLeast(0)))
	}

	if err := chromedp.Run(runCtx, tasks); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to render %s: %w", s.cfg.URL, err)
	}

	prices := make(map[models.Outcome]float64)
	for outcome, text := range texts {
		price, err := parsePrice(*text)
		if err != nil {
			continue
		}
		prices[outcome] = price
	}

	if len(prices) == 0 {
		return models.Snapshot{}, fmt.Errorf("no prices found on %s", s.cfg.URL)
	}

	return models.Snapshot{
		Bookmaker:  s.cfg.Bookmaker,
		Prices:     prices,
		ObservedAt: time.Now().UTC(),
	}, nil
}

// parsePrice turns scraped element text into a decimal odd. Brazilian
// pages often use a comma decimal separator.
func parsePrice(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("empty price text")
	}
	text = strings.ReplaceAll(text, ",", ".")

	price, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable price %q: %w", text, err)
	}
	if price <= 1.0 {
		return 0, fmt.Errorf("illegal decimal odd %v", price)
	}
	return price, nil
}
