// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package panelx

import (
	"github.com/gogama/panelx/request"
)

// watchServerRestart holds the app locked until the backend answers a
// health probe. The app is unlocked exactly once, however the watch
// ends.
func (c *Client) watchServerRestart(e *request.Execution) error {
	logger := c.logger()
	handlers := c.handlers()

	c.lockApp()
	unlocked := false
	unlock := func() {
		if !unlocked {
			unlocked = true
			c.unlockApp()
		}
	}
	defer unlock()

	handlers.run(BeforeRestartWatch, e)
	p, err := request.NewPlanWithContext(e.Plan.Context(), "HEAD", c.BackendURL+HealthPath, nil)
	if err != nil {
		return err
	}
	p.Purpose = request.HealthCheck
	p.Close = true
	logger.Info().
		Str("url", p.URL.String()).
		Msg("waiting for server restart")

	h := c.execute(p, c.restartPolicy())
	e.HealthCheck = h
	unlock()
	handlers.run(AfterRestartWatch, e)

	if h.Err != nil {
		logger.Error().
			Int("healthChecks", h.Attempt+1).
			Dur("duration", h.Duration()).
			Err(h.Err).
			Msg("server restart watch gave up")
		return &WatchError{HealthCheck: h, Err: h.Err}
	}

	logger.Info().
		Int("healthChecks", h.Attempt+1).
		Dur("duration", h.Duration()).
		Msg("server restarted")
	return nil
}

func (c *Client) lockApp() {
	if c.App != nil {
		c.App.LockApp()
	}
}

func (c *Client) unlockApp() {
	if c.App != nil {
		c.App.UnlockApp()
	}
}
