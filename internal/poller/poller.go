package poller

import (
	"context"
	"sync"
	"time"

	"github.com/SamuelCarmona83/capitan-coditos/internal/models"
)

const (
	defaultInterval = 5 * time.Minute

	// A player is skipped after this many consecutive check failures and
	// dropped from the cycle entirely after pruneThreshold.
	skipThreshold  = 3
	pruneThreshold = 5

	rosterLimit = 100
)

type Logger interface {
	Error(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Info(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// RosterProvider yields the players to watch, best-known first.
type RosterProvider interface {
	Roster(limit int) []models.SummonerRecord
}

// LiveChecker reports whether one player is currently in a game. A nil info
// with nil error means "not in game".
type LiveChecker interface {
	LiveStatus(ctx context.Context, riotID string) (*models.LiveGameInfo, error)
}

// Notifier announces the players who just entered a game.
type Notifier interface {
	NotifyActiveGames(infos []models.LiveGameInfo)
}

// Poller periodically sweeps the search roster through the spectator API
// and announces newly started games. Only the live/not-live transition
// triggers a notification; players leaving a game are logged but stay quiet.
type Poller struct {
	roster   RosterProvider
	checker  LiveChecker
	notifier Notifier
	logger   Logger

	interval time.Duration

	// lastActive holds the riot ids seen in game on the previous cycle.
	lastActive map[string]struct{}
	// failures counts consecutive errors per riot id.
	failures map[string]int

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func New(roster RosterProvider, checker LiveChecker, notifier Notifier, logger Logger, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		roster:     roster,
		checker:    checker,
		notifier:   notifier,
		logger:     logger,
		interval:   interval,
		lastActive: make(map[string]struct{}),
		failures:   make(map[string]int),
		stopChan:   make(chan struct{}),
	}
}

// Start runs the poll loop until Stop is called or ctx is cancelled. The
// first sweep happens after one full interval, not immediately, so a bot
// restart does not hammer the spectator API.
func (p *Poller) Start(ctx context.Context) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		p.logger.Info("live-game poller started", "interval", p.interval.String())

		for {
			select {
			case <-ctx.Done():
				return
			case <-p.stopChan:
				return
			case <-ticker.C:
				p.runCycle(ctx)
			}
		}
	}()
}

func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopChan)
	})
	p.wg.Wait()
}

func (p *Poller) runCycle(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("poll cycle panicked", "panic", r)
		}
	}()

	records := p.roster.Roster(rosterLimit)
	if len(records) == 0 {
		return
	}

	active := make(map[string]struct{}, len(p.lastActive))
	var infos []models.LiveGameInfo

	for _, rec := range records {
		select {
		case <-ctx.Done():
			return
		case <-p.stopChan:
			return
		default:
		}

		if p.failures[rec.RiotID] >= skipThreshold {
			p.failures[rec.RiotID]++
			if p.failures[rec.RiotID] >= pruneThreshold {
				p.logger.Warn("dropping player from poll cycle", "riot_id", rec.RiotID)
				delete(p.failures, rec.RiotID)
				delete(p.lastActive, rec.RiotID)
			}
			continue
		}

		info, err := p.checker.LiveStatus(ctx, rec.RiotID)
		if err != nil {
			p.failures[rec.RiotID]++
			p.logger.Debug("live check failed", "riot_id", rec.RiotID,
				"consecutive_errors", p.failures[rec.RiotID], "error", err)
			continue
		}
		delete(p.failures, rec.RiotID)

		if info == nil {
			continue
		}

		active[rec.RiotID] = struct{}{}
		if _, wasActive := p.lastActive[rec.RiotID]; !wasActive {
			infos = append(infos, *info)
		}
	}

	newlyLive, newlyFinished := Diff(p.lastActive, active)
	p.lastActive = active

	if len(newlyFinished) > 0 {
		p.logger.Debug("players left their games", "riot_ids", newlyFinished)
	}

	if len(infos) > 0 {
		p.logger.Info("announcing live games", "count", len(infos), "riot_ids", newlyLive)
		p.notifier.NotifyActiveGames(infos)
	}
}

// Diff compares two active sets and returns who entered and who left.
func Diff(prev, current map[string]struct{}) (newlyLive, newlyFinished []string) {
	for id := range current {
		if _, ok := prev[id]; !ok {
			newlyLive = append(newlyLive, id)
		}
	}
	for id := range prev {
		if _, ok := current[id]; !ok {
			newlyFinished = append(newlyFinished, id)
		}
	}
	return newlyLive, newlyFinished
}
