// Package bridge keeps the local ledger and its cloud copy in sync.
//
// Pushes are debounced: every local mutation schedules a push, and a
// burst of edits collapses into a single upload once the ledger has
// been quiet for the debounce interval. Pulls happen once at startup.
// Conflicts are resolved with a last-write-wins policy in both
// directions, the transferred state always replaces the receiving side
// wholesale.
package bridge

import (
	"context"
	"sync"
	"time"

	"github.com/familybiz/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// Policy names the conflict resolution strategy applied when local and
// remote state diverge.
type Policy string

// PolicyLastWriteWins overwrites the receiving side with the full
// transferred state. There is no merge and no tombstone tracking, so
// an edit made elsewhere between our last pull and the next push is
// lost. Acceptable for a single-family deployment, and the only policy
// currently implemented.
const PolicyLastWriteWins Policy = "last-write-wins"

// Snapshotter reads the full local ledger.
type Snapshotter func() (models.Ledger, error)

// Replacer overwrites the full local ledger.
type Replacer func(models.Ledger) error

// Bridge debounces pushes of the local ledger to the cloud. A nil
// Bridge is valid and does nothing, which is how a deployment without
// a cloud URL runs.
type Bridge struct {
	client   *Client
	debounce time.Duration
	snapshot Snapshotter
	replace  Replacer

	// onResult is invoked after every completed push attempt with its
	// outcome, nil on success. Used by tests and the sync status
	// endpoint.
	onResult func(error)

	mu    sync.Mutex
	timer *time.Timer
}

func New(client *Client, debounce time.Duration, snapshot Snapshotter, replace Replacer) *Bridge {
	return &Bridge{
		client:   client,
		debounce: debounce,
		snapshot: snapshot,
		replace:  replace,
	}
}

// OnResult registers a callback for push outcomes. Must be called
// before the first Schedule.
func (b *Bridge) OnResult(fn func(error)) {
	if b == nil {
		return
	}

	b.onResult = fn
}

// Policy returns the conflict resolution strategy in effect.
func (b *Bridge) Policy() Policy {
	return PolicyLastWriteWins
}

// Schedule queues a push of the current ledger. A pending push that
// has not fired yet is cancelled and rescheduled, so only the final
// state of an editing burst is uploaded.
func (b *Bridge) Schedule() {
	if b == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
	}

	b.timer = time.AfterFunc(b.debounce, b.push)
}

// Flush runs a push that is still waiting in the debounce window
// immediately. Called on shutdown so the last edits are not lost; when
// no push is pending it does nothing.
func (b *Bridge) Flush() {
	if b == nil {
		return
	}

	b.mu.Lock()
	pending := b.timer != nil && b.timer.Stop()
	b.timer = nil
	b.mu.Unlock()

	if pending {
		b.push()
	}
}

func (b *Bridge) push() {
	err := b.pushErr()
	if err != nil {
		log.Error().Err(err).Msg("could not push the ledger to the cloud")
	} else {
		log.Debug().Msg("pushed the ledger to the cloud")
	}

	if b.onResult != nil {
		b.onResult(err)
	}
}

func (b *Bridge) pushErr() error {
	ledger, err := b.snapshot()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.client.http.Timeout)
	defer cancel()

	return b.client.Push(ctx, ledger)
}

// Pull fetches the remote ledger and overwrites the local one with it.
// Called once at startup; a failure leaves the local state untouched.
func (b *Bridge) Pull(ctx context.Context) error {
	if b == nil {
		return nil
	}

	ledger, err := b.client.Pull(ctx)
	if err != nil {
		return err
	}

	if err := b.replace(ledger); err != nil {
		return err
	}

	log.Info().
		Int("transactions", len(ledger.Transactions)).
		Int("investments", len(ledger.Investments)).
		Int("withdrawals", len(ledger.Withdrawals)).
		Msg("restored the ledger from the cloud")

	return nil
}
