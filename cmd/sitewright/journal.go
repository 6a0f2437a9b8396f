// Journal wiring for the CLI. Journaling is best effort: a broken or
// unwritable journal degrades to a warning, never a failed run.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/mesh-intelligence/sitewright/internal/journal"
	"github.com/mesh-intelligence/sitewright/internal/paths"
	"github.com/mesh-intelligence/sitewright/internal/reconcile"
)

// beginJournal opens the journal and starts a run record. On any failure
// it returns a nil recorder and logs a warning; the returned close func
// is always safe to defer.
func beginJournal(site, source string, dryRun bool) (*journal.RunRecorder, func()) {
	if flagNoJournal {
		return nil, func() {}
	}

	dataDir, err := paths.ResolveDataDir(flagDataDir)
	if err != nil {
		log.Warn().Err(err).Msg("journal disabled: cannot resolve data dir")
		return nil, func() {}
	}
	j, err := journal.Open(dataDir)
	if err != nil {
		log.Warn().Err(err).Msg("journal disabled")
		return nil, func() {}
	}
	rec, err := j.BeginRun(site, source, dryRun)
	if err != nil {
		log.Warn().Err(err).Msg("journal disabled")
		j.Close()
		return nil, func() {}
	}
	return rec, func() {
		if err := j.Close(); err != nil {
			log.Warn().Err(err).Msg("closing journal")
		}
	}
}

// journalObserver adapts a run recorder to the runner's observer hook.
func journalObserver(rec *journal.RunRecorder) func(reconcile.Action) {
	if rec == nil {
		return nil
	}
	return func(a reconcile.Action) {
		if err := rec.Record(a); err != nil {
			log.Warn().Err(err).Msg("journaling action")
		}
	}
}

// finishJournal finalizes the run record with its status and counts.
func finishJournal(rec *journal.RunRecorder, runErr error, created, updated, unchanged int) {
	if rec == nil {
		return
	}
	status := journal.StatusSucceeded
	if runErr != nil {
		status = journal.StatusFailed
	}
	if err := rec.Finish(status, created, updated, unchanged); err != nil {
		log.Warn().Err(err).Msg("finalizing journal run")
	}
}
