package merge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"clipstitch/internal/config"
	"clipstitch/internal/deps"
	"clipstitch/internal/dirlock"
	"clipstitch/internal/fileutil"
	"clipstitch/internal/grouping"
	"clipstitch/internal/history"
	"clipstitch/internal/logging"
	"clipstitch/internal/services"
	"clipstitch/internal/services/ffmpeg"
)

// Result describes one merge group after planning or execution. Dry-run and
// live mode fill the same fields; Merged is only ever true after a live run.
type Result struct {
	Key       string
	Clips     []string
	Command   string
	Output    string // transcoder output in the temp directory
	FinalPath string // where the merged file ends up: the primary clip's path
	Merged    bool
}

// Runner owns the scan → group → merge → relocate pipeline for one directory.
type Runner struct {
	cfg        *config.Config
	transcoder *ffmpeg.Client
	store      *history.Store // nil disables history recording
	logger     *slog.Logger
	dryRun     bool
}

// NewRunner constructs a merge runner. store may be nil; dry runs never
// record history regardless.
func NewRunner(cfg *config.Config, transcoder *ffmpeg.Client, store *history.Store, logger *slog.Logger, dryRun bool) *Runner {
	return &Runner{
		cfg:        cfg,
		transcoder: transcoder,
		store:      store,
		logger:     logging.NewComponentLogger(logger, "merge"),
		dryRun:     dryRun,
	}
}

// Run processes dir and returns one result per multi-clip group, in lexical
// key order. Group failures are joined into the returned error; groups after
// a failed one are still processed.
func (r *Runner) Run(ctx context.Context, dir string) ([]Result, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve directory: %w", err)
	}

	if !r.dryRun {
		status := deps.CheckBinaries([]deps.Requirement{deps.FFmpeg(r.cfg.FFmpeg.Binary)})[0]
		if !status.Available {
			return nil, services.Wrap(services.ErrConfiguration, "merging", "preflight", status.Detail, nil)
		}

		lock, err := dirlock.Acquire(abs)
		if err != nil {
			return nil, services.Wrap(services.ErrTransient, "merging", "lock directory", "Directory is busy", err)
		}
		defer func() {
			if err := lock.Release(); err != nil {
				r.logger.Warn("failed to release directory lock", logging.Error(err))
			}
		}()
	}

	groups, err := grouping.Groups(abs)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "merging", "scan directory", "Unable to scan for chapter files", err)
	}
	r.logger.Info("grouping completed",
		logging.String("path", abs),
		logging.Int("groups", len(groups)),
		logging.Bool("dryrun", r.dryRun),
	)

	var run *history.Run
	if r.store != nil && !r.dryRun {
		if run, err = r.store.StartRun(ctx, abs); err != nil {
			r.logger.Warn("failed to record run start", logging.Error(err))
			run = nil
		}
	}

	results := make([]Result, 0, len(groups))
	var failures []error
	for _, group := range groups {
		// A single clip is not a sequence; it is left exactly where it is.
		if len(group.Clips) < 2 {
			r.logger.Debug("skipping singleton group", logging.String("key", group.Key))
			continue
		}

		plan, err := r.transcoder.NewPlan(group.Clips)
		if err != nil {
			failures = append(failures, services.Wrap(services.ErrValidation, "merging", "plan group "+group.Key, "Unable to plan concatenation", err))
			continue
		}
		result := Result{
			Key:       group.Key,
			Clips:     group.Clips,
			Command:   plan.Command,
			Output:    plan.Output,
			FinalPath: group.Clips[0],
		}

		if r.dryRun {
			r.describe(group, plan)
			results = append(results, result)
			continue
		}

		if err := r.mergeGroup(ctx, abs, group, plan); err != nil {
			r.logger.Error("group merge failed", logging.String("key", group.Key), logging.Error(err))
			failures = append(failures, err)
			r.recordGroup(ctx, run, result, err)
			results = append(results, result)
			continue
		}
		result.Merged = true
		r.recordGroup(ctx, run, result, nil)
		results = append(results, result)
		r.logger.Info("group merged",
			logging.String("key", group.Key),
			logging.Int("clips", len(group.Clips)),
			logging.String("output", result.FinalPath),
		)
	}

	if run != nil {
		run.GroupCount = len(results)
		if err := r.store.FinishRun(ctx, run); err != nil {
			r.logger.Warn("failed to record run end", logging.Error(err))
		}
	}

	return results, errors.Join(failures...)
}

// mergeGroup executes one group: concat, park the chapters, promote the
// merged output to the primary clip's path. A failed group leaves nothing
// behind in the temp directory; after success the output has already been
// moved into place, so the removal only fires on error paths.
func (r *Runner) mergeGroup(ctx context.Context, dir string, group grouping.Group, plan ffmpeg.Plan) (err error) {
	defer func() {
		if err == nil {
			return
		}
		if rmErr := os.Remove(plan.Output); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			r.logger.Warn("failed to remove temp output", logging.String("path", plan.Output), logging.Error(rmErr))
		}
	}()

	r.logger.Info("running transcoder", logging.String("key", group.Key), logging.String("command", plan.Command))
	if err := r.transcoder.Concat(ctx, plan); err != nil {
		return services.Wrap(services.ErrExternalTool, "merging", "concatenate "+group.Key, "Transcoder failed", err)
	}

	keyDir := filepath.Join(dir, group.Key)
	if err := os.MkdirAll(keyDir, 0o755); err != nil {
		return services.Wrap(services.ErrTransient, "merging", "create group directory", "Unable to create "+keyDir, err)
	}
	for _, clip := range group.Clips {
		dst := filepath.Join(keyDir, filepath.Base(clip))
		if err := fileutil.MoveFile(clip, dst); err != nil {
			return services.Wrap(services.ErrTransient, "merging", "relocate clip", "Unable to move "+clip, err)
		}
		r.logger.Debug("moved clip", logging.String("from", clip), logging.String("to", dst))
	}
	if err := fileutil.MoveFile(plan.Output, group.Clips[0]); err != nil {
		return services.Wrap(services.ErrTransient, "merging", "relocate output", "Unable to move merged output into place", err)
	}
	return nil
}

// describe logs the operations a live run would perform for this group.
func (r *Runner) describe(group grouping.Group, plan ffmpeg.Plan) {
	keyDir := filepath.Join(filepath.Dir(group.Clips[0]), group.Key)
	r.logger.Info("dry-run: would write concat manifest",
		logging.String("manifest", plan.Manifest),
		logging.Int("clips", len(group.Clips)),
	)
	r.logger.Info("dry-run: would run transcoder", logging.String("command", plan.Command))
	r.logger.Info("dry-run: would create directory", logging.String("path", keyDir))
	for _, clip := range group.Clips {
		r.logger.Info("dry-run: would move clip",
			logging.String("from", clip),
			logging.String("to", filepath.Join(keyDir, filepath.Base(clip))),
		)
	}
	r.logger.Info("dry-run: would move merged output",
		logging.String("from", plan.Output),
		logging.String("to", group.Clips[0]),
	)
}

func (r *Runner) recordGroup(ctx context.Context, run *history.Run, result Result, groupErr error) {
	if run == nil || r.store == nil {
		return
	}
	rec := &history.GroupRecord{
		RunID:     run.ID,
		GroupKey:  result.Key,
		ClipCount: len(result.Clips),
		Command:   result.Command,
		Output:    result.FinalPath,
		Status:    history.StatusMerged,
	}
	if groupErr != nil {
		rec.Status = history.StatusFailed
		rec.ErrorMessage = groupErr.Error()
	}
	if err := r.store.RecordGroup(ctx, rec); err != nil {
		r.logger.Warn("failed to record group outcome", logging.Error(err))
	}
}
