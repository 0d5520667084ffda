package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/questlog-api/internal/errors"
	"github.com/KirkDiggler/questlog-api/internal/repositories/inventory"
	"github.com/KirkDiggler/questlog-api/internal/repositories/profile"
	"github.com/KirkDiggler/questlog-api/internal/repositories/quests"
)

// Flush writes pending changes for one user, or for every loaded user when
// UserID is empty. The first failure is returned; the session keeps its
// in-memory state and stays dirty.
func (s *service) Flush(ctx context.Context, input *FlushInput) (*FlushOutput, error) {
	if input != nil && input.UserID != "" {
		sess := s.lookup(input.UserID)
		if sess == nil {
			return nil, errors.FailedPreconditionf("session for user %s is not loaded", input.UserID)
		}
		if err := s.flushSession(ctx, sess); err != nil {
			return nil, err
		}
		return &FlushOutput{Flushed: 1}, nil
	}

	flushed, err := s.flushAll(ctx)
	if err != nil {
		return nil, err
	}
	return &FlushOutput{Flushed: flushed}, nil
}

// Run is the background flusher
func (s *service) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.flushInterval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "flusher started", "interval", s.flushInterval)
	for {
		select {
		case <-ctx.Done():
			if _, err := s.flushAll(context.WithoutCancel(ctx)); err != nil {
				slog.ErrorContext(ctx, "final flush failed", "error", err.Error())
			}
			slog.InfoContext(ctx, "flusher stopped")
			return nil
		case <-ticker.C:
		case <-s.flushRequests:
		}

		// failures are logged per session and retried on the next pass
		_, _ = s.flushAll(ctx)
	}
}

func (s *service) flushAll(ctx context.Context) (int, error) {
	s.mu.RLock()
	sessions := make([]*GameSession, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.RUnlock()

	var firstErr error
	for _, sess := range sessions {
		if err := s.flushSession(ctx, sess); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return len(sessions), firstErr
}

// flushSession writes outside the session lock so actions are never blocked
// on storage
func (s *service) flushSession(ctx context.Context, sess *GameSession) error {
	sess.mu.Lock()
	if !sess.dirty() {
		sess.mu.Unlock()
		return nil
	}
	p := sess.pending()
	sess.mu.Unlock()

	rev, err := s.write(ctx, sess.userID, p)
	if err != nil {
		slog.ErrorContext(ctx, "failed to persist session",
			"user_id", sess.userID,
			"version", p.version,
			"error", err.Error())
		return err
	}

	sess.mu.Lock()
	sess.recordStored(rev)
	clean := sess.markClean(p)
	sess.mu.Unlock()

	slog.DebugContext(ctx, "session persisted",
		"user_id", sess.userID,
		"version", p.version,
		"clean", clean)
	return nil
}

// write returns the profile revision it stored, or zero when the profile was
// not part of the write
func (s *service) write(ctx context.Context, userID string, p *pending) (int64, error) {
	var rev int64
	if p.profile != nil {
		out, err := s.profiles.Put(ctx, &profile.PutInput{Profile: p.profile})
		if err != nil {
			return 0, errors.Wrap(err, "failed to save profile")
		}
		rev = out.Profile.Revision
	}
	if p.inventory != nil {
		if _, err := s.inventory.Replace(ctx, &inventory.ReplaceInput{
			UserID: userID,
			Items:  p.inventory,
		}); err != nil {
			return 0, errors.Wrap(err, "failed to save inventory")
		}
	}
	for _, q := range p.quests {
		if _, err := s.quests.Save(ctx, &quests.SaveInput{UserID: userID, Quest: q}); err != nil {
			return 0, errors.Wrapf(err, "failed to save quest %s", q.ID)
		}
	}
	for _, id := range p.deleted {
		_, err := s.quests.Delete(ctx, &quests.DeleteInput{UserID: userID, QuestID: id})
		if err != nil && !errors.IsNotFound(err) {
			return 0, errors.Wrapf(err, "failed to delete quest %s", id)
		}
	}
	return rev, nil
}
