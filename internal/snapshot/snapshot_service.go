package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"
	"sync"

	"go-dinas/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"
)

// Store is what the snapshot service needs from store.DB.
type Store interface {
	Snapshot() (map[string]json.RawMessage, error)
	Restore(data map[string]json.RawMessage) error
}

type Service interface {
	// Restore loads the persisted snapshot; false means nothing was stored yet.
	Restore(ctx context.Context) (bool, error)
	// Flush writes collections that changed since the previous flush.
	Flush(ctx context.Context) (int, error)
}

type service struct {
	repo   Repository
	store  Store
	sf     *singleflight.Group
	mu     sync.Mutex
	last   map[string][]byte
	logger *zap.Logger
}

func NewService(repo Repository, store Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("snapshot.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("snapshot.service")
	}
	return &service{
		repo:   repo,
		store:  store,
		sf:     &singleflight.Group{},
		last:   map[string][]byte{},
		logger: l,
	}
}

func (s *service) Restore(ctx context.Context) (bool, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	rows, err := s.repo.LoadAll(ctx)
	if err != nil {
		return false, err
	}
	if len(rows) == 0 {
		log.Info("no stored snapshot found")
		return false, nil
	}

	data := make(map[string]json.RawMessage, len(rows))
	for _, row := range rows {
		data[row.Collection] = json.RawMessage(row.Data)
	}
	if err := s.store.Restore(data); err != nil {
		log.Error("restore snapshot failed", zap.Error(err))
		return false, err
	}

	s.mu.Lock()
	for name, raw := range data {
		s.last[name] = bytes.Clone(raw)
	}
	s.mu.Unlock()

	log.Info("store restored from snapshot", zap.Int("collections", len(rows)))
	return true, nil
}

func (s *service) Flush(ctx context.Context) (int, error) {
	v, err, _ := s.sf.Do("flush", func() (interface{}, error) {
		return s.flush(ctx)
	})
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

func (s *service) flush(ctx context.Context) (int, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	data, err := s.store.Snapshot()
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	rows := make([]StoreSnapshot, 0, len(data))
	for name, raw := range data {
		if bytes.Equal(s.last[name], raw) {
			continue
		}
		rows = append(rows, StoreSnapshot{Collection: name, Data: datatypes.JSON(raw)})
	}
	s.mu.Unlock()

	if len(rows) == 0 {
		return 0, nil
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Collection < rows[j].Collection })

	if err := s.repo.SaveAll(ctx, rows); err != nil {
		log.Error("flush snapshot failed", zap.Int("collections", len(rows)), zap.Error(err))
		return 0, err
	}

	s.mu.Lock()
	for _, row := range rows {
		s.last[row.Collection] = bytes.Clone(row.Data)
	}
	s.mu.Unlock()

	log.Debug("snapshot flushed", zap.Int("collections", len(rows)))
	return len(rows), nil
}
