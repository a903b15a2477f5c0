package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/raceleague/steward/internal/model"
	"github.com/raceleague/steward/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Driver operations

func (s *Storage) SaveDriver(ctx context.Context, driver *model.Driver) error {
	data, err := json.Marshal(driver)
	if err != nil {
		return err
	}

	// Pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, driverKey(driver.ID), data, 0)
	pipe.SAdd(ctx, driversIndexKey(), string(driver.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetDriver(ctx context.Context, id model.DriverID) (*model.Driver, error) {
	data, err := s.client.Get(ctx, driverKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrDriverNotFound
		}
		return nil, err
	}

	var driver model.Driver
	if err := json.Unmarshal(data, &driver); err != nil {
		return nil, err
	}
	return &driver, nil
}

func (s *Storage) ListDrivers(ctx context.Context) ([]*model.Driver, error) {
	ids, err := s.client.SMembers(ctx, driversIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []*model.Driver{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = driverKey(model.DriverID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	drivers := make([]*model.Driver, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // index entry without a record
		}
		var driver model.Driver
		if err := json.Unmarshal([]byte(val.(string)), &driver); err != nil {
			continue // skip invalid data
		}
		drivers = append(drivers, &driver)
	}

	return drivers, nil
}

func (s *Storage) DeleteDriver(ctx context.Context, id model.DriverID) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, driverKey(id))
	pipe.SRem(ctx, driversIndexKey(), string(id))
	_, err := pipe.Exec(ctx)
	return err
}

// Penalty operations

func (s *Storage) NextPenaltyID(ctx context.Context) (model.PenaltyID, error) {
	id, err := s.client.Incr(ctx, penaltySeqKey()).Result()
	if err != nil {
		return 0, err
	}
	return model.PenaltyID(id), nil
}

func (s *Storage) SavePenaltyEntry(ctx context.Context, entry *model.PenaltyEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	key := penaltyKey(entry.ID)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, penaltiesForDriverIndexKey(entry.DriverID), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPenaltyEntries(ctx context.Context, driverID model.DriverID) ([]*model.PenaltyEntry, error) {
	keys, err := s.client.SMembers(ctx, penaltiesForDriverIndexKey(driverID)).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return nil, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]*model.PenaltyEntry, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var entry model.PenaltyEntry
		if err := json.Unmarshal([]byte(val.(string)), &entry); err != nil {
			continue // skip invalid data
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

func (s *Storage) DeletePenaltyEntry(ctx context.Context, driverID model.DriverID, id model.PenaltyID) error {
	key := penaltyKey(id)

	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, penaltiesForDriverIndexKey(driverID), key)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) DeletePenaltyEntriesForDriver(ctx context.Context, driverID model.DriverID) error {
	indexKey := penaltiesForDriverIndexKey(driverID)

	keys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	for _, key := range keys {
		pipe.Del(ctx, key)
	}
	pipe.Del(ctx, indexKey)
	_, err = pipe.Exec(ctx)
	return err
}

// Ban operations

func (s *Storage) NextBanID(ctx context.Context) (model.BanID, error) {
	id, err := s.client.Incr(ctx, banSeqKey()).Result()
	if err != nil {
		return 0, err
	}
	return model.BanID(id), nil
}

func (s *Storage) SaveBan(ctx context.Context, ban *model.Ban) error {
	data, err := json.Marshal(ban)
	if err != nil {
		return err
	}

	key := banKey(ban.ID)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, bansIndexKey(), key)
	pipe.SAdd(ctx, bansForDriverIndexKey(ban.DriverID), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ListBans(ctx context.Context) ([]*model.Ban, error) {
	keys, err := s.client.SMembers(ctx, bansIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.Ban{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	bans := make([]*model.Ban, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var ban model.Ban
		if err := json.Unmarshal([]byte(val.(string)), &ban); err != nil {
			continue // skip invalid data
		}
		bans = append(bans, &ban)
	}

	return bans, nil
}

func (s *Storage) GetBansForDriver(ctx context.Context, driverID model.DriverID) ([]*model.Ban, error) {
	keys, err := s.client.SMembers(ctx, bansForDriverIndexKey(driverID)).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return nil, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	bans := make([]*model.Ban, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var ban model.Ban
		if err := json.Unmarshal([]byte(val.(string)), &ban); err != nil {
			continue
		}
		bans = append(bans, &ban)
	}

	return bans, nil
}

func (s *Storage) DeleteBan(ctx context.Context, id model.BanID) error {
	key := banKey(id)

	// Fetch the record first so the per-driver index can be cleaned up
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}

	var ban model.Ban
	if err := json.Unmarshal(data, &ban); err != nil {
		// Still drop the record and global index entry
		pipe := s.client.Pipeline()
		pipe.Del(ctx, key)
		pipe.SRem(ctx, bansIndexKey(), key)
		_, err := pipe.Exec(ctx)
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, bansIndexKey(), key)
	pipe.SRem(ctx, bansForDriverIndexKey(ban.DriverID), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) DeleteBansForDriver(ctx context.Context, driverID model.DriverID) error {
	indexKey := bansForDriverIndexKey(driverID)

	keys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	for _, key := range keys {
		pipe.Del(ctx, key)
		pipe.SRem(ctx, bansIndexKey(), key)
	}
	pipe.Del(ctx, indexKey)
	_, err = pipe.Exec(ctx)
	return err
}

// Steward operations

func (s *Storage) SaveSteward(ctx context.Context, steward *model.Steward) error {
	data, err := json.Marshal(steward)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, stewardKey(steward.Username), data, 0).Err()
}

func (s *Storage) GetSteward(ctx context.Context, username string) (*model.Steward, error) {
	data, err := s.client.Get(ctx, stewardKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrStewardNotFound
		}
		return nil, err
	}

	var steward model.Steward
	if err := json.Unmarshal(data, &steward); err != nil {
		return nil, err
	}
	return &steward, nil
}
