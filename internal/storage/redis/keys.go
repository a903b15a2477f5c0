package redis

import (
	"fmt"

	"github.com/raceleague/steward/internal/model"
)

// Key prefix for all steward data
const keyPrefix = "steward"

// Key generation functions for each entity type

// driverKey returns the Redis key for a Driver
func driverKey(id model.DriverID) string {
	return fmt.Sprintf("%s:driver:%s", keyPrefix, id)
}

// driversIndexKey returns the Redis key for the SET of all driver ids
func driversIndexKey() string {
	return fmt.Sprintf("%s:idx:drivers", keyPrefix)
}

// penaltyKey returns the Redis key for a PenaltyEntry
func penaltyKey(id model.PenaltyID) string {
	return fmt.Sprintf("%s:penalty:%d", keyPrefix, id)
}

// penaltiesForDriverIndexKey returns the Redis key for the SET of penalty
// keys belonging to a driver
func penaltiesForDriverIndexKey(driverID model.DriverID) string {
	return fmt.Sprintf("%s:idx:penalties_for_driver:%s", keyPrefix, driverID)
}

// penaltySeqKey returns the Redis key of the penalty id sequence counter
func penaltySeqKey() string {
	return fmt.Sprintf("%s:seq:penalty", keyPrefix)
}

// banKey returns the Redis key for a Ban
func banKey(id model.BanID) string {
	return fmt.Sprintf("%s:ban:%d", keyPrefix, id)
}

// bansIndexKey returns the Redis key for the SET of all ban keys
func bansIndexKey() string {
	return fmt.Sprintf("%s:idx:bans", keyPrefix)
}

// bansForDriverIndexKey returns the Redis key for the SET of ban keys
// belonging to a driver
func bansForDriverIndexKey(driverID model.DriverID) string {
	return fmt.Sprintf("%s:idx:bans_for_driver:%s", keyPrefix, driverID)
}

// banSeqKey returns the Redis key of the ban id sequence counter
func banSeqKey() string {
	return fmt.Sprintf("%s:seq:ban", keyPrefix)
}

// stewardKey returns the Redis key for a Steward account
func stewardKey(username string) string {
	return fmt.Sprintf("%s:steward:%s", keyPrefix, username)
}
