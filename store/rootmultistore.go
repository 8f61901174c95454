package store

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/tendermint/tendermint/crypto/merkle"
	dbm "github.com/tendermint/tendermint/libs/db"

	sdk "github.com/clobchain/clobcore/types"
)

const (
	latestVersionKey = "s/latest"
	storePrefixFmt   = "s/k:%s/"
)

var _ sdk.MultiStore = (*CommitMultiStore)(nil)

// CommitMultiStore mounts one iavl tree per store key and commits them together.
// The commit hash is the simple merkle root over the (name, tree hash) pairs.
type CommitMultiStore struct {
	db         dbm.DB
	keepRecent int64

	keysByName map[string]sdk.StoreKey
	storeDBs   map[sdk.StoreKey]dbm.DB
	stores     map[sdk.StoreKey]*IavlStore

	lastCommitID sdk.CommitID
}

func NewCommitMultiStore(db dbm.DB) *CommitMultiStore {
	return &CommitMultiStore{
		db:         db,
		keysByName: make(map[string]sdk.StoreKey),
		storeDBs:   make(map[sdk.StoreKey]dbm.DB),
		stores:     make(map[sdk.StoreKey]*IavlStore),
	}
}

// SetPruning keeps only the keepRecent most recent versions of every store. 0 keeps all.
func (rs *CommitMultiStore) SetPruning(keepRecent int64) {
	rs.keepRecent = keepRecent
	for _, st := range rs.stores {
		st.keepRecent = keepRecent
	}
}

// MountStoreWithDB mounts a store under key. A nil db shares the multistore db under a
// per-store prefix.
func (rs *CommitMultiStore) MountStoreWithDB(key sdk.StoreKey, db dbm.DB) {
	if key == nil {
		panic("MountStoreWithDB() key cannot be nil")
	}
	if _, ok := rs.storeDBs[key]; ok {
		panic(fmt.Sprintf("store duplicate store key %v", key))
	}
	if _, ok := rs.keysByName[key.Name()]; ok {
		panic(fmt.Sprintf("store duplicate store key name %v", key))
	}
	if db == nil {
		db = dbm.NewPrefixDB(rs.db, []byte(fmt.Sprintf(storePrefixFmt, key.Name())))
	}
	rs.storeDBs[key] = db
	rs.keysByName[key.Name()] = key
}

// LoadLatestVersion loads every mounted store at the last committed version.
func (rs *CommitMultiStore) LoadLatestVersion() error {
	return rs.LoadVersion(getLatestVersion(rs.db))
}

// LoadVersion loads every mounted store at ver. Version 0 means empty stores.
func (rs *CommitMultiStore) LoadVersion(ver int64) error {
	stores := make(map[sdk.StoreKey]*IavlStore, len(rs.storeDBs))
	for key, db := range rs.storeDBs {
		st, err := LoadIAVLStore(db, ver, rs.keepRecent)
		if err != nil {
			return errors.Wrapf(err, "failed to load store %s", key.Name())
		}
		stores[key] = st
	}
	rs.stores = stores
	rs.lastCommitID = sdk.CommitID{Version: ver, Hash: rs.hash()}
	return nil
}

// GetKVStore implements MultiStore.
func (rs *CommitMultiStore) GetKVStore(key sdk.StoreKey) sdk.KVStore {
	st, ok := rs.stores[key]
	if !ok {
		panic(fmt.Sprintf("store %v is not mounted or not loaded", key))
	}
	return st
}

// GetStoreByName returns the store mounted under name, or nil.
func (rs *CommitMultiStore) GetStoreByName(name string) sdk.KVStore {
	key, ok := rs.keysByName[name]
	if !ok {
		return nil
	}
	return rs.stores[key]
}

// Commit saves a new version of every store and records it as the latest version.
func (rs *CommitMultiStore) Commit() sdk.CommitID {
	version := rs.lastCommitID.Version + 1
	for key, st := range rs.stores {
		cid := st.Commit()
		if cid.Version != version {
			panic(fmt.Sprintf("store %s committed version %d, expected %d", key.Name(), cid.Version, version))
		}
	}
	rs.lastCommitID = sdk.CommitID{Version: version, Hash: rs.hash()}
	setLatestVersion(rs.db, version)
	return rs.lastCommitID
}

func (rs *CommitMultiStore) LastCommitID() sdk.CommitID {
	return rs.lastCommitID
}

func (rs *CommitMultiStore) hash() []byte {
	if len(rs.stores) == 0 {
		return nil
	}
	m := make(map[string][]byte, len(rs.stores))
	for key, st := range rs.stores {
		m[key.Name()] = st.LastCommitID().Hash
	}
	return merkle.SimpleHashFromMap(m)
}

// StoreNames lists the mounted store names in sorted order.
func (rs *CommitMultiStore) StoreNames() []string {
	names := make([]string, 0, len(rs.keysByName))
	for name := range rs.keysByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func getLatestVersion(db dbm.DB) int64 {
	bz := db.Get([]byte(latestVersionKey))
	if len(bz) != 8 {
		return 0
	}
	return int64(binary.BigEndian.Uint64(bz))
}

func setLatestVersion(db dbm.DB, version int64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(version))
	db.SetSync([]byte(latestVersionKey), bz)
}
