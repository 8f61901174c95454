package store

import (
	"github.com/pkg/errors"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"

	sdk "github.com/clobchain/clobcore/types"
)

const (
	defaultIAVLCacheSize = 10000
)

// load the iavl store
func LoadIAVLStore(db dbm.DB, version int64, keepRecent int64) (*IavlStore, error) {
	tree := iavl.NewMutableTree(db, defaultIAVLCacheSize)
	_, err := tree.LoadVersion(version)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load iavl version %d", version)
	}
	return newIAVLStore(tree, keepRecent), nil
}

//----------------------------------------

var _ sdk.KVStore = (*IavlStore)(nil)

// IavlStore Implements KVStore and the commit operations of a versioned merkle store.
type IavlStore struct {

	// The underlying tree.
	Tree *iavl.MutableTree

	// Number of recent versions kept on disk, 0 keeps everything.
	keepRecent int64
}

// CONTRACT: tree should be fully loaded.
func newIAVLStore(tree *iavl.MutableTree, keepRecent int64) *IavlStore {
	return &IavlStore{
		Tree:       tree,
		keepRecent: keepRecent,
	}
}

// Commit saves a new version and releases versions older than keepRecent.
func (st *IavlStore) Commit() sdk.CommitID {
	hash, version, err := st.Tree.SaveVersion()
	if err != nil {
		// a failed save means the on-disk state diverged from memory, nothing sane to continue with.
		panic(err)
	}

	if st.keepRecent > 0 {
		stale := version - st.keepRecent
		if stale > 0 && st.Tree.VersionExists(stale) {
			st.Tree.DeleteVersion(stale)
		}
	}

	return sdk.CommitID{
		Version: version,
		Hash:    hash,
	}
}

func (st *IavlStore) LastCommitID() sdk.CommitID {
	return sdk.CommitID{
		Version: st.Tree.Version(),
		Hash:    st.Tree.Hash(),
	}
}

// VersionExists returns whether or not a given version is stored.
func (st *IavlStore) VersionExists(version int64) bool {
	return st.Tree.VersionExists(version)
}

// Implements KVStore.
func (st *IavlStore) Set(key, value []byte) {
	if value == nil {
		panic("value is nil")
	}
	st.Tree.Set(key, value)
}

// Implements KVStore.
func (st *IavlStore) Get(key []byte) (value []byte) {
	_, v := st.Tree.Get(key)
	return v
}

// Implements KVStore.
func (st *IavlStore) Has(key []byte) (exists bool) {
	return st.Tree.Has(key)
}

// Implements KVStore.
func (st *IavlStore) Delete(key []byte) {
	st.Tree.Remove(key)
}

// Implements KVStore.
func (st *IavlStore) Iterator(start, end []byte) sdk.Iterator {
	return newIAVLIterator(st.Tree.ImmutableTree, start, end, true)
}

// Implements KVStore.
func (st *IavlStore) ReverseIterator(start, end []byte) sdk.Iterator {
	return newIAVLIterator(st.Tree.ImmutableTree, start, end, false)
}

//----------------------------------------

type kvPair struct {
	key, value []byte
}

// iavlIterator walks a snapshot of the requested domain taken when it is created.
// The snapshot makes the iterator safe to hold while the caller writes to the
// same store, at the price of materialising the domain up front.
type iavlIterator struct {
	start, end []byte
	items      []kvPair
	pos        int
}

var _ sdk.Iterator = (*iavlIterator)(nil)

func newIAVLIterator(tree *iavl.ImmutableTree, start, end []byte, ascending bool) *iavlIterator {
	iter := &iavlIterator{
		start: cp(start),
		end:   cp(end),
	}
	tree.IterateRange(start, end, ascending, func(key, value []byte) bool {
		iter.items = append(iter.items, kvPair{key: cp(key), value: cp(value)})
		return false
	})
	return iter
}

// Implements Iterator.
func (iter *iavlIterator) Domain() (start, end []byte) {
	return iter.start, iter.end
}

// Implements Iterator.
func (iter *iavlIterator) Valid() bool {
	return iter.pos < len(iter.items)
}

// Implements Iterator.
func (iter *iavlIterator) Next() {
	iter.assertIsValid()
	iter.pos++
}

// Implements Iterator.
func (iter *iavlIterator) Key() []byte {
	iter.assertIsValid()
	return iter.items[iter.pos].key
}

// Implements Iterator.
func (iter *iavlIterator) Value() []byte {
	iter.assertIsValid()
	return iter.items[iter.pos].value
}

// Implements Iterator.
func (iter *iavlIterator) Close() {
	iter.items = nil
	iter.pos = 0
}

func (iter *iavlIterator) assertIsValid() {
	if !iter.Valid() {
		panic("invalid iterator")
	}
}

//----------------------------------------

func cp(bz []byte) (ret []byte) {
	if bz == nil {
		return nil
	}
	ret = make([]byte, len(bz))
	copy(ret, bz)
	return ret
}
