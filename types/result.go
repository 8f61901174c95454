package types

import (
	cmn "github.com/tendermint/tendermint/libs/common"
)

// Result is the union of ResponseDeliverTx and ResponseCheckTx.
type Result struct {
	// Code is the response code, is stored back on the chain.
	Code CodeType

	// Codespace is the string referring to the domain of an error
	Codespace CodespaceType

	// Data is any data returned from the app.
	Data []byte

	// Log is just debug information. NOTE: nondeterministic.
	Log string

	// Tags are used for transaction indexing and pubsub.
	Tags Tags
}

// IsOK reports whether the result carries CodeOK.
func (res Result) IsOK() bool {
	return res.Code.IsOK()
}

// Tags is the ordered tag list attached to a Result.
type Tags cmn.KVPairs

// NewTags builds tags from alternating string keys and []byte / string values.
func NewTags(tags ...interface{}) Tags {
	var ret Tags
	for i := 0; i+1 < len(tags); i += 2 {
		key := tags[i].(string)
		switch value := tags[i+1].(type) {
		case []byte:
			ret = ret.AppendTag(key, value)
		case string:
			ret = ret.AppendTag(key, []byte(value))
		default:
			panic("tag value should be []byte or string")
		}
	}
	return ret
}

// AppendTag appends a single tag.
func (t Tags) AppendTag(k string, v []byte) Tags {
	return append(t, cmn.KVPair{Key: []byte(k), Value: v})
}

// AppendTags appends tags from another list.
func (t Tags) AppendTags(tags Tags) Tags {
	return append(t, tags...)
}

// GetTag returns the first value stored under key.
func (t Tags) GetTag(key string) ([]byte, bool) {
	for _, kv := range t {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return nil, false
}
