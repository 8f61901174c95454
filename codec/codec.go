package codec

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	amino "github.com/tendermint/go-amino"
)

// amino codec to marshal/unmarshal
type Codec = amino.Codec

func New() *Codec {
	cdc := amino.NewCodec()
	return cdc
}

// MarshalJSONIndent provides a utility for indented JSON encoding of an object
// via an Amino codec. It returns an error if it cannot serialize or indent as
// JSON.
func MarshalJSONIndent(cdc *Codec, obj interface{}) ([]byte, error) {
	bz, err := cdc.MarshalJSON(obj)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal json")
	}

	var out bytes.Buffer
	err = json.Indent(&out, bz, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to indent json")
	}
	return out.Bytes(), nil
}

// MustMarshalJSONIndent executes MarshalJSONIndent except it panics upon failure.
func MustMarshalJSONIndent(cdc *Codec, obj interface{}) []byte {
	bz, err := MarshalJSONIndent(cdc, obj)
	if err != nil {
		panic(err)
	}
	return bz
}

// attempt to make some pretty json
func MarshalJSONPretty(cdc *Codec, obj interface{}, indent bool) ([]byte, error) {
	if indent {
		return MarshalJSONIndent(cdc, obj)
	}
	return cdc.MarshalJSON(obj)
}

// generic sealed codec to be used throughout sdk
var Cdc *Codec

func init() {
	cdc := New()
	Cdc = cdc.Seal()
}
