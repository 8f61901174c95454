package feegov

import (
	"fmt"
	"runtime/debug"

	"github.com/pkg/errors"
	cmn "github.com/tendermint/tendermint/libs/common"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/clobchain/clobcore/codec"
	"github.com/clobchain/clobcore/store"
	sdk "github.com/clobchain/clobcore/types"
	"github.com/clobchain/clobcore/x/feegov/keeper"
	"github.com/clobchain/clobcore/x/feegov/types"
)

const replayChainID = "feegov-replay"

// PoolStep names a pool and its fee regime.
type PoolStep struct {
	Pool   sdk.PoolID `json:"pool"`
	Stable bool       `json:"stable"`
}

// ReplayStep is one entry of a governance script. Exactly one field is set.
type ReplayStep struct {
	InitPool  *PoolStep `json:"init_pool,omitempty"`
	SetStable *PoolStep `json:"set_stable,omitempty"`
	Msg       sdk.Msg   `json:"msg,omitempty"`
	EndEpoch  bool      `json:"end_epoch,omitempty"`
}

func (step ReplayStep) validate() error {
	set := 0
	if step.InitPool != nil {
		set++
	}
	if step.SetStable != nil {
		set++
	}
	if step.Msg != nil {
		set++
	}
	if step.EndEpoch {
		set++
	}
	if set != 1 {
		return fmt.Errorf("exactly one of init_pool, set_stable, msg and end_epoch must be set, got %d", set)
	}
	return nil
}

// ReplayScript is a genesis followed by the steps to apply on top of it. A nil
// genesis starts from the default params and no pools.
type ReplayScript struct {
	Genesis *GenesisState `json:"genesis,omitempty"`
	Steps   []ReplayStep  `json:"steps"`
}

type ReplayTag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// StepResult is the outcome of one step, committed as its own block.
type StepResult struct {
	Step      int               `json:"step"`
	Height    int64             `json:"height"`
	Epoch     uint64            `json:"epoch"`
	Code      sdk.CodeType      `json:"code"`
	Codespace sdk.CodespaceType `json:"codespace"`
	Log       string            `json:"log,omitempty"`
	Tags      []ReplayTag       `json:"tags,omitempty"`
	AppHash   cmn.HexBytes      `json:"app_hash"`
}

type ReplayResult struct {
	Steps   []StepResult `json:"steps"`
	State   GenesisState `json:"state"`
	AppHash cmn.HexBytes `json:"app_hash"`
}

// Replay applies script to a fresh store over db and commits after genesis and
// after every step. A step that fails, or a message that panics, is recorded and
// committed unchanged and the replay goes on. Only a malformed script or a
// non-empty db is an error.
func Replay(db dbm.DB, cdc *codec.Codec, logger log.Logger, script ReplayScript) (ReplayResult, error) {
	genesis := DefaultGenesisState()
	if script.Genesis != nil {
		genesis = *script.Genesis
	}
	if err := ValidateGenesis(genesis); err != nil {
		return ReplayResult{}, errors.Wrap(err, "invalid genesis")
	}
	for i, step := range script.Steps {
		if err := step.validate(); err != nil {
			return ReplayResult{}, errors.Wrapf(err, "invalid step %d", i)
		}
	}

	key := sdk.NewKVStoreKey(types.StoreKey)
	ms := store.NewCommitMultiStore(db)
	ms.MountStoreWithDB(key, nil)
	if err := ms.LoadLatestVersion(); err != nil {
		return ReplayResult{}, err
	}
	if ms.LastCommitID().Version != 0 {
		return ReplayResult{}, fmt.Errorf("replay db already holds version %d", ms.LastCommitID().Version)
	}

	k := keeper.NewKeeper(cdc, key, keeper.NopMetrics(), types.DefaultCodespace)
	handler := NewHandler(k)

	var epoch uint64
	for _, pg := range genesis.Pools {
		if pg.State.Epoch > epoch {
			epoch = pg.State.Epoch
		}
	}
	height := int64(1)
	ctx := sdk.NewContext(ms, sdk.Header{ChainID: replayChainID, Height: height, Epoch: epoch}, logger)
	InitGenesis(ctx, k, genesis)
	ms.Commit()

	results := make([]StepResult, 0, len(script.Steps))
	for i, step := range script.Steps {
		height++
		if step.EndEpoch {
			epoch++
		}
		ctx = ctx.WithBlockHeight(height).WithEpoch(epoch)

		var res sdk.Result
		switch {
		case step.InitPool != nil:
			res = errResult(k.InitPool(ctx, step.InitPool.Pool, step.InitPool.Stable))
		case step.SetStable != nil:
			res = errResult(k.SetStable(ctx, step.SetStable.Pool, step.SetStable.Stable))
		case step.Msg != nil:
			res = runMsg(ctx, handler, step.Msg)
		case step.EndEpoch:
			res = sdk.Result{Tags: EndEpoch(ctx, k)}
		}

		cid := ms.Commit()
		result := StepResult{
			Step:      i,
			Height:    height,
			Epoch:     epoch,
			Code:      res.Code,
			Codespace: res.Codespace,
			Log:       res.Log,
			AppHash:   cid.Hash,
		}
		for _, tag := range res.Tags {
			result.Tags = append(result.Tags, ReplayTag{Key: string(tag.Key), Value: string(tag.Value)})
		}
		if !res.IsOK() {
			ctx.Logger().Info("replay step failed", "step", i, "code", res.Code, "log", res.Log)
		}
		results = append(results, result)
	}

	return ReplayResult{
		Steps:   results,
		State:   ExportGenesis(ctx, k),
		AppHash: ms.LastCommitID().Hash,
	}, nil
}

// runMsg turns a panicking message into an internal error result. Keepers check
// before they write, so a panic leaves the store as it was.
func runMsg(ctx sdk.Context, handler sdk.Handler, msg sdk.Msg) (result sdk.Result) {
	defer func() {
		if r := recover(); r != nil {
			ctx.Logger().Error("replay msg panicked", "type", msg.Type(), "err", r, "stack", string(debug.Stack()))
			result = sdk.ErrInternal(fmt.Sprintf("recovered: %v", r)).Result()
		}
	}()
	return handler(ctx, msg)
}

func errResult(err sdk.Error) sdk.Result {
	if err != nil {
		return err.Result()
	}
	return sdk.Result{}
}
