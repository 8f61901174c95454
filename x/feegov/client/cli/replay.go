package cli

import (
	"io/ioutil"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/clobchain/clobcore/client"
	"github.com/clobchain/clobcore/codec"
	"github.com/clobchain/clobcore/x/feegov"
)

const replayDBName = "feegov-replay"

// GetCmdReplay replays a governance script and prints every step result with
// the final state and app hash.
func GetCmdReplay(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay [script]",
		Short: "Replay a fee governance script on a fresh store",
		Long: `Replay a fee governance script on a fresh store.

The script is amino JSON: an optional "genesis" and a list of "steps", each one of
init_pool, set_stable, msg or end_epoch. Without a genesis the params of the
config file are used. With --db-dir the store is kept in a goleveldb database.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := ioutil.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "failed to read script")
			}
			var script feegov.ReplayScript
			if err := cdc.UnmarshalJSON(bz, &script); err != nil {
				return errors.Wrap(err, "failed to decode script")
			}
			if script.Genesis == nil {
				params, err := client.LoadParams()
				if err != nil {
					return err
				}
				genesis := feegov.NewGenesisState(params, nil)
				script.Genesis = &genesis
			}

			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			db, err := openDB(viper.GetString(FlagDBDir))
			if err != nil {
				return err
			}
			defer db.Close()

			res, err := feegov.Replay(db, cdc, logger, script)
			if err != nil {
				return err
			}
			return client.PrintOutput(cmd.OutOrStdout(), cdc, res)
		},
	}
	cmd.Flags().String(FlagDBDir, "", "directory of an on-disk store, in memory if empty")
	cmd.Flags().String(FlagLogLevel, "error", "log level of the replayed modules")
	return cmd
}

func newLogger(cmd *cobra.Command) (log.Logger, error) {
	option, err := log.AllowLevel(viper.GetString(FlagLogLevel))
	if err != nil {
		return nil, err
	}
	logger := log.NewTMLogger(log.NewSyncWriter(cmd.OutOrStderr()))
	return log.NewFilter(logger, option), nil
}

func openDB(dir string) (db dbm.DB, err error) {
	if dir == "" {
		return dbm.NewMemDB(), nil
	}
	defer func() {
		// goleveldb panics on a directory it cannot open
		if r := recover(); r != nil {
			err = errors.Errorf("failed to open %s: %v", dir, r)
		}
	}()
	return dbm.NewDB(replayDBName, dbm.GoLevelDBBackend, filepath.Clean(dir)), nil
}
