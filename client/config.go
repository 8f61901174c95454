package client

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/cli"

	"github.com/clobchain/clobcore/codec"
	sdk "github.com/clobchain/clobcore/types"
	fgtypes "github.com/clobchain/clobcore/x/feegov/types"
)

const (
	configDir      = "config"
	configFileName = "config.toml"
	configSection  = "feegov"
)

type FeeBoundsConfig struct {
	MinTakerFee uint64 `toml:"min_taker_fee" mapstructure:"min_taker_fee"`
	MaxTakerFee uint64 `toml:"max_taker_fee" mapstructure:"max_taker_fee"`
	MinMakerFee uint64 `toml:"min_maker_fee" mapstructure:"min_maker_fee"`
	MaxMakerFee uint64 `toml:"max_maker_fee" mapstructure:"max_maker_fee"`
}

// FeeGovConfig is the [feegov] section of config.toml. Fees are scaled by
// 1e9; excess_weight is a decimal string.
type FeeGovConfig struct {
	Volatile       FeeBoundsConfig `toml:"volatile" mapstructure:"volatile"`
	Stable         FeeBoundsConfig `toml:"stable" mapstructure:"stable"`
	StakeThreshold uint64          `toml:"stake_threshold" mapstructure:"stake_threshold"`
	ExcessWeight   string          `toml:"excess_weight" mapstructure:"excess_weight"`
	TakerFee       uint64          `toml:"taker_fee" mapstructure:"taker_fee"`
	MakerFee       uint64          `toml:"maker_fee" mapstructure:"maker_fee"`
	StakeRequired  uint64          `toml:"stake_required" mapstructure:"stake_required"`
}

type Config struct {
	FeeGov FeeGovConfig `toml:"feegov" mapstructure:"feegov"`
}

func DefaultConfig() Config {
	return ConfigFromParams(fgtypes.DefaultParams())
}

func ConfigFromParams(params fgtypes.Params) Config {
	bounds := func(b fgtypes.FeeBounds) FeeBoundsConfig {
		return FeeBoundsConfig{
			MinTakerFee: b.MinTakerFee,
			MaxTakerFee: b.MaxTakerFee,
			MinMakerFee: b.MinMakerFee,
			MaxMakerFee: b.MaxMakerFee,
		}
	}
	return Config{
		FeeGov: FeeGovConfig{
			Volatile:       bounds(params.VolatileFees),
			Stable:         bounds(params.StableFees),
			StakeThreshold: params.Curve.Threshold,
			ExcessWeight:   params.Curve.ExcessWeight.String(),
			TakerFee:       params.DefaultTradeParams.TakerFee,
			MakerFee:       params.DefaultTradeParams.MakerFee,
			StakeRequired:  params.DefaultTradeParams.StakeRequired,
		},
	}
}

// Params converts the section back and runs the params range checks.
func (c FeeGovConfig) Params() (fgtypes.Params, error) {
	weight, sdkErr := sdk.NewDecFromStr(c.ExcessWeight)
	if sdkErr != nil {
		return fgtypes.Params{}, fmt.Errorf("excess_weight %q: %s", c.ExcessWeight, sdkErr.Msg())
	}
	bounds := func(b FeeBoundsConfig) fgtypes.FeeBounds {
		return fgtypes.FeeBounds{
			MinTakerFee: b.MinTakerFee,
			MaxTakerFee: b.MaxTakerFee,
			MinMakerFee: b.MinMakerFee,
			MaxMakerFee: b.MaxMakerFee,
		}
	}
	params := fgtypes.Params{
		VolatileFees: bounds(c.Volatile),
		StableFees:   bounds(c.Stable),
		Curve: fgtypes.VotingPowerCurve{
			Threshold:    c.StakeThreshold,
			ExcessWeight: weight,
		},
		DefaultTradeParams: fgtypes.TradeParams{
			TakerFee:      c.TakerFee,
			MakerFee:      c.MakerFee,
			StakeRequired: c.StakeRequired,
		},
	}
	if err := params.UpdateCheck(); err != nil {
		return fgtypes.Params{}, err
	}
	return params, nil
}

func ConfigFilePath(home string) string {
	return filepath.Join(home, configDir, configFileName)
}

func WriteConfigFile(path string, cfg Config) error {
	bz, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to encode config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "failed to create %s", filepath.Dir(path))
	}
	return ioutil.WriteFile(path, bz, 0644)
}

func ReadConfigFile(path string) (Config, error) {
	tree, err := toml.LoadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read %s", path)
	}
	cfg := DefaultConfig()
	if err := tree.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrapf(err, "failed to decode %s", path)
	}
	return cfg, nil
}

// LoadParams returns the fee governance params of the config file viper loaded,
// or the defaults when there is none.
func LoadParams() (fgtypes.Params, error) {
	if !viper.IsSet(configSection) {
		return fgtypes.DefaultParams(), nil
	}
	cfg := DefaultConfig()
	if err := viper.UnmarshalKey(configSection, &cfg.FeeGov); err != nil {
		return fgtypes.Params{}, errors.Wrap(err, "failed to decode [feegov] config")
	}
	return cfg.FeeGov.Params()
}

// ConfigCmd returns the `config` command with its init and show subcommands.
func ConfigCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the clobcli configuration file",
	}
	cmd.AddCommand(configInitCmd(), configShowCmd(cdc))
	return cmd
}

func configInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default params to <home>/config/config.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ConfigFilePath(viper.GetString(cli.HomeFlag))
			if _, err := os.Stat(path); err == nil && !viper.GetBool(FlagForce) {
				buf := bufio.NewReader(cmd.InOrStdin())
				ok, err := GetConfirmation(fmt.Sprintf("%s exists, overwrite?", path), buf, cmd.OutOrStderr())
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}
			if err := WriteConfigFile(path, DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().Bool(FlagForce, false, "overwrite an existing config file without asking")
	return cmd
}

func configShowCmd(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the fee governance params in force",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := LoadParams()
			if err != nil {
				return err
			}
			return PrintOutput(cmd.OutOrStdout(), cdc, params)
		},
	}
}
