package client

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"

	"github.com/clobchain/clobcore/codec"
)

// PrintOutput writes obj as amino JSON. Output to a terminal, or with --indent,
// is indented; piped output stays on one line.
func PrintOutput(w io.Writer, cdc *codec.Codec, obj interface{}) error {
	indent := viper.GetBool(FlagIndent) || (w == os.Stdout && outputIsTty())
	bz, err := codec.MarshalJSONPretty(cdc, obj, indent)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(bz))
	return err
}

func outputIsTty() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
