package tr

import (
	"io"

	"github.com/BurntSushi/toml"
)

func decodeTOML(r io.Reader, v *map[string]any) error {
	_, err := toml.NewDecoder(r).Decode(v)
	return err
}
