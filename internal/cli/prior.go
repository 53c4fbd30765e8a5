package cli

import (
	"github.com/BurntSushi/toml"

	"github.com/msartori/causalgo/pkg/errors"
	"github.com/msartori/causalgo/pkg/prior"
)

// priorFile is the on-disk TOML schema for prior knowledge. Each entry is a
// (from, to) label pair:
//
//	forbidden = [["wet", "rain"]]
//	required  = [["rain", "wet"]]
type priorFile struct {
	Forbidden [][]string `toml:"forbidden"`
	Required  [][]string `toml:"required"`
}

// loadPrior reads prior knowledge from a TOML file. An empty path yields
// unconstrained prior knowledge over the given labels.
func loadPrior(path string, labels []string) (*prior.ForbiddenRequired, error) {
	if path == "" {
		return prior.NewForbiddenRequired(labels, nil, nil)
	}

	var pf priorFile
	if _, err := toml.DecodeFile(path, &pf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse prior file %s", path)
	}

	forbidden, err := toPairs(pf.Forbidden, "forbidden")
	if err != nil {
		return nil, err
	}
	required, err := toPairs(pf.Required, "required")
	if err != nil {
		return nil, err
	}
	return prior.NewForbiddenRequired(labels, forbidden, required)
}

func toPairs(raw [][]string, what string) ([][2]string, error) {
	pairs := make([][2]string, 0, len(raw))
	for _, p := range raw {
		if len(p) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"%s entry %v must have exactly two labels", what, p)
		}
		pairs = append(pairs, [2]string{p[0], p[1]})
	}
	return pairs, nil
}
