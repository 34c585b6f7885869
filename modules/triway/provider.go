package triway

import (
	"context"
	"fmt"

	"github.com/ashgrove/trimerge3/modules/command"
)

// Provider drives an external line-diff program the way GNU diff3
// shells out to `diff`: invoked as `path [args...] -- other common`
// (file1 = the side file, file2 = the common file, so normal diff(1)'s
// '<'/'>' prefixes land on A and C respectively), its normal-format
// stdout is parsed into a PairHunk chain and its exit status is
// classified into "no differences", "differences found", or Trouble.
type Provider struct {
	// Path is the diff program to invoke; "diff" if empty.
	Path string
	// Args are forwarded verbatim ahead of the file operands, e.g.
	// "-a", "--strip-trailing-cr", "--horizon-lines=100".
	Args []string
}

func NewProvider() *Provider {
	return &Provider{Path: "diff"}
}

// Diff runs the provider comparing other against common and returns
// the resulting hunk chain. A clean comparison (exit 0) returns a nil,
// empty chain with no error.
func (p *Provider) Diff(ctx context.Context, other, common string) ([]*PairHunk, error) {
	path := p.Path
	if path == "" {
		path = "diff"
	}
	args := make([]string, 0, len(p.Args)+3)
	args = append(args, p.Args...)
	args = append(args, "--", other, common)

	cmd := command.New(ctx, path, args...)
	out, err := cmd.Output()
	if err == nil {
		return nil, nil
	}

	switch code := command.FromErrorCode(err); {
	case code == 1:
		return ParseHunks(out)
	case code == 126:
		return nil, newProviderTrouble(path, "could not be invoked", err)
	case code == 127:
		return nil, newProviderTrouble(path, "not found", err)
	case code < 0:
		return nil, newProviderTrouble(path, "could not be started", err)
	default:
		return nil, newProviderTrouble(path, fmt.Sprintf("failed (status %d)", code), err)
	}
}
