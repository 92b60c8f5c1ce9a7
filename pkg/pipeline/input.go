package pipeline

import (
	"os"

	"github.com/matzehuels/genogrid/pkg/genotype"
)

// ReadItems reads genotype calls from path, or from stdin when path is "-".
func ReadItems(path string, opts Options) ([]string, error) {
	opts.SetDefaults()
	readOpts := []genotype.Option{genotype.WithField(opts.Field)}
	if opts.SkipNoCalls {
		readOpts = append(readOpts, genotype.WithSkip(genotype.NoCall))
	}
	if path == "-" {
		return genotype.Read(os.Stdin, readOpts...)
	}
	return genotype.ReadFile(path, readOpts...)
}
