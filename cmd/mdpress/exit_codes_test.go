package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mkrylov/go-mdpress/internal/config"
	"github.com/mkrylov/go-mdpress/internal/dateutil"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: ExitSuccess},
		{name: "invalid args", err: ErrInvalidArgs, want: ExitUsage},
		{name: "wrapped invalid args", err: fmt.Errorf("outer: %w", ErrInvalidArgs), want: ExitUsage},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "empty config name", err: config.ErrEmptyConfigName, want: ExitUsage},
		{name: "config parse", err: config.ErrConfigParse, want: ExitUsage},
		{name: "field too long", err: config.ErrFieldTooLong, want: ExitUsage},
		{name: "bad date format", err: dateutil.ErrInvalidDateFormat, want: ExitUsage},
		{name: "missing input", err: fmt.Errorf("%w: x.md", ErrInputNotFound), want: ExitGeneral},
		{name: "read failure", err: ErrReadInput, want: ExitGeneral},
		{name: "write failure", err: ErrWriteOutput, want: ExitGeneral},
		{name: "arbitrary error", err: errors.New("boom"), want: ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
