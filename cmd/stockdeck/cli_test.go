package main

import (
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/tturner/stockdeck/internal/catalog"
)

func TestRequiredFlagsErrors(t *testing.T) {
	tests := []struct {
		name    string
		cmd     func() *cobra.Command
		args    []string
		wantErr string
	}{
		{
			name:    "create missing name",
			cmd:     newCreateCmd,
			args:    nil,
			wantErr: `required flag(s) "name" not set`,
		},
		{
			name:    "update missing id",
			cmd:     newUpdateCmd,
			args:    []string{"--name", "Widget"},
			wantErr: "accepts 1 arg(s), received 0",
		},
		{
			name:    "get missing id",
			cmd:     newGetCmd,
			args:    nil,
			wantErr: "accepts 1 arg(s), received 0",
		},
		{
			name:    "delete missing id",
			cmd:     newDeleteCmd,
			args:    nil,
			wantErr: "accepts 1 arg(s), received 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := tt.cmd()
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)
			cmd.SetArgs(tt.args)
			err := cmd.Execute()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestItemFlagsValidation(t *testing.T) {
	tests := []struct {
		name    string
		flags   itemFlags
		wantErr string
	}{
		{
			name:  "valid",
			flags: itemFlags{name: "Widget", quantity: 3, price: 2.5},
		},
		{
			name:    "blank name",
			flags:   itemFlags{name: "  ", quantity: 3, price: 2.5},
			wantErr: "name",
		},
		{
			name:    "negative quantity",
			flags:   itemFlags{name: "Widget", quantity: -1, price: 2.5},
			wantErr: "quantity",
		},
		{
			name:    "negative price",
			flags:   itemFlags{name: "Widget", quantity: 3, price: -2.5},
			wantErr: "price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.flags.input()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestBuildListFilter(t *testing.T) {
	// Exercised through the flag set rather than the struct so the
	// Changed bookkeeping matches a real invocation.
	cmd := newListCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	if err := cmd.Flags().Parse([]string{"--min-price", "5", "--desc"}); err != nil {
		t.Fatal(err)
	}
	if !cmd.Flags().Changed("min-price") {
		t.Fatal("min-price should be marked changed")
	}
	if cmd.Flags().Changed("max-price") {
		t.Fatal("max-price should not be marked changed")
	}
}

func TestPrintItemTableHandlesEmpty(t *testing.T) {
	// Must not panic with no rows.
	printItemTable(nil)
	printItemTable([]catalog.Item{{ID: 1, Name: "Widget", Quantity: 3, Price: 2.5}})
}
