package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestPathsCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{
			name: "database path",
			args: []string{"paths", "database"},
			want: "db.sqlite3",
		},
		{
			name: "config path",
			args: []string{"paths", "config"},
			want: "config.yaml",
		},
		{
			name:    "unknown target",
			args:    []string{"paths", "cache"},
			wantErr: true,
		},
		{
			name:    "no target",
			args:    []string{"paths"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(resetFlags)
			rootCmd.SetArgs(tt.args)
			var stdout bytes.Buffer
			rootCmd.SetOut(&stdout)
			rootCmd.SetErr(&stdout)

			err := rootCmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("output = %q, want it to contain %q", stdout.String(), tt.want)
			}
		})
	}
}

func TestPathsCommand_HonorsOverrides(t *testing.T) {
	t.Cleanup(resetFlags)
	rootCmd.SetArgs([]string{"--db", "/custom/place/db.sqlite3", "paths", "database"})
	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "/custom/place/db.sqlite3") {
		t.Errorf("output = %q, want the --db override", stdout.String())
	}
}
