package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/infrastructure/layoutfile"
)

func TestImportedName(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		descName string
		path     string
		want     string
	}{
		{"flag wins", " mine ", "inside", "/tmp/file.json", "mine"},
		{"name in file", "", "inside", "/tmp/file.json", "inside"},
		{"file name", "", "  ", "/tmp/dev-box.yaml", "dev-box"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := importedName(tt.flag, &entity.LayoutDescription{Name: tt.descName}, tt.path)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExportFormatFor(t *testing.T) {
	t.Cleanup(func() { exportFormat = "" })

	exportFormat = ""
	f, err := exportFormatFor("-")
	assert.NoError(t, err)
	assert.Equal(t, layoutfile.FormatJSON, f)

	f, err = exportFormatFor("out.toml")
	assert.NoError(t, err)
	assert.Equal(t, layoutfile.FormatTOML, f)

	exportFormat = "yml"
	f, err = exportFormatFor("out.json")
	assert.NoError(t, err)
	assert.Equal(t, layoutfile.FormatYAML, f)

	exportFormat = "xml"
	_, err = exportFormatFor("-")
	assert.ErrorIs(t, err, layoutfile.ErrUnknownFormat)
}

func TestDescribeProfile(t *testing.T) {
	assert.Equal(t, "$ htop", describeProfile("htop", ""))
	assert.Equal(t, "in /srv", describeProfile("", "/srv"))
	assert.Equal(t, "$ htop in /srv", describeProfile("htop", "/srv"))
}

func TestRootCommandTree(t *testing.T) {
	want := []string{"config", "gen-docs", "keys", "launch", "layouts", "profiles", "version"}
	var got []string
	for _, c := range rootCmd.Commands() {
		got = append(got, c.Name())
	}
	assert.Subset(t, got, want)

	sub, _, err := rootCmd.Find([]string{"layouts", "rm"})
	assert.NoError(t, err)
	assert.Equal(t, "delete", sub.Name())
}
