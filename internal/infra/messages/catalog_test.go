package messages

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsComplete(t *testing.T) {
	c := Default()

	v := reflect.ValueOf(*c)
	for i := 0; i < v.NumField(); i++ {
		assert.NotEmpty(t, v.Field(i).String(), "missing sentence for %s", v.Type().Field(i).Tag.Get("yaml"))
	}
}

func TestLoadOverridesOnlyNamedSentences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("GOODBYE: \"Bye!\"\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Bye!", c.Goodbye)
	assert.Equal(t, Default().Welcome, c.Welcome)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
