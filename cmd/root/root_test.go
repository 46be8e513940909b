package root

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sandeep0076/budget-sage/internal/config"
)

func TestInitRegistersPersistentFlags(t *testing.T) {
	Init()

	assert.NotNil(t, Cmd.PersistentFlags().Lookup("data-dir"))
	assert.NotNil(t, Cmd.PersistentFlags().Lookup("output"))
	assert.NotNil(t, Cmd.PersistentFlags().Lookup("format"))

	format := Cmd.PersistentFlags().Lookup("format")
	assert.Equal(t, "json", format.DefValue)
}

func TestDataDirResolution(t *testing.T) {
	originalFlags := SharedFlags
	originalConf := Conf
	defer func() {
		SharedFlags = originalFlags
		Conf = originalConf
	}()

	// Flag wins over configuration.
	SharedFlags.DataDir = "/tmp/flag-dir"
	Conf = &config.Config{}
	Conf.Data.Directory = "/tmp/conf-dir"
	assert.Equal(t, "/tmp/flag-dir", DataDir())

	// Configuration wins over the built-in default.
	SharedFlags.DataDir = ""
	assert.Equal(t, "/tmp/conf-dir", DataDir())

	// Empty everywhere defers to the store default.
	Conf = nil
	assert.Equal(t, "", DataDir())
}

func TestCurrencyFallback(t *testing.T) {
	originalConf := Conf
	defer func() { Conf = originalConf }()

	Conf = &config.Config{}
	Conf.Currency.Default = "CHF"
	assert.Equal(t, "CHF", Currency())

	Conf = nil
	assert.Equal(t, "EUR", Currency())
}
