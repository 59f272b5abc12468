package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_OrNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", "", "").OrNotAvailable()

	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, NotAvailable, info.BuildDate())
	assert.Equal(t, NotAvailable, info.BuildCommit())
}

func TestAppBuildInfo_ZeroValue(t *testing.T) {
	var info AppBuildInfo

	assert.Empty(t, info.BuildVersion())
	assert.Equal(t, NewAppBuildInfo(NotAvailable, NotAvailable, NotAvailable), info.OrNotAvailable())
}
