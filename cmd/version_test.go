package cmd

import (
	"bytes"
	"testing"

	"lpixmove/internal/buildinfo"

	"github.com/stretchr/testify/assert"
)

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	versionCmd.Run(versionCmd, nil)

	assert.Contains(t, out.String(), "Version: "+buildinfo.Version)
	assert.Contains(t, out.String(), "Commit: ")
	assert.Contains(t, out.String(), "Build date: ")
}
