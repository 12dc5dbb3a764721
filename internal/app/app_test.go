package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPromptDedupApp_Initializers(t *testing.T) {
	app := NewPromptDedupApp()
	require.NotNil(t, app, "NewPromptDedupApp should not return nil")
}
