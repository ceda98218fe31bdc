package style_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/launchpad/internal/ui/style"
)

func TestKeyValue_Ascii(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.EnvColorProfile()) })

	assert.Equal(t, "commit: abc123", style.KeyValue("commit", "abc123"))
	assert.Equal(t, "launchpad", style.Heading.Render("launchpad"))
}
