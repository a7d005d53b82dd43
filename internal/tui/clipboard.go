package tui

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/jmylchreest/themebind/internal/config"
)

// copyText copies text to the system clipboard.
func copyText(text string, cfg *config.Config) error {
	cmd := detectClipboardCommand(cfg)
	if cmd == "" {
		return fmt.Errorf("no clipboard command available (install wl-copy, xclip or xsel, or set clipboard.command)")
	}

	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return fmt.Errorf("invalid clipboard command")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c := exec.CommandContext(ctx, parts[0], parts[1:]...)
	c.Stdin = strings.NewReader(text)

	if err := c.Run(); err != nil {
		return fmt.Errorf("clipboard command %q failed: %w", parts[0], err)
	}
	return nil
}

// detectClipboardCommand returns the clipboard command to use. The
// configured command wins; otherwise the common Wayland and X11 tools
// are probed in order.
func detectClipboardCommand(cfg *config.Config) string {
	if cfg != nil && cfg.Clipboard.Command != "" {
		return cfg.Clipboard.Command
	}
	if _, err := exec.LookPath("wl-copy"); err == nil {
		return "wl-copy"
	}
	if _, err := exec.LookPath("xclip"); err == nil {
		return "xclip -selection clipboard"
	}
	if _, err := exec.LookPath("xsel"); err == nil {
		return "xsel --clipboard --input"
	}
	return ""
}
