package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/screen"
)

type fakeHome struct{}

func (fakeHome) Init() tea.Cmd                          { return nil }
func (f fakeHome) Update(tea.Msg) (screen.Screen, tea.Cmd) { return f, nil }
func (fakeHome) View(int, int) string                   { return "home" }
func (fakeHome) Title() string                          { return "Home" }

func TestKeyPressTransitionsToHome(t *testing.T) {
	w := New(func() screen.Screen { return fakeHome{} })

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("key press returned no command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want router.ReplaceScreenMsg", cmd())
	}
	if msg.Screen.Title() != "Home" {
		t.Errorf("replacement screen = %q, want Home", msg.Screen.Title())
	}
}

func TestTransitionHappensOnce(t *testing.T) {
	w := New(func() screen.Screen { return fakeHome{} })

	if _, cmd := w.Update(tea.KeyPressMsg{Code: 'a'}); cmd == nil {
		t.Fatal("first key press returned no command")
	}
	if _, cmd := w.Update(tea.KeyPressMsg{Code: 'b'}); cmd != nil {
		t.Error("second key press transitioned again")
	}
}

func TestViewShowsHintAfterSplash(t *testing.T) {
	w := New(func() screen.Screen { return fakeHome{} })

	if v := w.View(100, 30); strings.Contains(v, "press any key") {
		t.Error("hint visible before the splash finished")
	}

	for i := 0; i < 20; i++ {
		w.Update(tickMsg{})
	}
	if v := w.View(100, 30); !strings.Contains(v, "press any key") {
		t.Error("hint missing after the splash finished")
	}
}

func TestBannerCompactFallback(t *testing.T) {
	if got := RenderBanner(40); !strings.Contains(got, bannerCompact) {
		t.Errorf("narrow banner = %q, want compact form", got)
	}
	if got := RenderBanner(120); strings.Contains(got, bannerCompact) {
		t.Error("wide banner used the compact form")
	}
}
