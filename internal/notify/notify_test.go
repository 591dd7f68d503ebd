package notify

import (
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/dragboard/internal/platform"
)

type sent struct {
	title, body string
	opts        platform.Options
	iconExisted bool
}

func recorder(out *[]sent) SendFunc {
	return func(title, body string, opts platform.Options) error {
		_, err := os.Stat(opts.IconPath)
		*out = append(*out, sent{title: title, body: body, opts: opts, iconExisted: opts.IconPath != "" && err == nil})
		return nil
	}
}

func TestDisabledEventsAreSilent(t *testing.T) {
	var got []sent
	n := New(DefaultPreferences()).WithSender(recorder(&got))
	n.Save("x.png")
	n.Copy("", nil)
	if len(got) != 0 {
		t.Fatalf("expected no notifications, got %+v", got)
	}

	var nilNotifier *Notifier
	nilNotifier.Enable(EventSave, true)
	nilNotifier.Save("x.png")
}

func TestSave(t *testing.T) {
	var got []sent
	n := New(DefaultPreferences()).WithSender(recorder(&got))
	n.Enable(EventSave, true)

	path := filepath.Join(t.TempDir(), "board.png")
	if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	n.Save(path)

	if len(got) != 1 {
		t.Fatalf("got %d notifications", len(got))
	}
	if got[0].title != "Dragboard" || got[0].body != "Saved "+path {
		t.Errorf("unexpected notification %+v", got[0])
	}
	if got[0].opts.IconPath != path {
		t.Errorf("IconPath = %q", got[0].opts.IconPath)
	}
}

func TestCopyWritesTemporaryPreview(t *testing.T) {
	var got []sent
	n := New(DefaultPreferences()).WithSender(recorder(&got))
	n.Enable(EventCopy, true)

	n.Copy("", image.NewRGBA(image.Rect(0, 0, 4, 4)))

	if len(got) != 1 {
		t.Fatalf("got %d notifications", len(got))
	}
	if got[0].body != "Copied board to clipboard" {
		t.Errorf("body = %q", got[0].body)
	}
	if !got[0].iconExisted {
		t.Error("preview icon should exist while sending")
	}
	if _, err := os.Stat(got[0].opts.IconPath); !os.IsNotExist(err) {
		t.Errorf("preview should be removed afterwards, stat err = %v", err)
	}
}

func TestLoadPreferences(t *testing.T) {
	t.Setenv("DRAGBOARD_NOTIFY_TITLE", "Boards")
	t.Setenv("DRAGBOARD_NOTIFY_COPY_TEXT", "Clipboard now has %s")
	prefs := LoadPreferences()
	if prefs.Title != "Boards" {
		t.Errorf("Title = %q", prefs.Title)
	}
	if !strings.HasPrefix(prefs.Templates[EventCopy], "Clipboard now") {
		t.Errorf("copy template = %q", prefs.Templates[EventCopy])
	}
	if prefs.Templates[EventSave] != "Saved %s" {
		t.Errorf("save template = %q", prefs.Templates[EventSave])
	}
}
