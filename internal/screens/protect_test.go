package screens

import (
	"strings"
	"testing"
)

func TestProtectRequiresPassword(t *testing.T) {
	s := NewProtectScreen(testDeps(t))
	s.SetFile("input", "/tmp/a.pdf")

	if s.form.Session().FocusByID("run") {
		t.Error("run focusable before a password is set")
	}

	s.SetSecrets("hunter2", "")
	if !s.form.Session().FocusByID("run") {
		t.Error("run not focusable after password set")
	}
}

func TestProtectPasswordRequest(t *testing.T) {
	s := NewProtectScreen(testDeps(t))

	if !s.form.Session().FocusByID("passwords") {
		t.Fatal("passwords button not focusable")
	}
	cmd := s.form.HandleKey(keyPress("enter"))
	req, ok := drainLast(cmd).(PasswordRequestMsg)
	if !ok {
		t.Fatalf("message type = %T, want PasswordRequestMsg", drainLast(cmd))
	}
	if req.Action != "protect" {
		t.Errorf("Action = %q", req.Action)
	}
}

func TestProtectViewNeverShowsPassword(t *testing.T) {
	s := NewProtectScreen(testDeps(t))
	s.SetFile("input", "/tmp/a.pdf")
	s.SetSecrets("hunter2", "owner-secret")

	view := s.View(100, 40)
	if strings.Contains(view, "hunter2") || strings.Contains(view, "owner-secret") {
		t.Error("password rendered in the view")
	}
	if !strings.Contains(view, "passwords: set") {
		t.Error("view does not confirm passwords are set")
	}
}

func TestRotateRejectsBadSelection(t *testing.T) {
	s := NewRotateScreen(testDeps(t))
	s.SetFile("input", "/tmp/a.pdf")

	pages := s.form.Field("pages")
	pages.Input.SetValue("5-2")

	s.form.Session().FocusByID("run")
	cmd := s.form.HandleKey(keyPress("enter"))
	msg, ok := drainLast(cmd).(StatusMsg)
	if !ok {
		t.Fatalf("message type = %T, want StatusMsg", drainLast(cmd))
	}
	if msg.Text == "" {
		t.Error("empty validation message")
	}
}
