package fdmlog

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewDefaultsToInfoOnUnknownLevel(t *testing.T) {
	l := New("nonsense", "stdout")
	if l.GetLevel() != logrus.InfoLevel {
		t.Fatalf("level = %v, want InfoLevel", l.GetLevel())
	}
}

func TestNewHonorsDebugLevel(t *testing.T) {
	l := New("debug", "stdout")
	if l.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %v, want DebugLevel", l.GetLevel())
	}
}

func TestSetLevelChangesDefault(t *testing.T) {
	SetLevel("error")
	defer SetLevel("info")
	if Default.GetLevel() != logrus.ErrorLevel {
		t.Fatalf("Default level = %v, want ErrorLevel", Default.GetLevel())
	}
}
