package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitParsesValidLevel(t *testing.T) {
	log := Init("debug", "text")
	if log.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %v, want DebugLevel", log.GetLevel())
	}
}

func TestInitFallsBackToInfoOnUnknownLevel(t *testing.T) {
	log := Init("not-a-level", "text")
	if log.GetLevel() != logrus.InfoLevel {
		t.Fatalf("level = %v, want InfoLevel", log.GetLevel())
	}
}

func TestInitUsesJSONFormatterForJSON(t *testing.T) {
	log := Init("info", "json")
	if _, ok := log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Fatalf("formatter = %T, want *logrus.JSONFormatter", log.Formatter)
	}
}

func TestInitDefaultsToTextFormatter(t *testing.T) {
	log := Init("info", "")
	if _, ok := log.Formatter.(*logrus.TextFormatter); !ok {
		t.Fatalf("formatter = %T, want *logrus.TextFormatter", log.Formatter)
	}
}
