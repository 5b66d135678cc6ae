package logging_test

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gormlogger "gorm.io/gorm/logger"

	"urecite/logging"
)

func TestSetup_WritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urecite.log")

	closer := logging.Setup(logging.Options{File: path, MaxSizeMB: 1, MaxBackups: 1})
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
	})

	log.Printf("recitation checked")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "recitation checked") {
		t.Errorf("log file = %q, want the logged line", data)
	}
}

func TestSetup_StderrOnly(t *testing.T) {
	closer := logging.Setup(logging.Options{})
	if err := closer.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestNewRotatingFile_DefaultSize(t *testing.T) {
	t.Parallel()

	w := logging.NewRotatingFile(logging.Options{File: "x.log"})
	if w.MaxSize != 50 {
		t.Errorf("MaxSize = %d, want 50", w.MaxSize)
	}
}

func TestGormLevel(t *testing.T) {
	t.Parallel()

	if got := logging.GormLevel("production"); got != gormlogger.Warn {
		t.Errorf("GormLevel(production) = %v, want Warn", got)
	}
	if got := logging.GormLevel("development"); got != gormlogger.Info {
		t.Errorf("GormLevel(development) = %v, want Info", got)
	}
}
