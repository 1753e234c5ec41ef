package global

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/samber/lo"
)

const (
	mb                = 1000000
	defaultMaxLogSize = 2.5 * mb
	defaultMaxLogs    = 2
)

// RollingFileWriter appends to <dir>/<name>.log. Once the main log grows past MaxSize
// it is archived as <name>-1.log, older archives shift up by one, and only MaxLogs files are kept.
type RollingFileWriter struct {
	FileDirectory string
	FileName      string
	MaxSize       int64
	MaxLogs       int

	mu sync.Mutex
}

func NewRollingFileWriter(fileDir string, fileName string) (*RollingFileWriter, error) {
	absFileDir, err := filepath.Abs(fileDir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(absFileDir, 0o750); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	return &RollingFileWriter{
		FileDirectory: absFileDir,
		FileName:      fileName,
		MaxSize:       defaultMaxLogSize,
		MaxLogs:       defaultMaxLogs,
	}, nil
}

func (w *RollingFileWriter) mainLogPath() string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s.log", w.FileName))
}

func (w *RollingFileWriter) indexedLog(fileName string, index int64) string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s-%d.log", fileName, index))
}

// archivedLogs returns the full paths of every <name>-*.log file
func (w *RollingFileWriter) archivedLogs(pattern string) ([]string, error) {
	logMatches, err := fs.Glob(os.DirFS(w.FileDirectory), pattern)
	if err != nil {
		return nil, err
	}

	return lo.Map(logMatches, func(logPath string, _ int) string {
		return filepath.Join(w.FileDirectory, logPath)
	}), nil
}

func (w *RollingFileWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	stats, err := os.Stat(w.mainLogPath())
	if err == nil && stats.Size() >= w.MaxSize {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	mainLogFile, err := os.OpenFile(w.mainLogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, err
	}
	defer mainLogFile.Close()

	return mainLogFile.Write(b)
}

func (w *RollingFileWriter) rotate() error {
	logMatches, err := w.archivedLogs(w.FileName + "-*.log")
	if err != nil {
		return err
	}

	indexed := make(map[string]int64, len(logMatches))
	for _, logPath := range logMatches {
		index, err := logIndex(w.FileName, logPath)
		// Files that don't parse as an archive are stray, get rid of them
		if err != nil {
			if err := os.Remove(logPath); err != nil {
				return err
			}
			continue
		}
		indexed[logPath] = index
	}

	// Highest index first so renames never collide
	archives := lo.Keys(indexed)
	slices.SortFunc(archives, func(a, b string) int {
		return int(indexed[b] - indexed[a])
	})

	for _, logPath := range archives {
		next := indexed[logPath] + 1
		// The main log takes up one slot
		if next >= int64(w.MaxLogs) {
			if err := os.Remove(logPath); err != nil {
				return err
			}
			continue
		}

		if err := os.Rename(logPath, w.indexedLog(w.FileName, next)); err != nil {
			return err
		}
	}

	if w.MaxLogs <= 1 {
		return os.Remove(w.mainLogPath())
	}

	return os.Rename(w.mainLogPath(), w.indexedLog(w.FileName, 1))
}

func logIndex(baseFileName string, filePath string) (int64, error) {
	fileName, _ := strings.CutSuffix(filepath.Base(filePath), ".log")
	indexStr, ok := strings.CutPrefix(fileName, baseFileName+"-")
	if !ok {
		return 0, fmt.Errorf("%s is not a %s log", filePath, baseFileName)
	}

	index, err := strconv.ParseInt(indexStr, 10, 32)
	if err != nil {
		return 0, err
	}
	if index < 1 {
		return 0, fmt.Errorf("invalid log index %d", index)
	}

	return index, nil
}
