// Package journal records tree mutations of a populate run to a rotating
// log file. A run is not transactional; the journal is what an operator
// uses to see how far an aborted run went.
package journal

import (
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Opts describes the journal options.
type Opts struct {
	// Filename is the name of the journal file.
	Filename string
	// MaxSize is the maximum size in megabytes of the journal file
	// before it gets rotated.
	MaxSize int
	// MaxBackups is the maximum number of old journal files to retain.
	MaxBackups int
}

// Journal is a decorator of log.Logger writing one record per mutation.
type Journal struct {
	*log.Logger
	// RunID tells records of different runs apart in a shared journal file.
	RunID string
	// ljLogger is an io.WriteCloser that writes to the specified filename.
	ljLogger *lumberjack.Logger
}

// New creates a journal writing to opts.Filename.
func New(opts Opts) *Journal {
	ljLogger := &lumberjack.Logger{
		Filename:   opts.Filename,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		Compress:   false,
		LocalTime:  true,
	}
	runID := uuid.NewString()
	return &Journal{
		Logger:   log.New(ljLogger, runID+" ", log.LstdFlags|log.Lmsgprefix),
		RunID:    runID,
		ljLogger: ljLogger,
	}
}

// NewCustom creates a journal writing to writer. Rotation does not work in
// this case. Such journal is widely used in tests.
func NewCustom(writer io.Writer, flags int) *Journal {
	return &Journal{Logger: log.New(writer, "", flags)}
}

// Record writes a single mutation record: an operation and its arguments.
func (j *Journal) Record(op string, args ...string) {
	line := op
	for _, arg := range args {
		line += fmt.Sprintf(" %q", arg)
	}
	j.Println(line)
}

// Close implements io.Closer, and closes the current journal file.
func (j *Journal) Close() error {
	if j.ljLogger == nil {
		return nil
	}
	return j.ljLogger.Close()
}
