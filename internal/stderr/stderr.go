//go:build !windows

// Package stderr captures stderr output from C libraries (ALSA, the oto
// backend) that write directly to file descriptor 2, bypassing Go's
// os.Stderr. Captured lines go to the log file instead of corrupting the
// TUI layout.
package stderr

import (
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/unix"
)

var (
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	started    bool
	done       chan struct{}
)

// Start begins capturing stderr output and forwards each line to logger.
// Must be called early in main(), before the audio device is opened.
// On error the program can continue without capture.
func Start(logger *log.Logger) error {
	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origStderr, err = unix.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := unix.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		_ = unix.Close(origStderr)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true
	done = make(chan struct{})

	go func() {
		defer close(done)
		forward(pipeRead, logger)
	}()

	return nil
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
// Useful for fatal errors that must be visible even if TUI is running.
func WriteOriginal(msg string) {
	if origStderr > 0 {
		_, _ = unix.Write(origStderr, []byte(msg))
		return
	}
	_, _ = os.Stderr.WriteString(msg)
}

// Stop restores the original stderr. Should be called on program exit.
func Stop() {
	if !started {
		return
	}

	_ = unix.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = unix.Close(origStderr)
	origStderr = 0

	pipeWrite.Close()
	<-done
	pipeRead.Close()

	started = false
}
