package util

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

type emptyStruct struct{}

// readyChan is a channel used to signal completion of command execution.
type readyChan chan emptyStruct

var (
	spinnerPicture    = spinner.CharSets[9]
	spinnerUpdateTime = 100 * time.Millisecond

	ready = emptyStruct{}
)

// sendReady sends ready to channel.
func sendReady(readyChannel readyChan) {
	readyChannel <- ready
}

// startAndWaitCommand executes a command.
// and sends `ready` flag to the channel before return.
func startAndWaitCommand(cmd *exec.Cmd, readyChannel readyChan,
	workGroup *sync.WaitGroup, err *error) {
	defer workGroup.Done()
	defer sendReady(readyChannel)

	if *err = cmd.Start(); *err != nil {
		return
	}

	*err = cmd.Wait()
}

// StartCommandSpinner starts running spinner.
// until `ready` flag is received from the channel.
func StartCommandSpinner(readyChannel readyChan, wg *sync.WaitGroup, prefix string) {
	defer wg.Done()

	spinner := spinner.New(spinnerPicture, spinnerUpdateTime)
	if prefix != "" {
		spinner.Prefix = fmt.Sprintf("%s ", strings.TrimSpace(prefix))
	}

	spinner.Start()

	// Wait for the command to complete.
	<-readyChannel

	spinner.Stop()
}

// RunCommand runs specified command in workingDir and returns its combined
// output. If showOutput is set to true, command output is also shown.
// Else spinner is shown on a terminal while command is running.
func RunCommand(cmd *exec.Cmd, workingDir string, showOutput bool) ([]byte, error) {
	var err error
	var workGroup sync.WaitGroup
	var output bytes.Buffer
	readyChannel := make(readyChan, 1)

	cmd.Dir = workingDir
	if showOutput {
		log.Infof("Run: %s", cmd)
		cmd.Stdout = &teeBuffer{&output, os.Stdout}
		cmd.Stderr = &teeBuffer{&output, os.Stderr}
	} else {
		cmd.Stdout = &output
		cmd.Stderr = &output

		if isatty.IsTerminal(os.Stdout.Fd()) {
			workGroup.Add(1)
			go StartCommandSpinner(readyChannel, &workGroup, "")
		}
	}

	workGroup.Add(1)
	go startAndWaitCommand(cmd, readyChannel, &workGroup, &err)

	workGroup.Wait()

	if err != nil {
		return output.Bytes(), fmt.Errorf("failed to run \n%s\n\n%s\n%w",
			cmd.String(), strings.TrimSpace(output.String()), err)
	}

	return output.Bytes(), nil
}

// teeBuffer writes to both the buffer and the writer.
type teeBuffer struct {
	buf *bytes.Buffer
	out *os.File
}

func (t *teeBuffer) Write(p []byte) (int, error) {
	t.buf.Write(p)
	return t.out.Write(p)
}

// ExecuteCommandGetOutput executes program with given args in workDir and
// returns its standard output.
func ExecuteCommandGetOutput(program string, workDir string, args ...string) ([]byte, error) {
	cmd := exec.Command(program, args...)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if workDir == "" {
		var err error
		if workDir, err = os.Getwd(); err != nil {
			return out.Bytes(), err
		}
	}
	cmd.Dir = workDir

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return out.Bytes(), fmt.Errorf("%s: %w", strings.TrimSpace(stderr.String()), err)
		}
		return out.Bytes(), err
	}
	return out.Bytes(), nil
}
