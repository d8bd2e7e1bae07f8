package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/nxadm/tail"
	"github.com/sutego/sutego/internal/env"
)

func Logs(w io.Writer, live bool) error {
	shouldFollow := isatty.IsTerminal(os.Stdout.Fd())
	tailConfig := tail.Config{
		ReOpen: shouldFollow,
		Follow: shouldFollow,
		Poll:   true,
		Logger: tail.DiscardingLogger,
	}
	if live {
		tailConfig.Location = &tail.SeekInfo{
			Offset: 0,
			Whence: io.SeekEnd,
		}
	}
	t, err := tail.TailFile(env.SUTEGO_LOG_PATH, tailConfig)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no log file exists yet: run some commands with --debug first")
		}
		return err
	}
	for line := range t.Lines {
		fmt.Fprintln(w, line.Text)
	}
	return nil
}
