package protocol

import (
	"bufio"
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

// Run reads commands line by line until END, EOF or ctx cancellation.
func (p *Protocol) Run(ctx context.Context, in io.Reader) error {
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		var commandLine = scanner.Text()
		var err = p.handle(ctx, commandLine)
		if err != nil {
			logrus.WithField("command", commandLine).Debug(err)
		}
		if p.writeErr != nil {
			return p.writeErr
		}
		if p.finished {
			return nil
		}
	}
	return scanner.Err()
}
